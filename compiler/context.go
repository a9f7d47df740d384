package compiler

// Config carries the tunable policy of one compilation run.
type Config struct {
	// EntityTypeFilter widens the set of navigation targets compiled in
	// full. Targets outside the root set and the filter compile to plain
	// references.
	EntityTypeFilter *EntityTypeFilter
}

// DefaultConfig places no restriction on navigation targets: with no
// patterns the permissive filter matches every entity type, so everything
// reachable from the roots compiles in full.
func DefaultConfig() Config {
	f, _ := NewPermissiveFilter(nil)
	return Config{EntityTypeFilter: f}
}

// context is the shared state of one compilation run: the index to
// resolve names against, the policy, the root set of fully compiled
// types, and the visited ledger.
type context struct {
	index   *SchemaIndex
	config  Config
	rootSet map[QualifiedName]bool
	stack   *Stack
}

func newContext(index *SchemaIndex, config Config, rootSet map[QualifiedName]bool) *context {
	if config.EntityTypeFilter == nil {
		config = DefaultConfig()
	}
	return &context{
		index:   index,
		config:  config,
		rootSet: rootSet,
		stack:   NewStack(),
	}
}

// wanted reports whether a navigation target should be compiled in full
// and marked expandable: it is in the root set, or the filter selects it.
func (c *context) wanted(q QualifiedName) bool {
	return c.rootSet[q] || c.config.EntityTypeFilter.Matches(q)
}

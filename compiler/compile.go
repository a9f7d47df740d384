package compiler

import (
	"sort"

	"github.com/redfish-tools/redfishgen/csdl"
)

// settingsType is the complex type backing the settings-apply pattern.
// Resources updated through a @Redfish.Settings object need it compiled;
// bundles that never use the pattern simply do not declare it.
var settingsType = QualifiedName{Namespace: "Settings", Name: "Settings"}

// SchemaBundle is the full input of a compilation: every loaded document,
// in the order the caller supplied them.
type SchemaBundle struct {
	Documents []*csdl.Document
	// RootSetThreshold limits bulk mode to the first N documents; zero
	// means all of them. Vendor extension bundles put the standard
	// schemas after their own and set the threshold to compile only the
	// extension's types in full.
	RootSetThreshold int
}

// Compile runs service mode: the root set is the types of the named
// service singletons, widened by the include filter. Everything reachable
// from the roots compiles per the config's entity type filter.
func (b *SchemaBundle) Compile(singletons []string, includeFilter *EntityTypeFilter, config Config) (*Compiled, error) {
	index, err := BuildIndex(b.Documents)
	if err != nil {
		return nil, err
	}
	if includeFilter == nil {
		includeFilter, _ = NewRestrictiveFilter(nil)
	}

	var entityRoots []QualifiedName
	rootSet := map[QualifiedName]bool{}
	addRoot := func(q QualifiedName) {
		if !rootSet[q] {
			rootSet[q] = true
			entityRoots = append(entityRoots, q)
		}
	}
	for _, name := range singletons {
		q, err := b.singletonType(index, name)
		if err != nil {
			return nil, err
		}
		addRoot(index.FindChildType(q))
	}
	for _, doc := range b.Documents {
		for _, s := range doc.Schemas {
			for _, name := range sortedTypeNames(s.EntityTypes) {
				q := QualifiedName{Namespace: Namespace(s.Namespace), Name: name}
				if includeFilter.Matches(q) {
					addRoot(q)
				}
			}
		}
	}

	return b.compileRootSet(index, config, rootSet, entityRoots, nil)
}

// CompileAll runs bulk mode: every entity and complex type declared in
// the document subset selected by the threshold becomes a root.
func (b *SchemaBundle) CompileAll(config Config) (*Compiled, error) {
	index, err := BuildIndex(b.Documents)
	if err != nil {
		return nil, err
	}

	docs := b.Documents
	if b.RootSetThreshold > 0 && b.RootSetThreshold < len(docs) {
		docs = docs[:b.RootSetThreshold]
	}
	var entityRoots, complexRoots []QualifiedName
	rootSet := map[QualifiedName]bool{}
	for _, doc := range docs {
		for _, s := range doc.Schemas {
			ns := Namespace(s.Namespace)
			for _, name := range sortedTypeNames(s.EntityTypes) {
				q := QualifiedName{Namespace: ns, Name: name}
				if !rootSet[q] {
					rootSet[q] = true
					entityRoots = append(entityRoots, q)
				}
			}
			for _, name := range sortedTypeNames(s.ComplexTypes) {
				q := QualifiedName{Namespace: ns, Name: name}
				if !rootSet[q] {
					rootSet[q] = true
					complexRoots = append(complexRoots, q)
				}
			}
		}
	}

	return b.compileRootSet(index, config, rootSet, entityRoots, complexRoots)
}

// compileRootSet compiles every root, the optional settings type, and
// then every declared action. The root set is fixed before compilation
// starts so navigation gating sees the complete set.
func (b *SchemaBundle) compileRootSet(index *SchemaIndex, config Config, rootSet map[QualifiedName]bool, entityRoots, complexRoots []QualifiedName) (*Compiled, error) {
	ctx := newContext(index, config, rootSet)
	out := NewCompiled()

	for _, q := range entityRoots {
		if _, err := ctx.ensureEntityType(out, q); err != nil {
			return nil, err
		}
	}
	for _, q := range complexRoots {
		if _, _, err := ctx.ensureType(out, q); err != nil {
			return nil, err
		}
		// Bulk-mode complex roots serialize standalone and carry their
		// own @odata.type.
		if ct, ok := out.ComplexTypes[q]; ok {
			ct.OData.MustHaveType = true
		}
	}
	if _, ok := index.ComplexType(settingsType); ok {
		resolved, _, err := index.FindChildComplexType(settingsType)
		if err != nil {
			return nil, err
		}
		if _, _, err := ctx.ensureType(out, resolved); err != nil {
			return nil, err
		}
	}

	for _, doc := range b.Documents {
		for _, s := range doc.Schemas {
			if err := ctx.compileSchemaActions(out, s); err != nil {
				return nil, &SchemaError{Namespace: Namespace(s.Namespace), Err: err}
			}
		}
	}
	return out, nil
}

// singletonType finds the declared type of a named singleton across every
// entity container of the bundle.
func (b *SchemaBundle) singletonType(index *SchemaIndex, name string) (QualifiedName, error) {
	for _, doc := range b.Documents {
		for _, s := range doc.Schemas {
			for _, c := range s.Containers {
				for _, sg := range c.Singletons {
					if sg.Name != name {
						continue
					}
					q, err := ParseQualifiedName(sg.Type)
					if err != nil {
						return QualifiedName{}, &SingletonError{Name: name, Err: err}
					}
					return q, nil
				}
			}
		}
	}
	return QualifiedName{}, &SingletonNotFoundError{Name: name}
}

func sortedTypeNames[T any](m map[string]*T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

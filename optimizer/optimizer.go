// Package optimizer flattens the inheritance chains of a compiled model.
//
// Redfish version chains leave a compiled model full of single-child
// links: Widget.Widget -> Widget.v1_0_0.Widget -> Widget.v1_2_0.Widget.
// The optimizer collapses every such chain into its most derived type,
// folding ancestor properties in ahead of the type's own and rewriting
// every reference in the model to the surviving name. Types with several
// children, entity types with their own key, and explicitly protected
// types stay as they are.
package optimizer

import (
	"github.com/redfish-tools/redfishgen/compiler"
)

// Config controls which types the pruning passes may collapse.
type Config struct {
	// NeverPrune protects base types that must survive even as sole
	// parents, typically the shared resource bases every schema derives
	// from.
	NeverPrune *compiler.EntityTypeFilter
}

// DefaultConfig protects the standard Redfish resource bases.
func DefaultConfig() Config {
	f, _ := compiler.NewPermissiveFilter([]string{
		"Resource.Item",
		"Resource.ItemOrCollection",
	})
	return Config{NeverPrune: f}
}

// Optimize runs the entity and complex pruning passes over the model and
// returns the rewritten result. The input is not modified.
func Optimize(in *compiler.Compiled, cfg Config) *compiler.Compiled {
	if cfg.NeverPrune == nil {
		cfg = DefaultConfig()
	}
	out := pruneComplexTypes(in)
	out = pruneEntityTypes(out, cfg.NeverPrune)
	return out
}

// renames maps every pruned type to the name that absorbs it.
type renames map[compiler.QualifiedName]compiler.QualifiedName

// resolve follows q through the rename map, identity when unmapped. The
// map is fully transitive by construction, so one hop suffices.
func (r renames) resolve(q compiler.QualifiedName) compiler.QualifiedName {
	if to, ok := r[q]; ok {
		return to
	}
	return q
}

// soleChildren maps each base with exactly one direct child to that
// child. baseOf reports the base of each candidate type; collapsible
// gates which parents may be collapsed at all.
func soleChildren[T any](types map[compiler.QualifiedName]T, baseOf func(T) compiler.QualifiedName, collapsible func(compiler.QualifiedName) bool) renames {
	type firstChild struct {
		child compiler.QualifiedName
		count int
	}
	children := map[compiler.QualifiedName]firstChild{}
	for q, t := range types {
		base := baseOf(t)
		if base.IsZero() {
			continue
		}
		fc := children[base]
		fc.count++
		if fc.count == 1 {
			fc.child = q
		}
		children[base] = fc
	}

	direct := renames{}
	for base, fc := range children {
		if fc.count == 1 && collapsible(base) {
			direct[base] = fc.child
		}
	}
	// Collapse chains transitively: every pruned base maps straight to
	// the most derived survivor. A malformed chain that loops back on
	// itself, a type declared as its own base included, is left alone.
	full := renames{}
	for base := range direct {
		seen := map[compiler.QualifiedName]bool{base: true}
		to := direct[base]
		cyclic := false
		for !cyclic {
			if seen[to] {
				cyclic = true
				break
			}
			seen[to] = true
			next, ok := direct[to]
			if !ok {
				break
			}
			to = next
		}
		if !cyclic {
			full[base] = to
		}
	}
	return full
}

// inheritOData fills gaps in the child's metadata from a pruned
// ancestor. The child's own values always win.
func inheritOData(child *compiler.OData, ancestor compiler.OData) {
	if child.Description == "" {
		child.Description = ancestor.Description
	}
	if child.LongDescription == "" {
		child.LongDescription = ancestor.LongDescription
	}
	if child.Permissions == nil {
		child.Permissions = ancestor.Permissions
	}
	if child.AdditionalProperties == nil {
		child.AdditionalProperties = ancestor.AdditionalProperties
	}
	if child.Insertable == nil {
		child.Insertable = ancestor.Insertable
	}
	if child.Updatable == nil {
		child.Updatable = ancestor.Updatable
	}
	if child.Deletable == nil {
		child.Deletable = ancestor.Deletable
	}
	child.MustHaveID = child.MustHaveID || ancestor.MustHaveID
	child.MustHaveType = child.MustHaveType || ancestor.MustHaveType
}

// foldProperties prepends ancestor properties ahead of the child's own,
// closest ancestor first, so the final order reads ancestor-first from
// the root down.
func foldProperties(child *compiler.Properties, ancestor compiler.Properties) {
	child.Properties = append(append([]compiler.Property{}, ancestor.Properties...), child.Properties...)
	child.NavProperties = append(append([]compiler.NavProperty{}, ancestor.NavProperties...), child.NavProperties...)
}

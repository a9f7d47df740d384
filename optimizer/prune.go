package optimizer

import (
	"github.com/redfish-tools/redfishgen/compiler"
	"github.com/redfish-tools/redfishgen/csdl"
)

// pruneEntityTypes collapses single-child entity inheritance, except
// where the parent declares its own key or the never-prune filter
// protects it.
func pruneEntityTypes(in *compiler.Compiled, neverPrune *compiler.EntityTypeFilter) *compiler.Compiled {
	r := soleChildren(in.EntityTypes, func(t *compiler.EntityType) compiler.QualifiedName {
		return t.Base
	}, func(base compiler.QualifiedName) bool {
		parent, ok := in.EntityTypes[base]
		if !ok {
			return false
		}
		if parent.Key != nil {
			return false
		}
		return !neverPrune.Matches(base)
	})

	out := cloneShell(in)
	for q, t := range in.EntityTypes {
		if _, removed := r[q]; removed {
			continue
		}
		folded := *t
		folded.Properties = compiler.Properties{
			Properties:    append([]compiler.Property{}, t.Properties.Properties...),
			NavProperties: append([]compiler.NavProperty{}, t.Properties.NavProperties...),
		}
		base := t.Base
		seen := map[compiler.QualifiedName]bool{}
		for !base.IsZero() && !seen[base] {
			seen[base] = true
			if _, removed := r[base]; !removed {
				break
			}
			ancestor := in.EntityTypes[base]
			foldProperties(&folded.Properties, ancestor.Properties)
			inheritOData(&folded.OData, ancestor.OData)
			if folded.Key == nil {
				folded.Key = ancestor.Key
			}
			base = ancestor.Base
		}
		folded.Base = base
		out.EntityTypes[q] = &folded
	}
	applyRenames(out, r)
	return out
}

// pruneComplexTypes collapses single-child complex inheritance. Complex
// types have no keys, so the only guard is single parenthood.
func pruneComplexTypes(in *compiler.Compiled) *compiler.Compiled {
	r := soleChildren(in.ComplexTypes, func(t *compiler.ComplexType) compiler.QualifiedName {
		return t.Base
	}, func(base compiler.QualifiedName) bool {
		_, ok := in.ComplexTypes[base]
		return ok
	})

	out := cloneShell(in)
	for q, t := range in.ComplexTypes {
		if _, removed := r[q]; removed {
			continue
		}
		folded := *t
		folded.Properties = compiler.Properties{
			Properties:    append([]compiler.Property{}, t.Properties.Properties...),
			NavProperties: append([]compiler.NavProperty{}, t.Properties.NavProperties...),
		}
		base := t.Base
		seen := map[compiler.QualifiedName]bool{}
		for !base.IsZero() && !seen[base] {
			seen[base] = true
			if _, removed := r[base]; !removed {
				break
			}
			ancestor := in.ComplexTypes[base]
			foldProperties(&folded.Properties, ancestor.Properties)
			inheritOData(&folded.OData, ancestor.OData)
			base = ancestor.Base
		}
		folded.Base = base
		out.ComplexTypes[q] = &folded
	}
	applyRenames(out, r)
	return out
}

// cloneShell copies the model deeply enough that the rename rewrite can
// mutate the result without touching the input. Enum types and type
// definitions carry no qualified-name references, so their pointers are
// shared.
func cloneShell(in *compiler.Compiled) *compiler.Compiled {
	out := compiler.NewCompiled()
	for q, t := range in.EntityTypes {
		ct := *t
		ct.Properties = cloneProperties(t.Properties)
		out.EntityTypes[q] = &ct
	}
	for q, t := range in.ComplexTypes {
		ct := *t
		ct.Properties = cloneProperties(t.Properties)
		out.ComplexTypes[q] = &ct
	}
	for q, t := range in.EnumTypes {
		out.EnumTypes[q] = t
	}
	for q, t := range in.TypeDefinitions {
		out.TypeDefinitions[q] = t
	}
	for binding, acts := range in.Actions {
		m := make(map[string]*compiler.Action, len(acts))
		for name, a := range acts {
			ca := *a
			ca.Parameters = append([]compiler.Parameter{}, a.Parameters...)
			if a.ReturnType != nil {
				rt := *a.ReturnType
				ca.ReturnType = &rt
			}
			m[name] = &ca
		}
		out.Actions[binding] = m
	}
	for q := range in.Creatable {
		out.Creatable[q] = struct{}{}
	}
	for q, set := range in.ExcerptCopies {
		copies := make(map[csdl.ExcerptCopy]struct{}, len(set))
		for ec := range set {
			copies[ec] = struct{}{}
		}
		out.ExcerptCopies[q] = copies
	}
	return out
}

func cloneProperties(p compiler.Properties) compiler.Properties {
	return compiler.Properties{
		Properties:    append([]compiler.Property{}, p.Properties...),
		NavProperties: append([]compiler.NavProperty{}, p.NavProperties...),
	}
}

// applyRenames rewrites every qualified name in the model through the
// rename map and drops the pruned types. Every reference site must go
// through here; a missed one leaves the model pointing at types that no
// longer exist.
func applyRenames(c *compiler.Compiled, r renames) {
	if len(r) == 0 {
		return
	}
	for from := range r {
		delete(c.EntityTypes, from)
		delete(c.ComplexTypes, from)
	}
	for _, t := range c.EntityTypes {
		t.Base = r.resolve(t.Base)
		renameProperties(&t.Properties, r)
	}
	for _, t := range c.ComplexTypes {
		t.Base = r.resolve(t.Base)
		renameProperties(&t.Properties, r)
	}

	actions := map[compiler.QualifiedName]map[string]*compiler.Action{}
	for binding, acts := range c.Actions {
		to := r.resolve(binding)
		if actions[to] == nil {
			actions[to] = map[string]*compiler.Action{}
		}
		for name, a := range acts {
			a.Binding = to
			for i := range a.Parameters {
				a.Parameters[i].Type = r.resolve(a.Parameters[i].Type)
			}
			if a.ReturnType != nil {
				a.ReturnType.Type = r.resolve(a.ReturnType.Type)
			}
			actions[to][name] = a
		}
	}
	c.Actions = actions

	creatable := map[compiler.QualifiedName]struct{}{}
	for q := range c.Creatable {
		creatable[r.resolve(q)] = struct{}{}
	}
	c.Creatable = creatable

	copies := map[compiler.QualifiedName]map[csdl.ExcerptCopy]struct{}{}
	for q, set := range c.ExcerptCopies {
		to := r.resolve(q)
		if copies[to] == nil {
			copies[to] = map[csdl.ExcerptCopy]struct{}{}
		}
		for ec := range set {
			copies[to][ec] = struct{}{}
		}
	}
	c.ExcerptCopies = copies
}

func renameProperties(p *compiler.Properties, r renames) {
	for i := range p.Properties {
		p.Properties[i].Type = r.resolve(p.Properties[i].Type)
	}
	for i := range p.NavProperties {
		p.NavProperties[i].Target = r.resolve(p.NavProperties[i].Target)
	}
}

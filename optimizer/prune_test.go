package optimizer

import (
	"testing"

	"github.com/redfish-tools/redfishgen/compiler"
	"github.com/redfish-tools/redfishgen/csdl"
)

func qn(ns, name string) compiler.QualifiedName {
	return compiler.QualifiedName{Namespace: compiler.Namespace(ns), Name: name}
}

func prop(name string) compiler.Property {
	return compiler.Property{Name: name, Type: qn("Edm", "String"), Nullable: true}
}

// chainModel builds the canonical three-level chain A -> B -> C with one
// property each, plus reference sites of every kind pointing at A and B.
func chainModel() *compiler.Compiled {
	c := compiler.NewCompiled()
	a, b, cc := qn("W", "A"), qn("W.v1", "B"), qn("W.v2", "C")
	c.EntityTypes[a] = &compiler.EntityType{
		Name:       a,
		Properties: compiler.Properties{Properties: []compiler.Property{prop("FromA")}},
		OData:      compiler.OData{Description: "base description"},
	}
	c.EntityTypes[b] = &compiler.EntityType{
		Name:       b,
		Base:       a,
		Properties: compiler.Properties{Properties: []compiler.Property{prop("FromB")}},
	}
	c.EntityTypes[cc] = &compiler.EntityType{
		Name:       cc,
		Base:       b,
		Properties: compiler.Properties{Properties: []compiler.Property{prop("FromC")}},
	}

	other := qn("Other", "Other")
	c.EntityTypes[other] = &compiler.EntityType{
		Name: other,
		Properties: compiler.Properties{
			NavProperties: []compiler.NavProperty{
				{Name: "Widget", Kind: compiler.NavExpandable, Target: a},
			},
		},
	}
	c.Actions[b] = map[string]*compiler.Action{
		"Reset": {
			Name:    "Reset",
			Binding: b,
			Parameters: []compiler.Parameter{
				{Name: "Target", Entity: true, Type: a},
			},
			ReturnType: &compiler.ActionReturn{Type: a},
		},
	}
	c.Creatable[a] = struct{}{}
	c.ExcerptCopies[b] = map[csdl.ExcerptCopy]struct{}{
		{AllKeys: true}: {},
	}
	return c
}

// emptyNeverPrune protects nothing, letting every chain collapse.
func emptyNeverPrune(t *testing.T) Config {
	t.Helper()
	f, err := compiler.NewRestrictiveFilter(nil)
	if err != nil {
		t.Fatal(err)
	}
	return Config{NeverPrune: f}
}

func TestPruneCollapsesChain(t *testing.T) {
	in := chainModel()
	out := Optimize(in, emptyNeverPrune(t))

	a, b, cc := qn("W", "A"), qn("W.v1", "B"), qn("W.v2", "C")
	if _, ok := out.EntityTypes[a]; ok {
		t.Error("A should be pruned")
	}
	if _, ok := out.EntityTypes[b]; ok {
		t.Error("B should be pruned")
	}
	survivor, ok := out.EntityTypes[cc]
	if !ok {
		t.Fatal("C should survive")
	}
	if !survivor.Base.IsZero() {
		t.Errorf("survivor base = %v, want none", survivor.Base)
	}

	// Ancestor-first property order.
	var names []string
	for _, p := range survivor.Properties.Properties {
		names = append(names, p.Name)
	}
	want := []string{"FromA", "FromB", "FromC"}
	if len(names) != len(want) {
		t.Fatalf("properties = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("properties = %v, want %v", names, want)
		}
	}

	// Metadata folds in first-non-null.
	if survivor.OData.Description != "base description" {
		t.Errorf("Description = %q, want inherited", survivor.OData.Description)
	}

	// Every reference site rewrites to the survivor.
	other := out.EntityTypes[qn("Other", "Other")]
	if got := other.Properties.NavProperties[0].Target; got != cc {
		t.Errorf("nav target = %v, want %v", got, cc)
	}
	acts, ok := out.Actions[cc]
	if !ok {
		t.Fatalf("actions not rebound; have %v", out.Actions)
	}
	reset := acts["Reset"]
	if reset.Binding != cc {
		t.Errorf("action binding = %v, want %v", reset.Binding, cc)
	}
	if reset.Parameters[0].Type != cc {
		t.Errorf("parameter type = %v, want %v", reset.Parameters[0].Type, cc)
	}
	if reset.ReturnType.Type != cc {
		t.Errorf("return type = %v, want %v", reset.ReturnType.Type, cc)
	}
	if _, ok := out.Creatable[cc]; !ok {
		t.Errorf("creatable = %v, want %v", out.Creatable, cc)
	}
	if _, ok := out.ExcerptCopies[cc]; !ok {
		t.Errorf("excerpt copies = %v, want keyed by %v", out.ExcerptCopies, cc)
	}
}

func TestPruneLeavesInputIntact(t *testing.T) {
	in := chainModel()
	Optimize(in, emptyNeverPrune(t))

	if len(in.EntityTypes) != 4 {
		t.Errorf("input entity types = %d, want 4", len(in.EntityTypes))
	}
	if got := in.EntityTypes[qn("Other", "Other")].Properties.NavProperties[0].Target; got != qn("W", "A") {
		t.Errorf("input nav target mutated to %v", got)
	}
	if got := in.Actions[qn("W.v1", "B")]["Reset"].Binding; got != qn("W.v1", "B") {
		t.Errorf("input action binding mutated to %v", got)
	}
}

func TestPruneSkipsForks(t *testing.T) {
	c := compiler.NewCompiled()
	base := qn("F", "Base")
	c.EntityTypes[base] = &compiler.EntityType{Name: base}
	left, right := qn("F", "Left"), qn("F", "Right")
	c.EntityTypes[left] = &compiler.EntityType{Name: left, Base: base}
	c.EntityTypes[right] = &compiler.EntityType{Name: right, Base: base}

	out := Optimize(c, emptyNeverPrune(t))
	if len(out.EntityTypes) != 3 {
		t.Errorf("got %d entity types, want all 3 kept", len(out.EntityTypes))
	}
}

func TestPruneKeyGuard(t *testing.T) {
	c := compiler.NewCompiled()
	parent, child := qn("K", "Parent"), qn("K", "Child")
	c.EntityTypes[parent] = &compiler.EntityType{
		Name: parent,
		Key:  &csdl.Key{PropertyRefs: []csdl.PropertyRef{{Name: "Id"}}},
	}
	c.EntityTypes[child] = &compiler.EntityType{Name: child, Base: parent}

	out := Optimize(c, emptyNeverPrune(t))
	if _, ok := out.EntityTypes[parent]; !ok {
		t.Error("keyed parent must not be pruned")
	}
}

func TestPruneNeverPruneGuard(t *testing.T) {
	c := compiler.NewCompiled()
	item, child := qn("Resource", "Item"), qn("Thermal", "Thermal")
	c.EntityTypes[item] = &compiler.EntityType{Name: item}
	c.EntityTypes[child] = &compiler.EntityType{Name: child, Base: item}

	out := Optimize(c, DefaultConfig())
	if _, ok := out.EntityTypes[item]; !ok {
		t.Error("Resource.Item is protected by the default config")
	}
}

func TestPruneSelfBasedTypeTerminates(t *testing.T) {
	// A type declared as its own base is malformed input; the optimizer
	// must leave it alone instead of chasing the chain forever.
	self := qn("ServiceRoot", "ServiceRoot")
	c := compiler.NewCompiled()
	c.EntityTypes[self] = &compiler.EntityType{
		Name:       self,
		Base:       self,
		Properties: compiler.Properties{Properties: []compiler.Property{prop("Id")}},
	}

	out := Optimize(c, emptyNeverPrune(t))
	got := out.EntityTypes[self]
	if got == nil || got.Base != self {
		t.Fatalf("self-based type = %+v, want passed through unchanged", got)
	}
	if len(got.Properties.Properties) != 1 {
		t.Errorf("properties = %v, want no folding", got.Properties.Properties)
	}
}

func TestPruneBaseCycleTerminates(t *testing.T) {
	// Two types based on each other form a collapse cycle with no
	// survivor; both must stay.
	a, b := qn("Loop", "A"), qn("Loop.v1", "B")
	c := compiler.NewCompiled()
	c.EntityTypes[a] = &compiler.EntityType{Name: a, Base: b}
	c.EntityTypes[b] = &compiler.EntityType{Name: b, Base: a}

	out := Optimize(c, emptyNeverPrune(t))
	if len(out.EntityTypes) != 2 {
		t.Fatalf("entity types = %v, want both cycle members kept", len(out.EntityTypes))
	}

	cc := compiler.NewCompiled()
	cs := qn("Common", "Status")
	cc.ComplexTypes[cs] = &compiler.ComplexType{Name: cs, Base: cs}
	out = Optimize(cc, emptyNeverPrune(t))
	if got := out.ComplexTypes[cs]; got == nil || got.Base != cs {
		t.Fatalf("self-based complex type = %+v, want passed through unchanged", got)
	}
}

func TestPruneComplexTypes(t *testing.T) {
	c := compiler.NewCompiled()
	base, derived := qn("Common", "Status"), qn("Common.v1", "Status")
	c.ComplexTypes[base] = &compiler.ComplexType{
		Name:       base,
		Properties: compiler.Properties{Properties: []compiler.Property{prop("State")}},
	}
	c.ComplexTypes[derived] = &compiler.ComplexType{
		Name:       derived,
		Base:       base,
		Properties: compiler.Properties{Properties: []compiler.Property{prop("Health")}},
	}
	holder := qn("Chassis", "Chassis")
	c.EntityTypes[holder] = &compiler.EntityType{
		Name: holder,
		Properties: compiler.Properties{Properties: []compiler.Property{
			{Name: "Status", Class: compiler.ClassComplex, Type: base},
		}},
	}

	out := Optimize(c, emptyNeverPrune(t))
	if _, ok := out.ComplexTypes[base]; ok {
		t.Error("base complex type should be pruned")
	}
	survivor := out.ComplexTypes[derived]
	if survivor == nil || len(survivor.Properties.Properties) != 2 {
		t.Fatalf("survivor = %+v, want folded properties", survivor)
	}
	if survivor.Properties.Properties[0].Name != "State" {
		t.Errorf("property order = %v, want ancestor first", survivor.Properties.Properties)
	}
	if got := out.EntityTypes[holder].Properties.Properties[0].Type; got != derived {
		t.Errorf("structural reference = %v, want %v", got, derived)
	}
}

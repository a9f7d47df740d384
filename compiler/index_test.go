package compiler

import (
	"testing"

	"github.com/redfish-tools/redfishgen/csdl"
)

// versionedBundle declares a Redfish-style version chain:
//
//	Widget.Widget <- v1_0_0 (adds) <- v1_1_0 (empty) <- v1_2_0 (adds)
//
// plus a base with two property-adding children.
func versionedIndex(t *testing.T) *SchemaIndex {
	t.Helper()
	docs := []*csdl.Document{doc(
		newSchema("Widget").
			entity(&csdl.EntityType{Name: "Widget", Abstract: true}),
		newSchema("Widget.v1_0_0").
			entity(&csdl.EntityType{
				Name:     "Widget",
				BaseType: "Widget.Widget",
				Properties: []csdl.Property{
					structural("Name", "Edm.String"),
				},
			}),
		newSchema("Widget.v1_1_0").
			entity(&csdl.EntityType{Name: "Widget", BaseType: "Widget.v1_0_0.Widget"}),
		newSchema("Widget.v1_2_0").
			entity(&csdl.EntityType{
				Name:     "Widget",
				BaseType: "Widget.v1_1_0.Widget",
				Properties: []csdl.Property{
					structural("Size", "Edm.Int64"),
				},
			}),
		newSchema("Forked").
			entity(&csdl.EntityType{Name: "Base", Abstract: true}).
			entity(&csdl.EntityType{
				Name:     "LeftChild",
				BaseType: "Forked.Base",
				Properties: []csdl.Property{
					structural("Left", "Edm.String"),
				},
			}).
			entity(&csdl.EntityType{
				Name:     "RightChild",
				BaseType: "Forked.Base",
				Properties: []csdl.Property{
					structural("Right", "Edm.String"),
				},
			}),
	)}
	idx, err := BuildIndex(docs)
	if err != nil {
		t.Fatalf("BuildIndex() error: %v", err)
	}
	return idx
}

func TestFindChildTypeDescendsToMostSpecific(t *testing.T) {
	idx := versionedIndex(t)
	tests := []struct {
		name string
		from QualifiedName
		want QualifiedName
	}{
		{"from abstract base", qn("Widget", "Widget"), qn("Widget.v1_2_0", "Widget")},
		{"from middle of chain", qn("Widget.v1_0_0", "Widget"), qn("Widget.v1_2_0", "Widget")},
		{"through empty version", qn("Widget.v1_1_0", "Widget"), qn("Widget.v1_2_0", "Widget")},
		{"already most specific", qn("Widget.v1_2_0", "Widget"), qn("Widget.v1_2_0", "Widget")},
		{"stops at fork", qn("Forked", "Base"), qn("Forked", "Base")},
		{"unknown name resolves to itself", qn("Nowhere", "Nothing"), qn("Nowhere", "Nothing")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.FindChildType(tt.from); got != tt.want {
				t.Errorf("FindChildType(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestFindChildTypeEmptyLeafDoesNotQualify(t *testing.T) {
	// A childless empty version is not "adding a property": the walk
	// stays at the last type that does.
	docs := []*csdl.Document{doc(
		newSchema("Gadget").
			entity(&csdl.EntityType{Name: "Gadget", Properties: []csdl.Property{
				structural("Name", "Edm.String"),
			}}),
		newSchema("Gadget.v1_1_0").
			entity(&csdl.EntityType{Name: "Gadget", BaseType: "Gadget.Gadget"}),
	)}
	idx, err := BuildIndex(docs)
	if err != nil {
		t.Fatal(err)
	}
	if got := idx.FindChildType(qn("Gadget", "Gadget")); got != qn("Gadget", "Gadget") {
		t.Errorf("FindChildType() = %v, want the declaring type itself", got)
	}
}

func TestFindChildTypeComplex(t *testing.T) {
	docs := []*csdl.Document{doc(
		newSchema("Common").
			complex(&csdl.ComplexType{Name: "Status"}),
		newSchema("Common.v1_1_0").
			complex(&csdl.ComplexType{
				Name:     "Status",
				BaseType: "Common.Status",
				Properties: []csdl.Property{
					structural("Health", "Edm.String"),
				},
			}),
	)}
	idx, err := BuildIndex(docs)
	if err != nil {
		t.Fatal(err)
	}
	want := qn("Common.v1_1_0", "Status")
	resolved, ct, err := idx.FindChildComplexType(qn("Common", "Status"))
	if err != nil {
		t.Fatalf("FindChildComplexType() error: %v", err)
	}
	if resolved != want || ct == nil {
		t.Errorf("FindChildComplexType() = %v, want %v", resolved, want)
	}
}

func TestFindChildEntityTypeNotFound(t *testing.T) {
	idx := versionedIndex(t)
	_, _, err := idx.FindChildEntityType(qn("Nowhere", "Nothing"))
	if err == nil {
		t.Fatal("FindChildEntityType() should fail for an unknown name")
	}
	if _, ok := err.(*EntityTypeNotFoundError); !ok {
		t.Errorf("error = %T, want EntityTypeNotFoundError", err)
	}
}

package compiler

import (
	"github.com/redfish-tools/redfishgen/csdl"
)

// Compiled is the output model of a compilation run: every type reachable
// from the root set, keyed by its resolved qualified name. Merging two
// Compiled values from the same index is idempotent, so overlapping runs
// can be folded together freely.
type Compiled struct {
	EntityTypes     map[QualifiedName]*EntityType
	ComplexTypes    map[QualifiedName]*ComplexType
	EnumTypes       map[QualifiedName]*EnumType
	TypeDefinitions map[QualifiedName]*TypeDefinition
	// Actions maps each binding type to its actions by name.
	Actions map[QualifiedName]map[string]*Action
	// Creatable marks entity types clients may create members of.
	Creatable map[QualifiedName]struct{}
	// ExcerptCopies records which excerpt projections of each type are
	// referenced somewhere in the model.
	ExcerptCopies map[QualifiedName]map[csdl.ExcerptCopy]struct{}
}

// NewCompiled returns an empty model.
func NewCompiled() *Compiled {
	return &Compiled{
		EntityTypes:     map[QualifiedName]*EntityType{},
		ComplexTypes:    map[QualifiedName]*ComplexType{},
		EnumTypes:       map[QualifiedName]*EnumType{},
		TypeDefinitions: map[QualifiedName]*TypeDefinition{},
		Actions:         map[QualifiedName]map[string]*Action{},
		Creatable:       map[QualifiedName]struct{}{},
		ExcerptCopies:   map[QualifiedName]map[csdl.ExcerptCopy]struct{}{},
	}
}

// Merge folds other into c. Same-named entries are assumed identical,
// which holds for any two runs over the same index.
func (c *Compiled) Merge(other *Compiled) {
	for q, t := range other.EntityTypes {
		c.EntityTypes[q] = t
	}
	for q, t := range other.ComplexTypes {
		c.ComplexTypes[q] = t
	}
	for q, t := range other.EnumTypes {
		c.EnumTypes[q] = t
	}
	for q, t := range other.TypeDefinitions {
		c.TypeDefinitions[q] = t
	}
	for q, acts := range other.Actions {
		if c.Actions[q] == nil {
			c.Actions[q] = map[string]*Action{}
		}
		for name, a := range acts {
			c.Actions[q][name] = a
		}
	}
	for q := range other.Creatable {
		c.Creatable[q] = struct{}{}
	}
	for q, copies := range other.ExcerptCopies {
		for ec := range copies {
			c.addExcerptCopy(q, ec)
		}
	}
}

// addEntityType records a compiled entity type and derives creatability
// from it: a collection type whose InsertRestrictions allow insertion
// marks its member type creatable.
func (c *Compiled) addEntityType(q QualifiedName, t *EntityType) {
	c.EntityTypes[q] = t
	if member, ok := t.insertableMemberType(); ok {
		c.Creatable[member] = struct{}{}
	}
}

func (c *Compiled) addAction(binding QualifiedName, a *Action) {
	if c.Actions[binding] == nil {
		c.Actions[binding] = map[string]*Action{}
	}
	c.Actions[binding][a.Name] = a
}

func (c *Compiled) addExcerptCopy(q QualifiedName, ec csdl.ExcerptCopy) {
	if c.ExcerptCopies[q] == nil {
		c.ExcerptCopies[q] = map[csdl.ExcerptCopy]struct{}{}
	}
	c.ExcerptCopies[q][ec] = struct{}{}
}

// --- compiled types ---

// EntityType is a compiled entity type.
type EntityType struct {
	Name QualifiedName
	// Base is the compiled base type, zero for root types.
	Base       QualifiedName
	Key        *csdl.Key
	Abstract   bool
	Properties Properties
	OData      OData
}

// insertableMemberType returns the member type of a creatable collection:
// the target of the Members navigation property when the type's
// InsertRestrictions allow insertion.
func (t *EntityType) insertableMemberType() (QualifiedName, bool) {
	if t.OData.Insertable == nil || !t.OData.Insertable.Value {
		return QualifiedName{}, false
	}
	for _, np := range t.Properties.NavProperties {
		if np.Name == "Members" {
			return np.Target, true
		}
	}
	return QualifiedName{}, false
}

// ComplexType is a compiled complex type.
type ComplexType struct {
	Name       QualifiedName
	Base       QualifiedName
	Abstract   bool
	Properties Properties
	OData      OData
	// ReadOnly is set when every property of the type is read-only.
	ReadOnly bool
}

// EnumType is a compiled enumeration.
type EnumType struct {
	Name QualifiedName
	// Underlying is the Edm primitive backing the enum.
	Underlying QualifiedName
	Members    []EnumMember
	OData      OData
}

// EnumMember is one compiled enum member.
type EnumMember struct {
	Name        string
	Description string
}

// TypeDefinition is a compiled named primitive.
type TypeDefinition struct {
	Name       QualifiedName
	Underlying QualifiedName
	OData      OData
}

// Action is a compiled bound action.
type Action struct {
	Name string
	// Binding is the entity type the action is bound to.
	Binding QualifiedName
	// Parameters are the action's parameters after the binding parameter.
	Parameters []Parameter
	ReturnType *ActionReturn
	OData      OData
}

// Parameter is one compiled action parameter.
type Parameter struct {
	Name string
	// Entity is set when the parameter references an entity type rather
	// than carrying a value.
	Entity     bool
	Class      TypeClass
	Type       QualifiedName
	Collection bool
	Nullable   bool
	OData      OData
	Redfish    RedfishProperty
}

// ActionReturn is a compiled action return type.
type ActionReturn struct {
	Type       QualifiedName
	Collection bool
	Nullable   bool
}

// Package csdl defines the in-memory document model for OData CSDL schema
// documents as used by Redfish, plus accessors for the OData, Capabilities,
// and Redfish annotation vocabularies.
//
// A Document is the already-validated form a schema arrives in: syntactic
// validation happens during loading (see Load), and everything downstream —
// the compiler in particular — consumes Documents without re-checking them.
package csdl

import "strings"

// Document is one CSDL document. A document may declare several schemas,
// each under its own namespace.
type Document struct {
	// Schemas is the list of schemas declared by the document, in
	// declaration order.
	Schemas []*Schema
}

// Schema holds every declaration of one namespace.
type Schema struct {
	// Namespace is the dotted namespace string, e.g. "Resource.v1_0_0".
	Namespace string
	// EntityTypes maps local type name to its entity type declaration.
	EntityTypes map[string]*EntityType
	// ComplexTypes maps local type name to its complex type declaration.
	ComplexTypes map[string]*ComplexType
	// EnumTypes maps local type name to its enumeration declaration.
	EnumTypes map[string]*EnumType
	// TypeDefinitions maps local type name to its type definition.
	TypeDefinitions map[string]*TypeDefinition
	// Containers is the list of entity containers, normally at most one.
	Containers []*EntityContainer
	// Actions is the list of bound operations declared in the namespace.
	Actions []*Action
	// Annotations are schema-level annotations.
	Annotations Annotations
}

// EntityType is a schema type with identity: it may declare a key and may be
// the target of navigation properties.
type EntityType struct {
	// Name is the local type name within the schema's namespace.
	Name string
	// BaseType is the qualified name of the base type, empty for root types.
	BaseType string
	// Abstract reports whether the type is declared abstract.
	Abstract bool
	// Key is the declared key, nil if the type inherits or lacks one.
	Key *Key
	// Properties lists structural and navigation properties in order.
	Properties []Property
	// Annotations are annotations attached to the type itself.
	Annotations Annotations
}

// Key is the declared key of an entity type.
type Key struct {
	// PropertyRefs names the properties forming the key.
	PropertyRefs []PropertyRef
}

// PropertyRef is one component of an entity key.
type PropertyRef struct {
	Name  string
	Alias string
}

// ComplexType is a schema type without independent identity, embedded in
// entity types or other complex types.
type ComplexType struct {
	Name        string
	BaseType    string
	Abstract    bool
	Properties  []Property
	Annotations Annotations
}

// EnumType is an enumeration declaration.
type EnumType struct {
	Name string
	// UnderlyingType is the qualified primitive name, e.g. "Edm.Int64".
	// Empty means the OData default, Edm.Int32.
	UnderlyingType string
	Members        []EnumMember
	Annotations    Annotations
}

// EnumMember is one member of an enumeration.
type EnumMember struct {
	Name        string
	Annotations Annotations
}

// TypeDefinition names a primitive type, optionally adding annotations.
type TypeDefinition struct {
	Name string
	// UnderlyingType is the qualified primitive name, always in the Edm
	// namespace.
	UnderlyingType string
	Annotations    Annotations
}

// Property is one declared property of an entity or complex type. Exactly
// one of Structural and Navigation is non-nil.
type Property struct {
	Name       string
	Structural *StructuralProperty
	Navigation *NavigationProperty
}

// StructuralProperty carries a value of a fixed type.
type StructuralProperty struct {
	Type TypeRef
	// Nullable is nil when unspecified; the CSDL default is true.
	Nullable    *bool
	Annotations Annotations
}

// NavigationProperty references one or a collection of entity type
// instances.
type NavigationProperty struct {
	Type           TypeRef
	Nullable       *bool
	ContainsTarget bool
	Annotations    Annotations
}

// EntityContainer declares service entry points. Redfish only uses its
// singletons.
type EntityContainer struct {
	Name       string
	Singletons []Singleton
}

// Singleton is a named service entry point bound to an entity type.
type Singleton struct {
	Name string
	// Type is the qualified name of the singleton's entity type.
	Type string
}

// Action is a bound operation. The first parameter is the binding
// parameter identifying the owning type.
type Action struct {
	Name        string
	IsBound     bool
	Parameters  []Parameter
	ReturnType  *ReturnType
	Annotations Annotations
}

// Parameter is one parameter of an action.
type Parameter struct {
	Name        string
	Type        TypeRef
	Nullable    *bool
	Annotations Annotations
}

// ReturnType is the optional return type of an action.
type ReturnType struct {
	Type     TypeRef
	Nullable *bool
}

// TypeRef is a type reference as written in a schema document, either
// "Namespace.Name" or "Collection(Namespace.Name)".
type TypeRef struct {
	// Name is the qualified type name without the collection wrapper.
	Name string
	// Collection reports whether the reference was wrapped in
	// Collection(...).
	Collection bool
}

// ParseTypeRef splits a type reference string into its name and
// cardinality.
func ParseTypeRef(s string) TypeRef {
	if rest, ok := strings.CutPrefix(s, "Collection("); ok && strings.HasSuffix(rest, ")") {
		return TypeRef{Name: strings.TrimSuffix(rest, ")"), Collection: true}
	}
	return TypeRef{Name: s}
}

// String renders the reference back in document syntax.
func (r TypeRef) String() string {
	if r.Collection {
		return "Collection(" + r.Name + ")"
	}
	return r.Name
}

// IsNullable resolves the three-valued Nullable attribute against the CSDL
// default of true.
func IsNullable(v *bool) bool {
	return v == nil || *v
}

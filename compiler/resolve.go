package compiler

import (
	"github.com/redfish-tools/redfishgen/csdl"
)

// ensureType makes sure the type declared under exactly this name is
// present in the model. Edm primitives resolve without compilation;
// everything else compiles on first visit and answers from the visited
// ledger afterwards.
func (c *context) ensureType(out *Compiled, ref QualifiedName) (QualifiedName, TypeInfo, error) {
	if ref.Namespace.IsEdm() {
		return ref, TypeInfo{Class: ClassSimple}, nil
	}
	if info, ok := c.stack.ComplexType(ref); ok {
		return ref, info, nil
	}
	if info, ok := c.stack.TypeDefinition(ref); ok {
		return ref, info, nil
	}
	if c.stack.ContainsEnumType(ref) {
		return ref, TypeInfo{Class: ClassEnum}, nil
	}
	info, err := c.compileType(out, ref)
	if err != nil {
		return QualifiedName{}, TypeInfo{}, &TypeError{Name: ref, Err: err}
	}
	return ref, info, nil
}

// compileType dispatches on what kind of declaration the resolved name
// denotes.
func (c *context) compileType(out *Compiled, q QualifiedName) (TypeInfo, error) {
	if ct, ok := c.index.ComplexType(q); ok {
		return c.compileComplexType(out, q, ct)
	}
	if et, ok := c.index.EnumType(q); ok {
		return c.compileEnumType(out, q, et)
	}
	if td, ok := c.index.TypeDefinition(q); ok {
		info, err := c.compileTypeDefinition(out, q, td)
		if err != nil {
			return TypeInfo{}, &TypeDefinitionError{Name: q, Err: err}
		}
		return info, nil
	}
	return TypeInfo{}, &TypeNotFoundError{Name: q}
}

// compileComplexType compiles a complex type and derives whether it is
// read-only. The type is marked visited with conservative info before its
// properties compile, so a cyclic reference back to it resolves instead
// of recursing forever; the final info replaces the conservative entry
// afterwards.
func (c *context) compileComplexType(out *Compiled, q QualifiedName, decl *csdl.ComplexType) (TypeInfo, error) {
	c.stack.MarkComplexType(q, TypeInfo{Class: ClassComplex})

	t := &ComplexType{
		Name:     q,
		Abstract: decl.Abstract,
		OData:    newOData(false, decl.Annotations),
	}
	if decl.BaseType != "" {
		base, err := ParseQualifiedName(decl.BaseType)
		if err != nil {
			return TypeInfo{}, err
		}
		resolvedBase, _, err := c.ensureType(out, base)
		if err != nil {
			return TypeInfo{}, err
		}
		t.Base = resolvedBase
	}
	props, err := c.compileProperties(out, decl.Properties)
	if err != nil {
		return TypeInfo{}, err
	}
	t.Properties = props
	t.ReadOnly = c.complexTypeReadOnly(props)

	info := TypeInfo{Class: ClassComplex, ReadOnly: t.ReadOnly}
	c.stack.MarkComplexType(q, info)
	out.ComplexTypes[q] = t
	return info, nil
}

// complexTypeReadOnly reports whether every property of a complex type is
// read-only. A property counts as read-only when its permissions say
// Read, or when it is itself a complex type already known read-only. A
// type with no structural properties is not considered read-only.
func (c *context) complexTypeReadOnly(props Properties) bool {
	if len(props.Properties) == 0 {
		return false
	}
	for _, p := range props.Properties {
		if p.OData.IsReadOnly() {
			continue
		}
		if p.Class == ClassComplex {
			if info, ok := c.stack.ComplexType(p.Type); ok && info.ReadOnly {
				continue
			}
		}
		return false
	}
	return true
}

func (c *context) compileEnumType(out *Compiled, q QualifiedName, decl *csdl.EnumType) (TypeInfo, error) {
	c.stack.MarkEnumType(q)
	underlying := QualifiedName{Namespace: edmNamespace, Name: "Int32"}
	if decl.UnderlyingType != "" {
		u, err := ParseQualifiedName(decl.UnderlyingType)
		if err != nil {
			return TypeInfo{}, err
		}
		underlying = u
	}
	t := &EnumType{
		Name:       q,
		Underlying: underlying,
		OData:      newOData(false, decl.Annotations),
	}
	for _, m := range decl.Members {
		t.Members = append(t.Members, EnumMember{
			Name:        m.Name,
			Description: m.Annotations.Description(),
		})
	}
	out.EnumTypes[q] = t
	return TypeInfo{Class: ClassEnum}, nil
}

// compileTypeDefinition requires the underlying type to be an Edm
// primitive; type definitions over structured types are not a thing in
// Redfish schemas.
func (c *context) compileTypeDefinition(out *Compiled, q QualifiedName, decl *csdl.TypeDefinition) (TypeInfo, error) {
	underlying, err := ParseQualifiedName(decl.UnderlyingType)
	if err != nil {
		return TypeInfo{}, err
	}
	if !underlying.Namespace.IsEdm() {
		return TypeInfo{}, &NotPrimitiveTypeError{Underlying: underlying}
	}
	info := TypeInfo{Class: ClassTypeDefinition}
	c.stack.MarkTypeDefinition(q, info)
	out.TypeDefinitions[q] = &TypeDefinition{
		Name:       q,
		Underlying: underlying,
		OData:      newOData(false, decl.Annotations),
	}
	return info, nil
}

package compiler

import (
	"github.com/redfish-tools/redfishgen/csdl"
)

// ensureEntityType compiles the entity type declared under exactly this
// name unless already visited. References arrive by declared name; only
// navigation targets and singleton roots get the most-specific-child
// walk, before they reach here.
func (c *context) ensureEntityType(out *Compiled, ref QualifiedName) (QualifiedName, error) {
	if c.stack.ContainsEntityType(ref) {
		return ref, nil
	}
	et, ok := c.index.EntityType(ref)
	if !ok {
		return QualifiedName{}, &EntityTypeNotFoundError{Name: ref}
	}
	if err := c.compileEntityType(out, ref, et); err != nil {
		return QualifiedName{}, &EntityTypeError{Name: ref, Err: err}
	}
	return ref, nil
}

// compileEntityType compiles one entity type declaration. The type is
// marked visited before its properties compile so mutually referencing
// resources terminate, and its base chain compiles first so every
// ancestor is present in the model.
func (c *context) compileEntityType(out *Compiled, q QualifiedName, decl *csdl.EntityType) error {
	c.stack.MarkEntityType(q)

	t := &EntityType{
		Name:     q,
		Key:      decl.Key,
		Abstract: decl.Abstract,
		OData:    newOData(true, decl.Annotations),
	}
	if decl.BaseType != "" {
		base, err := ParseQualifiedName(decl.BaseType)
		if err != nil {
			return err
		}
		resolvedBase, berr := c.ensureEntityType(out, base)
		if berr != nil {
			return berr
		}
		t.Base = resolvedBase
	}
	props, err := c.compileProperties(out, decl.Properties)
	if err != nil {
		return err
	}
	t.Properties = props
	out.addEntityType(q, t)
	return nil
}

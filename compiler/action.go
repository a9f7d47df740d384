package compiler

import (
	"github.com/redfish-tools/redfishgen/csdl"
)

// compileSchemaActions compiles every action a schema declares.
func (c *context) compileSchemaActions(out *Compiled, s *csdl.Schema) error {
	for _, a := range s.Actions {
		if err := c.compileAction(out, a); err != nil {
			return &ActionError{Name: a.Name, Err: err}
		}
	}
	return nil
}

// compileAction compiles one bound action. The first parameter is the
// binding parameter naming the owning entity type; the remaining
// parameters are the action's payload.
func (c *context) compileAction(out *Compiled, decl *csdl.Action) error {
	if !decl.IsBound {
		return &NotBoundActionError{Name: decl.Name}
	}
	if len(decl.Parameters) == 0 {
		return &NoBindingParameterError{Name: decl.Name}
	}
	bindingRef, err := ParseQualifiedName(decl.Parameters[0].Type.Name)
	if err != nil {
		return err
	}
	binding := c.index.FindChildType(bindingRef)

	a := &Action{
		Name:    decl.Name,
		Binding: binding,
		OData:   newOData(false, decl.Annotations),
	}
	for _, p := range decl.Parameters[1:] {
		cp, perr := c.compileActionParameter(out, p)
		if perr != nil {
			return &ActionParameterError{Name: p.Name, Err: perr}
		}
		a.Parameters = append(a.Parameters, cp)
	}
	if decl.ReturnType != nil {
		ret, rerr := c.compileActionReturn(out, decl.ReturnType)
		if rerr != nil {
			return &ActionReturnTypeError{Err: rerr}
		}
		a.ReturnType = ret
	}
	out.addAction(binding, a)
	return nil
}

// compileActionParameter compiles one payload parameter. A parameter
// whose type resolves to an entity type is a reference to an existing
// resource; anything else is a value resolved like a structural property.
func (c *context) compileActionParameter(out *Compiled, p csdl.Parameter) (Parameter, error) {
	ref, err := ParseQualifiedName(p.Type.Name)
	if err != nil {
		return Parameter{}, err
	}
	if !ref.Namespace.IsEdm() {
		if target, _, eerr := c.index.FindChildEntityType(ref); eerr == nil {
			return Parameter{
				Name:       p.Name,
				Entity:     true,
				Type:       target,
				Collection: p.Type.Collection,
				Nullable:   csdl.IsNullable(p.Nullable),
				OData:      newOData(false, p.Annotations),
				Redfish:    newRedfishProperty(p.Annotations),
			}, nil
		}
	}
	resolved, info, err := c.ensureType(out, ref)
	if err != nil {
		return Parameter{}, err
	}
	return Parameter{
		Name:       p.Name,
		Class:      info.Class,
		Type:       resolved,
		Collection: p.Type.Collection,
		Nullable:   csdl.IsNullable(p.Nullable),
		OData:      newOData(false, p.Annotations),
		Redfish:    newRedfishProperty(p.Annotations),
	}, nil
}

func (c *context) compileActionReturn(out *Compiled, rt *csdl.ReturnType) (*ActionReturn, error) {
	ref, err := ParseQualifiedName(rt.Type.Name)
	if err != nil {
		return nil, err
	}
	var resolved QualifiedName
	if !ref.Namespace.IsEdm() {
		if target, _, eerr := c.index.FindChildEntityType(ref); eerr == nil {
			resolved = target
		}
	}
	if resolved.IsZero() {
		resolved, _, err = c.ensureType(out, ref)
		if err != nil {
			return nil, err
		}
	}
	return &ActionReturn{
		Type:       resolved,
		Collection: rt.Type.Collection,
		Nullable:   csdl.IsNullable(rt.Nullable),
	}, nil
}

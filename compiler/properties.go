package compiler

import (
	"github.com/redfish-tools/redfishgen/csdl"
)

// Properties are the compiled properties of a structured type, structural
// and navigation separated.
type Properties struct {
	Properties    []Property
	NavProperties []NavProperty
}

// Property is a compiled structural property.
type Property struct {
	Name       string
	Class      TypeClass
	Type       QualifiedName
	Collection bool
	Nullable   bool
	OData      OData
	Redfish    RedfishProperty
}

// NavPropertyKind tells the generator how a navigation property is
// represented.
type NavPropertyKind int

const (
	// NavReference serializes as a bare @odata.id link.
	NavReference NavPropertyKind = iota
	// NavExpandable may carry the full target representation inline.
	NavExpandable
)

func (k NavPropertyKind) String() string {
	if k == NavExpandable {
		return "expandable"
	}
	return "reference"
}

// NavProperty is a compiled navigation property.
type NavProperty struct {
	Name string
	Kind NavPropertyKind
	// Target is the resolved most specific target type.
	Target     QualifiedName
	Collection bool
	Nullable   bool
	OData      OData
	Redfish    RedfishProperty
}

// compileProperties compiles the declared properties of a structured type
// into the model, resolving every referenced type along the way.
func (c *context) compileProperties(out *Compiled, props []csdl.Property) (Properties, error) {
	var result Properties
	for _, p := range props {
		switch {
		case p.Structural != nil:
			cp, err := c.compileStructuralProperty(out, p.Name, p.Structural)
			if err != nil {
				return Properties{}, &PropertyError{Name: p.Name, Err: err}
			}
			result.Properties = append(result.Properties, cp)
		case p.Navigation != nil:
			np, err := c.compileNavigationProperty(out, p.Name, p.Navigation)
			if err != nil {
				return Properties{}, &PropertyError{Name: p.Name, Err: err}
			}
			result.NavProperties = append(result.NavProperties, np)
		}
	}
	return result, nil
}

func (c *context) compileStructuralProperty(out *Compiled, name string, sp *csdl.StructuralProperty) (Property, error) {
	ref, err := ParseQualifiedName(sp.Type.Name)
	if err != nil {
		return Property{}, err
	}
	resolved, info, err := c.ensureType(out, ref)
	if err != nil {
		return Property{}, err
	}
	return Property{
		Name:       name,
		Class:      info.Class,
		Type:       resolved,
		Collection: sp.Type.Collection,
		Nullable:   csdl.IsNullable(sp.Nullable),
		OData:      newOData(false, sp.Annotations),
		Redfish:    newRedfishProperty(sp.Annotations),
	}, nil
}

// compileNavigationProperty resolves the target to its most specific
// variant and decides between full compilation and a bare reference. A
// target is compiled in full when the root set or the filter wants it, or
// when the property carries an excerpt copy of it; only wanted targets
// become expandable.
func (c *context) compileNavigationProperty(out *Compiled, name string, np *csdl.NavigationProperty) (NavProperty, error) {
	ref, err := ParseQualifiedName(np.Type.Name)
	if err != nil {
		return NavProperty{}, err
	}
	target, et, err := c.index.FindChildEntityType(ref)
	if err != nil {
		return NavProperty{}, err
	}
	redfish := newRedfishProperty(np.Annotations)
	wanted := c.wanted(target)
	if (wanted || redfish.ExcerptCopy != nil) && !c.stack.ContainsEntityType(target) {
		if err := c.compileEntityType(out, target, et); err != nil {
			return NavProperty{}, &EntityTypeError{Name: target, Err: err}
		}
	}
	if redfish.ExcerptCopy != nil {
		out.addExcerptCopy(target, *redfish.ExcerptCopy)
	}
	kind := NavReference
	if wanted {
		kind = NavExpandable
	}
	return NavProperty{
		Name:       name,
		Kind:       kind,
		Target:     target,
		Collection: np.Type.Collection,
		Nullable:   csdl.IsNullable(np.Nullable),
		OData:      newOData(false, np.Annotations),
		Redfish:    redfish,
	}, nil
}

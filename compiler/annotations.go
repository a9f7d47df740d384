package compiler

import "github.com/redfish-tools/redfishgen/csdl"

// OData is the OData and Capabilities metadata of a compiled element.
type OData struct {
	// MustHaveID is set on entity types, whose instances always carry an
	// @odata.id.
	MustHaveID bool
	// MustHaveType is set on types serialized with an explicit
	// @odata.type, such as service roots compiled in bulk mode.
	MustHaveType bool
	Description  string
	// LongDescription is the normative description.
	LongDescription string
	// Permissions is the declared access mode, nil when unspecified.
	Permissions *csdl.Permissions
	// AdditionalProperties is nil when the schema leaves the OData
	// default (true) in place.
	AdditionalProperties *bool
	Insertable           *csdl.Capability
	Updatable            *csdl.Capability
	Deletable            *csdl.Capability
}

// newOData captures the OData metadata of an annotated element.
func newOData(mustHaveID bool, a csdl.Annotations) OData {
	od := OData{
		MustHaveID:           mustHaveID,
		Description:          a.Description(),
		LongDescription:      a.LongDescription(),
		AdditionalProperties: a.AdditionalProperties(),
		Insertable:           a.Insertable(),
		Updatable:            a.Updatable(),
		Deletable:            a.Deletable(),
	}
	if p, ok := a.Permissions(); ok {
		od.Permissions = &p
	}
	return od
}

// IsReadOnly reports whether the element's declared permissions exclude
// writing.
func (od OData) IsReadOnly() bool {
	return od.Permissions != nil && *od.Permissions == csdl.PermissionsRead
}

// RedfishProperty is the Redfish vocabulary metadata of a compiled
// property.
type RedfishProperty struct {
	Required         bool
	RequiredOnCreate bool
	// ExcerptOnly marks properties present only in excerpt copies.
	ExcerptOnly bool
	// Excerpt marks the property for inclusion in excerpt copies.
	Excerpt *csdl.Excerpt
	// ExcerptCopy marks a navigation property carrying an excerpt of its
	// target.
	ExcerptCopy *csdl.ExcerptCopy
}

func newRedfishProperty(a csdl.Annotations) RedfishProperty {
	return RedfishProperty{
		Required:         a.IsRequired(),
		RequiredOnCreate: a.IsRequiredOnCreate(),
		ExcerptOnly:      a.IsExcerptCopyOnly(),
		Excerpt:          a.Excerpt(),
		ExcerptCopy:      a.ExcerptCopy(),
	}
}

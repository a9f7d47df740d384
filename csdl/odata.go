package csdl

// Terms of the core OData and Capabilities vocabularies that Redfish
// schemas apply.
const (
	TermDescription          = "OData.Description"
	TermLongDescription      = "OData.LongDescription"
	TermPermissions          = "OData.Permissions"
	TermAdditionalProperties = "OData.AdditionalProperties"
	TermInsertRestrictions   = "Capabilities.InsertRestrictions"
	TermUpdateRestrictions   = "Capabilities.UpdateRestrictions"
	TermDeleteRestrictions   = "Capabilities.DeleteRestrictions"
)

// Permissions is the access mode granted by an OData.Permissions
// annotation.
type Permissions int

const (
	PermissionsRead Permissions = iota
	PermissionsWrite
	PermissionsReadWrite
)

func (p Permissions) String() string {
	switch p {
	case PermissionsRead:
		return "Read"
	case PermissionsWrite:
		return "Write"
	case PermissionsReadWrite:
		return "ReadWrite"
	}
	return "Unknown"
}

// Capability is one of the Capabilities vocabulary restriction records: a
// flag stating whether the operation is supported, plus an optional
// description of the conditions.
type Capability struct {
	Value       bool
	Description string
}

// Description returns the OData.Description string, empty when absent.
func (a Annotations) Description() string {
	return a.stringTerm(TermDescription)
}

// LongDescription returns the OData.LongDescription string, empty when
// absent.
func (a Annotations) LongDescription() string {
	return a.stringTerm(TermLongDescription)
}

// Permissions returns the access mode granted by OData.Permissions, false
// when the term is absent or carries an unknown member.
func (a Annotations) Permissions() (Permissions, bool) {
	an, ok := a.Find(TermPermissions)
	if !ok {
		return 0, false
	}
	switch an.EnumMember {
	case "Read":
		return PermissionsRead, true
	case "Write":
		return PermissionsWrite, true
	case "ReadWrite":
		return PermissionsReadWrite, true
	}
	return 0, false
}

// AdditionalProperties returns the OData.AdditionalProperties flag, nil
// when the term is absent.
func (a Annotations) AdditionalProperties() *bool {
	an, ok := a.Find(TermAdditionalProperties)
	if !ok {
		return nil
	}
	if an.Bool == nil {
		t := true
		return &t
	}
	return an.Bool
}

// Insertable returns the Capabilities.InsertRestrictions record, nil when
// absent.
func (a Annotations) Insertable() *Capability {
	return a.capability(TermInsertRestrictions, "Insertable")
}

// Updatable returns the Capabilities.UpdateRestrictions record, nil when
// absent.
func (a Annotations) Updatable() *Capability {
	return a.capability(TermUpdateRestrictions, "Updatable")
}

// Deletable returns the Capabilities.DeleteRestrictions record, nil when
// absent.
func (a Annotations) Deletable() *Capability {
	return a.capability(TermDeleteRestrictions, "Deletable")
}

func (a Annotations) capability(term, flag string) *Capability {
	v, ok := a.recordBool(term, flag)
	if !ok {
		return nil
	}
	return &Capability{Value: v, Description: a.recordString(term, "Description")}
}

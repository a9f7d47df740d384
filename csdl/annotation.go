package csdl

// Annotation is one applied annotation term. The value fields mirror the
// constant expression kinds Redfish schemas actually use: a string, a
// boolean, an enum member path, or a record of nested annotations.
type Annotation struct {
	// Term is the qualified term name, e.g. "OData.Description".
	Term string
	// String is the string value, if the annotation carries one.
	String string
	// Bool is the boolean value, nil if the annotation carries none. An
	// annotation applied with no explicit value defaults to Bool true.
	Bool *bool
	// EnumMember is the member path of an enum-valued annotation, with the
	// type prefix stripped, e.g. "Read" for "OData.Permission/Read".
	EnumMember string
	// Record holds the properties of a record-valued annotation.
	Record *Record
}

// Record is the property set of a record-valued annotation.
type Record struct {
	Properties []RecordProperty
}

// RecordProperty is one property of an annotation record.
type RecordProperty struct {
	Name   string
	String string
	Bool   *bool
}

// Annotations is the ordered list of annotations applied to a model
// element.
type Annotations []Annotation

// Find returns the first annotation with the given term.
func (a Annotations) Find(term string) (Annotation, bool) {
	for _, an := range a {
		if an.Term == term {
			return an, true
		}
	}
	return Annotation{}, false
}

// boolTerm resolves a boolean-valued term, treating an applied term with no
// explicit value as true.
func (a Annotations) boolTerm(term string) bool {
	an, ok := a.Find(term)
	if !ok {
		return false
	}
	return an.Bool == nil || *an.Bool
}

// stringTerm resolves a string-valued term, empty when absent.
func (a Annotations) stringTerm(term string) string {
	an, _ := a.Find(term)
	return an.String
}

// recordBool reads a boolean property out of a record-valued term.
func (a Annotations) recordBool(term, prop string) (bool, bool) {
	an, ok := a.Find(term)
	if !ok || an.Record == nil {
		return false, false
	}
	for _, p := range an.Record.Properties {
		if p.Name == prop {
			if p.Bool == nil {
				return true, true
			}
			return *p.Bool, true
		}
	}
	return false, false
}

// recordString reads a string property out of a record-valued term.
func (a Annotations) recordString(term, prop string) string {
	an, ok := a.Find(term)
	if !ok || an.Record == nil {
		return ""
	}
	for _, p := range an.Record.Properties {
		if p.Name == prop {
			return p.String
		}
	}
	return ""
}

// Package compiler turns a set of CSDL schema documents into a compiled,
// self-contained model of the resource types a Redfish service exposes.
//
// Compilation is demand driven: starting from a root set of types, the
// compiler follows type references and navigation properties, resolving
// each referenced type to its most specific variant across all loaded
// schema versions. The result is a Compiled model the generator and the
// optimizer operate on.
package compiler

import (
	"strings"
)

// edmNamespace is the namespace of the OData primitive types.
const edmNamespace Namespace = "Edm"

// Namespace is a dotted schema namespace, e.g. "Resource.v1_0_0".
type Namespace string

// Segments splits the namespace on dots.
func (n Namespace) Segments() []string {
	return strings.Split(string(n), ".")
}

// IsEdm reports whether the namespace holds the OData primitive types.
func (n Namespace) IsEdm() bool {
	return n == edmNamespace
}

// QualifiedName identifies a schema type: a namespace plus a local name.
// It is comparable and used as a map key throughout the compiler.
type QualifiedName struct {
	Namespace Namespace
	Name      string
}

// ParseQualifiedName splits a dotted type name into namespace and local
// name at the last dot.
func ParseQualifiedName(s string) (QualifiedName, error) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 {
		return QualifiedName{}, &InvalidTypeNameError{Name: s}
	}
	return QualifiedName{Namespace: Namespace(s[:i]), Name: s[i+1:]}, nil
}

func (q QualifiedName) String() string {
	return string(q.Namespace) + "." + q.Name
}

// IsZero reports whether q is the zero value, used to mean "no type".
func (q QualifiedName) IsZero() bool {
	return q == QualifiedName{}
}

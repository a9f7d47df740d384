package compiler

import "fmt"

// InvalidTypeNameError reports a type reference that is not a dotted
// qualified name.
type InvalidTypeNameError struct {
	Name string
}

func (e *InvalidTypeNameError) Error() string {
	return fmt.Sprintf("invalid type name: %q", e.Name)
}

// EntityTypeNotFoundError reports a reference to an entity type no loaded
// schema declares.
type EntityTypeNotFoundError struct {
	Name QualifiedName
}

func (e *EntityTypeNotFoundError) Error() string {
	return fmt.Sprintf("entity type not found: %v", e.Name)
}

// ComplexTypeNotFoundError reports a reference to a complex type no loaded
// schema declares.
type ComplexTypeNotFoundError struct {
	Name QualifiedName
}

func (e *ComplexTypeNotFoundError) Error() string {
	return fmt.Sprintf("complex type not found: %v", e.Name)
}

// TypeNotFoundError reports a type reference that resolves to no
// declaration of any kind.
type TypeNotFoundError struct {
	Name QualifiedName
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("type not found: %v", e.Name)
}

// NotPrimitiveTypeError reports a type definition whose underlying type is
// not an Edm primitive.
type NotPrimitiveTypeError struct {
	Underlying QualifiedName
}

func (e *NotPrimitiveTypeError) Error() string {
	return fmt.Sprintf("type definition of non-primitive type: %v", e.Underlying)
}

// NotBoundActionError reports an action without the IsBound flag; Redfish
// only uses bound actions.
type NotBoundActionError struct {
	Name string
}

func (e *NotBoundActionError) Error() string {
	return fmt.Sprintf("action is not bound: %s", e.Name)
}

// NoBindingParameterError reports a bound action with an empty parameter
// list, leaving it nothing to bind to.
type NoBindingParameterError struct {
	Name string
}

func (e *NoBindingParameterError) Error() string {
	return fmt.Sprintf("no binding parameter for action: %s", e.Name)
}

// EntityTypeError wraps an error raised while compiling an entity type.
type EntityTypeError struct {
	Name QualifiedName
	Err  error
}

func (e *EntityTypeError) Error() string {
	return fmt.Sprintf("while compiling entity type %v: %v", e.Name, e.Err)
}

func (e *EntityTypeError) Unwrap() error { return e.Err }

// TypeError wraps an error raised while resolving a type reference.
type TypeError struct {
	Name QualifiedName
	Err  error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("while compiling type %v: %v", e.Name, e.Err)
}

func (e *TypeError) Unwrap() error { return e.Err }

// TypeDefinitionError wraps an error raised while compiling a type
// definition.
type TypeDefinitionError struct {
	Name QualifiedName
	Err  error
}

func (e *TypeDefinitionError) Error() string {
	return fmt.Sprintf("while compiling type definition %v: %v", e.Name, e.Err)
}

func (e *TypeDefinitionError) Unwrap() error { return e.Err }

// PropertyError wraps an error raised while compiling a property.
type PropertyError struct {
	Name string
	Err  error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("while compiling property %s: %v", e.Name, e.Err)
}

func (e *PropertyError) Unwrap() error { return e.Err }

// ActionError wraps an error raised while compiling an action.
type ActionError struct {
	Name string
	Err  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("while compiling action %s: %v", e.Name, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// ActionReturnTypeError wraps an error raised while compiling an action's
// return type.
type ActionReturnTypeError struct {
	Err error
}

func (e *ActionReturnTypeError) Error() string {
	return fmt.Sprintf("while compiling action return type: %v", e.Err)
}

func (e *ActionReturnTypeError) Unwrap() error { return e.Err }

// ActionParameterError wraps an error raised while compiling an action
// parameter.
type ActionParameterError struct {
	Name string
	Err  error
}

func (e *ActionParameterError) Error() string {
	return fmt.Sprintf("while compiling action parameter %s: %v", e.Name, e.Err)
}

func (e *ActionParameterError) Unwrap() error { return e.Err }

// SingletonNotFoundError reports a root singleton name no entity
// container declares.
type SingletonNotFoundError struct {
	Name string
}

func (e *SingletonNotFoundError) Error() string {
	return fmt.Sprintf("singleton not found: %s", e.Name)
}

// SingletonError wraps an error raised while compiling a service
// singleton's type.
type SingletonError struct {
	Name string
	Err  error
}

func (e *SingletonError) Error() string {
	return fmt.Sprintf("while compiling singleton %s: %v", e.Name, e.Err)
}

func (e *SingletonError) Unwrap() error { return e.Err }

// SchemaError wraps an error raised while compiling the declarations of a
// schema.
type SchemaError struct {
	Namespace Namespace
	Err       error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("while compiling schema %s: %v", e.Namespace, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

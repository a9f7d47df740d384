package compiler

// TypeClass classifies a resolved type reference for the generator.
type TypeClass int

const (
	// ClassSimple is an Edm primitive.
	ClassSimple TypeClass = iota
	// ClassEnum is an enumeration type.
	ClassEnum
	// ClassTypeDefinition is a named primitive type.
	ClassTypeDefinition
	// ClassComplex is a structured complex type.
	ClassComplex
)

func (c TypeClass) String() string {
	switch c {
	case ClassSimple:
		return "simple"
	case ClassEnum:
		return "enum"
	case ClassTypeDefinition:
		return "type definition"
	case ClassComplex:
		return "complex"
	}
	return "unknown"
}

// TypeInfo is what property compilation needs to know about a resolved
// type without revisiting its declaration.
type TypeInfo struct {
	Class TypeClass
	// ReadOnly is set for complex types whose every property is
	// read-only; the generator omits them from write requests.
	ReadOnly bool
}

// Stack is the visited ledger of one compilation run. Marking a type
// before descending into its properties terminates reference cycles, and
// the cached TypeInfo spares re-resolving types referenced from several
// places. A Stack is shared by pointer through an entire run.
type Stack struct {
	entityTypes     map[QualifiedName]struct{}
	complexTypes    map[QualifiedName]TypeInfo
	typeDefinitions map[QualifiedName]TypeInfo
	enumTypes       map[QualifiedName]struct{}
}

// NewStack returns an empty visited ledger.
func NewStack() *Stack {
	return &Stack{
		entityTypes:     map[QualifiedName]struct{}{},
		complexTypes:    map[QualifiedName]TypeInfo{},
		typeDefinitions: map[QualifiedName]TypeInfo{},
		enumTypes:       map[QualifiedName]struct{}{},
	}
}

// MarkEntityType records an entity type as visited.
func (s *Stack) MarkEntityType(q QualifiedName) {
	s.entityTypes[q] = struct{}{}
}

// ContainsEntityType reports whether the entity type was already visited.
func (s *Stack) ContainsEntityType(q QualifiedName) bool {
	_, ok := s.entityTypes[q]
	return ok
}

// MarkComplexType records a complex type with its resolved info. Marking
// happens before property compilation with conservative info, then again
// after with the final info, so cyclic references resolve to something.
func (s *Stack) MarkComplexType(q QualifiedName, info TypeInfo) {
	s.complexTypes[q] = info
}

// ComplexType returns the cached info of a visited complex type.
func (s *Stack) ComplexType(q QualifiedName) (TypeInfo, bool) {
	info, ok := s.complexTypes[q]
	return info, ok
}

// MarkTypeDefinition records a type definition with its resolved info.
func (s *Stack) MarkTypeDefinition(q QualifiedName, info TypeInfo) {
	s.typeDefinitions[q] = info
}

// TypeDefinition returns the cached info of a visited type definition.
func (s *Stack) TypeDefinition(q QualifiedName) (TypeInfo, bool) {
	info, ok := s.typeDefinitions[q]
	return info, ok
}

// MarkEnumType records an enum type as visited.
func (s *Stack) MarkEnumType(q QualifiedName) {
	s.enumTypes[q] = struct{}{}
}

// ContainsEnumType reports whether the enum type was already visited.
func (s *Stack) ContainsEnumType(q QualifiedName) bool {
	_, ok := s.enumTypes[q]
	return ok
}

package compiler

import (
	"sort"

	"github.com/redfish-tools/redfishgen/csdl"
)

// SchemaIndex resolves qualified names across every loaded document and
// records the subtype relation between schema versions. Redfish publishes
// each resource revision as a new namespace whose types derive from the
// previous revision, so "most specific version" means "deepest child that
// still adds something".
type SchemaIndex struct {
	schemas  map[Namespace]*csdl.Schema
	children map[QualifiedName][]QualifiedName
}

// BuildIndex indexes every schema of the given documents and builds the
// base-to-children map from entity and complex type declarations.
func BuildIndex(docs []*csdl.Document) (*SchemaIndex, error) {
	idx := &SchemaIndex{
		schemas:  map[Namespace]*csdl.Schema{},
		children: map[QualifiedName][]QualifiedName{},
	}
	for _, doc := range docs {
		for _, s := range doc.Schemas {
			idx.schemas[Namespace(s.Namespace)] = s
		}
	}
	for ns, s := range idx.schemas {
		for name, et := range s.EntityTypes {
			if et.BaseType == "" {
				continue
			}
			base, err := ParseQualifiedName(et.BaseType)
			if err != nil {
				return nil, err
			}
			child := QualifiedName{Namespace: ns, Name: name}
			idx.children[base] = append(idx.children[base], child)
		}
		for name, ct := range s.ComplexTypes {
			if ct.BaseType == "" {
				continue
			}
			base, err := ParseQualifiedName(ct.BaseType)
			if err != nil {
				return nil, err
			}
			child := QualifiedName{Namespace: ns, Name: name}
			idx.children[base] = append(idx.children[base], child)
		}
	}
	// Map iteration order leaks into child order; sort for stable walks.
	for _, cs := range idx.children {
		sort.Slice(cs, func(i, j int) bool { return cs[i].String() < cs[j].String() })
	}
	return idx, nil
}

// Schema returns the schema declaring the given namespace, nil if no
// document declares it.
func (idx *SchemaIndex) Schema(ns Namespace) *csdl.Schema {
	return idx.schemas[ns]
}

// EntityType resolves a qualified name to an entity type declaration.
func (idx *SchemaIndex) EntityType(q QualifiedName) (*csdl.EntityType, bool) {
	s, ok := idx.schemas[q.Namespace]
	if !ok {
		return nil, false
	}
	et, ok := s.EntityTypes[q.Name]
	return et, ok
}

// ComplexType resolves a qualified name to a complex type declaration.
func (idx *SchemaIndex) ComplexType(q QualifiedName) (*csdl.ComplexType, bool) {
	s, ok := idx.schemas[q.Namespace]
	if !ok {
		return nil, false
	}
	ct, ok := s.ComplexTypes[q.Name]
	return ct, ok
}

// EnumType resolves a qualified name to an enum type declaration.
func (idx *SchemaIndex) EnumType(q QualifiedName) (*csdl.EnumType, bool) {
	s, ok := idx.schemas[q.Namespace]
	if !ok {
		return nil, false
	}
	et, ok := s.EnumTypes[q.Name]
	return et, ok
}

// TypeDefinition resolves a qualified name to a type definition.
func (idx *SchemaIndex) TypeDefinition(q QualifiedName) (*csdl.TypeDefinition, bool) {
	s, ok := idx.schemas[q.Namespace]
	if !ok {
		return nil, false
	}
	td, ok := s.TypeDefinitions[q.Name]
	return td, ok
}

// FindChildType walks down the subtype tree from q to the most specific
// variant. Descent continues while exactly one child adds a property;
// when several children do, the walk stops at the fork so the compiler
// never picks among sibling revisions.
func (idx *SchemaIndex) FindChildType(q QualifiedName) QualifiedName {
	for {
		var next QualifiedName
		qualifying := 0
		for _, child := range idx.children[q] {
			if idx.childAddsProperty(child) {
				qualifying++
				next = child
			}
		}
		if qualifying != 1 {
			return q
		}
		q = next
	}
}

// childAddsProperty reports whether the type declares properties of its
// own, or has a descendant that does. A bare version-bump type with an
// empty body only qualifies through its descendants.
func (idx *SchemaIndex) childAddsProperty(q QualifiedName) bool {
	if et, ok := idx.EntityType(q); ok && len(et.Properties) > 0 {
		return true
	}
	if ct, ok := idx.ComplexType(q); ok && len(ct.Properties) > 0 {
		return true
	}
	for _, child := range idx.children[q] {
		if idx.childAddsProperty(child) {
			return true
		}
	}
	return false
}

// FindChildEntityType resolves q to its most specific variant, requiring
// the result to be a declared entity type.
func (idx *SchemaIndex) FindChildEntityType(q QualifiedName) (QualifiedName, *csdl.EntityType, error) {
	child := idx.FindChildType(q)
	et, ok := idx.EntityType(child)
	if !ok {
		return QualifiedName{}, nil, &EntityTypeNotFoundError{Name: child}
	}
	return child, et, nil
}

// FindChildComplexType resolves q to its most specific variant, requiring
// the result to be a declared complex type.
func (idx *SchemaIndex) FindChildComplexType(q QualifiedName) (QualifiedName, *csdl.ComplexType, error) {
	child := idx.FindChildType(q)
	ct, ok := idx.ComplexType(child)
	if !ok {
		return QualifiedName{}, nil, &ComplexTypeNotFoundError{Name: child}
	}
	return child, ct, nil
}

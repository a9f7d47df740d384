package compiler

import (
	"fmt"
	"io"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/redfish-tools/redfishgen/csdl"
)

// Snapshot is a deterministic flat rendering of a Compiled model. The
// model itself lives in maps; the snapshot sorts everything by name so
// two runs over the same input encode to identical bytes, which makes
// caching and golden-file comparison trivial.
type Snapshot struct {
	EntityTypes     []*EntityType
	ComplexTypes    []*ComplexType
	EnumTypes       []*EnumType
	TypeDefinitions []*TypeDefinition
	Actions         []*Action
	Creatable       []QualifiedName
	ExcerptCopies   []ExcerptCopyEntry
}

// ExcerptCopyEntry records one referenced excerpt projection.
type ExcerptCopyEntry struct {
	Type QualifiedName
	Copy csdl.ExcerptCopy
}

// NewSnapshot flattens a model into sorted slices.
func NewSnapshot(c *Compiled) *Snapshot {
	s := &Snapshot{}
	for _, q := range sortedNames(c.EntityTypes) {
		s.EntityTypes = append(s.EntityTypes, c.EntityTypes[q])
	}
	for _, q := range sortedNames(c.ComplexTypes) {
		s.ComplexTypes = append(s.ComplexTypes, c.ComplexTypes[q])
	}
	for _, q := range sortedNames(c.EnumTypes) {
		s.EnumTypes = append(s.EnumTypes, c.EnumTypes[q])
	}
	for _, q := range sortedNames(c.TypeDefinitions) {
		s.TypeDefinitions = append(s.TypeDefinitions, c.TypeDefinitions[q])
	}
	for _, binding := range sortedNames(c.Actions) {
		acts := c.Actions[binding]
		names := make([]string, 0, len(acts))
		for name := range acts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			s.Actions = append(s.Actions, acts[name])
		}
	}
	for q := range c.Creatable {
		s.Creatable = append(s.Creatable, q)
	}
	sort.Slice(s.Creatable, func(i, j int) bool {
		return s.Creatable[i].String() < s.Creatable[j].String()
	})
	for _, q := range sortedNames(c.ExcerptCopies) {
		copies := make([]csdl.ExcerptCopy, 0, len(c.ExcerptCopies[q]))
		for ec := range c.ExcerptCopies[q] {
			copies = append(copies, ec)
		}
		sort.Slice(copies, func(i, j int) bool {
			if copies[i].AllKeys != copies[j].AllKeys {
				return copies[i].AllKeys
			}
			return copies[i].Key < copies[j].Key
		})
		for _, ec := range copies {
			s.ExcerptCopies = append(s.ExcerptCopies, ExcerptCopyEntry{Type: q, Copy: ec})
		}
	}
	return s
}

// Compiled rebuilds the map-keyed model from a snapshot.
func (s *Snapshot) Compiled() *Compiled {
	c := NewCompiled()
	for _, t := range s.EntityTypes {
		c.EntityTypes[t.Name] = t
	}
	for _, t := range s.ComplexTypes {
		c.ComplexTypes[t.Name] = t
	}
	for _, t := range s.EnumTypes {
		c.EnumTypes[t.Name] = t
	}
	for _, t := range s.TypeDefinitions {
		c.TypeDefinitions[t.Name] = t
	}
	for _, a := range s.Actions {
		c.addAction(a.Binding, a)
	}
	for _, q := range s.Creatable {
		c.Creatable[q] = struct{}{}
	}
	for _, e := range s.ExcerptCopies {
		c.addExcerptCopy(e.Type, e.Copy)
	}
	return c
}

// EncodeSnapshot writes the model's snapshot in msgpack framing.
func EncodeSnapshot(w io.Writer, c *Compiled) error {
	if err := msgpack.NewEncoder(w).Encode(NewSnapshot(c)); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a model back from msgpack framing.
func DecodeSnapshot(r io.Reader) (*Compiled, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return s.Compiled(), nil
}

func sortedNames[V any](m map[QualifiedName]V) []QualifiedName {
	names := make([]QualifiedName, 0, len(m))
	for q := range m {
		names = append(names, q)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].String() < names[j].String() })
	return names
}

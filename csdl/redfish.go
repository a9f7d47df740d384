package csdl

import (
	"sort"
	"strings"
)

// Terms of the Redfish vocabulary applied to properties.
const (
	TermRequired         = "Redfish.Required"
	TermRequiredOnCreate = "Redfish.RequiredOnCreate"
	TermExcerptCopyOnly  = "Redfish.ExcerptCopyOnly"
	TermExcerpt          = "Redfish.Excerpt"
	TermExcerptCopy      = "Redfish.ExcerptCopy"
)

// IsRequired reports whether the property carries Redfish.Required.
func (a Annotations) IsRequired() bool {
	return a.boolTerm(TermRequired)
}

// IsRequiredOnCreate reports whether the property carries
// Redfish.RequiredOnCreate.
func (a Annotations) IsRequiredOnCreate() bool {
	return a.boolTerm(TermRequiredOnCreate)
}

// IsExcerptCopyOnly reports whether the property only appears in excerpt
// copies, never in the full resource representation.
func (a Annotations) IsExcerptCopyOnly() bool {
	return a.boolTerm(TermExcerptCopyOnly)
}

// Excerpt marks a property for inclusion in excerpt copies of its type.
// The annotation's string value is a comma-separated list of excerpt keys;
// an empty value means the property belongs to every excerpt.
type Excerpt struct {
	// All reports whether the property belongs to every excerpt of the
	// type.
	All bool
	// Keys are the excerpt keys the property belongs to, sorted. Empty
	// when All is set.
	Keys []string
}

// ExcerptCopy marks a navigation property as carrying an excerpt copy of
// its target instead of a reference. The key selects which excerpt of the
// target to copy; AllKeys copies the unrestricted excerpt.
type ExcerptCopy struct {
	AllKeys bool
	Key     string
}

// Excerpt returns the property's Redfish.Excerpt marking, nil when absent.
func (a Annotations) Excerpt() *Excerpt {
	an, ok := a.Find(TermExcerpt)
	if !ok {
		return nil
	}
	return parseExcerpt(an.String)
}

func parseExcerpt(s string) *Excerpt {
	if s == "" {
		return &Excerpt{All: true}
	}
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return &Excerpt{All: true}
	}
	sort.Strings(keys)
	return &Excerpt{Keys: keys}
}

// ExcerptCopy returns the property's Redfish.ExcerptCopy marking, nil when
// absent.
func (a Annotations) ExcerptCopy() *ExcerptCopy {
	an, ok := a.Find(TermExcerptCopy)
	if !ok {
		return nil
	}
	if s := strings.TrimSpace(an.String); s != "" {
		return &ExcerptCopy{Key: s}
	}
	return &ExcerptCopy{AllKeys: true}
}

// Matches reports whether a property marked with this excerpt belongs in
// the excerpt copy selected by c. An unrestricted property belongs in
// every copy; a keyed property belongs only in copies selecting one of its
// keys.
func (e *Excerpt) Matches(c ExcerptCopy) bool {
	if e.All {
		return true
	}
	if c.AllKeys {
		return false
	}
	for _, k := range e.Keys {
		if k == c.Key {
			return true
		}
	}
	return false
}

// Package gen renders a compiled schema model into Go source: one struct
// per resource type, string-typed enums, excerpt projection structs, and
// action request payloads.
package gen

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/redfish-tools/redfishgen/compiler"
)

// splitName splits a string on hyphens and underscores.
func splitName(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
}

// ToPascalCase transforms a kebab-case or snake_case string into PascalCase.
func ToPascalCase(name string) string {
	parts := splitName(name)
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		for _, r := range runes[1:] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CommonAcronyms defines a set of common abbreviations that should be fully
// uppercased when generating Go names.
var CommonAcronyms = map[string]string{
	"id":   "ID",
	"uri":  "URI",
	"url":  "URL",
	"uuid": "UUID",
	"api":  "API",
	"http": "HTTP",
	"ip":   "IP",
	"mac":  "MAC",
	"vlan": "VLAN",
}

// ToPascalCaseAcronyms transforms a string into PascalCase while preserving
// the casing of common Go acronyms. Schema names arrive in camel case, so
// words are split on case boundaries too: "MemberId" becomes "MemberID".
func ToPascalCaseAcronyms(name string) string {
	var b strings.Builder
	for _, part := range splitName(name) {
		for _, word := range splitCamel(part) {
			if acronym, ok := CommonAcronyms[strings.ToLower(word)]; ok {
				b.WriteString(acronym)
				continue
			}
			runes := []rune(word)
			b.WriteRune(unicode.ToUpper(runes[0]))
			for _, r := range runes[1:] {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// splitCamel splits a camel-case word on lower-to-upper boundaries,
// keeping uppercase runs together: "MACAddress" yields MAC, Address.
func splitCamel(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		boundary := unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i])
		if i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsUpper(runes[i]) && unicode.IsLower(runes[i+1]) {
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

// nameTable assigns a unique Go type name to every compiled type. Redfish
// spreads versions of one type over namespaces like Chassis.v1_2_0, so
// the local name alone is usually enough; when two namespaces declare the
// same local name, the loser gets its namespace family prefixed.
type nameTable struct {
	names map[compiler.QualifiedName]string
}

// familyOf strips the version segment from a namespace: Chassis.v1_2_0
// and Chassis both belong to the Chassis family.
func familyOf(ns compiler.Namespace) string {
	return ns.Segments()[0]
}

func buildNameTable(types []compiler.QualifiedName, caser func(string) string) *nameTable {
	sorted := append([]compiler.QualifiedName{}, types...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].String() < sorted[j].String() })

	byLocal := map[string][]compiler.QualifiedName{}
	for _, q := range sorted {
		byLocal[q.Name] = append(byLocal[q.Name], q)
	}

	t := &nameTable{names: map[compiler.QualifiedName]string{}}
	for _, q := range sorted {
		local := caser(q.Name)
		group := byLocal[q.Name]
		if len(group) == 1 {
			t.names[q] = local
			continue
		}
		// Families collide on the local name. Keep the bare name for the
		// type declared in its own family; prefix the rest.
		family := familyOf(q.Namespace)
		if family == q.Name {
			t.names[q] = local
		} else {
			t.names[q] = caser(family) + local
		}
	}
	// A prefix can itself collide with another bare name; number the
	// stragglers deterministically.
	used := map[string]compiler.QualifiedName{}
	for _, q := range sorted {
		name := t.names[q]
		if _, taken := used[name]; taken {
			base := name
			for i := 2; ; i++ {
				name = base + strconv.Itoa(i)
				if _, taken := used[name]; !taken {
					break
				}
			}
			t.names[q] = name
		}
		used[name] = q
	}
	return t
}

// Name returns the assigned Go type name for q.
func (t *nameTable) Name(q compiler.QualifiedName) string {
	if name, ok := t.names[q]; ok {
		return name
	}
	// Unindexed names are references to types outside the model.
	return ToPascalCase(q.Name)
}

package csdl

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Load reads one CSDL JSON document. The reader must produce an OData CSDL
// JSON object: control keys start with "$", every other top-level key
// names a schema.
//
// JSON objects carry no member order, so Load sorts type members and
// properties by name. Everything downstream is order-independent, which
// also keeps repeated runs over the same input deterministic.
func Load(r io.Reader) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding CSDL document: %w", err)
	}
	doc := &Document{}
	names := make([]string, 0, len(raw))
	for k := range raw {
		if !strings.HasPrefix(k, "$") {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	for _, ns := range names {
		schema, err := loadSchema(ns, raw[ns])
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", ns, err)
		}
		doc.Schemas = append(doc.Schemas, schema)
	}
	return doc, nil
}

// LoadFile reads the CSDL JSON document at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func loadSchema(ns string, raw json.RawMessage) (*Schema, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, err
	}
	s := &Schema{
		Namespace:       ns,
		EntityTypes:     map[string]*EntityType{},
		ComplexTypes:    map[string]*ComplexType{},
		EnumTypes:       map[string]*EnumType{},
		TypeDefinitions: map[string]*TypeDefinition{},
	}
	names := sortedKeys(members)
	for _, name := range names {
		if strings.HasPrefix(name, "@") {
			an, err := loadAnnotation(name[1:], members[name])
			if err != nil {
				return nil, fmt.Errorf("annotation %s: %w", name, err)
			}
			s.Annotations = append(s.Annotations, an)
			continue
		}
		if strings.HasPrefix(name, "$") {
			continue
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(members[name], &obj); err != nil {
			// Actions arrive as arrays of overloads.
			if acts, aerr := loadActions(name, members[name]); aerr == nil {
				s.Actions = append(s.Actions, acts...)
				continue
			}
			return nil, fmt.Errorf("member %s: %w", name, err)
		}
		kind := rawString(obj["$Kind"])
		switch kind {
		case "EntityType":
			et, err := loadEntityType(name, obj)
			if err != nil {
				return nil, fmt.Errorf("entity type %s: %w", name, err)
			}
			s.EntityTypes[name] = et
		case "ComplexType":
			ct, err := loadComplexType(name, obj)
			if err != nil {
				return nil, fmt.Errorf("complex type %s: %w", name, err)
			}
			s.ComplexTypes[name] = ct
		case "EnumType":
			et, err := loadEnumType(name, obj)
			if err != nil {
				return nil, fmt.Errorf("enum type %s: %w", name, err)
			}
			s.EnumTypes[name] = et
		case "TypeDefinition":
			s.TypeDefinitions[name] = &TypeDefinition{
				Name:           name,
				UnderlyingType: rawString(obj["$UnderlyingType"]),
				Annotations:    loadAnnotations(obj),
			}
		case "EntityContainer":
			c, err := loadContainer(name, obj)
			if err != nil {
				return nil, fmt.Errorf("container %s: %w", name, err)
			}
			s.Containers = append(s.Containers, c)
		case "Action":
			a, err := loadAction(name, obj)
			if err != nil {
				return nil, fmt.Errorf("action %s: %w", name, err)
			}
			s.Actions = append(s.Actions, a)
		default:
			return nil, fmt.Errorf("member %s: unknown kind %q", name, kind)
		}
	}
	return s, nil
}

func loadEntityType(name string, obj map[string]json.RawMessage) (*EntityType, error) {
	et := &EntityType{
		Name:        name,
		BaseType:    rawString(obj["$BaseType"]),
		Abstract:    rawBool(obj["$Abstract"]),
		Annotations: loadAnnotations(obj),
	}
	if raw, ok := obj["$Key"]; ok {
		var refs []string
		if err := json.Unmarshal(raw, &refs); err != nil {
			return nil, fmt.Errorf("key: %w", err)
		}
		k := &Key{}
		for _, r := range refs {
			k.PropertyRefs = append(k.PropertyRefs, PropertyRef{Name: r})
		}
		et.Key = k
	}
	props, err := loadProperties(obj)
	if err != nil {
		return nil, err
	}
	et.Properties = props
	return et, nil
}

func loadComplexType(name string, obj map[string]json.RawMessage) (*ComplexType, error) {
	ct := &ComplexType{
		Name:        name,
		BaseType:    rawString(obj["$BaseType"]),
		Abstract:    rawBool(obj["$Abstract"]),
		Annotations: loadAnnotations(obj),
	}
	props, err := loadProperties(obj)
	if err != nil {
		return nil, err
	}
	ct.Properties = props
	return ct, nil
}

func loadEnumType(name string, obj map[string]json.RawMessage) (*EnumType, error) {
	et := &EnumType{
		Name:           name,
		UnderlyingType: rawString(obj["$UnderlyingType"]),
		Annotations:    loadAnnotations(obj),
	}
	memberAnns := map[string]Annotations{}
	var memberNames []string
	for k, v := range obj {
		if strings.HasPrefix(k, "$") || strings.HasPrefix(k, "@") {
			continue
		}
		if base, term, ok := strings.Cut(k, "@"); ok {
			an, err := loadAnnotation(term, v)
			if err != nil {
				return nil, fmt.Errorf("member annotation %s: %w", k, err)
			}
			memberAnns[base] = append(memberAnns[base], an)
			continue
		}
		memberNames = append(memberNames, k)
	}
	sort.Strings(memberNames)
	for _, m := range memberNames {
		et.Members = append(et.Members, EnumMember{Name: m, Annotations: memberAnns[m]})
	}
	return et, nil
}

func loadProperties(obj map[string]json.RawMessage) ([]Property, error) {
	var props []Property
	for _, name := range sortedKeys(obj) {
		if strings.HasPrefix(name, "$") || strings.Contains(name, "@") {
			continue
		}
		var p map[string]json.RawMessage
		if err := json.Unmarshal(obj[name], &p); err != nil {
			return nil, fmt.Errorf("property %s: %w", name, err)
		}
		ref := TypeRef{Name: rawString(p["$Type"]), Collection: rawBool(p["$Collection"])}
		if ref.Name == "" {
			// The CSDL JSON default type is Edm.String.
			ref.Name = "Edm.String"
		}
		nullable := rawBoolPtr(p["$Nullable"])
		anns := loadAnnotations(p)
		if rawString(p["$Kind"]) == "NavigationProperty" {
			props = append(props, Property{
				Name: name,
				Navigation: &NavigationProperty{
					Type:           ref,
					Nullable:       nullable,
					ContainsTarget: rawBool(p["$ContainsTarget"]),
					Annotations:    anns,
				},
			})
			continue
		}
		props = append(props, Property{
			Name: name,
			Structural: &StructuralProperty{
				Type:        ref,
				Nullable:    nullable,
				Annotations: anns,
			},
		})
	}
	return props, nil
}

func loadContainer(name string, obj map[string]json.RawMessage) (*EntityContainer, error) {
	c := &EntityContainer{Name: name}
	for _, k := range sortedKeys(obj) {
		if strings.HasPrefix(k, "$") || strings.Contains(k, "@") {
			continue
		}
		var m map[string]json.RawMessage
		if err := json.Unmarshal(obj[k], &m); err != nil {
			return nil, fmt.Errorf("member %s: %w", k, err)
		}
		if t := rawString(m["$Type"]); t != "" {
			c.Singletons = append(c.Singletons, Singleton{Name: k, Type: t})
		}
	}
	return c, nil
}

func loadActions(name string, raw json.RawMessage) ([]*Action, error) {
	var overloads []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &overloads); err != nil {
		return nil, err
	}
	var acts []*Action
	for _, obj := range overloads {
		if rawString(obj["$Kind"]) != "Action" {
			return nil, fmt.Errorf("member %s: not an action overload", name)
		}
		a, err := loadAction(name, obj)
		if err != nil {
			return nil, fmt.Errorf("action %s: %w", name, err)
		}
		acts = append(acts, a)
	}
	return acts, nil
}

func loadAction(name string, obj map[string]json.RawMessage) (*Action, error) {
	a := &Action{
		Name:        name,
		IsBound:     rawBool(obj["$IsBound"]),
		Annotations: loadAnnotations(obj),
	}
	if raw, ok := obj["$Parameter"]; ok {
		var params []map[string]json.RawMessage
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, fmt.Errorf("parameters: %w", err)
		}
		for _, p := range params {
			a.Parameters = append(a.Parameters, Parameter{
				Name:        rawString(p["$Name"]),
				Type:        TypeRef{Name: rawString(p["$Type"]), Collection: rawBool(p["$Collection"])},
				Nullable:    rawBoolPtr(p["$Nullable"]),
				Annotations: loadAnnotations(p),
			})
		}
	}
	if raw, ok := obj["$ReturnType"]; ok {
		var rt map[string]json.RawMessage
		if err := json.Unmarshal(raw, &rt); err != nil {
			return nil, fmt.Errorf("return type: %w", err)
		}
		a.ReturnType = &ReturnType{
			Type:     TypeRef{Name: rawString(rt["$Type"]), Collection: rawBool(rt["$Collection"])},
			Nullable: rawBoolPtr(rt["$Nullable"]),
		}
	}
	return a, nil
}

// loadAnnotations collects the "@Term" members of a model element object.
func loadAnnotations(obj map[string]json.RawMessage) Annotations {
	var terms []string
	for k := range obj {
		if strings.HasPrefix(k, "@") {
			terms = append(terms, k)
		}
	}
	sort.Strings(terms)
	var anns Annotations
	for _, k := range terms {
		an, err := loadAnnotation(k[1:], obj[k])
		if err != nil {
			continue
		}
		anns = append(anns, an)
	}
	return anns
}

func loadAnnotation(term string, raw json.RawMessage) (Annotation, error) {
	an := Annotation{Term: term}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return an, err
	}
	switch val := v.(type) {
	case string:
		// Enum-valued terms arrive as "Type/Member" paths.
		if _, member, ok := strings.Cut(val, "/"); ok && an.Term == TermPermissions {
			an.EnumMember = member
		} else {
			an.String = val
		}
	case bool:
		b := val
		an.Bool = &b
	case map[string]any:
		rec := &Record{}
		for _, name := range sortedAnyKeys(val) {
			if strings.HasPrefix(name, "@") || strings.HasPrefix(name, "$") {
				continue
			}
			rp := RecordProperty{Name: name}
			switch pv := val[name].(type) {
			case string:
				rp.String = pv
			case bool:
				b := pv
				rp.Bool = &b
			default:
				continue
			}
			rec.Properties = append(rec.Properties, rp)
		}
		an.Record = rec
	}
	return an, nil
}

func rawString(raw json.RawMessage) string {
	var s string
	if raw == nil || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func rawBool(raw json.RawMessage) bool {
	var b bool
	if raw == nil || json.Unmarshal(raw, &b) != nil {
		return false
	}
	return b
}

func rawBoolPtr(raw json.RawMessage) *bool {
	if raw == nil {
		return nil
	}
	var b bool
	if json.Unmarshal(raw, &b) != nil {
		return nil
	}
	return &b
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedAnyKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

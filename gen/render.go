package gen

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/redfish-tools/redfishgen/compiler"
	"github.com/redfish-tools/redfishgen/csdl"
)

// RenderConfig specifies the settings for generating Go code from a
// compiled model.
type RenderConfig struct {
	// PackageName is the name of the Go package for the generated code.
	PackageName string
	// UseAcronyms, if true, applies Go acronym naming conventions (e.g.,
	// 'ID' instead of 'Id').
	UseAcronyms bool
	// SkipAbstract, if true, excludes abstract resource types from the
	// generated Go code.
	SkipAbstract bool
}

// DefaultConfig returns a standard RenderConfig with sensible defaults.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		PackageName:  "resources",
		UseAcronyms:  true,
		SkipAbstract: true,
	}
}

// Render writes the generated Go source for a compiled model to w.
func Render(w io.Writer, model *compiler.Compiled, cfg RenderConfig) error {
	if cfg.PackageName == "" {
		cfg.PackageName = "resources"
	}
	caser := ToPascalCase
	if cfg.UseAcronyms {
		caser = ToPascalCaseAcronyms
	}

	var all []compiler.QualifiedName
	for q := range model.EntityTypes {
		all = append(all, q)
	}
	for q := range model.ComplexTypes {
		all = append(all, q)
	}
	for q := range model.EnumTypes {
		all = append(all, q)
	}
	for q := range model.TypeDefinitions {
		all = append(all, q)
	}
	names := buildNameTable(all, caser)

	r := &renderer{model: model, cfg: cfg, names: names, caser: caser}
	data := r.build()
	return renderTemplate.Execute(w, data)
}

type renderer struct {
	model *compiler.Compiled
	cfg   RenderConfig
	names *nameTable
	caser func(string) string
}

// --- Template context types ---

type renderData struct {
	PackageName string
	NeedsTime   bool
	Enums       []enumCtx
	Typedefs    []typedefCtx
	Structs     []structCtx
	Actions     []actionCtx
}

type enumCtx struct {
	GoName  string
	Comment string
	Values  []enumValueCtx
}

type enumValueCtx struct {
	GoName  string
	Value   string
	Comment string
}

type typedefCtx struct {
	GoName  string
	GoType  string
	Comment string
}

type structCtx struct {
	GoName   string
	TypeName string
	Comment  string
	Entity   bool
	Fields   []fieldCtx
}

type fieldCtx struct {
	GoName  string
	GoType  string
	Tag     string
	Comment string
}

type actionCtx struct {
	GoName  string
	Comment string
	Fields  []fieldCtx
}

// --- Context builders ---

func (r *renderer) build() *renderData {
	data := &renderData{PackageName: r.cfg.PackageName}

	for _, q := range sortedKeys(r.model.EnumTypes) {
		data.Enums = append(data.Enums, r.buildEnumCtx(q, r.model.EnumTypes[q]))
	}
	for _, q := range sortedKeys(r.model.TypeDefinitions) {
		td := r.model.TypeDefinitions[q]
		data.Typedefs = append(data.Typedefs, typedefCtx{
			GoName:  r.names.Name(q),
			GoType:  edmToGo(td.Underlying),
			Comment: td.OData.Description,
		})
	}
	for _, q := range sortedKeys(r.model.EntityTypes) {
		t := r.model.EntityTypes[q]
		if r.cfg.SkipAbstract && t.Abstract {
			continue
		}
		data.Structs = append(data.Structs, r.buildStructCtx(q, t.Properties, t.OData, true, nil))
		data.NeedsTime = data.NeedsTime || propertiesNeedTime(t.Properties)
		for _, ec := range sortedCopies(r.model.ExcerptCopies[q]) {
			data.Structs = append(data.Structs, r.buildStructCtx(q, t.Properties, t.OData, true, &ec))
		}
	}
	for _, q := range sortedKeys(r.model.ComplexTypes) {
		t := r.model.ComplexTypes[q]
		if r.cfg.SkipAbstract && t.Abstract {
			continue
		}
		data.Structs = append(data.Structs, r.buildStructCtx(q, t.Properties, t.OData, false, nil))
		data.NeedsTime = data.NeedsTime || propertiesNeedTime(t.Properties)
	}
	for _, binding := range sortedKeys(r.model.Actions) {
		acts := r.model.Actions[binding]
		names := make([]string, 0, len(acts))
		for name := range acts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if ctx, ok := r.buildActionCtx(binding, acts[name]); ok {
				data.Actions = append(data.Actions, ctx)
			}
		}
	}
	return data
}

func (r *renderer) buildEnumCtx(q compiler.QualifiedName, t *compiler.EnumType) enumCtx {
	goName := r.names.Name(q)
	ctx := enumCtx{GoName: goName, Comment: t.OData.Description}
	for _, m := range t.Members {
		ctx.Values = append(ctx.Values, enumValueCtx{
			GoName:  goName + r.caser(m.Name),
			Value:   m.Name,
			Comment: m.Description,
		})
	}
	return ctx
}

// buildStructCtx renders one struct. With a non-nil excerpt copy it
// renders the projection instead: only properties whose excerpt marking
// matches the copy, plus excerpt-only properties.
func (r *renderer) buildStructCtx(q compiler.QualifiedName, props compiler.Properties, od compiler.OData, entity bool, copy *csdl.ExcerptCopy) structCtx {
	ctx := structCtx{
		GoName:   r.names.Name(q),
		TypeName: q.String(),
		Comment:  od.Description,
		Entity:   entity,
	}
	if copy != nil {
		ctx.GoName += excerptSuffix(*copy)
		ctx.Comment = strings.TrimSpace(od.Description + " (excerpt)")
	}
	for _, p := range props.Properties {
		if !excerptWants(copy, p.Redfish) {
			continue
		}
		ctx.Fields = append(ctx.Fields, r.buildFieldCtx(p))
	}
	if copy != nil {
		return ctx
	}
	for _, np := range props.NavProperties {
		ctx.Fields = append(ctx.Fields, r.buildNavFieldCtx(np))
	}
	return ctx
}

// excerptWants decides whether a property appears in the rendered view.
// The full view carries everything except excerpt-only properties; an
// excerpt view carries matching excerpt properties and every
// excerpt-only one.
func excerptWants(copy *csdl.ExcerptCopy, rp compiler.RedfishProperty) bool {
	if copy == nil {
		return !rp.ExcerptOnly
	}
	if rp.ExcerptOnly {
		return true
	}
	return rp.Excerpt != nil && rp.Excerpt.Matches(*copy)
}

func excerptSuffix(copy csdl.ExcerptCopy) string {
	if copy.AllKeys {
		return "Excerpt"
	}
	return ToPascalCase(copy.Key) + "Excerpt"
}

func (r *renderer) buildFieldCtx(p compiler.Property) fieldCtx {
	f := fieldCtx{
		GoName:  r.caser(p.Name),
		Comment: p.OData.Description,
	}
	var goType string
	if p.Class == compiler.ClassSimple {
		goType = edmToGo(p.Type)
	} else {
		goType = r.names.Name(p.Type)
	}
	switch {
	case p.Collection:
		goType = "[]" + goType
	case p.Nullable && p.Class != compiler.ClassComplex:
		goType = "*" + goType
	case p.Class == compiler.ClassComplex:
		goType = "*" + goType
	}
	f.GoType = goType
	f.Tag = jsonTag(p.Name, !p.Redfish.Required)
	return f
}

// buildNavFieldCtx renders a navigation property: expandable targets
// embed the target struct, references stay links.
func (r *renderer) buildNavFieldCtx(np compiler.NavProperty) fieldCtx {
	f := fieldCtx{
		GoName:  r.caser(np.Name),
		Comment: np.OData.Description,
	}
	goType := "Link"
	switch {
	case np.Redfish.ExcerptCopy != nil:
		goType = r.names.Name(np.Target) + excerptSuffix(*np.Redfish.ExcerptCopy)
		goType = "*" + goType
	case np.Kind == compiler.NavExpandable:
		goType = "*" + r.names.Name(np.Target)
	}
	if np.Collection {
		goType = "[]" + strings.TrimPrefix(goType, "*")
	}
	f.GoType = goType
	f.Tag = jsonTag(np.Name, !np.Redfish.Required)
	return f
}

// buildActionCtx renders an action request payload. Actions without
// parameters get no struct.
func (r *renderer) buildActionCtx(binding compiler.QualifiedName, a *compiler.Action) (actionCtx, bool) {
	if len(a.Parameters) == 0 {
		return actionCtx{}, false
	}
	ctx := actionCtx{
		GoName:  r.names.Name(binding) + r.caser(a.Name) + "Request",
		Comment: a.OData.Description,
	}
	for _, p := range a.Parameters {
		f := fieldCtx{GoName: r.caser(p.Name), Comment: p.OData.Description}
		var goType string
		switch {
		case p.Entity:
			goType = "Link"
		case p.Class == compiler.ClassSimple:
			goType = edmToGo(p.Type)
		default:
			goType = r.names.Name(p.Type)
		}
		if p.Collection {
			goType = "[]" + goType
		} else if p.Nullable && !p.Entity {
			goType = "*" + goType
		}
		f.GoType = goType
		f.Tag = jsonTag(p.Name, !p.Redfish.Required)
		ctx.Fields = append(ctx.Fields, f)
	}
	return ctx, true
}

func jsonTag(name string, omitempty bool) string {
	if omitempty {
		return fmt.Sprintf("`json:\"%s,omitempty\"`", name)
	}
	return fmt.Sprintf("`json:\"%s\"`", name)
}

// edmToGo maps an Edm primitive to its Go representation.
func edmToGo(q compiler.QualifiedName) string {
	switch q.Name {
	case "String", "Duration", "Guid":
		return "string"
	case "Int64":
		return "int64"
	case "Int32":
		return "int32"
	case "Int16":
		return "int16"
	case "Decimal", "Double":
		return "float64"
	case "Boolean":
		return "bool"
	case "DateTimeOffset":
		return "time.Time"
	case "PrimitiveType":
		return "any"
	default:
		return "string"
	}
}

func propertiesNeedTime(props compiler.Properties) bool {
	for _, p := range props.Properties {
		if p.Class == compiler.ClassSimple && p.Type.Name == "DateTimeOffset" {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[compiler.QualifiedName]V) []compiler.QualifiedName {
	keys := make([]compiler.QualifiedName, 0, len(m))
	for q := range m {
		keys = append(keys, q)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func sortedCopies(set map[csdl.ExcerptCopy]struct{}) []csdl.ExcerptCopy {
	copies := make([]csdl.ExcerptCopy, 0, len(set))
	for ec := range set {
		copies = append(copies, ec)
	}
	sort.Slice(copies, func(i, j int) bool {
		if copies[i].AllKeys != copies[j].AllKeys {
			return copies[i].AllKeys
		}
		return copies[i].Key < copies[j].Key
	})
	return copies
}

// --- Go template ---

var renderTemplate = template.Must(template.New("resources").Parse(`// Code generated by redfishgen. DO NOT EDIT.

package {{.PackageName}}
{{- if .NeedsTime}}

import "time"
{{- end}}

// Link references another resource by its @odata.id.
type Link struct {
	ODataID string ` + "`json:\"@odata.id\"`" + `
}
{{- range .Typedefs}}

{{if .Comment}}// {{.GoName}}: {{.Comment}}
{{end}}type {{.GoName}} {{.GoType}}
{{- end}}
{{range .Enums}}
{{- if .Comment}}
// {{.GoName}}: {{.Comment}}
{{- end}}
type {{.GoName}} string

const (
{{- $enum := .GoName}}
{{- range .Values}}
	{{.GoName}} {{$enum}} = {{printf "%q" .Value}}{{if .Comment}} // {{.Comment}}{{end}}
{{- end}}
)
{{end}}
{{- range .Structs}}
{{- if .Comment}}
// {{.GoName}}: {{.Comment}}
{{- end}}
type {{.GoName}} struct {
{{- if .Entity}}
	ODataID   string ` + "`json:\"@odata.id\"`" + `
	ODataType string ` + "`json:\"@odata.type\"`" + `
{{- end}}
{{- range .Fields}}
	{{.GoName}} {{.GoType}} {{.Tag}}
{{- end}}
}
{{end}}
{{- range .Actions}}
{{- if .Comment}}
// {{.GoName}}: {{.Comment}}
{{- end}}
type {{.GoName}} struct {
{{- range .Fields}}
	{{.GoName}} {{.GoType}} {{.Tag}}
{{- end}}
}
{{end}}`))

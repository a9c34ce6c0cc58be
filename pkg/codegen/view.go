package codegen

import (
	"fmt"
	"go/token"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-polaris/pkg/codegen/gotemplate"
	"github.com/goliatone/go-polaris/pkg/model"
)

type modelView struct {
	Header             string
	Package            string
	Name               string
	NameLiteral        string
	DescriptionLiteral string
	TypeDoc            string
	SchemaVar          string
	Article            string
	Params             string
	EqualBody          string
	Enums              []enumView
	Fields             []fieldView
	Required           []fieldView
	Optional           []fieldView
}

type enumView struct {
	Field  string
	Values []enumValue
}

type enumValue struct {
	Const   string
	Literal string
}

type fieldView struct {
	GoName   string
	Var      string
	GoType   string
	Literal  string
	Decode   string
	Encode   string
	CloneV   string
	CloneVar string
	// Finite is the non-finite check emitted into Validate for float fields.
	Finite   string
}

// reserved names clash with locals and parameters of the generated code.
var reserved = map[string]bool{
	"m": true, "v": true, "d": true, "ok": true, "enc": true, "err": true,
	"opt": true, "opts": true, "other": true, "fields": true, "extras": true,
	"decoded": true, "data": true, "model": true, "wire": true, "fmt": true,
	"registry": true,
}

var fieldTypeNames = map[model.FieldType]string{
	model.FieldTypeString:  "model.FieldTypeString",
	model.FieldTypeInteger: "model.FieldTypeInteger",
	model.FieldTypeNumber:  "model.FieldTypeNumber",
	model.FieldTypeBoolean: "model.FieldTypeBoolean",
	model.FieldTypeObject:  "model.FieldTypeObject",
	model.FieldTypeArray:   "model.FieldTypeArray",
	model.FieldTypeMap:     "model.FieldTypeMap",
}

func (g *Generator) view(schema model.Schema) (modelView, error) {
	name := gotemplate.GoName(schema.Name)
	if name == "" || !token.IsIdentifier(name) {
		return modelView{}, fmt.Errorf("codegen: schema %q has no valid Go name", schema.Name)
	}

	v := modelView{
		Header:             g.header,
		Package:            g.packageName,
		Name:               name,
		NameLiteral:        strconv.Quote(name),
		DescriptionLiteral: strconv.Quote(schema.Description),
		SchemaVar:          gotemplate.LowerFirst(name) + "Schema",
		Article:            article(name),
		Enums:              []enumView{},
		Fields:             []fieldView{},
		Required:           []fieldView{},
		Optional:           []fieldView{},
	}
	v.TypeDoc = name + " model."
	if doc := sanitizeDescription(schema.Description); doc != "" {
		v.TypeDoc = name + " " + doc
	}

	var params strings.Builder
	equals := make([]string, 0, len(schema.Fields)+1)
	seen := make(map[string]bool, len(schema.Fields))
	for _, field := range schema.Fields {
		f, err := fieldViewOf(field)
		if err != nil {
			return modelView{}, fmt.Errorf("codegen: schema %s: field %s: %w", schema.Name, field.WireName, err)
		}
		if seen[f.GoName] {
			return modelView{}, fmt.Errorf("codegen: schema %s: fields collide on Go name %s", schema.Name, f.GoName)
		}
		seen[f.GoName] = true
		if f.GoType == "float64" {
			f.Finite = fmt.Sprintf("model.CheckFinite(%s, %s, m.%s)", v.SchemaVar, strconv.Quote(field.WireName), f.Var)
		}

		v.Fields = append(v.Fields, f)
		if field.Required {
			v.Required = append(v.Required, f)
			fmt.Fprintf(&params, "%s %s, ", f.Var, f.GoType)
		} else {
			v.Optional = append(v.Optional, f)
		}
		equals = append(equals, equalExpr(field, "m."+f.Var, "other."+f.Var))

		if len(field.Enum) > 0 {
			enum := enumView{Field: f.GoName}
			for _, value := range field.Enum {
				enum.Values = append(enum.Values, enumValue{
					Const:   name + f.GoName + enumName(value),
					Literal: strconv.Quote(value),
				})
			}
			v.Enums = append(v.Enums, enum)
		}
	}
	equals = append(equals, "m.additionalProperties.Equal(other.additionalProperties)")
	v.Params = params.String()
	v.EqualBody = strings.Join(equals, " &&\n\t\t")
	return v, nil
}

func fieldViewOf(field model.Field) (fieldView, error) {
	goName := gotemplate.GoName(field.WireName)
	if goName == "" || !token.IsIdentifier(goName) {
		return fieldView{}, fmt.Errorf("no valid Go name for %q", field.WireName)
	}
	variable := gotemplate.LowerFirst(goName)
	if token.IsKeyword(variable) || reserved[variable] {
		variable += "Value"
	}

	goType, decode, encode, clone := kindOf(field)
	f := fieldView{
		GoName:   goName,
		Var:      variable,
		GoType:   goType,
		Literal:  fieldLiteral(field, true),
		CloneV:   "v",
		CloneVar: variable,
	}
	wireName := strconv.Quote(field.WireName)
	if field.Type == model.FieldTypeObject && field.Ref != "" {
		f.Decode = fmt.Sprintf("model.DecodeModel(d, %s, %sFromWire)", wireName, goType)
		f.Encode = fmt.Sprintf("model.EncodeModel(enc, %s, m.%s)", wireName, variable)
	} else {
		f.Decode = fmt.Sprintf("%s(%s)", decode, wireName)
		f.Encode = fmt.Sprintf("%s(%s, m.%s)", encode, wireName, variable)
	}
	if clone != "" {
		f.CloneV = clone + "(v)"
		f.CloneVar = clone + "(" + variable + ")"
	}
	return f, nil
}

// kindOf maps a descriptor field onto its Go type, decoder and encoder calls
// and clone helper. Shapes without a typed accessor fall back to wire.Value.
func kindOf(field model.Field) (goType, decode, encode, clone string) {
	switch field.Type {
	case model.FieldTypeString:
		return "string", "d.String", "enc.String", ""
	case model.FieldTypeBoolean:
		return "bool", "d.Bool", "enc.Bool", ""
	case model.FieldTypeInteger:
		if field.Format == "int32" {
			return "int32", "d.Int32", "enc.Int32", ""
		}
		return "int64", "d.Int64", "enc.Int64", ""
	case model.FieldTypeNumber:
		return "float64", "d.Float64", "enc.Float64", ""
	case model.FieldTypeArray:
		if field.Items != nil && field.Items.Type == model.FieldTypeString {
			return "[]string", "d.StringSlice", "enc.StringSlice", "model.CloneStrings"
		}
	case model.FieldTypeMap:
		if field.Items != nil && field.Items.Type == model.FieldTypeString {
			return "map[string]string", "d.StringMap", "enc.StringMap", "model.CloneStringMap"
		}
	case model.FieldTypeObject:
		if field.Ref != "" {
			return gotemplate.GoName(field.Ref), "", "", ""
		}
	}
	return "wire.Value", "d.Raw", "enc.Raw", ""
}

func equalExpr(field model.Field, a, b string) string {
	goType, _, _, _ := kindOf(field)
	switch goType {
	case "[]string":
		return fmt.Sprintf("%s.Equal(%s, model.EqualStrings)", a, b)
	case "map[string]string":
		return fmt.Sprintf("%s.Equal(%s, model.EqualStringMaps)", a, b)
	case "wire.Value":
		return fmt.Sprintf("%s.Equal(%s, wire.Value.Equal)", a, b)
	case "string", "bool", "int32", "int64", "float64":
		return fmt.Sprintf("model.EqualOptional(%s, %s)", a, b)
	default:
		return fmt.Sprintf("%s.Equal(%s, %s.Equal)", a, b, goType)
	}
}

// fieldLiteral renders a descriptor field as a single-line composite literal.
// Item descriptors omit their names.
func fieldLiteral(field model.Field, named bool) string {
	var parts []string
	if named {
		parts = append(parts, "Name: "+strconv.Quote(field.Name), "WireName: "+strconv.Quote(field.WireName))
	}
	parts = append(parts, "Type: "+fieldTypeName(field.Type))
	if field.Required {
		parts = append(parts, "Required: true")
	}
	if field.Nullable {
		parts = append(parts, "Nullable: true")
	}
	if field.ReadOnly {
		parts = append(parts, "ReadOnly: true")
	}
	if field.Format != "" {
		parts = append(parts, "Format: "+strconv.Quote(field.Format))
	}
	if len(field.Enum) > 0 {
		quoted := make([]string, len(field.Enum))
		for i, value := range field.Enum {
			quoted[i] = strconv.Quote(value)
		}
		parts = append(parts, "Enum: []string{"+strings.Join(quoted, ", ")+"}")
	}
	if field.MinLength != nil {
		parts = append(parts, fmt.Sprintf("MinLength: model.Ptr(%d)", *field.MinLength))
	}
	if field.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("MaxLength: model.Ptr(%d)", *field.MaxLength))
	}
	if field.Items != nil {
		parts = append(parts, "Items: &model.Field"+fieldLiteral(*field.Items, false))
	}
	if field.Ref != "" {
		parts = append(parts, "Ref: "+strconv.Quote(field.Ref))
	}
	if field.Description != "" {
		parts = append(parts, "Description: "+strconv.Quote(field.Description))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func fieldTypeName(t model.FieldType) string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("model.FieldType(%q)", string(t))
}

var enumSeparators = regexp.MustCompile(`[_\-\s]+`)

// enumName turns an enum value into an identifier suffix: "AWS_IAM" becomes
// "AwsIam".
func enumName(value string) string {
	var b strings.Builder
	for _, part := range enumSeparators.Split(value, -1) {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	if b.Len() == 0 {
		return "Empty"
	}
	return gotemplate.GoName(b.String())
}

func article(name string) string {
	if name != "" && strings.ContainsRune("aeiouAEIOU", rune(name[0])) {
		return "an"
	}
	return "a"
}

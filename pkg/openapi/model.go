package openapi

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/goliatone/go-polaris/pkg/model"
)

// ModelSchema converts a component schema into a model descriptor. Property
// names become wire names; internal names are their snake_case form.
func ModelSchema(name string, s Schema) (model.Schema, error) {
	if s.Type != "" && s.Type != "object" {
		return model.Schema{}, fmt.Errorf("openapi: schema %s: expected object, got %s", name, s.Type)
	}

	required := make(map[string]struct{}, len(s.Required))
	for _, r := range s.Required {
		required[r] = struct{}{}
	}

	out := model.Schema{Name: name, Description: s.Description}
	for _, prop := range s.OrderedProperties() {
		field, err := modelField(s.Properties[prop])
		if err != nil {
			return model.Schema{}, fmt.Errorf("openapi: schema %s: property %s: %w", name, prop, err)
		}
		field.Name = SnakeCase(prop)
		field.WireName = prop
		_, field.Required = required[prop]
		out.Fields = append(out.Fields, field)
	}
	if err := out.Validate(); err != nil {
		return model.Schema{}, fmt.Errorf("openapi: %w", err)
	}
	return out, nil
}

// ModelSchemas converts the named component schemas, or every object schema
// when names is empty, and returns them sorted by name.
func ModelSchemas(schemas map[string]Schema, names ...string) ([]model.Schema, error) {
	if len(names) == 0 {
		for name, s := range schemas {
			if s.Type == "" || s.Type == "object" {
				names = append(names, name)
			}
		}
	}
	names = append([]string(nil), names...)
	sort.Strings(names)

	out := make([]model.Schema, 0, len(names))
	for _, name := range names {
		s, ok := schemas[name]
		if !ok {
			return nil, fmt.Errorf("openapi: schema %q not found", name)
		}
		converted, err := ModelSchema(name, s)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

func modelField(s Schema) (model.Field, error) {
	field := model.Field{
		Nullable:    s.Nullable,
		ReadOnly:    s.ReadOnly,
		Format:      s.Format,
		Description: s.Description,
	}
	if s.MinLength != nil {
		field.MinLength = model.Ptr(*s.MinLength)
	}
	if s.MaxLength != nil {
		field.MaxLength = model.Ptr(*s.MaxLength)
	}
	for _, value := range s.Enum {
		str, ok := value.(string)
		if !ok {
			return model.Field{}, fmt.Errorf("enum value %v is not a string", value)
		}
		field.Enum = append(field.Enum, str)
	}

	if ref := RefName(s.Ref); ref != "" && (s.Type == "" || s.Type == "object") {
		// Siblings of $ref carry no meaning; the summary description belongs
		// to the referenced component.
		field.Type = model.FieldTypeObject
		field.Ref = ref
		field.Description = ""
		return field, nil
	}

	switch s.Type {
	case "string":
		field.Type = model.FieldTypeString
	case "integer":
		field.Type = model.FieldTypeInteger
	case "number":
		field.Type = model.FieldTypeNumber
	case "boolean":
		field.Type = model.FieldTypeBoolean
	case "array":
		if s.Items == nil {
			return model.Field{}, fmt.Errorf("array without items")
		}
		items, err := modelField(*s.Items)
		if err != nil {
			return model.Field{}, fmt.Errorf("items: %w", err)
		}
		field.Type = model.FieldTypeArray
		field.Items = &items
	case "object":
		if s.AdditionalProperties != nil && len(s.Properties) == 0 {
			items, err := modelField(*s.AdditionalProperties)
			if err != nil {
				return model.Field{}, fmt.Errorf("additionalProperties: %w", err)
			}
			field.Type = model.FieldTypeMap
			field.Items = &items
			return field, nil
		}
		field.Type = model.FieldTypeObject
	default:
		return model.Field{}, fmt.Errorf("unsupported type %q", s.Type)
	}
	return field, nil
}

// SnakeCase converts a camelCase or PascalCase wire name into snake_case.
// Acronym runs stay together: "roleARN" becomes "role_arn".
func SnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if r == '-' || r == ' ' || r == '.' {
			b.WriteRune('_')
			continue
		}
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteRune('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

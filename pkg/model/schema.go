package model

import (
	"errors"
	"fmt"
)

// FieldType enumerates the wire types a field can declare.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeObject  FieldType = "object"
	FieldTypeArray   FieldType = "array"
	FieldTypeMap     FieldType = "map"
)

// Field describes one schema property. Name is the internal identifier
// (snake_case, as used by NewXFromFields) and WireName the JSON key.
//
// ReadOnly marks server-populated fields; it is informational and does not
// change decoding.
//
// Array and map fields describe their element through Items. Object fields
// name the nested schema through Ref; an object field without Ref accepts any
// JSON object.
type Field struct {
	Name        string    `json:"name" yaml:"name"`
	WireName    string    `json:"wireName" yaml:"wireName"`
	Type        FieldType `json:"type" yaml:"type"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Nullable    bool      `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	ReadOnly    bool      `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Format      string    `json:"format,omitempty" yaml:"format,omitempty"`
	Enum        []string  `json:"enum,omitempty" yaml:"enum,omitempty"`
	MinLength   *int      `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength   *int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Items       *Field    `json:"items,omitempty" yaml:"items,omitempty"`
	Ref         string    `json:"ref,omitempty" yaml:"ref,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// Clone deep-copies the descriptor.
func (f Field) Clone() Field {
	out := f
	if len(f.Enum) > 0 {
		out.Enum = append([]string(nil), f.Enum...)
	}
	if f.MinLength != nil {
		v := *f.MinLength
		out.MinLength = &v
	}
	if f.MaxLength != nil {
		v := *f.MaxLength
		out.MaxLength = &v
	}
	if f.Items != nil {
		items := f.Items.Clone()
		out.Items = &items
	}
	return out
}

// Schema describes a model: its name and its fields in declaration order.
// Declaration order drives the order of keys in encoded payloads.
type Schema struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// Field looks a field up by wire name.
func (s Schema) Field(wireName string) (Field, bool) {
	for _, f := range s.Fields {
		if f.WireName == wireName {
			return f, true
		}
	}
	return Field{}, false
}

// FieldByName looks a field up by internal name.
func (s Schema) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Required returns the required fields in declaration order.
func (s Schema) Required() []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// Clone deep-copies the schema.
func (s Schema) Clone() Schema {
	out := s
	if s.Fields != nil {
		out.Fields = make([]Field, len(s.Fields))
		for i, f := range s.Fields {
			out.Fields[i] = f.Clone()
		}
	}
	return out
}

// Validate checks the descriptor itself: names present and unique, element
// types declared for arrays and maps.
func (s Schema) Validate() error {
	if s.Name == "" {
		return errors.New("model: schema name is required")
	}
	names := make(map[string]struct{}, len(s.Fields))
	wireNames := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" || f.WireName == "" {
			return fmt.Errorf("model: schema %s: field names are required", s.Name)
		}
		if _, dup := names[f.Name]; dup {
			return fmt.Errorf("model: schema %s: duplicate field %q", s.Name, f.Name)
		}
		if _, dup := wireNames[f.WireName]; dup {
			return fmt.Errorf("model: schema %s: duplicate wire name %q", s.Name, f.WireName)
		}
		names[f.Name] = struct{}{}
		wireNames[f.WireName] = struct{}{}
		if err := validateFieldType(f); err != nil {
			return fmt.Errorf("model: schema %s: field %s: %w", s.Name, f.Name, err)
		}
	}
	return nil
}

func validateFieldType(f Field) error {
	switch f.Type {
	case FieldTypeString, FieldTypeInteger, FieldTypeNumber, FieldTypeBoolean, FieldTypeObject:
		return nil
	case FieldTypeArray, FieldTypeMap:
		if f.Items == nil {
			return fmt.Errorf("%s field must declare items", f.Type)
		}
		return validateFieldType(*f.Items)
	default:
		return fmt.Errorf("unsupported type %q", f.Type)
	}
}

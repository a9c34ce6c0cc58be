package model

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/goliatone/go-polaris/pkg/wire"
)

// FieldsToWire converts a map keyed by internal field names into the wire
// object of schema. It is the dynamic counterpart of the generated New
// constructors: values are converted without coercion so a mismatched Go
// type surfaces later as a type error, and names outside the schema are
// reported as unknown. A nil value stands for an explicit null.
func FieldsToWire(schema Schema, fields map[string]any) (wire.Value, error) {
	errs := &ValidationError{Schema: schema.Name}
	obj := wire.NewObject()

	for _, f := range schema.Fields {
		raw, ok := fields[f.Name]
		if !ok {
			continue
		}
		v, err := toWire(raw)
		if errors.Is(err, wire.ErrNonFinite) {
			errs.Add(FieldError{
				Path:  f.WireName,
				Field: f.Name,
				Rule:  RuleFormat,
				Err:   fmt.Errorf("%w: %v", ErrFormat, err),
			})
			continue
		}
		if err != nil {
			errs.Add(FieldError{
				Path:  f.WireName,
				Field: f.Name,
				Rule:  RuleType,
				Err:   fmt.Errorf("%w: %v", ErrTypeMismatch, err),
			})
			continue
		}
		obj.Set(f.WireName, v)
	}

	var unknown []string
	for name := range fields {
		if _, ok := schema.FieldByName(name); !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		errs.Add(FieldError{
			Path:  name,
			Field: name,
			Rule:  RuleUnknown,
			Err:   &UnknownFieldError{Schema: schema.Name, Keys: []string{name}},
		})
	}

	if err := errs.ErrOrNil(); err != nil {
		return wire.Value{}, err
	}
	return wire.ObjectValue(obj), nil
}

func toWire(raw any) (wire.Value, error) {
	switch v := raw.(type) {
	case Wirer:
		return v.ToWire(), nil
	case wire.Value:
		return v, nil
	default:
		return wire.FromAny(raw)
	}
}

// CloneStrings copies a string slice, keeping nil as nil.
func CloneStrings(in []string) []string {
	return slices.Clone(in)
}

// CloneStringMap copies a string map, keeping nil as nil.
func CloneStringMap(in map[string]string) map[string]string {
	return maps.Clone(in)
}

// Ptr returns a pointer to v. Generated descriptors use it for length bounds.
func Ptr[T any](v T) *T {
	return &v
}

// EqualStrings compares two string slices element-wise. Nil equals empty.
func EqualStrings(a, b []string) bool {
	return slices.Equal(a, b)
}

// EqualStringMaps compares two string maps. Nil equals empty.
func EqualStringMaps(a, b map[string]string) bool {
	return maps.Equal(a, b)
}

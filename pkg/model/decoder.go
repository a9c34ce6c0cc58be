package model

import (
	"fmt"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/goliatone/go-polaris/pkg/wire"
)

// Decoder reads fields out of a wire object according to a schema and
// accumulates every violation into one ValidationError. Generated FromWire
// functions read each field once and then call Finish.
type Decoder struct {
	schema      Schema
	obj         *wire.Object
	opts        DecodeOptions
	errs        *ValidationError
	invalidRoot bool
}

// NewDecoder prepares a decoder for v. A v that is not an object is reported
// once as a type mismatch at the root; field reads then yield absent values.
func NewDecoder(schema Schema, v wire.Value, options ...DecodeOption) *Decoder {
	d := &Decoder{
		schema: schema,
		opts:   NewDecodeOptions(options...),
		errs:   &ValidationError{Schema: schema.Name},
	}
	obj, ok := v.AsObject()
	if !ok {
		d.invalidRoot = true
		d.errs.Add(FieldError{
			Rule: RuleType,
			Err:  fmt.Errorf("%w: expected object, got %s", ErrTypeMismatch, v.Kind()),
		})
		obj = wire.NewObject()
	}
	d.obj = obj
	return d
}

// Options returns the resolved decode options.
func (d *Decoder) Options() DecodeOptions {
	return d.opts
}

// String reads a string field.
func (d *Decoder) String(wireName string) Optional[string] {
	return decodeScalar(d, wireName, func(v wire.Value) string {
		s, _ := v.AsString()
		return s
	})
}

// Bool reads a boolean field.
func (d *Decoder) Bool(wireName string) Optional[bool] {
	return decodeScalar(d, wireName, func(v wire.Value) bool {
		b, _ := v.AsBool()
		return b
	})
}

// Int64 reads an integer field.
func (d *Decoder) Int64(wireName string) Optional[int64] {
	return decodeScalar(d, wireName, func(v wire.Value) int64 {
		n, _ := v.AsInt()
		return n
	})
}

// Int32 reads an integer field that must fit in 32 bits.
func (d *Decoder) Int32(wireName string) Optional[int32] {
	field, v, state := d.lookup(wireName, true)
	switch state {
	case null:
		return Null[int32]()
	case present:
		n, _ := v.AsInt()
		if n < math.MinInt32 || n > math.MaxInt32 {
			d.fail(field.Name, field.WireName, RuleFormat, fmt.Errorf("%w: %d overflows int32", ErrFormat, n))
			return None[int32]()
		}
		return Some(int32(n))
	}
	return None[int32]()
}

// Float64 reads a number field.
func (d *Decoder) Float64(wireName string) Optional[float64] {
	return decodeScalar(d, wireName, func(v wire.Value) float64 {
		f, _ := v.AsFloat()
		return f
	})
}

// StringSlice reads an array of strings.
func (d *Decoder) StringSlice(wireName string) Optional[[]string] {
	return decodeScalar(d, wireName, func(v wire.Value) []string {
		items, _ := v.AsArray()
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, _ := item.AsString()
			out = append(out, s)
		}
		return out
	})
}

// StringMap reads an object of string values.
func (d *Decoder) StringMap(wireName string) Optional[map[string]string] {
	return decodeScalar(d, wireName, func(v wire.Value) map[string]string {
		obj, _ := v.AsObject()
		out := make(map[string]string, obj.Len())
		obj.Range(func(key string, item wire.Value) bool {
			s, _ := item.AsString()
			out[key] = s
			return true
		})
		return out
	})
}

// Raw reads a field as a checked wire value.
func (d *Decoder) Raw(wireName string) Optional[wire.Value] {
	return decodeScalar(d, wireName, func(v wire.Value) wire.Value { return v })
}

// DecodeModel reads a nested model field through its generated FromWire
// function. Nested issues are reported under the field's path.
func DecodeModel[T any](d *Decoder, wireName string, decode func(wire.Value, ...DecodeOption) (T, error)) Optional[T] {
	field, v, state := d.lookup(wireName, false)
	switch state {
	case null:
		return Null[T]()
	case present:
		m, err := decode(v, WithOptions(d.opts))
		if err != nil {
			d.errs.mergeNested(field.WireName, field.Name, err)
			return None[T]()
		}
		return Some(m)
	}
	return None[T]()
}

// Finish applies the unknown-key policy and returns the retained keys (only
// under UnknownRetain) together with the accumulated error, if any.
func (d *Decoder) Finish() (*wire.Object, error) {
	var extras *wire.Object
	d.obj.Range(func(key string, value wire.Value) bool {
		if _, known := d.schema.Field(key); known {
			return true
		}
		switch d.opts.Unknown {
		case UnknownReject:
			d.errs.Add(FieldError{
				Path: key,
				Rule: RuleUnknown,
				Err:  &UnknownFieldError{Schema: d.schema.Name, Keys: []string{key}},
			})
		case UnknownRetain:
			if extras == nil {
				extras = wire.NewObject()
			}
			extras.Set(key, value)
		}
		return true
	})
	return extras, d.errs.ErrOrNil()
}

// decodeAll reads every schema field generically, returning the normalised
// object in schema order. Used by Document.
func (d *Decoder) decodeAll() *wire.Object {
	out := wire.NewObject()
	for _, f := range d.schema.Fields {
		_, v, state := d.lookup(f.WireName, true)
		switch state {
		case null:
			out.Set(f.WireName, wire.Null())
		case present:
			out.Set(f.WireName, v)
		}
	}
	return out
}

func decodeScalar[T any](d *Decoder, wireName string, extract func(wire.Value) T) Optional[T] {
	_, v, state := d.lookup(wireName, true)
	switch state {
	case null:
		return Null[T]()
	case present:
		return Some(extract(v))
	}
	return None[T]()
}

// lookup resolves wireName, applying presence, null and type checks. When
// deep is false object fields are only checked for their JSON kind; the
// caller decodes them.
func (d *Decoder) lookup(wireName string, deep bool) (Field, wire.Value, presence) {
	field, ok := d.schema.Field(wireName)
	if !ok {
		panic(fmt.Sprintf("model: schema %s declares no field %q", d.schema.Name, wireName))
	}
	v, found := d.obj.Get(wireName)
	if !found {
		if field.Required && !d.invalidRoot {
			d.fail(field.Name, wireName, RuleRequired, ErrRequired)
		}
		return field, v, absent
	}
	if v.IsNull() {
		if field.Required && !field.Nullable {
			d.fail(field.Name, wireName, RuleNull, ErrNull)
			return field, v, absent
		}
		return field, v, null
	}
	if !deep && field.Type == FieldTypeObject {
		if v.Kind() != wire.KindObject {
			d.mismatch(field.Name, wireName, "object", v)
			return field, v, absent
		}
		return field, v, present
	}
	normalised, ok := d.check(field.Name, field, wireName, v)
	if !ok {
		return field, v, absent
	}
	return field, normalised, present
}

// check validates v against field and returns the normalised value. Nested
// documents drop ignored keys, so the normalised value may differ from v.
func (d *Decoder) check(top string, field Field, path string, v wire.Value) (wire.Value, bool) {
	switch field.Type {
	case FieldTypeString:
		s, ok := v.AsString()
		if !ok {
			d.mismatch(top, path, "string", v)
			return v, false
		}
		return v, d.checkString(top, field, path, s)
	case FieldTypeInteger:
		n, ok := v.AsInt()
		if !ok {
			d.mismatch(top, path, "integer", v)
			return v, false
		}
		if field.Format == "int32" && (n < math.MinInt32 || n > math.MaxInt32) {
			d.fail(top, path, RuleFormat, fmt.Errorf("%w: %d overflows int32", ErrFormat, n))
			return v, false
		}
		return v, true
	case FieldTypeNumber:
		if _, ok := v.AsFloat(); !ok {
			d.mismatch(top, path, "number", v)
			return v, false
		}
		return v, true
	case FieldTypeBoolean:
		if _, ok := v.AsBool(); !ok {
			d.mismatch(top, path, "boolean", v)
			return v, false
		}
		return v, true
	case FieldTypeArray:
		items, ok := v.AsArray()
		if !ok {
			d.mismatch(top, path, "array", v)
			return v, false
		}
		valid := true
		out := make([]wire.Value, 0, len(items))
		for i, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			checked, ok := d.checkElement(top, *field.Items, itemPath, item)
			valid = valid && ok
			out = append(out, checked)
		}
		return wire.Array(out...), valid
	case FieldTypeMap:
		obj, ok := v.AsObject()
		if !ok {
			d.mismatch(top, path, "object", v)
			return v, false
		}
		valid := true
		out := wire.NewObject()
		obj.Range(func(key string, item wire.Value) bool {
			checked, ok := d.checkElement(top, *field.Items, joinPath(path, key), item)
			valid = valid && ok
			out.Set(key, checked)
			return true
		})
		return wire.ObjectValue(out), valid
	case FieldTypeObject:
		if v.Kind() != wire.KindObject {
			d.mismatch(top, path, "object", v)
			return v, false
		}
		return d.checkNested(top, field, path, v)
	default:
		d.fail(top, path, RuleType, fmt.Errorf("%w: unsupported field type %q", ErrTypeMismatch, field.Type))
		return v, false
	}
}

func (d *Decoder) checkElement(top string, field Field, path string, v wire.Value) (wire.Value, bool) {
	if v.IsNull() {
		if !field.Nullable {
			d.fail(top, path, RuleNull, ErrNull)
			return v, false
		}
		return v, true
	}
	return d.check(top, field, path, v)
}

func (d *Decoder) checkString(top string, field Field, path, s string) bool {
	if len(field.Enum) > 0 && !slices.Contains(field.Enum, s) {
		d.fail(top, path, RuleEnum, fmt.Errorf("%w: %q (allowed: %v)", ErrEnum, s, field.Enum))
		return false
	}
	length := utf8.RuneCountInString(s)
	if field.MinLength != nil && length < *field.MinLength {
		d.fail(top, path, RuleLength, fmt.Errorf("%w: %d < minimum %d", ErrLength, length, *field.MinLength))
		return false
	}
	if field.MaxLength != nil && length > *field.MaxLength {
		d.fail(top, path, RuleLength, fmt.Errorf("%w: %d > maximum %d", ErrLength, length, *field.MaxLength))
		return false
	}
	if !d.opts.SkipFormats {
		if err := d.opts.Formats.Check(field.Format, s); err != nil {
			d.fail(top, path, RuleFormat, fmt.Errorf("%w: %s: %v", ErrFormat, field.Format, err))
			return false
		}
	}
	return true
}

func (d *Decoder) checkNested(top string, field Field, path string, v wire.Value) (wire.Value, bool) {
	if field.Ref == "" || d.opts.Resolver == nil {
		return v, true
	}
	schema, ok := d.opts.Resolver.Schema(field.Ref)
	if !ok {
		d.fail(top, path, RuleType, fmt.Errorf("%w: unresolved schema %q", ErrTypeMismatch, field.Ref))
		return v, false
	}
	nested := NewDecoder(schema, v, WithOptions(d.opts))
	out := nested.decodeAll()
	extras, err := nested.Finish()
	if err != nil {
		d.errs.mergeNested(path, top, err)
		return v, false
	}
	appendExtras(out, extras)
	return wire.ObjectValue(out), true
}

func (d *Decoder) mismatch(top, path, want string, got wire.Value) {
	d.fail(top, path, RuleType, fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, want, got.Kind()))
}

func (d *Decoder) fail(field, path, rule string, err error) {
	d.errs.Add(FieldError{Path: path, Field: field, Rule: rule, Err: err})
}

func appendExtras(dst, extras *wire.Object) {
	extras.Range(func(key string, value wire.Value) bool {
		if !dst.Has(key) {
			dst.Set(key, value)
		}
		return true
	})
}

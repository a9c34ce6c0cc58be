package model

import (
	"fmt"
	"math"
	"sort"

	"github.com/goliatone/go-polaris/pkg/wire"
)

// Wirer is implemented by every value that has a wire form.
type Wirer interface {
	ToWire() wire.Value
}

// Encoder assembles a wire object. Fields must be written in schema order;
// absent optionals are skipped and null optionals are written as null.
type Encoder struct {
	obj *wire.Object
}

// NewEncoder returns an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{obj: wire.NewObject()}
}

// String writes a string field.
func (e *Encoder) String(wireName string, v Optional[string]) {
	encode(e, wireName, v, wire.String)
}

// Bool writes a boolean field.
func (e *Encoder) Bool(wireName string, v Optional[bool]) {
	encode(e, wireName, v, wire.Bool)
}

// Int32 writes an integer field.
func (e *Encoder) Int32(wireName string, v Optional[int32]) {
	encode(e, wireName, v, func(n int32) wire.Value { return wire.Int(int64(n)) })
}

// Int64 writes an integer field.
func (e *Encoder) Int64(wireName string, v Optional[int64]) {
	encode(e, wireName, v, wire.Int)
}

// Float64 writes a number field. Validated models never hold NaN or an
// infinity (see CheckFinite); such values are skipped rather than written.
func (e *Encoder) Float64(wireName string, v Optional[float64]) {
	if f, ok := v.Get(); ok && !finite(f) {
		return
	}
	encode(e, wireName, v, wire.Float)
}

// CheckFinite rejects NaN and infinities, which have no wire form, with an
// ErrFormat issue on wireName.
func CheckFinite(schema Schema, wireName string, v Optional[float64]) error {
	f, ok := v.Get()
	if !ok || finite(f) {
		return nil
	}
	field, _ := schema.Field(wireName)
	verr := &ValidationError{Schema: schema.Name}
	verr.Add(FieldError{
		Path:  wireName,
		Field: field.Name,
		Rule:  RuleFormat,
		Err:   fmt.Errorf("%w: %v is not a finite number", ErrFormat, f),
	})
	return verr
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// StringSlice writes an array of strings. A nil slice that is present is
// written as an empty array.
func (e *Encoder) StringSlice(wireName string, v Optional[[]string]) {
	encode(e, wireName, v, func(items []string) wire.Value {
		values := make([]wire.Value, 0, len(items))
		for _, item := range items {
			values = append(values, wire.String(item))
		}
		return wire.Array(values...)
	})
}

// StringMap writes an object of strings with keys sorted.
func (e *Encoder) StringMap(wireName string, v Optional[map[string]string]) {
	encode(e, wireName, v, func(m map[string]string) wire.Value {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := wire.NewObject()
		for _, k := range keys {
			obj.Set(k, wire.String(m[k]))
		}
		return wire.ObjectValue(obj)
	})
}

// Raw writes a wire value as is.
func (e *Encoder) Raw(wireName string, v Optional[wire.Value]) {
	encode(e, wireName, v, func(value wire.Value) wire.Value { return value })
}

// EncodeModel writes a nested model field.
func EncodeModel[T Wirer](e *Encoder, wireName string, v Optional[T]) {
	encode(e, wireName, v, func(m T) wire.Value { return m.ToWire() })
}

// Extras appends retained unknown keys after the schema fields. Keys that
// collide with a written field are skipped.
func (e *Encoder) Extras(extras *wire.Object) {
	appendExtras(e.obj, extras)
}

// Value returns the assembled object.
func (e *Encoder) Value() wire.Value {
	return wire.ObjectValue(e.obj)
}

func encode[T any](e *Encoder, wireName string, v Optional[T], conv func(T) wire.Value) {
	switch v.state {
	case null:
		e.obj.Set(wireName, wire.Null())
	case present:
		e.obj.Set(wireName, conv(v.value))
	}
}

package wire

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var numberLiteral = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Kind enumerates the JSON shapes a Value can hold.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON type name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an immutable JSON value. The zero Value is null.
//
// Numbers keep their literal form so integers outside the float64 mantissa
// survive a decode/encode cycle untouched.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  *Object
}

// Null returns the JSON null value.
func Null() Value {
	return Value{}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// String wraps a string.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int wraps an integer.
func Int(i int64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatInt(i, 10))}
}

// Float wraps a float. It panics on NaN or infinities, which have no JSON form.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("wire: %v cannot be represented in JSON", f))
	}
	return Value{kind: KindNumber, num: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}
}

// Number wraps a JSON number literal after checking it is well formed.
func Number(n json.Number) (Value, error) {
	if !numberLiteral.MatchString(string(n)) {
		return Value{}, fmt.Errorf("wire: invalid number literal %q", string(n))
	}
	return Value{kind: KindNumber, num: n}, nil
}

// Array wraps a list of values. The slice is copied.
func Array(items ...Value) Value {
	return Value{kind: KindArray, arr: append([]Value(nil), items...)}
}

// ObjectValue wraps an object. The object is cloned so later mutations of
// obj do not leak into the returned value.
func ObjectValue(obj *Object) Value {
	return Value{kind: KindObject, obj: obj.Clone()}
}

// Kind reports the JSON shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsNumber returns the number literal.
func (v Value) AsNumber() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.num, true
}

// AsFloat returns the number as float64.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(v.num), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// AsInt returns the number as int64 when it is exactly integral and fits.
// Literals such as 3.0 or 1e3 count as integral, 1.00000000000000000001 does
// not.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if i, err := strconv.ParseInt(string(v.num), 10, 64); err == nil {
		return i, true
	}
	r, ok := exactNumber(v.num)
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return 0, false
	}
	return r.Num().Int64(), true
}

// AsArray returns a copy of the array items.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return append([]Value(nil), v.arr...), true
}

// Len returns the number of items or keys, zero for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// AsObject returns a copy of the object payload.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj.Clone(), true
}

// Interface converts the value into plain Go types: nil, bool, json.Number,
// string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.obj.Len())
		v.obj.Range(func(key string, item Value) bool {
			out[key] = item.Interface()
			return true
		})
		return out
	default:
		return nil
	}
}

// Equal reports structural equality. Numbers compare by value and object key
// order is ignored.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return numbersEqual(v.num, other.num)
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(other.obj)
	default:
		return false
	}
}

// String renders the value as compact JSON.
func (v Value) String() string {
	return string(v.appendJSON(nil))
}

func numbersEqual(a, b json.Number) bool {
	if a == b {
		return true
	}
	ra, okA := exactNumber(a)
	rb, okB := exactNumber(b)
	if !okA || !okB {
		return false
	}
	return ra.Cmp(rb) == 0
}

// maxExponent bounds the decimal exponent accepted for exact arithmetic so a
// literal such as 1e999999999 cannot force a huge allocation.
const maxExponent = 4096

// exactNumber parses n as an exact rational.
func exactNumber(n json.Number) (*big.Rat, bool) {
	lit := string(n)
	if idx := strings.IndexAny(lit, "eE"); idx >= 0 {
		exp, err := strconv.Atoi(strings.TrimPrefix(lit[idx+1:], "+"))
		if err != nil || exp > maxExponent || exp < -maxExponent {
			return nil, false
		}
	}
	return new(big.Rat).SetString(lit)
}

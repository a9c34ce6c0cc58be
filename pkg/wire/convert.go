package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// FromAny converts plain Go values into a Value. Maps are emitted with
// sorted keys so the result is deterministic. Values that have no JSON
// form (channels, funcs, NaN, ...) are rejected.
func FromAny(in any) (Value, error) {
	switch v := in.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case *Object:
		if v == nil {
			return Null(), nil
		}
		return ObjectValue(v), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case json.Number:
		return Number(v)
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return uintValue(uint64(v)), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		return uintValue(v), nil
	case float32:
		return floatValue(float64(v))
	case float64:
		return floatValue(v)
	case []any:
		items := make([]Value, 0, len(v))
		for i, raw := range v {
			item, err := FromAny(raw)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, item)
		}
		return Value{kind: KindArray, arr: items}, nil
	case []string:
		items := make([]Value, 0, len(v))
		for _, s := range v {
			items = append(items, String(s))
		}
		return Value{kind: KindArray, arr: items}, nil
	case map[string]any:
		obj := NewObject()
		for _, key := range sortedKeys(v) {
			item, err := FromAny(v[key])
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", key, err)
			}
			obj.Set(key, item)
		}
		return Value{kind: KindObject, obj: obj}, nil
	case map[string]string:
		obj := NewObject()
		for _, key := range sortedKeys(v) {
			obj.Set(key, String(v[key]))
		}
		return Value{kind: KindObject, obj: obj}, nil
	default:
		return Value{}, fmt.Errorf("wire: unsupported type %T", in)
	}
}

func uintValue(u uint64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatUint(u, 10))}
}

// ErrNonFinite reports NaN or an infinity, which have no JSON form.
var ErrNonFinite = errors.New("wire: non-finite number")

func floatValue(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v cannot be represented in JSON", ErrNonFinite, f)
	}
	return Float(f), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

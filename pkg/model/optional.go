package model

type presence uint8

const (
	absent presence = iota
	null
	present
)

// Optional holds a field that may be absent, explicitly null, or set. The
// zero value is absent. Absent fields are omitted from the wire while null
// fields are emitted as JSON null.
type Optional[T any] struct {
	value T
	state presence
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, state: present}
}

// Null returns an Optional that is explicitly null.
func Null[T any]() Optional[T] {
	return Optional[T]{state: null}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether one is present. Null and absent both
// report false.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == present
}

// MustGet returns the value or panics when none is present.
func (o Optional[T]) MustGet() T {
	if o.state != present {
		panic("model: optional value is not present")
	}
	return o.value
}

// OrElse returns the value when present, fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if o.state != present {
		return fallback
	}
	return o.value
}

// IsSet reports whether the field will appear on the wire (null or value).
func (o Optional[T]) IsSet() bool {
	return o.state != absent
}

// IsNull reports whether the field is explicitly null.
func (o Optional[T]) IsNull() bool {
	return o.state == null
}

// IsPresent reports whether the field holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.state == present
}

// Equal compares presence and, when both hold values, the values using eq.
func (o Optional[T]) Equal(other Optional[T], eq func(a, b T) bool) bool {
	if o.state != other.state {
		return false
	}
	if o.state != present {
		return true
	}
	return eq(o.value, other.value)
}

// EqualOptional compares two optionals of a comparable type.
func EqualOptional[T comparable](a, b Optional[T]) bool {
	return a.Equal(b, func(x, y T) bool { return x == y })
}

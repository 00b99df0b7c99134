package delta

import (
	"bytes"
	"encoding/json"
)

// Opt is an explicit-presence scalar value for aggregate deltas. The three
// states matter independently:
//
//   - undefined: the field is absent from the delta and must stay untouched;
//   - null: the field is present and clears the target to its zero form;
//   - value: the field is present and sets the target.
//
// Presence is tracked outside the JSON value itself, so a field can be set
// to an empty or zero value without that being confused with "not included".
type Opt[T any] struct {
	value   *T
	defined bool
}

// Value returns an Opt carrying v.
func Value[T any](v T) Opt[T] {
	return Opt[T]{value: &v, defined: true}
}

// Null returns a present-but-null Opt.
func Null[T any]() Opt[T] {
	return Opt[T]{defined: true}
}

// Defined reports whether the field is present in the delta at all.
func (o Opt[T]) Defined() bool { return o.defined }

// Get returns the carried value and whether one is carried. A null or
// undefined Opt returns false.
func (o Opt[T]) Get() (T, bool) {
	if o.value == nil {
		var zero T
		return zero, false
	}
	return *o.value, true
}

// MarshalJSON serializes the carried value, or null for a null Opt. The
// enclosing delta type is responsible for omitting undefined fields entirely.
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if o.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.value)
}

// UnmarshalJSON marks the field defined; null input yields a null Opt.
func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.defined = true
	if bytes.Equal(bytes.TrimSpace(data), nullValue) {
		o.value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.value = &v
	return nil
}

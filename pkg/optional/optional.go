// Package optional provides a tri-state field wrapper for partial-update
// payloads: a field is either absent from the JSON body, explicitly null,
// or set to a concrete value. encoding/json only invokes UnmarshalJSON for
// keys present in the body, which is what distinguishes absent from null.
package optional

import "encoding/json"

type Field[T any] struct {
	value   T
	set     bool
	present bool
}

// Of returns a field explicitly set to v.
func Of[T any](v T) Field[T] {
	return Field[T]{value: v, set: true, present: true}
}

// Null returns a field explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{set: true}
}

// IsSet reports whether the field appeared in the payload at all,
// with either a value or an explicit null.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the field was explicitly null.
func (f Field[T]) IsNull() bool {
	return f.set && !f.present
}

// Get returns the value and whether the field holds a concrete value.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set && f.present
}

// Ptr returns nil for an unset or null field, otherwise a pointer to a
// copy of the value.
func (f Field[T]) Ptr() *T {
	if !f.set || !f.present {
		return nil
	}
	v := f.value
	return &v
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if string(data) == "null" {
		var zero T
		f.value = zero
		f.present = false
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}
	f.present = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || !f.present {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

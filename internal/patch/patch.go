// Package patch provides the building block for partial-update payloads.
//
// A PATCH body has three states per field, and a plain Go value can only
// express two of them:
//
//	{}                  → field absent   → keep the stored value
//	{"phone": null}     → field null     → clear the stored value
//	{"phone": "+1-..."} → field present  → overwrite the stored value
//
// Field[T] wraps nullable.Nullable[T], which records which of the three
// the client sent. encoding/json only calls UnmarshalJSON when the key
// exists, so "absent" is never inferred from a zero value.
package patch

import "github.com/oapi-codegen/nullable"

// Field is a tri-state optional value decoded from JSON.
// The zero value is "absent".
type Field[T any] struct {
	n nullable.Nullable[T]
}

// Value returns a Field that is present and holds v.
func Value[T any](v T) Field[T] {
	return Field[T]{n: nullable.NewNullableWithValue(v)}
}

// Null returns a Field that is present and explicitly null.
func Null[T any]() Field[T] {
	return Field[T]{n: nullable.NewNullNullable[T]()}
}

// IsSet reports whether the key appeared in the payload (null included).
func (f Field[T]) IsSet() bool { return f.n.IsSpecified() }

// IsNull reports whether the key appeared with a JSON null.
func (f Field[T]) IsNull() bool { return f.n.IsNull() }

// Get returns the value and true when the field is present and not null.
func (f Field[T]) Get() (T, bool) {
	v, err := f.n.Get()
	return v, err == nil
}

// IsZero lets `omitzero` drop absent fields when encoding.
func (f Field[T]) IsZero() bool { return !f.n.IsSpecified() }

// UnmarshalJSON marks the field present and decodes the value.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	return f.n.UnmarshalJSON(data)
}

// MarshalJSON encodes absent and null fields as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.n.IsSpecified() {
		return []byte("null"), nil
	}
	return f.n.MarshalJSON()
}

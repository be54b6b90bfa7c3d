package dtos

import (
	"bytes"
	"encoding/json"
)

type fieldState uint8

const (
	fieldAbsent fieldState = iota
	fieldNull
	fieldPresent
)

// Optional is a merge-patch field: absent, explicitly null, or a value.
// Tag it with `omitzero` so absent fields are left out when encoding.
type Optional[T any] struct {
	value T
	state fieldState
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, state: fieldPresent}
}

func Null[T any]() Optional[T] {
	return Optional[T]{state: fieldNull}
}

// IsSet is true for both null and a value.
func (o Optional[T]) IsSet() bool { return o.state != fieldAbsent }

func (o Optional[T]) IsNull() bool { return o.state == fieldNull }

// Get returns the value and whether one was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == fieldPresent
}

// IsZero lets encoding/json omitzero drop absent fields.
func (o Optional[T]) IsZero() bool { return o.state == fieldAbsent }

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		o.value = zero
		o.state = fieldNull
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.value = v
	o.state = fieldPresent
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.state != fieldPresent {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// Optional records whether a JSON field was present and whether it was null.
// Absent fields leave Set false.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present, non-null Optional.
func Some[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: value}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Present reports whether the field was sent with a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// FlexFloat accepts a JSON number or a numeric string. Anything else, including null,
// decodes to 0 with Coerced set instead of failing.
type FlexFloat struct {
	Set     bool
	Coerced bool
	Value   float64
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.Set = true
	f.Coerced = false

	var number float64
	if !bytes.Equal(bytes.TrimSpace(data), jsonNull) && json.Unmarshal(data, &number) == nil {
		f.Value = number
		return nil
	}

	var text string
	if json.Unmarshal(data, &text) == nil {
		if value, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil && !math.IsNaN(value) && !math.IsInf(value, 0) {
			f.Value = value
			return nil
		}
	}

	f.Value = 0
	f.Coerced = true
	return nil
}

package walletwire

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ValueCodec maps a domain value to and from a generic wire tree. Encode is
// total. Decode returns a *DecodeError whose path is relative to the value.
//
// Redact renders the value for logs and operator output. When nil, Encode
// is used.
type ValueCodec[T any] struct {
	Encode func(T) any
	Decode func(any) (T, error)
	Redact func(T) any
}

func (c ValueCodec[T]) redact(v T) any {
	if c.Redact != nil {
		return c.Redact(v)
	}
	return c.Encode(v)
}

// FromText wraps a text codec: the wire value must be a string, which is
// then handed to the text validator.
func FromText[T any](tc TextCodec[T]) ValueCodec[T] {
	return ValueCodec[T]{
		Encode: func(v T) any { return tc.Encode(v) },
		Decode: func(w any) (T, error) {
			s, ok := w.(string)
			if !ok {
				var zero T
				return zero, mismatch("String", w)
			}
			v, err := tc.Decode(s)
			if err != nil {
				var zero T
				return zero, asDecodeError(err)
			}
			return v, nil
		},
	}
}

// Decimal wraps a text codec whose text form is a decimal number: the wire
// value must be a number, whose decimal rendering is handed to the text
// validator.
func Decimal[T any](tc TextCodec[T]) ValueCodec[T] {
	return ValueCodec[T]{
		Encode: func(v T) any { return json.Number(tc.Encode(v)) },
		Decode: func(w any) (T, error) {
			s, ok := numberText(w)
			if !ok {
				var zero T
				return zero, mismatch("Number", w)
			}
			v, err := tc.Decode(s)
			if err != nil {
				var zero T
				return zero, asDecodeError(err)
			}
			return v, nil
		},
	}
}

// Uint64 encodes an unsigned integer as a wire number.
func Uint64() ValueCodec[uint64] {
	return ValueCodec[uint64]{
		Encode: func(n uint64) any { return json.Number(strconv.FormatUint(n, 10)) },
		Decode: func(w any) (uint64, error) {
			s, ok := numberText(w)
			if !ok {
				return 0, mismatch("Number", w)
			}
			n, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return 0, Errorf("expected a natural number, got %s", s)
			}
			return n, nil
		},
	}
}

// String encodes a plain string with no further validation.
func String() ValueCodec[string] {
	return FromText(TextCodec[string]{
		Encode: func(s string) string { return s },
		Decode: func(s string) (string, error) { return s, nil },
	})
}

// Time encodes an instant as RFC 3339 text in UTC.
func Time() ValueCodec[time.Time] {
	return FromText(TextCodec[time.Time]{
		Encode: func(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) },
		Decode: func(s string) (time.Time, error) {
			t, err := time.Parse(time.RFC3339Nano, s)
			if err != nil {
				return time.Time{}, Errorf("could not parse date: %s", s)
			}
			return t, nil
		},
	})
}

// Enum encodes a string-backed enumeration. Decoding rejects values
// outside the listed set.
func Enum[T ~string](values ...T) ValueCodec[T] {
	known := make([]string, len(values))
	for i, v := range values {
		known[i] = string(v)
	}
	return FromText(TextCodec[T]{
		Encode: func(v T) string { return string(v) },
		Decode: func(s string) (T, error) {
			for _, v := range values {
				if string(v) == s {
					return v, nil
				}
			}
			var zero T
			return zero, Errorf("unknown value %q, expected one of: %s", s, strings.Join(known, ", "))
		},
	})
}

// Quantity encodes an amount with its unit: {"quantity":n,"unit":"<unit>"}.
// from validates the decoded amount.
func Quantity[T any](unit string, to func(T) uint64, from func(uint64) (T, error)) ValueCodec[T] {
	amount := Uint64()
	return ValueCodec[T]{
		Encode: func(v T) any {
			return NewDocument(
				Member{Key: "quantity", Value: amount.Encode(to(v))},
				Member{Key: "unit", Value: unit},
			)
		},
		Decode: func(w any) (T, error) {
			var zero T
			obj, ok := objectOf(w)
			if !ok {
				return zero, mismatch("Object", w)
			}
			rawUnit, ok := obj["unit"]
			if !ok {
				return zero, Errorf("key %q not found", "unit")
			}
			if u, _ := rawUnit.(string); u != unit {
				return zero, atKey(Errorf("expected unit %q", unit), "unit")
			}
			rawQty, ok := obj["quantity"]
			if !ok {
				return zero, Errorf("key %q not found", "quantity")
			}
			n, err := amount.Decode(rawQty)
			if err != nil {
				return zero, atKey(err, "quantity")
			}
			v, err := from(n)
			if err != nil {
				return zero, atKey(err, "quantity")
			}
			return v, nil
		},
	}
}

// ListOf encodes a slice as a wire array, decoding every element with vc.
func ListOf[T any](vc ValueCodec[T]) ValueCodec[[]T] {
	return ValueCodec[[]T]{
		Encode: func(vs []T) any {
			out := make([]any, len(vs))
			for i, v := range vs {
				out[i] = vc.Encode(v)
			}
			return out
		},
		Decode: func(w any) ([]T, error) {
			arr, ok := w.([]any)
			if !ok {
				return nil, mismatch("Array", w)
			}
			out := make([]T, len(arr))
			for i, elem := range arr {
				v, err := vc.Decode(elem)
				if err != nil {
					return nil, atIndex(err, i)
				}
				out[i] = v
			}
			return out, nil
		},
		Redact: func(vs []T) any {
			out := make([]any, len(vs))
			for i, v := range vs {
				out[i] = vc.redact(v)
			}
			return out
		},
	}
}

// NonEmptyListOf is ListOf that rejects an empty array.
func NonEmptyListOf[T any](vc ValueCodec[T]) ValueCodec[[]T] {
	list := ListOf(vc)
	decode := list.Decode
	list.Decode = func(w any) ([]T, error) {
		vs, err := decode(w)
		if err != nil {
			return nil, err
		}
		if len(vs) == 0 {
			return nil, NewDecodeError("parsing NonEmpty failed, unexpected empty list")
		}
		return vs, nil
	}
	return list
}

// Secret marks a codec whose values never appear in redacted output.
func Secret[T any](vc ValueCodec[T]) ValueCodec[T] {
	vc.Redact = func(T) any { return RedactedValue }
	return vc
}

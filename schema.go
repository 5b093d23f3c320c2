package walletwire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/zoobzio/sentinel"
)

// Field describes how one struct field of T crosses the wire.
type Field[T any] struct {
	name      string
	key       string
	optional  bool
	sensitive bool
	mask      MaskType

	encode func(*T) (any, bool)
	redact func(*T) (any, bool)
	decode func(*T, any) error
}

// Required declares a field that must be present on the wire. name is the
// Go field name; the wire key defaults to SnakeCase(name).
func Required[T, V any](name string, get func(*T) *V, vc ValueCodec[V]) *Field[T] {
	return &Field[T]{
		name: name,
		key:  SnakeCase(name),
		encode: func(r *T) (any, bool) {
			return vc.Encode(*get(r)), true
		},
		redact: func(r *T) (any, bool) {
			return vc.redact(*get(r)), true
		},
		decode: func(r *T, w any) error {
			v, err := vc.Decode(w)
			if err != nil {
				return err
			}
			*get(r) = v
			return nil
		},
	}
}

// Optional declares a field held by pointer. A nil pointer is omitted from
// the wire; a missing key or a null value decodes to nil.
func Optional[T, V any](name string, get func(*T) **V, vc ValueCodec[V]) *Field[T] {
	return &Field[T]{
		name:     name,
		key:      SnakeCase(name),
		optional: true,
		encode: func(r *T) (any, bool) {
			p := *get(r)
			if p == nil {
				return nil, false
			}
			return vc.Encode(*p), true
		},
		redact: func(r *T) (any, bool) {
			p := *get(r)
			if p == nil {
				return nil, false
			}
			return vc.redact(*p), true
		},
		decode: func(r *T, w any) error {
			v, err := vc.Decode(w)
			if err != nil {
				return err
			}
			*get(r) = &v
			return nil
		},
	}
}

// Key overrides the wire key.
func (f *Field[T]) Key(key string) *Field[T] {
	f.key = key
	return f
}

// Sensitive replaces the field with RedactedValue in redacted output.
func (f *Field[T]) Sensitive() *Field[T] {
	f.sensitive = true
	return f
}

// Masked renders the field through the masker for mt in redacted output.
// The encoded field must be a string; other shapes are redacted.
func (f *Field[T]) Masked(mt MaskType) *Field[T] {
	f.mask = mt
	return f
}

// Schema is the explicit wire layout of a record type. It is built once per
// type and shared by encoding, decoding and redaction.
//
// Schemas are immutable and safe for concurrent use.
type Schema[T any] struct {
	typeName string
	fields   []*Field[T]
}

// NewSchema validates fields against T. Every exported field of T must be
// declared exactly once and wire keys must be unique.
func NewSchema[T any](fields ...*Field[T]) (*Schema[T], error) {
	meta := sentinel.Scan[T]()
	s := &Schema[T]{typeName: meta.TypeName, fields: fields}

	structFields := make(map[string]bool, len(meta.Fields))
	for _, f := range meta.Fields {
		structFields[f.Name] = true
	}

	names := make(map[string]bool, len(fields))
	keys := make(map[string]bool, len(fields))
	for _, f := range fields {
		if !structFields[f.name] {
			return nil, &SchemaError{Type: s.typeName, Field: f.name, Reason: "no such struct field"}
		}
		if names[f.name] {
			return nil, &SchemaError{Type: s.typeName, Field: f.name, Reason: "declared twice"}
		}
		if keys[f.key] {
			return nil, &SchemaError{Type: s.typeName, Field: f.key, Reason: "duplicate wire key"}
		}
		names[f.name] = true
		keys[f.key] = true
	}

	for _, f := range meta.Fields {
		if exported(f.Name) && !names[f.Name] {
			return nil, &SchemaError{Type: s.typeName, Field: f.Name, Reason: "field not covered by schema"}
		}
	}
	return s, nil
}

// MustSchema is NewSchema for package-level schema variables.
func MustSchema[T any](fields ...*Field[T]) *Schema[T] {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func exported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// TypeName returns the record type name.
func (s *Schema[T]) TypeName() string {
	return s.typeName
}

// Keys returns the wire keys in declaration order.
func (s *Schema[T]) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.key
	}
	return keys
}

// MaskTypes returns the mask types used by masked fields.
func (s *Schema[T]) MaskTypes() []MaskType {
	var types []MaskType
	for _, f := range s.fields {
		if f.mask != "" {
			types = append(types, f.mask)
		}
	}
	return types
}

// redactedCount returns the number of sensitive or masked fields.
func (s *Schema[T]) redactedCount() int {
	n := 0
	for _, f := range s.fields {
		if f.sensitive || f.mask != "" {
			n++
		}
	}
	return n
}

// Encode renders v with absent optional fields omitted.
func (s *Schema[T]) Encode(v *T) Document {
	doc := Document{members: make([]Member, 0, len(s.fields))}
	for _, f := range s.fields {
		if w, ok := f.encode(v); ok {
			doc.members = append(doc.members, Member{Key: f.key, Value: w})
		}
	}
	return doc
}

// Decode builds a T from a wire object. Fields are decoded in declaration
// order and the first failure aborts the whole record. Unknown keys are
// ignored.
func (s *Schema[T]) Decode(w any) (T, error) {
	var zero, out T
	obj, ok := objectOf(w)
	if !ok {
		return zero, Errorf("parsing %s failed, expected Object, but encountered %s", s.typeName, kindOf(w))
	}
	for _, f := range s.fields {
		raw, present := obj[f.key]
		if f.optional && (!present || raw == nil) {
			continue
		}
		if !present {
			return zero, Errorf("key %q not found", f.key)
		}
		if err := f.decode(&out, raw); err != nil {
			return zero, atKey(err, f.key)
		}
	}
	return out, nil
}

// Redact renders v for logs: sensitive fields become RedactedValue and
// masked fields go through the builtin maskers.
func (s *Schema[T]) Redact(v *T) Document {
	doc, err := s.redactWith(v, builtinMaskers())
	if err != nil {
		// Unknown mask types fall back to full redaction.
		doc, _ = s.redactWith(v, nil)
	}
	return doc
}

// redactWith renders v using maskers. A nil map redacts masked fields.
func (s *Schema[T]) redactWith(v *T, maskers map[MaskType]Masker) (Document, error) {
	doc := Document{members: make([]Member, 0, len(s.fields))}
	for _, f := range s.fields {
		w, ok := f.redact(v)
		if !ok {
			continue
		}
		switch {
		case f.sensitive:
			w = RedactedValue
		case f.mask != "":
			text, isText := w.(string)
			if maskers == nil || !isText {
				w = RedactedValue
				break
			}
			m, found := maskers[f.mask]
			if !found {
				return Document{}, fmt.Errorf("%w %q (field %s)", ErrMissingMasker, f.mask, f.name)
			}
			w = m.Mask(text)
		}
		doc.members = append(doc.members, Member{Key: f.key, Value: w})
	}
	return doc, nil
}

// Value lets the record nest inside another schema.
func (s *Schema[T]) Value() ValueCodec[T] {
	return ValueCodec[T]{
		Encode: func(v T) any { return s.Encode(&v) },
		Decode: s.Decode,
		Redact: func(v T) any { return s.Redact(&v) },
	}
}

// EncodeJSON renders v as a JSON object.
func (s *Schema[T]) EncodeJSON(v *T) ([]byte, error) {
	return s.Encode(v).MarshalJSON()
}

// DecodeJSON parses a JSON object into v. v is left untouched on failure.
func (s *Schema[T]) DecodeJSON(data []byte, v *T) error {
	w, err := parseJSON(data)
	if err != nil {
		return err
	}
	out, err := s.Decode(w)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// parseJSON decodes a single JSON value, keeping numbers as json.Number.
// Structural failures are reported as DecodeErrors.
func parseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var w any
	if err := dec.Decode(&w); err != nil {
		return nil, NewDecodeError(fmt.Sprintf("Error in $: %v", err))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, NewDecodeError("Error in $: trailing data after JSON value")
	}
	return w, nil
}

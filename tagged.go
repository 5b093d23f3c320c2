package walletwire

import (
	"strings"
)

// Variant is one alternative of a tagged union over V.
type Variant[V any] struct {
	tag    string
	match  func(V) bool
	encode func(V) (any, bool)
	redact func(V) (any, bool)
	decode func(payload any, present bool) (V, error)
}

// Unit declares a variant without payload. name is the Go-style variant
// name; its wire tag is SnakeCase(name).
func Unit[V any](name string, value func() V, is func(V) bool) Variant[V] {
	return Variant[V]{
		tag:    SnakeCase(name),
		match:  is,
		encode: func(V) (any, bool) { return nil, false },
		redact: func(V) (any, bool) { return nil, false },
		decode: func(any, bool) (V, error) { return value(), nil },
	}
}

// Payload declares a variant carrying a value of type P under the contents
// key. unwrap reports whether a V is this variant and extracts its payload.
func Payload[V, P any](name string, vc ValueCodec[P], wrap func(P) V, unwrap func(V) (P, bool)) Variant[V] {
	return Variant[V]{
		tag: SnakeCase(name),
		match: func(v V) bool {
			_, ok := unwrap(v)
			return ok
		},
		encode: func(v V) (any, bool) {
			p, _ := unwrap(v)
			return vc.Encode(p), true
		},
		redact: func(v V) (any, bool) {
			p, _ := unwrap(v)
			return vc.redact(p), true
		},
		decode: func(w any, present bool) (V, error) {
			var zero V
			if !present {
				return zero, errMissingContents
			}
			p, err := vc.Decode(w)
			if err != nil {
				return zero, err
			}
			return wrap(p), nil
		},
	}
}

var errMissingContents = NewDecodeError("missing contents")

// TaggedUnion encodes a multi-variant value as an object holding the
// variant tag under tagKey and the payload, if any, under contentsKey:
//
//	{"status":"ready"}
//	{"status":"restoring","progress":{"quantity":14,"unit":"percent"}}
//
// Variants are tried in order when encoding; the first match wins.
func TaggedUnion[V any](tagKey, contentsKey string, variants ...Variant[V]) ValueCodec[V] {
	tags := make([]string, len(variants))
	for i, v := range variants {
		tags[i] = v.tag
	}
	known := strings.Join(tags, ", ")

	render := func(v V, redacted bool) any {
		for _, variant := range variants {
			if !variant.match(v) {
				continue
			}
			doc := NewDocument(Member{Key: tagKey, Value: variant.tag})
			payload, ok := variant.encode(v)
			if redacted {
				payload, ok = variant.redact(v)
			}
			if ok {
				doc.Set(contentsKey, payload)
			}
			return doc
		}
		// Unreachable for variant sets that cover V.
		return nil
	}

	return ValueCodec[V]{
		Encode: func(v V) any { return render(v, false) },
		Redact: func(v V) any { return render(v, true) },
		Decode: func(w any) (V, error) {
			var zero V
			obj, ok := objectOf(w)
			if !ok {
				return zero, mismatch("Object", w)
			}
			raw, ok := obj[tagKey]
			if !ok {
				return zero, Errorf("key %q not found", tagKey)
			}
			tag, ok := raw.(string)
			if !ok {
				return zero, atKey(mismatch("String", raw), tagKey)
			}
			for _, variant := range variants {
				if variant.tag != tag {
					continue
				}
				payload, present := obj[contentsKey]
				v, err := variant.decode(payload, present)
				if err == errMissingContents {
					return zero, Errorf("key %q not found", contentsKey)
				}
				if err != nil {
					return zero, atKey(err, contentsKey)
				}
				return v, nil
			}
			return zero, atKey(Errorf("unknown %s %q, expected one of: %s", tagKey, tag, known), tagKey)
		},
	}
}

package walletwire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Member is one key/value pair of a Document.
type Member struct {
	Key   string
	Value any
}

// Document is a wire object with ordered members. Schemas encode records
// into Documents so every codec renders keys in declaration order.
type Document struct {
	members []Member
}

// NewDocument returns a Document holding members in order.
func NewDocument(members ...Member) Document {
	return Document{members: append([]Member(nil), members...)}
}

// Set replaces the value under key, or appends it when absent.
func (d *Document) Set(key string, value any) {
	for i := range d.members {
		if d.members[i].Key == key {
			d.members[i].Value = value
			return
		}
	}
	d.members = append(d.members, Member{Key: key, Value: value})
}

// Get returns the value under key.
func (d Document) Get(key string) (any, bool) {
	for _, m := range d.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Members returns a copy of the members in order.
func (d Document) Members() []Member {
	return append([]Member(nil), d.members...)
}

// Keys returns the member keys in order.
func (d Document) Keys() []string {
	keys := make([]string, len(d.members))
	for i, m := range d.members {
		keys[i] = m.Key
	}
	return keys
}

// Len returns the number of members.
func (d Document) Len() int {
	return len(d.members)
}

// MarshalJSON renders the members in order without HTML escaping.
// encoding/json.Marshal re-escapes <, > and & in the result; the json codec
// and Schema.EncodeJSON do not.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range d.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalJSON(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalJSON(m.Value)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", m.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// objectOf views a decoded wire value as an object.
func objectOf(v any) (map[string]any, bool) {
	switch o := v.(type) {
	case map[string]any:
		return o, true
	case Document:
		return documentMap(o), true
	case *Document:
		if o == nil {
			return nil, false
		}
		return documentMap(*o), true
	}
	return nil, false
}

func documentMap(d Document) map[string]any {
	m := make(map[string]any, len(d.members))
	for _, member := range d.members {
		m[member.Key] = member.Value
	}
	return m
}

// numberText renders a decoded wire number as decimal text. Integral
// floats render without exponent so "20" and 20.0 decode alike.
func numberText(v any) (string, bool) {
	switch n := v.(type) {
	case json.Number:
		return jsonNumberText(n), true
	case int:
		return strconv.FormatInt(int64(n), 10), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return floatText(float64(n)), true
	case float64:
		return floatText(n), true
	}
	return "", false
}

// jsonNumberText renders integral fractions and exponents the way the
// float decoders of the other codecs do, so 20.0 reads as 20.
func jsonNumberText(n json.Number) string {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		return s
	}
	f, err := n.Float64()
	if err != nil {
		return s
	}
	return floatText(f)
}

func floatText(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// kindOf names the JSON kind of a decoded wire value for diagnostics.
func kindOf(v any) string {
	if v == nil {
		return "Null"
	}
	if _, ok := objectOf(v); ok {
		return "Object"
	}
	if _, ok := numberText(v); ok {
		return "Number"
	}
	switch v.(type) {
	case string:
		return "String"
	case bool:
		return "Boolean"
	case []any:
		return "Array"
	}
	return fmt.Sprintf("%T", v)
}

func mismatch(want string, got any) error {
	return Errorf("expected %s, but encountered %s", want, kindOf(got))
}

// Package bson provides the BSON wire codec.
//
// BSON has no unsigned 64-bit integer. Numbers above math.MaxInt64 are
// carried as Decimal128 and decode back to the same decimal text.
package bson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/zoobzio/walletwire"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errNotDocument = errors.New("bson: top-level value must be a document")

// bsonCodec implements walletwire.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() walletwire.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes a wire tree as BSON. Only objects can be top-level.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	switch v.(type) {
	case walletwire.Document, map[string]any:
	default:
		return nil, errNotDocument
	}
	doc, err := toBSON(v)
	if err != nil {
		return nil, err
	}
	return bson.Marshal(doc)
}

// Unmarshal decodes BSON data. A *any target receives the generic wire
// tree; other targets are handed to the bson package.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	target, ok := v.(*any)
	if !ok {
		return bson.Unmarshal(data, v)
	}
	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}
	*target = fromBSON(doc)
	return nil
}

func toBSON(v any) (any, error) {
	switch t := v.(type) {
	case walletwire.Document:
		members := t.Members()
		d := make(bson.D, 0, len(members))
		for _, m := range members {
			val, err := toBSON(m.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", m.Key, err)
			}
			d = append(d, bson.E{Key: m.Key, Value: val})
		}
		return d, nil
	case map[string]any:
		out := make(bson.M, len(t))
		for k, elem := range t {
			val, err := toBSON(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = val
		}
		return out, nil
	case []any:
		out := make(bson.A, len(t))
		for i, elem := range t {
			val, err := toBSON(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = val
		}
		return out, nil
	case json.Number:
		return number(t)
	case uint64:
		return number(json.Number(strconv.FormatUint(t, 10)))
	}
	return v, nil
}

func number(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	if _, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return primitive.ParseDecimal128(n.String())
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("bson: invalid number %q", n.String())
	}
	return f, nil
}

func fromBSON(v any) any {
	switch t := v.(type) {
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = fromBSON(e.Value)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[k] = fromBSON(elem)
		}
		return out
	case bson.A:
		return fromArray(t)
	case []any:
		return fromArray(t)
	case primitive.Decimal128:
		return json.Number(t.String())
	}
	return v
}

func fromArray(a []any) []any {
	out := make([]any, len(a))
	for i, elem := range a {
		out[i] = fromBSON(elem)
	}
	return out
}

// Package msgpack provides the MessagePack wire codec.
package msgpack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/walletwire"
)

// msgpackCodec implements walletwire.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() walletwire.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes a wire tree as MessagePack, keeping document order.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encode(enc, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

func encode(enc *msgpack.Encoder, v any) error {
	switch t := v.(type) {
	case walletwire.Document:
		members := t.Members()
		if err := enc.EncodeMapLen(len(members)); err != nil {
			return err
		}
		for _, m := range members {
			if err := enc.EncodeString(m.Key); err != nil {
				return err
			}
			if err := encode(enc, m.Value); err != nil {
				return fmt.Errorf("key %q: %w", m.Key, err)
			}
		}
		return nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if err := enc.EncodeMapLen(len(keys)); err != nil {
			return err
		}
		for _, k := range keys {
			if err := enc.EncodeString(k); err != nil {
				return err
			}
			if err := encode(enc, t[k]); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
		}
		return nil
	case []any:
		if err := enc.EncodeArrayLen(len(t)); err != nil {
			return err
		}
		for i, elem := range t {
			if err := encode(enc, elem); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		return nil
	case json.Number:
		return encodeNumber(enc, t)
	}
	return enc.Encode(v)
}

// encodeNumber picks the narrowest MessagePack type for a JSON number.
func encodeNumber(enc *msgpack.Encoder, n json.Number) error {
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return enc.EncodeUint(u)
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return enc.EncodeInt(i)
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("msgpack: invalid number %q", n.String())
	}
	return enc.EncodeFloat64(f)
}

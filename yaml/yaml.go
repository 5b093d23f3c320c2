// Package yaml provides the YAML wire codec.
//
// Documents are rendered through yaml.Node so mapping keys keep their
// declaration order; strings that would otherwise read as numbers, booleans
// or dates are quoted.
package yaml

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/zoobzio/walletwire"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements walletwire.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() walletwire.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes a wire tree as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func toNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return scalar("!!null", "null"), nil
	case walletwire.Document:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range t.Members() {
			val, err := toNode(m.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", m.Key, err)
			}
			node.Content = append(node.Content, scalar("!!str", m.Key), val)
		}
		return node, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range keys {
			val, err := toNode(t[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			node.Content = append(node.Content, scalar("!!str", k), val)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, elem := range t {
			val, err := toNode(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			node.Content = append(node.Content, val)
		}
		return node, nil
	case string:
		return scalar("!!str", t), nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(t)), nil
	case json.Number:
		if strings.ContainsAny(t.String(), ".eE") {
			return scalar("!!float", t.String()), nil
		}
		return scalar("!!int", t.String()), nil
	case int:
		return scalar("!!int", strconv.FormatInt(int64(t), 10)), nil
	case int64:
		return scalar("!!int", strconv.FormatInt(t, 10)), nil
	case uint64:
		return scalar("!!int", strconv.FormatUint(t, 10)), nil
	case float64:
		return scalar("!!float", strconv.FormatFloat(t, 'g', -1, 64)), nil
	}
	return nil, fmt.Errorf("yaml: unsupported wire value %T", v)
}

package walletwire

// Codec provides content-type aware marshaling of wire trees.
//
// Unmarshal fills v, which is always a *any, with the generic tree the
// schemas consume: objects become map[string]any or Document, arrays
// []any, numbers json.Number or a Go numeric type. Marshal receives a
// Document, []any or scalar and must preserve Document member order.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

package walletwire

// TextCodec maps a domain value to and from its bare text form. Encode is
// total; Decode is the validator and returns a *DecodeError on failure.
//
// Sensitive codecs handle secrets. Tools that echo decoded values print
// "***" in place of their encoding.
type TextCodec[T any] struct {
	Encode    func(T) string
	Decode    func(string) (T, error)
	Sensitive bool
}

// RoundTrip decodes text and encodes the result again.
func (c TextCodec[T]) RoundTrip(text string) (string, error) {
	v, err := c.Decode(text)
	if err != nil {
		return "", err
	}
	return c.Encode(v), nil
}

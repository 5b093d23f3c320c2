package walletwire

import (
	"strings"
	"unicode"
)

// RedactedValue replaces sensitive fields in redacted output.
const RedactedValue = "***"

// MaskType names a masking rule for a wire text format.
type MaskType string

const (
	MaskUUID    MaskType = "uuid"    // 27522fe5-262e-42a5-8ccb-cef884ea2ba0 -> 27522fe5-****-****-****-************
	MaskName    MaskType = "name"    // Alan's Wallet -> A***** W*****
	MaskAddress MaskType = "address" // 2cWKMJemoBaipzQe9BArYdo2iPU -> 2cWKMJ***...***do2iPU
)

// Masker rewrites a text value for display. Output length may differ from
// the input.
type Masker interface {
	Mask(value string) string
}

// MaskerFunc adapts a plain function to Masker.
type MaskerFunc func(string) string

func (f MaskerFunc) Mask(value string) string { return f(value) }

// uuidLength is the length of the canonical 8-4-4-4-12 form.
const uuidLength = 36

// UUIDMasker keeps the first group of a canonical UUID and stars the other
// hex digits. Anything else is starred entirely.
func UUIDMasker() Masker {
	return MaskerFunc(func(value string) string {
		if len(value) != uuidLength || strings.Count(value, "-") != 4 {
			return strings.Repeat("*", len(value))
		}
		b := []byte(value)
		for i := 9; i < len(b); i++ {
			if b[i] != '-' {
				b[i] = '*'
			}
		}
		return string(b)
	})
}

// NameMasker keeps the first letter of every word. Whitespace is kept as
// is.
func NameMasker() Masker {
	return MaskerFunc(func(value string) string {
		var b strings.Builder
		b.Grow(len(value))
		wordStart := true
		for _, r := range value {
			switch {
			case unicode.IsSpace(r):
				b.WriteRune(r)
				wordStart = true
			case wordStart:
				b.WriteRune(r)
				wordStart = false
			default:
				b.WriteByte('*')
			}
		}
		return b.String()
	})
}

// AddressMasker keeps the first and last keep characters of an encoded
// address. Values of at most 2*keep characters are starred entirely.
func AddressMasker(keep int) Masker {
	return MaskerFunc(func(value string) string {
		if len(value) <= 2*keep {
			return strings.Repeat("*", len(value))
		}
		return value[:keep] + "***...***" + value[len(value)-keep:]
	})
}

func builtinMaskers() map[MaskType]Masker {
	return map[MaskType]Masker{
		MaskUUID:    UUIDMasker(),
		MaskName:    NameMasker(),
		MaskAddress: AddressMasker(6),
	}
}

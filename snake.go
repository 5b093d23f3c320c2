package walletwire

import (
	"strings"
	"unicode"
)

// SnakeCase converts a Go identifier to its wire key:
//
//	AddressPoolGap -> address_pool_gap
//	NotDelegating  -> not_delegating
//	WalletID       -> wallet_id
//	HTTPServer     -> http_server
//
// An underscore goes between a lower-case letter or digit and the upper-case
// letter after it, and before the last upper-case letter of a run that is
// followed by a lower-case letter.
func SnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

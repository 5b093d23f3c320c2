// Package primitive holds the domain values that cross the wallet API
// boundary.
//
// Every type here is built through a validating constructor and has no
// mutating methods, so a value that exists is a value that passed its
// predicate. Wire wording lives in the api package; constructors here only
// report which rule was broken through sentinel errors.
package primitive

import (
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Sentinel errors returned by the constructors.
var (
	ErrEmptyAddress         = errors.New("address is empty")
	ErrWalletNameTooShort   = errors.New("wallet name is too short")
	ErrWalletNameTooLong    = errors.New("wallet name is too long")
	ErrPassphraseTooShort   = errors.New("passphrase is too short")
	ErrPassphraseTooLong    = errors.New("passphrase is too long")
	ErrAddressPoolGapBounds = errors.New("address pool gap out of bounds")
	ErrPercentageBounds     = errors.New("percentage out of bounds")
	ErrInvalidUTF8          = errors.New("text is not valid UTF-8")
)

// Length bounds, counted in characters.
const (
	WalletNameMinLength = 1
	WalletNameMaxLength = 255
	PassphraseMinLength = 10
	PassphraseMaxLength = 255
)

// Address is an opaque address payload. Its structure is owned by the
// address derivation layer.
type Address struct {
	raw string
}

// NewAddress copies b into an Address. Empty payloads are rejected.
func NewAddress(b []byte) (Address, error) {
	if len(b) == 0 {
		return Address{}, ErrEmptyAddress
	}
	return Address{raw: string(b)}, nil
}

// Bytes returns a copy of the address payload.
func (a Address) Bytes() []byte {
	return []byte(a.raw)
}

// WalletID identifies a wallet.
type WalletID struct {
	id uuid.UUID
}

// NewWalletID wraps id.
func NewWalletID(id uuid.UUID) WalletID {
	return WalletID{id: id}
}

// UUID returns the underlying identifier.
func (w WalletID) UUID() uuid.UUID {
	return w.id
}

// WalletName is a user-chosen wallet label.
type WalletName struct {
	name string
}

// NewWalletName validates the character length of name.
func NewWalletName(name string) (WalletName, error) {
	if !utf8.ValidString(name) {
		return WalletName{}, ErrInvalidUTF8
	}
	n := utf8.RuneCountInString(name)
	if n < WalletNameMinLength {
		return WalletName{}, ErrWalletNameTooShort
	}
	if n > WalletNameMaxLength {
		return WalletName{}, ErrWalletNameTooLong
	}
	return WalletName{name: name}, nil
}

func (w WalletName) String() string {
	return w.name
}

// Passphrase is the secret used to encrypt a wallet's keys. It is never
// rendered by fmt.
type Passphrase struct {
	secret []byte
}

// NewPassphrase validates the character length of s.
func NewPassphrase(s string) (Passphrase, error) {
	if !utf8.ValidString(s) {
		return Passphrase{}, ErrInvalidUTF8
	}
	n := utf8.RuneCountInString(s)
	if n < PassphraseMinLength {
		return Passphrase{}, ErrPassphraseTooShort
	}
	if n > PassphraseMaxLength {
		return Passphrase{}, ErrPassphraseTooLong
	}
	return Passphrase{secret: []byte(s)}, nil
}

// Bytes returns a copy of the secret.
func (p Passphrase) Bytes() []byte {
	return append([]byte(nil), p.secret...)
}

// Equal reports whether both passphrases hold the same secret.
func (p Passphrase) Equal(o Passphrase) bool {
	return string(p.secret) == string(o.secret)
}

func (p Passphrase) String() string   { return "<passphrase>" }
func (p Passphrase) GoString() string { return "primitive.Passphrase{<redacted>}" }

// PoolID identifies a stake pool.
type PoolID struct {
	id uuid.UUID
}

// NewPoolID wraps id.
func NewPoolID(id uuid.UUID) PoolID {
	return PoolID{id: id}
}

// UUID returns the underlying identifier.
func (p PoolID) UUID() uuid.UUID {
	return p.id
}

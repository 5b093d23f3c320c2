// Package api defines the text codecs and the request and response records
// of the wallet API.
//
// Every record has an explicit schema, and its JSON methods go through that
// schema, so encoding/json and the walletwire processors agree on the
// value. encoding/json.Marshal escapes <, > and & in strings; use
// Schema.EncodeJSON or the json codec for unescaped output.
package api

import (
	"context"
	"errors"
	"sort"

	"github.com/zoobzio/walletwire"
	"github.com/zoobzio/walletwire/mnemonic"
)

// Register adds the API text codecs to r.
func Register(r *walletwire.Registry) error {
	return errors.Join(
		walletwire.Register(r, "address", AddressText),
		walletwire.Register(r, "address-pool-gap", AddressPoolGapText),
		walletwire.Register(r, "passphrase", PassphraseText),
		walletwire.Register(r, "wallet-id", WalletIDText),
		walletwire.Register(r, "wallet-name", WalletNameText),
		walletwire.Register(r, "pool-id", PoolIDText),
		walletwire.Register(r, mnemonicCodecName(mnemonic.Seed), SeedMnemonicText),
		walletwire.Register(r, mnemonicCodecName(mnemonic.SecondFactor), SecondFactorMnemonicText),
	)
}

func mnemonicCodecName(p mnemonic.Purpose) string {
	return p.String() + "-mnemonic"
}

// Decoded is a validated record that can be written out again.
type Decoded interface {
	// Send encodes the record with c.
	Send(ctx context.Context, c walletwire.Codec) ([]byte, error)

	// Redact encodes the record with c, secrets removed.
	Redact(ctx context.Context, c walletwire.Codec) ([]byte, error)
}

// Record decodes one API payload type from any wire codec.
type Record struct {
	Name     string
	TypeName string
	Decode   func(ctx context.Context, c walletwire.Codec, data []byte) (Decoded, error)
}

type decoded[T any] struct {
	schema *walletwire.Schema[T]
	value  *T
}

func (d decoded[T]) Send(ctx context.Context, c walletwire.Codec) ([]byte, error) {
	return walletwire.Use(c, d.schema).Send(ctx, d.value)
}

func (d decoded[T]) Redact(ctx context.Context, c walletwire.Codec) ([]byte, error) {
	return walletwire.Use(c, d.schema).Redact(ctx, d.value)
}

func record[T any](name string, schema *walletwire.Schema[T]) Record {
	return Record{
		Name:     name,
		TypeName: schema.TypeName(),
		Decode: func(ctx context.Context, c walletwire.Codec, data []byte) (Decoded, error) {
			v, err := walletwire.Use(c, schema).Receive(ctx, data)
			if err != nil {
				return nil, err
			}
			return decoded[T]{schema: schema, value: v}, nil
		},
	}
}

var records = map[string]Record{
	"address":               record("address", AddressInfoSchema),
	"transaction-post":      record("transaction-post", PostTransactionSchema),
	"wallet":                record("wallet", WalletSchema),
	"wallet-post":           record("wallet-post", WalletPostSchema),
	"wallet-put":            record("wallet-put", WalletPutSchema),
	"wallet-put-passphrase": record("wallet-put-passphrase", WalletPutPassphraseSchema),
}

// Records returns every record, sorted by name.
func Records() []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupRecord returns the record registered under name.
func LookupRecord(name string) (Record, bool) {
	r, ok := records[name]
	return r, ok
}

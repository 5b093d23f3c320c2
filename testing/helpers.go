// Package testing provides fixtures shared by the walletwire test suites.
package testing

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/walletwire"
	"github.com/zoobzio/walletwire/api"
	"github.com/zoobzio/walletwire/bson"
	"github.com/zoobzio/walletwire/json"
	"github.com/zoobzio/walletwire/mnemonic"
	"github.com/zoobzio/walletwire/msgpack"
	"github.com/zoobzio/walletwire/primitive"
	"github.com/zoobzio/walletwire/yaml"
)

// Fixture values.
const (
	TestWalletID   = "2512a00e-9653-4f30-9f5f-1d7b96f4f7e0"
	TestPoolID     = "27522fe5-262e-42a5-8ccb-cef884ea2ba0"
	TestWalletName = "Alan's Wallet"
	TestPassphrase = "Secure Passphrase"
)

// Codecs returns one instance of every wire codec.
func Codecs() []walletwire.Codec {
	return []walletwire.Codec{json.New(), yaml.New(), msgpack.New(), bson.New()}
}

// Words returns a deterministic valid sentence of n words for p. The
// entropy is all 0x7f bytes.
func Words(tb testing.TB, p mnemonic.Purpose, n int) []string {
	tb.Helper()
	for _, s := range mnemonic.Sizes() {
		if s.Words != n {
			continue
		}
		m, err := mnemonic.FromEntropy(p, bytes.Repeat([]byte{0x7f}, s.EntropyBits/8))
		if err != nil {
			tb.Fatalf("FromEntropy(%v, %d words): %v", p, n, err)
		}
		return m.Words()
	}
	tb.Fatalf("no mnemonic size with %d words", n)
	return nil
}

// Mnemonic returns Words(tb, p, n) as a validated sentence.
func Mnemonic(tb testing.TB, p mnemonic.Purpose, n int) mnemonic.Mnemonic {
	tb.Helper()
	m, err := mnemonic.FromWords(p, Words(tb, p, n))
	if err != nil {
		tb.Fatalf("FromWords: %v", err)
	}
	return m
}

// Passphrase returns TestPassphrase as a validated passphrase.
func Passphrase(tb testing.TB) primitive.Passphrase {
	tb.Helper()
	p, err := primitive.NewPassphrase(TestPassphrase)
	if err != nil {
		tb.Fatalf("NewPassphrase: %v", err)
	}
	return p
}

// WalletName returns TestWalletName as a validated name.
func WalletName(tb testing.TB) primitive.WalletName {
	tb.Helper()
	n, err := primitive.NewWalletName(TestWalletName)
	if err != nil {
		tb.Fatalf("NewWalletName: %v", err)
	}
	return n
}

// Address returns an address over raw.
func Address(tb testing.TB, raw string) primitive.Address {
	tb.Helper()
	a, err := primitive.NewAddress([]byte(raw))
	if err != nil {
		tb.Fatalf("NewAddress: %v", err)
	}
	return a
}

// SampleWallet returns a restoring wallet delegating to TestPoolID.
func SampleWallet(tb testing.TB) api.Wallet {
	tb.Helper()
	gap, err := primitive.NewAddressPoolGap(30)
	if err != nil {
		tb.Fatalf("NewAddressPoolGap: %v", err)
	}
	progress, err := primitive.NewPercentage(42)
	if err != nil {
		tb.Fatalf("NewPercentage: %v", err)
	}
	return api.Wallet{
		ID:             primitive.NewWalletID(uuid.MustParse(TestWalletID)),
		AddressPoolGap: gap,
		Balance:        primitive.WalletBalance{Available: 1_000_000, Total: 18_446_744_073_709_551_615},
		Delegation:     primitive.DelegatingTo(primitive.NewPoolID(uuid.MustParse(TestPoolID))),
		Name:           WalletName(tb),
		Passphrase:     &primitive.PassphraseInfo{LastUpdatedAt: time.Date(2019, 4, 12, 7, 47, 0, 0, time.UTC)},
		State:          primitive.Restoring(progress),
	}
}

// SampleWalletPost returns a creation payload with every optional field set.
func SampleWalletPost(tb testing.TB) api.WalletPostData {
	tb.Helper()
	gap := primitive.DefaultGap()
	second := Mnemonic(tb, mnemonic.SecondFactor, 12)
	return api.WalletPostData{
		AddressPoolGap:       &gap,
		MnemonicSentence:     Mnemonic(tb, mnemonic.Seed, 24),
		MnemonicSecondFactor: &second,
		Name:                 WalletName(tb),
		Passphrase:           Passphrase(tb),
	}
}

// SamplePostTransaction returns a payment to two targets.
func SamplePostTransaction(tb testing.TB) api.PostTransactionData {
	tb.Helper()
	return api.PostTransactionData{
		Targets: []api.PaymentTarget{
			{Address: Address(tb, "first target payload"), Amount: 42},
			{Address: Address(tb, "second target payload"), Amount: 1_000_000},
		},
		Passphrase: Passphrase(tb),
	}
}

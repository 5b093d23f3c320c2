package api

import (
	"time"

	"github.com/zoobzio/walletwire"
	"github.com/zoobzio/walletwire/mnemonic"
	"github.com/zoobzio/walletwire/primitive"
)

// Wallet is the wire view of a wallet.
type Wallet struct {
	ID             primitive.WalletID
	AddressPoolGap primitive.AddressPoolGap
	Balance        primitive.WalletBalance
	Delegation     primitive.WalletDelegation
	Name           primitive.WalletName
	Passphrase     *primitive.PassphraseInfo
	State          primitive.WalletState
}

// BalanceSchema lays out a wallet balance as two lovelace quantities.
var BalanceSchema = walletwire.MustSchema(
	walletwire.Required("Available", func(b *primitive.WalletBalance) *primitive.Lovelace { return &b.Available }, lovelaceValue),
	walletwire.Required("Total", func(b *primitive.WalletBalance) *primitive.Lovelace { return &b.Total }, lovelaceValue),
)

// PassphraseInfoSchema lays out passphrase metadata.
var PassphraseInfoSchema = walletwire.MustSchema(
	walletwire.Required("LastUpdatedAt", func(p *primitive.PassphraseInfo) *time.Time { return &p.LastUpdatedAt }, walletwire.Time()),
)

// WalletSchema is the wire layout of Wallet.
var WalletSchema = walletwire.MustSchema(
	walletwire.Required("ID", func(w *Wallet) *primitive.WalletID { return &w.ID }, walletIDValue).Masked(walletwire.MaskUUID),
	walletwire.Required("AddressPoolGap", func(w *Wallet) *primitive.AddressPoolGap { return &w.AddressPoolGap }, gapValue),
	walletwire.Required("Balance", func(w *Wallet) *primitive.WalletBalance { return &w.Balance }, BalanceSchema.Value()),
	walletwire.Required("Delegation", func(w *Wallet) *primitive.WalletDelegation { return &w.Delegation }, WalletDelegationValue),
	walletwire.Required("Name", func(w *Wallet) *primitive.WalletName { return &w.Name }, walletNameValue).Masked(walletwire.MaskName),
	walletwire.Optional("Passphrase", func(w *Wallet) **primitive.PassphraseInfo { return &w.Passphrase }, PassphraseInfoSchema.Value()),
	walletwire.Required("State", func(w *Wallet) *primitive.WalletState { return &w.State }, WalletStateValue),
)

func (w Wallet) MarshalJSON() ([]byte, error) {
	return WalletSchema.EncodeJSON(&w)
}

func (w *Wallet) UnmarshalJSON(data []byte) error {
	return WalletSchema.DecodeJSON(data, w)
}

// WalletPostData is the wallet creation payload.
type WalletPostData struct {
	AddressPoolGap       *primitive.AddressPoolGap
	MnemonicSentence     mnemonic.Mnemonic
	MnemonicSecondFactor *mnemonic.Mnemonic
	Name                 primitive.WalletName
	Passphrase           primitive.Passphrase
}

// WalletPostSchema is the wire layout of WalletPostData. The seed sentence
// takes 15 to 24 words and the second factor 9 or 12.
var WalletPostSchema = walletwire.MustSchema(
	walletwire.Optional("AddressPoolGap", func(d *WalletPostData) **primitive.AddressPoolGap { return &d.AddressPoolGap }, gapValue),
	walletwire.Required("MnemonicSentence", func(d *WalletPostData) *mnemonic.Mnemonic { return &d.MnemonicSentence }, seedMnemonicValue),
	walletwire.Optional("MnemonicSecondFactor", func(d *WalletPostData) **mnemonic.Mnemonic { return &d.MnemonicSecondFactor }, secondFactorMnemonicValue),
	walletwire.Required("Name", func(d *WalletPostData) *primitive.WalletName { return &d.Name }, walletNameValue).Masked(walletwire.MaskName),
	walletwire.Required("Passphrase", func(d *WalletPostData) *primitive.Passphrase { return &d.Passphrase }, passphraseValue).Sensitive(),
)

func (d WalletPostData) MarshalJSON() ([]byte, error) {
	return WalletPostSchema.EncodeJSON(&d)
}

func (d *WalletPostData) UnmarshalJSON(data []byte) error {
	return WalletPostSchema.DecodeJSON(data, d)
}

// Gap returns the requested address pool gap, or the default when the
// client left it out.
func (d WalletPostData) Gap() primitive.AddressPoolGap {
	if d.AddressPoolGap == nil {
		return primitive.DefaultGap()
	}
	return *d.AddressPoolGap
}

// WalletPutData renames a wallet.
type WalletPutData struct {
	Name *primitive.WalletName
}

// WalletPutSchema is the wire layout of WalletPutData.
var WalletPutSchema = walletwire.MustSchema(
	walletwire.Optional("Name", func(d *WalletPutData) **primitive.WalletName { return &d.Name }, walletNameValue).Masked(walletwire.MaskName),
)

func (d WalletPutData) MarshalJSON() ([]byte, error) {
	return WalletPutSchema.EncodeJSON(&d)
}

func (d *WalletPutData) UnmarshalJSON(data []byte) error {
	return WalletPutSchema.DecodeJSON(data, d)
}

// WalletPutPassphraseData changes a wallet passphrase.
type WalletPutPassphraseData struct {
	OldPassphrase primitive.Passphrase
	NewPassphrase primitive.Passphrase
}

// WalletPutPassphraseSchema is the wire layout of WalletPutPassphraseData.
var WalletPutPassphraseSchema = walletwire.MustSchema(
	walletwire.Required("OldPassphrase", func(d *WalletPutPassphraseData) *primitive.Passphrase { return &d.OldPassphrase }, passphraseValue).Sensitive(),
	walletwire.Required("NewPassphrase", func(d *WalletPutPassphraseData) *primitive.Passphrase { return &d.NewPassphrase }, passphraseValue).Sensitive(),
)

func (d WalletPutPassphraseData) MarshalJSON() ([]byte, error) {
	return WalletPutPassphraseSchema.EncodeJSON(&d)
}

func (d *WalletPutPassphraseData) UnmarshalJSON(data []byte) error {
	return WalletPutPassphraseSchema.DecodeJSON(data, d)
}

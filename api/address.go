package api

import (
	"github.com/zoobzio/walletwire"
	"github.com/zoobzio/walletwire/primitive"
)

// AddressInfo is an address with its usage state.
type AddressInfo struct {
	ID    primitive.Address
	State primitive.AddressState
}

// AddressInfoSchema is the wire layout of AddressInfo.
var AddressInfoSchema = walletwire.MustSchema(
	walletwire.Required("ID", func(a *AddressInfo) *primitive.Address { return &a.ID }, addressValue).Masked(walletwire.MaskAddress),
	walletwire.Required("State", func(a *AddressInfo) *primitive.AddressState { return &a.State }, addressStateValue),
)

func (a AddressInfo) MarshalJSON() ([]byte, error) {
	return AddressInfoSchema.EncodeJSON(&a)
}

func (a *AddressInfo) UnmarshalJSON(data []byte) error {
	return AddressInfoSchema.DecodeJSON(data, a)
}

// PaymentTarget is one output of a payment.
type PaymentTarget struct {
	Address primitive.Address
	Amount  primitive.Lovelace
}

// PaymentTargetSchema is the wire layout of PaymentTarget.
var PaymentTargetSchema = walletwire.MustSchema(
	walletwire.Required("Address", func(t *PaymentTarget) *primitive.Address { return &t.Address }, addressValue).Masked(walletwire.MaskAddress),
	walletwire.Required("Amount", func(t *PaymentTarget) *primitive.Lovelace { return &t.Amount }, lovelaceValue),
)

// PostTransactionData is the payment creation payload.
type PostTransactionData struct {
	Targets    []PaymentTarget
	Passphrase primitive.Passphrase
}

// PostTransactionSchema is the wire layout of PostTransactionData. A
// payment needs at least one target.
var PostTransactionSchema = walletwire.MustSchema(
	walletwire.Required("Targets", func(d *PostTransactionData) *[]PaymentTarget { return &d.Targets },
		walletwire.NonEmptyListOf(PaymentTargetSchema.Value())),
	walletwire.Required("Passphrase", func(d *PostTransactionData) *primitive.Passphrase { return &d.Passphrase }, passphraseValue).Sensitive(),
)

func (d PostTransactionData) MarshalJSON() ([]byte, error) {
	return PostTransactionSchema.EncodeJSON(&d)
}

func (d *PostTransactionData) UnmarshalJSON(data []byte) error {
	return PostTransactionSchema.DecodeJSON(data, d)
}

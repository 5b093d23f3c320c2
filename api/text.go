package api

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/zoobzio/walletwire"
	"github.com/zoobzio/walletwire/mnemonic"
	"github.com/zoobzio/walletwire/primitive"
)

// Diagnostics returned by the text codecs. The wording is part of the API
// and clients match on it.
var (
	msgAddress = "Unable to decode Address: expected Base58 encoding."

	msgAddressPoolGap = fmt.Sprintf(
		"An address pool gap must be a natural number between %d and %d.",
		primitive.MinAddressPoolGap, primitive.MaxAddressPoolGap)

	msgPassphraseTooShort = fmt.Sprintf(
		"passphrase is too short: expected at least %d characters", primitive.PassphraseMinLength)
	msgPassphraseTooLong = fmt.Sprintf(
		"passphrase is too long: expected at most %d characters", primitive.PassphraseMaxLength)
	msgPassphraseUTF8 = "passphrase must be valid UTF-8"

	msgWalletNameTooShort = fmt.Sprintf(
		"name is too short: expected at least %d character", primitive.WalletNameMinLength)
	msgWalletNameTooLong = fmt.Sprintf(
		"name is too long: expected at most %d characters", primitive.WalletNameMaxLength)
	msgWalletNameUTF8 = "name must be valid UTF-8"

	msgWalletID = "wallet id must be a valid UUID"
	msgPoolID   = "pool id must be a valid UUID"

	msgUnknownWord = "Found an unknown word not present in the pre-defined dictionary."
	msgChecksum    = "Invalid entropy checksum: please double-check the last word of your mnemonic sentence."
)

// AddressText is the Base58 (bitcoin alphabet) form of an address.
var AddressText = walletwire.TextCodec[primitive.Address]{
	Encode: func(a primitive.Address) string {
		return base58.Encode(a.Bytes())
	},
	Decode: func(s string) (primitive.Address, error) {
		b, err := base58.Decode(s)
		if err != nil {
			return primitive.Address{}, walletwire.NewDecodeError(msgAddress)
		}
		a, err := primitive.NewAddress(b)
		if err != nil {
			return primitive.Address{}, walletwire.NewDecodeError(msgAddress)
		}
		return a, nil
	},
}

// AddressPoolGapText is the decimal form of an address pool gap.
var AddressPoolGapText = walletwire.TextCodec[primitive.AddressPoolGap]{
	Encode: func(g primitive.AddressPoolGap) string {
		return strconv.FormatUint(uint64(g.Uint8()), 10)
	},
	Decode: func(s string) (primitive.AddressPoolGap, error) {
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return primitive.AddressPoolGap{}, walletwire.NewDecodeError(msgAddressPoolGap)
		}
		g, err := primitive.NewAddressPoolGap(uint8(n))
		if err != nil {
			return primitive.AddressPoolGap{}, walletwire.NewDecodeError(msgAddressPoolGap)
		}
		return g, nil
	},
}

// PassphraseText is the raw UTF-8 form of a spending passphrase.
var PassphraseText = walletwire.TextCodec[primitive.Passphrase]{
	Encode: func(p primitive.Passphrase) string {
		return string(p.Bytes())
	},
	Decode: func(s string) (primitive.Passphrase, error) {
		p, err := primitive.NewPassphrase(s)
		switch {
		case err == nil:
			return p, nil
		case errors.Is(err, primitive.ErrPassphraseTooShort):
			return primitive.Passphrase{}, walletwire.NewDecodeError(msgPassphraseTooShort)
		case errors.Is(err, primitive.ErrPassphraseTooLong):
			return primitive.Passphrase{}, walletwire.NewDecodeError(msgPassphraseTooLong)
		default:
			return primitive.Passphrase{}, walletwire.NewDecodeError(msgPassphraseUTF8)
		}
	},
	Sensitive: true,
}

// WalletNameText is the raw UTF-8 form of a wallet name.
var WalletNameText = walletwire.TextCodec[primitive.WalletName]{
	Encode: primitive.WalletName.String,
	Decode: func(s string) (primitive.WalletName, error) {
		n, err := primitive.NewWalletName(s)
		switch {
		case err == nil:
			return n, nil
		case errors.Is(err, primitive.ErrWalletNameTooShort):
			return primitive.WalletName{}, walletwire.NewDecodeError(msgWalletNameTooShort)
		case errors.Is(err, primitive.ErrWalletNameTooLong):
			return primitive.WalletName{}, walletwire.NewDecodeError(msgWalletNameTooLong)
		default:
			return primitive.WalletName{}, walletwire.NewDecodeError(msgWalletNameUTF8)
		}
	},
}

// WalletIDText is the canonical hyphenated UUID form of a wallet id.
var WalletIDText = walletwire.TextCodec[primitive.WalletID]{
	Encode: func(id primitive.WalletID) string {
		return id.UUID().String()
	},
	Decode: func(s string) (primitive.WalletID, error) {
		id, ok := parseCanonicalUUID(s)
		if !ok {
			return primitive.WalletID{}, walletwire.NewDecodeError(msgWalletID)
		}
		return primitive.NewWalletID(id), nil
	},
}

// PoolIDText is the canonical hyphenated UUID form of a stake pool id.
var PoolIDText = walletwire.TextCodec[primitive.PoolID]{
	Encode: func(id primitive.PoolID) string {
		return id.UUID().String()
	},
	Decode: func(s string) (primitive.PoolID, error) {
		id, ok := parseCanonicalUUID(s)
		if !ok {
			return primitive.PoolID{}, walletwire.NewDecodeError(msgPoolID)
		}
		return primitive.NewPoolID(id), nil
	},
}

// parseCanonicalUUID accepts only the 36 character hyphenated form.
// uuid.Parse also takes the urn, braced and bare hex forms.
func parseCanonicalUUID(s string) (uuid.UUID, bool) {
	if len(s) != 36 {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

// MnemonicText is the whitespace separated form of a mnemonic sentence
// for purpose p. Encoding returns the words exactly as they were decoded.
func MnemonicText(p mnemonic.Purpose) walletwire.TextCodec[mnemonic.Mnemonic] {
	return walletwire.TextCodec[mnemonic.Mnemonic]{
		Encode: mnemonic.Mnemonic.Text,
		Decode: func(s string) (mnemonic.Mnemonic, error) {
			m, err := mnemonic.Parse(p, s)
			if err != nil {
				return mnemonic.Mnemonic{}, mnemonicError(err)
			}
			return m, nil
		},
		Sensitive: true,
	}
}

// Mnemonic codecs for the two purposes the API accepts.
var (
	SeedMnemonicText         = MnemonicText(mnemonic.Seed)
	SecondFactorMnemonicText = MnemonicText(mnemonic.SecondFactor)
)

// mnemonicError turns a mnemonic failure into its wire diagnostic.
func mnemonicError(err error) error {
	var sizeErr *mnemonic.SizeError
	switch {
	case errors.As(err, &sizeErr):
		return walletwire.Errorf("Invalid number of words: %s words are expected.",
			mnemonic.FormatSizes(sizeErr.Accepted))
	case errors.Is(err, mnemonic.ErrUnknownWord):
		return walletwire.NewDecodeError(msgUnknownWord)
	case errors.Is(err, mnemonic.ErrChecksum):
		return walletwire.NewDecodeError(msgChecksum)
	}
	return walletwire.NewDecodeError(err.Error())
}

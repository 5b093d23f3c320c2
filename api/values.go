package api

import (
	"github.com/zoobzio/walletwire"
	"github.com/zoobzio/walletwire/mnemonic"
	"github.com/zoobzio/walletwire/primitive"
)

// Units of the quantities on the wire.
const (
	UnitLovelace = "lovelace"
	UnitPercent  = "percent"
)

// Field codecs shared by the record schemas. Scalars go through the same
// TextCodec used for bare text.
var (
	addressValue    = walletwire.FromText(AddressText)
	gapValue        = walletwire.Decimal(AddressPoolGapText)
	passphraseValue = walletwire.Secret(walletwire.FromText(PassphraseText))
	walletIDValue   = walletwire.FromText(WalletIDText)
	walletNameValue = walletwire.FromText(WalletNameText)
	poolIDValue     = walletwire.FromText(PoolIDText)

	lovelaceValue = walletwire.Quantity(UnitLovelace,
		func(l primitive.Lovelace) uint64 { return uint64(l) },
		func(n uint64) (primitive.Lovelace, error) { return primitive.Lovelace(n), nil },
	)

	percentValue = walletwire.Quantity(UnitPercent,
		func(p primitive.Percentage) uint64 { return uint64(p.Uint8()) },
		func(n uint64) (primitive.Percentage, error) {
			if n > 100 {
				return primitive.Percentage{}, walletwire.NewDecodeError("percentage must be between 0 and 100")
			}
			return primitive.NewPercentage(uint8(n))
		},
	)

	addressStateValue = walletwire.Enum(primitive.AddressUsed, primitive.AddressUnused)

	seedMnemonicValue         = mnemonicValue(mnemonic.Seed)
	secondFactorMnemonicValue = mnemonicValue(mnemonic.SecondFactor)
)

// WalletStateValue encodes a wallet state as
// {"status":"ready"} or {"status":"restoring","progress":<percent>}.
var WalletStateValue = walletwire.TaggedUnion("status", "progress",
	walletwire.Unit("Ready", primitive.Ready, func(s primitive.WalletState) bool {
		_, restoring := s.Progress()
		return !restoring
	}),
	walletwire.Payload("Restoring", percentValue, primitive.Restoring, primitive.WalletState.Progress),
)

// WalletDelegationValue encodes a delegation as
// {"status":"not_delegating"} or {"status":"delegating","target":<pool id>}.
var WalletDelegationValue = walletwire.TaggedUnion("status", "target",
	walletwire.Unit("NotDelegating", primitive.NotDelegating, func(d primitive.WalletDelegation) bool {
		_, delegating := d.Target()
		return !delegating
	}),
	walletwire.Payload("Delegating", poolIDValue, primitive.DelegatingTo, primitive.WalletDelegation.Target),
)

// mnemonicValue encodes a sentence as a JSON array of words. Redacted
// output never shows the words.
func mnemonicValue(p mnemonic.Purpose) walletwire.ValueCodec[mnemonic.Mnemonic] {
	words := walletwire.ListOf(walletwire.String())
	return walletwire.Secret(walletwire.ValueCodec[mnemonic.Mnemonic]{
		Encode: func(m mnemonic.Mnemonic) any {
			return words.Encode(m.Words())
		},
		Decode: func(w any) (mnemonic.Mnemonic, error) {
			ws, err := words.Decode(w)
			if err != nil {
				return mnemonic.Mnemonic{}, err
			}
			m, err := mnemonic.FromWords(p, ws)
			if err != nil {
				return mnemonic.Mnemonic{}, mnemonicError(err)
			}
			return m, nil
		},
	})
}

package primitive

import "time"

// Address pool gap bounds.
const (
	MinAddressPoolGap     uint8 = 10
	MaxAddressPoolGap     uint8 = 100
	DefaultAddressPoolGap uint8 = 20
)

// AddressPoolGap is the number of consecutive unused addresses a wallet
// keeps discoverable.
type AddressPoolGap struct {
	gap uint8
}

// NewAddressPoolGap checks g against MinAddressPoolGap and MaxAddressPoolGap.
func NewAddressPoolGap(g uint8) (AddressPoolGap, error) {
	if g < MinAddressPoolGap || g > MaxAddressPoolGap {
		return AddressPoolGap{}, ErrAddressPoolGapBounds
	}
	return AddressPoolGap{gap: g}, nil
}

// DefaultGap returns the gap used when a client does not pick one.
func DefaultGap() AddressPoolGap {
	return AddressPoolGap{gap: DefaultAddressPoolGap}
}

// Uint8 returns the gap.
func (g AddressPoolGap) Uint8() uint8 {
	return g.gap
}

// Lovelace is an amount of the smallest currency unit.
type Lovelace uint64

// Percentage is a whole percentage in [0, 100].
type Percentage struct {
	p uint8
}

// NewPercentage rejects values above 100.
func NewPercentage(p uint8) (Percentage, error) {
	if p > 100 {
		return Percentage{}, ErrPercentageBounds
	}
	return Percentage{p: p}, nil
}

// Uint8 returns the percentage.
func (p Percentage) Uint8() uint8 {
	return p.p
}

// WalletBalance splits a wallet's funds by spendability.
type WalletBalance struct {
	Available Lovelace
	Total     Lovelace
}

// WalletDelegation is either NotDelegating or delegating to a pool.
type WalletDelegation struct {
	target *PoolID
}

// NotDelegating returns a delegation with no target.
func NotDelegating() WalletDelegation {
	return WalletDelegation{}
}

// DelegatingTo returns a delegation to pool.
func DelegatingTo(pool PoolID) WalletDelegation {
	return WalletDelegation{target: &pool}
}

// Target returns the pool delegated to, if any.
func (d WalletDelegation) Target() (PoolID, bool) {
	if d.target == nil {
		return PoolID{}, false
	}
	return *d.target, true
}

// WalletState is either Ready or restoring with a progress.
type WalletState struct {
	restoring bool
	progress  Percentage
}

// Ready returns the state of a fully synced wallet.
func Ready() WalletState {
	return WalletState{}
}

// Restoring returns the state of a wallet being restored.
func Restoring(progress Percentage) WalletState {
	return WalletState{restoring: true, progress: progress}
}

// Progress returns the restoration progress while restoring.
func (s WalletState) Progress() (Percentage, bool) {
	return s.progress, s.restoring
}

// AddressState tells whether an address appeared on chain.
type AddressState string

// Address states.
const (
	AddressUsed   AddressState = "used"
	AddressUnused AddressState = "unused"
)

// PassphraseInfo describes when a wallet passphrase last changed.
type PassphraseInfo struct {
	LastUpdatedAt time.Time
}

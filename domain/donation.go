package domain

import "cosmossdk.io/math"

const (
	// DonationDenominator is the denominator of the donation rate. A rate of
	// DonationDenominator withholds the entire assessed amount.
	DonationDenominator uint64 = 1_000_000

	// DefaultDonationBps is the default donation rate over the denominator (0.1%).
	DefaultDonationBps uint64 = 1000
)

// DefaultMinDonationAmount is the default dust threshold. Donations computed
// below it are dropped entirely rather than clamped up.
var DefaultMinDonationAmount = math.NewInt(1000)

// Address identifies an account in the host engine's settlement layer.
// It is treated as opaque; only emptiness is meaningful here.
type Address string

// IsZero returns true if the address is the zero/null address.
func (a Address) IsZero() bool {
	return len(a) == 0
}

// Role is a governance role over the donation config.
type Role string

const (
	// RoleDonationManager may change the donation rate and recipient.
	RoleDonationManager Role = "donation-manager"
	// RoleGuardian may enable or disable donation collection.
	RoleGuardian Role = "guardian"
)

// SwapDirection is the token ordering of a swap in a two-token pool.
type SwapDirection int

const (
	SwapDirectionZeroForOne SwapDirection = iota
	SwapDirectionOneForZero
)

func (d SwapDirection) String() string {
	if d == SwapDirectionZeroForOne {
		return "zero_for_one"
	}
	return "one_for_zero"
}

// SwapIntent describes the swap the engine is about to execute. The sign of
// AmountSpecified follows the engine's convention: negative means exact
// input, positive means exact output.
type SwapIntent struct {
	Direction       SwapDirection `json:"direction"`
	AmountSpecified math.Int      `json:"amount_specified"`
	// SqrtPriceLimit is carried through untouched for the engine.
	SqrtPriceLimit string `json:"sqrt_price_limit"`
	TokenIn        string `json:"token_in"`
	TokenOut       string `json:"token_out"`
}

// IsExactInput returns true when the intent fixes the input amount.
func (i SwapIntent) IsExactInput() bool {
	return i.AmountSpecified.IsNegative()
}

// PoolDonationConfig is the per-pool donation configuration.
type PoolDonationConfig struct {
	// DonationBps is the donation rate over DonationDenominator.
	DonationBps uint64 `json:"donation_bps"`
	// Recipient receives the withheld donations.
	Recipient Address `json:"recipient"`
	// MinDonationAmount is the all-or-nothing dust threshold.
	MinDonationAmount math.Int `json:"min_donation_amount"`
	// Enabled is the guardian-controlled kill-switch.
	Enabled bool `json:"enabled"`
}

// NewDefaultPoolDonationConfig returns the config a pool starts with.
func NewDefaultPoolDonationConfig(recipient Address) PoolDonationConfig {
	return PoolDonationConfig{
		DonationBps:       DefaultDonationBps,
		Recipient:         recipient,
		MinDonationAmount: DefaultMinDonationAmount,
		Enabled:           true,
	}
}

// Validate returns an error if the config violates the rate invariant.
func (c PoolDonationConfig) Validate() error {
	if c.DonationBps > DonationDenominator {
		return InvalidRateError{Bps: c.DonationBps}
	}
	return nil
}

// DonationRecord is the audit tuple emitted once per qualifying swap.
type DonationRecord struct {
	User           Address  `json:"user"`
	PoolID         uint64   `json:"pool_id"`
	DonationToken  string   `json:"donation_token"`
	DonationAmount math.Int `json:"donation_amount"`
	// SwapAmount is the adjusted amount the engine executed after withholding.
	SwapAmount math.Int `json:"swap_amount"`
}

// ConfigUpdateKind discriminates which config field a governance mutation touched.
type ConfigUpdateKind string

const (
	ConfigUpdateRate      ConfigUpdateKind = "rate"
	ConfigUpdateRecipient ConfigUpdateKind = "recipient"
	ConfigUpdateEnabled   ConfigUpdateKind = "enabled"
)

// ConfigUpdate is the audit event emitted on every governance mutation.
// Only the field matching Kind is meaningful.
type ConfigUpdate struct {
	PoolID       uint64           `json:"pool_id"`
	Kind         ConfigUpdateKind `json:"kind"`
	NewBps       uint64           `json:"new_bps,omitempty"`
	NewRecipient Address          `json:"new_recipient,omitempty"`
	Enabled      bool             `json:"enabled,omitempty"`
}

// BeforeSwapResult is the pre-swap withholding decision handed back to the
// engine. For deferred (exact-output) swaps it carries the config snapshot
// the post-swap assessment must use.
type BeforeSwapResult struct {
	// AmountToSwap is the amount the engine should execute, sign-preserving.
	AmountToSwap math.Int `json:"amount_to_swap"`
	// DonationAmount is the amount withheld pre-swap, zero when deferred.
	DonationAmount math.Int `json:"donation_amount"`
	// Deferred marks an exact-output swap whose donation is assessed post-swap.
	Deferred bool `json:"deferred"`

	Config PoolDonationConfig `json:"-"`
}

// AfterSwapResult is the final settlement of the swap's donation.
type AfterSwapResult struct {
	DonationAmount math.Int `json:"donation_amount"`
	// NetSettlement is the swap amount net of the donation, satisfying
	// donation + |net| == base exactly.
	NetSettlement math.Int `json:"net_settlement"`
}

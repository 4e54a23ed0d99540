package usecase

import (
	"cosmossdk.io/math"

	"github.com/givepool/donation-interceptor/domain"
)

var donationDenominator = math.NewIntFromUint64(domain.DonationDenominator)

// ComputeFromBase assesses the donation against a non-negative base amount
// of the input currency. Returns the withheld donation and the residual
// swap amount such that donation + adjusted == base exactly.
//
// Integer floor division guarantees the pool never settles short of what
// the engine computed. The minimum threshold is an all-or-nothing gate,
// not a clamp: a computed donation below it is suppressed entirely.
//
// Pure and deterministic, callable any number of times for dry runs.
func ComputeFromBase(config domain.PoolDonationConfig, base math.Int) (donation math.Int, adjusted math.Int) {
	if !config.Enabled || config.DonationBps == 0 || !base.IsPositive() {
		return math.ZeroInt(), base
	}

	donation = base.Mul(math.NewIntFromUint64(config.DonationBps)).Quo(donationDenominator)

	if donation.LT(config.MinDonationAmount) {
		return math.ZeroInt(), base
	}

	return donation, base.Sub(donation)
}

// ComputeDonation assesses the donation for an amount carrying the
// engine's sign convention (negative = exact input, positive = exact
// output). The adjusted amount is returned in the same convention.
//
// Exact-output amounts must not be assessed here: the donation for those
// is computed from the realized input after pricing, via ComputeFromBase.
func ComputeDonation(config domain.PoolDonationConfig, amountSpecified math.Int) (donation math.Int, adjusted math.Int) {
	if !config.Enabled || config.DonationBps == 0 {
		return math.ZeroInt(), amountSpecified
	}

	base := amountSpecified.Abs()

	donation, adjustedBase := ComputeFromBase(config, base)
	if donation.IsZero() {
		return donation, amountSpecified
	}

	if amountSpecified.IsNegative() {
		return donation, adjustedBase.Neg()
	}

	return donation, adjustedBase
}

package usecase_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/alecthomas/assert/v2"
	"github.com/stretchr/testify/suite"

	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/donation/usecase"
)

type CalculatorTestSuite struct {
	suite.Suite
}

func TestCalculatorTestSuite(t *testing.T) {
	suite.Run(t, new(CalculatorTestSuite))
}

func enabledConfig(bps uint64, minDonation int64) domain.PoolDonationConfig {
	return domain.PoolDonationConfig{
		DonationBps:       bps,
		Recipient:         "charity1",
		MinDonationAmount: math.NewInt(minDonation),
		Enabled:           true,
	}
}

func (suite *CalculatorTestSuite) TestComputeFromBase() {
	tests := []struct {
		name             string
		config           domain.PoolDonationConfig
		base             math.Int
		expectedDonation math.Int
		expectedAdjusted math.Int
	}{
		{
			// Scenario A: 0.1% of 1,000,000.
			name:             "exact-input one million at 1000 bps",
			config:           enabledConfig(1000, 1000),
			base:             math.NewInt(1_000_000),
			expectedDonation: math.NewInt(1000),
			expectedAdjusted: math.NewInt(999_000),
		},
		{
			// Scenario B: computed donation of 0 is below the threshold.
			name:             "dust amount is gated entirely",
			config:           enabledConfig(1000, 1000),
			base:             math.NewInt(500),
			expectedDonation: math.ZeroInt(),
			expectedAdjusted: math.NewInt(500),
		},
		{
			// Scenario D: realized input of an exact-output swap.
			name:             "realized input of two million at 1000 bps",
			config:           enabledConfig(1000, 1000),
			base:             math.NewInt(2_000_000),
			expectedDonation: math.NewInt(2000),
			expectedAdjusted: math.NewInt(1_998_000),
		},
		{
			name:             "donation just below threshold is gated, not clamped",
			config:           enabledConfig(1000, 1000),
			base:             math.NewInt(999_000),
			expectedDonation: math.ZeroInt(),
			expectedAdjusted: math.NewInt(999_000),
		},
		{
			name:             "donation exactly at threshold passes",
			config:           enabledConfig(1000, 1000),
			base:             math.NewInt(1_000_000),
			expectedDonation: math.NewInt(1000),
			expectedAdjusted: math.NewInt(999_000),
		},
		{
			name:             "floor division never rounds up",
			config:           enabledConfig(1000, 0),
			base:             math.NewInt(1_999_999),
			expectedDonation: math.NewInt(1999),
			expectedAdjusted: math.NewInt(1_998_000),
		},
		{
			name:             "full denominator rate donates the entire base",
			config:           enabledConfig(domain.DonationDenominator, 0),
			base:             math.NewInt(12345),
			expectedDonation: math.NewInt(12345),
			expectedAdjusted: math.ZeroInt(),
		},
		{
			name: "disabled pool withholds nothing",
			config: domain.PoolDonationConfig{
				DonationBps:       1000,
				Recipient:         "charity1",
				MinDonationAmount: math.NewInt(1000),
				Enabled:           false,
			},
			base:             math.NewInt(1_000_000),
			expectedDonation: math.ZeroInt(),
			expectedAdjusted: math.NewInt(1_000_000),
		},
		{
			name:             "zero rate withholds nothing",
			config:           enabledConfig(0, 1000),
			base:             math.NewInt(1_000_000),
			expectedDonation: math.ZeroInt(),
			expectedAdjusted: math.NewInt(1_000_000),
		},
		{
			name:             "zero base withholds nothing",
			config:           enabledConfig(1000, 0),
			base:             math.ZeroInt(),
			expectedDonation: math.ZeroInt(),
			expectedAdjusted: math.ZeroInt(),
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			donation, adjusted := usecase.ComputeFromBase(tt.config, tt.base)

			assert.True(suite.T(), tt.expectedDonation.Equal(donation))
			assert.True(suite.T(), tt.expectedAdjusted.Equal(adjusted))

			// No value created or destroyed.
			if tt.base.IsPositive() {
				assert.True(suite.T(), donation.Add(adjusted).Equal(tt.base))
			}
		})
	}
}

// TestComputeFromBase_Conservation sweeps rates across the full valid range
// and asserts the numeric contract holds for each.
func (suite *CalculatorTestSuite) TestComputeFromBase_Conservation() {
	bases := []int64{1, 999, 1000, 999_999, 1_000_000, 123_456_789}
	rates := []uint64{0, 1, 100, 1000, 10_000, 999_999, domain.DonationDenominator}

	for _, base := range bases {
		for _, rate := range rates {
			config := enabledConfig(rate, 0)
			baseInt := math.NewInt(base)

			donation, adjusted := usecase.ComputeFromBase(config, baseInt)

			suite.Require().True(donation.Add(adjusted).Equal(baseInt), "base %d rate %d", base, rate)
			suite.Require().False(donation.IsNegative())
			suite.Require().False(adjusted.IsNegative())
			suite.Require().True(donation.LTE(baseInt))
		}
	}
}

func (suite *CalculatorTestSuite) TestComputeDonation() {
	tests := []struct {
		name             string
		config           domain.PoolDonationConfig
		amountSpecified  math.Int
		expectedDonation math.Int
		expectedAdjusted math.Int
	}{
		{
			// Scenario A with the engine's sign convention.
			name:             "exact input reduces the swapped amount",
			config:           enabledConfig(1000, 1000),
			amountSpecified:  math.NewInt(-1_000_000),
			expectedDonation: math.NewInt(1000),
			expectedAdjusted: math.NewInt(-999_000),
		},
		{
			// Scenario B.
			name:             "gated exact input passes through unchanged",
			config:           enabledConfig(1000, 1000),
			amountSpecified:  math.NewInt(-500),
			expectedDonation: math.ZeroInt(),
			expectedAdjusted: math.NewInt(-500),
		},
		{
			name: "disabled pool passes amount through unchanged",
			config: domain.PoolDonationConfig{
				DonationBps:       1000,
				Recipient:         "charity1",
				MinDonationAmount: math.NewInt(1000),
				Enabled:           false,
			},
			amountSpecified:  math.NewInt(-1_000_000),
			expectedDonation: math.ZeroInt(),
			expectedAdjusted: math.NewInt(-1_000_000),
		},
		{
			name:             "positive amount keeps its sign",
			config:           enabledConfig(1000, 0),
			amountSpecified:  math.NewInt(1_000_000),
			expectedDonation: math.NewInt(1000),
			expectedAdjusted: math.NewInt(999_000),
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			donation, adjusted := usecase.ComputeDonation(tt.config, tt.amountSpecified)

			assert.True(suite.T(), tt.expectedDonation.Equal(donation))
			assert.True(suite.T(), tt.expectedAdjusted.Equal(adjusted))
		})
	}
}

// TestComputeDonation_Idempotence asserts the calculator is deterministic
// for repeated calls with identical inputs.
func (suite *CalculatorTestSuite) TestComputeDonation_Idempotence() {
	config := enabledConfig(1000, 1000)
	amountSpecified := math.NewInt(-1_000_000)

	firstDonation, firstAdjusted := usecase.ComputeDonation(config, amountSpecified)
	secondDonation, secondAdjusted := usecase.ComputeDonation(config, amountSpecified)

	assert.True(suite.T(), firstDonation.Equal(secondDonation))
	assert.True(suite.T(), firstAdjusted.Equal(secondAdjusted))
}

package mvc

import (
	"context"

	"cosmossdk.io/math"

	"github.com/givepool/donation-interceptor/domain"
)

// DonationConfigRepository represents the contract for the per-pool
// donation configuration store.
type DonationConfigRepository interface {
	// Get returns the stored config for the pool, or the global default
	// config if the pool was never initialized.
	Get(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error)
	// Set overwrites the config for the pool. Callers validate before
	// writing; readers always observe a fully-written config.
	Set(ctx context.Context, poolID uint64, config domain.PoolDonationConfig) error
	// InitializeDefaults writes the global defaults for the pool if no
	// config exists yet. No-op otherwise. Invoked once at pool-attach time.
	InitializeDefaults(ctx context.Context, poolID uint64) error
}

// GovernanceUsecase represents the governed configuration mutations and
// the read-only audit surface exposed to governance callers.
type GovernanceUsecase interface {
	// GetConfig returns the effective donation config for the pool.
	GetConfig(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error)
	// SetRate updates the donation rate. Requires the donation-manager role.
	// Returns InvalidRateError if newBps exceeds the denominator.
	SetRate(ctx context.Context, poolID uint64, newBps uint64, caller domain.Address) error
	// SetRecipient updates the donation recipient. Requires the
	// donation-manager role. Returns InvalidAddressError for the zero address.
	SetRecipient(ctx context.Context, poolID uint64, newRecipient domain.Address, caller domain.Address) error
	// SetEnabled toggles donation collection for the pool. Requires the
	// guardian role. The guardian cannot change rate or recipient.
	SetEnabled(ctx context.Context, poolID uint64, enabled bool, caller domain.Address) error
	// RecentDonations returns the most recent donation records for the pool.
	RecentDonations(ctx context.Context, poolID uint64) []domain.DonationRecord
}

// DonationUsecase represents the swap interceptor driven by the
// swap-execution engine's callback points.
type DonationUsecase interface {
	// OnPoolInitialized writes the default donation config for a freshly
	// attached pool. Idempotent.
	OnPoolInitialized(ctx context.Context, poolID uint64) error
	// BeforeSwap is invoked before the engine executes the swap. For
	// exact-input swaps it withholds the donation and returns the reduced
	// amount the engine should execute. Exact-output swaps are deferred to
	// AfterSwap because the input amount is unknown pre-trade.
	BeforeSwap(ctx context.Context, user domain.Address, poolID uint64, intent domain.SwapIntent) (domain.BeforeSwapResult, error)
	// AfterSwap is invoked after the engine has priced the swap. For
	// deferred swaps it assesses the donation against the realized input
	// amount. Returns the net settlement for the payer's side.
	AfterSwap(ctx context.Context, user domain.Address, poolID uint64, intent domain.SwapIntent, decision domain.BeforeSwapResult, realizedInput math.Int) (domain.AfterSwapResult, error)
}

// Authorizer validates that a caller holds a required governance role.
type Authorizer interface {
	Authorize(caller domain.Address, requiredRole domain.Role) bool
}

// EventEmitter is the append-only audit output channel. Emission is
// synchronous so that per-swap ordering is preserved.
type EventEmitter interface {
	EmitDonation(record domain.DonationRecord)
	EmitConfigUpdate(update domain.ConfigUpdate)
	// RecentDonations returns a copy of the most recent donation records
	// retained in memory for the pool.
	RecentDonations(poolID uint64) []domain.DonationRecord
}

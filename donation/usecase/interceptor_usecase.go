package usecase

import (
	"context"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/domain/mvc"
	"github.com/givepool/donation-interceptor/log"
)

var _ mvc.DonationUsecase = &interceptorUseCaseImpl{}

type interceptorUseCaseImpl struct {
	configRepository mvc.DonationConfigRepository
	bankKeeper       domain.BankKeeper
	emitter          mvc.EventEmitter
	logger           log.Logger
}

var (
	configReadFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "donation_config_read_failures_total",
			Help: "Total number of config reads that fell back to fail-safe disable",
		},
	)
	transferFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donation_transfer_failures_total",
			Help: "Total number of failed donation transfers",
		},
		[]string{"token"},
	)
)

func init() {
	prometheus.MustRegister(configReadFailures)
	prometheus.MustRegister(transferFailures)
}

// NewInterceptorUsecase will create a new swap interceptor use case object.
func NewInterceptorUsecase(configRepository mvc.DonationConfigRepository, bankKeeper domain.BankKeeper, emitter mvc.EventEmitter, logger log.Logger) mvc.DonationUsecase {
	return &interceptorUseCaseImpl{
		configRepository: configRepository,
		bankKeeper:       bankKeeper,
		emitter:          emitter,
		logger:           logger,
	}
}

// OnPoolInitialized implements mvc.DonationUsecase.
func (u *interceptorUseCaseImpl) OnPoolInitialized(ctx context.Context, poolID uint64) error {
	return u.configRepository.InitializeDefaults(ctx, poolID)
}

// BeforeSwap implements mvc.DonationUsecase.
//
// Exact-input swaps are assessed immediately: the donation is withheld from
// the payer's side and the engine executes the reduced amount. Exact-output
// swaps are deferred because the input amount is unknown until the engine
// prices the trade.
func (u *interceptorUseCaseImpl) BeforeSwap(ctx context.Context, user domain.Address, poolID uint64, intent domain.SwapIntent) (domain.BeforeSwapResult, error) {
	config := u.readConfigFailSafe(ctx, poolID)

	if !intent.IsExactInput() {
		return domain.BeforeSwapResult{
			AmountToSwap:   intent.AmountSpecified,
			DonationAmount: math.ZeroInt(),
			Deferred:       true,
			Config:         config,
		}, nil
	}

	donation, adjusted := ComputeDonation(config, intent.AmountSpecified)
	if donation.IsZero() {
		return domain.BeforeSwapResult{
			AmountToSwap:   intent.AmountSpecified,
			DonationAmount: donation,
			Config:         config,
		}, nil
	}

	if err := u.settleDonation(ctx, user, poolID, intent, config, donation, adjusted.Abs()); err != nil {
		return domain.BeforeSwapResult{}, err
	}

	return domain.BeforeSwapResult{
		AmountToSwap:   adjusted,
		DonationAmount: donation,
		Config:         config,
	}, nil
}

// AfterSwap implements mvc.DonationUsecase.
//
// For deferred (exact-output) swaps the donation is assessed against the
// realized input amount supplied by the engine's pricing result, using the
// config snapshot taken at pre-swap time.
func (u *interceptorUseCaseImpl) AfterSwap(ctx context.Context, user domain.Address, poolID uint64, intent domain.SwapIntent, decision domain.BeforeSwapResult, realizedInput math.Int) (domain.AfterSwapResult, error) {
	if !decision.Deferred {
		return domain.AfterSwapResult{
			DonationAmount: decision.DonationAmount,
			NetSettlement:  decision.AmountToSwap,
		}, nil
	}

	donation, adjusted := ComputeFromBase(decision.Config, realizedInput)
	if donation.IsZero() {
		return domain.AfterSwapResult{
			DonationAmount: donation,
			NetSettlement:  realizedInput,
		}, nil
	}

	if err := u.settleDonation(ctx, user, poolID, intent, decision.Config, donation, adjusted); err != nil {
		return domain.AfterSwapResult{}, err
	}

	return domain.AfterSwapResult{
		DonationAmount: donation,
		NetSettlement:  adjusted,
	}, nil
}

// settleDonation transfers the withheld donation from the payer to the
// recipient and emits the audit record. Any failure here aborts the entire
// swap: withholding is inseparable from swap settlement, so the engine
// rolls back both together.
func (u *interceptorUseCaseImpl) settleDonation(ctx context.Context, user domain.Address, poolID uint64, intent domain.SwapIntent, config domain.PoolDonationConfig, donation, swapAmount math.Int) error {
	if config.Recipient.IsZero() {
		transferFailures.WithLabelValues(intent.TokenIn).Inc()
		return domain.TransferFailedError{
			Token:  intent.TokenIn,
			From:   user,
			To:     config.Recipient,
			Amount: donation.String(),
			Err:    domain.InvalidAddressError{Address: config.Recipient},
		}
	}

	if err := u.bankKeeper.Transfer(ctx, intent.TokenIn, user, config.Recipient, donation); err != nil {
		transferFailures.WithLabelValues(intent.TokenIn).Inc()
		return domain.TransferFailedError{
			Token:  intent.TokenIn,
			From:   user,
			To:     config.Recipient,
			Amount: donation.String(),
			Err:    err,
		}
	}

	u.emitter.EmitDonation(domain.DonationRecord{
		User:           user,
		PoolID:         poolID,
		DonationToken:  intent.TokenIn,
		DonationAmount: donation,
		SwapAmount:     swapAmount,
	})

	return nil
}

// readConfigFailSafe returns the pool's donation config, falling back to a
// disabled config if the store is unavailable. Swaps never hard-fail solely
// because donation bookkeeping is unreachable.
func (u *interceptorUseCaseImpl) readConfigFailSafe(ctx context.Context, poolID uint64) domain.PoolDonationConfig {
	config, err := u.configRepository.Get(ctx, poolID)
	if err != nil {
		configReadFailures.Inc()
		u.logger.Error("donation config unavailable, disabling withholding for this swap", zap.Uint64("pool_id", poolID), zap.Error(err))

		return domain.PoolDonationConfig{
			Enabled:           false,
			MinDonationAmount: math.ZeroInt(),
		}
	}

	return config
}

package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/domain/mvc"
	"github.com/givepool/donation-interceptor/log"
)

var _ mvc.GovernanceUsecase = &governanceUseCaseImpl{}

type governanceUseCaseImpl struct {
	configRepository mvc.DonationConfigRepository
	authorizer       mvc.Authorizer
	emitter          mvc.EventEmitter
	logger           log.Logger
}

// NewGovernanceUsecase will create a new governance use case object.
// Every mutating entry point consults the authorizer; checks are never
// re-implemented ad hoc per setter.
func NewGovernanceUsecase(configRepository mvc.DonationConfigRepository, authorizer mvc.Authorizer, emitter mvc.EventEmitter, logger log.Logger) mvc.GovernanceUsecase {
	return &governanceUseCaseImpl{
		configRepository: configRepository,
		authorizer:       authorizer,
		emitter:          emitter,
		logger:           logger,
	}
}

// GetConfig implements mvc.GovernanceUsecase.
func (u *governanceUseCaseImpl) GetConfig(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error) {
	return u.configRepository.Get(ctx, poolID)
}

// SetRate implements mvc.GovernanceUsecase.
// The new rate is visible to all subsequent swaps on the pool from the next
// read onward. In-flight swaps keep their pre-swap snapshot.
func (u *governanceUseCaseImpl) SetRate(ctx context.Context, poolID uint64, newBps uint64, caller domain.Address) error {
	if !u.authorizer.Authorize(caller, domain.RoleDonationManager) {
		return domain.UnauthorizedError{Caller: caller, RequiredRole: domain.RoleDonationManager}
	}

	// Upper boundary is inclusive.
	if newBps > domain.DonationDenominator {
		return domain.InvalidRateError{Bps: newBps}
	}

	config, err := u.configRepository.Get(ctx, poolID)
	if err != nil {
		return err
	}

	config.DonationBps = newBps
	if err := u.configRepository.Set(ctx, poolID, config); err != nil {
		return err
	}

	u.emitter.EmitConfigUpdate(domain.ConfigUpdate{
		PoolID: poolID,
		Kind:   domain.ConfigUpdateRate,
		NewBps: newBps,
	})

	u.logger.Info("donation rate updated", zap.Uint64("pool_id", poolID), zap.Uint64("new_bps", newBps), zap.String("caller", string(caller)))

	return nil
}

// SetRecipient implements mvc.GovernanceUsecase.
func (u *governanceUseCaseImpl) SetRecipient(ctx context.Context, poolID uint64, newRecipient domain.Address, caller domain.Address) error {
	if !u.authorizer.Authorize(caller, domain.RoleDonationManager) {
		return domain.UnauthorizedError{Caller: caller, RequiredRole: domain.RoleDonationManager}
	}

	if newRecipient.IsZero() {
		return domain.InvalidAddressError{Address: newRecipient}
	}

	config, err := u.configRepository.Get(ctx, poolID)
	if err != nil {
		return err
	}

	config.Recipient = newRecipient
	if err := u.configRepository.Set(ctx, poolID, config); err != nil {
		return err
	}

	u.emitter.EmitConfigUpdate(domain.ConfigUpdate{
		PoolID:       poolID,
		Kind:         domain.ConfigUpdateRecipient,
		NewRecipient: newRecipient,
	})

	u.logger.Info("donation recipient updated", zap.Uint64("pool_id", poolID), zap.String("new_recipient", string(newRecipient)), zap.String("caller", string(caller)))

	return nil
}

// SetEnabled implements mvc.GovernanceUsecase.
// Guardian-only emergency kill-switch. The guardian cannot redirect funds.
func (u *governanceUseCaseImpl) SetEnabled(ctx context.Context, poolID uint64, enabled bool, caller domain.Address) error {
	if !u.authorizer.Authorize(caller, domain.RoleGuardian) {
		return domain.UnauthorizedError{Caller: caller, RequiredRole: domain.RoleGuardian}
	}

	config, err := u.configRepository.Get(ctx, poolID)
	if err != nil {
		return err
	}

	config.Enabled = enabled
	if err := u.configRepository.Set(ctx, poolID, config); err != nil {
		return err
	}

	u.emitter.EmitConfigUpdate(domain.ConfigUpdate{
		PoolID:  poolID,
		Kind:    domain.ConfigUpdateEnabled,
		Enabled: enabled,
	})

	u.logger.Info("donation collection toggled", zap.Uint64("pool_id", poolID), zap.Bool("enabled", enabled), zap.String("caller", string(caller)))

	return nil
}

// RecentDonations implements mvc.GovernanceUsecase.
func (u *governanceUseCaseImpl) RecentDonations(ctx context.Context, poolID uint64) []domain.DonationRecord {
	return u.emitter.RecentDonations(poolID)
}

package mocks

import (
	"context"

	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/domain/mvc"
)

var _ mvc.GovernanceUsecase = &GovernanceUsecaseMock{}

// GovernanceUsecaseMock mocks the governance usecase for delivery tests.
type GovernanceUsecaseMock struct {
	GetConfigFunc       func(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error)
	SetRateFunc         func(ctx context.Context, poolID uint64, newBps uint64, caller domain.Address) error
	SetRecipientFunc    func(ctx context.Context, poolID uint64, newRecipient domain.Address, caller domain.Address) error
	SetEnabledFunc      func(ctx context.Context, poolID uint64, enabled bool, caller domain.Address) error
	RecentDonationsFunc func(ctx context.Context, poolID uint64) []domain.DonationRecord
}

func (m *GovernanceUsecaseMock) GetConfig(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error) {
	if m.GetConfigFunc != nil {
		return m.GetConfigFunc(ctx, poolID)
	}
	panic("unimplemented")
}

func (m *GovernanceUsecaseMock) SetRate(ctx context.Context, poolID uint64, newBps uint64, caller domain.Address) error {
	if m.SetRateFunc != nil {
		return m.SetRateFunc(ctx, poolID, newBps, caller)
	}
	panic("unimplemented")
}

func (m *GovernanceUsecaseMock) SetRecipient(ctx context.Context, poolID uint64, newRecipient domain.Address, caller domain.Address) error {
	if m.SetRecipientFunc != nil {
		return m.SetRecipientFunc(ctx, poolID, newRecipient, caller)
	}
	panic("unimplemented")
}

func (m *GovernanceUsecaseMock) SetEnabled(ctx context.Context, poolID uint64, enabled bool, caller domain.Address) error {
	if m.SetEnabledFunc != nil {
		return m.SetEnabledFunc(ctx, poolID, enabled, caller)
	}
	panic("unimplemented")
}

func (m *GovernanceUsecaseMock) RecentDonations(ctx context.Context, poolID uint64) []domain.DonationRecord {
	if m.RecentDonationsFunc != nil {
		return m.RecentDonationsFunc(ctx, poolID)
	}
	panic("unimplemented")
}

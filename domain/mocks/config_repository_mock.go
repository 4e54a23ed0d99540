package mocks

import (
	"context"

	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/domain/mvc"
)

var _ mvc.DonationConfigRepository = &ConfigRepositoryMock{}

// ConfigRepositoryMock mocks the donation config store.
type ConfigRepositoryMock struct {
	GetFunc                func(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error)
	SetFunc                func(ctx context.Context, poolID uint64, config domain.PoolDonationConfig) error
	InitializeDefaultsFunc func(ctx context.Context, poolID uint64) error
}

func (m *ConfigRepositoryMock) Get(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, poolID)
	}
	panic("unimplemented")
}

func (m *ConfigRepositoryMock) Set(ctx context.Context, poolID uint64, config domain.PoolDonationConfig) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, poolID, config)
	}
	panic("unimplemented")
}

func (m *ConfigRepositoryMock) InitializeDefaults(ctx context.Context, poolID uint64) error {
	if m.InitializeDefaultsFunc != nil {
		return m.InitializeDefaultsFunc(ctx, poolID)
	}
	panic("unimplemented")
}

package donationrepo

import (
	"context"
	"sync"

	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/domain/mvc"
)

var _ mvc.DonationConfigRepository = &memoryConfigRepo{}

type memoryConfigRepo struct {
	defaultConfig domain.PoolDonationConfig
	configMap     sync.Map
}

// New creates a new in-memory repository for per-pool donation configs.
// Pools that were never initialized read as the given default config.
func New(defaultConfig domain.PoolDonationConfig) mvc.DonationConfigRepository {
	return &memoryConfigRepo{
		defaultConfig: defaultConfig,
		configMap:     sync.Map{},
	}
}

// Get implements mvc.DonationConfigRepository. Never fails.
func (r *memoryConfigRepo) Get(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error) {
	configAny, ok := r.configMap.Load(poolID)
	if !ok {
		return r.defaultConfig, nil
	}

	config, ok := configAny.(domain.PoolDonationConfig)
	if !ok {
		return r.defaultConfig, nil
	}

	return config, nil
}

// Set implements mvc.DonationConfigRepository.
func (r *memoryConfigRepo) Set(ctx context.Context, poolID uint64, config domain.PoolDonationConfig) error {
	r.configMap.Store(poolID, config)
	return nil
}

// InitializeDefaults implements mvc.DonationConfigRepository.
// A disabled pool retains its record; re-attaching never resets it.
func (r *memoryConfigRepo) InitializeDefaults(ctx context.Context, poolID uint64) error {
	r.configMap.LoadOrStore(poolID, r.defaultConfig)
	return nil
}

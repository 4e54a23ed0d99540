package donationredisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/givepool/donation-interceptor/domain"
	"github.com/givepool/donation-interceptor/domain/mvc"
)

const (
	keySeparator = "~"

	donationPrefix = "d" + keySeparator
	configKey      = donationPrefix + "cfg"
)

var _ mvc.DonationConfigRepository = &redisConfigRepo{}

type redisConfigRepo struct {
	repositoryManager TxManager
	defaultConfig     domain.PoolDonationConfig
}

// New will create a redis-backed implementation of
// mvc.DonationConfigRepository. Configs are stored as JSON values in a
// single hash keyed by pool ID.
func New(repositoryManager TxManager, defaultConfig domain.PoolDonationConfig) mvc.DonationConfigRepository {
	return &redisConfigRepo{
		repositoryManager: repositoryManager,
		defaultConfig:     defaultConfig,
	}
}

// Get implements mvc.DonationConfigRepository.
// A pool that was never initialized reads as the default config.
func (r *redisConfigRepo) Get(ctx context.Context, poolID uint64) (domain.PoolDonationConfig, error) {
	tx := r.repositoryManager.StartTx()

	redisTx, err := tx.AsRedisTx()
	if err != nil {
		return domain.PoolDonationConfig{}, err
	}

	pipeliner, err := redisTx.GetPipeliner(ctx)
	if err != nil {
		return domain.PoolDonationConfig{}, err
	}

	result := pipeliner.HGet(ctx, configKey, formatPoolKey(poolID))

	_, err = pipeliner.Exec(ctx)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return r.defaultConfig, nil
		}
		return domain.PoolDonationConfig{}, err
	}

	var config domain.PoolDonationConfig
	if err := json.Unmarshal([]byte(result.Val()), &config); err != nil {
		return domain.PoolDonationConfig{}, err
	}

	return config, nil
}

// Set implements mvc.DonationConfigRepository.
func (r *redisConfigRepo) Set(ctx context.Context, poolID uint64, config domain.PoolDonationConfig) error {
	tx := r.repositoryManager.StartTx()

	redisTx, err := tx.AsRedisTx()
	if err != nil {
		return err
	}

	pipeliner, err := redisTx.GetPipeliner(ctx)
	if err != nil {
		return err
	}

	configStr, err := json.Marshal(config)
	if err != nil {
		return err
	}

	cmd := pipeliner.HSet(ctx, configKey, formatPoolKey(poolID), configStr)
	if err := cmd.Err(); err != nil {
		return err
	}

	return tx.Exec(ctx)
}

// InitializeDefaults implements mvc.DonationConfigRepository.
func (r *redisConfigRepo) InitializeDefaults(ctx context.Context, poolID uint64) error {
	tx := r.repositoryManager.StartTx()

	redisTx, err := tx.AsRedisTx()
	if err != nil {
		return err
	}

	pipeliner, err := redisTx.GetPipeliner(ctx)
	if err != nil {
		return err
	}

	configStr, err := json.Marshal(r.defaultConfig)
	if err != nil {
		return err
	}

	// HSetNX keeps an existing config intact, making pool re-attach a no-op.
	cmd := pipeliner.HSetNX(ctx, configKey, formatPoolKey(poolID), configStr)
	if err := cmd.Err(); err != nil {
		return err
	}

	return tx.Exec(ctx)
}

func formatPoolKey(poolID uint64) string {
	return strconv.FormatUint(poolID, 10)
}

package donationredisrepo

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Tx defines an interface for atomic transaction.
type Tx interface {
	// Exec executes the transaction.
	// Returns an error if transaction is not in progress.
	Exec(context.Context) error

	// IsActive returns true if transaction is in progress.
	IsActive() bool

	// AsRedisTx returns a redis transaction.
	// Returns an error if this is not a redis transaction.
	AsRedisTx() (*RedisTx, error)
}

// TxManager defines an interface for atomic transaction manager.
type TxManager interface {
	// StartTx starts a new atomic transaction.
	StartTx() Tx
}

// RedisTx is a redis transaction backed by a pipeliner.
type RedisTx struct {
	pipeliner redis.Pipeliner
	isActive  bool
}

var _ Tx = &RedisTx{}

// NewRedisTx creates a new redis transaction over the given pipeliner.
func NewRedisTx(pipeliner redis.Pipeliner) *RedisTx {
	return &RedisTx{
		pipeliner: pipeliner,
		isActive:  true,
	}
}

// GetPipeliner returns the pipeliner of the transaction.
// Returns an error if the transaction is no longer in progress.
func (t *RedisTx) GetPipeliner(ctx context.Context) (redis.Pipeliner, error) {
	if !t.isActive {
		return nil, errors.New("transaction is not active")
	}
	return t.pipeliner, nil
}

// Exec implements Tx.
func (t *RedisTx) Exec(ctx context.Context) error {
	if !t.isActive {
		return errors.New("transaction is not active")
	}
	t.isActive = false

	_, err := t.pipeliner.Exec(ctx)
	return err
}

// IsActive implements Tx.
func (t *RedisTx) IsActive() bool {
	return t.isActive
}

// AsRedisTx implements Tx.
func (t *RedisTx) AsRedisTx() (*RedisTx, error) {
	return t, nil
}

// RedisTxManager is a structure encapsulating creation of atomic transactions.
type RedisTxManager struct {
	client *redis.Client
}

var _ TxManager = &RedisTxManager{}

// NewTxManager creates a new TxManager.
func NewTxManager(redisClient *redis.Client) TxManager {
	return &RedisTxManager{
		client: redisClient,
	}
}

// StartTx implements TxManager.
func (rm *RedisTxManager) StartTx() Tx {
	return NewRedisTx(rm.client.TxPipeline())
}

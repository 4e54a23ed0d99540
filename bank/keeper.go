package bank

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/math"

	"github.com/givepool/donation-interceptor/domain"
)

var _ domain.BankKeeper = &InMemoryKeeper{}

// InMemoryKeeper is a process-local token ledger implementing
// domain.BankKeeper. It stands in for the host engine's settlement layer
// when the hook server runs without one.
type InMemoryKeeper struct {
	mu sync.Mutex

	// balances are keyed by token, then holder address.
	balances map[string]map[domain.Address]math.Int
}

// NewInMemoryKeeper creates an empty in-memory ledger.
func NewInMemoryKeeper() *InMemoryKeeper {
	return &InMemoryKeeper{
		balances: make(map[string]map[domain.Address]math.Int),
	}
}

// Mint credits the given address, creating the token bucket on first use.
func (k *InMemoryKeeper) Mint(token string, to domain.Address, amount math.Int) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.credit(token, to, amount)
}

// Balance returns the current balance, zero for unknown holders.
func (k *InMemoryKeeper) Balance(token string, holder domain.Address) math.Int {
	k.mu.Lock()
	defer k.mu.Unlock()

	holders, ok := k.balances[token]
	if !ok {
		return math.ZeroInt()
	}

	balance, ok := holders[holder]
	if !ok {
		return math.ZeroInt()
	}
	return balance
}

// Transfer implements domain.BankKeeper. It debits from and credits to
// atomically, failing without side effects when the sender cannot cover
// the amount.
func (k *InMemoryKeeper) Transfer(ctx context.Context, token string, from, to domain.Address, amount math.Int) error {
	if amount.IsNegative() {
		return fmt.Errorf("transfer amount (%s) must not be negative", amount)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	balance := math.ZeroInt()
	if holders, ok := k.balances[token]; ok {
		if current, ok := holders[from]; ok {
			balance = current
		}
	}

	if balance.LT(amount) {
		return fmt.Errorf("insufficient %s balance for %s: have %s, need %s", token, from, balance, amount)
	}

	k.credit(token, from, amount.Neg())
	k.credit(token, to, amount)

	return nil
}

// credit assumes the lock is held.
func (k *InMemoryKeeper) credit(token string, to domain.Address, amount math.Int) {
	holders, ok := k.balances[token]
	if !ok {
		holders = make(map[domain.Address]math.Int)
		k.balances[token] = holders
	}

	current, ok := holders[to]
	if !ok {
		current = math.ZeroInt()
	}
	holders[to] = current.Add(amount)
}

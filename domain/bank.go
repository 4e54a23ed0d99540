package domain

import (
	"context"

	"cosmossdk.io/math"
)

// BankKeeper is the token-transfer substrate the interceptor settles
// donations through. The host engine supplies its own implementation.
type BankKeeper interface {
	Transfer(ctx context.Context, token string, from, to Address, amount math.Int) error
}

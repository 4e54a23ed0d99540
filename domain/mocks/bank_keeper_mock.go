package mocks

import (
	"context"

	"cosmossdk.io/math"

	"github.com/givepool/donation-interceptor/domain"
)

var _ domain.BankKeeper = &BankKeeperMock{}

// BankKeeperMock mocks the token-transfer substrate. It records every
// transfer it was asked to perform.
type BankKeeperMock struct {
	TransferFunc func(ctx context.Context, token string, from, to domain.Address, amount math.Int) error

	Transfers []TransferCall
}

// TransferCall captures the arguments of one Transfer invocation.
type TransferCall struct {
	Token  string
	From   domain.Address
	To     domain.Address
	Amount math.Int
}

func (m *BankKeeperMock) Transfer(ctx context.Context, token string, from, to domain.Address, amount math.Int) error {
	if m.TransferFunc != nil {
		if err := m.TransferFunc(ctx, token, from, to, amount); err != nil {
			return err
		}
	}

	m.Transfers = append(m.Transfers, TransferCall{
		Token:  token,
		From:   from,
		To:     to,
		Amount: amount,
	})

	return nil
}

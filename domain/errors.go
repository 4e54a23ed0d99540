package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
)

// UnauthorizedError is returned when a governance caller does not hold the
// role required by the mutation it attempted.
type UnauthorizedError struct {
	Caller       Address
	RequiredRole Role
}

func (e UnauthorizedError) Error() string {
	return fmt.Sprintf("caller (%s) does not hold the required role (%s)", e.Caller, e.RequiredRole)
}

// InvalidRateError is returned when a donation rate exceeds the denominator.
type InvalidRateError struct {
	Bps uint64
}

func (e InvalidRateError) Error() string {
	return fmt.Sprintf("donation rate (%d) exceeds the denominator (%d)", e.Bps, DonationDenominator)
}

// InvalidAddressError is returned when a recipient resolves to the zero/null address.
type InvalidAddressError struct {
	Address Address
}

func (e InvalidAddressError) Error() string {
	return fmt.Sprintf("address (%s) is the zero address", e.Address)
}

// TransferFailedError is returned when the donation transfer could not
// complete. It aborts the entire swap atomically.
type TransferFailedError struct {
	Token  string
	From   Address
	To     Address
	Amount string
	Err    error
}

func (e TransferFailedError) Error() string {
	return fmt.Sprintf("donation transfer of (%s%s) from (%s) to (%s) failed: %s", e.Amount, e.Token, e.From, e.To, e.Err)
}

func (e TransferFailedError) Unwrap() error {
	return e.Err
}

// PoolConfigNotFoundError is an internal repository error. The interceptor
// treats it as a fail-safe disable and never surfaces it to swap callers.
type PoolConfigNotFoundError struct {
	PoolID uint64
}

func (e PoolConfigNotFoundError) Error() string {
	return fmt.Sprintf("donation config for pool (%d) is not found", e.PoolID)
}

// GetStatusCode returbs status code given error
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		unauthorizedErr   UnauthorizedError
		invalidRateErr    InvalidRateError
		invalidAddressErr InvalidAddressError
	)

	switch {
	case errors.As(err, &unauthorizedErr):
		return http.StatusUnauthorized
	case errors.As(err, &invalidRateErr), errors.As(err, &invalidAddressErr), errors.Is(err, ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

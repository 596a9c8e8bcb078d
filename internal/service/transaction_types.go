package service

import (
	"errors"

	"github.com/hance08/atm/internal/store"
)

var (
	ErrAuthenticationFailed = store.ErrAuthenticationFailed
	ErrInsufficientBalance  = store.ErrInsufficientFunds
	ErrBalanceOverflow      = store.ErrBalanceOverflow
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrNonExhaustible       = errors.New("amount can't be dispensed with the available denominations")
)

// AmountError reports why an amount was rejected. It matches ErrInvalidAmount.
type AmountError struct {
	Amount int64
	Reason string
}

func (e *AmountError) Error() string {
	return e.Reason
}

func (e *AmountError) Unwrap() error {
	return ErrInvalidAmount
}

type WithdrawReceipt struct {
	AccountID string
	Amount    int64
	Breakdown Breakdown
	Balance   int64
}

type DepositReceipt struct {
	AccountID string
	Amount    int64
	Balance   int64
}

package store

import "errors"

var (
	ErrAccountExists        = errors.New("account already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrAuthenticationFailed = errors.New("invalid account number or PIN")
	ErrBalanceOverflow      = errors.New("amount would exceed the maximum balance")
	ErrInsufficientFunds    = errors.New("insufficient balance")
	ErrNegativeBalance      = errors.New("balance can't be negative")
)

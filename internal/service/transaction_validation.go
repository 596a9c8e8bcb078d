package service

import "fmt"

// ValidateAmount checks an amount shared by withdrawals and deposits:
// it must be positive and a multiple of the smallest denomination.
func (ts *TransactionService) ValidateAmount(amount int64) error {
	if amount <= 0 {
		return &AmountError{Amount: amount, Reason: "amount must be a positive integer"}
	}

	smallest := ts.denominations.Smallest()
	if amount%smallest != 0 {
		return &AmountError{Amount: amount, Reason: fmt.Sprintf("amount must be in multiples of %d", smallest)}
	}

	return nil
}

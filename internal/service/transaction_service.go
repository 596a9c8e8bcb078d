package service

import (
	"github.com/hance08/atm/internal/store"
	"github.com/pterm/pterm"
)

type TransactionService struct {
	repo          store.Repository
	denominations Denominations
	logger        *pterm.Logger
}

func NewTransactionService(repo store.Repository, denominations Denominations, logger *pterm.Logger) *TransactionService {
	return &TransactionService{repo: repo, denominations: denominations, logger: logger}
}

func (ts *TransactionService) Denominations() Denominations {
	return ts.denominations
}

func (ts *TransactionService) CheckBalance(accountID string) (int64, error) {
	acc, err := ts.repo.GetAccount(accountID)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// Withdraw validates the amount, works out the notes to dispense and
// debits the account. Nothing is debited when any step fails.
func (ts *TransactionService) Withdraw(accountID string, amount int64) (*WithdrawReceipt, error) {
	if err := ts.ValidateAmount(amount); err != nil {
		ts.reject("withdraw", accountID, amount, err)
		return nil, err
	}

	acc, err := ts.repo.GetAccount(accountID)
	if err != nil {
		return nil, err
	}
	if amount > acc.Balance {
		ts.reject("withdraw", accountID, amount, ErrInsufficientBalance)
		return nil, ErrInsufficientBalance
	}

	breakdown, err := ts.denominations.Breakdown(amount)
	if err != nil {
		ts.reject("withdraw", accountID, amount, err)
		return nil, err
	}

	balance, err := ts.repo.AdjustBalance(accountID, -amount)
	if err != nil {
		ts.reject("withdraw", accountID, amount, err)
		return nil, err
	}

	ts.logger.Info("withdrawal completed", ts.logger.Args(
		"account", accountID,
		"amount", amount,
		"balance", balance,
	))

	return &WithdrawReceipt{
		AccountID: accountID,
		Amount:    amount,
		Breakdown: breakdown,
		Balance:   balance,
	}, nil
}

func (ts *TransactionService) Deposit(accountID string, amount int64) (*DepositReceipt, error) {
	if err := ts.ValidateAmount(amount); err != nil {
		ts.reject("deposit", accountID, amount, err)
		return nil, err
	}

	balance, err := ts.repo.AdjustBalance(accountID, amount)
	if err != nil {
		ts.reject("deposit", accountID, amount, err)
		return nil, err
	}

	ts.logger.Info("deposit completed", ts.logger.Args(
		"account", accountID,
		"amount", amount,
		"balance", balance,
	))

	return &DepositReceipt{
		AccountID: accountID,
		Amount:    amount,
		Balance:   balance,
	}, nil
}

func (ts *TransactionService) reject(op, accountID string, amount int64, err error) {
	ts.logger.Debug(op+" rejected", ts.logger.Args(
		"account", accountID,
		"amount", amount,
		"reason", err.Error(),
	))
}

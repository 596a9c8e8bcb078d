package service

import (
	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/store"
	"github.com/pterm/pterm"
)

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Config      *config.Config
}

// NewService wires the account store and the transaction engine.
// A nil logger disables logging.
func NewService(repo store.Repository, cfg *config.Config, logger *pterm.Logger) (*Service, error) {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}

	denominations, err := NewDenominations(cfg.Denominations)
	if err != nil {
		return nil, err
	}

	return &Service{
		Account:     NewAccountService(repo, logger),
		Transaction: NewTransactionService(repo, denominations, logger),
		Config:      cfg,
	}, nil
}

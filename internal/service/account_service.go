package service

import (
	"errors"

	"github.com/hance08/atm/internal/store"
	"github.com/pterm/pterm"
)

type AccountService struct {
	repo   store.Repository
	logger *pterm.Logger
}

func NewAccountService(repo store.Repository, logger *pterm.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

// Authenticate returns the account whose identifier and PIN both match.
// Any number of attempts is allowed.
func (as *AccountService) Authenticate(id, pin string) (*store.Account, error) {
	acc, err := as.repo.Authenticate(id, pin)
	if err != nil {
		if errors.Is(err, store.ErrAuthenticationFailed) {
			as.logger.Info("authentication failed", as.logger.Args("account", id))
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	as.logger.Info("authenticated", as.logger.Args("account", id))
	return acc, nil
}

func (as *AccountService) GetAccount(id string) (*store.Account, error) {
	return as.repo.GetAccount(id)
}

func (as *AccountService) ListAccounts() ([]*store.Account, error) {
	return as.repo.ListAccounts()
}

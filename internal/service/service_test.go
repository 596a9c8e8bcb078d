package service

import (
	"testing"

	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, denominations ...int64) *Service {
	t.Helper()

	cfg := config.NewDefault()
	if len(denominations) > 0 {
		cfg.Denominations = denominations
	}

	repo := store.NewMemoryStore()
	seed := make([]store.Account, 0, len(cfg.Accounts))
	for _, acc := range cfg.Accounts {
		seed = append(seed, store.Account{ID: acc.ID, PIN: acc.PIN, Balance: acc.Balance})
	}
	require.NoError(t, repo.Seed(seed))

	svc, err := NewService(repo, cfg, nil)
	require.NoError(t, err)
	return svc
}

func balanceOf(t *testing.T, svc *Service, id string) int64 {
	t.Helper()
	balance, err := svc.Transaction.CheckBalance(id)
	require.NoError(t, err)
	return balance
}

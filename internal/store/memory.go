package store

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps accounts in a map for the lifetime of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]*Account)}
}

func (s *MemoryStore) Seed(accounts []Account) error {
	if err := validateSeed(accounts); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range accounts {
		if _, ok := s.accounts[acc.ID]; ok {
			return fmt.Errorf("%w: '%s'", ErrAccountExists, acc.ID)
		}
	}
	for _, acc := range accounts {
		cp := acc
		s.accounts[acc.ID] = &cp
	}
	return nil
}

func (s *MemoryStore) Authenticate(id, pin string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok || acc.PIN != pin {
		return nil, ErrAuthenticationFailed
	}
	cp := *acc
	return &cp, nil
}

func (s *MemoryStore) GetAccount(id string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrAccountNotFound, id)
	}
	cp := *acc
	return &cp, nil
}

func (s *MemoryStore) ListAccounts() ([]*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		cp := *acc
		accounts = append(accounts, &cp)
	}
	slices.SortFunc(accounts, func(a, b *Account) int {
		return strings.Compare(a.ID, b.ID)
	})
	return accounts, nil
}

func (s *MemoryStore) AdjustBalance(id string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok {
		return 0, fmt.Errorf("%w: '%s'", ErrAccountNotFound, id)
	}

	if delta > 0 && acc.Balance > math.MaxInt64-delta {
		return acc.Balance, ErrBalanceOverflow
	}
	next := acc.Balance + delta
	if next < 0 {
		return acc.Balance, ErrInsufficientFunds
	}
	acc.Balance = next
	return next, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

package store

import "fmt"

type Account struct {
	ID      string
	PIN     string
	Balance int64
}

func validateSeed(accounts []Account) error {
	seen := make(map[string]bool, len(accounts))
	for _, acc := range accounts {
		if acc.ID == "" {
			return fmt.Errorf("account identifier can't be empty")
		}
		if seen[acc.ID] {
			return fmt.Errorf("%w: '%s'", ErrAccountExists, acc.ID)
		}
		if acc.Balance < 0 {
			return fmt.Errorf("%w: account '%s' seeded with %d", ErrNegativeBalance, acc.ID, acc.Balance)
		}
		seen[acc.ID] = true
	}
	return nil
}

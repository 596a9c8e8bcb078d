package store

// Repository is the account store behind the transaction engine.
// All reads return snapshots; AdjustBalance is the only way to change a balance.
type Repository interface {
	Seed(accounts []Account) error
	Authenticate(id, pin string) (*Account, error)
	GetAccount(id string) (*Account, error)
	ListAccounts() ([]*Account, error)

	// AdjustBalance applies delta atomically and returns the new balance.
	// A change that would leave the balance below zero is refused with ErrInsufficientFunds.
	AdjustBalance(id string, delta int64) (int64, error)

	Close() error
}

package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

func (s *SQLiteStore) Seed(accounts []Account) error {
	if err := validateSeed(accounts); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction : %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.Prepare(`INSERT INTO accounts (id, pin, balance) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, acc := range accounts {
		if _, err := stmt.Exec(acc.ID, acc.PIN, acc.Balance); err != nil {
			var sqliteErr sqlite.Error
			if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
				return fmt.Errorf("%w: '%s'", ErrAccountExists, acc.ID)
			}
			return fmt.Errorf("failed to insert account '%s' : %w", acc.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Authenticate(id, pin string) (*Account, error) {
	acc := &Account{}
	err := s.db.QueryRow(
		"SELECT id, pin, balance FROM accounts WHERE id = ? AND pin = ?", id, pin,
	).Scan(&acc.ID, &acc.PIN, &acc.Balance)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("failed to query account '%s' : %w", id, err)
	}
	return acc, nil
}

func (s *SQLiteStore) GetAccount(id string) (*Account, error) {
	acc := &Account{}
	err := s.db.QueryRow(
		"SELECT id, pin, balance FROM accounts WHERE id = ?", id,
	).Scan(&acc.ID, &acc.PIN, &acc.Balance)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: '%s'", ErrAccountNotFound, id)
		}
		return nil, fmt.Errorf("failed to query account '%s' : %w", id, err)
	}
	return acc, nil
}

func (s *SQLiteStore) ListAccounts() ([]*Account, error) {
	rows, err := s.db.Query(`
		SELECT id, pin, balance
		FROM accounts
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []*Account
	for rows.Next() {
		acc := &Account{}
		if err := rows.Scan(&acc.ID, &acc.PIN, &acc.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

// AdjustBalance only updates the row when the result stays within
// 0..MaxInt64, so the check and the write happen in one statement.
// SQLite would otherwise turn an overflowing sum into a REAL.
func (s *SQLiteStore) AdjustBalance(id string, delta int64) (int64, error) {
	var balance int64
	err := s.db.QueryRow(`
		UPDATE accounts
		SET balance = balance + ?
		WHERE id = ?
		  AND (? <= 0 OR balance <= 9223372036854775807 - ?)
		  AND (? >= 0 OR balance + ? >= 0)
		RETURNING balance
	`, delta, id, delta, delta, delta, delta).Scan(&balance)

	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to update balance: %w", err)
	}

	acc, err := s.GetAccount(id)
	if err != nil {
		return 0, err
	}
	if delta > 0 {
		return acc.Balance, ErrBalanceOverflow
	}
	return acc.Balance, ErrInsufficientFunds
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/cashflow/internal/common"
	"github.com/Veraticus/cashflow/internal/model"
)

// SaveAccount creates or updates an account. Marking an account as default
// clears the flag on every other account.
func (s *SQLiteStorage) SaveAccount(ctx context.Context, account *model.Account) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAccount(account); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if account.IsDefault {
		if _, err := tx.ExecContext(ctx, `UPDATE accounts SET is_default = 0 WHERE id != ?`, account.ID); err != nil {
			return fmt.Errorf("failed to clear default account: %w", err)
		}
	}

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO accounts (id, name, balance, is_default, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			balance = excluded.balance,
			is_default = excluded.is_default
	`, account.ID, account.Name, account.Balance, account.IsDefault, account.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit account: %w", err)
	}
	return nil
}

// GetAccount retrieves an account by id.
func (s *SQLiteStorage) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var account model.Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, balance, is_default, created_at
		FROM accounts WHERE id = ?
	`, id).Scan(&account.ID, &account.Name, &account.Balance, &account.IsDefault, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetAccounts lists all accounts, the default one first.
func (s *SQLiteStorage) GetAccounts(ctx context.Context) ([]model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, balance, is_default, created_at
		FROM accounts
		ORDER BY is_default DESC, name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	accounts := []model.Account{}
	for rows.Next() {
		var account model.Account
		if err := rows.Scan(&account.ID, &account.Name, &account.Balance, &account.IsDefault, &account.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

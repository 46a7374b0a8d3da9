package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/cashflow/internal/common"
	"github.com/Veraticus/cashflow/internal/model"
	"github.com/Veraticus/cashflow/internal/service"
)

const transactionColumns = `id, hash, account_id, date, type, category, amount, description, is_recurring`

// SaveTransactions saves multiple transactions to the database and returns
// how many were new. Transactions whose id or hash already exists are skipped.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransactions(transactions); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted, err := s.saveTransactionsTx(ctx, tx, transactions)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transactions: %w", err)
	}
	return inserted, nil
}

func (s *SQLiteStorage) saveTransactionsTx(ctx context.Context, tx *sql.Tx, transactions []model.Transaction) (int, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (`+transactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for _, txn := range transactions {
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}

		result, err := stmt.ExecContext(ctx,
			txn.ID,
			txn.Hash,
			txn.AccountID,
			txn.Date.UTC(),
			string(txn.Type),
			txn.Category,
			txn.Amount,
			txn.Description,
			txn.IsRecurring,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}

		n, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read rows affected: %w", err)
		}
		inserted += int(n)
	}

	return inserted, nil
}

// GetTransactions lists transactions in ascending date order. Ties are
// ordered by id so repeated loads return the same sequence.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, query service.TransactionQuery) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if query.StartDate != nil && query.EndDate != nil && query.EndDate.Before(*query.StartDate) {
		return nil, fmt.Errorf("%w: end date %v is before start date %v", ErrInvalidDateRange, *query.EndDate, *query.StartDate)
	}
	if query.Limit < 0 || query.Offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must not be negative", ErrInvalidQuery)
	}

	var (
		where []string
		args  []any
	)
	if query.AccountID != "" {
		where = append(where, "account_id = ?")
		args = append(args, query.AccountID)
	}
	if query.StartDate != nil {
		where = append(where, "date >= ?")
		args = append(args, query.StartDate.UTC())
	}
	if query.EndDate != nil {
		where = append(where, "date <= ?")
		args = append(args, query.EndDate.UTC())
	}

	sqlQuery := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(where) > 0 {
		sqlQuery += " WHERE " + strings.Join(where, " AND ")
	}
	sqlQuery += " ORDER BY date ASC, id ASC"

	if query.Limit > 0 {
		sqlQuery += " LIMIT ? OFFSET ?"
		args = append(args, query.Limit, query.Offset)
	} else if query.Offset > 0 {
		sqlQuery += " LIMIT -1 OFFSET ?"
		args = append(args, query.Offset)
	}

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	transactions := []model.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)
	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	return txn, err
}

// GetTransactionCount returns the number of stored transactions.
func (s *SQLiteStorage) GetTransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// DeleteTransactions removes the transactions of one account, or of every
// account when accountID is empty, and returns how many were removed.
func (s *SQLiteStorage) DeleteTransactions(ctx context.Context, accountID string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var (
		result sql.Result
		err    error
	)
	if accountID == "" {
		result, err = s.db.ExecContext(ctx, `DELETE FROM transactions`)
	} else {
		result, err = s.db.ExecContext(ctx, `DELETE FROM transactions WHERE account_id = ?`, accountID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var (
		txn     model.Transaction
		txnType string
	)
	err := row.Scan(
		&txn.ID,
		&txn.Hash,
		&txn.AccountID,
		&txn.Date,
		&txnType,
		&txn.Category,
		&txn.Amount,
		&txn.Description,
		&txn.IsRecurring,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	txn.Type = model.TransactionType(txnType)
	return &txn, nil
}

// Package service defines the interfaces shared between the storage layer
// and its callers.
package service

import (
	"context"
	"io"
	"time"

	"github.com/Veraticus/cashflow/internal/model"
)

// TransactionQuery narrows a transaction listing at the storage level.
// Analytics filtering happens in memory; this only bounds what is loaded.
type TransactionQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	AccountID string
	Limit     int
	Offset    int
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) (int, error)
	GetTransactions(ctx context.Context, query TransactionQuery) ([]model.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	GetTransactionCount(ctx context.Context) (int, error)
	DeleteTransactions(ctx context.Context, accountID string) (int, error)

	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	GetAccounts(ctx context.Context) ([]model.Account, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// TransactionSource produces transactions from an external file format.
type TransactionSource interface {
	ParseFile(ctx context.Context, reader io.Reader) ([]model.Transaction, error)
}

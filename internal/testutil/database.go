// Package testutil provides test helpers for the cashflow project: an
// isolated in-memory database and a fluent builder for transaction data.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/cashflow/internal/model"
	"github.com/Veraticus/cashflow/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage  *storage.SQLiteStorage
	t        *testing.T
	Accounts []model.Account
}

// TestDBOptions provides configuration options for test database setup.
type TestDBOptions struct {
	CustomSetup    func(context.Context, *storage.SQLiteStorage) error
	Accounts       []model.Account
	Transactions   []model.Transaction
	SkipMigrations bool
}

// SetupTestDB creates a new migrated in-memory test database holding the
// given accounts. It is closed automatically when the test ends.
//
// Example:
//
//	db := testutil.SetupTestDB(t, testutil.Checking, testutil.Savings)
func SetupTestDB(t *testing.T, accounts ...model.Account) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{Accounts: accounts})
}

// SetupTestDBWithOptions creates a test database with custom options.
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()

	if !opts.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	for i := range opts.Accounts {
		if err := store.SaveAccount(ctx, &opts.Accounts[i]); err != nil {
			t.Fatalf("failed to seed account %q: %v", opts.Accounts[i].ID, err)
		}
	}

	if len(opts.Transactions) > 0 {
		if _, err := store.SaveTransactions(ctx, opts.Transactions); err != nil {
			t.Fatalf("failed to seed transactions: %v", err)
		}
	}

	if opts.CustomSetup != nil {
		if err := opts.CustomSetup(ctx, store); err != nil {
			t.Fatalf("custom setup failed: %v", err)
		}
	}

	return &TestDB{
		Storage:  store,
		Accounts: opts.Accounts,
		t:        t,
	}
}

// MustSave stores transactions or fails the test.
func (db *TestDB) MustSave(txns ...model.Transaction) {
	db.t.Helper()
	if _, err := db.Storage.SaveTransactions(context.Background(), txns); err != nil {
		db.t.Fatalf("failed to save transactions: %v", err)
	}
}

// Common accounts used across tests.
var (
	Checking = model.Account{ID: "checking", Name: "Checking", Balance: 2500, IsDefault: true}
	Savings  = model.Account{ID: "savings", Name: "Savings", Balance: 10000}
)

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_ReachesExpectedVersion(t *testing.T) {
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	ctx := context.Background()

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, version)

	require.NoError(t, store.Migrate(ctx))

	version, err = store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestMigrate_Indexes(t *testing.T) {
	store := createTestStorage(t)

	indexExists := func(name string) bool {
		var count int
		err := store.db.QueryRow(`
			SELECT COUNT(*) FROM sqlite_master
			WHERE type = 'index' AND name = ?
		`, name).Scan(&count)
		require.NoError(t, err)
		return count == 1
	}

	assert.True(t, indexExists("idx_transactions_date"))
	assert.True(t, indexExists("idx_transactions_account_date"))
	assert.False(t, indexExists("idx_transactions_account"), "superseded by the composite index")
}

func TestMigrate_Constraints(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.db.Exec(`
		INSERT INTO transactions (id, hash, account_id, date, type, amount)
		VALUES ('t1', 'h1', 'acc1', '2024-01-01 00:00:00+00:00', 'TRANSFER', 1)
	`)
	assert.Error(t, err, "unknown type must be rejected")

	_, err = store.db.Exec(`
		INSERT INTO transactions (id, hash, account_id, date, type, amount)
		VALUES ('t2', 'h2', 'acc1', '2024-01-01 00:00:00+00:00', 'EXPENSE', -5)
	`)
	assert.Error(t, err, "negative amount must be rejected")
}

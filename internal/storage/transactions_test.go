package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow/internal/common"
	"github.com/Veraticus/cashflow/internal/model"
	"github.com/Veraticus/cashflow/internal/service"
)

var testBase = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

func TestSQLiteStorage_SaveTransactions(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	txns := createTestTransactions(5, testBase)
	inserted, err := store.SaveTransactions(ctx, txns)
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)

	t.Run("duplicate ids are skipped", func(t *testing.T) {
		inserted, err := store.SaveTransactions(ctx, txns[:2])
		require.NoError(t, err)
		assert.Equal(t, 0, inserted)
	})

	t.Run("duplicate hash with new id is skipped", func(t *testing.T) {
		dup := txns[0]
		dup.ID = "txn-other"
		inserted, err := store.SaveTransactions(ctx, []model.Transaction{dup})
		require.NoError(t, err)
		assert.Equal(t, 0, inserted)
	})

	t.Run("missing hash is generated", func(t *testing.T) {
		txn := model.Transaction{
			ID:          "txn-nohash",
			AccountID:   "acc1",
			Date:        testBase,
			Type:        model.TypeIncome,
			Amount:      99,
			Description: "Bonus",
		}
		inserted, err := store.SaveTransactions(ctx, []model.Transaction{txn})
		require.NoError(t, err)
		assert.Equal(t, 1, inserted)

		got, err := store.GetTransactionByID(ctx, "txn-nohash")
		require.NoError(t, err)
		assert.Equal(t, txn.GenerateHash(), got.Hash)
	})

	t.Run("invalid batch is rejected whole", func(t *testing.T) {
		bad := createTestTransactions(2, testBase.AddDate(1, 0, 0))
		bad[1].Amount = -3
		_, err := store.SaveTransactions(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidTransaction)

		count, err := store.GetTransactionCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, count)
	})

	t.Run("nil context", func(t *testing.T) {
		//nolint:staticcheck // exercising nil context validation
		_, err := store.SaveTransactions(nil, txns)
		assert.ErrorIs(t, err, ErrNilContext)
	})
}

func TestSQLiteStorage_GetTransactionByID(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	original := createTestTransactions(1, testBase)[0]
	original.IsRecurring = true
	_, err := store.SaveTransactions(ctx, []model.Transaction{original})
	require.NoError(t, err)

	got, err := store.GetTransactionByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, original.AccountID, got.AccountID)
	assert.Equal(t, original.Type, got.Type)
	assert.Equal(t, original.Category, got.Category)
	assert.Equal(t, original.Description, got.Description)
	assert.InDelta(t, original.Amount, got.Amount, 1e-9)
	assert.True(t, got.IsRecurring)
	assert.True(t, original.Date.Equal(got.Date), "got %v want %v", got.Date, original.Date)

	_, err = store.GetTransactionByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = store.GetTransactionByID(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestSQLiteStorage_GetTransactions(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	txns := createTestTransactions(6, testBase)
	txns[5].AccountID = "acc2"
	txns[5].Hash = txns[5].GenerateHash()
	_, err := store.SaveTransactions(ctx, txns)
	require.NoError(t, err)

	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name    string
		query   service.TransactionQuery
		wantIDs []string
		wantErr error
	}{
		{
			name:    "all in date order",
			wantIDs: []string{"txn-001", "txn-002", "txn-003", "txn-004", "txn-005", "txn-006"},
		},
		{
			name:    "by account",
			query:   service.TransactionQuery{AccountID: "acc2"},
			wantIDs: []string{"txn-006"},
		},
		{
			name: "inclusive date range",
			query: service.TransactionQuery{
				StartDate: ptr(testBase.AddDate(0, 0, 1)),
				EndDate:   ptr(testBase.AddDate(0, 0, 3)),
			},
			wantIDs: []string{"txn-002", "txn-003", "txn-004"},
		},
		{
			name:    "limit and offset",
			query:   service.TransactionQuery{Limit: 2, Offset: 1},
			wantIDs: []string{"txn-002", "txn-003"},
		},
		{
			name:    "offset only",
			query:   service.TransactionQuery{Offset: 4},
			wantIDs: []string{"txn-005", "txn-006"},
		},
		{
			name:    "no matches is empty not nil",
			query:   service.TransactionQuery{AccountID: "nobody"},
			wantIDs: []string{},
		},
		{
			name: "inverted range",
			query: service.TransactionQuery{
				StartDate: ptr(testBase.AddDate(0, 0, 3)),
				EndDate:   ptr(testBase),
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "negative limit",
			query:   service.TransactionQuery{Limit: -1},
			wantErr: ErrInvalidQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.GetTransactions(ctx, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)

			ids := make([]string, len(got))
			for i, txn := range got {
				ids[i] = txn.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSQLiteStorage_GetTransactions_NonUTCDates(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	loc := time.FixedZone("UTC-5", -5*3600)
	txn := createTestTransactions(1, time.Date(2024, time.March, 1, 22, 0, 0, 0, loc))[0]
	_, err := store.SaveTransactions(ctx, []model.Transaction{txn})
	require.NoError(t, err)

	// 22:00 at UTC-5 is 03:00 UTC the next day.
	start := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	got, err := store.GetTransactions(ctx, service.TransactionQuery{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, txn.Date.Equal(got[0].Date))
}

func TestSQLiteStorage_DeleteTransactions(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	txns := createTestTransactions(4, testBase)
	txns[3].AccountID = "acc2"
	_, err := store.SaveTransactions(ctx, txns)
	require.NoError(t, err)

	removed, err := store.DeleteTransactions(ctx, "acc1")
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	removed, err = store.DeleteTransactions(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	count, err := store.GetTransactionCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

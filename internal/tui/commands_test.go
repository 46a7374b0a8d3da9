package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow/internal/testutil"
)

func TestLoadData(t *testing.T) {
	db := testutil.SetupTestDB(t, testutil.Checking)
	db.MustSave(testutil.NewTransactionBuilder(t, time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)).
		Income(100, "gift").
		DaysAgo(1).Expense(20, "food").
		Build()...)

	msg, ok := loadData(db.Storage)().(dataLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	assert.Len(t, msg.transactions, 2)
	assert.Equal(t, "txn-002", msg.transactions[0].ID, "oldest first")
	assert.Len(t, msg.accounts, 1)
}

func TestLoadData_NoLoader(t *testing.T) {
	msg, ok := loadData(nil)().(dataLoadedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, msg.err, errNoLoader)
}

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow/internal/model"
)

func TestRecentTransactions(t *testing.T) {
	same := day(2024, 6, 5, 12, 0)
	txns := []model.Transaction{
		expense("old", day(2024, 6, 1, 12, 0), 1, "a"),
		expense("tie-1", same, 1, "a"),
		expense("newest", day(2024, 6, 7, 8, 0), 1, "a"),
		expense("tie-2", same, 1, "a"),
		expense("mid", day(2024, 6, 3, 12, 0), 1, "a"),
		expense("tie-3", same, 1, "a"),
		expense("undated", time.Time{}, 1, "a"),
	}

	got, err := RecentTransactions(txns, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"newest", "tie-1", "tie-2", "tie-3", "mid"}, ids(got))

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Date.After(got[i-1].Date), "dates must not increase")
	}

	for i := 0; i < 10; i++ {
		again, err := RecentTransactions(txns, 5)
		require.NoError(t, err)
		assert.Equal(t, ids(got), ids(again))
	}
}

func TestRecentTransactions_Limits(t *testing.T) {
	txns := []model.Transaction{
		income("a", day(2024, 6, 1, 0, 0), 1),
		income("b", day(2024, 6, 2, 0, 0), 1),
	}

	got, err := RecentTransactions(txns, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(got))

	got, err = RecentTransactions(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = RecentTransactions(txns, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRecentTransactions_DoesNotReorderInput(t *testing.T) {
	txns := []model.Transaction{
		income("a", day(2024, 6, 1, 0, 0), 1),
		income("b", day(2024, 6, 2, 0, 0), 1),
	}

	_, err := RecentTransactions(txns, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(txns))
}

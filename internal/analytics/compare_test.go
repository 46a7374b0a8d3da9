package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow/internal/model"
)

func TestCompareNet_Scenario(t *testing.T) {
	txns := []model.Transaction{
		expense("food", day(2024, 6, 1, 12, 0), 100, "Food"),
		income("pay", day(2024, 6, 2, 9, 0), 500),
	}

	got, err := CompareNet(txns, 7, day(2024, 6, 7, 18, 0))
	require.NoError(t, err)

	assert.Equal(t, 400.0, got.CurrentNet)
	assert.Equal(t, 0.0, got.PreviousNet)
	assert.Equal(t, 0.0, got.PercentChange)
	assert.Equal(t, 2, got.Current.Count)
	assert.Equal(t, 0, got.Previous.Count)
}

func TestCompareNet_AdjacentWindows(t *testing.T) {
	now := day(2024, 6, 7, 12, 0)
	txns := []model.Transaction{
		income("current-first", day(2024, 6, 1, 0, 0), 300),
		income("previous-last", day(2024, 5, 31, 23, 59), 100),
		income("previous-first", day(2024, 5, 25, 0, 0), 100),
		income("too-old", day(2024, 5, 24, 23, 59), 5000),
		income("future", day(2024, 6, 8, 0, 0), 5000),
	}

	got, err := CompareNet(txns, 7, now)
	require.NoError(t, err)

	assert.Equal(t, 300.0, got.CurrentNet)
	assert.Equal(t, 200.0, got.PreviousNet)
	assert.Equal(t, 50.0, got.PercentChange)
	assert.Equal(t, 1, got.Current.Count)
	assert.Equal(t, 2, got.Previous.Count)
}

func TestCompareNet_NegativeBaseline(t *testing.T) {
	now := day(2024, 6, 2, 12, 0)
	txns := []model.Transaction{
		expense("prev", day(2024, 5, 31, 12, 0), 200, "rent"),
		income("cur", day(2024, 6, 1, 12, 0), 100),
	}

	got, err := CompareNet(txns, 2, now)
	require.NoError(t, err)

	assert.Equal(t, -200.0, got.PreviousNet)
	assert.Equal(t, 100.0, got.CurrentNet)
	assert.Equal(t, 150.0, got.PercentChange)
}

func TestCompareNet_InvalidWindow(t *testing.T) {
	_, err := CompareNet(nil, 0, day(2024, 6, 2, 12, 0))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPercentChange_ZeroBaseline(t *testing.T) {
	for _, current := range []float64{0, 1, -1, 400, -1e12, 1e12, math.MaxFloat64} {
		got := PercentChange(current, 0)
		assert.Equal(t, 0.0, got, "current=%v", current)
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{name: "doubling", current: 200, previous: 100, want: 100},
		{name: "halving", current: 50, previous: 100, want: -50},
		{name: "unchanged", current: 100, previous: 100, want: 0},
		{name: "loss shrinking", current: -50, previous: -100, want: 50},
		{name: "loss growing", current: -150, previous: -100, want: -50},
		{name: "profit to loss", current: -100, previous: 100, want: -200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentChange(tt.current, tt.previous)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
		})
	}
}

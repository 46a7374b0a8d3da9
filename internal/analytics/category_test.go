package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/cashflow/internal/model"
)

func TestCategoryBreakdown(t *testing.T) {
	txns := []model.Transaction{
		expense("food-1", day(2024, 6, 1, 12, 0), 100, "Food"),
		income("pay", day(2024, 6, 2, 9, 0), 500),
	}

	assert.Equal(t, map[string]float64{"Food": 100}, CategoryBreakdown(txns, time.June, 2024))
}

func TestCategoryBreakdown_Scoping(t *testing.T) {
	txns := []model.Transaction{
		expense("a", day(2024, 6, 1, 0, 0), 10.5, "food"),
		expense("b", day(2024, 6, 30, 23, 59), 4.5, "food"),
		expense("c", day(2024, 6, 12, 0, 0), 60, "travel"),
		expense("d", day(2024, 5, 31, 23, 59), 1000, "rent"),
		expense("e", day(2023, 6, 15, 0, 0), 1000, "rent"),
		expense("f", day(2024, 6, 3, 0, 0), 7, ""),
		income("g", day(2024, 6, 3, 0, 0), 2000),
		expense("h", day(2024, 6, 4, 0, 0), -5, "broken"),
	}

	got := CategoryBreakdown(txns, time.June, 2024)

	assert.Equal(t, map[string]float64{
		"food":             15,
		"travel":           60,
		UncategorizedLabel: 7,
	}, got)
	assert.NotContains(t, got, "rent", "categories without expenses in the month are omitted")
	assert.NotContains(t, got, "salary", "income never appears")
	assert.NotContains(t, got, "broken", "anomalies are skipped")
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	got := CategoryBreakdown(nil, time.January, 2024)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSortedCategories(t *testing.T) {
	got := SortedCategories(map[string]float64{
		"travel": 60,
		"food":   15,
		"books":  15,
		"rent":   900,
	})

	assert.Equal(t, []CategoryTotal{
		{Category: "rent", Amount: 900},
		{Category: "travel", Amount: 60},
		{Category: "books", Amount: 15},
		{Category: "food", Amount: 15},
	}, got)
}

package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/cashflow/internal/model"
)

// UncategorizedLabel is used for expenses without a category.
const UncategorizedLabel = "uncategorized"

// CategoryTotal is one slice of a category breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// CategoryBreakdown sums expenses per category for the given calendar month.
// Income and expenses dated outside the month are always excluded.
// Categories without a matching expense are absent from the result rather
// than present with zero, so callers must treat a missing key as "no slice".
// Dates are read in their own location.
func CategoryBreakdown(transactions []model.Transaction, month time.Month, year int) map[string]float64 {
	return categoryBreakdown(transactions, month, year, nil)
}

// categoryBreakdown reads dates in loc, or in their own location when loc is nil.
func categoryBreakdown(transactions []model.Transaction, month time.Month, year int, loc *time.Location) map[string]float64 {
	sums := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if txn.Type != model.TypeExpense || !usable(&txn) {
			continue
		}
		date := txn.Date
		if loc != nil {
			date = date.In(loc)
		}
		if date.Year() != year || date.Month() != month {
			continue
		}
		category := txn.Category
		if category == "" {
			category = UncategorizedLabel
		}
		sums[category] = sums[category].Add(decimal.NewFromFloat(txn.Amount))
	}

	breakdown := make(map[string]float64, len(sums))
	for category, sum := range sums {
		breakdown[category] = sum.InexactFloat64()
	}
	return breakdown
}

// SortedCategories orders a breakdown by amount descending, then name, so
// chart slices are stable between runs.
func SortedCategories(breakdown map[string]float64) []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(breakdown))
	for category, amount := range breakdown {
		totals = append(totals, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

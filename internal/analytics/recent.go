package analytics

import (
	"sort"

	"github.com/Veraticus/cashflow/internal/model"
)

// RecentTransactions returns at most n transactions, newest first.
// Transactions sharing a timestamp keep their input order, so identical
// input always yields identical output. Records without a date cannot be
// ranked and are left out.
func RecentTransactions(transactions []model.Transaction, n int) ([]model.Transaction, error) {
	if n <= 0 {
		return nil, invalidArgument("recent limit must be positive, got %d", n)
	}

	ranked := make([]model.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.Date.IsZero() {
			continue
		}
		ranked = append(ranked, txn)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Date.After(ranked[j].Date)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

package analytics

import (
	"math"
	"time"

	"github.com/Veraticus/cashflow/internal/model"
)

// PeriodSummary totals a filtered set of transactions.
type PeriodSummary struct {
	Totals
	Count int `json:"count"`
}

// Comparison contrasts the current window with the window just before it.
type Comparison struct {
	Current       PeriodSummary `json:"current"`
	Previous      PeriodSummary `json:"previous"`
	CurrentNet    float64       `json:"current_net"`
	PreviousNet   float64       `json:"previous_net"`
	PercentChange float64       `json:"percent_change"`
}

// Summarize totals every usable transaction in the slice.
func Summarize(transactions []model.Transaction) PeriodSummary {
	var acc accumulator
	for i := range transactions {
		acc.add(&transactions[i])
	}
	return PeriodSummary{Totals: acc.totals(), Count: acc.count}
}

// SummarizeWindow totals the transactions dated inside the windowDays-long
// window ending on now's calendar date.
func SummarizeWindow(transactions []model.Transaction, windowDays int, now time.Time) (PeriodSummary, error) {
	if windowDays <= 0 {
		return PeriodSummary{}, invalidArgument("window must be a positive number of days, got %d", windowDays)
	}
	return summarizeRange(transactions, window(now, windowDays), now.Location()), nil
}

func summarizeRange(transactions []model.Transaction, r dayRange, loc *time.Location) PeriodSummary {
	var acc accumulator
	for i := range transactions {
		txn := &transactions[i]
		if !usable(txn) || !r.contains(civilDay(txn.Date, loc)) {
			continue
		}
		acc.add(txn)
	}
	return PeriodSummary{Totals: acc.totals(), Count: acc.count}
}

// CompareNet compares the net of the current window, now-(windowDays-1)
// through now, against the windowDays days immediately before it. The two
// windows neither overlap nor leave a gap.
//
// PercentChange is (current - previous) / |previous| * 100. When the
// previous net is zero it is defined as 0 whatever the current net is.
func CompareNet(transactions []model.Transaction, windowDays int, now time.Time) (Comparison, error) {
	if windowDays <= 0 {
		return Comparison{}, invalidArgument("window must be a positive number of days, got %d", windowDays)
	}

	loc := now.Location()
	current := window(now, windowDays)
	cur := summarizeRange(transactions, current, loc)
	prev := summarizeRange(transactions, current.previous(), loc)

	return Comparison{
		Current:       cur,
		Previous:      prev,
		CurrentNet:    cur.Net,
		PreviousNet:   prev.Net,
		PercentChange: PercentChange(cur.Net, prev.Net),
	}, nil
}

// PercentChange returns the relative change from previous to current in
// percent, or 0 when previous is zero.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return safeDiv(current-previous, math.Abs(previous)) * 100
}

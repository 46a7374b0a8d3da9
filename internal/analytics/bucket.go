package analytics

import (
	"time"

	"github.com/Veraticus/cashflow/internal/model"
)

// LabelLayout formats bucket dates for chart axes, e.g. "Jun 01".
const LabelLayout = "Jan 02"

// DailyBucket holds the totals for one calendar day of a window.
type DailyBucket struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
	Totals
}

// BucketByDay partitions transactions into one bucket per calendar day,
// from now-(windowDays-1) through now inclusive, in ascending order. Days
// without transactions are present with zero totals, so the series always
// has exactly windowDays entries.
//
// Day membership compares calendar dates in now's location, never elapsed
// time, so daylight-saving shifts cannot move a transaction between days.
func BucketByDay(transactions []model.Transaction, windowDays int, now time.Time) ([]DailyBucket, error) {
	if windowDays <= 0 {
		return nil, invalidArgument("window must be a positive number of days, got %d", windowDays)
	}

	loc := now.Location()
	r := window(now, windowDays)

	days := make([][]model.Transaction, windowDays)
	for _, txn := range transactions {
		if !usable(&txn) {
			continue
		}
		day := civilDay(txn.Date, loc)
		if !r.contains(day) {
			continue
		}
		idx := int(day.Sub(r.first) / (24 * time.Hour))
		days[idx] = append(days[idx], txn)
	}

	buckets := make([]DailyBucket, windowDays)
	for i := range buckets {
		date := localMidnight(r.first.AddDate(0, 0, i), loc)
		buckets[i] = DailyBucket{
			Date:   date,
			Label:  date.Format(LabelLayout),
			Totals: AggregateDay(days[i]),
		}
	}
	return buckets, nil
}

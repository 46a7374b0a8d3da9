package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/Veraticus/cashflow/internal/model"
)

// Totals holds income, expense and net for a set of transactions.
type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// accumulator sums amounts in fixed point so many small values do not drift.
type accumulator struct {
	income  decimal.Decimal
	expense decimal.Decimal
	count   int
}

func (a *accumulator) add(txn *model.Transaction) {
	if !usable(txn) {
		return
	}
	amount := decimal.NewFromFloat(txn.Amount)
	switch txn.Type {
	case model.TypeIncome:
		a.income = a.income.Add(amount)
	case model.TypeExpense:
		a.expense = a.expense.Add(amount)
	}
	a.count++
}

func (a *accumulator) net() decimal.Decimal {
	return a.income.Sub(a.expense)
}

func (a *accumulator) totals() Totals {
	return Totals{
		Income:  a.income.InexactFloat64(),
		Expense: a.expense.InexactFloat64(),
		Net:     a.net().InexactFloat64(),
	}
}

// AggregateDay reduces one bucket's transactions to income, expense and net.
// Malformed transactions are skipped; an empty bucket yields all zeros.
func AggregateDay(transactions []model.Transaction) Totals {
	var acc accumulator
	for i := range transactions {
		acc.add(&transactions[i])
	}
	return acc.totals()
}

// SumBuckets totals each column of a daily series. Summation is exact, so
// Net equals Income minus Expense and matches the PeriodSummary net of the
// same window and criteria.
func SumBuckets(buckets []DailyBucket) Totals {
	var income, expense, net decimal.Decimal
	for _, b := range buckets {
		income = income.Add(decimal.NewFromFloat(b.Income))
		expense = expense.Add(decimal.NewFromFloat(b.Expense))
		net = net.Add(decimal.NewFromFloat(b.Net))
	}
	return Totals{
		Income:  income.InexactFloat64(),
		Expense: expense.InexactFloat64(),
		Net:     net.InexactFloat64(),
	}
}

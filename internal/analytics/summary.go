package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// CashFlow gives the relative bar lengths of income against expense, in
// percent. The larger side is always 100.
type CashFlow struct {
	IncomePct  float64 `json:"income_pct"`
	ExpensePct float64 `json:"expense_pct"`
}

// CashFlowBars scales income and expense against each other. Both bars are
// zero when there was no activity.
func CashFlowBars(t Totals) CashFlow {
	income := math.Abs(t.Income)
	expense := math.Abs(t.Expense)

	switch {
	case income == 0 && expense == 0:
		return CashFlow{}
	case income >= expense:
		return CashFlow{IncomePct: 100, ExpensePct: safeDiv(expense, income) * 100}
	default:
		return CashFlow{IncomePct: safeDiv(income, expense) * 100, ExpensePct: 100}
	}
}

// Budget reports spending against a monthly budget.
type Budget struct {
	Amount      float64 `json:"amount"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed float64 `json:"percent_used"`
	OverBudget  bool    `json:"over_budget"`
}

// BudgetProgress compares spent against amount. A zero budget reports 0%
// used.
func BudgetProgress(amount, spent float64) Budget {
	b := Budget{
		Amount:     amount,
		Spent:      spent,
		Remaining:  decimal.NewFromFloat(amount).Sub(decimal.NewFromFloat(spent)).InexactFloat64(),
		OverBudget: amount > 0 && spent > amount,
	}
	if amount > 0 {
		b.PercentUsed = safeDiv(spent, amount) * 100
	}
	return b
}

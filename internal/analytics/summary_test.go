package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/cashflow/internal/model"
)

func TestSummarize(t *testing.T) {
	d := day(2024, 6, 1, 0, 0)
	got := Summarize([]model.Transaction{
		income("a", d, 1000),
		expense("b", d, 250.5, "food"),
		expense("c", d, -1, "broken"),
	})

	assert.Equal(t, PeriodSummary{
		Totals: Totals{Income: 1000, Expense: 250.5, Net: 749.5},
		Count:  2,
	}, got)
}

func TestCashFlowBars(t *testing.T) {
	tests := []struct {
		name   string
		totals Totals
		want   CashFlow
	}{
		{name: "no activity", totals: Totals{}, want: CashFlow{}},
		{name: "income larger", totals: Totals{Income: 200, Expense: 50}, want: CashFlow{IncomePct: 100, ExpensePct: 25}},
		{name: "expense larger", totals: Totals{Income: 50, Expense: 200}, want: CashFlow{IncomePct: 25, ExpensePct: 100}},
		{name: "only expense", totals: Totals{Expense: 10}, want: CashFlow{IncomePct: 0, ExpensePct: 100}},
		{name: "equal", totals: Totals{Income: 10, Expense: 10}, want: CashFlow{IncomePct: 100, ExpensePct: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CashFlowBars(tt.totals))
		})
	}
}

func TestBudgetProgress(t *testing.T) {
	b := BudgetProgress(500, 125)
	assert.Equal(t, 25.0, b.PercentUsed)
	assert.Equal(t, 375.0, b.Remaining)
	assert.False(t, b.OverBudget)

	over := BudgetProgress(100, 150.1)
	assert.True(t, over.OverBudget)
	assert.Equal(t, -50.1, over.Remaining)

	none := BudgetProgress(0, 40)
	assert.Equal(t, 0.0, none.PercentUsed)
	assert.False(t, none.OverBudget)
}

package analytics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow/internal/model"
)

type anomalyRecorder struct {
	got []Anomaly
}

func (r *anomalyRecorder) ReportAnomalies(anomalies []Anomaly) {
	r.got = append(r.got, anomalies...)
}

func engineFixture() []model.Transaction {
	rent := expense("rent", day(2024, 6, 1, 9, 0), 1200, "housing")
	rent.IsRecurring = true

	groceries := expense("groceries", day(2024, 6, 5, 18, 30), 82.4, "food")
	groceries.Description = "Weekly groceries"

	coffee := expense("coffee", day(2024, 6, 6, 7, 45), 4.6, "food")
	coffee.AccountID = "acc-2"

	salary := income("salary", day(2024, 6, 3, 8, 0), 3000)
	salary.IsRecurring = true

	lastMonth := income("bonus", day(2024, 5, 28, 12, 0), 500)
	lastMonthRent := expense("may-rent", day(2024, 5, 26, 9, 0), 1200, "housing")

	broken := expense("broken", day(2024, 6, 6, 10, 0), -10, "food")
	undated := expense("undated", time.Time{}, 10, "food")

	return []model.Transaction{rent, groceries, coffee, salary, lastMonth, lastMonthRent, broken, undated}
}

func TestEngine_Dashboard(t *testing.T) {
	recorder := &anomalyRecorder{}
	e := NewEngine(
		WithClock(FixedClock(day(2024, 6, 7, 20, 0))),
		WithAnomalyReporter(recorder),
		WithRecentLimit(3),
	)

	d, err := e.Dashboard(engineFixture(), DashboardRequest{WindowDays: 7, MonthlyBudget: 2000})
	require.NoError(t, err)

	require.Len(t, d.Daily, 7)
	assert.Equal(t, "Jun 01", d.Daily[0].Label)
	assert.Equal(t, 7, d.WindowDays)
	assert.Equal(t, 2, d.Skipped)
	assert.Len(t, recorder.got, 2)

	assert.Equal(t, PeriodSummary{
		Totals: Totals{Income: 3000, Expense: 1287, Net: 1713},
		Count:  4,
	}, d.Window)
	assert.Equal(t, 6, d.Overall.Count)

	// Conservation: the daily series adds up to the window summary.
	assert.Equal(t, d.Window.Net, SumBuckets(d.Daily).Net)

	assert.Equal(t, 1713.0, d.Comparison.CurrentNet)
	assert.Equal(t, -700.0, d.Comparison.PreviousNet)
	assert.InDelta(t, (1713.0+700.0)/700.0*100, d.Comparison.PercentChange, 1e-9)

	assert.Equal(t, []CategoryTotal{
		{Category: "housing", Amount: 1200},
		{Category: "food", Amount: 87},
	}, d.Categories)

	assert.Equal(t, []string{"coffee", "groceries", "salary"}, ids(d.Recent))
	assert.Equal(t, 100.0, d.CashFlow.IncomePct)
	assert.InDelta(t, 42.9, d.CashFlow.ExpensePct, 1e-9)

	require.NotNil(t, d.Budget)
	assert.Equal(t, 1287.0, d.Budget.Spent)
	assert.False(t, d.Budget.OverBudget)
}

func TestEngine_DashboardWithCriteria(t *testing.T) {
	e := NewEngine(WithClock(FixedClock(day(2024, 6, 7, 20, 0))))

	d, err := e.Dashboard(engineFixture(), DashboardRequest{
		WindowDays: 30,
		Criteria:   Criteria{AccountID: "acc-2"},
	})
	require.NoError(t, err)

	assert.Len(t, d.Daily, 30)
	assert.Equal(t, []string{"coffee"}, ids(d.Recent))
	assert.Equal(t, []CategoryTotal{{Category: "food", Amount: 4.6}}, d.Categories)
	assert.Equal(t, -4.6, d.Window.Net)
	assert.Nil(t, d.Budget)
}

func TestEngine_InvalidRequests(t *testing.T) {
	e := NewEngine(WithClock(FixedClock(day(2024, 6, 7, 20, 0))), WithMaxWindowDays(90))

	_, err := e.Dashboard(nil, DashboardRequest{WindowDays: 0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.Dashboard(nil, DashboardRequest{WindowDays: 91})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.Dashboard(nil, DashboardRequest{WindowDays: 7, MonthlyBudget: -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.Daily(nil, Criteria{}, -3)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.Compare(nil, Criteria{}, 365)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.Categories(nil, Criteria{}, time.Month(13), 2024)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEngine_Views(t *testing.T) {
	e := NewEngine(WithClock(FixedClock(day(2024, 6, 7, 20, 0))))
	txns := engineFixture()

	daily, err := e.Daily(txns, Criteria{Type: model.TypeIncome}, 7)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, SumBuckets(daily).Income)
	assert.Equal(t, 0.0, SumBuckets(daily).Expense)

	may, err := e.Categories(txns, Criteria{}, time.May, 2024)
	require.NoError(t, err)
	assert.Equal(t, []CategoryTotal{{Category: "housing", Amount: 1200}}, may)

	current, err := e.Categories(txns, Criteria{}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, current, 2)

	cmp, err := e.Compare(txns, Criteria{Recurrence: RecurrenceOnly}, 7)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, cmp.CurrentNet)

	recent, err := e.Recent(txns, Criteria{}, 0)
	require.NoError(t, err)
	assert.Len(t, recent, DefaultRecentLimit)
}

func TestEngine_ConcurrentUse(t *testing.T) {
	e := NewEngine(WithClock(FixedClock(day(2024, 6, 7, 20, 0))))
	txns := engineFixture()

	want, err := e.Dashboard(txns, DashboardRequest{WindowDays: 30})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Dashboard(txns, DashboardRequest{WindowDays: 30})
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

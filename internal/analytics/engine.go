package analytics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/cashflow/internal/model"
)

// Defaults used by NewEngine.
const (
	DefaultWindowDays    = 30
	DefaultMaxWindowDays = 366
	DefaultRecentLimit   = 5
)

// WindowPresets are the window lengths offered by dashboards.
var WindowPresets = []int{7, 30, 90}

// ChartType selects how a daily series is drawn.
type ChartType string

// Chart types.
const (
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
)

// ParseChartType validates a chart type. Empty means line.
func ParseChartType(s string) (ChartType, error) {
	switch ChartType(strings.ToLower(strings.TrimSpace(s))) {
	case "", ChartLine:
		return ChartLine, nil
	case ChartBar:
		return ChartBar, nil
	default:
		return "", invalidArgument("unknown chart type %q", s)
	}
}

// Engine bundles the pipeline with its injected context: the clock, the
// anomaly reporter and the caller-side bounds. An Engine holds no mutable
// state and may be shared between goroutines.
type Engine struct {
	clock         Clock
	reporter      AnomalyReporter
	maxWindowDays int
	recentLimit   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the source of "today".
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithAnomalyReporter sets where skipped transactions are reported.
func WithAnomalyReporter(r AnomalyReporter) Option {
	return func(e *Engine) {
		e.reporter = r
	}
}

// WithMaxWindowDays bounds the window length accepted by the engine.
func WithMaxWindowDays(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxWindowDays = n
		}
	}
}

// WithRecentLimit sets how many transactions the recent list holds.
func WithRecentLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.recentLimit = n
		}
	}
}

// NewEngine creates an engine reading the system clock.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock:         SystemClock{},
		maxWindowDays: DefaultMaxWindowDays,
		recentLimit:   DefaultRecentLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the engine's notion of the current instant.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// DashboardRequest selects what a Dashboard covers.
type DashboardRequest struct {
	Criteria      Criteria
	WindowDays    int
	MonthlyBudget float64
}

// Dashboard is every derived view for one request, computed from a single
// snapshot of transactions.
type Dashboard struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Budget      *Budget             `json:"budget,omitempty"`
	Daily       []DailyBucket       `json:"daily"`
	Categories  []CategoryTotal     `json:"categories"`
	Recent      []model.Transaction `json:"recent"`
	Comparison  Comparison          `json:"comparison"`
	Window      PeriodSummary       `json:"window"`
	Overall     PeriodSummary       `json:"overall"`
	CashFlow    CashFlow            `json:"cash_flow"`
	WindowDays  int                 `json:"window_days"`
	Skipped     int                 `json:"skipped"`
}

// Dashboard builds all views. Malformed transactions are reported and
// skipped; only invalid requests fail.
func (e *Engine) Dashboard(transactions []model.Transaction, req DashboardRequest) (Dashboard, error) {
	if err := e.CheckWindow(req.WindowDays); err != nil {
		return Dashboard{}, err
	}
	if req.MonthlyBudget < 0 {
		return Dashboard{}, invalidArgument("monthly budget must not be negative, got %v", req.MonthlyBudget)
	}

	now := e.clock.Now()
	clean, skipped := e.prepare(transactions)
	filtered := Filter(clean, req.Criteria)

	daily, err := BucketByDay(filtered, req.WindowDays, now)
	if err != nil {
		return Dashboard{}, err
	}
	comparison, err := CompareNet(filtered, req.WindowDays, now)
	if err != nil {
		return Dashboard{}, err
	}
	recent, err := RecentTransactions(filtered, e.recentLimit)
	if err != nil {
		return Dashboard{}, err
	}
	breakdown := categoryBreakdown(filtered, now.Month(), now.Year(), now.Location())

	d := Dashboard{
		GeneratedAt: now,
		WindowDays:  req.WindowDays,
		Daily:       daily,
		Window:      comparison.Current,
		Overall:     Summarize(filtered),
		Comparison:  comparison,
		Categories:  SortedCategories(breakdown),
		Recent:      recent,
		CashFlow:    CashFlowBars(comparison.Current.Totals),
		Skipped:     skipped,
	}

	if req.MonthlyBudget > 0 {
		b := BudgetProgress(req.MonthlyBudget, sumBreakdown(breakdown))
		d.Budget = &b
	}

	return d, nil
}

// Daily returns the filtered daily series.
func (e *Engine) Daily(transactions []model.Transaction, c Criteria, windowDays int) ([]DailyBucket, error) {
	if err := e.CheckWindow(windowDays); err != nil {
		return nil, err
	}
	clean, _ := e.prepare(transactions)
	return BucketByDay(Filter(clean, c), windowDays, e.clock.Now())
}

// Categories returns the filtered expense breakdown for a calendar month.
// A zero month or year means the current one.
func (e *Engine) Categories(transactions []model.Transaction, c Criteria, month time.Month, year int) ([]CategoryTotal, error) {
	now := e.clock.Now()
	if month == 0 {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}
	if month < time.January || month > time.December {
		return nil, invalidArgument("month must be between 1 and 12, got %d", month)
	}
	clean, _ := e.prepare(transactions)
	return SortedCategories(categoryBreakdown(Filter(clean, c), month, year, now.Location())), nil
}

// Compare returns the filtered period-over-period comparison.
func (e *Engine) Compare(transactions []model.Transaction, c Criteria, windowDays int) (Comparison, error) {
	if err := e.CheckWindow(windowDays); err != nil {
		return Comparison{}, err
	}
	clean, _ := e.prepare(transactions)
	return CompareNet(Filter(clean, c), windowDays, e.clock.Now())
}

// Recent returns up to n filtered transactions, newest first. A
// non-positive n uses the engine's recent limit.
func (e *Engine) Recent(transactions []model.Transaction, c Criteria, n int) ([]model.Transaction, error) {
	if n <= 0 {
		n = e.recentLimit
	}
	clean, _ := e.prepare(transactions)
	return RecentTransactions(Filter(clean, c), n)
}

// CheckWindow reports whether the engine accepts a window of windowDays.
func (e *Engine) CheckWindow(windowDays int) error {
	if windowDays <= 0 {
		return invalidArgument("window must be a positive number of days, got %d", windowDays)
	}
	if windowDays > e.maxWindowDays {
		return invalidArgument("window of %d days exceeds the maximum of %d", windowDays, e.maxWindowDays)
	}
	return nil
}

// prepare drops malformed transactions and hands them to the reporter.
func (e *Engine) prepare(transactions []model.Transaction) ([]model.Transaction, int) {
	clean, anomalies := Sanitize(transactions)
	if len(anomalies) > 0 && e.reporter != nil {
		e.reporter.ReportAnomalies(anomalies)
	}
	return clean, len(anomalies)
}

func sumBreakdown(breakdown map[string]float64) float64 {
	total := decimal.Zero
	for _, amount := range breakdown {
		total = total.Add(decimal.NewFromFloat(amount))
	}
	return total.InexactFloat64()
}

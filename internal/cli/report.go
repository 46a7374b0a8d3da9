package cli

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/cashflow/internal/analytics"
	"github.com/Veraticus/cashflow/internal/model"
)

const barWidth = 30

// Renderer writes analytics results as terminal reports.
type Renderer struct {
	w        io.Writer
	err      error
	accounts map[string]string
	currency string
	chart    analytics.ChartType
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithCurrency sets the currency symbol printed before amounts.
func WithCurrency(symbol string) RenderOption {
	return func(r *Renderer) { r.currency = symbol }
}

// WithChart selects how daily series are drawn.
func WithChart(chart analytics.ChartType) RenderOption {
	return func(r *Renderer) { r.chart = chart }
}

// WithAccountNames maps account ids to display names.
func WithAccountNames(names map[string]string) RenderOption {
	return func(r *Renderer) { r.accounts = names }
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, opts ...RenderOption) *Renderer {
	r := &Renderer{
		w:        w,
		currency: "$",
		chart:    analytics.ChartLine,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// printf records the first write error and drops later output.
func (r *Renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) println(s string) {
	r.printf("%s\n", s)
}

func (r *Renderer) money(amount float64) string {
	return FormatMoney(r.currency, amount)
}

func (r *Renderer) signedMoney(amount float64) string {
	switch {
	case amount > 0:
		return IncomeStyle.Render("+" + r.money(amount))
	case amount < 0:
		return ExpenseStyle.Render(r.money(amount))
	default:
		return r.money(0)
	}
}

func (r *Renderer) accountName(id string) string {
	if name, ok := r.accounts[id]; ok && name != "" {
		return name
	}
	return id
}

func (r *Renderer) table(write func(w *tabwriter.Writer)) {
	if r.err != nil {
		return
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	write(tw)
	if err := tw.Flush(); err != nil && r.err == nil {
		r.err = fmt.Errorf("failed to flush table writer: %w", err)
	}
}

// Dashboard renders the full overview: summary cards, cash flow, budget,
// the daily chart, top categories and recent activity.
func (r *Renderer) Dashboard(d analytics.Dashboard) error {
	r.println(FormatTitle(fmt.Sprintf("Last %d days", d.WindowDays)))
	r.summary(d.Window, d.Comparison)
	r.println("")

	r.cashFlow(d.CashFlow, d.Window.Totals)
	if d.Budget != nil {
		r.budget(*d.Budget)
	}
	r.println("")

	r.daily(d.Daily)
	r.println("")

	r.println(BoldStyle.Render(d.GeneratedAt.Format("January 2006") + " expenses by category"))
	r.categories(d.Categories)
	r.println("")

	r.println(BoldStyle.Render("Recent transactions"))
	r.recent(d.Recent)

	if d.Skipped > 0 {
		r.println("")
		r.println(FormatWarning(fmt.Sprintf("%d malformed transactions were skipped", d.Skipped)))
	}
	return r.err
}

func (r *Renderer) summary(window analytics.PeriodSummary, c analytics.Comparison) {
	cards := fmt.Sprintf("%s %s   %s %s   %s %s   %s",
		SubtleStyle.Render("Income"), IncomeStyle.Render(r.money(window.Income)),
		SubtleStyle.Render("Expenses"), ExpenseStyle.Render(r.money(window.Expense)),
		SubtleStyle.Render("Net"), r.signedMoney(window.Net),
		FormatChange(c.PercentChange))
	r.println(cards)
	r.println(SubtleStyle.Render(fmt.Sprintf("%d transactions, previous period net %s",
		window.Count, r.money(c.PreviousNet))))
}

func (r *Renderer) cashFlow(cf analytics.CashFlow, totals analytics.Totals) {
	r.printf("%-9s %-*s %s\n", "Income", barWidth,
		IncomeStyle.Render(Bar(cf.IncomePct, 100, barWidth)), r.money(totals.Income))
	r.printf("%-9s %-*s %s\n", "Expenses", barWidth,
		ExpenseStyle.Render(Bar(cf.ExpensePct, 100, barWidth)), r.money(totals.Expense))
}

func (r *Renderer) budget(b analytics.Budget) {
	style := IncomeStyle
	if b.OverBudget {
		style = ExpenseStyle
	} else if b.PercentUsed >= 80 {
		style = WarningStyle
	}
	r.printf("%-9s %s %s of %s (%.1f%%), %s left\n", "Budget",
		style.Render(Bar(math.Min(b.PercentUsed, 100), 100, barWidth)),
		r.money(b.Spent), r.money(b.Amount), b.PercentUsed, r.money(b.Remaining))
}

// Daily renders a daily series with the renderer's chart type.
func (r *Renderer) Daily(buckets []analytics.DailyBucket) error {
	r.daily(buckets)
	return r.err
}

func (r *Renderer) daily(buckets []analytics.DailyBucket) {
	if len(buckets) == 0 {
		r.println(SubtleStyle.Render("No days in range"))
		return
	}
	if r.chart == analytics.ChartBar {
		r.dailyBars(buckets)
		return
	}
	r.dailyLines(buckets)
}

func (r *Renderer) dailyLines(buckets []analytics.DailyBucket) {
	income := make([]float64, len(buckets))
	expense := make([]float64, len(buckets))
	net := make([]float64, len(buckets))
	for i, b := range buckets {
		income[i] = b.Income
		expense[i] = b.Expense
		net[i] = b.Net
	}

	total := analytics.SumBuckets(buckets)
	r.printf("%-9s %s %s\n", "Income", IncomeStyle.Render(Sparkline(income)), r.money(total.Income))
	r.printf("%-9s %s %s\n", "Expenses", ExpenseStyle.Render(Sparkline(expense)), r.money(total.Expense))
	r.printf("%-9s %s %s\n", "Net", Sparkline(net), r.signedMoney(total.Net))

	first, last := buckets[0].Label, buckets[len(buckets)-1].Label
	gap := len(buckets) - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	r.printf("%-9s %s%s%s\n", "", SubtleStyle.Render(first), strings.Repeat(" ", gap), SubtleStyle.Render(last))
}

func (r *Renderer) dailyBars(buckets []analytics.DailyBucket) {
	var peak float64
	for _, b := range buckets {
		peak = math.Max(peak, math.Max(b.Income, b.Expense))
	}

	r.table(func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			TableHeaderStyle.Render("Day"),
			TableHeaderStyle.Render("Income"),
			TableHeaderStyle.Render("Expenses"),
			TableHeaderStyle.Render("Net"))
		for _, b := range buckets {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				b.Label,
				IncomeStyle.Render(Bar(b.Income, peak, barWidth/2)),
				ExpenseStyle.Render(Bar(b.Expense, peak, barWidth/2)),
				r.signedMoney(b.Net))
		}
	})
}

// Categories renders an expense breakdown for a calendar month.
func (r *Renderer) Categories(totals []analytics.CategoryTotal, month time.Month, year int) error {
	r.println(FormatTitle(fmt.Sprintf("%s %d expenses by category", month, year)))
	r.categories(totals)
	return r.err
}

func (r *Renderer) categories(totals []analytics.CategoryTotal) {
	if len(totals) == 0 {
		r.println(SubtleStyle.Render("No expenses"))
		return
	}

	var sum, peak float64
	for _, c := range totals {
		sum += c.Amount
		peak = math.Max(peak, c.Amount)
	}

	r.table(func(w *tabwriter.Writer) {
		for _, c := range totals {
			share := 0.0
			if sum > 0 {
				share = c.Amount / sum * 100
			}
			fmt.Fprintf(w, "%s\t%s\t%5.1f%%\t%s\n",
				c.Category,
				r.money(c.Amount),
				share,
				ExpenseStyle.Render(Bar(c.Amount, peak, barWidth)))
		}
	})
}

// Comparison renders the current window against the previous one.
func (r *Renderer) Comparison(c analytics.Comparison, windowDays int) error {
	r.println(FormatTitle(fmt.Sprintf("Last %d days vs the %d days before", windowDays, windowDays)))
	r.table(func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "\t%s\t%s\n", TableHeaderStyle.Render("Current"), TableHeaderStyle.Render("Previous"))
		fmt.Fprintf(w, "Income\t%s\t%s\n", r.money(c.Current.Income), r.money(c.Previous.Income))
		fmt.Fprintf(w, "Expenses\t%s\t%s\n", r.money(c.Current.Expense), r.money(c.Previous.Expense))
		fmt.Fprintf(w, "Net\t%s\t%s\n", r.signedMoney(c.CurrentNet), r.signedMoney(c.PreviousNet))
		fmt.Fprintf(w, "Transactions\t%d\t%d\n", c.Current.Count, c.Previous.Count)
	})
	r.println("")
	r.println("Net change " + FormatChange(c.PercentChange))
	return r.err
}

// Recent renders a list of transactions, newest first.
func (r *Renderer) Recent(txns []model.Transaction) error {
	r.println(FormatTitle("Recent transactions"))
	r.recent(txns)
	return r.err
}

func (r *Renderer) recent(txns []model.Transaction) {
	if len(txns) == 0 {
		r.println(SubtleStyle.Render("No transactions"))
		return
	}

	r.table(func(w *tabwriter.Writer) {
		for _, txn := range txns {
			recurring := ""
			if txn.IsRecurring {
				recurring = SubtleStyle.Render("↻")
			}
			category := txn.Category
			if category == "" {
				category = analytics.UncategorizedLabel
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				txn.Date.Format(analytics.DateLayout),
				txn.Description,
				SubtleStyle.Render(category),
				r.accountName(txn.AccountID),
				r.signedMoney(txn.Signed()),
				recurring)
		}
	})
}

// Accounts renders the account list.
func (r *Renderer) Accounts(accounts []model.Account) error {
	r.println(FormatTitle("Accounts"))
	if len(accounts) == 0 {
		r.println(SubtleStyle.Render("No accounts"))
		return r.err
	}
	r.table(func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n",
			TableHeaderStyle.Render("ID"),
			TableHeaderStyle.Render("Name"),
			TableHeaderStyle.Render("Balance"))
		for _, a := range accounts {
			def := ""
			if a.IsDefault {
				def = SubtleStyle.Render("default")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Name, r.money(a.Balance), def)
		}
	})
	return r.err
}

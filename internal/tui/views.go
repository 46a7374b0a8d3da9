package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/cashflow/internal/analytics"
	"github.com/Veraticus/cashflow/internal/cli"
)

const chartWidth = 30

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.spinner.View() + " Loading transactions..."
	}

	sections := []string{m.renderHeader()}

	if m.lastError != nil {
		sections = append(sections, m.theme.Error.Render("Error: "+m.lastError.Error()))
	}
	if m.searching {
		sections = append(sections, m.search.View())
	}

	if m.lastError == nil || len(m.dashboard.Daily) > 0 {
		sections = append(sections,
			m.renderSummary(),
			m.renderChart(),
		)
		if m.width >= 100 {
			sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
				m.theme.Panel.Render(m.renderCategories()),
				m.theme.Panel.Render(m.renderCashFlow()),
			))
		} else {
			sections = append(sections, m.renderCategories(), m.renderCashFlow())
		}
		sections = append(sections, m.recentTable.View())
	}

	sections = append(sections, m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) money(amount float64) string {
	return cli.FormatMoney(m.config.Currency, amount)
}

func (m Model) signedMoney(amount float64) string {
	if amount > 0 {
		return "+" + m.money(amount)
	}
	return m.money(amount)
}

func (m Model) renderHeader() string {
	var windows []string
	for i, days := range analytics.WindowPresets {
		label := fmt.Sprintf("%dd", days)
		if i == m.windowIdx {
			label = m.theme.Active.Render("[" + label + "]")
		} else {
			label = m.theme.Muted.Render(" " + label + " ")
		}
		windows = append(windows, label)
	}
	if m.windowIdx < 0 {
		windows = append(windows, m.theme.Active.Render(fmt.Sprintf("[%dd]", m.windowDays)))
	}

	filters := []string{"account: " + m.accountLabel()}
	if t := typeCycle[m.typeIdx]; t != "" {
		filters = append(filters, "type: "+strings.ToLower(string(t)))
	}
	if r := recurrenceCycle[m.recurIdx]; r != analytics.RecurrenceAll {
		filters = append(filters, string(r))
	}
	if s := m.search.Value(); s != "" && !m.searching {
		filters = append(filters, fmt.Sprintf("search: %q", s))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("cashflow")+" "+strings.Join(windows, " ")+"  "+m.theme.Muted.Render(string(m.chart)+" chart"),
		m.theme.Subtitle.Render(strings.Join(filters, " · ")),
	)
}

func (m Model) accountLabel() string {
	if m.accountIdx == 0 || m.accountIdx > len(m.accounts) {
		return "all"
	}
	return m.accounts[m.accountIdx-1].Name
}

func (m Model) renderSummary() string {
	w := m.dashboard.Window
	c := m.dashboard.Comparison

	card := func(label, value string) string {
		return m.theme.Panel.Render(m.theme.Muted.Render(label) + "\n" + value)
	}

	change := cli.FormatPercent(c.PercentChange)
	switch {
	case c.PercentChange > 0:
		change = m.theme.Income.Render(cli.UpIcon + " " + change)
	case c.PercentChange < 0:
		change = m.theme.Expense.Render(cli.DownIcon + " " + change)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Income", m.theme.Income.Render(m.money(w.Income))),
		card("Expenses", m.theme.Expense.Render(m.money(w.Expense))),
		card("Net", m.theme.Bold.Render(m.signedMoney(w.Net))),
		card("vs previous", change),
		card("Transactions", fmt.Sprintf("%d", w.Count)),
	)
}

func (m Model) renderChart() string {
	daily := m.dashboard.Daily
	if len(daily) == 0 {
		return m.theme.Muted.Render("No data")
	}

	var b strings.Builder
	if m.chart == analytics.ChartBar {
		var peak float64
		for _, d := range daily {
			peak = math.Max(peak, math.Max(d.Income, d.Expense))
		}
		// Show the most recent days that fit on screen.
		rows := m.height / 3
		if rows < 7 {
			rows = 7
		}
		start := 0
		if len(daily) > rows {
			start = len(daily) - rows
		}
		for _, d := range daily[start:] {
			fmt.Fprintf(&b, "%s %-*s %-*s %s\n",
				m.theme.Muted.Render(d.Label),
				chartWidth/2, m.theme.Income.Render(cli.Bar(d.Income, peak, chartWidth/2)),
				chartWidth/2, m.theme.Expense.Render(cli.Bar(d.Expense, peak, chartWidth/2)),
				m.signedMoney(d.Net))
		}
		return strings.TrimRight(b.String(), "\n")
	}

	income := make([]float64, len(daily))
	expense := make([]float64, len(daily))
	net := make([]float64, len(daily))
	for i, d := range daily {
		income[i], expense[i], net[i] = d.Income, d.Expense, d.Net
	}
	fmt.Fprintf(&b, "%s%s\n", m.theme.Label.Render("Income"), m.theme.Income.Render(cli.Sparkline(income)))
	fmt.Fprintf(&b, "%s%s\n", m.theme.Label.Render("Expenses"), m.theme.Expense.Render(cli.Sparkline(expense)))
	fmt.Fprintf(&b, "%s%s\n", m.theme.Label.Render("Net"), cli.Sparkline(net))
	fmt.Fprintf(&b, "%s%s … %s", m.theme.Label.Render(""),
		m.theme.Muted.Render(daily[0].Label), m.theme.Muted.Render(daily[len(daily)-1].Label))
	return b.String()
}

func (m Model) renderCategories() string {
	cats := m.dashboard.Categories
	title := m.theme.Bold.Render(m.dashboard.GeneratedAt.Format("January") + " by category")
	if len(cats) == 0 {
		return title + "\n" + m.theme.Muted.Render("No expenses")
	}

	limit := 6
	if len(cats) < limit {
		limit = len(cats)
	}
	peak := cats[0].Amount

	lines := []string{title}
	for _, c := range cats[:limit] {
		lines = append(lines, fmt.Sprintf("%-14s %-12s %s",
			c.Category,
			m.money(c.Amount),
			m.theme.Expense.Render(cli.Bar(c.Amount, peak, chartWidth/2))))
	}
	if rest := len(cats) - limit; rest > 0 {
		lines = append(lines, m.theme.Muted.Render(fmt.Sprintf("+%d more", rest)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCashFlow() string {
	cf := m.dashboard.CashFlow
	lines := []string{
		m.theme.Bold.Render("Cash flow"),
		m.theme.Label.Render("Income") + m.theme.Income.Render(cli.Bar(cf.IncomePct, 100, chartWidth/2)),
		m.theme.Label.Render("Expenses") + m.theme.Expense.Render(cli.Bar(cf.ExpensePct, 100, chartWidth/2)),
	}

	if b := m.dashboard.Budget; b != nil {
		style := m.theme.Income
		switch {
		case b.OverBudget:
			style = m.theme.Expense
		case b.PercentUsed >= 80:
			style = m.theme.Warning
		}
		lines = append(lines,
			"",
			m.theme.Bold.Render("Budget"),
			style.Render(cli.Bar(math.Min(b.PercentUsed, 100), 100, chartWidth/2))+
				fmt.Sprintf(" %.1f%%", b.PercentUsed),
			m.theme.Muted.Render(fmt.Sprintf("%s of %s, %s left",
				m.money(b.Spent), m.money(b.Amount), m.money(b.Remaining))),
		)
	}

	if m.dashboard.Skipped > 0 {
		lines = append(lines, "", m.theme.Warning.Render(fmt.Sprintf("%d malformed skipped", m.dashboard.Skipped)))
	}
	return strings.Join(lines, "\n")
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow/internal/analytics"
	"github.com/Veraticus/cashflow/internal/cli"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the full dashboard",
		Long: `Show every view at once: summary cards, the daily income and expense
series, this window against the previous one, spending by category for the
current month, cash flow, budget progress and recent activity.

Examples:
  # Last 30 days across all accounts
  cashflow dashboard

  # Last 7 days of one account as bars
  cashflow dashboard --days 7 --account checking --chart bar

  # Only recurring expenses, as JSON
  cashflow dashboard --type expense --recurrence recurring --format json`,
		Args: cobra.NoArgs,
		RunE: runDashboard,
	}

	addCriteriaFlags(cmd)
	cmd.Flags().IntP("days", "d", analytics.DefaultWindowDays, "Window length in days (presets: 7, 30, 90)")
	cmd.Flags().String("chart", string(analytics.ChartLine), "Chart type (line, bar)")
	cmd.Flags().Float64("budget", 0, "Monthly budget (overrides budget.monthly)")

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	chartFlag, _ := cmd.Flags().GetString("chart")
	chart, err := analytics.ParseChartType(chartFlag)
	if err != nil {
		return err
	}

	rc, err := openReport(cmd)
	if err != nil {
		return err
	}
	defer rc.Close()

	budget := rc.cfg.MonthlyBudget
	if cmd.Flags().Changed("budget") {
		budget, _ = cmd.Flags().GetFloat64("budget")
	}

	ctx := cmd.Context()
	txns, err := rc.transactions(ctx)
	if err != nil {
		return err
	}

	dashboard, err := rc.engine.Dashboard(txns, analytics.DashboardRequest{
		Criteria:      rc.criteria,
		WindowDays:    windowDays(cmd, rc.cfg),
		MonthlyBudget: budget,
	})
	if err != nil {
		return err
	}

	if rc.format == formatJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), dashboard)
	}
	return rc.renderer(ctx, cmd.OutOrStdout(), cli.WithChart(chart)).Dashboard(dashboard)
}

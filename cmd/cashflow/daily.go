package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow/internal/analytics"
	"github.com/Veraticus/cashflow/internal/cli"
)

func dailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show income and expense per day",
		Long: `Show one row per calendar day of the window, oldest first. Days without
transactions are included with zero totals.`,
		Args: cobra.NoArgs,
		RunE: runDaily,
	}

	addCriteriaFlags(cmd)
	cmd.Flags().IntP("days", "d", analytics.DefaultWindowDays, "Window length in days")
	cmd.Flags().String("chart", string(analytics.ChartLine), "Chart type (line, bar)")

	return cmd
}

func runDaily(cmd *cobra.Command, _ []string) error {
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

	ctx := cmd.Context()
	txns, err := rc.transactions(ctx)
	if err != nil {
		return err
	}

	buckets, err := rc.engine.Daily(txns, rc.criteria, windowDays(cmd, rc.cfg))
	if err != nil {
		return err
	}

	if rc.format == formatJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), buckets)
	}
	return rc.renderer(ctx, cmd.OutOrStdout(), cli.WithChart(chart)).Daily(buckets)
}

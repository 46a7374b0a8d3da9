package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show spending by category for a month",
		Long: `Show expense totals per category for one calendar month, largest first.
Income never counts toward a category. Defaults to the current month.

Examples:
  cashflow categories
  cashflow categories --month 2 --year 2024`,
		Args: cobra.NoArgs,
		RunE: runCategories,
	}

	addCriteriaFlags(cmd)
	cmd.Flags().IntP("month", "m", 0, "Month number 1-12 (default: current month)")
	cmd.Flags().IntP("year", "y", 0, "Year (default: current year)")

	return cmd
}

func runCategories(cmd *cobra.Command, _ []string) error {
	month, _ := cmd.Flags().GetInt("month")
	year, _ := cmd.Flags().GetInt("year")

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

	totals, err := rc.engine.Categories(txns, rc.criteria, time.Month(month), year)
	if err != nil {
		return err
	}

	if rc.format == formatJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), totals)
	}

	now := rc.engine.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return rc.renderer(ctx, cmd.OutOrStdout()).Categories(totals, time.Month(month), year)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow/internal/analytics"
	"github.com/Veraticus/cashflow/internal/cli"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare net cash flow with the previous period",
		Long: `Compare the net of the current window with the window of the same length
that ends the day before it starts. The change is 0% when the previous net
was zero.`,
		Args: cobra.NoArgs,
		RunE: runCompare,
	}

	addCriteriaFlags(cmd)
	cmd.Flags().IntP("days", "d", analytics.DefaultWindowDays, "Window length in days")

	return cmd
}

func runCompare(cmd *cobra.Command, _ []string) error {
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

	days := windowDays(cmd, rc.cfg)
	comparison, err := rc.engine.Compare(txns, rc.criteria, days)
	if err != nil {
		return err
	}

	if rc.format == formatJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), comparison)
	}
	return rc.renderer(ctx, cmd.OutOrStdout()).Comparison(comparison, days)
}

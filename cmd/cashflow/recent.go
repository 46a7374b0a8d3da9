package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow/internal/analytics"
	"github.com/Veraticus/cashflow/internal/cli"
)

func recentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent transactions",
		Args:  cobra.NoArgs,
		RunE:  runRecent,
	}

	addCriteriaFlags(cmd)
	cmd.Flags().IntP("limit", "n", 0, "Number of transactions (default: dashboard.recent_limit)")

	return cmd
}

func runRecent(cmd *cobra.Command, _ []string) error {
	rc, err := openReport(cmd)
	if err != nil {
		return err
	}
	defer rc.Close()

	limit := rc.cfg.RecentLimit
	if cmd.Flags().Changed("limit") {
		limit, _ = cmd.Flags().GetInt("limit")
		if limit <= 0 {
			return fmt.Errorf("%w: --limit must be positive, got %d", analytics.ErrInvalidArgument, limit)
		}
	}

	ctx := cmd.Context()
	txns, err := rc.transactions(ctx)
	if err != nil {
		return err
	}

	recent, err := rc.engine.Recent(txns, rc.criteria, limit)
	if err != nil {
		return err
	}

	if rc.format == formatJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), recent)
	}
	return rc.renderer(ctx, cmd.OutOrStdout()).Recent(recent)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow/internal/tui"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Long: `Open a full-screen dashboard. Switch windows with [ and ], cycle the
account, type and recurrence filters with a, t and r, search with /, and
press ? for every key.`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}

	cmd.Flags().StringP("account", "a", "", "Start scoped to this account")
	cmd.Flags().IntP("days", "d", 0, "Starting window in days (default: dashboard.window_days)")

	return cmd
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	engine := newEngine(cfg, loc)
	days := windowDays(cmd, cfg)
	if err := engine.CheckWindow(days); err != nil {
		return err
	}

	store, err := initStorage(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	account, _ := cmd.Flags().GetString("account")

	return tui.Run(cmd.Context(),
		tui.WithLoader(store),
		tui.WithEngine(engine),
		tui.WithCurrency(cfg.Currency),
		tui.WithWindow(days),
		tui.WithAccount(account),
		tui.WithBudget(cfg.MonthlyBudget),
	)
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow/internal/cli"
	"github.com/Veraticus/cashflow/internal/common"
	"github.com/Veraticus/cashflow/internal/model"
	"github.com/Veraticus/cashflow/internal/seed"
)

// seedAccounts are created when seeding an empty database.
var seedAccounts = []model.Account{
	{ID: "checking", Name: "Checking", Balance: 2500, IsDefault: true},
	{ID: "savings", Name: "Savings", Balance: 10000},
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with sample transactions",
		Long: `Generate realistic income and expense history so the dashboard has
something to show. The same --seed value always produces the same history.

Examples:
  # 90 days of history across the existing accounts
  cashflow seed

  # Replace everything with a reproducible year of history
  cashflow seed --days 365 --seed 42 --reset`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}

	cmd.Flags().IntP("days", "d", 90, "Days of history to generate")
	cmd.Flags().Int64("seed", 0, "Random seed (default: current time)")
	cmd.Flags().StringSlice("accounts", nil, "Account ids to spread transactions across (default: all accounts)")
	cmd.Flags().Bool("reset", false, "Delete existing transactions first")
	cmd.Flags().BoolP("yes", "y", false, "Do not ask before deleting")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	days, _ := cmd.Flags().GetInt("days")
	seedValue, _ := cmd.Flags().GetInt64("seed")
	accountIDs, _ := cmd.Flags().GetStringSlice("accounts")
	reset, _ := cmd.Flags().GetBool("reset")
	yes, _ := cmd.Flags().GetBool("yes")

	if !cmd.Flags().Changed("seed") {
		seedValue = time.Now().UnixNano()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx, cancel := handler.HandleInterrupts(cmd.Context(), "Seeding")
	defer cancel()

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	accounts, err := store.GetAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	if len(accounts) == 0 {
		for i := range seedAccounts {
			account := seedAccounts[i]
			if err := store.SaveAccount(ctx, &account); err != nil {
				return fmt.Errorf("failed to create account %s: %w", account.ID, err)
			}
			accounts = append(accounts, account)
		}
		slog.Info("Created sample accounts", "count", len(seedAccounts))
	}

	if len(accountIDs) == 0 {
		for _, a := range accounts {
			accountIDs = append(accountIDs, a.ID)
		}
	}

	txns, err := seed.Generate(time.Now().In(loc), days, accountIDs, rand.New(rand.NewSource(seedValue))) //nolint:gosec // Sample data
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if reset {
		if !yes {
			ok, err := cli.Confirm(ctx, cmd.InOrStdin(), out, "Delete all existing transactions?")
			if err != nil {
				if errors.Is(err, cli.ErrInputCancelled) {
					return ctx.Err()
				}
				return err
			}
			if !ok {
				fmt.Fprintln(out, cli.FormatInfo("Seeding canceled")) //nolint:forbidigo // User-facing output
				return nil
			}
		}
		deleted, err := store.DeleteTransactions(ctx, "")
		if err != nil {
			return fmt.Errorf("failed to reset transactions: %w", err)
		}
		common.LogInfo("Deleted existing transactions", common.Fields{"count": deleted})
	}

	batch := newImportBatch()
	batch.add(txns)
	saved, err := batch.save(ctx, store, out)
	if err != nil {
		return err
	}

	common.LogDebug("Seeded transactions", common.Fields{
		"seed":     seedValue,
		"days":     days,
		"accounts": accountIDs,
	})
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Seeded %d transactions over %d days (seed %d)", saved, days, seedValue))) //nolint:forbidigo // User-facing output
	return nil
}

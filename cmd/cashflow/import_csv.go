package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow/internal/analytics"
	"github.com/Veraticus/cashflow/internal/cli"
	"github.com/Veraticus/cashflow/internal/config"
	"github.com/Veraticus/cashflow/internal/csvimport"
	"github.com/Veraticus/cashflow/internal/model"
)

func importCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-csv [files...]",
		Short: "Import transactions from CSV files",
		Long: `Import transactions from CSV files with a header row.

Recognized columns: date, amount, type, category, description, account,
recurring and id. Without a type column a negative amount is an expense.
Rows without an account column go to --account.

Examples:
  cashflow import-csv --account checking ~/Downloads/export.csv
  cashflow import-csv --delimiter ';' statements/*.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportCSV,
	}

	cmd.Flags().StringP("account", "a", "", "Account for rows without an account column (default: the default account)")
	cmd.Flags().String("delimiter", ",", "Field delimiter")
	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	cmd.Flags().BoolP("verbose", "v", false, "Show every parsed transaction")

	return cmd
}

func runImportCSV(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	account, _ := cmd.Flags().GetString("account")
	delimiter, _ := cmd.Flags().GetString("delimiter")

	if utf8.RuneCountInString(delimiter) != 1 {
		return fmt.Errorf("%w: delimiter must be a single character, got %q", analytics.ErrInvalidArgument, delimiter)
	}
	comma, _ := utf8.DecodeRuneInString(delimiter)

	files, err := expandFiles(args)
	if err != nil {
		return err
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
	ctx, cancel := handler.HandleInterrupts(cmd.Context(), "Import")
	defer cancel()

	batch := newImportBatch()
	if account == "" {
		account, err = defaultAccountID(cmd, cfg, batch)
		if err != nil {
			return err
		}
	}

	parser := csvimport.NewParser(loc,
		csvimport.WithDefaultAccount(account),
		csvimport.WithDelimiter(comma))

	slog.Info("Importing CSV files", "file_count", len(files), "account", account, "dry_run", dryRun)

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		txns, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}

		added := batch.add(txns)
		slog.Info("Processed file",
			"file", filepath.Base(path),
			"transactions_found", len(txns),
			"added", added,
			"duplicates", len(txns)-added)
	}

	return finishImport(ctx, cmd.OutOrStdout(), cfg, batch, dryRun, verbose)
}

// defaultAccountID picks the stored default account, creating a "default"
// account on an empty database so the import has somewhere to go.
func defaultAccountID(cmd *cobra.Command, cfg *config.Config, batch *importBatch) (string, error) {
	store, err := initStorage(cmd.Context(), cfg)
	if err != nil {
		return "", err
	}
	defer func() { _ = store.Close() }()

	accounts, err := store.GetAccounts(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("failed to load accounts: %w", err)
	}
	if len(accounts) > 0 {
		// Ordered default first.
		return accounts[0].ID, nil
	}

	batch.addAccount(model.Account{ID: "default", Name: "Default", IsDefault: true})
	return "default", nil
}

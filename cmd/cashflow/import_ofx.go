package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow/internal/cli"
	"github.com/Veraticus/cashflow/internal/common"
	"github.com/Veraticus/cashflow/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your bank.
Accounts found in the statements are created or have their balance updated.
Importing the same file twice does not duplicate anything.

Examples:
  # Import single file
  cashflow import-ofx ~/Downloads/chase_jan_2024.qfx

  # Import all QFX files in a directory
  cashflow import-ofx ~/Downloads/*.qfx

  # Preview without saving
  cashflow import-ofx --dry-run ~/Downloads/Ally/*.ofx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	cmd.Flags().BoolP("verbose", "v", false, "Show every parsed transaction")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

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

	slog.Info("Importing OFX files", "file_count", len(files), "dry_run", dryRun)

	parser := ofx.NewParser(loc)
	batch := newImportBatch()
	failed := 0

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			common.LogError(err, "Failed to open file", common.Fields{"file": path})
			failed++
			continue
		}
		stmt, err := parser.Parse(ctx, f)
		_ = f.Close()
		if err != nil {
			common.LogError(err, "Failed to parse OFX file", common.Fields{"file": path})
			failed++
			continue
		}

		for _, a := range stmt.Accounts {
			batch.addAccount(a)
		}
		added := batch.add(stmt.Transactions)
		slog.Info("Processed file",
			"file", filepath.Base(path),
			"transactions_found", len(stmt.Transactions),
			"added", added,
			"duplicates", len(stmt.Transactions)-added)
	}

	if failed == len(files) {
		return fmt.Errorf("failed to read any of %d files", len(files))
	}

	return finishImport(ctx, cmd.OutOrStdout(), cfg, batch, dryRun, verbose)
}

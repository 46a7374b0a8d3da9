package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Veraticus/cashflow/internal/cli"
	"github.com/Veraticus/cashflow/internal/common"
	"github.com/Veraticus/cashflow/internal/config"
	"github.com/Veraticus/cashflow/internal/model"
	"github.com/Veraticus/cashflow/internal/service"
)

// importBatchSize bounds each save so progress and interrupts stay responsive.
const importBatchSize = 100

// expandFiles resolves glob patterns into file paths. A pattern without
// matches is kept when it names an existing file.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				matches = []string{pattern}
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	if len(files) == 0 {
		return nil, common.NewUserError("no files found to import", common.ErrNoTransactions)
	}
	return files, nil
}

// importBatch collects parsed transactions across files, dropping repeats
// of the same hash.
type importBatch struct {
	accounts     map[string]model.Account
	seen         map[string]bool
	transactions []model.Transaction
	duplicates   int
}

func newImportBatch() *importBatch {
	return &importBatch{
		accounts: make(map[string]model.Account),
		seen:     make(map[string]bool),
	}
}

func (b *importBatch) addAccount(a model.Account) {
	b.accounts[a.ID] = a
}

// add returns how many of txns were new to the batch.
func (b *importBatch) add(txns []model.Transaction) int {
	added := 0
	for _, txn := range txns {
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}
		if b.seen[txn.Hash] {
			b.duplicates++
			continue
		}
		b.seen[txn.Hash] = true
		b.transactions = append(b.transactions, txn)
		added++
	}
	return added
}

// save stores the batch. Statement accounts keep the name the user gave them
// and take the newer balance.
func (b *importBatch) save(ctx context.Context, store service.Storage, progress io.Writer) (int, error) {
	ids := make([]string, 0, len(b.accounts))
	for id := range b.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		account := b.accounts[id]
		existing, err := store.GetAccount(ctx, id)
		switch {
		case err == nil:
			existing.Balance = account.Balance
			account = *existing
		case !errors.Is(err, common.ErrNotFound):
			return 0, fmt.Errorf("failed to look up account %s: %w", id, err)
		}
		if err := store.SaveAccount(ctx, &account); err != nil {
			return 0, fmt.Errorf("failed to save account %s: %w", id, err)
		}
	}

	bar := cli.NewProgressBar(progress, len(b.transactions), "Saving transactions")
	saved := 0
	for start := 0; start < len(b.transactions); start += importBatchSize {
		if err := ctx.Err(); err != nil {
			return saved, err
		}
		end := min(start+importBatchSize, len(b.transactions))
		n, err := store.SaveTransactions(ctx, b.transactions[start:end])
		if err != nil {
			return saved, fmt.Errorf("failed to save transactions: %w", err)
		}
		saved += n
		_ = bar.Add(end - start)
	}
	_ = bar.Finish()

	return saved, nil
}

// describe prints what was parsed before anything is written.
func (b *importBatch) describe(w io.Writer, currency string, verbose bool) {
	if len(b.transactions) == 0 {
		return
	}

	var oldest, newest time.Time
	perAccount := make(map[string]int)
	var income, expense float64
	for i, txn := range b.transactions {
		if i == 0 || txn.Date.Before(oldest) {
			oldest = txn.Date
		}
		if i == 0 || txn.Date.After(newest) {
			newest = txn.Date
		}
		perAccount[txn.AccountID]++
		if txn.Type == model.TypeIncome {
			income += txn.Amount
		} else {
			expense += txn.Amount
		}
	}

	//nolint:forbidigo // User-facing output
	fmt.Fprintf(w, "\n📅 %s to %s\n💰 Income %s, expenses %s\n",
		oldest.Format("2006-01-02"),
		newest.Format("2006-01-02"),
		cli.IncomeStyle.Render(cli.FormatMoney(currency, income)),
		cli.ExpenseStyle.Render(cli.FormatMoney(currency, expense)))

	ids := make([]string, 0, len(perAccount))
	for id := range perAccount {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	fmt.Fprintln(w, "\n🏦 Accounts:") //nolint:forbidigo // User-facing output
	for _, id := range ids {
		name := id
		if a, ok := b.accounts[id]; ok && a.Name != "" {
			name = a.Name
		}
		fmt.Fprintf(w, "  - %s (%d transactions)\n", name, perAccount[id]) //nolint:forbidigo // User-facing output
	}

	if !verbose {
		return
	}
	fmt.Fprintln(w, "\n📝 Transactions:") //nolint:forbidigo // User-facing output
	for _, txn := range b.transactions {
		fmt.Fprintf(w, "  %s  %s  %-16s  %s\n", //nolint:forbidigo // User-facing output
			txn.Date.Format("2006-01-02"),
			cli.AmountStyle(txn.Type).Render(fmt.Sprintf("%10.2f", txn.Amount)),
			txn.Category,
			txn.Description)
	}
}

// finishImport saves or previews a batch and reports the outcome.
func finishImport(ctx context.Context, w io.Writer, cfg *config.Config, batch *importBatch, dryRun, verbose bool) error {
	if len(batch.transactions) == 0 {
		slog.Warn("No transactions found in any file")
		return nil
	}

	batch.describe(w, cfg.Currency, verbose)

	if dryRun {
		fmt.Fprintln(w, cli.FormatInfo("Dry run complete - no data saved")) //nolint:forbidigo // User-facing output
		return nil
	}

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	saved, err := batch.save(ctx, store, w)
	if err != nil {
		if saved > 0 {
			slog.Warn("Import stopped early", "saved", saved)
		}
		return err
	}

	skipped := len(batch.transactions) - saved + batch.duplicates
	fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("Imported %d new transactions (%d duplicates skipped)", saved, skipped))) //nolint:forbidigo // User-facing output
	return nil
}

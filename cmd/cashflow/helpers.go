package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/cashflow/internal/analytics"
	"github.com/Veraticus/cashflow/internal/cli"
	"github.com/Veraticus/cashflow/internal/common"
	"github.com/Veraticus/cashflow/internal/config"
	"github.com/Veraticus/cashflow/internal/model"
	"github.com/Veraticus/cashflow/internal/service"
	"github.com/Veraticus/cashflow/internal/storage"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// loadConfig decodes the merged file, environment and flag settings.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// initStorage opens the configured database and brings its schema up to date.
func initStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newEngine builds the analytics engine from configuration. Calendar days
// follow the configured timezone. Skipped records are logged rather than
// failing the command.
func newEngine(cfg *config.Config, loc *time.Location) *analytics.Engine {
	return analytics.NewEngine(
		analytics.WithClock(analytics.ZoneClock{Location: loc}),
		analytics.WithMaxWindowDays(cfg.MaxWindowDays),
		analytics.WithRecentLimit(cfg.RecentLimit),
		analytics.WithAnomalyReporter(analytics.AnomalyReporterFunc(logAnomalies)),
	)
}

func logAnomalies(anomalies []analytics.Anomaly) {
	for _, a := range anomalies {
		common.LogWarn("Skipping malformed transaction", common.Fields{
			"id":     a.TransactionID,
			"index":  a.Index,
			"reason": string(a.Reason),
		})
	}
}

// addCriteriaFlags registers the filter flags shared by the report commands.
func addCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("account", "a", "", "Only include this account (or 'all')")
	cmd.Flags().StringP("type", "t", "", "Only include INCOME or EXPENSE (or 'all')")
	cmd.Flags().StringP("category", "c", "", "Only include this category (or 'all')")
	cmd.Flags().String("from", "", "Earliest day to include (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Latest day to include (YYYY-MM-DD)")
	cmd.Flags().StringP("search", "s", "", "Case-insensitive description search")
	cmd.Flags().String("recurrence", "", "Filter by recurrence (all, recurring, non-recurring)")
	cmd.Flags().StringP("format", "f", formatTable, "Output format (table, json)")
}

// criteriaFromFlags validates the filter flags. Malformed values are
// rejected, never silently dropped.
func criteriaFromFlags(cmd *cobra.Command, loc *time.Location) (analytics.Criteria, error) {
	raw := analytics.RawCriteria{}
	raw.AccountID, _ = cmd.Flags().GetString("account")
	raw.Type, _ = cmd.Flags().GetString("type")
	raw.Category, _ = cmd.Flags().GetString("category")
	raw.DateFrom, _ = cmd.Flags().GetString("from")
	raw.DateTo, _ = cmd.Flags().GetString("to")
	raw.Search, _ = cmd.Flags().GetString("search")
	raw.Recurrence, _ = cmd.Flags().GetString("recurrence")

	return analytics.ParseCriteria(raw, loc)
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case formatTable, "":
		return formatTable, nil
	case formatJSON:
		return formatJSON, nil
	default:
		return "", fmt.Errorf("%w: format must be table or json, got %q", analytics.ErrInvalidArgument, format)
	}
}

// windowDays returns the --days flag, falling back to the configured default.
func windowDays(cmd *cobra.Command, cfg *config.Config) int {
	if cmd.Flags().Changed("days") {
		days, _ := cmd.Flags().GetInt("days")
		return days
	}
	return cfg.DefaultWindowDays
}

// reportContext is what every report command needs: settings, storage, the
// engine and the filtered input.
type reportContext struct {
	cfg      *config.Config
	store    *storage.SQLiteStorage
	engine   *analytics.Engine
	criteria analytics.Criteria
	format   string
}

// openReport validates the flags before touching the database so bad input
// fails fast.
func openReport(cmd *cobra.Command) (*reportContext, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	criteria, err := criteriaFromFlags(cmd, loc)
	if err != nil {
		return nil, err
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return nil, err
	}

	store, err := initStorage(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}

	return &reportContext{
		cfg:      cfg,
		store:    store,
		engine:   newEngine(cfg, loc),
		criteria: criteria,
		format:   format,
	}, nil
}

func (r *reportContext) Close() {
	if err := r.store.Close(); err != nil {
		slog.Warn("Failed to close database", "error", err)
	}
}

// transactions loads the snapshot the engine works on. Only the account
// narrows the query; every other predicate is applied by the engine.
func (r *reportContext) transactions(ctx context.Context) ([]model.Transaction, error) {
	txns, err := r.store.GetTransactions(ctx, service.TransactionQuery{
		AccountID: r.criteria.AccountID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	slog.Debug("Loaded transactions", "count", len(txns), "account", r.criteria.AccountID)
	return txns, nil
}

func (r *reportContext) renderer(ctx context.Context, w io.Writer, opts ...cli.RenderOption) *cli.Renderer {
	names := map[string]string{}
	accounts, err := r.store.GetAccounts(ctx)
	if err != nil {
		slog.Warn("Failed to load account names", "error", err)
	}
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	opts = append([]cli.RenderOption{
		cli.WithCurrency(r.cfg.Currency),
		cli.WithAccountNames(names),
	}, opts...)
	return cli.NewRenderer(w, opts...)
}

package tui

import (
	"context"

	"github.com/Veraticus/cashflow/internal/analytics"
	"github.com/Veraticus/cashflow/internal/model"
	"github.com/Veraticus/cashflow/internal/service"
	"github.com/Veraticus/cashflow/internal/tui/themes"
)

// Loader supplies the data the dashboard analyzes.
type Loader interface {
	GetTransactions(ctx context.Context, query service.TransactionQuery) ([]model.Transaction, error)
	GetAccounts(ctx context.Context) ([]model.Account, error)
}

// Config holds TUI configuration.
type Config struct {
	Theme         themes.Theme
	Loader        Loader
	Engine        *analytics.Engine
	Currency      string
	AccountID     string
	WindowDays    int
	MonthlyBudget float64
	Width         int
	Height        int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:      themes.Default,
		Currency:   "$",
		WindowDays: analytics.DefaultWindowDays,
		Width:      100,
		Height:     40,
	}
}

// WithLoader sets where transactions and accounts are read from.
func WithLoader(loader Loader) Option {
	return func(c *Config) {
		c.Loader = loader
	}
}

// WithEngine sets the analytics engine.
func WithEngine(engine *analytics.Engine) Option {
	return func(c *Config) {
		c.Engine = engine
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithCurrency sets the currency symbol.
func WithCurrency(symbol string) Option {
	return func(c *Config) {
		c.Currency = symbol
	}
}

// WithWindow sets the initial window length in days.
func WithWindow(days int) Option {
	return func(c *Config) {
		c.WindowDays = days
	}
}

// WithAccount preselects an account.
func WithAccount(id string) Option {
	return func(c *Config) {
		c.AccountID = id
	}
}

// WithBudget sets the monthly budget shown against spending.
func WithBudget(amount float64) Option {
	return func(c *Config) {
		c.MonthlyBudget = amount
	}
}

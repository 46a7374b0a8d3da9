// Package config loads settings from the config file, CASHFLOW_ environment
// variables and command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/cashflow/internal/common"
)

// Default configuration values.
const (
	DefaultDatabasePath  = "~/.local/share/cashflow/cashflow.db"
	DefaultWindowDays    = 30
	DefaultMaxWindowDays = 366
	DefaultRecentLimit   = 5
	DefaultCurrency      = "$"
)

// Config holds the settings for the dashboard commands.
type Config struct {
	DatabasePath      string
	Currency          string
	Timezone          string
	DefaultWindowDays int
	MaxWindowDays     int
	RecentLimit       int
	MonthlyBudget     float64
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("dashboard.window_days", DefaultWindowDays)
	v.SetDefault("dashboard.max_window_days", DefaultMaxWindowDays)
	v.SetDefault("dashboard.recent_limit", DefaultRecentLimit)
	v.SetDefault("dashboard.currency", DefaultCurrency)
	v.SetDefault("dashboard.timezone", "")
	v.SetDefault("budget.monthly", 0.0)
}

// Load reads the configuration from v, which may be backed by a config file,
// CASHFLOW_ environment variables and bound flags.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		DatabasePath:      ExpandPath(v.GetString("database.path")),
		DefaultWindowDays: v.GetInt("dashboard.window_days"),
		MaxWindowDays:     v.GetInt("dashboard.max_window_days"),
		RecentLimit:       v.GetInt("dashboard.recent_limit"),
		Currency:          v.GetString("dashboard.currency"),
		Timezone:          v.GetString("dashboard.timezone"),
		MonthlyBudget:     v.GetFloat64("budget.monthly"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: database.path", common.ErrMissingConfig)
	}
	if c.MaxWindowDays <= 0 {
		return fmt.Errorf("%w: dashboard.max_window_days must be positive, got %d", common.ErrInvalidConfig, c.MaxWindowDays)
	}
	if c.DefaultWindowDays <= 0 || c.DefaultWindowDays > c.MaxWindowDays {
		return fmt.Errorf("%w: dashboard.window_days must be between 1 and %d, got %d",
			common.ErrInvalidConfig, c.MaxWindowDays, c.DefaultWindowDays)
	}
	if c.RecentLimit <= 0 {
		return fmt.Errorf("%w: dashboard.recent_limit must be positive, got %d", common.ErrInvalidConfig, c.RecentLimit)
	}
	if c.MonthlyBudget < 0 {
		return fmt.Errorf("%w: budget.monthly must not be negative", common.ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the timezone calendar days are computed in. An empty
// timezone means the machine's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: dashboard.timezone %q: %v", common.ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow/internal/analytics"
	"github.com/Veraticus/cashflow/internal/model"
	"github.com/Veraticus/cashflow/internal/storage"
)

// commandEnv is an isolated config file and database for running commands.
type commandEnv struct {
	t          *testing.T
	configPath string
	dbPath     string
}

func newCommandEnv(t *testing.T) *commandEnv {
	t.Helper()
	dir := t.TempDir()

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dashboard:\n  timezone: UTC\n"), 0o600))

	viper.Reset()
	t.Cleanup(viper.Reset)

	return &commandEnv{
		t:          t,
		configPath: configPath,
		dbPath:     filepath.Join(dir, "cashflow.db"),
	}
}

// run executes the root command with args and returns what it printed.
func (e *commandEnv) run(stdin string, args ...string) (string, error) {
	e.t.Helper()
	viper.Reset()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{
		"--config", e.configPath,
		"--database", e.dbPath,
		"--log-level", "error",
	}, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// seedStore writes accounts and transactions straight to the database.
func (e *commandEnv) seedStore(accounts []model.Account, txns []model.Transaction) {
	e.t.Helper()
	ctx := context.Background()

	store, err := storage.NewSQLiteStorage(e.dbPath)
	require.NoError(e.t, err)
	defer func() { _ = store.Close() }()

	require.NoError(e.t, store.Migrate(ctx))
	for i := range accounts {
		require.NoError(e.t, store.SaveAccount(ctx, &accounts[i]))
	}
	if len(txns) > 0 {
		_, err = store.SaveTransactions(ctx, txns)
		require.NoError(e.t, err)
	}
}

// openStore opens the database for assertions.
func (e *commandEnv) openStore() *storage.SQLiteStorage {
	e.t.Helper()
	store, err := storage.NewSQLiteStorage(e.dbPath)
	require.NoError(e.t, err)
	e.t.Cleanup(func() { _ = store.Close() })
	return store
}

// daysAgo is noon UTC n calendar days before today.
func daysAgo(n int) time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d-n, 12, 0, 0, 0, time.UTC)
}

func cliTxn(id string, date time.Time, txnType model.TransactionType, amount float64, category, description string) model.Transaction {
	txn := model.Transaction{
		ID:          id,
		AccountID:   "checking",
		Date:        date,
		Type:        txnType,
		Category:    category,
		Amount:      amount,
		Description: description,
	}
	txn.Hash = txn.GenerateHash()
	return txn
}

func TestVersionCmd(t *testing.T) {
	env := newCommandEnv(t)

	out, err := env.run("", "version")
	require.NoError(t, err)
	assert.Equal(t, "cashflow dev\n", out)
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	env := newCommandEnv(t)

	_, err := env.run("", "version", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to setup logging")
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	root := newRootCmd()

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{
		"dashboard", "daily", "categories", "compare", "recent",
		"import-ofx", "import-csv", "accounts", "seed", "migrate", "tui", "version",
	} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestMigrateCmd(t *testing.T) {
	env := newCommandEnv(t)

	out, err := env.run("", "migrate", "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Current version: 0")

	out, err = env.run("", "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "completed successfully")

	out, err = env.run("", "migrate", "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Current version: 2")
	assert.NotContains(t, out, "pending")
}

func TestTUICmd_RejectsInvalidWindow(t *testing.T) {
	env := newCommandEnv(t)

	_, err := env.run("", "tui", "--days", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, analytics.ErrInvalidArgument)
}

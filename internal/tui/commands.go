package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/cashflow/internal/service"
)

const loadTimeout = 30 * time.Second

var errNoLoader = errors.New("no data source configured")

// loadData reads every transaction and account. Filtering happens in the
// engine so that changing filters never goes back to storage.
func loadData(loader Loader) tea.Cmd {
	return func() tea.Msg {
		if loader == nil {
			return dataLoadedMsg{err: errNoLoader}
		}

		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		transactions, err := loader.GetTransactions(ctx, service.TransactionQuery{})
		if err != nil {
			return dataLoadedMsg{err: fmt.Errorf("failed to load transactions: %w", err)}
		}

		accounts, err := loader.GetAccounts(ctx)
		if err != nil {
			return dataLoadedMsg{err: fmt.Errorf("failed to load accounts: %w", err)}
		}

		return dataLoadedMsg{
			transactions: transactions,
			accounts:     accounts,
		}
	}
}

package tui

import "github.com/Veraticus/cashflow/internal/model"

// dataLoadedMsg carries a fresh snapshot from the loader.
type dataLoadedMsg struct {
	err          error
	transactions []model.Transaction
	accounts     []model.Account
}

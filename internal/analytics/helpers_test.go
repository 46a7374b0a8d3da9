package analytics

import (
	"time"

	"github.com/Veraticus/cashflow/internal/model"
)

func day(year int, month time.Month, d, hour, minute int) time.Time {
	return time.Date(year, month, d, hour, minute, 0, 0, time.UTC)
}

func expense(id string, date time.Time, amount float64, category string) model.Transaction {
	return model.Transaction{
		ID:        id,
		AccountID: "acc-1",
		Date:      date,
		Type:      model.TypeExpense,
		Amount:    amount,
		Category:  category,
	}
}

func income(id string, date time.Time, amount float64) model.Transaction {
	return model.Transaction{
		ID:        id,
		AccountID: "acc-1",
		Date:      date,
		Type:      model.TypeIncome,
		Amount:    amount,
		Category:  "salary",
	}
}

func ids(txns []model.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.ID
	}
	return out
}

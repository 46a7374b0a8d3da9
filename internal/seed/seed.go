// Package seed generates realistic sample transaction history.
package seed

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/cashflow/internal/common"
	"github.com/Veraticus/cashflow/internal/model"
)

// MaxDays bounds how much history a single Generate call produces.
const MaxDays = 3660

// Category describes the amount range of one kind of seeded transaction.
type Category struct {
	Name      string
	Type      model.TransactionType
	Min       float64
	Max       float64
	Recurring bool
}

// Categories are the categories seeded history draws from.
var Categories = []Category{
	{Name: "salary", Type: model.TypeIncome, Min: 5000, Max: 8000, Recurring: true},
	{Name: "freelance", Type: model.TypeIncome, Min: 1000, Max: 3000},
	{Name: "investments", Type: model.TypeIncome, Min: 500, Max: 2000},
	{Name: "other-income", Type: model.TypeIncome, Min: 100, Max: 1000},
	{Name: "housing", Type: model.TypeExpense, Min: 1000, Max: 2000, Recurring: true},
	{Name: "transportation", Type: model.TypeExpense, Min: 100, Max: 500},
	{Name: "groceries", Type: model.TypeExpense, Min: 200, Max: 600},
	{Name: "utilities", Type: model.TypeExpense, Min: 100, Max: 300, Recurring: true},
	{Name: "entertainment", Type: model.TypeExpense, Min: 50, Max: 200},
	{Name: "food", Type: model.TypeExpense, Min: 50, Max: 150},
	{Name: "shopping", Type: model.TypeExpense, Min: 100, Max: 500},
	{Name: "healthcare", Type: model.TypeExpense, Min: 100, Max: 1000},
	{Name: "education", Type: model.TypeExpense, Min: 200, Max: 1000},
	{Name: "travel", Type: model.TypeExpense, Min: 500, Max: 2000},
}

// incomeShare is the probability that a generated transaction is income.
const incomeShare = 0.4

// ErrNoAccounts is returned when there is nothing to attach history to.
var ErrNoAccounts = errors.New("at least one account is required")

// Generate produces one to three transactions per calendar day for the
// days ending at now, spread across accounts. The same rng state yields
// the same history, ids included.
func Generate(now time.Time, days int, accounts []string, rng *rand.Rand) ([]model.Transaction, error) {
	if days <= 0 || days > MaxDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d, got %d", common.ErrInvalidArgument, MaxDays, days)
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", common.ErrInvalidArgument)
	}

	var income, expense []Category
	for _, c := range Categories {
		if c.Type == model.TypeIncome {
			income = append(income, c)
		} else {
			expense = append(expense, c)
		}
	}

	y, m, d := now.Date()
	loc := now.Location()

	txns := make([]model.Transaction, 0, days*2)
	for i := days - 1; i >= 0; i-- {
		count := 1 + rng.Intn(3)
		for j := 0; j < count; j++ {
			pool := expense
			if rng.Float64() < incomeShare {
				pool = income
			}
			category := pool[rng.Intn(len(pool))]

			// Midday keeps the generated day stable under any DST shift.
			date := time.Date(y, m, d-i, 9+rng.Intn(10), rng.Intn(60), 0, 0, loc)

			id, err := uuid.NewRandomFromReader(rng)
			if err != nil {
				return nil, fmt.Errorf("failed to generate id: %w", err)
			}

			txn := model.Transaction{
				ID:          id.String(),
				AccountID:   accounts[rng.Intn(len(accounts))],
				Date:        date,
				Type:        category.Type,
				Category:    category.Name,
				Amount:      randomAmount(rng, category.Min, category.Max),
				Description: describe(category),
				IsRecurring: category.Recurring,
			}
			txn.Hash = txn.GenerateHash()
			txns = append(txns, txn)
		}
	}

	return txns, nil
}

func randomAmount(rng *rand.Rand, lo, hi float64) float64 {
	return math.Round((lo+rng.Float64()*(hi-lo))*100) / 100
}

func describe(c Category) string {
	if c.Type == model.TypeIncome {
		return "Received " + c.Name
	}
	return "Paid for " + c.Name
}

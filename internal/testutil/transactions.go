package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/cashflow/internal/model"
)

// TransactionBuilder provides a fluent interface for constructing test
// transactions. Each added transaction gets a sequential id and inherits
// the builder's current account and date.
//
// Example:
//
//	txns := testutil.NewTransactionBuilder(t, now).
//		Income(5000, "salary").Recurring().
//		DaysAgo(2).Expense(42.10, "food").
//		Build()
type TransactionBuilder struct {
	t       *testing.T
	date    time.Time
	account string
	txns    []model.Transaction
}

// NewTransactionBuilder creates a builder whose transactions are dated at start.
func NewTransactionBuilder(t *testing.T, start time.Time) *TransactionBuilder {
	t.Helper()
	return &TransactionBuilder{
		t:       t,
		date:    start,
		account: Checking.ID,
	}
}

// On sets the date for subsequently added transactions.
func (b *TransactionBuilder) On(date time.Time) *TransactionBuilder {
	b.date = date
	return b
}

// DaysAgo moves the date for subsequent transactions back n calendar days.
func (b *TransactionBuilder) DaysAgo(n int) *TransactionBuilder {
	b.date = b.date.AddDate(0, 0, -n)
	return b
}

// Account sets the account for subsequently added transactions.
func (b *TransactionBuilder) Account(id string) *TransactionBuilder {
	b.account = id
	return b
}

// Income adds an income transaction.
func (b *TransactionBuilder) Income(amount float64, category string) *TransactionBuilder {
	return b.add(model.TypeIncome, amount, category)
}

// Expense adds an expense transaction.
func (b *TransactionBuilder) Expense(amount float64, category string) *TransactionBuilder {
	return b.add(model.TypeExpense, amount, category)
}

// Described sets the description of the last added transaction.
func (b *TransactionBuilder) Described(description string) *TransactionBuilder {
	b.last().Description = description
	return b
}

// Recurring marks the last added transaction as recurring.
func (b *TransactionBuilder) Recurring() *TransactionBuilder {
	b.last().IsRecurring = true
	return b
}

// Build returns the transactions with their dedup hashes filled in.
func (b *TransactionBuilder) Build() []model.Transaction {
	out := make([]model.Transaction, len(b.txns))
	for i, txn := range b.txns {
		txn.Hash = txn.GenerateHash()
		out[i] = txn
	}
	return out
}

func (b *TransactionBuilder) add(txnType model.TransactionType, amount float64, category string) *TransactionBuilder {
	n := len(b.txns) + 1
	b.txns = append(b.txns, model.Transaction{
		ID:          fmt.Sprintf("txn-%03d", n),
		AccountID:   b.account,
		Date:        b.date,
		Type:        txnType,
		Category:    category,
		Amount:      amount,
		Description: fmt.Sprintf("%s %d", category, n),
	})
	return b
}

func (b *TransactionBuilder) last() *model.Transaction {
	b.t.Helper()
	if len(b.txns) == 0 {
		b.t.Fatal("no transaction added yet")
	}
	return &b.txns[len(b.txns)-1]
}

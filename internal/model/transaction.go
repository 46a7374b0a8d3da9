// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	// TypeIncome marks money received.
	TypeIncome TransactionType = "INCOME"
	// TypeExpense marks money spent.
	TypeExpense TransactionType = "EXPENSE"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// ParseTransactionType converts a user-supplied string into a TransactionType.
// Matching is case-insensitive.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
	return t, nil
}

// Transaction represents a single financial transaction.
// Amount is always a non-negative magnitude; the sign is carried by Type.
type Transaction struct {
	Date        time.Time       `json:"date"`
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Hash        string          `json:"-"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	IsRecurring bool            `json:"is_recurring"`
}

// Signed returns the amount with the sign implied by the transaction type.
func (t *Transaction) Signed() float64 {
	if t.Type == TypeExpense {
		return -t.Amount
	}
	return t.Amount
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Type,
		t.Description,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

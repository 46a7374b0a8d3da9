package analytics

import (
	"strings"

	"github.com/Veraticus/cashflow/internal/model"
)

// Filter returns the transactions matching every active criterion. The input
// is never modified and the result is always a fresh, non-nil slice.
func Filter(transactions []model.Transaction, c Criteria) []model.Transaction {
	m := newMatcher(c)
	result := make([]model.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if m.match(&txn) {
			result = append(result, txn)
		}
	}
	return result
}

// matcher holds criteria normalized once per Filter call.
type matcher struct {
	c         Criteria
	accountID string
	txnType   model.TransactionType
	category  string
	search    string
}

func newMatcher(c Criteria) matcher {
	return matcher{
		c:         c,
		accountID: normalizeAll(c.AccountID),
		txnType:   model.TransactionType(normalizeAll(string(c.Type))),
		category:  normalizeAll(c.Category),
		search:    strings.ToLower(strings.TrimSpace(c.Search)),
	}
}

func (m matcher) match(txn *model.Transaction) bool {
	if m.accountID != "" && txn.AccountID != m.accountID {
		return false
	}
	if m.txnType != "" && txn.Type != m.txnType {
		return false
	}
	if m.category != "" && txn.Category != m.category {
		return false
	}
	if m.c.DateFrom != nil && txn.Date.Before(startOfDay(*m.c.DateFrom)) {
		return false
	}
	if m.c.DateTo != nil && txn.Date.After(endOfDay(*m.c.DateTo)) {
		return false
	}
	if m.search != "" && !strings.Contains(strings.ToLower(txn.Description), m.search) {
		return false
	}

	switch m.c.Recurrence {
	case RecurrenceOnly:
		return txn.IsRecurring
	case RecurrenceNonRecurring:
		return !txn.IsRecurring
	default:
		return true
	}
}

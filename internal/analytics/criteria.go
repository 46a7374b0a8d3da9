package analytics

import (
	"strings"
	"time"

	"github.com/Veraticus/cashflow/internal/model"
)

// AllValue is the sentinel meaning "no constraint" for account, type and
// category criteria.
const AllValue = "all"

// DateLayout is the layout accepted for date-from and date-to criteria.
const DateLayout = "2006-01-02"

// RecurrenceMode filters on Transaction.IsRecurring.
type RecurrenceMode string

// Recurrence modes.
const (
	RecurrenceAll          RecurrenceMode = "all"
	RecurrenceOnly         RecurrenceMode = "recurring"
	RecurrenceNonRecurring RecurrenceMode = "non-recurring"
)

// ParseRecurrenceMode validates a recurrence mode. Empty means all.
func ParseRecurrenceMode(s string) (RecurrenceMode, error) {
	switch RecurrenceMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", RecurrenceAll:
		return RecurrenceAll, nil
	case RecurrenceOnly:
		return RecurrenceOnly, nil
	case RecurrenceNonRecurring:
		return RecurrenceNonRecurring, nil
	default:
		return "", invalidArgument("unknown recurrence mode %q", s)
	}
}

// Criteria is the combined set of optional filter predicates. The zero value
// matches every transaction.
type Criteria struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	AccountID  string
	Category   string
	Search     string
	Type       model.TransactionType
	Recurrence RecurrenceMode
}

// RawCriteria carries criteria exactly as a caller received them, e.g. from
// flags or query parameters.
type RawCriteria struct {
	AccountID  string
	Type       string
	Category   string
	DateFrom   string
	DateTo     string
	Search     string
	Recurrence string
}

// ParseCriteria validates raw criteria. Dates are interpreted as calendar
// days in loc. Malformed dates and unknown enum values are rejected with
// ErrInvalidArgument rather than ignored.
func ParseCriteria(raw RawCriteria, loc *time.Location) (Criteria, error) {
	if loc == nil {
		loc = time.Local
	}

	c := Criteria{
		AccountID: normalizeAll(raw.AccountID),
		Category:  normalizeAll(raw.Category),
		Search:    strings.TrimSpace(raw.Search),
	}

	if t := normalizeAll(raw.Type); t != "" {
		parsed, err := model.ParseTransactionType(t)
		if err != nil {
			return Criteria{}, invalidArgument("%v", err)
		}
		c.Type = parsed
	}

	mode, err := ParseRecurrenceMode(raw.Recurrence)
	if err != nil {
		return Criteria{}, err
	}
	c.Recurrence = mode

	if c.DateFrom, err = parseDate(raw.DateFrom, "date-from", loc); err != nil {
		return Criteria{}, err
	}
	if c.DateTo, err = parseDate(raw.DateTo, "date-to", loc); err != nil {
		return Criteria{}, err
	}
	if c.DateFrom != nil && c.DateTo != nil && c.DateTo.Before(*c.DateFrom) {
		return Criteria{}, invalidArgument("date-to %s is before date-from %s",
			raw.DateTo, raw.DateFrom)
	}

	return c, nil
}

// IsEmpty reports whether c imposes no constraint at all.
func (c Criteria) IsEmpty() bool {
	return normalizeAll(c.AccountID) == "" &&
		normalizeAll(string(c.Type)) == "" &&
		normalizeAll(c.Category) == "" &&
		c.DateFrom == nil && c.DateTo == nil &&
		c.Search == "" &&
		(c.Recurrence == "" || c.Recurrence == RecurrenceAll)
}

func normalizeAll(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, AllValue) {
		return ""
	}
	return s
}

func parseDate(s, name string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return nil, invalidArgument("%s %q is not a %s date", name, s, DateLayout)
	}
	return &t, nil
}

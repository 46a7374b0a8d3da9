// Package csvimport reads transactions from delimited text exports.
//
// The first row is a header. Columns are matched by name, case-insensitively,
// so column order is free:
//
//	date         required; 2006-01-02, 01/02/2006 or RFC 3339
//	amount       required; negative amounts are expenses when no type column is present
//	type         INCOME or EXPENSE
//	category     free text
//	description  free text (alias: memo, payee, name)
//	account      account id (alias: account_id)
//	recurring    true/false, yes/no, 1/0
//	id           stable id; derived from the content hash when absent
package csvimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/cashflow/internal/model"
	"github.com/Veraticus/cashflow/internal/service"
)

var _ service.TransactionSource = (*Parser)(nil)

// Errors returned while reading CSV input.
var (
	ErrMissingColumn = errors.New("missing required column")
	ErrInvalidRow    = errors.New("invalid row")
)

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	time.RFC3339,
}

var columnAliases = map[string]string{
	"date":        "date",
	"posted":      "date",
	"amount":      "amount",
	"type":        "type",
	"category":    "category",
	"description": "description",
	"memo":        "description",
	"payee":       "description",
	"name":        "description",
	"account":     "account",
	"account_id":  "account",
	"recurring":   "recurring",
	"id":          "id",
}

// Parser reads CSV transaction exports.
type Parser struct {
	loc            *time.Location
	defaultAccount string
	comma          rune
}

// Option configures a Parser.
type Option func(*Parser)

// WithDefaultAccount sets the account assigned to rows without an account column.
func WithDefaultAccount(accountID string) Option {
	return func(p *Parser) { p.defaultAccount = accountID }
}

// WithDelimiter sets the field delimiter. The default is a comma.
func WithDelimiter(comma rune) Option {
	return func(p *Parser) { p.comma = comma }
}

// NewParser creates a CSV parser that reads dates in loc (time.Local when nil).
func NewParser(loc *time.Location, opts ...Option) *Parser {
	if loc == nil {
		loc = time.Local
	}
	p := &Parser{loc: loc, comma: ','}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads every row of the file. Any malformed row fails the whole
// import, naming the line it came from.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	r := csv.NewReader(reader)
	r.Comma = p.comma
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return []model.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns, err := p.mapColumns(header)
	if err != nil {
		return nil, err
	}

	txns := []model.Transaction{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		line, _ := r.FieldPos(0)
		txn, err := p.parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txns = append(txns, txn)
	}

	return txns, nil
}

func (p *Parser) mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if canonical, ok := columnAliases[key]; ok {
			if _, seen := columns[canonical]; !seen {
				columns[canonical] = i
			}
		}
	}

	for _, required := range []string{"date", "amount"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}
	if _, ok := columns["account"]; !ok && p.defaultAccount == "" {
		return nil, fmt.Errorf("%w: account (or set a default account)", ErrMissingColumn)
	}
	return columns, nil
}

func (p *Parser) parseRecord(record []string, columns map[string]int) (model.Transaction, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := p.parseDate(field("date"))
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := parseAmount(field("amount"))
	if err != nil {
		return model.Transaction{}, err
	}

	txnType := model.TypeIncome
	if raw := field("type"); raw != "" {
		txnType, err = model.ParseTransactionType(raw)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidRow, err)
		}
		if amount < 0 {
			return model.Transaction{}, fmt.Errorf("%w: negative amount %v with explicit type", ErrInvalidRow, amount)
		}
	} else if amount < 0 {
		txnType = model.TypeExpense
		amount = -amount
	}

	recurring, err := parseBool(field("recurring"))
	if err != nil {
		return model.Transaction{}, err
	}

	accountID := field("account")
	if accountID == "" {
		accountID = p.defaultAccount
	}

	txn := model.Transaction{
		ID:          field("id"),
		AccountID:   accountID,
		Date:        date,
		Type:        txnType,
		Category:    field("category"),
		Amount:      amount,
		Description: field("description"),
		IsRecurring: recurring,
	}
	txn.Hash = txn.GenerateHash()
	if txn.ID == "" {
		txn.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(txn.Hash)).String()
	}

	return txn, nil
}

func (p *Parser) parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidRow)
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, p.loc); err == nil {
			return t.In(p.loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", ErrInvalidRow, raw)
}

func parseAmount(raw string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	// Accounting notation: (12.50) is -12.50.
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + strings.Trim(cleaned, "()")
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: invalid amount %q", ErrInvalidRow, raw)
	}
	return amount, nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "", "0", "false", "no", "n":
		return false, nil
	case "1", "true", "yes", "y":
		return true, nil
	}
	return false, fmt.Errorf("%w: invalid recurring flag %q", ErrInvalidRow, raw)
}

// Package ofx imports bank and credit card statements in OFX/QFX format.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"

	"github.com/Veraticus/cashflow/internal/model"
	"github.com/Veraticus/cashflow/internal/service"
)

var _ service.TransactionSource = (*Parser)(nil)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)`)
	// An opening tag alone on its line with no closing bracket.
	unclosedTagRegex = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Bank descriptions often carry a processor prefix ahead of the payee.
var descriptionPrefixes = []string{
	"POS PURCHASE ",
	"PURCHASE AUTHORIZED ON ",
	"DEBIT CARD PURCHASE ",
	"ACH DEBIT ",
	"ACH CREDIT ",
	"CHECK CARD ",
	"VISA PURCHASE ",
	"MC PURCHASE ",
	"DEBIT PURCHASE ",
}

// Category hints by OFX transaction type. OFX carries no categories of its
// own so anything not listed here imports uncategorized.
var categoryHints = map[string]string{
	"INT":       "Interest",
	"DIV":       "Dividends",
	"FEE":       "Bank Fees",
	"SRVCHG":    "Bank Fees",
	"ATM":       "Cash & ATM",
	"DIRECTDEP": "Salary",
}

// Transaction types that denote scheduled, repeating activity.
var recurringTypes = map[string]bool{
	"DIRECTDEP":   true,
	"DIRECTDEBIT": true,
	"REPEATPMT":   true,
}

// Statement is the content of one OFX file.
type Statement struct {
	Accounts     []model.Account
	Transactions []model.Transaction
}

// Parser implements OFX/QFX file parsing.
type Parser struct {
	loc *time.Location
}

// NewParser creates a new OFX parser. Posted dates are converted to loc so
// that imported transactions land on the user's calendar day; a nil loc
// means time.Local.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{loc: loc}
}

// preprocessOFX fixes common formatting issues in OFX files.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return unclosedTagRegex.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX/QFX file and returns its transactions.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	stmt, err := p.Parse(ctx, reader)
	if err != nil {
		return nil, err
	}
	return stmt.Transactions, nil
}

// Parse parses an OFX/QFX file into the accounts it describes, with their
// ledger balances, and their transactions.
func (p *Parser) Parse(ctx context.Context, reader io.Reader) (*Statement, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	result := &Statement{
		Accounts:     []model.Account{},
		Transactions: []model.Transaction{},
	}

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok {
			continue
		}
		accountID := string(stmt.BankAcctFrom.AcctID)
		balance, _ := stmt.BalAmt.Float64()
		result.Accounts = append(result.Accounts, model.Account{
			ID:      accountID,
			Name:    accountName(stmt.BankAcctFrom.AcctType.String(), accountID),
			Balance: balance,
		})
		if stmt.BankTranList != nil {
			result.Transactions = append(result.Transactions, p.convertTransactions(stmt.BankTranList.Transactions, accountID)...)
		}
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok {
			continue
		}
		accountID := string(stmt.CCAcctFrom.AcctID)
		balance, _ := stmt.BalAmt.Float64()
		result.Accounts = append(result.Accounts, model.Account{
			ID:      accountID,
			Name:    accountName("CREDIT CARD", accountID),
			Balance: balance,
		})
		if stmt.BankTranList != nil {
			result.Transactions = append(result.Transactions, p.convertTransactions(stmt.BankTranList.Transactions, accountID)...)
		}
	}

	slog.Debug("Parsed OFX file",
		"accounts", len(result.Accounts),
		"transactions", len(result.Transactions))

	return result, nil
}

func (p *Parser) convertTransactions(ofxTxns []ofxgo.Transaction, accountID string) []model.Transaction {
	txns := make([]model.Transaction, 0, len(ofxTxns))
	for _, ofxTx := range ofxTxns {
		txns = append(txns, p.convertTransaction(ofxTx, accountID))
	}
	return txns
}

// convertTransaction maps a signed OFX amount onto the unsigned amount and
// income/expense type of the model. OFX debits are negative.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction, accountID string) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()
	trnType := ofxTx.TrnType.String()

	txnType := model.TypeIncome
	if amount < 0 {
		txnType = model.TypeExpense
		amount = -amount
	}

	txn := model.Transaction{
		ID:          string(ofxTx.FiTID),
		AccountID:   accountID,
		Date:        ofxTx.DtPosted.In(p.loc),
		Type:        txnType,
		Category:    categoryHints[trnType],
		Amount:      amount,
		Description: description(ofxTx),
		IsRecurring: recurringTypes[trnType],
	}
	txn.Hash = txn.GenerateHash()

	return txn
}

// description picks the most readable payee text the transaction carries.
func description(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if tx.Memo != "" && isGenericDescription(name) {
		name = strings.TrimSpace(string(tx.Memo))
	}

	upper := strings.ToUpper(name)
	for _, prefix := range descriptionPrefixes {
		if strings.HasPrefix(upper, prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Drop a leading "MM/DD " posting date.
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

func isGenericDescription(name string) bool {
	switch strings.ToUpper(name) {
	case "", "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		return true
	}
	return false
}

// accountName builds a display name like "Checking ...7890".
func accountName(kind, accountID string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		kind = "account"
	}
	kind = strings.ToUpper(kind[:1]) + kind[1:]

	suffix := accountID
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return kind + " ..." + suffix
}

package storage

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/cashflow/internal/model"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name      string
		str       string
		paramName string
		wantErr   bool
	}{
		{name: "valid string", str: "test", paramName: "param"},
		{name: "empty string", str: "", paramName: "param", wantErr: true},
		{name: "whitespace only", str: "   ", paramName: "param", wantErr: true},
		{name: "string with spaces", str: "  test  ", paramName: "param"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateString(tt.str, tt.paramName)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.paramName) {
				t.Errorf("validateString() error should contain param name %s, got %v", tt.paramName, err)
			}
		})
	}
}

func TestValidateTransaction(t *testing.T) {
	valid := func() *model.Transaction {
		return &model.Transaction{
			ID:        "txn123",
			AccountID: "acc1",
			Date:      time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC),
			Type:      model.TypeExpense,
			Amount:    12.34,
		}
	}

	tests := []struct {
		mutate  func(*model.Transaction)
		name    string
		errMsg  string
		wantErr bool
	}{
		{name: "valid transaction", mutate: func(*model.Transaction) {}},
		{name: "zero amount allowed", mutate: func(txn *model.Transaction) { txn.Amount = 0 }},
		{name: "missing ID", mutate: func(txn *model.Transaction) { txn.ID = "" }, wantErr: true, errMsg: "missing ID"},
		{name: "missing date", mutate: func(txn *model.Transaction) { txn.Date = time.Time{} }, wantErr: true, errMsg: "missing date"},
		{name: "missing account", mutate: func(txn *model.Transaction) { txn.AccountID = "" }, wantErr: true, errMsg: "missing account ID"},
		{name: "unknown type", mutate: func(txn *model.Transaction) { txn.Type = "TRANSFER" }, wantErr: true, errMsg: "unknown type"},
		{name: "negative amount", mutate: func(txn *model.Transaction) { txn.Amount = -1 }, wantErr: true, errMsg: "non-negative"},
		{name: "NaN amount", mutate: func(txn *model.Transaction) { txn.Amount = math.NaN() }, wantErr: true, errMsg: "non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid()
			tt.mutate(txn)
			err := validateTransaction(txn)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateTransaction() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrInvalidTransaction) {
				t.Errorf("validateTransaction() error = %v, want ErrInvalidTransaction", err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("validateTransaction() error = %v, want message containing %q", err, tt.errMsg)
			}
		})
	}

	if err := validateTransaction(nil); !errors.Is(err, ErrNilParameter) {
		t.Errorf("validateTransaction(nil) error = %v, want ErrNilParameter", err)
	}
}

func TestValidateTransactions(t *testing.T) {
	if err := validateTransactions(nil); !errors.Is(err, ErrNilParameter) {
		t.Errorf("nil slice: got %v", err)
	}
	if err := validateTransactions([]model.Transaction{}); !errors.Is(err, ErrEmptySlice) {
		t.Errorf("empty slice: got %v", err)
	}

	txns := []model.Transaction{
		{ID: "a", AccountID: "acc1", Date: time.Now(), Type: model.TypeIncome, Amount: 1},
		{ID: "b", AccountID: "acc1", Date: time.Now(), Type: model.TypeIncome, Amount: -1},
	}
	err := validateTransactions(txns)
	if err == nil || !strings.Contains(err.Error(), "index 1") {
		t.Errorf("expected error naming index 1, got %v", err)
	}
}

func TestValidateAccount(t *testing.T) {
	tests := []struct {
		account *model.Account
		name    string
		wantErr bool
	}{
		{name: "valid", account: &model.Account{ID: "acc1", Name: "Checking"}},
		{name: "nil", account: nil, wantErr: true},
		{name: "missing id", account: &model.Account{Name: "Checking"}, wantErr: true},
		{name: "blank name", account: &model.Account{ID: "acc1", Name: " "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAccount(tt.account)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAccount() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/cashflow/internal/model"
)

func TestAmountStyle(t *testing.T) {
	assert.Equal(t, IncomeColor, AmountStyle(model.TypeIncome).GetForeground())
	assert.Equal(t, ExpenseColor, AmountStyle(model.TypeExpense).GetForeground())
}

func TestFormatMessages(t *testing.T) {
	assert.Contains(t, FormatSuccess("saved"), "saved")
	assert.Contains(t, FormatError("failed"), ErrorIcon)
	assert.Contains(t, FormatTitle("Recent"), "Recent")
	assert.Contains(t, FormatPrompt("Continue?"), "Continue?")
}

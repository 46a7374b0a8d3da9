// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/cashflow/internal/model"
)

// Palette.
var (
	PrimaryColor = lipgloss.Color("#7D56F4")
	IncomeColor  = lipgloss.Color("#4ECDC4") // Teal
	ExpenseColor = lipgloss.Color("#FF6B6B") // Red
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	InfoColor    = lipgloss.Color("#95E1D3") // Light teal
	SubtleColor  = lipgloss.Color("#666666") // Gray
	HeaderColor  = lipgloss.Color("86")
)

var (
	// TitleStyle is used for report section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// IncomeStyle colors money coming in, and success messages.
	IncomeStyle = lipgloss.NewStyle().Foreground(IncomeColor)

	// ExpenseStyle colors money going out, and errors.
	ExpenseStyle = lipgloss.NewStyle().Foreground(ExpenseColor)

	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)
	BoldStyle    = lipgloss.NewStyle().Bold(true)

	// TableHeaderStyle is used for column headers in tabular reports.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(HeaderColor)

	// PromptStyle is used for yes/no questions.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	ChartIcon   = "📊"
	UpIcon      = "▲"
	DownIcon    = "▼"
)

// AmountStyle returns the color for an amount of the given type.
func AmountStyle(t model.TransactionType) lipgloss.Style {
	if t == model.TypeIncome {
		return IncomeStyle
	}
	return ExpenseStyle
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return IncomeStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ExpenseStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a report title.
func FormatTitle(title string) string {
	return TitleStyle.Render(ChartIcon + " " + title)
}

// FormatPrompt formats a question put to the user.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}

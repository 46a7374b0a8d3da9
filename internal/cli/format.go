package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with a currency symbol, two decimals and
// thousands separators, e.g. -$1,234.50.
func FormatMoney(symbol string, amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + symbol + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercent renders a signed percentage with one decimal, e.g. +12.5%.
func FormatPercent(pct float64) string {
	if math.Abs(pct) < 0.05 {
		return "0.0%"
	}
	return fmt.Sprintf("%+.1f%%", pct)
}

// FormatChange renders a percentage with a direction arrow, styled green
// for increases and red for decreases.
func FormatChange(pct float64) string {
	text := FormatPercent(pct)
	switch {
	case text == "0.0%":
		return SubtleStyle.Render(text)
	case pct > 0:
		return IncomeStyle.Render(UpIcon + " " + text)
	default:
		return ExpenseStyle.Render(DownIcon + " " + text)
	}
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

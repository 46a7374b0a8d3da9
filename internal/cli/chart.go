package cli

import (
	"math"
	"strings"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws values as a single line of block characters scaled
// between the smallest and largest value.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	var b strings.Builder
	top := float64(len(sparkLevels) - 1)
	for _, v := range values {
		level := 0
		if hi > lo {
			level = int(math.Round((v - lo) / (hi - lo) * top))
		}
		b.WriteRune(sparkLevels[level])
	}
	return b.String()
}

// Bar draws a horizontal bar whose length is value's share of limit,
// scaled to width cells. Non-positive values draw nothing.
func Bar(value, limit float64, width int) string {
	if value <= 0 || limit <= 0 || width <= 0 {
		return ""
	}
	n := int(math.Round(value / limit * float64(width)))
	if n > width {
		n = width
	}
	if n == 0 {
		// Any activity stays visible.
		n = 1
	}
	return strings.Repeat("█", n)
}

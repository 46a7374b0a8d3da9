package analytics

import (
	"fmt"
	"math"
)

// safeDiv divides num by den. A zero denominator here means a caller forgot
// a guard: debug builds panic, release builds degrade to 0 so no NaN or
// Inf ever reaches a summary.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		assertf("division by zero: %v / 0", num)
		return 0
	}
	q := num / den
	if math.IsNaN(q) || math.IsInf(q, 0) {
		assertf("non-finite quotient: %v / %v", num, den)
		return 0
	}
	return q
}

func assertf(format string, args ...any) {
	if debugAssertions {
		panic(fmt.Sprintf("analytics: "+format, args...))
	}
}

//go:build !debug

package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDiv_DegradesToZero(t *testing.T) {
	assert.Equal(t, 0.0, safeDiv(10, 0))
	assert.Equal(t, 0.0, safeDiv(math.Inf(1), 1))
	assert.Equal(t, 2.5, safeDiv(5, 2))
}

package cli

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		values []float64
	}{
		{name: "empty", values: nil, want: ""},
		{name: "flat", values: []float64{5, 5, 5}, want: "▁▁▁"},
		{name: "ramp", values: []float64{0, 1, 2, 3, 4, 5, 6, 7}, want: "▁▂▃▄▅▆▇█"},
		{name: "negative values", values: []float64{-10, 0, 10}, want: "▁▅█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sparkline(tt.values)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.values), utf8.RuneCountInString(got))
		})
	}
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", Bar(0, 100, 10))
	assert.Equal(t, "", Bar(5, 0, 10))
	assert.Equal(t, "█████", Bar(50, 100, 10))
	assert.Equal(t, "██████████", Bar(150, 100, 10), "clamped to width")
	assert.Equal(t, "█", Bar(0.1, 100, 10), "tiny values stay visible")
}

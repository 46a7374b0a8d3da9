package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, slog.LevelInfo, "json"))

	LogDebug("hidden", nil)
	LogInfo("visible", Fields{"b": 2, "a": 1})
	LogError(errors.New("boom"), "failed", Fields{"op": "test"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"visible"`)
	assert.Contains(t, out, `"error":"boom"`)

	assert.ErrorIs(t, SetupLogger(&buf, slog.LevelInfo, "xml"), ErrInvalidConfig)
}

func TestIsUserFacing(t *testing.T) {
	assert.True(t, IsUserFacing(NewUserError("bad input", nil)))
	assert.True(t, IsUserFacing(ErrInvalidArgument))
	assert.False(t, IsUserFacing(errors.New("disk on fire")))

	err := NewUserError("could not load", ErrNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "could not load: not found", err.Error())
}

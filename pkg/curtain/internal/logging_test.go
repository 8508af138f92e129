package internal

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw   string
		level slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{" INFO ", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		level, ok := ParseLevel(tt.raw)
		assert.Equal(t, tt.level, level, tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
	}
}

func TestInternalLoggerStartsQuiet(t *testing.T) {
	l := GetInternalLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, l.Enabled(context.Background(), slog.LevelError))

	SetInternalLogLevel(slog.LevelDebug)
	defer SetInternalLogLevel(slog.LevelError)
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}

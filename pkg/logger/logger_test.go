package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.level), "level %q", tt.level)
	}
}

func TestNewStructuredLogger(t *testing.T) {
	l := NewStructuredLogger("gomenu", "v0.0.0", "debug")
	assert.NotNil(t, l)
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))

	l = NewStructuredLogger("gomenu", "v0.0.0", "error")
	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
}

func TestNewLogLogger(t *testing.T) {
	assert.NotNil(t, NewLogLogger(slog.LevelError, false))
}

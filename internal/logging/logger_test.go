package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.raw), "raw=%q", tt.raw)
	}
}

func TestInitLoggerTo(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	t.Setenv("LOG_LEVEL", "warn")
	var buf bytes.Buffer
	InitLoggerTo(&buf)

	slog.Info("[Test] hidden")
	slog.Warn("[Test] shown", slog.String("key", "value"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[Test] shown")
	assert.Contains(t, buf.String(), "value")
}

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/morphkit/internal/config"
)

func TestNewWriter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewWriter(&buf, config.LogConfig{Level: "info", Format: "json"})
	l.Debug("hidden")
	l.Info("analysed", "word", "tou=", "records", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &m))
	assert.Equal(t, "analysed", m["msg"])
	assert.Equal(t, "tou=", m["word"])
	assert.EqualValues(t, 3, m["records"])
	assert.NotContains(t, m, "source")
}

func TestNewWriter_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewWriter(&buf, config.LogConfig{Level: "DEBUG", Format: "Text"})
	l.Debug("source test")

	out := buf.String()
	assert.Contains(t, out, "msg=\"source test\"")
	assert.Contains(t, out, "source=")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" Warn ", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestNew_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	l := New(config.LogConfig{Level: "warn", Format: "json"})
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default())
}

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"Warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(in))
		})
	}
}

func TestNewWithWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", "text")

	log.Info("hidden")
	log.Warn("shown", "creature", "self")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "creature=self")
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "debug", "json").Debug("health action", "action", "chip 3")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "health action", line["msg"])
	assert.Equal(t, "chip 3", line["action"])
}

func TestNewFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svarog.log")

	log, err := New(Config{Level: "info", Format: "text", Output: path})
	require.NoError(t, err)
	log.Info("campaign loaded")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "campaign loaded")
}

func TestNewBadFile(t *testing.T) {
	_, err := New(Config{Output: filepath.Join(t.TempDir(), "missing", "svarog.log")})
	assert.ErrorContains(t, err, "failed to open log file")
}

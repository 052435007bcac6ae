package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantErr, err != nil, tt.in)
	}
}

func TestSetup_Fallback(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger, closeFn, err := Setup("warn", "", &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Info("hidden")
	slog.Warn("clip missing", "dan", 6)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "clip missing")
	assert.Contains(t, out, "dan=6")
}

func TestSetup_File(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "kakezan.log")
	logger, closeFn, err := Setup("debug", path, nil)
	require.NoError(t, err)

	logger.Debug("step", "token", 3)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "token=3")
}

func TestSetup_BadLevel(t *testing.T) {
	_, _, err := Setup("verbose", "", nil)
	assert.Error(t, err)
}

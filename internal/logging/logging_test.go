package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handpong.log")

	logger, closeLog, err := New(path, false)
	require.NoError(t, err)

	logger.Info("match started", slog.Int("hands", 2))
	logger.Debug("hidden")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"match started\"")
	assert.Contains(t, string(data), "hands=2")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handpong.log")

	logger, closeLog, err := New(path, true)
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	logger.Debug("sample skipped")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sample skipped")
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closeLog, err := New("", true)
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Error("nowhere")
	assert.NoError(t, closeLog())
}

func TestNew_BadPath(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "missing", "handpong.log"), false)
	assert.Error(t, err)
}

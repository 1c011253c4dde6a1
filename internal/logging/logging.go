// Package logging builds the structured logger. The terminal belongs to the
// game screen, so records go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing to path and a func that closes the file.
// An empty path discards every record.
func New(path string, debug bool) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}

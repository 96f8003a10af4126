// Package logging sets up the application logger. The terminal belongs to
// the UI, so logs always go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Setup creates a logger writing to path at the given level, creating the
// parent directory when needed. The caller is responsible for closing the
// returned file.
func Setup(path, level string) (hclog.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}

// New creates a logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, level string) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:            "wavify",
		Level:           lvl,
		Output:          w,
		IncludeLocation: lvl <= hclog.Debug,
		Color:           hclog.ColorOff,
	})
}

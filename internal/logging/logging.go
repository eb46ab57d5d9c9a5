// Package logging builds the charm loggers used across the arcade.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// LogFile is the file name used while a TUI owns the terminal.
const LogFile = "arcade.log"

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(s string) (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
	}
	return lvl, nil
}

// New returns a timestamped logger writing to w.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// OpenFile appends to dir/arcade.log, creating dir if needed.
// The caller closes the returned file.
func OpenFile(dir, prefix string, level log.Level) (*log.Logger, *os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create %s: %w", dir, err)
	}
	path := filepath.Join(dir, LogFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return New(f, prefix, level), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Package logging builds the structured loggers used across Hop.It.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const prefix = "hopit"

// New returns a logger writing to path. An empty path discards all output so
// the terminal frontend keeps its alternate screen clean; "-" writes to stderr.
// The returned closer releases the log file.
func New(path, level string) (*log.Logger, io.Closer, error) {
	var w io.Writer
	var closer io.Closer = nopCloser{}

	switch path {
	case "":
		w = io.Discard
	case "-":
		w = os.Stderr
	default:
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, nil, fmt.Errorf("logging: create dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
		}
		w = f
		closer = f
	}

	logger := NewWriter(w)
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			closer.Close()
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		logger.SetLevel(lvl)
	}
	return logger, closer, nil
}

// NewWriter returns a timestamped logger on w.
func NewWriter(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

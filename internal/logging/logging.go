// Package logging builds the charmbracelet/log logger shared by the app.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todofilter/internal/config"
)

// Logger pairs a logger with the file it writes to, if any.
type Logger struct {
	*log.Logger
	file *os.File
}

// New builds a logger from cfg. The terminal belongs to the UI, so logs
// go to cfg.File or nowhere.
func New(cfg config.LogConfig) (*Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if cfg.File == "" {
		return &Logger{Logger: NewWriter(io.Discard, level)}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Logger{Logger: NewWriter(f, level), file: f}, nil
}

// NewWriter returns a text logger with timestamps writing to w.
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "todo",
	})
}

// Close releases the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

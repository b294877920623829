// Package log writes application logs to a file. The TUI owns the
// terminal, so nothing is ever written to stdout or stderr.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// FileName is the name of the log file inside the log directory.
const FileName = "skillsm.log"

// Logger writes leveled, structured records to a log file.
type Logger struct {
	file   *os.File
	logger *charmlog.Logger
}

// New creates a logger appending to FileName in logDir.
func New(logDir string, level string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := NewWithWriter(file, level)
	l.file = file
	return l, nil
}

// NewWithWriter creates a logger that writes to w.
func NewWithWriter(w io.Writer, level string) *Logger {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		lvl = charmlog.InfoLevel
	}

	return &Logger{
		logger: charmlog.NewWithOptions(w, charmlog.Options{
			Prefix:          "skillsm",
			Level:           lvl,
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
		}),
	}
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

var (
	mu           sync.RWMutex
	globalLogger = NewWithWriter(io.Discard, "info")
)

// Init initializes the global logger.
// Go's standard log package is redirected to the same file so stray
// library output never lands on the TUI.
func Init(logDir, level string) error {
	logger, err := New(logDir, level)
	if err != nil {
		return err
	}

	mu.Lock()
	prev := globalLogger
	globalLogger = logger
	mu.Unlock()

	stdlog.SetOutput(logger.file)
	stdlog.SetFlags(stdlog.Ldate | stdlog.Ltime)

	if err := prev.Close(); err != nil {
		return fmt.Errorf("close previous log file: %w", err)
	}
	return nil
}

// SetLogger replaces the global logger.
func SetLogger(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
}

func current() *charmlog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger.logger
}

// Debug logs at debug level with alternating key/value pairs.
func Debug(msg string, keyvals ...interface{}) { current().Debug(msg, keyvals...) }

// Info logs at info level.
func Info(msg string, keyvals ...interface{}) { current().Info(msg, keyvals...) }

// Warn logs at warn level.
func Warn(msg string, keyvals ...interface{}) { current().Warn(msg, keyvals...) }

// Error logs at error level.
func Error(msg string, keyvals ...interface{}) { current().Error(msg, keyvals...) }

// Close closes the global logger and restores a discarding one.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := globalLogger.Close()
	globalLogger = NewWithWriter(io.Discard, "info")
	stdlog.SetOutput(os.Stderr)
	return err
}

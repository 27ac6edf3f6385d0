// Package log is a small leveled logger. The TUI owns the terminal, so output
// goes to a file (or nowhere) rather than stderr while the UI runs.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	mu  sync.Mutex
	out io.Writer = io.Discard
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output. nil discards.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	out = w
}

// OpenFile appends log output to path and returns a close function.
func OpenFile(path string) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	SetOutput(f)
	return func() error {
		SetOutput(nil)
		return f.Close()
	}, nil
}

func write(l slog.Level, tag, format string, args []any) {
	if slog.Level(level.Load()) > l {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s [%s] "+format+"\n", append([]any{time.Now().Format("15:04:05.000"), tag}, args...)...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) { write(LevelDebug, "DEBUG", format, args) }

// Info logs an info message if the level allows it.
func Info(format string, args ...any) { write(LevelInfo, "INFO", format, args) }

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) { write(LevelWarn, "WARN", format, args) }

// Error logs an error message (always emitted).
func Error(format string, args ...any) { write(LevelError, "ERROR", format, args) }

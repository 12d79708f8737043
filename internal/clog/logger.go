package clog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/xdg/vmctl/internal/pathutil"
)

// Logger writes leveled messages to an optional file and to stderr.
type Logger struct {
	mu          sync.Mutex
	level       Level     // minimum level logged anywhere
	stderrLevel Level     // minimum level echoed to errWriter
	fileWriter  io.Writer // nil disables file logging
	errWriter   io.Writer // nil disables stderr logging
	now         func() time.Time
}

// NewLogger returns a logger at Info level that echoes warnings and errors to
// os.Stderr and has no file output.
func NewLogger() *Logger {
	return &Logger{
		level:       LevelInfo,
		stderrLevel: LevelWarn,
		errWriter:   os.Stderr,
		now:         time.Now,
	}
}

// SetLevel sets the minimum level logged.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetStderrLevel sets the minimum level echoed to the stderr writer. It never
// lowers the overall level set by SetLevel.
func (l *Logger) SetStderrLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stderrLevel = level
}

// SetFileOutput sets the writer receiving timestamped log lines. Pass nil to
// disable file logging.
func (l *Logger) SetFileOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fileWriter = w
}

// SetErrOutput sets the stderr writer. Pass nil to disable it.
func (l *Logger) SetErrOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errWriter = w
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Close closes the file writer if it implements io.Closer and detaches it.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	closer, ok := l.fileWriter.(io.Closer)
	l.fileWriter = nil
	if !ok {
		return nil
	}
	return closer.Close()
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, args...)

	if l.fileWriter != nil {
		ts := l.now().UTC().Format(time.RFC3339)
		_, _ = fmt.Fprintf(l.fileWriter, "%s [%s] %s\n", ts, level, msg)
	}

	if l.errWriter != nil && level >= l.stderrLevel {
		_, _ = fmt.Fprintf(l.errWriter, "[%s] %s\n", level, msg)
	}
}

// OpenLogFile opens path for appending, creating parent directories.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// DefaultLogPath returns $XDG_STATE_HOME/vmctl/vmctl.log, falling back to
// ~/.local/state/vmctl/vmctl.log.
func DefaultLogPath() string {
	return filepath.Join(pathutil.XDGDir("XDG_STATE_HOME", filepath.Join(".local", "state"), "vmctl"), "vmctl.log")
}

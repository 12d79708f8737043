package clog

import "io"

// std is the logger behind the package-level functions.
var std = NewLogger()

// Configure sets the global level and, when logPath is non-empty, appends
// log lines to that file. A previously configured file is closed.
func Configure(logPath string, level Level) error {
	std.SetLevel(level)
	_ = std.Close()
	if logPath == "" {
		return nil
	}

	f, err := OpenLogFile(logPath)
	if err != nil {
		return err
	}
	std.SetFileOutput(f)
	return nil
}

// Default returns the global logger.
func Default() *Logger {
	return std
}

// SetLevel sets the minimum level of the global logger.
func SetLevel(level Level) {
	std.SetLevel(level)
}

// Debug logs a debug message using the global logger.
func Debug(format string, args ...any) {
	std.Debug(format, args...)
}

// Info logs an informational message using the global logger.
func Info(format string, args ...any) {
	std.Info(format, args...)
}

// Warn logs a warning message using the global logger.
func Warn(format string, args ...any) {
	std.Warn(format, args...)
}

// Error logs an error message using the global logger.
func Error(format string, args ...any) {
	std.Error(format, args...)
}

// Close closes the global log file, if any.
func Close() error {
	return std.Close()
}

// Reset restores the global logger to its initial state.
func Reset() {
	std = NewLogger()
}

// Discard silences the global logger.
func Discard() {
	std.SetFileOutput(nil)
	std.SetErrOutput(nil)
}

// TestLogger returns a debug-level logger writing every message to w, with
// no stderr echo.
func TestLogger(w io.Writer) *Logger {
	l := NewLogger()
	l.SetFileOutput(w)
	l.SetErrOutput(nil)
	l.SetLevel(LevelDebug)
	return l
}

// ReplaceGlobal installs l as the global logger and returns the previous one.
func ReplaceGlobal(l *Logger) *Logger {
	old := std
	std = l
	return old
}

// Package audit records VM operations performed through vmctl, one key=value
// line per operation. Guest passwords and script bodies are never recorded.
package audit

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Op is the operation an event records.
type Op string

// Operations.
const (
	OpStart         Op = "START"
	OpStop          Op = "STOP"
	OpRunScript     Op = "RUN_SCRIPT"
	OpCopyToGuest   Op = "COPY_TO_GUEST"
	OpCopyFromGuest Op = "COPY_FROM_GUEST"
)

// Event is one audit log entry.
type Event struct {
	Timestamp time.Time
	Op        Op

	// VM is the configured name, empty when the VM was given by path.
	VM  string
	VMX string

	// User is the guest account, for guest operations.
	User string

	// Interpreter and ScriptBytes describe a RUN_SCRIPT.
	Interpreter string
	ScriptBytes int

	// Src and Dst are the paths of a copy.
	Src string
	Dst string

	// ExitCode is vmrun's exit status, when it ran.
	ExitCode int
	Duration time.Duration

	// Err is set when the operation failed.
	Err error
}

// Format returns the event as a single line:
//
//	2026-01-15T14:32:05Z VMRUN RUN_SCRIPT vm="build" vmx="/vms/build.vmx" user="root" interpreter="/bin/sh" bytes=42 exit=0 duration=2.3s
func (e *Event) Format() string {
	var b strings.Builder

	b.WriteString(e.Timestamp.UTC().Format(time.RFC3339))
	b.WriteString(" VMRUN ")
	b.WriteString(string(e.Op))

	writeOptionalField(&b, "vm", e.VM)
	writeField(&b, "vmx", quoteValue(e.VMX))
	writeOptionalField(&b, "user", e.User)

	switch e.Op {
	case OpRunScript:
		writeOptionalField(&b, "interpreter", e.Interpreter)
		writeField(&b, "bytes", strconv.Itoa(e.ScriptBytes))
	case OpCopyToGuest, OpCopyFromGuest:
		writeOptionalField(&b, "src", e.Src)
		writeOptionalField(&b, "dst", e.Dst)
	}

	if e.Err != nil {
		writeField(&b, "error", quoteValue(e.Err.Error()))
	} else {
		writeField(&b, "exit", strconv.Itoa(e.ExitCode))
	}
	writeField(&b, "duration", formatDuration(e.Duration))

	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString("=")
	b.WriteString(value)
}

// writeOptionalField appends key="value" if value is non-empty.
func writeOptionalField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	writeField(b, key, quoteValue(value))
}

func quoteValue(s string) string {
	return strconv.Quote(s)
}

// formatDuration formats d as e.g. "850.0ms", "2.3s" or "1m30s".
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return d.Round(time.Second).String()
}

// Logger writes events to an io.Writer. A nil *Logger discards events, so
// callers need not check whether auditing is enabled.
type Logger struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewLogger returns a Logger writing to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w, now: time.Now}
}

// Log writes e, stamping it with the current time if Timestamp is zero.
func (l *Logger) Log(e *Event) error {
	if l == nil || l.w == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if e.Timestamp.IsZero() {
		e.Timestamp = l.now()
	}
	if _, err := io.WriteString(l.w, e.Format()+"\n"); err != nil {
		return fmt.Errorf("write audit event: %w", err)
	}
	return nil
}

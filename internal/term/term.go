// Package term provides user-facing terminal output for the vmctl CLI. It is
// distinct from operational logging (see internal/clog).
//
// Print, Printf, Println and Table write to stdout and are suppressed by
// --silent. Warn and Error write to stderr and are never suppressed.
package term

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Output is a pair of writers with a silent switch. The package functions
// use a process-wide Output.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	silent bool
}

// NewOutput returns an Output writing to stdout and stderr. Nil writers
// mean os.Stdout and os.Stderr.
func NewOutput(stdout, stderr io.Writer) *Output {
	o := &Output{}
	o.setWriters(stdout, stderr)
	return o
}

func (o *Output) setWriters(stdout, stderr io.Writer) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	o.stdout, o.stderr = stdout, stderr
}

// out returns the stdout writer, or nil when silent. Callers hold o.mu.
func (o *Output) out() io.Writer {
	if o.silent {
		return nil
	}
	return o.stdout
}

func (o *Output) print(fn func(w io.Writer)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if w := o.out(); w != nil {
		fn(w)
	}
}

func (o *Output) report(prefix, format string, a []any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = fmt.Fprintf(o.stderr, "%s: %s\n", prefix, fmt.Sprintf(format, a...))
}

var std = NewOutput(nil, nil)

// SetSilent enables or disables silent mode.
func SetSilent(s bool) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.silent = s
}

// SetOutput sets the stdout writer. Nil restores os.Stdout.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.setWriters(w, std.stderr)
}

// SetErrOutput sets the stderr writer. Nil restores os.Stderr.
func SetErrOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.setWriters(std.stdout, w)
}

// Print writes to stdout like fmt.Print.
func Print(a ...any) {
	std.print(func(w io.Writer) { _, _ = fmt.Fprint(w, a...) })
}

// Printf writes to stdout like fmt.Printf.
func Printf(format string, a ...any) {
	std.print(func(w io.Writer) { _, _ = fmt.Fprintf(w, format, a...) })
}

// Println writes to stdout like fmt.Println.
func Println(a ...any) {
	std.print(func(w io.Writer) { _, _ = fmt.Fprintln(w, a...) })
}

// Warn writes "Warning: <msg>" to stderr.
func Warn(format string, a ...any) {
	std.report("Warning", format, a)
}

// Error writes "Error: <msg>" to stderr.
func Error(format string, a ...any) {
	std.report("Error", format, a)
}

// Stdout returns the stdout writer, or io.Discard when silent.
func Stdout() io.Writer {
	std.mu.Lock()
	defer std.mu.Unlock()
	if w := std.out(); w != nil {
		return w
	}
	return io.Discard
}

// Stderr returns the stderr writer.
func Stderr() io.Writer {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.stderr
}

// Reset restores os.Stdout, os.Stderr and non-silent mode.
func Reset() {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.setWriters(nil, nil)
	std.silent = false
}

// Discard drops all output, including warnings and errors.
func Discard() {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.setWriters(io.Discard, io.Discard)
}

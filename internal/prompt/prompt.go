// Package prompt reads answers from the user: hidden guest passwords and
// yes/no confirmations. Each reader has a mock for tests.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a password is needed but input is not an
// interactive terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PasswordReader reads a secret without echoing it.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}

// TerminalPasswordReader reads passwords from a terminal with echo disabled.
type TerminalPasswordReader struct {
	In  *os.File
	Out io.Writer
}

// NewTerminalPasswordReader creates a TerminalPasswordReader reading from in
// (typically os.Stdin) and writing the prompt to out.
func NewTerminalPasswordReader(in *os.File, out io.Writer) *TerminalPasswordReader {
	return &TerminalPasswordReader{In: in, Out: out}
}

// ReadPassword writes prompt and reads one line with echo disabled. It
// returns ErrNotTerminal without prompting when In is not a terminal.
func (r *TerminalPasswordReader) ReadPassword(prompt string) (string, error) {
	fd := int(r.In.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	_, _ = fmt.Fprint(r.Out, prompt)
	password, err := term.ReadPassword(fd)
	// ReadPassword swallows the newline.
	_, _ = fmt.Fprintln(r.Out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

// MockPasswordReader returns queued passwords and records prompts.
type MockPasswordReader struct {
	Passwords []string
	// Err, if set, is returned by every call.
	Err   error
	Calls []string
}

// NewMockPasswordReader creates a MockPasswordReader with the given
// passwords.
func NewMockPasswordReader(passwords ...string) *MockPasswordReader {
	return &MockPasswordReader{Passwords: passwords}
}

// ReadPassword returns the next queued password, or "" once they run out.
func (m *MockPasswordReader) ReadPassword(prompt string) (string, error) {
	m.Calls = append(m.Calls, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Passwords) == 0 {
		return "", nil
	}
	p := m.Passwords[0]
	m.Passwords = m.Passwords[1:]
	return p, nil
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(prompt string, defaultYes bool) (bool, error)
}

// StdinConfirmer reads y/n answers line by line.
type StdinConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// NewStdinConfirmer creates a StdinConfirmer reading from r and writing
// prompts to w.
func NewStdinConfirmer(r io.Reader, w io.Writer) *StdinConfirmer {
	return &StdinConfirmer{In: r, Out: w}
}

// Confirm writes prompt with a [Y/n] or [y/N] hint and reads the answer.
// An empty answer, including end of input, returns defaultYes.
func (c *StdinConfirmer) Confirm(prompt string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	_, _ = fmt.Fprintf(c.Out, "%s %s ", prompt, hint)

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: expected y or n", strings.TrimSpace(line))
	}
}

// MockConfirmer returns queued answers and records prompts. Once the
// answers run out it returns the default.
type MockConfirmer struct {
	Answers []bool
	Calls   []string
}

// Confirm implements Confirmer.
func (m *MockConfirmer) Confirm(prompt string, defaultYes bool) (bool, error) {
	m.Calls = append(m.Calls, prompt)
	if len(m.Answers) == 0 {
		return defaultYes, nil
	}
	a := m.Answers[0]
	m.Answers = m.Answers[1:]
	return a, nil
}

package vmrun

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGUIMode is returned for a GUIMode outside the defined set.
	// No process is started in that case.
	ErrInvalidGUIMode = errors.New("invalid gui mode")

	// ErrNoHeaderLine indicates vmrun list printed nothing, not even the
	// "Total running VMs" header.
	ErrNoHeaderLine = errors.New("no header line from vmrun list")
)

// MalformedOutputError is returned when vmrun output does not have the
// expected shape.
type MalformedOutputError struct {
	Command string
	Output  []byte
	Err     error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("vmrun %s: malformed output: %v", e.Command, e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

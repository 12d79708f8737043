// Package process runs external programs and captures their exit status and
// output streams.
//
// Output is kept as raw bytes. Decoding is left to the caller that knows what
// the program prints.
package process

// Result is the outcome of a single program invocation.
type Result struct {
	// Program is the executable that was run.
	Program string
	// Args are the arguments passed to Program, with credential values masked
	// (see [Redact]).
	Args []string
	// ExitCode is the exit status reported by the operating system. A process
	// terminated by a signal reports -1.
	ExitCode int
	// Stdout is everything the process wrote to standard output.
	Stdout []byte
	// Stderr is everything the process wrote to standard error.
	Stderr []byte
}

// Success reports whether the process exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// ExplodeOnError returns r unchanged if the process exited with status 0.
// Otherwise it returns an *ExecutionError carrying the exit code and both
// captured streams verbatim.
func (r Result) ExplodeOnError() (Result, error) {
	if r.Success() {
		return r, nil
	}
	return r, &ExecutionError{
		Program:  r.Program,
		Args:     r.Args,
		ExitCode: r.ExitCode,
		Stdout:   r.Stdout,
		Stderr:   r.Stderr,
	}
}

package vmrun

import (
	"context"

	"github.com/xdg/vmctl/internal/process"
)

// fakeRunner is a test double for process.Runner that records every call.
type fakeRunner struct {
	result process.Result
	err    error
	calls  []fakeCall
}

type fakeCall struct {
	program string
	args    []string
}

func (f *fakeRunner) Run(_ context.Context, program string, args ...string) (process.Result, error) {
	f.calls = append(f.calls, fakeCall{program: program, args: args})
	res := f.result
	res.Program = program
	res.Args = process.Redact(args)
	return res, f.err
}

// lastArgs returns the arguments of the most recent call.
func (f *fakeRunner) lastArgs() []string {
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1].args
}

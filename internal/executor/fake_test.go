package executor

import (
	"context"
	"strings"
)

// call is one recorded runner invocation
type call struct {
	name string
	args []string
	mode string // "run" or "output"
}

func (c call) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

// fakeRunner records invocations and serves canned output
type fakeRunner struct {
	calls     []call
	outputs   map[string][]byte
	outputErr map[string]error
	runErr    error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs:   make(map[string][]byte),
		outputErr: make(map[string]error),
	}
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, call{name: name, args: args, mode: "run"})
	return f.runErr
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	c := call{name: name, args: args, mode: "output"}
	f.calls = append(f.calls, c)
	return f.outputs[c.String()], f.outputErr[c.String()]
}

// fakeShell records scripts
type fakeShell struct {
	scripts []string
	err     error
}

func (f *fakeShell) RunShell(_ context.Context, script string) error {
	f.scripts = append(f.scripts, script)
	return f.err
}

// Package executor turns resolved commands into package manager invocations.
package executor

import (
	"context"
)

// Runner defines the interface for launching external processes.
// This interface enables dependency injection and easier testing.
type Runner interface {
	// Run launches a process attached to the runner's terminal streams and
	// waits for it to finish
	Run(ctx context.Context, name string, args ...string) error

	// Output launches a process and returns its captured standard output
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ShellRunner defines the interface for running raw shell text.
type ShellRunner interface {
	// RunShell parses and runs script with the terminal streams attached
	RunShell(ctx context.Context, script string) error
}

// Dispatcher defines the interface for performing one manager action.
type Dispatcher interface {
	// Dispatch performs the action. Errors are informational only.
	Dispatch(ctx context.Context, action Action) error
}

// Ensure concrete types implement the interfaces
var _ Runner = (*ProcessRunner)(nil)
var _ ShellRunner = (*Shell)(nil)
var _ Dispatcher = (*Manager)(nil)

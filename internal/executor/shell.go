package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Shell runs raw shell text in-process with the mvdan.cc/sh interpreter.
type Shell struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	env    []string
	dir    string
}

// ShellOptions configures a Shell. Zero values mean the current process's
// streams, environment and working directory.
type ShellOptions struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Env    []string
	Dir    string
}

// NewShell creates a Shell
func NewShell(opts ShellOptions) *Shell {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Env == nil {
		opts.Env = os.Environ()
	}
	return &Shell{
		stdin:  opts.Stdin,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		env:    opts.Env,
		dir:    opts.Dir,
	}
}

// RunShell parses script and runs it. A non-zero exit status can be
// recovered from the error with interp.IsExitStatus.
func (s *Shell) RunShell(ctx context.Context, script string) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "")
	if err != nil {
		return fmt.Errorf("failed to parse shell command: %w", err)
	}

	opts := []interp.RunnerOption{
		interp.StdIO(s.stdin, s.stdout, s.stderr),
		interp.Env(expand.ListEnviron(s.env...)),
	}
	if s.dir != "" {
		opts = append(opts, interp.Dir(s.dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}
	return runner.Run(ctx, prog)
}

package executor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"mvdan.cc/sh/v3/interp"

	"github.com/quocvuong92/archie/internal/logging"
)

// interruptGrace is how long a cancelled child gets to clean up after
// SIGINT before it is killed. pacman holds a database lock that it only
// releases on an orderly exit.
const interruptGrace = 10 * time.Second

// ProcessRunner launches real processes. Run attaches the configured
// streams directly so the child can prompt the user; nothing is captured.
type ProcessRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *logging.ProcessLogger
}

// NewProcessRunner creates a runner attached to the process's own streams.
func NewProcessRunner(logger *logging.FieldLogger) *ProcessRunner {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ProcessRunner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    logging.NewProcessLogger(logger),
	}
}

// WithStreams returns a copy of the runner using the given streams
func (r *ProcessRunner) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *ProcessRunner {
	cp := *r
	cp.stdin, cp.stdout, cp.stderr = stdin, stdout, stderr
	return &cp
}

func command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = interruptGrace
	return cmd
}

// Run launches name with args and waits for it. Cancelling ctx sends the
// child SIGINT, as Ctrl-C at a terminal would.
func (r *ProcessRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := command(ctx, name, args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	r.log.LogStart(name, args)
	start := time.Now()
	err := cmd.Run()
	r.log.LogExit(name, err, time.Since(start))
	return err
}

// Output launches name with args and returns its standard output.
// Standard error is discarded.
func (r *ProcessRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := command(ctx, name, args...)

	r.log.LogStart(name, args)
	start := time.Now()
	out, err := cmd.Output()
	r.log.LogExit(name, err, time.Since(start))
	return out, err
}

// ChildReported reports whether err is a non-zero exit of a process or
// shell script. Such a child has already written its own diagnostics to
// the terminal it shares with archie.
func ChildReported(err error) bool {
	if logging.ExitCode(err) > 0 {
		return true
	}
	_, ok := interp.IsExitStatus(err)
	return ok
}

package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/quocvuong92/archie/internal/display"
	"github.com/quocvuong92/archie/internal/executor"
	"github.com/quocvuong92/archie/internal/logging"
)

// OnceOptions configures RunOnce
type OnceOptions struct {
	Dispatcher executor.Dispatcher
	Guard      Guard
	// NewReader is called only when an argument has to be prompted for,
	// so one-shot commands with inline arguments never touch the terminal.
	NewReader func() (LineReader, error)
	Output    io.Writer
	Logger    *logging.FieldLogger
}

// RunOnce executes a single command from the -e vocabulary. Only the first
// element of args is used as the argument. Dispatch failures are logged and
// do not produce an error.
func RunOnce(ctx context.Context, opts OnceOptions, key string, args []string) error {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	cmd, ok := Lookup(strings.TrimSpace(key))
	if !ok || !cmd.Exec {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, key)
	}

	if cmd.Tag == TagHelp {
		display.ShowCommandsLine(out, helpEntries(true))
		return nil
	}

	arg := ""
	if cmd.NeedsArg() {
		if len(args) > 0 {
			arg = strings.TrimSpace(args[0])
		} else {
			if opts.NewReader == nil {
				return fmt.Errorf("%s needs a %s", cmd.Description, executor.GetTargetDescription(cmd.Verb))
			}
			reader, err := opts.NewReader()
			if err != nil {
				return err
			}
			arg, _ = readArgument(reader, cmd, false, logger)
		}
		if arg == "" {
			return nil
		}
	}

	a := &actor{dispatcher: opts.Dispatcher, guard: opts.Guard, out: out, logger: logger}
	a.perform(ctx, cmd, arg)
	return nil
}

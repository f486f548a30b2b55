package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/quocvuong92/archie/internal/catalog"
	"github.com/quocvuong92/archie/internal/constants"
	"github.com/quocvuong92/archie/internal/display"
	"github.com/quocvuong92/archie/internal/executor"
	"github.com/quocvuong92/archie/internal/logging"
)

// State is where the session is in its read-dispatch cycle
type State int

const (
	StateReading State = iota
	StateDispatching
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateReading:
		return "reading"
	case StateDispatching:
		return "dispatching"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Options configures a Session
type Options struct {
	Reader     LineReader
	Dispatcher executor.Dispatcher
	Catalog    *catalog.Catalog
	Guard      Guard
	Output     io.Writer
	Logger     *logging.FieldLogger
	Prompt     string
	RenderHelp bool
}

// Session is the interactive read-dispatch loop
type Session struct {
	actor
	reader     LineReader
	prompt     string
	renderHelp bool
	state      State
}

// New creates a Session. Nil Output and Logger fall back to io.Discard and a no-op logger.
func New(opts Options) *Session {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	prompt := opts.Prompt
	if prompt == "" {
		prompt = constants.CommandPrompt
	}
	return &Session{
		actor: actor{
			dispatcher: opts.Dispatcher,
			catalog:    opts.Catalog,
			guard:      opts.Guard,
			out:        out,
			logger:     logger,
		},
		reader:     opts.Reader,
		prompt:     prompt,
		renderHelp: opts.RenderHelp,
	}
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Run reads commands until the user quits, interrupts the main prompt,
// input ends, or ctx is cancelled. Failed actions never end the session.
func (s *Session) Run(ctx context.Context) error {
	defer func() { s.state = StateTerminated }()

	for {
		if ctx.Err() != nil {
			s.logger.Debug("Session ended", logging.Fields{"reason": "cancelled"})
			return nil
		}

		s.state = StateReading
		line, err := s.reader.ReadLine(s.prompt)
		if err != nil {
			if isEndOfInput(err) {
				s.logger.Debug("Session ended", logging.Fields{"reason": err.Error()})
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		s.reader.AppendHistory(line)

		s.state = StateDispatching
		if quit := s.handle(ctx, line); quit {
			s.logger.Debug("Session ended", logging.Fields{"reason": "quit"})
			return nil
		}
	}
}

// handle processes one submitted line and reports whether the session should end
func (s *Session) handle(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	if strings.HasPrefix(input, "!") {
		s.runShell(ctx, strings.TrimSpace(input[1:]))
		return false
	}

	cmd, ok := Lookup(input)
	if !ok {
		fmt.Fprintln(s.out, "Unknown command. Type 'h' for help")
		s.logger.Debug("Unknown command", logging.Fields{"input": input})
		return false
	}

	switch cmd.Tag {
	case TagQuit:
		return true
	case TagHelp:
		display.ShowHelp(s.out, helpEntries(false), s.renderHelp)
		return false
	}

	arg := ""
	if cmd.NeedsArg() {
		value, ok := readArgument(s.reader, cmd, true, s.logger)
		if !ok {
			return false
		}
		arg = value
	}

	s.perform(ctx, cmd, arg)
	return false
}

func (s *Session) runShell(ctx context.Context, script string) {
	if script == "" {
		fmt.Fprintln(s.out, "Usage: !<shell command>")
		return
	}
	s.dispatch(ctx, executor.Action{Verb: executor.VerbShell, Arg: script})
}

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/quocvuong92/archie/internal/catalog"
	"github.com/quocvuong92/archie/internal/display"
	"github.com/quocvuong92/archie/internal/executor"
	"github.com/quocvuong92/archie/internal/logging"
)

const maxHints = 3

// actor turns a resolved command and argument into a dispatched action.
// Shared by the interactive loop and RunOnce.
type actor struct {
	dispatcher executor.Dispatcher
	catalog    *catalog.Catalog
	guard      Guard
	out        io.Writer
	logger     *logging.FieldLogger
}

func (a *actor) perform(ctx context.Context, cmd Command, arg string) {
	if err := executor.ValidateTarget(cmd.Verb, arg); err != nil {
		fmt.Fprintf(a.out, "Invalid %s: %q\n", executor.GetTargetDescription(cmd.Verb), arg)
		a.logger.Debug("Rejected argument", logging.Fields{"command": cmd.Key, "arg": arg})
		return
	}

	action := executor.Action{Verb: cmd.Verb, Arg: arg}
	if a.guard != nil {
		if err := a.guard.Check(action); err != nil {
			fmt.Fprintf(a.out, "Refusing to %s %s: %v\n", cmd.Verb, arg, err)
			a.logger.Info("Action refused", logging.Fields{"action": action.String(), "error": err.Error()})
			return
		}
	}

	switch cmd.Verb {
	case executor.VerbInstall, executor.VerbRemove, executor.VerbPurge:
		a.hint(arg)
	}
	if msg := cmd.ProgressMessage(arg); msg != "" {
		fmt.Fprintln(a.out, msg)
	}
	a.dispatch(ctx, action)
}

func (a *actor) dispatch(ctx context.Context, action executor.Action) {
	if err := a.dispatcher.Dispatch(ctx, action); err != nil {
		a.logger.Warn("Action failed", logging.Fields{"action": action.String(), "error": err.Error()})
		if !errors.Is(err, context.Canceled) && !executor.ChildReported(err) {
			display.ShowErrorTo(a.out, err.Error())
		}
		return
	}
	a.logger.Debug("Action finished", logging.Fields{"action": action.String()})
}

// hint prints close catalog matches for a name the catalog does not know.
// The action is still dispatched; the catalog may be stale.
func (a *actor) hint(name string) {
	if a.catalog == nil || a.catalog.Len() == 0 || a.catalog.Contains(name) {
		return
	}
	closest := a.catalog.Closest(name, maxHints)
	if len(closest) == 0 {
		display.ShowWarning(a.out, name+" is not in the package catalog")
		return
	}
	display.ShowWarning(a.out, fmt.Sprintf("%s is not in the package catalog. Did you mean: %s?", name, strings.Join(closest, ", ")))
}

// readArgument asks for a command's argument on its secondary prompt.
// ok is false when the user cancelled or submitted a blank line.
func readArgument(reader LineReader, cmd Command, record bool, logger *logging.FieldLogger) (string, bool) {
	value, err := reader.ReadLine(cmd.Prompt)
	if err != nil {
		if !isEndOfInput(err) {
			logger.Warn("Failed to read argument", logging.Fields{"command": cmd.Key, "error": err.Error()})
		}
		return "", false
	}
	if record {
		reader.AppendHistory(value)
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func isEndOfInput(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, io.EOF)
}

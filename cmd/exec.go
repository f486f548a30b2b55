package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/quocvuong92/archie/internal/logging"
	"github.com/quocvuong92/archie/internal/session"
)

// runExec performs one command given with -e and returns
func (app *App) runExec(ctx context.Context, key string, args []string) error {
	err := session.RunOnce(ctx, session.OnceOptions{
		Dispatcher: app.newManager(),
		Guard:      app.newGuard(),
		NewReader: func() (session.LineReader, error) {
			reader, _, err := app.openEditor(ctx)
			return reader, err
		},
		Output: app.stdout,
		Logger: app.log.WithFields(logging.Fields{"component": "exec"}),
	}, key, args)

	if errors.Is(err, session.ErrUnknownCommand) {
		fmt.Fprintf(app.stderr, "Invalid command for -e: %s\n", key)
		fmt.Fprintf(app.stderr, "Valid commands: %s\n", session.ExecKeys())
		return errReported
	}
	return err
}

package cmd

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/quocvuong92/archie/internal/catalog"
	"github.com/quocvuong92/archie/internal/constants"
	"github.com/quocvuong92/archie/internal/display"
	"github.com/quocvuong92/archie/internal/logging"
	"github.com/quocvuong92/archie/internal/protect"
	"github.com/quocvuong92/archie/internal/session"
)

// runInteractive starts the read-dispatch loop
func (app *App) runInteractive(ctx context.Context) error {
	reader, cat, err := app.openEditor(ctx)
	if err != nil {
		display.ShowErrorTo(app.stderr, err.Error())
		return errReported
	}

	display.ShowWelcome(app.stdout, constants.Version)

	sess := session.New(session.Options{
		Reader:     reader,
		Dispatcher: app.newManager(),
		Catalog:    cat,
		Guard:      app.newGuard(),
		Output:     app.stdout,
		Logger:     app.log.WithFields(logging.Fields{"component": "session"}),
		Prompt:     constants.CommandPrompt,
		RenderHelp: app.cfg.RenderHelp,
	})
	err = sess.Run(ctx)
	fmt.Fprintln(app.stdout)
	app.log.Debug("Session ended", logging.Fields{"state": sess.State().String()})
	return err
}

func (app *App) newGuard() *protect.Guard {
	guard := protect.NewGuard(app.cfg.Protect)
	if rules := guard.Rules(); len(rules) > 0 {
		app.log.Debug("Protection rules loaded", logging.Fields{
			"rules": lo.Map(rules, func(r protect.Rule, _ int) string { return protect.FormatPattern(r) }),
		})
	}
	return guard
}

// openEditor checks the terminal, loads the catalog, and builds a line
// editor completing against it.
func (app *App) openEditor(ctx context.Context) (session.LineReader, *catalog.Catalog, error) {
	if err := app.checkTerminal(); err != nil {
		return nil, nil, fmt.Errorf("line editor cannot initialize: %w", err)
	}
	cat := app.loadCatalog(ctx)
	return app.newEditor(cat.Complete), cat, nil
}

// loadCatalog reads package names from the registry and the AUR cache
func (app *App) loadCatalog(ctx context.Context) *catalog.Catalog {
	if app.showSpinner {
		sp := display.NewSpinner(app.stderr, "Loading package names...")
		sp.Start()
		defer sp.Stop()
	}

	logger := app.log.WithFields(logging.Fields{"component": "catalog"})
	cat := catalog.Build(ctx, logger,
		catalog.CommandSource{
			Binary: app.cfg.Registry,
			Args:   []string{"-Slq"},
			Output: app.runner.Output,
		},
		catalog.FileSource{Path: app.cfg.AURCache},
	)
	logger.Debug("Catalog loaded", logging.Fields{"packages": cat.Len()})
	return cat
}

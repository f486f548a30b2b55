package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quocvuong92/archie/internal/config"
	"github.com/quocvuong92/archie/internal/constants"
	"github.com/quocvuong92/archie/internal/display"
	"github.com/quocvuong92/archie/internal/executor"
	"github.com/quocvuong92/archie/internal/history"
	"github.com/quocvuong92/archie/internal/lineeditor"
	"github.com/quocvuong92/archie/internal/logging"
	"github.com/quocvuong92/archie/internal/session"
)

// errReported marks failures whose message has already been printed
var errReported = errors.New("reported")

// App holds the application state
type App struct {
	cfg         *config.Config
	verbose     bool
	showVersion bool
	initConfig  bool
	execKey     string

	stdout io.Writer
	stderr io.Writer

	logger  *logging.Logger
	log     *logging.FieldLogger
	closers []io.Closer

	// Process and terminal access, replaced in tests
	runner        executor.Runner
	shell         executor.ShellRunner
	lookPath      executor.LookPathFunc
	checkTerminal func() error
	showSpinner   bool
	newEditor     func(complete lineeditor.CompleteFunc) session.LineReader
}

// NewApp creates a new App instance with default configuration
func NewApp() *App {
	app := &App{
		cfg:      config.NewConfig(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		lookPath: exec.LookPath,
		checkTerminal: func() error {
			return lineeditor.CheckTerminal(os.Stdin.Fd())
		},
		showSpinner: lineeditor.IsTerminal(os.Stderr.Fd()),
	}
	app.newEditor = func(complete lineeditor.CompleteFunc) session.LineReader {
		return lineeditor.New(lineeditor.Options{
			Complete:       complete,
			History:        history.NewHistory(),
			MaxSuggestions: app.cfg.MaxSuggestions,
		})
	}
	return app
}

// Execute runs the root command
func Execute() {
	app := NewApp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := app.newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	app.close()
	if err != nil {
		if !errors.Is(err, errReported) {
			display.ShowError(err.Error())
		}
		stop()
		os.Exit(1)
	}
}

func (app *App) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "archie [-e <command> [argument]]",
		Short: "An interactive shell for the Arch Linux package manager",
		Long: `Archie wraps paru, yay, or pacman in a small interactive shell with
single-letter commands and package name completion.

Commands:
  u  Update system       i  Install package    r  Remove package
  p  Purge package       s  Search packages    c  Clean cache
  o  Remove orphans      h  Show help          q  Quit

Examples:
  archie                     # Interactive shell
  archie -e u                # Update the system and exit
  archie -e i firefox        # Install one package
  archie -e r                # Prompt for a package to remove
  archie --manager yay       # Use yay instead of the detected manager`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, args)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().BoolVar(&app.showVersion, "version", false, "Show version information and exit")
	rootCmd.Flags().StringVarP(&app.execKey, "exec", "e", "", "Run a single command ("+session.ExecKeys()+") and exit")
	rootCmd.Flags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.Flags().StringVar(&app.cfg.Manager, "manager", "", "Package manager: paru, yay, or pacman (default: auto-detect)")
	rootCmd.Flags().BoolVar(&app.initConfig, "init-config", false, "Write a default config file and exit")

	return rootCmd
}

func (app *App) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if app.initConfig {
		return app.writeDefaultConfig()
	}

	// Validate config
	if err := app.cfg.Validate(); err != nil {
		display.ShowErrorTo(app.stderr, err.Error())
		return errReported
	}

	if err := app.setupLogging(); err != nil {
		display.ShowErrorTo(app.stderr, err.Error())
		return errReported
	}
	app.resolveManager()

	if app.runner == nil {
		app.runner = executor.NewProcessRunner(app.log.WithFields(logging.Fields{"component": "runner"})).
			WithStreams(os.Stdin, app.stdout, app.stderr)
	}
	if app.shell == nil {
		app.shell = executor.NewShell(executor.ShellOptions{Stdout: app.stdout, Stderr: app.stderr})
	}

	if app.showVersion {
		app.printVersion(ctx)
		return nil
	}

	if cmd.Flags().Changed("exec") {
		return app.runExec(ctx, app.execKey, args)
	}

	if len(args) > 0 {
		display.ShowErrorTo(app.stderr, fmt.Sprintf("unexpected arguments: %s (use -e to run a single command)", strings.Join(args, " ")))
		_ = cmd.Usage()
		return errReported
	}

	return app.runInteractive(ctx)
}

// setupLogging builds the logger from --verbose and the configured level and file
func (app *App) setupLogging() error {
	level := logging.ParseLevel(app.cfg.LogLevel)
	if app.verbose {
		level = logging.LevelDebug
	}

	var output io.Writer = app.stderr
	format := logging.FormatText
	if app.cfg.LogFile != "" && !app.verbose {
		f, err := os.OpenFile(app.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		app.closers = append(app.closers, f)
		output = f
		format = logging.FormatJSON
	}

	app.logger = logging.New(logging.Options{
		Level:  level,
		Format: format,
		Output: output,
	})
	app.log = app.logger.WithFields(logging.Fields{"session": uuid.NewString()})
	return nil
}

// resolveManager picks the first installed manager when none is configured.
// A missing binary is not fatal; dispatch simply fails later.
func (app *App) resolveManager() {
	if app.cfg.Manager != "" {
		return
	}
	app.cfg.Manager = executor.DetectManager(app.lookPath, constants.SupportedManagers, constants.DefaultManager)
	app.log.Debug("Detected package manager", logging.Fields{"manager": app.cfg.Manager})
}

func (app *App) newManager() *executor.Manager {
	return executor.NewManager(executor.ManagerOptions{
		Binary:   app.cfg.Manager,
		Registry: app.cfg.Registry,
		Runner:   app.runner,
		Shell:    app.shell,
		Output:   app.stdout,
		Logger:   app.log.WithFields(logging.Fields{"component": "manager"}),
	})
}

func (app *App) printVersion(ctx context.Context) {
	display.ShowBanner(app.stdout, constants.Version, executor.ManagerVersion(ctx, app.runner, app.cfg.Manager))
}

func (app *App) writeDefaultConfig() error {
	home := app.cfg.HomeDir
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	path, err := config.CreateDefaultConfigFile(home)
	if err != nil {
		display.ShowErrorTo(app.stderr, err.Error())
		return errReported
	}
	fmt.Fprintf(app.stdout, "Config file created at %s\n", path)
	return nil
}

func (app *App) close() {
	if app.logger != nil {
		_ = app.logger.Sync()
	}
	for _, c := range app.closers {
		_ = c.Close()
	}
	app.closers = nil
}

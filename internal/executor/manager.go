package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quocvuong92/archie/internal/logging"
)

// Verb is one package manager operation
type Verb int

const (
	// VerbUpgrade synchronizes the databases and upgrades everything
	VerbUpgrade Verb = iota + 1
	// VerbInstall installs one package
	VerbInstall
	// VerbRemove removes one package
	VerbRemove
	// VerbPurge removes one package with its unneeded dependencies and configs
	VerbPurge
	// VerbSearch searches the sync databases
	VerbSearch
	// VerbClean cleans the package cache
	VerbClean
	// VerbRemoveOrphans removes packages nothing depends on
	VerbRemoveOrphans
	// VerbShell runs a raw shell command
	VerbShell
)

// String returns the verb name used in logs
func (v Verb) String() string {
	switch v {
	case VerbUpgrade:
		return "upgrade"
	case VerbInstall:
		return "install"
	case VerbRemove:
		return "remove"
	case VerbPurge:
		return "purge"
	case VerbSearch:
		return "search"
	case VerbClean:
		return "clean"
	case VerbRemoveOrphans:
		return "remove-orphans"
	case VerbShell:
		return "shell"
	default:
		return "unknown"
	}
}

// NeedsArg reports whether the verb takes a single argument
func (v Verb) NeedsArg() bool {
	switch v {
	case VerbInstall, VerbRemove, VerbPurge, VerbSearch, VerbShell:
		return true
	default:
		return false
	}
}

// Action is a resolved command plus its optional argument
type Action struct {
	Verb Verb
	Arg  string
}

// String renders the action for logs, e.g. install(glibc)
func (a Action) String() string {
	if a.Verb.NeedsArg() {
		return fmt.Sprintf("%s(%s)", a.Verb, a.Arg)
	}
	return a.Verb.String()
}

// Manager flag sets. paru, yay and pacman share them.
var verbFlags = map[Verb]string{
	VerbUpgrade: "-Syu",
	VerbInstall: "-S",
	VerbRemove:  "-R",
	VerbPurge:   "-Rns",
	VerbSearch:  "-Ss",
	VerbClean:   "-Sc",
}

const (
	orphanQueryFlags  = "-Qtdq"
	orphanRemoveFlags = "-Rns"
)

// Args returns the manager argv for a single-invocation action
func Args(a Action) ([]string, error) {
	flags, ok := verbFlags[a.Verb]
	if !ok {
		return nil, fmt.Errorf("verb %s has no single manager invocation", a.Verb)
	}
	if a.Verb.NeedsArg() {
		return []string{flags, a.Arg}, nil
	}
	return []string{flags}, nil
}

// ManagerOptions configures a Manager
type ManagerOptions struct {
	// Binary is the package manager executable, e.g. paru
	Binary string
	// Registry is the system package database tool used for queries, e.g. pacman
	Registry string
	Runner   Runner
	Shell    ShellRunner
	// Output receives short status lines
	Output io.Writer
	Logger *logging.FieldLogger
}

// Manager dispatches actions to the external package manager
type Manager struct {
	binary   string
	registry string
	runner   Runner
	shell    ShellRunner
	out      io.Writer
	logger   *logging.FieldLogger
}

// NewManager creates a Manager
func NewManager(opts ManagerOptions) *Manager {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	return &Manager{
		binary:   opts.Binary,
		registry: opts.Registry,
		runner:   opts.Runner,
		shell:    opts.Shell,
		out:      opts.Output,
		logger:   opts.Logger,
	}
}

// Dispatch performs one action and waits for it to finish
func (m *Manager) Dispatch(ctx context.Context, a Action) error {
	if err := ValidateTarget(a.Verb, a.Arg); err != nil {
		return err
	}

	m.logger.Debug("Dispatch", logging.Fields{"action": a.String()})

	switch a.Verb {
	case VerbRemoveOrphans:
		return m.removeOrphans(ctx)
	case VerbShell:
		if m.shell == nil {
			return fmt.Errorf("no shell runner configured")
		}
		return m.shell.RunShell(ctx, a.Arg)
	}

	args, err := Args(a)
	if err != nil {
		return err
	}
	return m.runner.Run(ctx, m.binary, args...)
}

// removeOrphans lists orphans with the registry and hands them to the
// manager as separate argv entries.
func (m *Manager) removeOrphans(ctx context.Context) error {
	out, err := m.runner.Output(ctx, m.registry, orphanQueryFlags)
	if err != nil {
		code := logging.ExitCode(err)
		// pacman exits 1 when the query matches nothing
		if code == 1 {
			m.logger.Debug("Orphan query returned no packages", logging.Fields{"exit_code": code})
			fmt.Fprintln(m.out, "No orphaned packages to remove")
			return nil
		}
		m.logger.Warn("Orphan query failed", logging.Fields{
			"registry":  m.registry,
			"exit_code": code,
			"error":     err.Error(),
		})
		return fmt.Errorf("failed to list orphaned packages with %s: %w", m.registry, err)
	}

	var orphans []string
	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			orphans = append(orphans, name)
		}
	}
	if len(orphans) == 0 {
		fmt.Fprintln(m.out, "No orphaned packages to remove")
		return nil
	}

	return m.runner.Run(ctx, m.binary, append([]string{orphanRemoveFlags}, orphans...)...)
}

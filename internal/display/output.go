package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	keyStyle     = lipgloss.NewStyle().Bold(true)
)

// HelpEntry is one line of the command overview
type HelpEntry struct {
	Key         string
	Description string
}

// ShowError prints an error message to stderr
func ShowError(msg string) {
	ShowErrorTo(os.Stderr, msg)
}

// ShowErrorTo prints an error message to w
func ShowErrorTo(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+msg))
}

// ShowWarning prints a warning to w
func ShowWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(msg))
}

// ShowWelcome prints the greeting shown when an interactive session starts
func ShowWelcome(w io.Writer, version string) {
	fmt.Fprintf(w, "\nWelcome to Archie v%s\nType 'h' for help\n\n", version)
}

const bannerArt = `
    _             _     _
   / \   _ __ ___| |__ (_) ___
  / _ \ | '__/ __| '_ \| |/ _ \
 / ___ \| | | (__| | | | |  __/
/_/   \_\_|  \___|_| |_|_|\___|`

// ShowBanner prints the version banner
func ShowBanner(w io.Writer, version, managerVersion string) {
	fmt.Fprintln(w, bannerStyle.Render(strings.TrimPrefix(bannerArt, "\n")))
	fmt.Fprintf(w, "\nArchie v%s\n", version)
	if managerVersion != "" {
		fmt.Fprintf(w, "Package manager: %s\n", managerVersion)
	}
}

// ShowHelp prints the command overview. With render set, the overview is
// drawn as markdown and falls back to plain text when rendering fails.
func ShowHelp(w io.Writer, entries []HelpEntry, render bool) {
	if render {
		if out, err := RenderMarkdown(helpMarkdown(entries)); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, helpPlain(entries))
}

// ShowCommandsLine prints the one-line overview used by -e h
func ShowCommandsLine(w io.Writer, entries []HelpEntry) {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Key+" - "+e.Description)
	}
	fmt.Fprintf(w, "Commands: %s\n", strings.Join(parts, ", "))
}

func helpMarkdown(entries []HelpEntry) string {
	var b strings.Builder
	b.WriteString("## Commands\n\n| Key | Action |\n|-----|--------|\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| `%s` | %s |\n", e.Key, e.Description)
	}
	b.WriteString("| `!<cmd>` | Run a shell command |\n")
	b.WriteString("\nPress **Tab** after typing part of a package name to complete it.\n")
	return b.String()
}

func helpPlain(entries []HelpEntry) string {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key))
	}
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-*s", width, e.Key)), e.Description)
	}
	fmt.Fprintf(&b, "  %s  %s\n", keyStyle.Render("!<cmd>"), "Run a shell command")
	return b.String()
}

package session

import (
	"fmt"
	"strings"

	"github.com/quocvuong92/archie/internal/constants"
	"github.com/quocvuong92/archie/internal/display"
	"github.com/quocvuong92/archie/internal/executor"
)

// Tag identifies a vocabulary entry
type Tag int

const (
	TagUpdate Tag = iota + 1
	TagInstall
	TagRemove
	TagPurge
	TagSearch
	TagClean
	TagOrphans
	TagHelp
	TagQuit
)

// Command is one single-letter entry of the command vocabulary
type Command struct {
	Key         string
	Tag         Tag
	Description string
	// Prompt is the secondary prompt for the argument; empty when none is needed
	Prompt string
	// Verb is zero for commands handled by the session itself
	Verb executor.Verb
	// Progress is printed before dispatch; %s receives the argument
	Progress string
	// Exec reports whether the command may be used with -e
	Exec bool
}

// Commands is the full vocabulary in help order
var Commands = []Command{
	{Key: "u", Tag: TagUpdate, Description: "Update system", Verb: executor.VerbUpgrade, Progress: "Updating system packages...", Exec: true},
	{Key: "i", Tag: TagInstall, Description: "Install package", Prompt: constants.PackagePrompt, Verb: executor.VerbInstall, Progress: "Installing %s...", Exec: true},
	{Key: "r", Tag: TagRemove, Description: "Remove package", Prompt: constants.PackagePrompt, Verb: executor.VerbRemove, Progress: "Removing %s...", Exec: true},
	{Key: "p", Tag: TagPurge, Description: "Purge package", Prompt: constants.PackagePrompt, Verb: executor.VerbPurge, Progress: "Purging %s...", Exec: true},
	{Key: "s", Tag: TagSearch, Description: "Search packages", Prompt: constants.SearchPrompt, Verb: executor.VerbSearch, Exec: true},
	{Key: "c", Tag: TagClean, Description: "Clean cache", Verb: executor.VerbClean, Progress: "Cleaning package cache...", Exec: true},
	{Key: "o", Tag: TagOrphans, Description: "Remove orphans", Verb: executor.VerbRemoveOrphans, Progress: "Removing orphaned packages...", Exec: true},
	{Key: "h", Tag: TagHelp, Description: "Show help", Exec: true},
	{Key: "q", Tag: TagQuit, Description: "Quit"},
}

// Lookup finds the command for key. Keys are matched exactly.
func Lookup(key string) (Command, bool) {
	for _, c := range Commands {
		if c.Key == key {
			return c, true
		}
	}
	return Command{}, false
}

// NeedsArg reports whether the command prompts for an argument
func (c Command) NeedsArg() bool {
	return c.Prompt != ""
}

// ProgressMessage returns the line printed before dispatch, or ""
func (c Command) ProgressMessage(arg string) string {
	if c.Progress == "" {
		return ""
	}
	if strings.Contains(c.Progress, "%s") {
		return fmt.Sprintf(c.Progress, arg)
	}
	return c.Progress
}

// ExecKeys lists the keys accepted by -e, separated by '|'
func ExecKeys() string {
	keys := make([]string, 0, len(Commands))
	for _, c := range Commands {
		if c.Exec {
			keys = append(keys, c.Key)
		}
	}
	return strings.Join(keys, "|")
}

func helpEntries(execOnly bool) []display.HelpEntry {
	entries := make([]display.HelpEntry, 0, len(Commands))
	for _, c := range Commands {
		if execOnly && !c.Exec {
			continue
		}
		entries = append(entries, display.HelpEntry{Key: c.Key, Description: c.Description})
	}
	return entries
}

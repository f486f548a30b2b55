package executor

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidTarget is returned for arguments the manager would misread.
var ErrInvalidTarget = errors.New("invalid package name")

// ValidateTarget checks the argument of an action before it reaches the
// manager's argv. A leading '-' would be parsed as a flag; control
// characters never appear in package names or search terms.
func ValidateTarget(verb Verb, arg string) error {
	if !verb.NeedsArg() {
		return nil
	}

	if strings.TrimSpace(arg) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidTarget)
	}

	if verb == VerbShell {
		return nil
	}

	if strings.HasPrefix(arg, "-") {
		return fmt.Errorf("%w: %q starts with '-'", ErrInvalidTarget, arg)
	}

	for _, r := range arg {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains control characters", ErrInvalidTarget, arg)
		}
		if verb != VerbSearch && unicode.IsSpace(r) {
			return fmt.Errorf("%w: %q contains whitespace", ErrInvalidTarget, arg)
		}
	}

	return nil
}

// GetTargetDescription returns a human-readable description of what an
// action's argument names
func GetTargetDescription(verb Verb) string {
	switch verb {
	case VerbSearch:
		return "search term"
	case VerbShell:
		return "shell command"
	case VerbInstall, VerbRemove, VerbPurge:
		return "package name"
	default:
		return "none"
	}
}

package executor

import (
	"context"
	"strings"
)

// LookPathFunc resolves an executable name, like exec.LookPath
type LookPathFunc func(file string) (string, error)

// DetectManager returns the first candidate found by lookPath, or fallback
// when none is installed.
func DetectManager(lookPath LookPathFunc, candidates []string, fallback string) string {
	for _, name := range candidates {
		if _, err := lookPath(name); err == nil {
			return name
		}
	}
	return fallback
}

// ManagerVersion asks binary for its version and returns "<binary> <version>",
// taking the second word of the first output line. Any failure yields
// "<binary> unknown".
func ManagerVersion(ctx context.Context, runner Runner, binary string) string {
	unknown := binary + " unknown"

	out, err := runner.Output(ctx, binary, "--version")
	if err != nil {
		return unknown
	}

	first, _, _ := strings.Cut(string(out), "\n")
	fields := strings.Fields(first)
	if len(fields) < 2 {
		return unknown
	}
	return binary + " " + fields[1]
}

package logging

import (
	"errors"
	"os/exec"
	"strings"
	"time"
)

// ProcessLogger provides invocation logging for external processes
type ProcessLogger struct {
	logger  *FieldLogger
	maxArgs int
}

// NewProcessLogger creates a new process logger
func NewProcessLogger(logger *FieldLogger) *ProcessLogger {
	return &ProcessLogger{
		logger:  logger,
		maxArgs: 32, // orphan removal can expand to hundreds of names
	}
}

// LogStart logs a process launch
func (p *ProcessLogger) LogStart(name string, args []string) {
	p.logger.Debug("Process start", Fields{
		"command": name,
		"args":    truncateArgs(args, p.maxArgs),
	})
}

// LogExit logs a process completion
func (p *ProcessLogger) LogExit(name string, err error, duration time.Duration) {
	fields := Fields{
		"command":     name,
		"duration_ms": duration.Milliseconds(),
		"exit_code":   ExitCode(err),
	}
	if err != nil {
		p.logger.Warn("Process failed", fields, Fields{"error": err.Error()})
		return
	}
	p.logger.Debug("Process exit", fields)
}

// ExitCode extracts the exit status from a process error.
// It returns 0 for nil and -1 when the process never ran.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// truncateArgs joins args for logging, eliding everything past max
func truncateArgs(args []string, max int) string {
	if max <= 0 || len(args) <= max {
		return strings.Join(args, " ")
	}
	return strings.Join(args[:max], " ") + " ...[truncated]"
}

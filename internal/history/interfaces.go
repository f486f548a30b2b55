// Package history provides the in-memory command history for interactive sessions.
package history

// Recorder defines the interface for recording submitted lines.
// This interface enables dependency injection and easier testing.
type Recorder interface {
	// Add appends a submitted line
	Add(line string)

	// Entries returns a copy of all lines, oldest first
	Entries() []string
}

// Ensure concrete type implements the interface
var _ Recorder = (*History)(nil)

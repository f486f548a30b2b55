package display

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows progress while something slow (like loading the package catalog) runs
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a spinner writing to w
func NewSpinner(w io.Writer, message string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	return &Spinner{s: s}
}

// Start begins the animation
func (sp *Spinner) Start() {
	sp.s.Start()
}

// Stop halts the animation and clears the line
func (sp *Spinner) Stop() {
	sp.s.Stop()
}

package session

import (
	"errors"

	"github.com/quocvuong92/archie/internal/executor"
)

// ErrInterrupted is returned by a LineReader when the user presses Ctrl-C
// or Ctrl-D instead of submitting a line.
var ErrInterrupted = errors.New("interrupted")

// ErrUnknownCommand is returned by RunOnce for keys outside the -e vocabulary
var ErrUnknownCommand = errors.New("unknown command")

// LineReader reads one edited line at a time. Implementations return
// ErrInterrupted (or io.EOF) when the user abandons the prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	AppendHistory(line string)
}

// Guard vetoes actions before they reach the dispatcher
type Guard interface {
	Check(a executor.Action) error
}

package lineeditor

import (
	"errors"
	"io"

	"golang.org/x/term"
)

// ErrNotTerminal means standard input cannot drive a line editor
var ErrNotTerminal = errors.New("standard input is not a terminal")

var errEndOfInput = io.EOF

// IsTerminal reports whether fd is a terminal
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// CheckTerminal returns ErrNotTerminal unless fd is a terminal
func CheckTerminal(fd uintptr) error {
	if !IsTerminal(fd) {
		return ErrNotTerminal
	}
	return nil
}

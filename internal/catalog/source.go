package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned by a source whose output is not UTF-8.
var ErrInvalidEncoding = errors.New("source output is not valid UTF-8")

// Source supplies candidate package names, one per element.
type Source interface {
	// Name identifies the source in logs
	Name() string

	// Lines returns the raw lines of the source
	Lines(ctx context.Context) ([]string, error)
}

// OutputFunc runs a command and returns its captured standard output.
type OutputFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// CommandSource reads names from the output of an external command,
// such as the system package registry.
type CommandSource struct {
	Binary string
	Args   []string
	Output OutputFunc
}

// Name identifies the source in logs
func (s CommandSource) Name() string {
	return strings.TrimSpace(s.Binary + " " + strings.Join(s.Args, " "))
}

// Lines runs the command and splits its output into lines
func (s CommandSource) Lines(ctx context.Context) ([]string, error) {
	if s.Output == nil {
		return nil, fmt.Errorf("%s: no output function", s.Name())
	}
	out, err := s.Output(ctx, s.Binary, s.Args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name(), err)
	}
	if !utf8.Valid(out) {
		return nil, fmt.Errorf("%s: %w", s.Name(), ErrInvalidEncoding)
	}
	return splitLines(string(out)), nil
}

// FileSource reads names from a newline separated file. A missing file is
// treated as empty.
type FileSource struct {
	Path string
}

// Name identifies the source in logs
func (s FileSource) Name() string {
	return s.Path
}

// Lines reads the file and splits it into lines
func (s FileSource) Lines(_ context.Context) ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", s.Path, ErrInvalidEncoding)
	}
	return splitLines(string(data)), nil
}

// StaticSource is a fixed list of names.
type StaticSource []string

// Name identifies the source in logs
func (s StaticSource) Name() string {
	return "static"
}

// Lines returns the fixed names
func (s StaticSource) Lines(_ context.Context) ([]string, error) {
	return []string(s), nil
}

// splitLines splits on \n and strips a trailing \r from each line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

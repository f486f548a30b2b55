package session

import (
	"context"
	"errors"
	"io"

	"github.com/quocvuong92/archie/internal/executor"
	"github.com/quocvuong92/archie/internal/history"
)

// fakeReader serves scripted lines and reports io.EOF once they run out
type fakeReader struct {
	lines   []string
	errs    map[int]error // error returned instead of the line at this read index
	prompts []string
	history *history.History
	onRead  func()
}

func newFakeReader(lines ...string) *fakeReader {
	return &fakeReader{lines: lines, errs: make(map[int]error), history: history.NewHistory()}
}

func (f *fakeReader) ReadLine(prompt string) (string, error) {
	if f.onRead != nil {
		f.onRead()
	}
	idx := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	if err, ok := f.errs[idx]; ok {
		return "", err
	}
	if idx >= len(f.lines) {
		return "", io.EOF
	}
	return f.lines[idx], nil
}

func (f *fakeReader) AppendHistory(line string) {
	f.history.Add(line)
}

// fakeDispatcher records actions
type fakeDispatcher struct {
	actions    []executor.Action
	err        error
	onDispatch func()
}

func (f *fakeDispatcher) Dispatch(_ context.Context, a executor.Action) error {
	f.actions = append(f.actions, a)
	if f.onDispatch != nil {
		f.onDispatch()
	}
	return f.err
}

var errBroken = errors.New("terminal went away")

// fakeGuard refuses actions on the listed arguments
type fakeGuard map[string]bool

func (g fakeGuard) Check(a executor.Action) error {
	if g[a.Arg] {
		return errors.New("protected package")
	}
	return nil
}

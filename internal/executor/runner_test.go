package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mvdan.cc/sh/v3/interp"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestProcessRunner_RunAttachesStreams(t *testing.T) {
	requireSh(t)
	var stdout, stderr bytes.Buffer
	r := NewProcessRunner(nil).WithStreams(strings.NewReader("typed\n"), &stdout, &stderr)

	err := r.Run(context.Background(), "sh", "-c", `read line; echo "got $line"; echo oops >&2`)
	require.NoError(t, err)
	assert.Equal(t, "got typed\n", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}

func TestProcessRunner_RunNonZeroExit(t *testing.T) {
	requireSh(t)
	r := NewProcessRunner(nil).WithStreams(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	var exitErr *exec.ExitError
	err := r.Run(context.Background(), "sh", "-c", "exit 2")
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode())
}

func TestProcessRunner_Output(t *testing.T) {
	requireSh(t)
	r := NewProcessRunner(nil)

	out, err := r.Output(context.Background(), "sh", "-c", "printf 'glibc\\nmesa\\n'; echo noise >&2")
	require.NoError(t, err)
	assert.Equal(t, "glibc\nmesa\n", string(out))
}

func TestProcessRunner_MissingBinary(t *testing.T) {
	r := NewProcessRunner(nil)
	_, err := r.Output(context.Background(), "archie-definitely-not-installed")
	assert.Error(t, err)
}

// readyWriter closes ready once marker has been written
type readyWriter struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	marker string
	ready  chan struct{}
	once   sync.Once
}

func (w *readyWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n, err := w.buf.Write(p)
	if strings.Contains(w.buf.String(), w.marker) {
		w.once.Do(func() { close(w.ready) })
	}
	return n, err
}

func (w *readyWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestProcessRunner_CancelInterruptsChild(t *testing.T) {
	requireSh(t)
	out := &readyWriter{marker: "started", ready: make(chan struct{})}
	r := NewProcessRunner(nil).WithStreams(strings.NewReader(""), out, &bytes.Buffer{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	go func() {
		<-out.ready
		cancel()
	}()

	err := r.Run(ctx, "sh", "-c", `trap 'echo cleaned up; exit 130' INT; echo started; while :; do sleep 1; done`)
	require.Error(t, err)
	assert.Contains(t, out.String(), "cleaned up")
}

func TestChildReported(t *testing.T) {
	requireSh(t)
	exitErr := exec.Command("sh", "-c", "exit 4").Run()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"process exit", exitErr, true},
		{"wrapped process exit", fmt.Errorf("failed: %w", exitErr), true},
		{"shell exit", interp.NewExitStatus(3), true},
		{"missing binary", &exec.Error{Name: "paru", Err: exec.ErrNotFound}, false},
		{"plain error", errors.New("no shell runner configured"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChildReported(tt.err))
		})
	}
}

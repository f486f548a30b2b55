package display

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	renderer     *glamour.TermRenderer
	rendererErr  error
	rendererOnce sync.Once
)

// InitRenderer builds the markdown renderer. Safe to call more than once.
func InitRenderer() error {
	rendererOnce.Do(func() {
		renderer, rendererErr = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
	})
	return rendererErr
}

// RenderMarkdown renders md for the terminal
func RenderMarkdown(md string) (string, error) {
	if err := InitRenderer(); err != nil {
		return "", err
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEntries = []HelpEntry{
	{Key: "u", Description: "Update system"},
	{Key: "i", Description: "Install package"},
	{Key: "q", Description: "Quit"},
}

func TestShowHelp_Plain(t *testing.T) {
	var buf bytes.Buffer
	ShowHelp(&buf, testEntries, false)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Commands:\n"))
	for _, e := range testEntries {
		assert.Contains(t, out, e.Description)
	}
	assert.Contains(t, out, "Run a shell command")
}

func TestShowHelp_Rendered(t *testing.T) {
	var buf bytes.Buffer
	ShowHelp(&buf, testEntries, true)

	out := buf.String()
	for _, e := range testEntries {
		assert.Contains(t, out, e.Description)
	}
}

func TestShowCommandsLine(t *testing.T) {
	var buf bytes.Buffer
	ShowCommandsLine(&buf, testEntries)
	assert.Equal(t, "Commands: u - Update system, i - Install package, q - Quit\n", buf.String())
}

func TestShowWelcome(t *testing.T) {
	var buf bytes.Buffer
	ShowWelcome(&buf, "3.3.0")
	assert.Equal(t, "\nWelcome to Archie v3.3.0\nType 'h' for help\n\n", buf.String())
}

func TestShowBanner(t *testing.T) {
	var buf bytes.Buffer
	ShowBanner(&buf, "3.3.0", "paru v2.0.4")

	out := buf.String()
	assert.Contains(t, out, "Archie v3.3.0")
	assert.Contains(t, out, "Package manager: paru v2.0.4")
}

func TestShowBanner_NoManager(t *testing.T) {
	var buf bytes.Buffer
	ShowBanner(&buf, "3.3.0", "")
	assert.NotContains(t, buf.String(), "Package manager")
}

func TestShowErrorTo(t *testing.T) {
	var buf bytes.Buffer
	ShowErrorTo(&buf, "boom")
	assert.Contains(t, buf.String(), "Error: boom")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("**bold** text")
	require.NoError(t, err)
	assert.Contains(t, out, "bold")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestSpinner_StartStop(t *testing.T) {
	var buf bytes.Buffer
	sp := NewSpinner(&buf, "Loading packages...")
	sp.Start()
	sp.Stop()
}

// Package lineeditor reads lines from the terminal with history and
// package-name completion.
package lineeditor

import (
	"strings"

	prompt "github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"
	"github.com/samber/lo"

	"github.com/quocvuong92/archie/internal/history"
	"github.com/quocvuong92/archie/internal/session"
)

// CompleteFunc returns every completion candidate for line
type CompleteFunc func(line string) []string

// Options configures an Editor
type Options struct {
	Complete CompleteFunc
	History  history.Recorder
	// MaxSuggestions caps the candidates handed to the menu; 0 means no cap
	MaxSuggestions int
	// VisibleSuggestions is the height of the completion menu
	VisibleSuggestions uint16
	// Reader and Writer replace the terminal; nil means stdin and stdout
	Reader prompt.Reader
	Writer prompt.Writer
}

// Editor is a session.LineReader backed by go-prompt
type Editor struct {
	complete       CompleteFunc
	history        history.Recorder
	maxSuggestions int
	visible        uint16
	reader         prompt.Reader
	writer         prompt.Writer

	interrupted bool
	submitted   bool
}

var _ session.LineReader = (*Editor)(nil)

// New creates an Editor
func New(opts Options) *Editor {
	hist := opts.History
	if hist == nil {
		hist = history.NewHistory()
	}
	visible := opts.VisibleSuggestions
	if visible == 0 {
		visible = 10
	}
	return &Editor{
		complete:       opts.Complete,
		history:        hist,
		maxSuggestions: opts.MaxSuggestions,
		visible:        visible,
		reader:         opts.Reader,
		writer:         opts.Writer,
	}
}

// ReadLine shows prefix and returns the submitted line. Ctrl-C returns
// session.ErrInterrupted; Ctrl-D on an empty line returns io.EOF.
func (e *Editor) ReadLine(prefix string) (string, error) {
	e.interrupted = false
	e.submitted = false

	opts := []prompt.Option{
		prompt.WithPrefix(prefix),
		prompt.WithCompleter(e.completer),
		prompt.WithHistory(e.history.Entries()),
		prompt.WithPrefixTextColor(prompt.Green),
		prompt.WithSuggestionBGColor(prompt.DarkBlue),
		prompt.WithSuggestionTextColor(prompt.White),
		prompt.WithSelectedSuggestionBGColor(prompt.Cyan),
		prompt.WithSelectedSuggestionTextColor(prompt.Black),
		prompt.WithScrollbarBGColor(prompt.DarkGray),
		prompt.WithScrollbarThumbColor(prompt.White),
		prompt.WithMaxSuggestion(e.visible),
		prompt.WithCompletionOnDown(),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return e.interrupted
		}),
		// go-prompt exits on Ctrl-D with an empty buffer before key binds
		// run, so end of input is recognized by Input returning unsubmitted.
		prompt.WithExecuteOnEnterCallback(func(p *prompt.Prompt, indentSize int) (int, bool) {
			e.submitted = true
			return 0, true
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(p *prompt.Prompt) bool {
				e.interrupted = true
				return false
			},
		}),
	}
	if e.reader != nil {
		opts = append(opts, prompt.WithReader(e.reader))
	}
	if e.writer != nil {
		opts = append(opts, prompt.WithWriter(e.writer))
	}

	line := prompt.New(func(string) {}, opts...).Input()
	switch {
	case e.interrupted:
		return "", session.ErrInterrupted
	case !e.submitted:
		return "", errEndOfInput
	}
	return line, nil
}

// AppendHistory records line for up-arrow recall
func (e *Editor) AppendHistory(line string) {
	e.history.Add(line)
}

func (e *Editor) completer(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	endIndex := d.CurrentRuneIndex()
	return e.suggestions(d.TextBeforeCursor()), 0, endIndex
}

// suggestions completes the whole line typed so far. Nothing is offered
// for an empty line or a shell escape.
func (e *Editor) suggestions(text string) []prompt.Suggest {
	if e.complete == nil || strings.TrimSpace(text) == "" || strings.HasPrefix(text, "!") {
		return []prompt.Suggest{}
	}
	matches := e.complete(text)
	if e.maxSuggestions > 0 && len(matches) > e.maxSuggestions {
		matches = matches[:e.maxSuggestions]
	}
	return lo.Map(matches, func(name string, _ int) prompt.Suggest {
		return prompt.Suggest{Text: name}
	})
}

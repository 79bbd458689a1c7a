// Package prompter collects interactive input for the shell: single
// labeled fields, multiline bodies terminated by sentinel lines, and
// exact-match confirmations.
package prompter

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	gherrors "github.com/hubsh/hubsh/internal/errors"
)

// Sentinel lines recognized inside a multiline body. Matching is exact:
// a line containing anything else, even surrounding spaces, is body text.
const (
	// BodyEnd finishes the body, keeping what was typed so far.
	BodyEnd = "EOF"
	// BodyCancel aborts the dialog. The caller must not act on the
	// partial input.
	BodyCancel = "QUIT"
)

// ErrInterrupted is returned by a LineReader when the user interrupts
// the current line (Ctrl-C) without closing the input stream.
var ErrInterrupted = errors.New("interrupted")

// LineReader reads one line at a time under a given prompt.
// Implementations own any terminal state and release it in Close.
type LineReader interface {
	// Line displays the prompt and returns the next input line without
	// its trailing newline. It returns io.EOF when the input stream
	// ends and ErrInterrupted on a line interrupt.
	Line(prompt string) (string, error)

	// AppendHistory records a line in the reader's recall history.
	AppendHistory(line string)

	Close() error
}

// Prompter runs the interactive sub-dialogs on top of a LineReader.
type Prompter struct {
	reader LineReader
	caser  cases.Caser
}

// New creates a Prompter reading from the given LineReader.
func New(reader LineReader) *Prompter {
	return &Prompter{
		reader: reader,
		caser:  cases.Title(language.English),
	}
}

// Fields prompts once per label, in order, and returns the collected
// values keyed by label. Values are not validated here; empty input is
// kept as an empty string.
func (p *Prompter) Fields(labels ...string) (map[string]string, error) {
	values := make(map[string]string, len(labels))
	for _, label := range labels {
		line, err := p.reader.Line(p.caser.String(label) + ": ")
		if err != nil {
			return nil, gherrors.ErrCancelled
		}
		values[label] = line
	}
	return values, nil
}

// Field prompts for a single labeled value.
func (p *Prompter) Field(label string) (string, error) {
	line, err := p.reader.Line(p.caser.String(label) + ": ")
	if err != nil {
		return "", gherrors.ErrCancelled
	}
	return line, nil
}

// Body collects a multiline body. Each line is appended until a line
// equal to BodyEnd stops the collection; the lines are newline-joined.
// A line equal to BodyCancel aborts with ErrCancelled, as does loss of
// the input stream mid-dialog.
func (p *Prompter) Body() (string, error) {
	var lines []string
	for {
		line, err := p.reader.Line("> ")
		if err != nil {
			return "", gherrors.ErrCancelled
		}
		switch line {
		case BodyEnd:
			return strings.Join(lines, "\n"), nil
		case BodyCancel:
			return "", gherrors.ErrCancelled
		default:
			lines = append(lines, line)
		}
	}
}

// TitledBody prompts for a single-line field named by label, then
// collects a multiline body. Used by the issue dialogs where a title
// precedes the body.
func (p *Prompter) TitledBody(label string) (title, body string, err error) {
	title, err = p.Field(label)
	if err != nil {
		return "", "", err
	}
	body, err = p.Body()
	if err != nil {
		return "", "", err
	}
	return title, body, nil
}

// Confirm displays promptText and reports whether the reply matches
// expected exactly. Any read failure counts as a refusal.
func (p *Prompter) Confirm(promptText, expected string) (bool, error) {
	line, err := p.reader.Line(promptText)
	if err != nil {
		return false, gherrors.ErrCancelled
	}
	return line == expected, nil
}

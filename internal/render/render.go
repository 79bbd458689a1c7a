// Package render turns command results into terminal output: indented
// JSON for structured values, verbatim text for raw blobs, and the
// taxonomy's messages for failures.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	gherrors "github.com/hubsh/hubsh/internal/errors"
	"github.com/hubsh/hubsh/internal/pager"
)

// AuthHint is printed when the API reports missing authentication.
const AuthHint = "Authentication required. Run 'login <login> <token>' or 'loadcfg'."

// Renderer writes results and errors for the shell. Structured values
// keep the API's field names through JSON tags, get colorized on
// terminals, and go through the pager; raw blob content is passed
// through untouched. The most recent result is kept for the copy
// command.
type Renderer struct {
	// Out receives messages and errors. Results go through the pager.
	Out io.Writer

	// Color enables syntax highlighting and styled messages.
	Color bool

	Styles *Styles

	// Pager carries result output. Must be set; New wires it up.
	Pager *pager.Pager

	last string
}

// New creates a Renderer writing to stdout through the given pager.
// Color defaults to whether stdout is a terminal.
func New(p *pager.Pager) *Renderer {
	return &Renderer{
		Out:    os.Stdout,
		Color:  isatty.IsTerminal(os.Stdout.Fd()),
		Styles: DefaultStyles(),
		Pager:  p,
	}
}

// Show renders a structured value as indented JSON.
func (r *Renderer) Show(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	text := string(data)
	r.last = text

	if r.Color {
		var buf strings.Builder
		if herr := quick.Highlight(&buf, text, "json", "terminal256", "monokai"); herr == nil {
			text = buf.String()
		}
	}
	return r.Pager.Page(text)
}

// ShowRaw prints blob content verbatim, without formatting or color.
func (r *Renderer) ShowRaw(content []byte) error {
	r.last = string(content)
	return r.Pager.Page(string(content))
}

// LastOutput returns the most recently shown result, uncolored.
func (r *Renderer) LastOutput() string {
	return r.last
}

// Page writes long informational text through the pager without
// recording it as a result.
func (r *Renderer) Page(text string) error {
	return r.Pager.Page(text)
}

// Banner prints a startup banner line.
func (r *Renderer) Banner(text string) {
	fmt.Fprintln(r.Out, r.paint(r.Styles.Banner, text))
}

// Text prints a plain line.
func (r *Renderer) Text(format string, args ...any) {
	fmt.Fprintf(r.Out, format+"\n", args...)
}

// Success prints a confirmation line.
func (r *Renderer) Success(format string, args ...any) {
	fmt.Fprintln(r.Out, r.paint(r.Styles.Success, fmt.Sprintf(format, args...)))
}

// Info prints a secondary informational line.
func (r *Renderer) Info(format string, args ...any) {
	fmt.Fprintln(r.Out, r.paint(r.Styles.Muted, fmt.Sprintf(format, args...)))
}

// Fail prints the message for a failed command. Cancelled dialogs print
// nothing: returning to the prompt is the only feedback. A missing-
// authentication failure is replaced by a fixed hint naming login and
// loadcfg; everything else prints its own message.
func (r *Renderer) Fail(err error) {
	switch {
	case err == nil:
		return
	case gherrors.IsCancelled(err):
		return
	case gherrors.IsAuthRequired(err):
		r.errorln(AuthHint)
	default:
		r.errorln(err.Error())
	}
}

func (r *Renderer) errorln(msg string) {
	fmt.Fprintln(r.Out, r.paint(r.Styles.Error, msg))
}

// Paint applies style when color is enabled and returns s unchanged
// otherwise.
func (r *Renderer) Paint(style lipgloss.Style, s string) string {
	return r.paint(style, s)
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.Color {
		return s
	}
	return style.Render(s)
}

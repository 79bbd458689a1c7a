// Package pager pipes command output through an external paging
// program.
package pager

import (
	"io"
	"os"
	"os/exec"
	"strings"
)

// EnvPager is consulted first when picking the paging program, before
// the conventional PAGER variable.
const EnvPager = "HUBSH_PAGER"

// Pager writes blocks of output, through an external paging program
// when one is available. The subprocess lives for a single Page call:
// started, written to, and waited on before control returns.
type Pager struct {
	// Command is the paging program with its arguments, empty for
	// direct output.
	Command string

	// Out receives direct (unpaged) output. Defaults to stdout.
	Out io.Writer
}

// New picks the paging program from the environment.
func New() *Pager {
	return &Pager{Command: Detect(), Out: os.Stdout}
}

// Detect resolves the paging command: $HUBSH_PAGER, then $PAGER, then
// the first of less/more found in PATH, then none.
func Detect() string {
	return Select("")
}

// Select resolves the paging command like Detect, with configured
// slotted in after $HUBSH_PAGER. Same precedence order git uses for
// core.pager.
func Select(configured string) string {
	if cmd := os.Getenv(EnvPager); cmd != "" {
		return cmd
	}
	if configured != "" {
		return configured
	}
	if cmd := os.Getenv("PAGER"); cmd != "" {
		return cmd
	}
	for _, candidate := range []string{"less", "more"} {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Page writes text through the paging program. When no pager is
// configured, or the pager cannot run, the text is printed directly
// instead.
func (p *Pager) Page(text string) error {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if p.Command == "" {
		_, err := io.WriteString(out, text)
		return err
	}

	parts := strings.Fields(p.Command)
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	cmd.Env = forceLessBehavior(os.Environ())

	if err := cmd.Run(); err != nil {
		_, werr := io.WriteString(out, text)
		return werr
	}
	return nil
}

// forceLessBehavior overrides LESS so the pager quits by itself on
// output shorter than the screen (F), passes color codes through (R),
// and leaves the screen contents in place on exit (X).
func forceLessBehavior(env []string) []string {
	filtered := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if strings.HasPrefix(kv, "LESS=") {
			continue
		}
		filtered = append(filtered, kv)
	}
	return append(filtered, "LESS=FRX")
}

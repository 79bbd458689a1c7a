package shell

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubsh/hubsh/internal/github"
	"github.com/hubsh/hubsh/internal/pager"
	"github.com/hubsh/hubsh/internal/prompter"
	"github.com/hubsh/hubsh/internal/render"
	"github.com/hubsh/hubsh/internal/session"
)

// fixture wires a Shell to a scripted reader, a shared mock client and
// a captured output buffer. The factory hands out the same mock on
// every build and records each Config it was asked for.
type fixture struct {
	shell   *Shell
	mock    *github.MockClient
	reader  *prompter.ScriptReader
	out     *bytes.Buffer
	configs []github.Config
}

type stubCreds struct {
	login, token string
	err          error
}

func (s stubCreds) Credentials(ctx context.Context) (string, string, error) {
	return s.login, s.token, s.err
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testRenderer(buf *bytes.Buffer) *render.Renderer {
	return &render.Renderer{
		Out:    buf,
		Color:  false,
		Styles: render.DefaultStyles(),
		Pager:  &pager.Pager{Out: buf},
	}
}

func newFixture(t *testing.T, lines ...string) *fixture {
	t.Helper()

	f := &fixture{
		mock:   github.NewMockClient(),
		reader: prompter.NewScript(lines...),
		out:    &bytes.Buffer{},
	}

	factory := func(cfg github.Config) github.Client {
		f.configs = append(f.configs, cfg)
		return f.mock
	}

	opts := Options{
		Factory:  factory,
		Renderer: testRenderer(f.out),
		Reader:   f.reader,
		Log:      quietLog(),
		Version:  "test",
	}

	sh, err := New(opts)
	require.NoError(t, err)
	f.shell = sh
	return f
}

// run drives the REPL over the scripted lines until EOF or an exit
// command.
func (f *fixture) run(t *testing.T) {
	t.Helper()
	require.NoError(t, f.shell.Run(context.Background()))
}

func TestNewRequiresFactoryAndRenderer(t *testing.T) {
	_, err := New(Options{Renderer: testRenderer(&bytes.Buffer{})})
	assert.Error(t, err)

	_, err = New(Options{Factory: func(github.Config) github.Client { return nil }})
	assert.Error(t, err)
}

func TestRunBannerAndExit(t *testing.T) {
	f := newFixture(t, "q")

	f.run(t)

	assert.Contains(t, f.out.String(), "hubsh test")
	assert.Contains(t, f.out.String(), "Type '?' for help")
}

func TestRunExitAliases(t *testing.T) {
	for _, cmd := range []string{"q", "exit", "quit"} {
		t.Run(cmd, func(t *testing.T) {
			f := newFixture(t, cmd, "status")

			f.run(t)

			// The loop stopped before reaching the second line.
			assert.NotContains(t, f.out.String(), "Repository:")
		})
	}
}

func TestRunEndOfInputEndsLoop(t *testing.T) {
	f := newFixture(t) // no lines: first read hits EOF

	f.run(t)
}

func TestRunEmptyLinesIgnored(t *testing.T) {
	f := newFixture(t, "", "   ", "\t", "q")

	f.run(t)

	assert.Equal(t, []string{"q"}, f.reader.History)
	assert.NotContains(t, f.out.String(), "Unknown command")
}

func TestRunAppendsHistoryAfterDispatch(t *testing.T) {
	f := newFixture(t, "status", "bogus", "q")

	f.run(t)

	// Unknown commands still make it into history.
	assert.Equal(t, []string{"status", "bogus", "q"}, f.reader.History)
}

// interruptOnce returns ErrInterrupted for the first read, then
// delegates, imitating a Ctrl-C at the main prompt.
type interruptOnce struct {
	prompter.LineReader
	done bool
}

func (r *interruptOnce) Line(prompt string) (string, error) {
	if !r.done {
		r.done = true
		return "", prompter.ErrInterrupted
	}
	return r.LineReader.Line(prompt)
}

func TestRunInterruptAtPromptContinues(t *testing.T) {
	script := prompter.NewScript("status", "q")
	out := &bytes.Buffer{}
	sh, err := New(Options{
		Factory:  func(github.Config) github.Client { return github.NewMockClient() },
		Renderer: testRenderer(out),
		Reader:   &interruptOnce{LineReader: script},
		Log:      quietLog(),
	})
	require.NoError(t, err)

	require.NoError(t, sh.Run(context.Background()))

	assert.Contains(t, out.String(), "Repository: none")
}

func TestRunPromptTracksRepoSelection(t *testing.T) {
	f := newFixture(t, "repo octocat hello", "q")

	f.run(t)

	require.GreaterOrEqual(t, len(f.reader.Prompts), 2)
	assert.Equal(t, session.DefaultPrompt, f.reader.Prompts[0])
	assert.Equal(t, "octocat/hello> ", f.reader.Prompts[1])
}

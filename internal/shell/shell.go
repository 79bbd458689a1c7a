// Package shell implements the interactive command loop: a dispatch
// table of mnemonic commands (r.show, i.open, u.follow, ...), the
// session they act on, and the interactive sub-dialogs some of them
// run before calling the API.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hubsh/hubsh/internal/github"
	"github.com/hubsh/hubsh/internal/prompter"
	"github.com/hubsh/hubsh/internal/render"
	"github.com/hubsh/hubsh/internal/session"
)

// CredentialSource yields the login/token pair for loadcfg. The
// gitconfig package provides the real one backed by git's global
// configuration.
type CredentialSource interface {
	Credentials(ctx context.Context) (login, token string, err error)
}

// Options configures a Shell. Factory and Renderer are required;
// Reader defaults to a terminal line editor with command completion,
// Log to a fresh logger, Version to "dev".
type Options struct {
	Factory  github.Factory
	Renderer *render.Renderer
	Reader   prompter.LineReader
	Creds    CredentialSource
	Log      *logrus.Logger
	Version  string
}

// Shell owns the session and runs the read/dispatch loop. It is
// single-threaded: one line is read, dispatched and rendered before
// the next read, and the session is only ever touched between reads.
type Shell struct {
	session  *session.Session
	reader   prompter.LineReader
	prompt   *prompter.Prompter
	renderer *render.Renderer
	creds    CredentialSource
	log      *logrus.Logger
	version  string

	commands map[string]*command
	order    []string
	quit     bool
}

// New creates a Shell with its full command table registered.
func New(opts Options) (*Shell, error) {
	if opts.Factory == nil {
		return nil, errors.New("shell: client factory is required")
	}
	if opts.Renderer == nil {
		return nil, errors.New("shell: renderer is required")
	}
	log := opts.Log
	if log == nil {
		log = logrus.New()
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	sh := &Shell{
		session:  session.New(opts.Factory),
		reader:   opts.Reader,
		renderer: opts.Renderer,
		creds:    opts.Creds,
		log:      log,
		version:  version,
	}
	sh.registerCommands()

	if sh.reader == nil {
		reader, err := prompter.NewTerm(sh.Names()...)
		if err != nil {
			return nil, fmt.Errorf("shell: %w", err)
		}
		sh.reader = reader
	}
	sh.prompt = prompter.New(sh.reader)

	return sh, nil
}

// Session exposes the shell's session, mainly for tests.
func (sh *Shell) Session() *session.Session {
	return sh.session
}

// Run reads and dispatches lines until an exit command or the end of
// the input stream. Both end the loop normally.
func (sh *Shell) Run(ctx context.Context) error {
	sh.banner()

	for {
		line, err := sh.reader.Line(sh.session.Prompt())
		switch {
		case errors.Is(err, io.EOF):
			sh.renderer.Text("")
			return nil
		case errors.Is(err, prompter.ErrInterrupted):
			continue
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		sh.dispatch(ctx, trimmed)
		sh.reader.AppendHistory(trimmed)

		if sh.quit {
			return nil
		}
	}
}

// Close releases the line reader's terminal state.
func (sh *Shell) Close() error {
	return sh.reader.Close()
}

func (sh *Shell) banner() {
	sh.renderer.Banner(fmt.Sprintf("hubsh %s - interactive GitHub shell", sh.version))
	sh.renderer.Info("Type '?' for help, 'q' to quit.")
}

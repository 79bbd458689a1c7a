// Package gitconfig reads stored GitHub credentials from the global
// git configuration.
package gitconfig

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Common errors
var (
	ErrGitNotInstalled = errors.New("git is not installed or not in PATH")
	ErrNoCredentials   = errors.New("github.user and github.token are not set in the global git config")
)

// Keys looked up in the global git configuration.
const (
	UserKey  = "github.user"
	TokenKey = "github.token"
)

// Source reads credential values through a git Commander.
type Source struct {
	cmd Commander
}

// New creates a Source backed by the git executable found in PATH.
func New() (*Source, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, ErrGitNotInstalled
	}
	return &Source{cmd: &execCommander{gitPath: gitPath}}, nil
}

// NewWithCommander creates a Source with a custom commander, for tests.
func NewWithCommander(cmd Commander) *Source {
	return &Source{cmd: cmd}
}

// Get returns one global config value. Unset keys yield an empty
// string: git exits non-zero for them, and that is the normal state
// before credentials have been stored.
func (s *Source) Get(ctx context.Context, key string) string {
	value, err := s.cmd.Output(ctx, "config", "--global", key)
	if err != nil {
		return ""
	}
	return value
}

// Credentials returns the stored login and token pair. ErrNoCredentials
// is returned when either key is missing or empty.
func (s *Source) Credentials(ctx context.Context) (login, token string, err error) {
	login = s.Get(ctx, UserKey)
	token = s.Get(ctx, TokenKey)
	if login == "" || token == "" {
		return "", "", ErrNoCredentials
	}
	return login, token, nil
}

// execCommander runs the real git binary.
type execCommander struct {
	gitPath string
}

func (c *execCommander) Output(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.gitPath, args...)
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// Package session tracks the shell's active repository selection,
// credentials, and the API client derived from them.
package session

import (
	"fmt"
	"regexp"

	gherrors "github.com/hubsh/hubsh/internal/errors"
	"github.com/hubsh/hubsh/internal/github"
)

// DefaultPrompt is shown until a repository is selected.
const DefaultPrompt = "github> "

// namePart matches one segment of a repository reference. A slash can
// never appear inside a segment, so "owner/name" typed where two words
// are expected is rejected rather than split.
var namePart = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Session is the shell's mutable state: the active repository, the
// credentials, and the API client derived from them. The client is
// rebuilt through the factory whenever either input changes and stays
// nil until at least one of them is set. It is owned by the command
// loop and passed explicitly into handlers.
type Session struct {
	Owner string
	Repo  string
	Login string
	Token string

	build  github.Factory
	client github.Client
}

// New creates an empty session whose clients are built by the given
// factory.
func New(build github.Factory) *Session {
	return &Session{build: build}
}

// SelectRepo sets the active repository. Both parts must consist of
// letters, digits, dashes or underscores. On failure the current
// selection and client are left untouched.
func (s *Session) SelectRepo(owner, name string) error {
	if !namePart.MatchString(owner) {
		return gherrors.NewValidationError("repository",
			fmt.Sprintf("invalid owner %q (allowed: letters, digits, '-' and '_')", owner))
	}
	if !namePart.MatchString(name) {
		return gherrors.NewValidationError("repository",
			fmt.Sprintf("invalid name %q (allowed: letters, digits, '-' and '_')", name))
	}

	s.Owner = owner
	s.Repo = name
	s.rebuild()
	return nil
}

// Authenticate stores the credentials. If a repository was selected
// earlier the rebuilt client keeps it; otherwise the client's owner
// defaults to the login so user-scoped commands work without a repo.
func (s *Session) Authenticate(login, token string) error {
	if login == "" || token == "" {
		return gherrors.NewValidationError("credentials",
			"login and token must both be non-empty")
	}

	s.Login = login
	s.Token = token
	s.rebuild()
	return nil
}

// rebuild replaces the derived client. The previous one is discarded,
// never mutated in place.
func (s *Session) rebuild() {
	owner := s.Owner
	if owner == "" {
		owner = s.Login
	}
	s.client = s.build(github.Config{
		Login: s.Login,
		Token: s.Token,
		Owner: owner,
		Repo:  s.Repo,
	})
}

// Client returns the current API client, or nil while the session is
// anonymous.
func (s *Session) Client() github.Client {
	return s.client
}

// HasRepo reports whether a repository has been selected.
func (s *Session) HasRepo() bool {
	return s.Repo != ""
}

// Authenticated reports whether credentials have been set.
func (s *Session) Authenticated() bool {
	return s.Token != ""
}

// Prompt derives the REPL prompt from the active repository.
func (s *Session) Prompt() string {
	if s.HasRepo() {
		return fmt.Sprintf("%s/%s> ", s.Owner, s.Repo)
	}
	return DefaultPrompt
}

// MaskToken returns a masked version of the token for display
func MaskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "****" + token[len(token)-4:]
}

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gherrors "github.com/hubsh/hubsh/internal/errors"
	"github.com/hubsh/hubsh/internal/github"
)

// recordingFactory captures every config passed to it and returns a
// fresh mock per call so client replacement is observable.
type recordingFactory struct {
	configs []github.Config
	clients []*github.MockClient
}

func (f *recordingFactory) build(cfg github.Config) github.Client {
	f.configs = append(f.configs, cfg)
	client := github.NewMockClient()
	f.clients = append(f.clients, client)
	return client
}

func newTestSession() (*Session, *recordingFactory) {
	f := &recordingFactory{}
	return New(f.build), f
}

func TestNewSessionIsAnonymous(t *testing.T) {
	s, f := newTestSession()

	assert.Nil(t, s.Client())
	assert.False(t, s.HasRepo())
	assert.False(t, s.Authenticated())
	assert.Equal(t, DefaultPrompt, s.Prompt())
	assert.Empty(t, f.configs, "no client should be built for an empty session")
}

func TestSelectRepo(t *testing.T) {
	s, f := newTestSession()

	err := s.SelectRepo("octocat", "hello-world")
	require.NoError(t, err)

	assert.Equal(t, "octocat", s.Owner)
	assert.Equal(t, "hello-world", s.Repo)
	assert.True(t, s.HasRepo())
	assert.False(t, s.Authenticated())
	assert.Equal(t, "octocat/hello-world> ", s.Prompt())

	require.Len(t, f.configs, 1)
	assert.Equal(t, github.Config{Owner: "octocat", Repo: "hello-world"}, f.configs[0])
	assert.NotNil(t, s.Client())
}

func TestSelectRepoInvalid(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		repo  string
	}{
		{name: "slash in owner", owner: "octo/cat", repo: "repo"},
		{name: "dot in name", owner: "octocat", repo: "hello.world"},
		{name: "empty owner", owner: "", repo: "repo"},
		{name: "empty name", owner: "octocat", repo: ""},
		{name: "space in name", owner: "octocat", repo: "hello world"},
		{name: "url typed instead of owner", owner: "https:", repo: "repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := newTestSession()

			err := s.SelectRepo(tt.owner, tt.repo)

			require.Error(t, err)
			assert.True(t, gherrors.IsUsage(err))
			assert.Empty(t, s.Owner, "selection must not change on bad input")
			assert.Empty(t, s.Repo)
			assert.Nil(t, s.Client())
			assert.Empty(t, f.configs, "no client must be built on bad input")
			assert.Equal(t, DefaultPrompt, s.Prompt())
		})
	}
}

func TestSelectRepoErrorNamesBadInput(t *testing.T) {
	s, _ := newTestSession()

	err := s.SelectRepo("bad.owner", "repo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.owner")
}

func TestSelectRepoKeepsPreviousOnFailure(t *testing.T) {
	s, f := newTestSession()
	require.NoError(t, s.SelectRepo("octocat", "hello-world"))

	err := s.SelectRepo("bad.owner", "x")

	require.Error(t, err)
	assert.Equal(t, "octocat", s.Owner)
	assert.Equal(t, "hello-world", s.Repo)
	assert.Len(t, f.configs, 1, "failed selection must not rebuild the client")
	assert.Same(t, f.clients[0], s.Client())
}

func TestAuthenticate(t *testing.T) {
	s, f := newTestSession()

	err := s.Authenticate("octocat", "ghp_secret1234567890")
	require.NoError(t, err)

	assert.True(t, s.Authenticated())
	assert.False(t, s.HasRepo())
	assert.Equal(t, DefaultPrompt, s.Prompt(), "prompt only changes with a repo selection")

	require.Len(t, f.configs, 1)
	// With no repo selected the client's owner defaults to the login
	assert.Equal(t, github.Config{
		Login: "octocat",
		Token: "ghp_secret1234567890",
		Owner: "octocat",
	}, f.configs[0])
	assert.NotNil(t, s.Client())
}

func TestAuthenticateRejectsEmptyParts(t *testing.T) {
	tests := []struct {
		name  string
		login string
		token string
	}{
		{name: "empty token", login: "octocat", token: ""},
		{name: "empty login", login: "", token: "tok"},
		{name: "both empty", login: "", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := newTestSession()

			err := s.Authenticate(tt.login, tt.token)

			require.Error(t, err)
			assert.True(t, gherrors.IsUsage(err))
			assert.False(t, s.Authenticated())
			assert.Nil(t, s.Client())
			assert.Empty(t, f.configs)
		})
	}
}

func TestLoginAfterRepoKeepsSelection(t *testing.T) {
	s, f := newTestSession()
	require.NoError(t, s.SelectRepo("octocat", "hello-world"))
	require.NoError(t, s.Authenticate("someone", "tok_1234567890"))

	require.Len(t, f.configs, 2)
	last := f.configs[1]
	assert.Equal(t, "octocat", last.Owner, "existing selection wins over the login fallback")
	assert.Equal(t, "hello-world", last.Repo)
	assert.Equal(t, "someone", last.Login)
	assert.Equal(t, "tok_1234567890", last.Token)

	// The client is replaced, not mutated
	assert.Same(t, f.clients[1], s.Client())
	assert.NotSame(t, f.clients[0], s.Client())
}

func TestRepoAfterLoginKeepsCredentials(t *testing.T) {
	s, f := newTestSession()
	require.NoError(t, s.Authenticate("octocat", "tok_1234567890"))
	require.NoError(t, s.SelectRepo("rails", "rails"))

	require.Len(t, f.configs, 2)
	last := f.configs[1]
	assert.Equal(t, "rails", last.Owner)
	assert.Equal(t, "rails", last.Repo)
	assert.Equal(t, "octocat", last.Login)
	assert.Equal(t, "tok_1234567890", last.Token)
	assert.Equal(t, "rails/rails> ", s.Prompt())
}

func TestRepoSwitchLeavesNoResidue(t *testing.T) {
	s, f := newTestSession()
	require.NoError(t, s.SelectRepo("owner-a", "repo-a"))
	require.NoError(t, s.SelectRepo("owner-b", "repo-b"))

	require.Len(t, f.configs, 2)
	assert.Equal(t, github.Config{Owner: "owner-b", Repo: "repo-b"}, f.configs[1])
	assert.Same(t, f.clients[1], s.Client())
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "long token", token: "ghp_abcdefghij1234", expected: "ghp_****1234"},
		{name: "short token", token: "secret", expected: "****"},
		{name: "exactly eight", token: "12345678", expected: "****"},
		{name: "empty", token: "", expected: "****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskToken(tt.token))
		})
	}
}

package gitconfig

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("git is installed", func(t *testing.T) {
		// Skip if git is not installed on the test system
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git is not installed")
		}

		s, err := New()
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("git not found returns error", func(t *testing.T) {
		// Save and modify PATH to exclude git
		originalPath := os.Getenv("PATH")
		defer os.Setenv("PATH", originalPath)

		os.Setenv("PATH", "/nonexistent")

		s, err := New()
		assert.ErrorIs(t, err, ErrGitNotInstalled)
		assert.Nil(t, s)
	})
}

func configValues(values map[string]string) *MockCommander {
	mock := NewMockCommander()
	mock.OutputFunc = func(ctx context.Context, args ...string) (string, error) {
		key := args[len(args)-1]
		if value, ok := values[key]; ok {
			return value, nil
		}
		// git exits non-zero for unset keys
		return "", errors.New("exit status 1")
	}
	return mock
}

func TestGet(t *testing.T) {
	t.Run("reads a global key", func(t *testing.T) {
		mock := configValues(map[string]string{"github.user": "octocat"})
		s := NewWithCommander(mock)

		value := s.Get(context.Background(), "github.user")

		assert.Equal(t, "octocat", value)
		require.Len(t, mock.Calls, 1)
		assert.Equal(t, []string{"config", "--global", "github.user"}, mock.Calls[0].Args)
	})

	t.Run("unset key yields empty string", func(t *testing.T) {
		mock := configValues(nil)
		s := NewWithCommander(mock)

		value := s.Get(context.Background(), "github.user")

		assert.Equal(t, "", value)
	})
}

func TestCredentials(t *testing.T) {
	t.Run("both keys present", func(t *testing.T) {
		mock := configValues(map[string]string{
			"github.user":  "octocat",
			"github.token": "ghp_secret1234567890",
		})
		s := NewWithCommander(mock)

		login, token, err := s.Credentials(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "octocat", login)
		assert.Equal(t, "ghp_secret1234567890", token)
		assert.Equal(t, 2, mock.CallCount("Output"))
	})

	t.Run("missing token", func(t *testing.T) {
		mock := configValues(map[string]string{"github.user": "octocat"})
		s := NewWithCommander(mock)

		login, token, err := s.Credentials(context.Background())

		assert.ErrorIs(t, err, ErrNoCredentials)
		assert.Empty(t, login)
		assert.Empty(t, token)
	})

	t.Run("missing user", func(t *testing.T) {
		mock := configValues(map[string]string{"github.token": "ghp_secret"})
		s := NewWithCommander(mock)

		_, _, err := s.Credentials(context.Background())

		assert.ErrorIs(t, err, ErrNoCredentials)
	})

	t.Run("empty values count as missing", func(t *testing.T) {
		mock := configValues(map[string]string{
			"github.user":  "",
			"github.token": "ghp_secret",
		})
		s := NewWithCommander(mock)

		_, _, err := s.Credentials(context.Background())

		assert.ErrorIs(t, err, ErrNoCredentials)
	})
}

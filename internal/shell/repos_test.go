package shell

import (
	"context"
	"testing"

	gh "github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubsh/hubsh/internal/github"
)

func TestRepoShow(t *testing.T) {
	t.Run("uses the selected repository", func(t *testing.T) {
		f := newFixture(t, "repo octocat hello", "r.show", "q")
		f.mock.ReposGetFunc = func(ctx context.Context, owner, repo string) (*gh.Repository, error) {
			return &gh.Repository{FullName: gh.Ptr(owner + "/" + repo)}, nil
		}

		f.run(t)

		require.Equal(t, 1, f.mock.CallCount("Repos.Get"))
		assert.Equal(t, []any{"octocat", "hello"}, f.mock.Calls[0].Args)
		assert.Contains(t, f.out.String(), `"full_name": "octocat/hello"`)
	})

	t.Run("explicit arguments override the selection", func(t *testing.T) {
		f := newFixture(t, "login octocat t0ken", "r.show torvalds linux", "q")

		f.run(t)

		require.Equal(t, 1, f.mock.CallCount("Repos.Get"))
		assert.Equal(t, []any{"torvalds", "linux"}, f.mock.Calls[0].Args)
	})

	t.Run("no selection and no arguments", func(t *testing.T) {
		f := newFixture(t, "login octocat t0ken", "r.show", "q")

		f.run(t)

		assert.Contains(t, f.out.String(), "no repository selected")
		assert.Zero(t, f.mock.CallCount("Repos.Get"))
	})

	t.Run("single argument is a usage error", func(t *testing.T) {
		f := newFixture(t, "login octocat t0ken", "r.show torvalds", "q")

		f.run(t)

		assert.Contains(t, f.out.String(), "usage: r.show")
		assert.Zero(t, f.mock.CallCount("Repos.Get"))
	})
}

func TestRepoList(t *testing.T) {
	f := newFixture(t, "login octocat t0ken", "r.list torvalds", "q")
	f.mock.ReposListFunc = func(ctx context.Context, user string) ([]*gh.Repository, error) {
		return []*gh.Repository{{Name: gh.Ptr("linux")}}, nil
	}

	f.run(t)

	require.Equal(t, 1, f.mock.CallCount("Repos.List"))
	assert.Equal(t, []any{"torvalds"}, f.mock.Calls[0].Args)
	assert.Contains(t, f.out.String(), `"name": "linux"`)
}

func TestRepoSearch(t *testing.T) {
	t.Run("searches repositories, not issues", func(t *testing.T) {
		f := newFixture(t, "login octocat t0ken", "r.search compiler", "q")

		f.run(t)

		assert.Equal(t, 1, f.mock.CallCount("Repos.Search"))
		assert.Zero(t, f.mock.CallCount("Issues.Search"))
	})

	t.Run("missing word is a usage error", func(t *testing.T) {
		f := newFixture(t, "login octocat t0ken", "r.search", "q")

		f.run(t)

		assert.Contains(t, f.out.String(), "usage: r.search")
		assert.Zero(t, f.mock.CallCount("Repos.Search"))
	})
}

func TestRepoFork(t *testing.T) {
	t.Run("shows the fork", func(t *testing.T) {
		f := newFixture(t, "login octocat t0ken", "repo torvalds linux", "r.fork", "q")
		f.mock.ReposForkFunc = func(ctx context.Context) (*gh.Repository, error) {
			return &gh.Repository{FullName: gh.Ptr("octocat/linux")}, nil
		}

		f.run(t)

		assert.Contains(t, f.out.String(), `"full_name": "octocat/linux"`)
	})

	t.Run("queued fork without a body", func(t *testing.T) {
		f := newFixture(t, "login octocat t0ken", "repo torvalds linux", "r.fork", "q")

		f.run(t)

		assert.Contains(t, f.out.String(), "Fork of torvalds/linux queued.")
	})
}

func TestRepoCreate(t *testing.T) {
	t.Run("collects fields and creates", func(t *testing.T) {
		f := newFixture(t, "login octocat t0ken", "r.create",
			"hubsh", "A github shell", "https://hubsh.dev", "q")
		var gotName, gotDesc, gotHome string
		f.mock.ReposCreateFunc = func(ctx context.Context, name, description, homepage string) (*gh.Repository, error) {
			gotName, gotDesc, gotHome = name, description, homepage
			return &gh.Repository{Name: gh.Ptr(name)}, nil
		}

		f.run(t)

		assert.Equal(t, "hubsh", gotName)
		assert.Equal(t, "A github shell", gotDesc)
		assert.Equal(t, "https://hubsh.dev", gotHome)
		assert.Contains(t, f.reader.Prompts, "Name: ")
		assert.Contains(t, f.reader.Prompts, "Description: ")
		assert.Contains(t, f.reader.Prompts, "Homepage: ")
	})

	t.Run("empty name aborts before the call", func(t *testing.T) {
		f := newFixture(t, "login octocat t0ken", "r.create", "", "desc", "home", "q")

		f.run(t)

		assert.Contains(t, f.out.String(), "a repository name is required")
		assert.Zero(t, f.mock.CallCount("Repos.Create"))
	})
}

func TestRepoDelete(t *testing.T) {
	t.Run("deletes after exact confirmation", func(t *testing.T) {
		f := newFixture(t, "login octocat t0ken", "repo octocat hello", "r.delete", "octocat/hello", "q")

		f.run(t)

		assert.Equal(t, 1, f.mock.CallCount("Repos.Delete"))
		assert.Contains(t, f.out.String(), "Deleted octocat/hello.")
	})

	t.Run("anything else aborts", func(t *testing.T) {
		f := newFixture(t, "login octocat t0ken", "repo octocat hello", "r.delete", "yes", "q")

		f.run(t)

		assert.Zero(t, f.mock.CallCount("Repos.Delete"))
		assert.Contains(t, f.out.String(), "Aborted.")
	})

	t.Run("needs a selected repository", func(t *testing.T) {
		f := newFixture(t, "login octocat t0ken", "r.delete", "q")

		f.run(t)

		assert.Contains(t, f.out.String(), "no repository selected")
		assert.Zero(t, f.mock.CallCount("Repos.Delete"))
	})
}

func TestRepoVisibility(t *testing.T) {
	f := newFixture(t, "login octocat t0ken", "repo octocat hello",
		"r.set_private", "r.set_public", "q")
	f.mock.ReposSetPrivateFunc = func(ctx context.Context) (*gh.Repository, error) {
		return &gh.Repository{Private: gh.Ptr(true)}, nil
	}
	f.mock.ReposSetPublicFunc = func(ctx context.Context) (*gh.Repository, error) {
		return &gh.Repository{Private: gh.Ptr(false)}, nil
	}

	f.run(t)

	assert.Equal(t, 1, f.mock.CallCount("Repos.SetPrivate"))
	assert.Equal(t, 1, f.mock.CallCount("Repos.SetPublic"))
}

func TestRepoListings(t *testing.T) {
	f := newFixture(t, "repo octocat hello", "r.network", "r.tags", "r.branches", "q")

	f.run(t)

	assert.Equal(t, 1, f.mock.CallCount("Repos.Network"))
	assert.Equal(t, 1, f.mock.CallCount("Repos.Tags"))
	assert.Equal(t, 1, f.mock.CallCount("Repos.Branches"))
}

func TestRepoWatchUnwatch(t *testing.T) {
	f := newFixture(t, "login octocat t0ken", "repo octocat hello", "r.watch", "r.unwatch", "q")
	f.mock.ReposWatchFunc = func(ctx context.Context) (*gh.Subscription, error) {
		return &gh.Subscription{Subscribed: gh.Ptr(true)}, nil
	}

	f.run(t)

	assert.Equal(t, 1, f.mock.CallCount("Repos.Watch"))
	assert.Equal(t, 1, f.mock.CallCount("Repos.Unwatch"))
	assert.Contains(t, f.out.String(), "No longer watching octocat/hello.")
}

// findCall returns the first recorded call with the given method.
func findCall(t *testing.T, mock *github.MockClient, method string) github.MockCall {
	t.Helper()
	for _, call := range mock.Calls {
		if call.Method == method {
			return call
		}
	}
	t.Fatalf("no %s call recorded", method)
	return github.MockCall{}
}

// Package github provides interfaces and implementation for GitHub API operations
package github

import (
	"context"

	gh "github.com/google/go-github/v68/github"
)

// Config identifies the repository and credentials a client is built
// for. A client is immutable: when the session's repository or
// credentials change, a new client is built from a new Config and the
// old one is discarded.
type Config struct {
	Login string
	Token string
	Owner string
	Repo  string
}

// Factory builds a Client from a Config. The session holds one so
// tests can substitute a mock.
type Factory func(Config) Client

// Client is the capability surface the shell dispatches against. Every
// operation the command table can reach exists here as a typed method;
// call targets are never assembled from strings.
type Client interface {
	// Repos returns repository operations
	Repos() ReposService

	// Issues returns issue operations for the bound repository
	Issues() IssuesService

	// Users returns user and profile operations
	Users() UsersService

	// Commits returns commit listing operations for the bound repository
	Commits() CommitsService

	// Objects returns git object (tree/blob) operations for the bound repository
	Objects() ObjectsService

	// Network returns legacy network-graph operations for the bound repository
	Network() NetworkService

	// GetRateLimit returns the current rate limit status
	GetRateLimit(ctx context.Context) (*gh.RateLimits, error)
}

// ReposService covers the r.* commands. Operations that accept an
// explicit target take owner/repo or user parameters; the rest act on
// the repository bound at construction.
type ReposService interface {
	Get(ctx context.Context, owner, repo string) (*gh.Repository, error)
	List(ctx context.Context, user string) ([]*gh.Repository, error)
	Search(ctx context.Context, word string) (*gh.RepositoriesSearchResult, error)
	Watch(ctx context.Context) (*gh.Subscription, error)
	Unwatch(ctx context.Context) error
	Fork(ctx context.Context) (*gh.Repository, error)
	Create(ctx context.Context, name, description, homepage string) (*gh.Repository, error)
	Delete(ctx context.Context) error
	SetPrivate(ctx context.Context) (*gh.Repository, error)
	SetPublic(ctx context.Context) (*gh.Repository, error)
	Network(ctx context.Context) ([]*gh.Repository, error)
	Tags(ctx context.Context) ([]*gh.RepositoryTag, error)
	Branches(ctx context.Context) ([]*gh.Branch, error)
}

// IssuesService covers the i.* commands, all bound to the configured
// repository.
type IssuesService interface {
	List(ctx context.Context, state string) ([]*gh.Issue, error)
	Get(ctx context.Context, number int) (*gh.Issue, error)
	Search(ctx context.Context, state, word string) (*gh.IssuesSearchResult, error)
	Create(ctx context.Context, title, body string) (*gh.Issue, error)
	Edit(ctx context.Context, number int, title, body string) (*gh.Issue, error)
	SetState(ctx context.Context, number int, state string) (*gh.Issue, error)
	AddLabel(ctx context.Context, number int, label string) ([]*gh.Label, error)
	RemoveLabel(ctx context.Context, number int, label string) error
	Comment(ctx context.Context, number int, body string) (*gh.IssueComment, error)
}

// UsersService covers the u.* commands. An empty login means the
// authenticated user.
type UsersService interface {
	Search(ctx context.Context, word string) (*gh.UsersSearchResult, error)
	Get(ctx context.Context, login string) (*gh.User, error)
	Update(ctx context.Context, field, value string) (*gh.User, error)
	Followers(ctx context.Context) ([]*gh.User, error)
	Following(ctx context.Context) ([]*gh.User, error)
	Follow(ctx context.Context, login string) error
	Unfollow(ctx context.Context, login string) error
	Keys(ctx context.Context) ([]*gh.Key, error)
	AddKey(ctx context.Context, title, key string) (*gh.Key, error)
	DeleteKey(ctx context.Context, id int64) error
}

// CommitsService covers the c.* commands, bound to the configured
// repository.
type CommitsService interface {
	ListBranch(ctx context.Context, branch string) ([]*gh.RepositoryCommit, error)
	ListFile(ctx context.Context, branch, path string) ([]*gh.RepositoryCommit, error)
	Get(ctx context.Context, sha string) (*gh.RepositoryCommit, error)
}

// ObjectsService covers the o.* commands, bound to the configured
// repository. Raw returns blob bytes untouched; everything else
// returns structured data.
type ObjectsService interface {
	Tree(ctx context.Context, sha string) (*gh.Tree, error)
	Blob(ctx context.Context, treeSHA, path string) (*gh.Blob, error)
	Raw(ctx context.Context, sha string) ([]byte, error)
}

// NetworkService covers the n.* commands. These hit the legacy
// network-graph endpoints on github.com rather than the REST v3 host,
// so results are decoded as generic maps.
type NetworkService interface {
	Meta(ctx context.Context) (map[string]any, error)
	DataChunk(ctx context.Context, nethash string) (map[string]any, error)
}

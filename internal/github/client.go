package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	gherrors "github.com/hubsh/hubsh/internal/errors"
)

// client implements the Client interface on top of go-github
type client struct {
	ghClient *gh.Client
	owner    string
	repo     string
}

// NewClient builds a client for the given Config. With a token the
// underlying HTTP client authenticates via oauth2; without one the
// client is anonymous (read-only endpoints only, 60 req/h).
func NewClient(cfg Config) Client {
	ghClient := gh.NewClient(nil)
	if cfg.Token != "" {
		ctx := context.Background()
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Token},
		)
		ghClient = gh.NewClient(oauth2.NewClient(ctx, ts))
	}

	return &client{
		ghClient: ghClient,
		owner:    cfg.Owner,
		repo:     cfg.Repo,
	}
}

func (c *client) Repos() ReposService     { return &reposService{c} }
func (c *client) Issues() IssuesService   { return &issuesService{c} }
func (c *client) Users() UsersService     { return &usersService{c} }
func (c *client) Commits() CommitsService { return &commitsService{c} }
func (c *client) Objects() ObjectsService { return &objectsService{c} }
func (c *client) Network() NetworkService { return &networkService{c} }

// GetRateLimit returns the current rate limit status
func (c *client) GetRateLimit(ctx context.Context) (*gh.RateLimits, error) {
	rateLimits, resp, err := c.ghClient.RateLimit.Get(ctx)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return rateLimits, nil
}

type reposService struct{ c *client }

func (s *reposService) Get(ctx context.Context, owner, repo string) (*gh.Repository, error) {
	repository, resp, err := s.c.ghClient.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return repository, nil
}

// List returns all repositories for a user using iterative pagination.
// An empty user falls back to the bound owner, then to the
// authenticated user.
func (s *reposService) List(ctx context.Context, user string) ([]*gh.Repository, error) {
	if user == "" {
		user = s.c.owner
	}

	var allRepos []*gh.Repository

	if user == "" {
		opts := &gh.RepositoryListByAuthenticatedUserOptions{
			ListOptions: gh.ListOptions{Page: 1, PerPage: 100},
		}
		for {
			repos, resp, err := s.c.ghClient.Repositories.ListByAuthenticatedUser(ctx, opts)
			if err != nil {
				return nil, wrapAPIError(resp, err)
			}
			allRepos = append(allRepos, repos...)
			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return allRepos, nil
	}

	opts := &gh.RepositoryListByUserOptions{
		ListOptions: gh.ListOptions{Page: 1, PerPage: 100},
	}
	for {
		repos, resp, err := s.c.ghClient.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			return nil, wrapAPIError(resp, err)
		}
		allRepos = append(allRepos, repos...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return allRepos, nil
}

func (s *reposService) Search(ctx context.Context, word string) (*gh.RepositoriesSearchResult, error) {
	result, resp, err := s.c.ghClient.Search.Repositories(ctx, word, &gh.SearchOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return result, nil
}

func (s *reposService) Watch(ctx context.Context) (*gh.Subscription, error) {
	sub, resp, err := s.c.ghClient.Activity.SetRepositorySubscription(ctx, s.c.owner, s.c.repo, &gh.Subscription{
		Subscribed: gh.Bool(true),
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return sub, nil
}

func (s *reposService) Unwatch(ctx context.Context) error {
	resp, err := s.c.ghClient.Activity.DeleteRepositorySubscription(ctx, s.c.owner, s.c.repo)
	if err != nil {
		return wrapAPIError(resp, err)
	}
	return nil
}

// Fork creates a fork of the bound repository. GitHub forks
// asynchronously, so a 202 with the pending fork's details is treated
// as success.
func (s *reposService) Fork(ctx context.Context) (*gh.Repository, error) {
	fork, resp, err := s.c.ghClient.Repositories.CreateFork(ctx, s.c.owner, s.c.repo, nil)
	if err != nil {
		var accepted *gh.AcceptedError
		if errors.As(err, &accepted) {
			return fork, nil
		}
		return nil, wrapAPIError(resp, err)
	}
	return fork, nil
}

func (s *reposService) Create(ctx context.Context, name, description, homepage string) (*gh.Repository, error) {
	newRepo := &gh.Repository{Name: gh.String(name)}
	if description != "" {
		newRepo.Description = gh.String(description)
	}
	if homepage != "" {
		newRepo.Homepage = gh.String(homepage)
	}

	created, resp, err := s.c.ghClient.Repositories.Create(ctx, "", newRepo)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return created, nil
}

func (s *reposService) Delete(ctx context.Context) error {
	resp, err := s.c.ghClient.Repositories.Delete(ctx, s.c.owner, s.c.repo)
	if err != nil {
		return wrapAPIError(resp, err)
	}
	return nil
}

func (s *reposService) SetPrivate(ctx context.Context) (*gh.Repository, error) {
	return s.setVisibility(ctx, true)
}

func (s *reposService) SetPublic(ctx context.Context) (*gh.Repository, error) {
	return s.setVisibility(ctx, false)
}

func (s *reposService) setVisibility(ctx context.Context, private bool) (*gh.Repository, error) {
	edited, resp, err := s.c.ghClient.Repositories.Edit(ctx, s.c.owner, s.c.repo, &gh.Repository{
		Private: gh.Bool(private),
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return edited, nil
}

func (s *reposService) Network(ctx context.Context) ([]*gh.Repository, error) {
	forks, resp, err := s.c.ghClient.Repositories.ListForks(ctx, s.c.owner, s.c.repo, &gh.RepositoryListForksOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return forks, nil
}

func (s *reposService) Tags(ctx context.Context) ([]*gh.RepositoryTag, error) {
	tags, resp, err := s.c.ghClient.Repositories.ListTags(ctx, s.c.owner, s.c.repo, &gh.ListOptions{PerPage: 100})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return tags, nil
}

func (s *reposService) Branches(ctx context.Context) ([]*gh.Branch, error) {
	branches, resp, err := s.c.ghClient.Repositories.ListBranches(ctx, s.c.owner, s.c.repo, &gh.BranchListOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return branches, nil
}

type issuesService struct{ c *client }

func (s *issuesService) List(ctx context.Context, state string) ([]*gh.Issue, error) {
	issues, resp, err := s.c.ghClient.Issues.ListByRepo(ctx, s.c.owner, s.c.repo, &gh.IssueListByRepoOptions{
		State:       state,
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return issues, nil
}

func (s *issuesService) Get(ctx context.Context, number int) (*gh.Issue, error) {
	issue, resp, err := s.c.ghClient.Issues.Get(ctx, s.c.owner, s.c.repo, number)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return issue, nil
}

func (s *issuesService) Search(ctx context.Context, state, word string) (*gh.IssuesSearchResult, error) {
	query := fmt.Sprintf("repo:%s/%s state:%s %s", s.c.owner, s.c.repo, state, word)
	result, resp, err := s.c.ghClient.Search.Issues(ctx, query, &gh.SearchOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return result, nil
}

func (s *issuesService) Create(ctx context.Context, title, body string) (*gh.Issue, error) {
	issue, resp, err := s.c.ghClient.Issues.Create(ctx, s.c.owner, s.c.repo, &gh.IssueRequest{
		Title: gh.String(title),
		Body:  gh.String(body),
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return issue, nil
}

func (s *issuesService) Edit(ctx context.Context, number int, title, body string) (*gh.Issue, error) {
	issue, resp, err := s.c.ghClient.Issues.Edit(ctx, s.c.owner, s.c.repo, number, &gh.IssueRequest{
		Title: gh.String(title),
		Body:  gh.String(body),
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return issue, nil
}

func (s *issuesService) SetState(ctx context.Context, number int, state string) (*gh.Issue, error) {
	issue, resp, err := s.c.ghClient.Issues.Edit(ctx, s.c.owner, s.c.repo, number, &gh.IssueRequest{
		State: gh.String(state),
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return issue, nil
}

func (s *issuesService) AddLabel(ctx context.Context, number int, label string) ([]*gh.Label, error) {
	labels, resp, err := s.c.ghClient.Issues.AddLabelsToIssue(ctx, s.c.owner, s.c.repo, number, []string{label})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return labels, nil
}

func (s *issuesService) RemoveLabel(ctx context.Context, number int, label string) error {
	resp, err := s.c.ghClient.Issues.RemoveLabelForIssue(ctx, s.c.owner, s.c.repo, number, label)
	if err != nil {
		return wrapAPIError(resp, err)
	}
	return nil
}

func (s *issuesService) Comment(ctx context.Context, number int, body string) (*gh.IssueComment, error) {
	comment, resp, err := s.c.ghClient.Issues.CreateComment(ctx, s.c.owner, s.c.repo, number, &gh.IssueComment{
		Body: gh.String(body),
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return comment, nil
}

type usersService struct{ c *client }

func (s *usersService) Search(ctx context.Context, word string) (*gh.UsersSearchResult, error) {
	result, resp, err := s.c.ghClient.Search.Users(ctx, word, &gh.SearchOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return result, nil
}

func (s *usersService) Get(ctx context.Context, login string) (*gh.User, error) {
	user, resp, err := s.c.ghClient.Users.Get(ctx, login)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return user, nil
}

// Update edits one field of the authenticated user's profile. The
// shell restricts field to the allowed set before calling.
func (s *usersService) Update(ctx context.Context, field, value string) (*gh.User, error) {
	edit := new(gh.User)
	switch field {
	case "name":
		edit.Name = gh.String(value)
	case "email":
		edit.Email = gh.String(value)
	case "blog":
		edit.Blog = gh.String(value)
	case "company":
		edit.Company = gh.String(value)
	case "location":
		edit.Location = gh.String(value)
	default:
		return nil, fmt.Errorf("unsupported profile field %q", field)
	}

	user, resp, err := s.c.ghClient.Users.Edit(ctx, edit)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return user, nil
}

func (s *usersService) Followers(ctx context.Context) ([]*gh.User, error) {
	users, resp, err := s.c.ghClient.Users.ListFollowers(ctx, "", &gh.ListOptions{PerPage: 100})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return users, nil
}

func (s *usersService) Following(ctx context.Context) ([]*gh.User, error) {
	users, resp, err := s.c.ghClient.Users.ListFollowing(ctx, "", &gh.ListOptions{PerPage: 100})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return users, nil
}

func (s *usersService) Follow(ctx context.Context, login string) error {
	resp, err := s.c.ghClient.Users.Follow(ctx, login)
	if err != nil {
		return wrapAPIError(resp, err)
	}
	return nil
}

func (s *usersService) Unfollow(ctx context.Context, login string) error {
	resp, err := s.c.ghClient.Users.Unfollow(ctx, login)
	if err != nil {
		return wrapAPIError(resp, err)
	}
	return nil
}

func (s *usersService) Keys(ctx context.Context) ([]*gh.Key, error) {
	keys, resp, err := s.c.ghClient.Users.ListKeys(ctx, "", &gh.ListOptions{PerPage: 100})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return keys, nil
}

func (s *usersService) AddKey(ctx context.Context, title, key string) (*gh.Key, error) {
	created, resp, err := s.c.ghClient.Users.CreateKey(ctx, &gh.Key{
		Title: gh.String(title),
		Key:   gh.String(key),
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return created, nil
}

func (s *usersService) DeleteKey(ctx context.Context, id int64) error {
	resp, err := s.c.ghClient.Users.DeleteKey(ctx, id)
	if err != nil {
		return wrapAPIError(resp, err)
	}
	return nil
}

type commitsService struct{ c *client }

func (s *commitsService) ListBranch(ctx context.Context, branch string) ([]*gh.RepositoryCommit, error) {
	commits, resp, err := s.c.ghClient.Repositories.ListCommits(ctx, s.c.owner, s.c.repo, &gh.CommitsListOptions{
		SHA:         branch,
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return commits, nil
}

func (s *commitsService) ListFile(ctx context.Context, branch, path string) ([]*gh.RepositoryCommit, error) {
	commits, resp, err := s.c.ghClient.Repositories.ListCommits(ctx, s.c.owner, s.c.repo, &gh.CommitsListOptions{
		SHA:         branch,
		Path:        path,
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return commits, nil
}

func (s *commitsService) Get(ctx context.Context, sha string) (*gh.RepositoryCommit, error) {
	commit, resp, err := s.c.ghClient.Repositories.GetCommit(ctx, s.c.owner, s.c.repo, sha, nil)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return commit, nil
}

type objectsService struct{ c *client }

func (s *objectsService) Tree(ctx context.Context, sha string) (*gh.Tree, error) {
	tree, resp, err := s.c.ghClient.Git.GetTree(ctx, s.c.owner, s.c.repo, sha, false)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return tree, nil
}

// Blob resolves a path inside a tree to its blob and fetches it. The
// tree is fetched recursively so nested paths resolve in one pass.
func (s *objectsService) Blob(ctx context.Context, treeSHA, path string) (*gh.Blob, error) {
	tree, resp, err := s.c.ghClient.Git.GetTree(ctx, s.c.owner, s.c.repo, treeSHA, true)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	for _, entry := range tree.Entries {
		if entry.GetPath() != path {
			continue
		}
		blob, resp, err := s.c.ghClient.Git.GetBlob(ctx, s.c.owner, s.c.repo, entry.GetSHA())
		if err != nil {
			return nil, wrapAPIError(resp, err)
		}
		return blob, nil
	}
	return nil, fmt.Errorf("%w: no entry %q in tree %s", gherrors.ErrNotFound, path, treeSHA)
}

func (s *objectsService) Raw(ctx context.Context, sha string) ([]byte, error) {
	content, resp, err := s.c.ghClient.Git.GetBlobRaw(ctx, s.c.owner, s.c.repo, sha)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return content, nil
}

type networkService struct{ c *client }

// The network-graph endpoints predate the REST v3 API and live on
// github.com itself, so requests are built with absolute URLs.
func (s *networkService) Meta(ctx context.Context) (map[string]any, error) {
	u := fmt.Sprintf("https://github.com/%s/%s/network_meta", s.c.owner, s.c.repo)
	return s.fetch(ctx, u)
}

func (s *networkService) DataChunk(ctx context.Context, nethash string) (map[string]any, error) {
	u := fmt.Sprintf("https://github.com/%s/%s/network_data_chunk?nethash=%s",
		s.c.owner, s.c.repo, url.QueryEscape(nethash))
	return s.fetch(ctx, u)
}

func (s *networkService) fetch(ctx context.Context, u string) (map[string]any, error) {
	req, err := s.c.ghClient.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	resp, err := s.c.ghClient.Do(ctx, req, &data)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return data, nil
}

// wrapAPIError converts a GitHub API response error to our error type.
// It checks go-github typed errors first for accurate rate-limit
// detection, then falls back to status code mapping. GitHub API error
// messages are preserved in the returned error for better diagnostics.
func wrapAPIError(resp *gh.Response, err error) error {
	if err == nil {
		return nil
	}

	// Check go-github typed errors first (most reliable for rate limiting)
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return fmt.Errorf("%w: %s", gherrors.ErrRateLimited, rateLimitErr.Message)
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %s", gherrors.ErrRateLimited, abuseErr.Message)
	}

	// Extract message from GitHub ErrorResponse if available
	apiMessage := ""
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		apiMessage = ghErr.Message
	}

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}

	switch statusCode {
	case 401:
		if apiMessage != "" {
			return fmt.Errorf("%w: %s", gherrors.ErrAuthRequired, apiMessage)
		}
		return gherrors.ErrAuthRequired
	case 403:
		// 403 without a typed rate-limit error is a permission denial
		if apiMessage != "" {
			return fmt.Errorf("%w: %s", gherrors.ErrForbidden, apiMessage)
		}
		return gherrors.ErrForbidden
	case 429:
		if apiMessage != "" {
			return fmt.Errorf("%w: %s", gherrors.ErrRateLimited, apiMessage)
		}
		return gherrors.ErrRateLimited
	case 404:
		if apiMessage != "" {
			return fmt.Errorf("%w: %s", gherrors.ErrNotFound, apiMessage)
		}
		return gherrors.ErrNotFound
	default:
		msg := "API request failed"
		if apiMessage != "" {
			msg = apiMessage
		}
		return gherrors.NewAPIError(statusCode, msg, err)
	}
}

package github

import (
	"context"

	gh "github.com/google/go-github/v68/github"
)

// MockCall records a single method invocation on the mock client.
type MockCall struct {
	Method string
	Args   []any
}

// MockClient implements Client with configurable function fields for
// testing. Each method records its invocation in Calls and delegates to
// the corresponding func field if set, otherwise returns zero values.
// Method names in Calls are qualified with the service, e.g. "Repos.Get".
type MockClient struct {
	ReposGetFunc        func(ctx context.Context, owner, repo string) (*gh.Repository, error)
	ReposListFunc       func(ctx context.Context, user string) ([]*gh.Repository, error)
	ReposSearchFunc     func(ctx context.Context, word string) (*gh.RepositoriesSearchResult, error)
	ReposWatchFunc      func(ctx context.Context) (*gh.Subscription, error)
	ReposUnwatchFunc    func(ctx context.Context) error
	ReposForkFunc       func(ctx context.Context) (*gh.Repository, error)
	ReposCreateFunc     func(ctx context.Context, name, description, homepage string) (*gh.Repository, error)
	ReposDeleteFunc     func(ctx context.Context) error
	ReposSetPrivateFunc func(ctx context.Context) (*gh.Repository, error)
	ReposSetPublicFunc  func(ctx context.Context) (*gh.Repository, error)
	ReposNetworkFunc    func(ctx context.Context) ([]*gh.Repository, error)
	ReposTagsFunc       func(ctx context.Context) ([]*gh.RepositoryTag, error)
	ReposBranchesFunc   func(ctx context.Context) ([]*gh.Branch, error)

	IssuesListFunc        func(ctx context.Context, state string) ([]*gh.Issue, error)
	IssuesGetFunc         func(ctx context.Context, number int) (*gh.Issue, error)
	IssuesSearchFunc      func(ctx context.Context, state, word string) (*gh.IssuesSearchResult, error)
	IssuesCreateFunc      func(ctx context.Context, title, body string) (*gh.Issue, error)
	IssuesEditFunc        func(ctx context.Context, number int, title, body string) (*gh.Issue, error)
	IssuesSetStateFunc    func(ctx context.Context, number int, state string) (*gh.Issue, error)
	IssuesAddLabelFunc    func(ctx context.Context, number int, label string) ([]*gh.Label, error)
	IssuesRemoveLabelFunc func(ctx context.Context, number int, label string) error
	IssuesCommentFunc     func(ctx context.Context, number int, body string) (*gh.IssueComment, error)

	UsersSearchFunc    func(ctx context.Context, word string) (*gh.UsersSearchResult, error)
	UsersGetFunc       func(ctx context.Context, login string) (*gh.User, error)
	UsersUpdateFunc    func(ctx context.Context, field, value string) (*gh.User, error)
	UsersFollowersFunc func(ctx context.Context) ([]*gh.User, error)
	UsersFollowingFunc func(ctx context.Context) ([]*gh.User, error)
	UsersFollowFunc    func(ctx context.Context, login string) error
	UsersUnfollowFunc  func(ctx context.Context, login string) error
	UsersKeysFunc      func(ctx context.Context) ([]*gh.Key, error)
	UsersAddKeyFunc    func(ctx context.Context, title, key string) (*gh.Key, error)
	UsersDeleteKeyFunc func(ctx context.Context, id int64) error

	CommitsListBranchFunc func(ctx context.Context, branch string) ([]*gh.RepositoryCommit, error)
	CommitsListFileFunc   func(ctx context.Context, branch, path string) ([]*gh.RepositoryCommit, error)
	CommitsGetFunc        func(ctx context.Context, sha string) (*gh.RepositoryCommit, error)

	ObjectsTreeFunc func(ctx context.Context, sha string) (*gh.Tree, error)
	ObjectsBlobFunc func(ctx context.Context, treeSHA, path string) (*gh.Blob, error)
	ObjectsRawFunc  func(ctx context.Context, sha string) ([]byte, error)

	NetworkMetaFunc      func(ctx context.Context) (map[string]any, error)
	NetworkDataChunkFunc func(ctx context.Context, nethash string) (map[string]any, error)

	GetRateLimitFunc func(ctx context.Context) (*gh.RateLimits, error)

	// Calls records all method invocations in order
	Calls []MockCall
}

// NewMockClient creates a new mock client with no behaviors configured.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) record(method string, args ...any) {
	m.Calls = append(m.Calls, MockCall{Method: method, Args: args})
}

// CallCount returns the number of times the named method was called.
func (m *MockClient) CallCount(method string) int {
	count := 0
	for _, call := range m.Calls {
		if call.Method == method {
			count++
		}
	}
	return count
}

// Reset clears all recorded calls.
func (m *MockClient) Reset() {
	m.Calls = nil
}

func (m *MockClient) Repos() ReposService     { return &mockRepos{m} }
func (m *MockClient) Issues() IssuesService   { return &mockIssues{m} }
func (m *MockClient) Users() UsersService     { return &mockUsers{m} }
func (m *MockClient) Commits() CommitsService { return &mockCommits{m} }
func (m *MockClient) Objects() ObjectsService { return &mockObjects{m} }
func (m *MockClient) Network() NetworkService { return &mockNetwork{m} }

func (m *MockClient) GetRateLimit(ctx context.Context) (*gh.RateLimits, error) {
	m.record("GetRateLimit")
	if m.GetRateLimitFunc != nil {
		return m.GetRateLimitFunc(ctx)
	}
	return nil, nil
}

type mockRepos struct{ m *MockClient }

func (s *mockRepos) Get(ctx context.Context, owner, repo string) (*gh.Repository, error) {
	s.m.record("Repos.Get", owner, repo)
	if s.m.ReposGetFunc != nil {
		return s.m.ReposGetFunc(ctx, owner, repo)
	}
	return nil, nil
}

func (s *mockRepos) List(ctx context.Context, user string) ([]*gh.Repository, error) {
	s.m.record("Repos.List", user)
	if s.m.ReposListFunc != nil {
		return s.m.ReposListFunc(ctx, user)
	}
	return nil, nil
}

func (s *mockRepos) Search(ctx context.Context, word string) (*gh.RepositoriesSearchResult, error) {
	s.m.record("Repos.Search", word)
	if s.m.ReposSearchFunc != nil {
		return s.m.ReposSearchFunc(ctx, word)
	}
	return nil, nil
}

func (s *mockRepos) Watch(ctx context.Context) (*gh.Subscription, error) {
	s.m.record("Repos.Watch")
	if s.m.ReposWatchFunc != nil {
		return s.m.ReposWatchFunc(ctx)
	}
	return nil, nil
}

func (s *mockRepos) Unwatch(ctx context.Context) error {
	s.m.record("Repos.Unwatch")
	if s.m.ReposUnwatchFunc != nil {
		return s.m.ReposUnwatchFunc(ctx)
	}
	return nil
}

func (s *mockRepos) Fork(ctx context.Context) (*gh.Repository, error) {
	s.m.record("Repos.Fork")
	if s.m.ReposForkFunc != nil {
		return s.m.ReposForkFunc(ctx)
	}
	return nil, nil
}

func (s *mockRepos) Create(ctx context.Context, name, description, homepage string) (*gh.Repository, error) {
	s.m.record("Repos.Create", name, description, homepage)
	if s.m.ReposCreateFunc != nil {
		return s.m.ReposCreateFunc(ctx, name, description, homepage)
	}
	return nil, nil
}

func (s *mockRepos) Delete(ctx context.Context) error {
	s.m.record("Repos.Delete")
	if s.m.ReposDeleteFunc != nil {
		return s.m.ReposDeleteFunc(ctx)
	}
	return nil
}

func (s *mockRepos) SetPrivate(ctx context.Context) (*gh.Repository, error) {
	s.m.record("Repos.SetPrivate")
	if s.m.ReposSetPrivateFunc != nil {
		return s.m.ReposSetPrivateFunc(ctx)
	}
	return nil, nil
}

func (s *mockRepos) SetPublic(ctx context.Context) (*gh.Repository, error) {
	s.m.record("Repos.SetPublic")
	if s.m.ReposSetPublicFunc != nil {
		return s.m.ReposSetPublicFunc(ctx)
	}
	return nil, nil
}

func (s *mockRepos) Network(ctx context.Context) ([]*gh.Repository, error) {
	s.m.record("Repos.Network")
	if s.m.ReposNetworkFunc != nil {
		return s.m.ReposNetworkFunc(ctx)
	}
	return nil, nil
}

func (s *mockRepos) Tags(ctx context.Context) ([]*gh.RepositoryTag, error) {
	s.m.record("Repos.Tags")
	if s.m.ReposTagsFunc != nil {
		return s.m.ReposTagsFunc(ctx)
	}
	return nil, nil
}

func (s *mockRepos) Branches(ctx context.Context) ([]*gh.Branch, error) {
	s.m.record("Repos.Branches")
	if s.m.ReposBranchesFunc != nil {
		return s.m.ReposBranchesFunc(ctx)
	}
	return nil, nil
}

type mockIssues struct{ m *MockClient }

func (s *mockIssues) List(ctx context.Context, state string) ([]*gh.Issue, error) {
	s.m.record("Issues.List", state)
	if s.m.IssuesListFunc != nil {
		return s.m.IssuesListFunc(ctx, state)
	}
	return nil, nil
}

func (s *mockIssues) Get(ctx context.Context, number int) (*gh.Issue, error) {
	s.m.record("Issues.Get", number)
	if s.m.IssuesGetFunc != nil {
		return s.m.IssuesGetFunc(ctx, number)
	}
	return nil, nil
}

func (s *mockIssues) Search(ctx context.Context, state, word string) (*gh.IssuesSearchResult, error) {
	s.m.record("Issues.Search", state, word)
	if s.m.IssuesSearchFunc != nil {
		return s.m.IssuesSearchFunc(ctx, state, word)
	}
	return nil, nil
}

func (s *mockIssues) Create(ctx context.Context, title, body string) (*gh.Issue, error) {
	s.m.record("Issues.Create", title, body)
	if s.m.IssuesCreateFunc != nil {
		return s.m.IssuesCreateFunc(ctx, title, body)
	}
	return nil, nil
}

func (s *mockIssues) Edit(ctx context.Context, number int, title, body string) (*gh.Issue, error) {
	s.m.record("Issues.Edit", number, title, body)
	if s.m.IssuesEditFunc != nil {
		return s.m.IssuesEditFunc(ctx, number, title, body)
	}
	return nil, nil
}

func (s *mockIssues) SetState(ctx context.Context, number int, state string) (*gh.Issue, error) {
	s.m.record("Issues.SetState", number, state)
	if s.m.IssuesSetStateFunc != nil {
		return s.m.IssuesSetStateFunc(ctx, number, state)
	}
	return nil, nil
}

func (s *mockIssues) AddLabel(ctx context.Context, number int, label string) ([]*gh.Label, error) {
	s.m.record("Issues.AddLabel", number, label)
	if s.m.IssuesAddLabelFunc != nil {
		return s.m.IssuesAddLabelFunc(ctx, number, label)
	}
	return nil, nil
}

func (s *mockIssues) RemoveLabel(ctx context.Context, number int, label string) error {
	s.m.record("Issues.RemoveLabel", number, label)
	if s.m.IssuesRemoveLabelFunc != nil {
		return s.m.IssuesRemoveLabelFunc(ctx, number, label)
	}
	return nil
}

func (s *mockIssues) Comment(ctx context.Context, number int, body string) (*gh.IssueComment, error) {
	s.m.record("Issues.Comment", number, body)
	if s.m.IssuesCommentFunc != nil {
		return s.m.IssuesCommentFunc(ctx, number, body)
	}
	return nil, nil
}

type mockUsers struct{ m *MockClient }

func (s *mockUsers) Search(ctx context.Context, word string) (*gh.UsersSearchResult, error) {
	s.m.record("Users.Search", word)
	if s.m.UsersSearchFunc != nil {
		return s.m.UsersSearchFunc(ctx, word)
	}
	return nil, nil
}

func (s *mockUsers) Get(ctx context.Context, login string) (*gh.User, error) {
	s.m.record("Users.Get", login)
	if s.m.UsersGetFunc != nil {
		return s.m.UsersGetFunc(ctx, login)
	}
	return nil, nil
}

func (s *mockUsers) Update(ctx context.Context, field, value string) (*gh.User, error) {
	s.m.record("Users.Update", field, value)
	if s.m.UsersUpdateFunc != nil {
		return s.m.UsersUpdateFunc(ctx, field, value)
	}
	return nil, nil
}

func (s *mockUsers) Followers(ctx context.Context) ([]*gh.User, error) {
	s.m.record("Users.Followers")
	if s.m.UsersFollowersFunc != nil {
		return s.m.UsersFollowersFunc(ctx)
	}
	return nil, nil
}

func (s *mockUsers) Following(ctx context.Context) ([]*gh.User, error) {
	s.m.record("Users.Following")
	if s.m.UsersFollowingFunc != nil {
		return s.m.UsersFollowingFunc(ctx)
	}
	return nil, nil
}

func (s *mockUsers) Follow(ctx context.Context, login string) error {
	s.m.record("Users.Follow", login)
	if s.m.UsersFollowFunc != nil {
		return s.m.UsersFollowFunc(ctx, login)
	}
	return nil
}

func (s *mockUsers) Unfollow(ctx context.Context, login string) error {
	s.m.record("Users.Unfollow", login)
	if s.m.UsersUnfollowFunc != nil {
		return s.m.UsersUnfollowFunc(ctx, login)
	}
	return nil
}

func (s *mockUsers) Keys(ctx context.Context) ([]*gh.Key, error) {
	s.m.record("Users.Keys")
	if s.m.UsersKeysFunc != nil {
		return s.m.UsersKeysFunc(ctx)
	}
	return nil, nil
}

func (s *mockUsers) AddKey(ctx context.Context, title, key string) (*gh.Key, error) {
	s.m.record("Users.AddKey", title, key)
	if s.m.UsersAddKeyFunc != nil {
		return s.m.UsersAddKeyFunc(ctx, title, key)
	}
	return nil, nil
}

func (s *mockUsers) DeleteKey(ctx context.Context, id int64) error {
	s.m.record("Users.DeleteKey", id)
	if s.m.UsersDeleteKeyFunc != nil {
		return s.m.UsersDeleteKeyFunc(ctx, id)
	}
	return nil
}

type mockCommits struct{ m *MockClient }

func (s *mockCommits) ListBranch(ctx context.Context, branch string) ([]*gh.RepositoryCommit, error) {
	s.m.record("Commits.ListBranch", branch)
	if s.m.CommitsListBranchFunc != nil {
		return s.m.CommitsListBranchFunc(ctx, branch)
	}
	return nil, nil
}

func (s *mockCommits) ListFile(ctx context.Context, branch, path string) ([]*gh.RepositoryCommit, error) {
	s.m.record("Commits.ListFile", branch, path)
	if s.m.CommitsListFileFunc != nil {
		return s.m.CommitsListFileFunc(ctx, branch, path)
	}
	return nil, nil
}

func (s *mockCommits) Get(ctx context.Context, sha string) (*gh.RepositoryCommit, error) {
	s.m.record("Commits.Get", sha)
	if s.m.CommitsGetFunc != nil {
		return s.m.CommitsGetFunc(ctx, sha)
	}
	return nil, nil
}

type mockObjects struct{ m *MockClient }

func (s *mockObjects) Tree(ctx context.Context, sha string) (*gh.Tree, error) {
	s.m.record("Objects.Tree", sha)
	if s.m.ObjectsTreeFunc != nil {
		return s.m.ObjectsTreeFunc(ctx, sha)
	}
	return nil, nil
}

func (s *mockObjects) Blob(ctx context.Context, treeSHA, path string) (*gh.Blob, error) {
	s.m.record("Objects.Blob", treeSHA, path)
	if s.m.ObjectsBlobFunc != nil {
		return s.m.ObjectsBlobFunc(ctx, treeSHA, path)
	}
	return nil, nil
}

func (s *mockObjects) Raw(ctx context.Context, sha string) ([]byte, error) {
	s.m.record("Objects.Raw", sha)
	if s.m.ObjectsRawFunc != nil {
		return s.m.ObjectsRawFunc(ctx, sha)
	}
	return nil, nil
}

type mockNetwork struct{ m *MockClient }

func (s *mockNetwork) Meta(ctx context.Context) (map[string]any, error) {
	s.m.record("Network.Meta")
	if s.m.NetworkMetaFunc != nil {
		return s.m.NetworkMetaFunc(ctx)
	}
	return nil, nil
}

func (s *mockNetwork) DataChunk(ctx context.Context, nethash string) (map[string]any, error) {
	s.m.record("Network.DataChunk", nethash)
	if s.m.NetworkDataChunkFunc != nil {
		return s.m.NetworkDataChunkFunc(ctx, nethash)
	}
	return nil, nil
}

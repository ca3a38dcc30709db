package github

import (
	"context"

	"github.com/google/go-github/v71/github"
	"github.com/stretchr/testify/mock"
)

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) GetRef(ctx context.Context, owner, repo, ref string) (*github.Reference, *github.Response, error) {
	args := m.Called(ctx, owner, repo, ref)
	return args.Get(0).(*github.Reference), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockGitService) CreateRef(ctx context.Context, owner, repo string, ref *github.Reference) (*github.Reference, *github.Response, error) {
	args := m.Called(ctx, owner, repo, ref)
	return args.Get(0).(*github.Reference), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockGitService) CreateBlob(ctx context.Context, owner, repo string, blob *github.Blob) (*github.Blob, *github.Response, error) {
	args := m.Called(ctx, owner, repo, blob)
	return args.Get(0).(*github.Blob), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockGitService) GetCommit(ctx context.Context, owner, repo, sha string) (*github.Commit, *github.Response, error) {
	args := m.Called(ctx, owner, repo, sha)
	return args.Get(0).(*github.Commit), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockGitService) CreateTree(ctx context.Context, owner, repo, baseTree string, entries []*github.TreeEntry) (*github.Tree, *github.Response, error) {
	args := m.Called(ctx, owner, repo, baseTree, entries)
	return args.Get(0).(*github.Tree), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockGitService) CreateCommit(ctx context.Context, owner, repo string, commit *github.Commit, opts *github.CreateCommitOptions) (*github.Commit, *github.Response, error) {
	args := m.Called(ctx, owner, repo, commit, opts)
	return args.Get(0).(*github.Commit), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockGitService) UpdateRef(ctx context.Context, owner, repo string, ref *github.Reference, force bool) (*github.Reference, *github.Response, error) {
	args := m.Called(ctx, owner, repo, ref, force)
	return args.Get(0).(*github.Reference), args.Get(1).(*github.Response), args.Error(2)
}

type MockPRService struct {
	mock.Mock
}

func (m *MockPRService) Create(ctx context.Context, owner, repo string, pull *github.NewPullRequest) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, pull)
	return args.Get(0).(*github.PullRequest), args.Get(1).(*github.Response), args.Error(2)
}

type MockIssuesService struct {
	mock.Mock
}

func (m *MockIssuesService) Create(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error) {
	args := m.Called(ctx, owner, repo, issue)
	return args.Get(0).(*github.Issue), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockIssuesService) Edit(ctx context.Context, owner, repo string, number int, issue *github.IssueRequest) (*github.Issue, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, issue)
	return args.Get(0).(*github.Issue), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockIssuesService) Get(ctx context.Context, owner, repo string, number int) (*github.Issue, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number)
	return args.Get(0).(*github.Issue), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockIssuesService) ListByRepo(ctx context.Context, owner, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	return args.Get(0).([]*github.Issue), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockIssuesService) CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, comment)
	return args.Get(0).(*github.IssueComment), args.Get(1).(*github.Response), args.Error(2)
}

type MockRepoService struct {
	mock.Mock
}

func (m *MockRepoService) Create(ctx context.Context, org string, repo *github.Repository) (*github.Repository, *github.Response, error) {
	args := m.Called(ctx, org, repo)
	return args.Get(0).(*github.Repository), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockRepoService) Delete(ctx context.Context, owner, repo string) (*github.Response, error) {
	args := m.Called(ctx, owner, repo)
	return args.Get(0).(*github.Response), args.Error(1)
}

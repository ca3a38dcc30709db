package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/mateforge/internal/models"
	"github.com/thomas-vilte/mateforge/internal/vcs"
)

type MockClientFactory struct {
	mock.Mock
}

func (m *MockClientFactory) NewClient(token string) vcs.Client {
	args := m.Called(token)
	return args.Get(0).(vcs.Client)
}

type MockClient struct {
	mock.Mock
}

var _ vcs.Client = (*MockClient)(nil)

func (m *MockClient) GetRef(ctx context.Context, owner, repo, ref string) (*models.Reference, error) {
	args := m.Called(ctx, owner, repo, ref)
	return args.Get(0).(*models.Reference), args.Error(1)
}

func (m *MockClient) CreateRef(ctx context.Context, owner, repo, ref, sha string) (*models.Reference, error) {
	args := m.Called(ctx, owner, repo, ref, sha)
	return args.Get(0).(*models.Reference), args.Error(1)
}

func (m *MockClient) CreateBlob(ctx context.Context, owner, repo, content string) (string, error) {
	args := m.Called(ctx, owner, repo, content)
	return args.String(0), args.Error(1)
}

func (m *MockClient) GetCommit(ctx context.Context, owner, repo, sha string) (*models.Commit, error) {
	args := m.Called(ctx, owner, repo, sha)
	return args.Get(0).(*models.Commit), args.Error(1)
}

func (m *MockClient) CreateTree(ctx context.Context, owner, repo, baseTreeSHA, path, blobSHA string) (string, error) {
	args := m.Called(ctx, owner, repo, baseTreeSHA, path, blobSHA)
	return args.String(0), args.Error(1)
}

func (m *MockClient) CreateCommit(ctx context.Context, owner, repo, message, treeSHA string, parentSHAs []string) (string, error) {
	args := m.Called(ctx, owner, repo, message, treeSHA, parentSHAs)
	return args.String(0), args.Error(1)
}

func (m *MockClient) UpdateRef(ctx context.Context, owner, repo, ref, sha string) (*models.Reference, error) {
	args := m.Called(ctx, owner, repo, ref, sha)
	return args.Get(0).(*models.Reference), args.Error(1)
}

func (m *MockClient) CreatePullRequest(ctx context.Context, owner, repo, title, body, head, base string) (*models.PullRequest, error) {
	args := m.Called(ctx, owner, repo, title, body, head, base)
	return args.Get(0).(*models.PullRequest), args.Error(1)
}

func (m *MockClient) CreateIssue(ctx context.Context, owner, repo, title, body string, labels []string) (*models.Issue, error) {
	args := m.Called(ctx, owner, repo, title, body, labels)
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockClient) UpdateIssue(ctx context.Context, owner, repo string, number int, update models.IssueUpdate) (*models.Issue, error) {
	args := m.Called(ctx, owner, repo, number, update)
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockClient) ListIssues(ctx context.Context, owner, repo, state string) ([]models.Issue, error) {
	args := m.Called(ctx, owner, repo, state)
	return args.Get(0).([]models.Issue), args.Error(1)
}

func (m *MockClient) GetIssue(ctx context.Context, owner, repo string, number int) (*models.Issue, error) {
	args := m.Called(ctx, owner, repo, number)
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockClient) CreateComment(ctx context.Context, owner, repo string, number int, body string) (*models.Comment, error) {
	args := m.Called(ctx, owner, repo, number, body)
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockClient) CreateRepository(ctx context.Context, name, description string, private, autoInit bool) (*models.Repository, error) {
	args := m.Called(ctx, name, description, private, autoInit)
	return args.Get(0).(*models.Repository), args.Error(1)
}

func (m *MockClient) DeleteRepository(ctx context.Context, owner, repo string) error {
	args := m.Called(ctx, owner, repo)
	return args.Error(0)
}

type MockSuggestionGenerator struct {
	mock.Mock
}

func (m *MockSuggestionGenerator) GenerateSuggestion(ctx context.Context, task models.SuggestionTask) (string, error) {
	args := m.Called(ctx, task)
	return args.String(0), args.Error(1)
}

package server

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/mateforge/internal/models"
)

var (
	_ PullRequestCreator = (*MockPullRequestCreator)(nil)
	_ IssueManager       = (*MockIssueManager)(nil)
	_ FixSuggester       = (*MockFixSuggester)(nil)
	_ RepositoryManager  = (*MockRepositoryManager)(nil)
)

type MockPullRequestCreator struct {
	mock.Mock
}

func (m *MockPullRequestCreator) CreatePullRequest(ctx context.Context, token string, tx *models.PullRequestTransaction) (*models.PullRequest, error) {
	args := m.Called(ctx, token, tx)
	return args.Get(0).(*models.PullRequest), args.Error(1)
}

type MockIssueManager struct {
	mock.Mock
}

func (m *MockIssueManager) CreateIssue(ctx context.Context, token, owner, repo, title, body string, labels []string) (*models.Issue, error) {
	args := m.Called(ctx, token, owner, repo, title, body, labels)
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockIssueManager) UpdateIssue(ctx context.Context, token, owner, repo string, number int, update models.IssueUpdate) (*models.Issue, error) {
	args := m.Called(ctx, token, owner, repo, number, update)
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockIssueManager) ListIssues(ctx context.Context, token, owner, repo, state string) ([]models.Issue, error) {
	args := m.Called(ctx, token, owner, repo, state)
	return args.Get(0).([]models.Issue), args.Error(1)
}

type MockFixSuggester struct {
	mock.Mock
}

func (m *MockFixSuggester) SuggestFix(ctx context.Context, token string, task *models.SuggestionTask) (*models.SuggestionResult, error) {
	args := m.Called(ctx, token, task)
	return args.Get(0).(*models.SuggestionResult), args.Error(1)
}

type MockRepositoryManager struct {
	mock.Mock
}

func (m *MockRepositoryManager) CreateRepository(ctx context.Context, token, name, description string, private, autoInit bool) (*models.Repository, error) {
	args := m.Called(ctx, token, name, description, private, autoInit)
	return args.Get(0).(*models.Repository), args.Error(1)
}

func (m *MockRepositoryManager) DeleteRepository(ctx context.Context, token, owner, repo string) error {
	args := m.Called(ctx, token, owner, repo)
	return args.Error(0)
}

func (m *MockRepositoryManager) CreateBranch(ctx context.Context, token, owner, repo, branchName, sourceBranch string) (*models.Reference, error) {
	args := m.Called(ctx, token, owner, repo, branchName, sourceBranch)
	return args.Get(0).(*models.Reference), args.Error(1)
}

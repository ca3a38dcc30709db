package services

import (
	"context"

	"github.com/thomas-vilte/mateforge/internal/logger"
	"github.com/thomas-vilte/mateforge/internal/models"
	"github.com/thomas-vilte/mateforge/internal/vcs"
)

// IssueService covers the single-call issue operations: create, update and
// list. Each call builds a client for the request's token and issues exactly
// one remote call.
type IssueService struct {
	clients vcs.ClientFactory
}

type IssueOption func(*IssueService)

func WithIssueClientFactory(clients vcs.ClientFactory) IssueOption {
	return func(s *IssueService) {
		s.clients = clients
	}
}

func NewIssueService(opts ...IssueOption) *IssueService {
	s := &IssueService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *IssueService) CreateIssue(ctx context.Context, token, owner, repo, title, body string, labels []string) (*models.Issue, error) {
	log := logger.FromContext(ctx)

	ctx = context.WithoutCancel(ctx)

	issue, err := s.clients.NewClient(token).CreateIssue(ctx, owner, repo, title, body, labels)
	if err != nil {
		log.Error("failed to create issue",
			"error", err,
			"owner", owner,
			"repo", repo)
		return nil, err
	}

	log.Info("issue created",
		"owner", owner,
		"repo", repo,
		"issue_number", issue.Number,
		"issue_url", issue.HTMLURL)

	return issue, nil
}

func (s *IssueService) UpdateIssue(ctx context.Context, token, owner, repo string, number int, update models.IssueUpdate) (*models.Issue, error) {
	log := logger.FromContext(ctx)

	ctx = context.WithoutCancel(ctx)

	issue, err := s.clients.NewClient(token).UpdateIssue(ctx, owner, repo, number, update)
	if err != nil {
		log.Error("failed to update issue",
			"error", err,
			"owner", owner,
			"repo", repo,
			"issue_number", number)
		return nil, err
	}

	log.Info("issue updated",
		"owner", owner,
		"repo", repo,
		"issue_number", issue.Number,
		"state", issue.State)

	return issue, nil
}

// ListIssues works without a token for public repositories.
func (s *IssueService) ListIssues(ctx context.Context, token, owner, repo, state string) ([]models.Issue, error) {
	log := logger.FromContext(ctx)

	ctx = context.WithoutCancel(ctx)

	issues, err := s.clients.NewClient(token).ListIssues(ctx, owner, repo, state)
	if err != nil {
		log.Error("failed to list issues",
			"error", err,
			"owner", owner,
			"repo", repo,
			"state", state)
		return nil, err
	}

	log.Debug("issues listed",
		"owner", owner,
		"repo", repo,
		"state", state,
		"count", len(issues))

	return issues, nil
}

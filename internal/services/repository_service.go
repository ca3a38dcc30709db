package services

import (
	"context"

	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
	"github.com/thomas-vilte/mateforge/internal/logger"
	"github.com/thomas-vilte/mateforge/internal/models"
	"github.com/thomas-vilte/mateforge/internal/vcs"
)

// RepositoryService covers repository creation and deletion plus standalone
// branch creation.
type RepositoryService struct {
	clients vcs.ClientFactory
}

type RepositoryOption func(*RepositoryService)

func WithRepositoryClientFactory(clients vcs.ClientFactory) RepositoryOption {
	return func(s *RepositoryService) {
		s.clients = clients
	}
}

func NewRepositoryService(opts ...RepositoryOption) *RepositoryService {
	s := &RepositoryService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RepositoryService) CreateRepository(ctx context.Context, token, name, description string, private, autoInit bool) (*models.Repository, error) {
	log := logger.FromContext(ctx)

	ctx = context.WithoutCancel(ctx)

	repo, err := s.clients.NewClient(token).CreateRepository(ctx, name, description, private, autoInit)
	if err != nil {
		log.Error("failed to create repository",
			"error", err,
			"name", name)
		return nil, err
	}

	log.Info("repository created",
		"full_name", repo.FullName,
		"private", repo.Private,
		"repo_url", repo.HTMLURL)

	return repo, nil
}

func (s *RepositoryService) DeleteRepository(ctx context.Context, token, owner, repo string) error {
	log := logger.FromContext(ctx)

	ctx = context.WithoutCancel(ctx)

	if err := s.clients.NewClient(token).DeleteRepository(ctx, owner, repo); err != nil {
		log.Error("failed to delete repository",
			"error", err,
			"owner", owner,
			"repo", repo)
		return err
	}

	log.Info("repository deleted",
		"owner", owner,
		"repo", repo)

	return nil
}

// CreateBranch resolves the source branch head and creates a new branch
// pointing at it. Either step failing names the step, same discipline as
// the pull request transaction.
func (s *RepositoryService) CreateBranch(ctx context.Context, token, owner, repo, branchName, sourceBranch string) (*models.Reference, error) {
	log := logger.FromContext(ctx)

	ctx = context.WithoutCancel(ctx)

	client := s.clients.NewClient(token)

	sourceRef, err := client.GetRef(ctx, owner, repo, "heads/"+sourceBranch)
	if err != nil {
		log.Error("failed to resolve source branch",
			"error", err,
			"owner", owner,
			"repo", repo,
			"source_branch", sourceBranch)
		return nil, domainErrors.NewStepError(string(models.StepFetchSourceRef), err)
	}

	created, err := client.CreateRef(ctx, owner, repo, "refs/heads/"+branchName, sourceRef.SHA)
	if err != nil {
		log.Error("failed to create branch",
			"error", err,
			"owner", owner,
			"repo", repo,
			"branch", branchName)
		return nil, domainErrors.NewStepError(string(models.StepCreateBranch), err)
	}

	log.Info("branch created",
		"owner", owner,
		"repo", repo,
		"branch", branchName,
		"sha", created.SHA)

	return created, nil
}

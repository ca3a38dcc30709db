package server

import (
	"context"

	"github.com/thomas-vilte/mateforge/internal/models"
)

type (
	// PullRequestCreator runs the multi-step pull request transaction.
	PullRequestCreator interface {
		CreatePullRequest(ctx context.Context, token string, tx *models.PullRequestTransaction) (*models.PullRequest, error)
	}

	// IssueManager covers the single-call issue operations.
	IssueManager interface {
		CreateIssue(ctx context.Context, token, owner, repo, title, body string, labels []string) (*models.Issue, error)
		UpdateIssue(ctx context.Context, token, owner, repo string, number int, update models.IssueUpdate) (*models.Issue, error)
		ListIssues(ctx context.Context, token, owner, repo, state string) ([]models.Issue, error)
	}

	// FixSuggester runs the fetch-generate-post suggestion flow.
	FixSuggester interface {
		SuggestFix(ctx context.Context, token string, task *models.SuggestionTask) (*models.SuggestionResult, error)
	}

	// RepositoryManager covers repository lifecycle and standalone branch
	// creation.
	RepositoryManager interface {
		CreateRepository(ctx context.Context, token, name, description string, private, autoInit bool) (*models.Repository, error)
		DeleteRepository(ctx context.Context, token, owner, repo string) error
		CreateBranch(ctx context.Context, token, owner, repo, branchName, sourceBranch string) (*models.Reference, error)
	}
)

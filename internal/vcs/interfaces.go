package vcs

import (
	"context"

	"github.com/thomas-vilte/mateforge/internal/models"
)

// Client defines the methods to talk to the API of a Git hosting provider.
// Every call is scoped to the owner/repo it receives and authenticated with
// the token the client was built for. One method issues exactly one remote
// call; nothing is retried or cached.
type Client interface {
	// GetRef resolves a reference ("heads/main") to the SHA it points at.
	GetRef(ctx context.Context, owner, repo, ref string) (*models.Reference, error)
	// CreateRef creates a fully-qualified reference ("refs/heads/x") pointing at sha.
	// The provider rejects a reference that already exists.
	CreateRef(ctx context.Context, owner, repo, ref, sha string) (*models.Reference, error)
	// CreateBlob stores content as a blob object and returns its SHA.
	CreateBlob(ctx context.Context, owner, repo, content string) (string, error)
	// GetCommit fetches a commit object, including the SHA of its tree.
	GetCommit(ctx context.Context, owner, repo, sha string) (*models.Commit, error)
	// CreateTree creates a tree layering a single file entry on top of
	// baseTreeSHA and returns the new tree's SHA. The provider merges by
	// path, so every other path of the base tree is preserved.
	CreateTree(ctx context.Context, owner, repo, baseTreeSHA, path, blobSHA string) (string, error)
	// CreateCommit creates a commit object for treeSHA with the given
	// parents and returns its SHA.
	CreateCommit(ctx context.Context, owner, repo, message, treeSHA string, parentSHAs []string) (string, error)
	// UpdateRef moves an existing reference ("heads/x") to sha without
	// forcing, so the provider rejects non-fast-forward moves.
	UpdateRef(ctx context.Context, owner, repo, ref, sha string) (*models.Reference, error)
	// CreatePullRequest opens a pull request from head into base.
	CreatePullRequest(ctx context.Context, owner, repo, title, body, head, base string) (*models.PullRequest, error)
	// CreateIssue creates a new issue in the repository.
	CreateIssue(ctx context.Context, owner, repo, title, body string, labels []string) (*models.Issue, error)
	// UpdateIssue applies a partial edit to an existing issue.
	UpdateIssue(ctx context.Context, owner, repo string, number int, update models.IssueUpdate) (*models.Issue, error)
	// ListIssues lists the repository's issues filtered by state
	// (open, closed or all).
	ListIssues(ctx context.Context, owner, repo, state string) ([]models.Issue, error)
	// GetIssue fetches an issue by its number.
	GetIssue(ctx context.Context, owner, repo string, number int) (*models.Issue, error)
	// CreateComment posts a comment on an issue.
	CreateComment(ctx context.Context, owner, repo string, number int, body string) (*models.Comment, error)
	// CreateRepository creates a repository under the authenticated user.
	CreateRepository(ctx context.Context, name, description string, private, autoInit bool) (*models.Repository, error)
	// DeleteRepository deletes a repository. The token needs delete_repo scope.
	DeleteRepository(ctx context.Context, owner, repo string) error
}

// ClientFactory builds a Client bound to the bearer token of one request.
// The token lives only inside the returned client's transport; callers keep
// threading it explicitly instead of stashing it in shared state.
type ClientFactory interface {
	NewClient(token string) Client
}

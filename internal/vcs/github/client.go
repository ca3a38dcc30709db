package github

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/google/go-github/v71/github"
	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
	"github.com/thomas-vilte/mateforge/internal/logger"
	"github.com/thomas-vilte/mateforge/internal/models"
	"github.com/thomas-vilte/mateforge/internal/vcs"
)

var _ vcs.Client = (*Client)(nil)

type GitService interface {
	GetRef(ctx context.Context, owner, repo, ref string) (*github.Reference, *github.Response, error)
	CreateRef(ctx context.Context, owner, repo string, ref *github.Reference) (*github.Reference, *github.Response, error)
	CreateBlob(ctx context.Context, owner, repo string, blob *github.Blob) (*github.Blob, *github.Response, error)
	GetCommit(ctx context.Context, owner, repo, sha string) (*github.Commit, *github.Response, error)
	CreateTree(ctx context.Context, owner, repo, baseTree string, entries []*github.TreeEntry) (*github.Tree, *github.Response, error)
	CreateCommit(ctx context.Context, owner, repo string, commit *github.Commit, opts *github.CreateCommitOptions) (*github.Commit, *github.Response, error)
	UpdateRef(ctx context.Context, owner, repo string, ref *github.Reference, force bool) (*github.Reference, *github.Response, error)
}

type PullRequestsService interface {
	Create(ctx context.Context, owner, repo string, pull *github.NewPullRequest) (*github.PullRequest, *github.Response, error)
}

type IssuesService interface {
	Create(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
	Edit(ctx context.Context, owner, repo string, number int, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
	Get(ctx context.Context, owner, repo string, number int) (*github.Issue, *github.Response, error)
	ListByRepo(ctx context.Context, owner, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error)
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}

type RepositoriesService interface {
	Create(ctx context.Context, org string, repo *github.Repository) (*github.Repository, *github.Response, error)
	Delete(ctx context.Context, owner, repo string) (*github.Response, error)
}

// Client adapts go-github to the vcs.Client contract. Every method issues a
// single API call and translates failures into the domain taxonomy, keeping
// the upstream status and message intact.
type Client struct {
	gitService    GitService
	prService     PullRequestsService
	issuesService IssuesService
	repoService   RepositoriesService
}

func NewClient(httpClient *http.Client, baseURL *url.URL) *Client {
	client := github.NewClient(httpClient)
	if baseURL != nil {
		client.BaseURL = baseURL
	}

	return &Client{
		gitService:    client.Git,
		prService:     client.PullRequests,
		issuesService: client.Issues,
		repoService:   client.Repositories,
	}
}

func NewClientWithServices(
	gitService GitService,
	prService PullRequestsService,
	issuesService IssuesService,
	repoService RepositoriesService,
) *Client {
	return &Client{
		gitService:    gitService,
		prService:     prService,
		issuesService: issuesService,
		repoService:   repoService,
	}
}

func (c *Client) GetRef(ctx context.Context, owner, repo, ref string) (*models.Reference, error) {
	ghRef, _, err := c.gitService.GetRef(ctx, owner, repo, ref)
	if err != nil {
		return nil, translateErr(err)
	}
	return toReference(ghRef)
}

func (c *Client) CreateRef(ctx context.Context, owner, repo, ref, sha string) (*models.Reference, error) {
	log := logger.FromContext(ctx)

	log.Debug("creating github reference",
		"owner", owner,
		"repo", repo,
		"ref", ref)

	ghRef := &github.Reference{
		Ref:    github.Ptr(ref),
		Object: &github.GitObject{SHA: github.Ptr(sha)},
	}

	created, _, err := c.gitService.CreateRef(ctx, owner, repo, ghRef)
	if err != nil {
		return nil, translateErr(err)
	}
	return toReference(created)
}

func (c *Client) CreateBlob(ctx context.Context, owner, repo, content string) (string, error) {
	blob := &github.Blob{
		Content:  github.Ptr(content),
		Encoding: github.Ptr("utf-8"),
	}

	created, _, err := c.gitService.CreateBlob(ctx, owner, repo, blob)
	if err != nil {
		return "", translateErr(err)
	}
	if created == nil || created.SHA == nil {
		return "", domainErrors.ErrMissingSHA.WithContext("object", "blob")
	}
	return created.GetSHA(), nil
}

func (c *Client) GetCommit(ctx context.Context, owner, repo, sha string) (*models.Commit, error) {
	commit, _, err := c.gitService.GetCommit(ctx, owner, repo, sha)
	if err != nil {
		return nil, translateErr(err)
	}
	if commit == nil || commit.SHA == nil || commit.Tree == nil || commit.Tree.SHA == nil {
		return nil, domainErrors.ErrMissingSHA.WithContext("object", "commit")
	}
	return &models.Commit{
		SHA:     commit.GetSHA(),
		TreeSHA: commit.Tree.GetSHA(),
	}, nil
}

func (c *Client) CreateTree(ctx context.Context, owner, repo, baseTreeSHA, path, blobSHA string) (string, error) {
	// mode 100644 is a regular non-executable file; the API merges the
	// entry into baseTree by path.
	entries := []*github.TreeEntry{{
		Path: github.Ptr(path),
		Mode: github.Ptr("100644"),
		Type: github.Ptr("blob"),
		SHA:  github.Ptr(blobSHA),
	}}

	tree, _, err := c.gitService.CreateTree(ctx, owner, repo, baseTreeSHA, entries)
	if err != nil {
		return "", translateErr(err)
	}
	if tree == nil || tree.SHA == nil {
		return "", domainErrors.ErrMissingSHA.WithContext("object", "tree")
	}
	return tree.GetSHA(), nil
}

func (c *Client) CreateCommit(ctx context.Context, owner, repo, message, treeSHA string, parentSHAs []string) (string, error) {
	commit := &github.Commit{
		Message: github.Ptr(message),
		Tree:    &github.Tree{SHA: github.Ptr(treeSHA)},
	}
	for _, parent := range parentSHAs {
		commit.Parents = append(commit.Parents, &github.Commit{SHA: github.Ptr(parent)})
	}

	created, _, err := c.gitService.CreateCommit(ctx, owner, repo, commit, nil)
	if err != nil {
		return "", translateErr(err)
	}
	if created == nil || created.SHA == nil {
		return "", domainErrors.ErrMissingSHA.WithContext("object", "commit")
	}
	return created.GetSHA(), nil
}

func (c *Client) UpdateRef(ctx context.Context, owner, repo, ref, sha string) (*models.Reference, error) {
	ghRef := &github.Reference{
		Ref:    github.Ptr(ref),
		Object: &github.GitObject{SHA: github.Ptr(sha)},
	}

	updated, _, err := c.gitService.UpdateRef(ctx, owner, repo, ghRef, false)
	if err != nil {
		return nil, translateErr(err)
	}
	return toReference(updated)
}

func (c *Client) CreatePullRequest(ctx context.Context, owner, repo, title, body, head, base string) (*models.PullRequest, error) {
	log := logger.FromContext(ctx)

	log.Debug("opening github pull request",
		"owner", owner,
		"repo", repo,
		"head", head,
		"base", base)

	newPR := &github.NewPullRequest{
		Title: github.Ptr(title),
		Body:  github.Ptr(body),
		Head:  github.Ptr(head),
		Base:  github.Ptr(base),
	}

	pr, _, err := c.prService.Create(ctx, owner, repo, newPR)
	if err != nil {
		return nil, translateErr(err)
	}

	log.Debug("github pull request opened",
		"pr_number", pr.GetNumber(),
		"pr_url", pr.GetHTMLURL())

	return toPullRequest(pr), nil
}

func (c *Client) CreateIssue(ctx context.Context, owner, repo, title, body string, labels []string) (*models.Issue, error) {
	if labels == nil {
		labels = []string{}
	}

	req := &github.IssueRequest{
		Title:  github.Ptr(title),
		Body:   github.Ptr(body),
		Labels: &labels,
	}

	issue, _, err := c.issuesService.Create(ctx, owner, repo, req)
	if err != nil {
		return nil, translateErr(err)
	}
	return toIssue(issue), nil
}

func (c *Client) UpdateIssue(ctx context.Context, owner, repo string, number int, update models.IssueUpdate) (*models.Issue, error) {
	req := &github.IssueRequest{
		Title: update.Title,
		Body:  update.Body,
		State: update.State,
	}

	issue, _, err := c.issuesService.Edit(ctx, owner, repo, number, req)
	if err != nil {
		return nil, translateErr(err)
	}
	return toIssue(issue), nil
}

func (c *Client) ListIssues(ctx context.Context, owner, repo, state string) ([]models.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State: state,
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var all []models.Issue
	for {
		issues, resp, err := c.issuesService.ListByRepo(ctx, owner, repo, opts)
		if err != nil {
			return nil, translateErr(err)
		}

		for _, issue := range issues {
			// The issues listing also returns pull requests; skip them.
			if issue.PullRequestLinks != nil {
				continue
			}
			all = append(all, *toIssue(issue))
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

func (c *Client) GetIssue(ctx context.Context, owner, repo string, number int) (*models.Issue, error) {
	issue, _, err := c.issuesService.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, translateErr(err)
	}
	return toIssue(issue), nil
}

func (c *Client) CreateComment(ctx context.Context, owner, repo string, number int, body string) (*models.Comment, error) {
	comment, _, err := c.issuesService.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return &models.Comment{
		ID:      comment.GetID(),
		Body:    comment.GetBody(),
		HTMLURL: comment.GetHTMLURL(),
	}, nil
}

func (c *Client) CreateRepository(ctx context.Context, name, description string, private, autoInit bool) (*models.Repository, error) {
	log := logger.FromContext(ctx)

	log.Debug("creating github repository",
		"name", name,
		"private", private)

	repo := &github.Repository{
		Name:        github.Ptr(name),
		Description: github.Ptr(description),
		Private:     github.Ptr(private),
		AutoInit:    github.Ptr(autoInit),
	}

	// An empty org creates the repository under the authenticated user.
	created, _, err := c.repoService.Create(ctx, "", repo)
	if err != nil {
		return nil, translateErr(err)
	}

	return &models.Repository{
		ID:            created.GetID(),
		Name:          created.GetName(),
		FullName:      created.GetFullName(),
		Description:   created.GetDescription(),
		Private:       created.GetPrivate(),
		HTMLURL:       created.GetHTMLURL(),
		DefaultBranch: created.GetDefaultBranch(),
	}, nil
}

func (c *Client) DeleteRepository(ctx context.Context, owner, repo string) error {
	log := logger.FromContext(ctx)

	log.Debug("deleting github repository",
		"owner", owner,
		"repo", repo)

	if _, err := c.repoService.Delete(ctx, owner, repo); err != nil {
		return translateErr(err)
	}
	return nil
}

// translateErr maps a go-github failure into the domain taxonomy. API
// rejections keep the upstream status code and message verbatim; timeouts
// and transport failures get their own classes since no upstream response
// exists to preserve.
func translateErr(err error) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		status := 0
		if ghErr.Response != nil {
			status = ghErr.Response.StatusCode
		}
		remote := domainErrors.NewRemoteError(domainErrors.FromStatusCode(status), status, ghErr.Message)
		remote.Err = err
		return remote
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		status := 0
		if rateErr.Response != nil {
			status = rateErr.Response.StatusCode
		}
		remote := domainErrors.NewRemoteError(domainErrors.TypeRemoteUnavailable, status, rateErr.Message)
		remote.Err = err
		return remote
	}

	var netErr net.Error
	if (errors.As(err, &netErr) && netErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		remote := domainErrors.NewRemoteError(domainErrors.TypeRemoteTimeout, 0, "upstream timeout: "+err.Error())
		remote.Err = err
		return remote
	}

	remote := domainErrors.NewRemoteError(domainErrors.TypeRemoteUnavailable, 0, err.Error())
	remote.Err = err
	return remote
}

func toReference(ref *github.Reference) (*models.Reference, error) {
	if ref == nil || ref.Object == nil || ref.Object.SHA == nil {
		return nil, domainErrors.ErrMissingSHA.WithContext("object", "reference")
	}
	return &models.Reference{
		Ref: ref.GetRef(),
		SHA: ref.Object.GetSHA(),
	}, nil
}

func toPullRequest(pr *github.PullRequest) *models.PullRequest {
	return &models.PullRequest{
		ID:      pr.GetID(),
		Number:  pr.GetNumber(),
		Title:   pr.GetTitle(),
		State:   pr.GetState(),
		HTMLURL: pr.GetHTMLURL(),
		Head: models.Reference{
			Ref: pr.GetHead().GetRef(),
			SHA: pr.GetHead().GetSHA(),
		},
		Base: models.Reference{
			Ref: pr.GetBase().GetRef(),
			SHA: pr.GetBase().GetSHA(),
		},
	}
}

func toIssue(issue *github.Issue) *models.Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		if label.Name != nil {
			labels = append(labels, label.GetName())
		}
	}

	return &models.Issue{
		ID:      issue.GetID(),
		Number:  issue.GetNumber(),
		Title:   issue.GetTitle(),
		Body:    issue.GetBody(),
		State:   issue.GetState(),
		HTMLURL: issue.GetHTMLURL(),
		Labels:  labels,
	}
}

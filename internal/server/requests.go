package server

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thomas-vilte/mateforge/internal/config"
	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
	"github.com/thomas-vilte/mateforge/internal/models"
)

// Request bodies of the JSON endpoints. Each Validate rejects the request
// before any remote call is issued and fills in documented defaults.

type createPullRequestRequest struct {
	Owner       string `json:"owner"`
	Repo        string `json:"repo"`
	Base        string `json:"base"`
	BranchName  string `json:"branch_name"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	FilePath    string `json:"file_path"`
	FileContent string `json:"file_content"`
}

func (r *createPullRequestRequest) Validate() error {
	if r.Base == "" {
		r.Base = "main"
	}
	return requireFields(map[string]string{
		"owner":       r.Owner,
		"repo":        r.Repo,
		"branch_name": r.BranchName,
		"title":       r.Title,
		"file_path":   r.FilePath,
	})
}

func (r *createPullRequestRequest) toTransaction() *models.PullRequestTransaction {
	return &models.PullRequestTransaction{
		Owner:       r.Owner,
		Repo:        r.Repo,
		Base:        r.Base,
		BranchName:  r.BranchName,
		Title:       r.Title,
		Body:        r.Body,
		FilePath:    r.FilePath,
		FileContent: r.FileContent,
	}
}

type createIssueRequest struct {
	Owner  string   `json:"owner"`
	Repo   string   `json:"repo"`
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

func (r *createIssueRequest) Validate() error {
	return requireFields(map[string]string{
		"owner": r.Owner,
		"repo":  r.Repo,
		"title": r.Title,
	})
}

type updateIssueRequest struct {
	Owner       string  `json:"owner"`
	Repo        string  `json:"repo"`
	IssueNumber int     `json:"issue_number"`
	Title       *string `json:"title"`
	Body        *string `json:"body"`
	State       *string `json:"state"`
}

func (r *updateIssueRequest) Validate() error {
	if err := requireFields(map[string]string{
		"owner": r.Owner,
		"repo":  r.Repo,
	}); err != nil {
		return err
	}
	if r.IssueNumber <= 0 {
		return domainErrors.NewAppError(domainErrors.TypeValidation, "issue_number must be a positive integer", nil)
	}
	if r.Title == nil && r.Body == nil && r.State == nil {
		return domainErrors.NewAppError(domainErrors.TypeValidation, "at least one of title, body or state must be set", nil)
	}
	if r.State != nil && *r.State != "open" && *r.State != "closed" {
		return domainErrors.NewAppError(domainErrors.TypeValidation, fmt.Sprintf("invalid state %q, must be open or closed", *r.State), nil)
	}
	return nil
}

func (r *updateIssueRequest) toUpdate() models.IssueUpdate {
	return models.IssueUpdate{
		Title: r.Title,
		Body:  r.Body,
		State: r.State,
	}
}

type listIssuesQuery struct {
	Owner string
	Repo  string
	State string
}

func (q *listIssuesQuery) Validate() error {
	if q.State == "" {
		q.State = "open"
	}
	if err := requireFields(map[string]string{
		"owner": q.Owner,
		"repo":  q.Repo,
	}); err != nil {
		return err
	}
	if q.State != "open" && q.State != "closed" && q.State != "all" {
		return domainErrors.NewAppError(domainErrors.TypeValidation, fmt.Sprintf("invalid state %q, must be open, closed or all", q.State), nil)
	}
	return nil
}

type suggestFixRequest struct {
	Owner       string `json:"owner"`
	Repo        string `json:"repo"`
	IssueNumber int    `json:"issue_number"`
	Model       string `json:"model"`
}

func (r *suggestFixRequest) Validate() error {
	if err := requireFields(map[string]string{
		"owner": r.Owner,
		"repo":  r.Repo,
	}); err != nil {
		return err
	}
	if r.IssueNumber <= 0 {
		return domainErrors.NewAppError(domainErrors.TypeValidation, "issue_number must be a positive integer", nil)
	}
	if r.Model != "" && !config.IsSupportedModel(r.Model) {
		return domainErrors.NewAppError(domainErrors.TypeValidation,
			fmt.Sprintf("unsupported model %q, supported models: %v", r.Model, config.SupportedModels()), nil)
	}
	return nil
}

func (r *suggestFixRequest) toTask() *models.SuggestionTask {
	return &models.SuggestionTask{
		Owner:       r.Owner,
		Repo:        r.Repo,
		IssueNumber: r.IssueNumber,
		Model:       r.Model,
	}
}

type createRepositoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	AutoInit    bool   `json:"auto_init"`
}

func (r *createRepositoryRequest) Validate() error {
	return requireFields(map[string]string{
		"name": r.Name,
	})
}

type deleteRepositoryRequest struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

func (r *deleteRepositoryRequest) Validate() error {
	return requireFields(map[string]string{
		"owner": r.Owner,
		"repo":  r.Repo,
	})
}

type createBranchRequest struct {
	Owner        string `json:"owner"`
	Repo         string `json:"repo"`
	BranchName   string `json:"branch_name"`
	SourceBranch string `json:"source_branch"`
}

func (r *createBranchRequest) Validate() error {
	if r.SourceBranch == "" {
		r.SourceBranch = "main"
	}
	return requireFields(map[string]string{
		"owner":       r.Owner,
		"repo":        r.Repo,
		"branch_name": r.BranchName,
	})
}

// requireFields reports every blank field in one message so the caller can
// fix the request in a single round trip. Iteration is sorted to keep the
// message stable.
func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return domainErrors.NewAppError(domainErrors.TypeValidation,
		fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")), nil)
}

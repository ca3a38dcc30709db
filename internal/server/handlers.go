package server

import (
	"encoding/json"
	"net/http"

	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
	"github.com/thomas-vilte/mateforge/internal/version"
)

// decode unmarshals the request body into dst and rejects bodies that are
// not valid JSON.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domainErrors.NewAppError(domainErrors.TypeValidation, "invalid JSON body: "+err.Error(), nil)
	}
	return nil
}

func (s *Server) handleCreatePullRequest(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req createPullRequestRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	pr, err := s.pullRequests.CreatePullRequest(r.Context(), token, req.toTransaction())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"message":      s.translations.GetMessage("pr_created", 1, nil),
		"pull_request": pr,
	})
}

func (s *Server) handleCreateIssue(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req createIssueRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	issue, err := s.issues.CreateIssue(r.Context(), token, req.Owner, req.Repo, req.Title, req.Body, req.Labels)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"message": s.translations.GetMessage("issue_created", 1, nil),
		"issue":   issue,
	})
}

func (s *Server) handleUpdateIssue(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req updateIssueRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	issue, err := s.issues.UpdateIssue(r.Context(), token, req.Owner, req.Repo, req.IssueNumber, req.toUpdate())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"message": s.translations.GetMessage("issue_updated", 1, nil),
		"issue":   issue,
	})
}

func (s *Server) handleListIssues(w http.ResponseWriter, r *http.Request) {
	token, err := optionalBearerToken(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	query := listIssuesQuery{
		Owner: r.URL.Query().Get("owner"),
		Repo:  r.URL.Query().Get("repo"),
		State: r.URL.Query().Get("state"),
	}
	if err := query.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	issues, err := s.issues.ListIssues(r.Context(), token, query.Owner, query.Repo, query.State)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"message": s.translations.GetMessage("issues_listed", len(issues), map[string]interface{}{"Count": len(issues)}),
		"count":   len(issues),
		"issues":  issues,
	})
}

func (s *Server) handleSuggestFix(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req suggestFixRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	result, err := s.suggestions.SuggestFix(r.Context(), token, req.toTask())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"message":      s.translations.GetMessage("suggestion_posted", 1, nil),
		"issue_number": result.IssueNumber,
		"model":        result.Model,
		"suggestion":   result.Suggestion,
		"comment":      result.Comment,
	})
}

func (s *Server) handleCreateRepository(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req createRepositoryRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	repo, err := s.repositories.CreateRepository(r.Context(), token, req.Name, req.Description, req.Private, req.AutoInit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"message":    s.translations.GetMessage("repo_created", 1, nil),
		"repository": repo,
	})
}

func (s *Server) handleDeleteRepository(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req deleteRepositoryRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.repositories.DeleteRepository(r.Context(), token, req.Owner, req.Repo); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"message": s.translations.GetMessage("repo_deleted", 1, nil),
	})
}

func (s *Server) handleCreateBranch(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req createBranchRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	ref, err := s.repositories.CreateBranch(r.Context(), token, req.Owner, req.Repo, req.BranchName, req.SourceBranch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"message": s.translations.GetMessage("branch_created", 1, nil),
		"branch":  ref,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{
		"message":     "MateForge API",
		"description": s.translations.GetMessage("service_description", 1, nil),
		"version":     version.Version,
		"endpoints": map[string]string{
			"POST /create-pull-request": "Create a pull request adding one file",
			"POST /create-issue":        "Create an issue",
			"PATCH /issues/update":      "Update or close an issue",
			"GET /issues/list":          "List issues of a repository",
			"POST /suggest-fix":         "Generate and post a fix suggestion for an issue",
			"POST /repos/create":        "Create a repository",
			"DELETE /repos/delete":      "Delete a repository",
			"POST /branches/create":     "Create a branch",
			"GET /health":               "Liveness probe",
			"GET /metrics":              "Prometheus metrics",
		},
	})
}

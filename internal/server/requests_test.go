package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
)

func TestCreatePullRequestRequestValidate(t *testing.T) {
	valid := func() createPullRequestRequest {
		return createPullRequestRequest{
			Owner:       "acme",
			Repo:        "widgets",
			BranchName:  "feature/x",
			Title:       "Add X",
			Body:        "desc",
			FilePath:    "docs/x.md",
			FileContent: "# X",
		}
	}

	t.Run("should accept a complete request and default the base", func(t *testing.T) {
		req := valid()

		require.NoError(t, req.Validate())
		assert.Equal(t, "main", req.Base)
	})

	t.Run("should keep an explicit base", func(t *testing.T) {
		req := valid()
		req.Base = "develop"

		require.NoError(t, req.Validate())
		assert.Equal(t, "develop", req.Base)
	})

	t.Run("should list every missing field in order", func(t *testing.T) {
		req := createPullRequestRequest{Owner: "acme"}

		err := req.Validate()

		require.Error(t, err)
		assert.Equal(t, domainErrors.TypeValidation, domainErrors.TypeOf(err))
		assert.Contains(t, err.Error(), "branch_name, file_path, repo, title")
	})

	t.Run("should treat whitespace-only fields as missing", func(t *testing.T) {
		req := valid()
		req.Title = "   "

		err := req.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("should allow an empty body and an empty file", func(t *testing.T) {
		req := valid()
		req.Body = ""
		req.FileContent = ""

		assert.NoError(t, req.Validate())
	})

	t.Run("should map onto a transaction", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())

		tx := req.toTransaction()

		assert.Equal(t, "acme", tx.Owner)
		assert.Equal(t, "main", tx.Base)
		assert.Equal(t, "feature/x", tx.BranchName)
		assert.Equal(t, "# X", tx.FileContent)
	})
}

func TestUpdateIssueRequestValidate(t *testing.T) {
	closed := "closed"

	t.Run("should accept a state-only update", func(t *testing.T) {
		req := updateIssueRequest{Owner: "acme", Repo: "widgets", IssueNumber: 42, State: &closed}

		assert.NoError(t, req.Validate())
	})

	t.Run("should reject an empty patch", func(t *testing.T) {
		req := updateIssueRequest{Owner: "acme", Repo: "widgets", IssueNumber: 42}

		err := req.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one of")
	})

	t.Run("should reject issue number zero", func(t *testing.T) {
		req := updateIssueRequest{Owner: "acme", Repo: "widgets", State: &closed}

		assert.Error(t, req.Validate())
	})

	t.Run("should reject states other than open and closed", func(t *testing.T) {
		bad := "wontfix"
		req := updateIssueRequest{Owner: "acme", Repo: "widgets", IssueNumber: 42, State: &bad}

		err := req.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "wontfix")
	})
}

func TestListIssuesQueryValidate(t *testing.T) {
	t.Run("should default the state to open", func(t *testing.T) {
		query := listIssuesQuery{Owner: "acme", Repo: "widgets"}

		require.NoError(t, query.Validate())
		assert.Equal(t, "open", query.State)
	})

	t.Run("should accept all as a state", func(t *testing.T) {
		query := listIssuesQuery{Owner: "acme", Repo: "widgets", State: "all"}

		assert.NoError(t, query.Validate())
	})

	t.Run("should reject unknown states", func(t *testing.T) {
		query := listIssuesQuery{Owner: "acme", Repo: "widgets", State: "stale"}

		assert.Error(t, query.Validate())
	})
}

func TestSuggestFixRequestValidate(t *testing.T) {
	t.Run("should accept a request without a model", func(t *testing.T) {
		req := suggestFixRequest{Owner: "acme", Repo: "widgets", IssueNumber: 42}

		assert.NoError(t, req.Validate())
	})

	t.Run("should accept a supported model", func(t *testing.T) {
		req := suggestFixRequest{Owner: "acme", Repo: "widgets", IssueNumber: 42, Model: "gemini-2.5-pro"}

		assert.NoError(t, req.Validate())
	})

	t.Run("should reject an unsupported model", func(t *testing.T) {
		req := suggestFixRequest{Owner: "acme", Repo: "widgets", IssueNumber: 42, Model: "gpt-4"}

		err := req.Validate()

		require.Error(t, err)
		assert.Equal(t, domainErrors.TypeValidation, domainErrors.TypeOf(err))
		assert.Contains(t, err.Error(), "gpt-4")
	})
}

func TestCreateBranchRequestValidate(t *testing.T) {
	t.Run("should default the source branch to main", func(t *testing.T) {
		req := createBranchRequest{Owner: "acme", Repo: "widgets", BranchName: "feature/x"}

		require.NoError(t, req.Validate())
		assert.Equal(t, "main", req.SourceBranch)
	})

	t.Run("should require the branch name", func(t *testing.T) {
		req := createBranchRequest{Owner: "acme", Repo: "widgets"}

		err := req.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "branch_name")
	})
}

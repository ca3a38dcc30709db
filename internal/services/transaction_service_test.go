package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
	"github.com/thomas-vilte/mateforge/internal/models"
)

func newTransaction() *models.PullRequestTransaction {
	return &models.PullRequestTransaction{
		Owner:       "octo",
		Repo:        "demo",
		Base:        "main",
		BranchName:  "feature/x",
		Title:       "Add docs",
		Body:        "adds the docs",
		FilePath:    "docs/hello.txt",
		FileContent: "hello world\n",
	}
}

func newTransactionService(client *MockClient) *TransactionService {
	factory := &MockClientFactory{}
	factory.On("NewClient", "ghp_test").Return(client)
	return NewTransactionService(WithTransactionClientFactory(factory))
}

func stubStepsThrough(client *MockClient, last string) {
	steps := []func(){
		func() {
			client.On("GetRef", mock.Anything, "octo", "demo", "heads/main").
				Return(&models.Reference{Ref: "refs/heads/main", SHA: "base-sha"}, nil)
		},
		func() {
			client.On("CreateRef", mock.Anything, "octo", "demo", "refs/heads/feature/x", "base-sha").
				Return(&models.Reference{Ref: "refs/heads/feature/x", SHA: "base-sha"}, nil)
		},
		func() {
			client.On("CreateBlob", mock.Anything, "octo", "demo", "hello world\n").
				Return("blob-sha", nil)
		},
		func() {
			client.On("GetCommit", mock.Anything, "octo", "demo", "base-sha").
				Return(&models.Commit{SHA: "base-sha", TreeSHA: "base-tree-sha"}, nil)
		},
		func() {
			client.On("CreateTree", mock.Anything, "octo", "demo", "base-tree-sha", "docs/hello.txt", "blob-sha").
				Return("new-tree-sha", nil)
		},
		func() {
			client.On("CreateCommit", mock.Anything, "octo", "demo", "Add docs\n\nadds the docs", "new-tree-sha", []string{"base-sha"}).
				Return("new-commit-sha", nil)
		},
		func() {
			client.On("UpdateRef", mock.Anything, "octo", "demo", "heads/feature/x", "new-commit-sha").
				Return(&models.Reference{Ref: "refs/heads/feature/x", SHA: "new-commit-sha"}, nil)
		},
	}
	names := []string{"GetRef", "CreateRef", "CreateBlob", "GetCommit", "CreateTree", "CreateCommit", "UpdateRef"}

	for i, name := range names {
		steps[i]()
		if name == last {
			return
		}
	}
}

func TestTransactionService_CreatePullRequest(t *testing.T) {
	t.Run("should run the eight steps in order feeding each SHA forward", func(t *testing.T) {
		client := &MockClient{}
		stubStepsThrough(client, "UpdateRef")
		client.On("CreatePullRequest", mock.Anything, "octo", "demo", "Add docs", "adds the docs", "octo:feature/x", "main").
			Return(&models.PullRequest{
				ID:      42,
				Number:  7,
				Title:   "Add docs",
				State:   "open",
				HTMLURL: "https://example.com/octo/demo/pull/7",
				Head:    models.Reference{Ref: "feature/x", SHA: "new-commit-sha"},
				Base:    models.Reference{Ref: "main", SHA: "base-sha"},
			}, nil)
		service := newTransactionService(client)
		tx := newTransaction()

		pr, err := service.CreatePullRequest(context.Background(), "ghp_test", tx)

		require.NoError(t, err)
		assert.Equal(t, 7, pr.Number)
		assert.Equal(t, "feature/x", pr.Head.Ref)

		order := make([]string, 0, len(client.Calls))
		for _, call := range client.Calls {
			order = append(order, call.Method)
		}
		assert.Equal(t, []string{
			"GetRef",
			"CreateRef",
			"CreateBlob",
			"GetCommit",
			"CreateTree",
			"CreateCommit",
			"UpdateRef",
			"CreatePullRequest",
		}, order)

		assert.Equal(t, "base-sha", tx.BaseRefSHA)
		assert.Equal(t, "blob-sha", tx.BlobSHA)
		assert.Equal(t, "base-tree-sha", tx.BaseTreeSHA)
		assert.Equal(t, "new-tree-sha", tx.TreeSHA)
		assert.Equal(t, "new-commit-sha", tx.CommitSHA)
		client.AssertExpectations(t)
	})

	t.Run("should abort on a missing base branch before any mutation", func(t *testing.T) {
		client := &MockClient{}
		client.On("GetRef", mock.Anything, "octo", "demo", "heads/main").
			Return((*models.Reference)(nil), domainErrors.NewRemoteError(domainErrors.TypeRemoteNotFound, http.StatusNotFound, "Not Found"))
		service := newTransactionService(client)

		_, err := service.CreatePullRequest(context.Background(), "ghp_test", newTransaction())

		var stepErr *domainErrors.StepError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, string(models.StepFetchBaseRef), stepErr.Step)
		assert.Empty(t, stepErr.Branch)
		client.AssertNumberOfCalls(t, "CreateRef", 0)
	})

	t.Run("should stop at an existing branch without issuing later calls", func(t *testing.T) {
		client := &MockClient{}
		client.On("GetRef", mock.Anything, "octo", "demo", "heads/main").
			Return(&models.Reference{Ref: "refs/heads/main", SHA: "base-sha"}, nil)
		client.On("CreateRef", mock.Anything, "octo", "demo", "refs/heads/feature/x", "base-sha").
			Return((*models.Reference)(nil), domainErrors.NewRemoteError(domainErrors.TypeRemoteConflict, http.StatusUnprocessableEntity, "Reference already exists"))
		service := newTransactionService(client)

		_, err := service.CreatePullRequest(context.Background(), "ghp_test", newTransaction())

		var stepErr *domainErrors.StepError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, string(models.StepCreateBranch), stepErr.Step)
		assert.Empty(t, stepErr.Branch)

		var remoteErr *domainErrors.RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, http.StatusUnprocessableEntity, remoteErr.StatusCode)
		assert.Equal(t, "Reference already exists", remoteErr.Message)

		client.AssertNumberOfCalls(t, "CreateBlob", 0)
		client.AssertNumberOfCalls(t, "GetCommit", 0)
		client.AssertNumberOfCalls(t, "CreateTree", 0)
		client.AssertNumberOfCalls(t, "CreateCommit", 0)
		client.AssertNumberOfCalls(t, "UpdateRef", 0)
		client.AssertNumberOfCalls(t, "CreatePullRequest", 0)
	})

	t.Run("should name the orphaned branch when the ref update fails", func(t *testing.T) {
		client := &MockClient{}
		stubStepsThrough(client, "CreateCommit")
		client.On("UpdateRef", mock.Anything, "octo", "demo", "heads/feature/x", "new-commit-sha").
			Return((*models.Reference)(nil), domainErrors.NewRemoteError(domainErrors.TypeRemoteUnavailable, http.StatusBadGateway, "Server Error"))
		service := newTransactionService(client)

		_, err := service.CreatePullRequest(context.Background(), "ghp_test", newTransaction())

		var stepErr *domainErrors.StepError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, string(models.StepUpdateBranchRef), stepErr.Step)
		assert.Equal(t, "feature/x", stepErr.Branch)
		client.AssertNumberOfCalls(t, "CreatePullRequest", 0)
	})

	t.Run("should name the orphaned branch when opening the PR fails", func(t *testing.T) {
		client := &MockClient{}
		stubStepsThrough(client, "UpdateRef")
		client.On("CreatePullRequest", mock.Anything, "octo", "demo", "Add docs", "adds the docs", "octo:feature/x", "main").
			Return((*models.PullRequest)(nil), domainErrors.NewRemoteError(domainErrors.TypeRemoteConflict, http.StatusUnprocessableEntity, "A pull request already exists for octo:feature/x."))
		service := newTransactionService(client)

		_, err := service.CreatePullRequest(context.Background(), "ghp_test", newTransaction())

		var stepErr *domainErrors.StepError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, string(models.StepCreatePullRequest), stepErr.Step)
		assert.Equal(t, "feature/x", stepErr.Branch)
	})

	t.Run("should report a conflict when rerun with a branch left by a failed run", func(t *testing.T) {
		client := &MockClient{}
		client.On("GetRef", mock.Anything, "octo", "demo", "heads/main").
			Return(&models.Reference{Ref: "refs/heads/main", SHA: "base-sha"}, nil)
		client.On("CreateRef", mock.Anything, "octo", "demo", "refs/heads/feature/x", "base-sha").
			Return((*models.Reference)(nil), domainErrors.NewRemoteError(domainErrors.TypeRemoteConflict, http.StatusUnprocessableEntity, "Reference already exists"))
		service := newTransactionService(client)

		_, err := service.CreatePullRequest(context.Background(), "ghp_test", newTransaction())

		assert.Equal(t, domainErrors.TypeRemoteConflict, domainErrors.TypeOf(err))
	})

	t.Run("should keep running the sequence when the caller context is canceled", func(t *testing.T) {
		client := &MockClient{}
		detached := mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		})
		client.On("GetRef", detached, "octo", "demo", "heads/main").
			Return(&models.Reference{Ref: "refs/heads/main", SHA: "base-sha"}, nil)
		client.On("CreateRef", detached, "octo", "demo", "refs/heads/feature/x", "base-sha").
			Return(&models.Reference{Ref: "refs/heads/feature/x", SHA: "base-sha"}, nil)
		client.On("CreateBlob", detached, "octo", "demo", "hello world\n").
			Return("blob-sha", nil)
		client.On("GetCommit", detached, "octo", "demo", "base-sha").
			Return(&models.Commit{SHA: "base-sha", TreeSHA: "base-tree-sha"}, nil)
		client.On("CreateTree", detached, "octo", "demo", "base-tree-sha", "docs/hello.txt", "blob-sha").
			Return("new-tree-sha", nil)
		client.On("CreateCommit", detached, "octo", "demo", "Add docs\n\nadds the docs", "new-tree-sha", []string{"base-sha"}).
			Return("new-commit-sha", nil)
		client.On("UpdateRef", detached, "octo", "demo", "heads/feature/x", "new-commit-sha").
			Return(&models.Reference{Ref: "refs/heads/feature/x", SHA: "new-commit-sha"}, nil)
		client.On("CreatePullRequest", detached, "octo", "demo", "Add docs", "adds the docs", "octo:feature/x", "main").
			Return(&models.PullRequest{Number: 7}, nil)
		service := newTransactionService(client)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		pr, err := service.CreatePullRequest(ctx, "ghp_test", newTransaction())

		require.NoError(t, err)
		assert.Equal(t, 7, pr.Number)
		client.AssertExpectations(t)
	})
}

func TestPullRequestTransaction_CommitMessage(t *testing.T) {
	t.Run("should join title and body", func(t *testing.T) {
		tx := newTransaction()

		assert.Equal(t, "Add docs\n\nadds the docs", tx.CommitMessage())
	})

	t.Run("should use the title alone when the body is empty", func(t *testing.T) {
		tx := newTransaction()
		tx.Body = ""

		assert.Equal(t, "Add docs", tx.CommitMessage())
	})
}

package services

import (
	"context"

	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
	"github.com/thomas-vilte/mateforge/internal/logger"
	"github.com/thomas-vilte/mateforge/internal/models"
	"github.com/thomas-vilte/mateforge/internal/vcs"
)

// TransactionService runs the eight-step pull request transaction against
// the hosting API. The sequence is strictly ordered, never retried, and
// never compensated: a branch created by a run that later fails is left in
// place and reported, so the caller can recover or clean up.
type TransactionService struct {
	clients vcs.ClientFactory
}

type TransactionOption func(*TransactionService)

func WithTransactionClientFactory(clients vcs.ClientFactory) TransactionOption {
	return func(s *TransactionService) {
		s.clients = clients
	}
}

func NewTransactionService(opts ...TransactionOption) *TransactionService {
	s := &TransactionService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type transactionStep struct {
	name models.TransactionStep
	run  func(ctx context.Context, client vcs.Client, tx *models.PullRequestTransaction) error
}

// CreatePullRequest creates a branch off the base, commits one file onto it
// and opens a pull request, threading each step's output SHA into the next
// step. On failure the returned error names the step and, when one was
// created, the branch left behind.
func (s *TransactionService) CreatePullRequest(ctx context.Context, token string, tx *models.PullRequestTransaction) (*models.PullRequest, error) {
	log := logger.FromContext(ctx)

	// A caller abort must not sever the sequence mid-flight; in-flight
	// remote calls complete under the client's own timeout.
	ctx = context.WithoutCancel(ctx)

	client := s.clients.NewClient(token)

	steps := []transactionStep{
		{models.StepFetchBaseRef, s.fetchBaseRef},
		{models.StepCreateBranch, s.createBranch},
		{models.StepCreateBlob, s.createBlob},
		{models.StepFetchBaseTree, s.fetchBaseTree},
		{models.StepCreateTree, s.createTree},
		{models.StepCreateCommit, s.createCommit},
		{models.StepUpdateBranchRef, s.updateBranchRef},
		{models.StepCreatePullRequest, s.createPullRequest},
	}

	log.Info("starting pull request transaction",
		"owner", tx.Owner,
		"repo", tx.Repo,
		"base", tx.Base,
		"branch", tx.BranchName,
		"file_path", tx.FilePath)

	branchCreated := false
	for _, step := range steps {
		log.Debug("running transaction step",
			"step", string(step.name))

		if err := step.run(ctx, client, tx); err != nil {
			stepErr := domainErrors.NewStepError(string(step.name), err)
			if branchCreated {
				stepErr = stepErr.WithBranch(tx.BranchName)
			}

			log.Error("transaction step failed",
				"error", err,
				"step", string(step.name),
				"branch_created", branchCreated)

			return nil, stepErr
		}

		if step.name == models.StepCreateBranch {
			branchCreated = true
		}
	}

	log.Info("pull request transaction completed",
		"pr_number", tx.PullRequest.Number,
		"pr_url", tx.PullRequest.HTMLURL,
		"branch", tx.BranchName)

	return tx.PullRequest, nil
}

func (s *TransactionService) fetchBaseRef(ctx context.Context, client vcs.Client, tx *models.PullRequestTransaction) error {
	ref, err := client.GetRef(ctx, tx.Owner, tx.Repo, "heads/"+tx.Base)
	if err != nil {
		return err
	}
	tx.BaseRefSHA = ref.SHA
	return nil
}

func (s *TransactionService) createBranch(ctx context.Context, client vcs.Client, tx *models.PullRequestTransaction) error {
	_, err := client.CreateRef(ctx, tx.Owner, tx.Repo, "refs/heads/"+tx.BranchName, tx.BaseRefSHA)
	return err
}

func (s *TransactionService) createBlob(ctx context.Context, client vcs.Client, tx *models.PullRequestTransaction) error {
	sha, err := client.CreateBlob(ctx, tx.Owner, tx.Repo, tx.FileContent)
	if err != nil {
		return err
	}
	tx.BlobSHA = sha
	return nil
}

func (s *TransactionService) fetchBaseTree(ctx context.Context, client vcs.Client, tx *models.PullRequestTransaction) error {
	commit, err := client.GetCommit(ctx, tx.Owner, tx.Repo, tx.BaseRefSHA)
	if err != nil {
		return err
	}
	tx.BaseCommitSHA = commit.SHA
	tx.BaseTreeSHA = commit.TreeSHA
	return nil
}

func (s *TransactionService) createTree(ctx context.Context, client vcs.Client, tx *models.PullRequestTransaction) error {
	sha, err := client.CreateTree(ctx, tx.Owner, tx.Repo, tx.BaseTreeSHA, tx.FilePath, tx.BlobSHA)
	if err != nil {
		return err
	}
	tx.TreeSHA = sha
	return nil
}

func (s *TransactionService) createCommit(ctx context.Context, client vcs.Client, tx *models.PullRequestTransaction) error {
	sha, err := client.CreateCommit(ctx, tx.Owner, tx.Repo, tx.CommitMessage(), tx.TreeSHA, []string{tx.BaseCommitSHA})
	if err != nil {
		return err
	}
	tx.CommitSHA = sha
	return nil
}

func (s *TransactionService) updateBranchRef(ctx context.Context, client vcs.Client, tx *models.PullRequestTransaction) error {
	_, err := client.UpdateRef(ctx, tx.Owner, tx.Repo, "heads/"+tx.BranchName, tx.CommitSHA)
	return err
}

func (s *TransactionService) createPullRequest(ctx context.Context, client vcs.Client, tx *models.PullRequestTransaction) error {
	head := tx.Owner + ":" + tx.BranchName

	pr, err := client.CreatePullRequest(ctx, tx.Owner, tx.Repo, tx.Title, tx.Body, head, tx.Base)
	if err != nil {
		return err
	}
	tx.PullRequest = pr
	return nil
}

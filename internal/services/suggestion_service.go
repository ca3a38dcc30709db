package services

import (
	"context"

	"github.com/thomas-vilte/mateforge/internal/ai"
	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
	"github.com/thomas-vilte/mateforge/internal/logger"
	"github.com/thomas-vilte/mateforge/internal/models"
	"github.com/thomas-vilte/mateforge/internal/vcs"
)

// SuggestionService fetches an issue, generates a fix suggestion for it and
// posts the suggestion back as a comment. The issue fetch fails before any
// generation work happens, and a posting failure carries the generated text
// so it is never lost.
type SuggestionService struct {
	clients      vcs.ClientFactory
	generator    ai.SuggestionGenerator
	defaultModel string
}

type SuggestionOption func(*SuggestionService)

func WithSuggestionClientFactory(clients vcs.ClientFactory) SuggestionOption {
	return func(s *SuggestionService) {
		s.clients = clients
	}
}

func WithSuggestionGenerator(generator ai.SuggestionGenerator) SuggestionOption {
	return func(s *SuggestionService) {
		s.generator = generator
	}
}

func WithSuggestionDefaultModel(model string) SuggestionOption {
	return func(s *SuggestionService) {
		s.defaultModel = model
	}
}

func NewSuggestionService(opts ...SuggestionOption) *SuggestionService {
	s := &SuggestionService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SuggestFix runs the three-step suggestion flow. The posted comment is
// exactly the generated text.
func (s *SuggestionService) SuggestFix(ctx context.Context, token string, task *models.SuggestionTask) (*models.SuggestionResult, error) {
	log := logger.FromContext(ctx)

	if s.generator == nil {
		log.Error("suggestion generator not configured")
		return nil, domainErrors.ErrGenerationNotConfigured
	}

	if task.Model == "" {
		task.Model = s.defaultModel
	}

	ctx = context.WithoutCancel(ctx)

	client := s.clients.NewClient(token)

	log.Info("suggesting fix for issue",
		"owner", task.Owner,
		"repo", task.Repo,
		"issue_number", task.IssueNumber,
		"model", task.Model)

	issue, err := client.GetIssue(ctx, task.Owner, task.Repo, task.IssueNumber)
	if err != nil {
		log.Error("failed to fetch issue for suggestion",
			"error", err,
			"issue_number", task.IssueNumber)
		return nil, domainErrors.NewStepError(string(models.StepFetchIssue), err)
	}
	task.IssueTitle = issue.Title
	task.IssueBody = issue.Body

	suggestion, err := s.generator.GenerateSuggestion(ctx, *task)
	if err != nil {
		log.Error("failed to generate suggestion",
			"error", err,
			"issue_number", task.IssueNumber,
			"model", task.Model)
		return nil, domainErrors.NewStepError(string(models.StepGenerateSuggestion), err)
	}
	task.Suggestion = suggestion

	comment, err := client.CreateComment(ctx, task.Owner, task.Repo, task.IssueNumber, suggestion)
	if err != nil {
		log.Error("failed to post suggestion comment",
			"error", err,
			"issue_number", task.IssueNumber)
		// The generated text travels with the error so the caller still
		// gets it.
		return nil, domainErrors.NewStepError(string(models.StepPostComment), err).WithSuggestion(suggestion)
	}

	log.Info("fix suggestion posted",
		"issue_number", task.IssueNumber,
		"comment_url", comment.HTMLURL,
		"suggestion_length", len(suggestion))

	return &models.SuggestionResult{
		IssueNumber: task.IssueNumber,
		Model:       task.Model,
		Suggestion:  suggestion,
		Comment:     comment,
	}, nil
}

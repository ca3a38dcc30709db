package gemini

import (
	"context"
	"strings"

	"github.com/thomas-vilte/mateforge/internal/ai"
	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
	"github.com/thomas-vilte/mateforge/internal/logger"
	"github.com/thomas-vilte/mateforge/internal/models"
	"google.golang.org/genai"
)

var _ ai.SuggestionGenerator = (*Generator)(nil)

type generateFunc func(ctx context.Context, model, prompt string) (*genai.GenerateContentResponse, error)

// Generator produces fix suggestions through the Gemini API.
type Generator struct {
	client     *genai.Client
	generateFn generateFunc
}

func NewGenerator(ctx context.Context, apiKey string) (*Generator, error) {
	if apiKey == "" {
		return nil, domainErrors.ErrGenerationNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "invalid") ||
			strings.Contains(errMsg, "unauthorized") ||
			strings.Contains(errMsg, "api key") ||
			strings.Contains(errMsg, "authentication") {
			return nil, domainErrors.ErrGenerationKeyInvalid.WithError(err)
		}
		return nil, domainErrors.NewAppError(domainErrors.TypeGeneration, "error creating generation client", err)
	}

	g := &Generator{client: client}
	g.generateFn = g.defaultGenerate
	return g, nil
}

func (g *Generator) defaultGenerate(ctx context.Context, model, prompt string) (*genai.GenerateContentResponse, error) {
	return g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), generateConfig(model))
}

// GenerateSuggestion generates a fix suggestion for the task's issue. The
// returned text is exactly what the model produced.
func (g *Generator) GenerateSuggestion(ctx context.Context, task models.SuggestionTask) (string, error) {
	log := logger.FromContext(ctx)

	prompt, err := ai.BuildSuggestionPrompt(task)
	if err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeGeneration, "error building suggestion prompt", err)
	}

	log.Debug("calling gemini for fix suggestion",
		"model", task.Model,
		"issue_number", task.IssueNumber,
		"prompt_length", len(prompt))

	resp, err := g.generateFn(ctx, task.Model, prompt)
	if err != nil {
		log.Error("gemini API call failed",
			"error", err,
			"model", task.Model)
		return "", classifyGenerateErr(err)
	}

	text := formatResponse(resp)
	if text == "" {
		log.Error("empty response from gemini after format",
			"model", task.Model,
			"issue_number", task.IssueNumber)
		return "", domainErrors.ErrGenerationEmpty
	}

	log.Debug("gemini suggestion generated",
		"model", task.Model,
		"issue_number", task.IssueNumber,
		"response_length", len(text))

	return text, nil
}

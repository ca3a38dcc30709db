package gemini

import (
	"strings"

	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
	"google.golang.org/genai"
)

// generateConfig returns the generation settings for the model, enabling
// Thinking Mode if compatible.
func generateConfig(modelName string) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature:     float32Ptr(0.3),
		MaxOutputTokens: int32(10000),
	}

	if strings.HasPrefix(modelName, "gemini-3") {
		config.ThinkingConfig = &genai.ThinkingConfig{
			IncludeThoughts: true,
			ThinkingLevel:   genai.ThinkingLevelHigh,
		}
	}

	return config
}

func float32Ptr(f float32) *float32 {
	return &f
}

// formatResponse concatenates the text parts of every candidate, skipping
// thinking parts.
func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
	}
	return sb.String()
}

// classifyGenerateErr buckets a Gemini API failure. The SDK does not expose
// typed errors for these cases, so matching on the message is all there is.
func classifyGenerateErr(err error) error {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "quota") ||
		strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "resource exhausted") {
		return domainErrors.ErrGenerationQuotaExceeded.WithError(err)
	}

	if strings.Contains(errMsg, "invalid") ||
		strings.Contains(errMsg, "unauthorized") ||
		strings.Contains(errMsg, "api key") {
		return domainErrors.ErrGenerationKeyInvalid.WithError(err)
	}

	return domainErrors.ErrGenerationFailed.WithError(err)
}

package ai

import (
	"context"

	"github.com/thomas-vilte/mateforge/internal/models"
)

// SuggestionGenerator defines the interface for services that generate fix
// suggestions for issues.
type SuggestionGenerator interface {
	// GenerateSuggestion generates a fix suggestion for the issue described
	// by the task, using the model the task names. The returned text is
	// posted to the issue as-is, so implementations must not wrap or
	// truncate it.
	GenerateSuggestion(ctx context.Context, task models.SuggestionTask) (string, error)
}

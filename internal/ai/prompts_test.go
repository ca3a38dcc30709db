package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/mateforge/internal/models"
)

func TestBuildSuggestionPrompt(t *testing.T) {
	t.Run("should include the issue number, title and body", func(t *testing.T) {
		task := models.SuggestionTask{
			IssueNumber: 42,
			IssueTitle:  "Crash on empty config",
			IssueBody:   "The service panics when CONFIG_PATH points at an empty file.",
		}

		prompt, err := BuildSuggestionPrompt(task)

		require.NoError(t, err)
		assert.Contains(t, prompt, "Issue #42: Crash on empty config")
		assert.Contains(t, prompt, "The service panics when CONFIG_PATH points at an empty file.")
		assert.Contains(t, prompt, "Propose a concrete fix")
	})

	t.Run("should render with an empty body", func(t *testing.T) {
		task := models.SuggestionTask{
			IssueNumber: 7,
			IssueTitle:  "Just a title",
		}

		prompt, err := BuildSuggestionPrompt(task)

		require.NoError(t, err)
		assert.Contains(t, prompt, "Issue #7: Just a title")
	})
}

func TestRenderPrompt(t *testing.T) {
	t.Run("should fail on an invalid template", func(t *testing.T) {
		_, err := RenderPrompt("broken", "{{.Unclosed", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing template")
	})
}

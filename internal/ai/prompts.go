package ai

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/thomas-vilte/mateforge/internal/models"
)

// PromptData holds the parameters for template rendering
type PromptData struct {
	IssueNumber int
	IssueTitle  string
	IssueBody   string
}

// RenderPrompt renders a prompt template with the provided data
func RenderPrompt(name, tmplStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("error parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

const suggestionPromptTemplate = `# Task
Act as a senior software engineer triaging a bug report. Propose a concrete fix for the issue below.

# Issue #{{.IssueNumber}}: {{.IssueTitle}}

{{.IssueBody}}

# Instructions
1. Diagnose the most likely root cause from the report alone. Do not invent symptoms that are not in the report.
2. Propose a concrete fix: name the files, functions or configuration that need to change and describe the change.
3. If the report is too vague to diagnose, say exactly what information is missing and how to capture it.
4. Answer in plain markdown, ready to be posted as an issue comment. No preamble, no closing remarks.`

// BuildSuggestionPrompt builds the prompt asking for a fix suggestion from
// the issue content carried by the task.
func BuildSuggestionPrompt(task models.SuggestionTask) (string, error) {
	data := PromptData{
		IssueNumber: task.IssueNumber,
		IssueTitle:  task.IssueTitle,
		IssueBody:   task.IssueBody,
	}
	return RenderPrompt("suggestionPrompt", suggestionPromptTemplate, data)
}

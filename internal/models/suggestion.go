package models

// SuggestionTask is the request-scoped state of one fix-suggestion run.
// IssueTitle and IssueBody are filled from the issue fetched within this
// task; the generated suggestion derives only from that content, never from
// anything cached across tasks.
type SuggestionTask struct {
	Owner       string
	Repo        string
	IssueNumber int
	Model       string

	IssueTitle string
	IssueBody  string
	Suggestion string
}

// SuggestionResult is returned when the fix-suggestion pipeline completes.
// Suggestion holds exactly the text the generation backend returned, which
// is also exactly the text posted as the comment.
type SuggestionResult struct {
	IssueNumber int      `json:"issue_number"`
	Model       string   `json:"model"`
	Suggestion  string   `json:"suggestion"`
	Comment     *Comment `json:"comment"`
}

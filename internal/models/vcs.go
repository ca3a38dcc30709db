package models

type (
	// Reference is a named pointer (branch) in the hosting API's object
	// model. Ref is the branch name as the API reports it.
	Reference struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	}

	// Commit is a Git-data commit object: its own SHA plus the tree
	// snapshot it references.
	Commit struct {
		SHA     string `json:"sha"`
		TreeSHA string `json:"tree_sha"`
	}

	// PullRequest mirrors the fields of the hosting API's pull request
	// representation that responses echo back to the caller.
	PullRequest struct {
		ID      int64     `json:"id"`
		Number  int       `json:"number"`
		Title   string    `json:"title"`
		State   string    `json:"state"`
		HTMLURL string    `json:"html_url"`
		Head    Reference `json:"head"`
		Base    Reference `json:"base"`
	}

	// Issue is the hosting API's issue representation.
	Issue struct {
		ID      int64    `json:"id"`
		Number  int      `json:"number"`
		Title   string   `json:"title"`
		Body    string   `json:"body,omitempty"`
		State   string   `json:"state"`
		HTMLURL string   `json:"html_url"`
		Labels  []string `json:"labels,omitempty"`
	}

	// IssueUpdate is a partial issue edit. Nil fields are left untouched
	// upstream; closing an issue is State "closed".
	IssueUpdate struct {
		Title *string
		Body  *string
		State *string
	}

	// Comment is a comment posted on an issue.
	Comment struct {
		ID      int64  `json:"id"`
		Body    string `json:"body"`
		HTMLURL string `json:"html_url"`
	}

	// Repository is the hosting API's repository representation.
	Repository struct {
		ID            int64  `json:"id"`
		Name          string `json:"name"`
		FullName      string `json:"full_name"`
		Description   string `json:"description,omitempty"`
		Private       bool   `json:"private"`
		HTMLURL       string `json:"html_url"`
		DefaultBranch string `json:"default_branch,omitempty"`
	}
)

package models

// TransactionStep names one step of a multi-call pipeline against the
// hosting API. Failure responses carry the step so callers know exactly how
// far a partially applied run got.
type TransactionStep string

// Steps of the create-pull-request transaction, in execution order.
const (
	StepFetchBaseRef      TransactionStep = "FetchBaseRef"
	StepCreateBranch      TransactionStep = "CreateBranch"
	StepCreateBlob        TransactionStep = "CreateBlob"
	StepFetchBaseTree     TransactionStep = "FetchBaseTree"
	StepCreateTree        TransactionStep = "CreateTree"
	StepCreateCommit      TransactionStep = "CreateCommit"
	StepUpdateBranchRef   TransactionStep = "UpdateBranchRef"
	StepCreatePullRequest TransactionStep = "CreatePullRequest"
)

// Steps of the fix-suggestion pipeline.
const (
	StepFetchIssue         TransactionStep = "FetchIssue"
	StepGenerateSuggestion TransactionStep = "GenerateSuggestion"
	StepPostComment        TransactionStep = "PostComment"
)

// Step of the standalone branch-creation pipeline. Its second step reuses
// StepCreateBranch.
const (
	StepFetchSourceRef TransactionStep = "FetchSourceRef"
)

// PullRequestTransaction is the request-scoped state of one
// create-pull-request run. Input fields are set once from the request; SHA
// fields are populated by the orchestrator as each remote step succeeds and
// are immutable afterwards, so every step reads the freshest identifier its
// predecessors produced. The whole struct is discarded when the response
// returns; nothing is persisted or shared across requests.
type PullRequestTransaction struct {
	Owner       string
	Repo        string
	Base        string
	BranchName  string
	Title       string
	Body        string
	FilePath    string
	FileContent string

	// Populated in step order.
	BaseRefSHA    string
	BaseCommitSHA string
	BaseTreeSHA   string
	BlobSHA       string
	TreeSHA       string
	CommitSHA     string

	PullRequest *PullRequest
}

// CommitMessage derives the commit message from the pull request title and
// body.
func (t *PullRequestTransaction) CommitMessage() string {
	if t.Body == "" {
		return t.Title
	}
	return t.Title + "\n\n" + t.Body
}

package types

type (
	UserID     string
	RepoID     string
	RunID      int64
	WorkflowID int64
	FeedItemID string
	ReportID   string
	BranchName string
	CommitSHA  string

	// PageCursor is an opaque continuation token for the notification feed.
	// The current backend encodes a page number in it, but the client never
	// interprets the content.
	PageCursor string

	RepoStatus    string
	WebhookStatus string
	RunStatus     string
	RunConclusion string
)

const (
	RepoStatusPending RepoStatus = "Pending"
	RepoStatusSuccess RepoStatus = "Success"
	RepoStatusFailed  RepoStatus = "Failed"
)

const (
	WebhookStatusUnconfigured WebhookStatus = "Unconfigured"
	WebhookStatusPending      WebhookStatus = "Pending"
	WebhookStatusConfigured   WebhookStatus = "Configured"
	WebhookStatusFailed       WebhookStatus = "Failed"
)

const (
	RunStatusQueued     RunStatus = "queued"
	RunStatusInProgress RunStatus = "in_progress"
	RunStatusCompleted  RunStatus = "completed"
)

const (
	RunConclusionSuccess        RunConclusion = "success"
	RunConclusionFailure        RunConclusion = "failure"
	RunConclusionNeutral        RunConclusion = "neutral"
	RunConclusionCancelled      RunConclusion = "cancelled"
	RunConclusionSkipped        RunConclusion = "skipped"
	RunConclusionStale          RunConclusion = "stale"
	RunConclusionActionRequired RunConclusion = "action_required"
	RunConclusionTimedOut       RunConclusion = "timed_out"
	RunConclusionStartupFailure RunConclusion = "startup_failure"
	RunConclusionNone           RunConclusion = ""
)

// EntityKind identifies the resource family a mutation targets. The mutation
// coordinator serializes in-flight writes per (EntityKind, ID) pair.
type EntityKind string

const (
	KindRepository EntityKind = "repository"
	KindWebhook    EntityKind = "webhook"
	KindRun        EntityKind = "workflow_run"
	KindReport     EntityKind = "report"
)

// ReportDecision is a moderation action on a mismatch report.
type ReportDecision string

const (
	ReportApprove ReportDecision = "approve"
	ReportReject  ReportDecision = "reject"
)

package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Backend Confirmer

import (
	"context"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// Backend is the REST collaborator that owns all business logic: prediction
// inference, pipeline aggregation, and GitHub synchronization all happen
// behind it. The client only reads snapshots and submits mutations.
type Backend interface {
	// Repository lifecycle
	ListRepositories(ctx context.Context) ([]*model.Repository, error)
	CreateRepository(ctx context.Context, input *model.CreateRepositoryInput) (*model.Repository, error)
	UpdateRepository(ctx context.Context, id types.RepoID, input *model.UpdateRepositoryInput) (*model.Repository, error)
	DeleteRepository(ctx context.Context, id types.RepoID) error

	// Webhook lifecycle
	ListWebhooks(ctx context.Context) ([]*model.Webhook, error)
	CheckWebhook(ctx context.Context, repoID types.RepoID) (*model.Webhook, error)
	ConfigureWebhook(ctx context.Context, input *model.ConfigureWebhookInput) (*model.Webhook, error)
	UpdateWebhook(ctx context.Context, input *model.ConfigureWebhookInput) (*model.Webhook, error)
	DeleteWebhook(ctx context.Context, repoID types.RepoID) error
	TriggerSync(ctx context.Context) error

	// Workflow runs
	ListRuns(ctx context.Context, filter *model.RunFilter) ([]*model.WorkflowRun, error)
	GetRun(ctx context.Context, id types.RunID) (*model.WorkflowRun, error)
	RerunWorkflow(ctx context.Context, id types.RunID) error

	// Notification feed
	ListCommits(ctx context.Context, cursor types.PageCursor, limit int) (*model.FeedPage, error)

	// Predictions
	LatestPrediction(ctx context.Context) (*model.Prediction, error)
	BatchPredictions(ctx context.Context, runIDs []types.RunID) ([]*model.Prediction, error)
	GetPrediction(ctx context.Context, runID types.RunID) (*model.Prediction, error)

	// Mismatch report moderation
	ReportAction(ctx context.Context, id types.ReportID, decision types.ReportDecision) error
	DeleteReport(ctx context.Context, id types.ReportID) error
}

// Confirmer is the confirmation gate's acknowledgment source. Implementations
// must not mutate anything; a false answer means the action never reaches the
// mutation coordinator.
type Confirmer interface {
	RequestConfirmation(ctx context.Context, action *model.Action) (bool, error)
}

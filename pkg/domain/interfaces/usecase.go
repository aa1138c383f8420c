package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

type UseCase interface {
	// Repository lifecycle
	CreateRepository(ctx context.Context, input *model.CreateRepositoryInput) (*model.Repository, error)
	UpdateRepository(ctx context.Context, id types.RepoID, input *model.UpdateRepositoryInput) (*model.Repository, error)
	DeleteRepository(ctx context.Context, id types.RepoID) error
	RetryRepository(ctx context.Context, id types.RepoID) (*model.Repository, error)
	GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error)
	ListRepositories(ctx context.Context, filter *model.RepoFilter) ([]*model.Repository, error)

	// Webhook lifecycle
	ConfigureWebhook(ctx context.Context, input *model.ConfigureWebhookInput) (*model.Webhook, error)
	UpdateWebhook(ctx context.Context, input *model.ConfigureWebhookInput) (*model.Webhook, error)
	DeleteWebhook(ctx context.Context, repoID types.RepoID) error
	TriggerSync(ctx context.Context) error
	GetWebhook(ctx context.Context, repoID types.RepoID) (*model.Webhook, error)
	ListWebhooks(ctx context.Context) ([]*model.Webhook, error)

	// Workflow runs
	ListRuns(ctx context.Context, filter *model.RunFilter) ([]*model.WorkflowRun, error)
	GetRun(ctx context.Context, id types.RunID) (*model.WorkflowRun, error)
	RerunWorkflow(ctx context.Context, id types.RunID) error

	// Notification feed
	LoadMoreFeed(ctx context.Context) (*model.FeedResult, error)
	ResetFeed(ctx context.Context) error
	ListFeedItems(ctx context.Context) ([]*model.FeedItem, error)

	// Predictions
	GetPrediction(ctx context.Context, runID types.RunID) (*model.Prediction, error)
	LatestPrediction(ctx context.Context) (*model.Prediction, error)
	ListMismatches(ctx context.Context) ([]*model.MismatchRecord, error)

	// Report moderation
	ApproveReport(ctx context.Context, id types.ReportID) error
	RejectReport(ctx context.Context, id types.ReportID) error
	DeleteReport(ctx context.Context, id types.ReportID) error

	// Reconciliation
	RefreshAll(ctx context.Context) error
	ListEvents(ctx context.Context) []*model.StatusEvent
}

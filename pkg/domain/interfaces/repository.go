package interfaces

import (
	"context"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// Store is the resource store: the single source of truth for everything the
// UI renders. All reads return deep copies and all writes go through
// Upsert/Remove; nothing outside the store mutates entity state in place.
type Store interface {
	// Repository operations
	GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error)
	ListRepositories(ctx context.Context, filter *model.RepoFilter) ([]*model.Repository, error)
	UpsertRepository(ctx context.Context, repo *model.Repository) error
	RemoveRepository(ctx context.Context, id types.RepoID) error

	// Webhook operations
	GetWebhook(ctx context.Context, repoID types.RepoID) (*model.Webhook, error)
	ListWebhooks(ctx context.Context) ([]*model.Webhook, error)
	UpsertWebhook(ctx context.Context, hook *model.Webhook) error
	RemoveWebhook(ctx context.Context, repoID types.RepoID) error

	// Workflow run operations
	GetRun(ctx context.Context, id types.RunID) (*model.WorkflowRun, error)
	ListRuns(ctx context.Context, filter *model.RunFilter) ([]*model.WorkflowRun, error)
	UpsertRun(ctx context.Context, run *model.WorkflowRun) error
	RemoveRun(ctx context.Context, id types.RunID) error

	// Notification feed operations. AppendFeedItems keeps insertion order,
	// drops items whose ID is already present, and returns the number of
	// items actually appended.
	AppendFeedItems(ctx context.Context, items []*model.FeedItem) (int, error)
	ListFeedItems(ctx context.Context) ([]*model.FeedItem, error)
	ClearFeed(ctx context.Context) error

	// Prediction operations
	GetPrediction(ctx context.Context, runID types.RunID) (*model.Prediction, error)
	ListPredictions(ctx context.Context) ([]*model.Prediction, error)
	UpsertPrediction(ctx context.Context, pred *model.Prediction) error
}

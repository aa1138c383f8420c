package memory

import (
	"sync"

	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// New creates a new in-memory resource store
func New() interfaces.Store {
	return &resourceStore{
		repos:       make(map[types.RepoID]*model.Repository),
		webhooks:    make(map[types.RepoID]*model.Webhook),
		runs:        make(map[types.RunID]*model.WorkflowRun),
		feedIndex:   make(map[types.FeedItemID]struct{}),
		predictions: make(map[types.RunID]*model.Prediction),
	}
}

type resourceStore struct {
	mu          sync.RWMutex
	repos       map[types.RepoID]*model.Repository
	webhooks    map[types.RepoID]*model.Webhook
	runs        map[types.RunID]*model.WorkflowRun
	feed        []*model.FeedItem
	feedIndex   map[types.FeedItemID]struct{}
	predictions map[types.RunID]*model.Prediction
}

// Helper functions for deep copy. Reads hand out copies so that no caller can
// mutate stored state in place.

func copyRepository(repo *model.Repository) *model.Repository {
	if repo == nil {
		return nil
	}
	cpy := *repo
	return &cpy
}

func copyWebhook(hook *model.Webhook) *model.Webhook {
	if hook == nil {
		return nil
	}
	cpy := *hook

	if hook.Events != nil {
		cpy.Events = make([]string, len(hook.Events))
		copy(cpy.Events, hook.Events)
	}

	return &cpy
}

func copyRun(run *model.WorkflowRun) *model.WorkflowRun {
	if run == nil {
		return nil
	}
	cpy := *run
	return &cpy
}

func copyFeedItem(item *model.FeedItem) *model.FeedItem {
	if item == nil {
		return nil
	}
	cpy := *item
	return &cpy
}

func copyPrediction(pred *model.Prediction) *model.Prediction {
	if pred == nil {
		return nil
	}
	cpy := *pred

	if pred.Predicted != nil {
		v := *pred.Predicted
		cpy.Predicted = &v
	}
	if pred.Actual != nil {
		v := *pred.Actual
		cpy.Actual = &v
	}

	return &cpy
}

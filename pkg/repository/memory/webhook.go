package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository"
)

func (r *resourceStore) GetWebhook(ctx context.Context, repoID types.RepoID) (*model.Webhook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hook, exists := r.webhooks[repoID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "webhook not found",
			goerr.V("repoID", repoID),
		)
	}

	return copyWebhook(hook), nil
}

func (r *resourceStore) ListWebhooks(ctx context.Context) ([]*model.Webhook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hooks := make([]*model.Webhook, 0, len(r.webhooks))
	for _, hook := range r.webhooks {
		hooks = append(hooks, copyWebhook(hook))
	}

	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].RepoID < hooks[j].RepoID
	})

	return hooks, nil
}

func (r *resourceStore) UpsertWebhook(ctx context.Context, hook *model.Webhook) error {
	if hook == nil || hook.RepoID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "webhook repository ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.webhooks[hook.RepoID] = copyWebhook(hook)
	return nil
}

func (r *resourceStore) RemoveWebhook(ctx context.Context, repoID types.RepoID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.webhooks[repoID]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "webhook not found",
			goerr.V("repoID", repoID),
		)
	}

	delete(r.webhooks, repoID)
	return nil
}

package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository"
)

func (r *resourceStore) AppendFeedItems(ctx context.Context, items []*model.FeedItem) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var appended int
	for _, item := range items {
		if item == nil || item.ID == "" {
			return appended, goerr.Wrap(repository.ErrInvalidInput, "feed item ID is empty")
		}

		// Identity is the dedupe key: the same page fetched twice due to a
		// race must not yield duplicate rows.
		if _, exists := r.feedIndex[item.ID]; exists {
			continue
		}

		r.feed = append(r.feed, copyFeedItem(item))
		r.feedIndex[item.ID] = struct{}{}
		appended++
	}

	return appended, nil
}

func (r *resourceStore) ListFeedItems(ctx context.Context) ([]*model.FeedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.FeedItem, 0, len(r.feed))
	for _, item := range r.feed {
		items = append(items, copyFeedItem(item))
	}

	return items, nil
}

func (r *resourceStore) ClearFeed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.feed = nil
	r.feedIndex = make(map[types.FeedItemID]struct{})
	return nil
}

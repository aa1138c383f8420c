package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/utils/logging"
)

type feedPhase int

const (
	feedIdle feedPhase = iota
	feedLoading
	feedExhausted
)

// feedState drives the paginated feed controller. A load moves the feed from
// idle to loading, and completion settles it back to idle or, once the
// backend reports the end of data, to exhausted. The cursor is opaque; only
// the backend interprets it.
type feedState struct {
	mu     sync.Mutex
	phase  feedPhase
	cursor types.PageCursor
}

// LoadMoreFeed fetches the next feed page and appends it to the store.
// A call while a fetch is in flight is a no-op, not queued, so a double
// trigger cannot fetch the same page twice. Once the backend reports the end
// of data, further calls are permanent no-ops until ResetFeed.
func (x *UseCase) LoadMoreFeed(ctx context.Context) (*model.FeedResult, error) {
	x.feed.mu.Lock()
	switch x.feed.phase {
	case feedLoading:
		x.feed.mu.Unlock()
		return &model.FeedResult{Appended: 0, HasMore: true}, nil
	case feedExhausted:
		x.feed.mu.Unlock()
		return &model.FeedResult{Appended: 0, HasMore: false}, nil
	}
	x.feed.phase = feedLoading
	cursor := x.feed.cursor
	x.feed.mu.Unlock()

	page, err := x.clients.Backend().ListCommits(ctx, cursor, x.feedPageSize)
	if err != nil {
		x.feed.mu.Lock()
		x.feed.phase = feedIdle
		x.feed.mu.Unlock()
		return nil, err
	}

	appended, err := x.clients.Store().AppendFeedItems(ctx, page.Items)
	if err != nil {
		x.feed.mu.Lock()
		x.feed.phase = feedIdle
		x.feed.mu.Unlock()
		return nil, err
	}

	x.feed.mu.Lock()
	x.feed.cursor = page.NextCursor
	if page.HasMore {
		x.feed.phase = feedIdle
	} else {
		x.feed.phase = feedExhausted
	}
	x.feed.mu.Unlock()

	logging.From(ctx).Debug("feed page loaded",
		slog.Int("appended", appended),
		slog.Bool("hasMore", page.HasMore),
	)

	return &model.FeedResult{Appended: appended, HasMore: page.HasMore}, nil
}

// ResetFeed returns the controller to its initial state, e.g. on a scope
// change. The stored sequence is cleared and paging restarts from the top.
func (x *UseCase) ResetFeed(ctx context.Context) error {
	x.feed.mu.Lock()
	x.feed.phase = feedIdle
	x.feed.cursor = ""
	x.feed.mu.Unlock()

	return x.clients.Store().ClearFeed(ctx)
}

func (x *UseCase) ListFeedItems(ctx context.Context) ([]*model.FeedItem, error) {
	return x.clients.Store().ListFeedItems(ctx)
}

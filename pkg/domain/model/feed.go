package model

import (
	"time"

	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// FeedItem is a commit/push notification. The feed is append-only and
// insertion-ordered; items are never reordered or rewritten.
type FeedItem struct {
	ID        types.FeedItemID `json:"id"`
	Author    string           `json:"author"`
	Message   string           `json:"message"`
	RunID     types.RunID      `json:"run_id"`
	CreatedAt time.Time        `json:"created_at"`
}

// FeedPage is one fetched page of the notification feed.
type FeedPage struct {
	Items      []*FeedItem      `json:"items"`
	NextCursor types.PageCursor `json:"next_cursor"`
	HasMore    bool             `json:"has_more"`
}

// FeedResult is the outcome of a load-more call: how many items were actually
// appended (duplicates from a raced page fetch are dropped by ID) and whether
// more pages remain.
type FeedResult struct {
	Appended int  `json:"appended"`
	HasMore  bool `json:"has_more"`
}

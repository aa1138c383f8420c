package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

type feedPagePayload struct {
	Items    []*model.FeedItem `json:"items"`
	HasMore  bool              `json:"has_more"`
	NextPage types.PageCursor  `json:"next_page"`
}

// ListCommits fetches one page of the notification feed. The cursor is opaque
// to the caller; an empty cursor requests the first page.
func (x *Client) ListCommits(ctx context.Context, cursor types.PageCursor, limit int) (*model.FeedPage, error) {
	query := url.Values{
		"user_id": {x.userID()},
		"limit":   {strconv.Itoa(limit)},
	}
	if cursor == "" {
		cursor = "1"
	}
	query.Set("page", string(cursor))

	var payload feedPagePayload
	if err := x.do(ctx, http.MethodGet, "/commits", query, nil, &payload); err != nil {
		return nil, err
	}

	return &model.FeedPage{
		Items:      payload.Items,
		NextCursor: payload.NextPage,
		HasMore:    payload.HasMore,
	}, nil
}

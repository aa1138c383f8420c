package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/pipewatch/pipewatch/pkg/domain/mock"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository/memory"
)

func feedPage(start, n int, next types.PageCursor, hasMore bool) *model.FeedPage {
	items := make([]*model.FeedItem, n)
	for i := range items {
		items[i] = &model.FeedItem{
			ID:      types.FeedItemID(fmt.Sprintf("c%d", start+i)),
			Author:  "dev",
			Message: fmt.Sprintf("commit %d", start+i),
		}
	}
	return &model.FeedPage{Items: items, NextCursor: next, HasMore: hasMore}
}

func TestLoadMoreFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("pages until exhaustion, then stays exhausted", func(t *testing.T) {
		pages := map[types.PageCursor]*model.FeedPage{
			"":  feedPage(0, 5, "2", true),
			"2": feedPage(5, 5, "3", true),
			"3": feedPage(10, 2, "", false),
		}
		mockBE := &mock.BackendMock{
			ListCommitsFunc: func(ctx context.Context, cursor types.PageCursor, limit int) (*model.FeedPage, error) {
				gt.V(t, limit).Equal(5)
				page, ok := pages[cursor]
				gt.B(t, ok).True()
				return page, nil
			},
		}
		store := memory.New()
		uc := newTestUseCase(mockBE, store)

		res := gt.R1(uc.LoadMoreFeed(ctx)).NoError(t)
		gt.V(t, res.Appended).Equal(5)
		gt.B(t, res.HasMore).True()

		res = gt.R1(uc.LoadMoreFeed(ctx)).NoError(t)
		gt.V(t, res.Appended).Equal(5)

		res = gt.R1(uc.LoadMoreFeed(ctx)).NoError(t)
		gt.V(t, res.Appended).Equal(2)
		gt.B(t, res.HasMore).False()

		// The controller is exhausted: no further backend calls.
		res = gt.R1(uc.LoadMoreFeed(ctx)).NoError(t)
		gt.V(t, res.Appended).Equal(0)
		gt.B(t, res.HasMore).False()
		gt.A(t, mockBE.ListCommitsCalls()).Length(3)

		items := gt.R1(store.ListFeedItems(ctx)).NoError(t)
		gt.A(t, items).Length(12)
		gt.V(t, items[0].ID).Equal(types.FeedItemID("c0"))
		gt.V(t, items[11].ID).Equal(types.FeedItemID("c11"))
	})

	t.Run("a call while loading is a no-op, not a queue", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		mockBE := &mock.BackendMock{
			ListCommitsFunc: func(ctx context.Context, cursor types.PageCursor, limit int) (*model.FeedPage, error) {
				close(entered)
				<-release
				return feedPage(0, 5, "2", true), nil
			},
		}
		uc := newTestUseCase(mockBE, nil)

		firstDone := make(chan error, 1)
		go func() {
			_, err := uc.LoadMoreFeed(ctx)
			firstDone <- err
		}()

		select {
		case <-entered:
		case <-time.After(5 * time.Second):
			t.Fatal("first load never reached the backend")
		}

		res := gt.R1(uc.LoadMoreFeed(ctx)).NoError(t)
		gt.V(t, res.Appended).Equal(0)
		gt.B(t, res.HasMore).True()

		close(release)
		gt.NoError(t, <-firstDone)
		gt.A(t, mockBE.ListCommitsCalls()).Length(1)
	})

	t.Run("a failed fetch can be retried at the same cursor", func(t *testing.T) {
		var calls int
		mockBE := &mock.BackendMock{
			ListCommitsFunc: func(ctx context.Context, cursor types.PageCursor, limit int) (*model.FeedPage, error) {
				calls++
				gt.V(t, cursor).Equal(types.PageCursor(""))
				if calls == 1 {
					return nil, types.ErrNetwork
				}
				return feedPage(0, 5, "2", true), nil
			},
		}
		uc := newTestUseCase(mockBE, nil)

		_, err := uc.LoadMoreFeed(ctx)
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrNetwork)).True()

		res := gt.R1(uc.LoadMoreFeed(ctx)).NoError(t)
		gt.V(t, res.Appended).Equal(5)
	})
}

func TestResetFeed(t *testing.T) {
	ctx := context.Background()

	var cursors []types.PageCursor
	mockBE := &mock.BackendMock{
		ListCommitsFunc: func(ctx context.Context, cursor types.PageCursor, limit int) (*model.FeedPage, error) {
			cursors = append(cursors, cursor)
			return feedPage(0, 2, "", false), nil
		},
	}
	store := memory.New()
	uc := newTestUseCase(mockBE, store)

	gt.R1(uc.LoadMoreFeed(ctx)).NoError(t)
	gt.NoError(t, uc.ResetFeed(ctx))

	items := gt.R1(store.ListFeedItems(ctx)).NoError(t)
	gt.A(t, items).Length(0)

	// Reset lifts the exhausted state and restarts from the top.
	res := gt.R1(uc.LoadMoreFeed(ctx)).NoError(t)
	gt.V(t, res.Appended).Equal(2)
	gt.V(t, cursors).Equal([]types.PageCursor{"", ""})
}

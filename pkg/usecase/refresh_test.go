package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/m-mizutani/gt"
	"github.com/pipewatch/pipewatch/pkg/domain/mock"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository/memory"
	"github.com/pipewatch/pipewatch/pkg/usecase"
)

func TestRefreshRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("transition into failed emits one event", func(t *testing.T) {
		store := memory.New()
		gt.NoError(t, store.UpsertRepository(ctx, &model.Repository{
			ID:     "r1",
			URL:    "https://github.com/pipewatch/demo",
			Status: types.RepoStatusPending,
		}))

		mockBE := &mock.BackendMock{
			ListRepositoriesFunc: func(ctx context.Context) ([]*model.Repository, error) {
				return []*model.Repository{{
					ID:     "r1",
					URL:    "https://github.com/pipewatch/demo",
					Status: types.RepoStatusFailed,
				}}, nil
			},
		}
		uc := newTestUseCase(mockBE, store)

		gt.NoError(t, uc.RefreshRepositories(ctx))
		events := uc.ListEvents(ctx)
		gt.A(t, events).Length(1)
		gt.V(t, events[0].Kind).Equal(types.KindRepository)
		gt.V(t, events[0].ToStatus).Equal(string(types.RepoStatusFailed))

		// The same failed state observed again is not a new transition.
		gt.NoError(t, uc.RefreshRepositories(ctx))
		gt.A(t, uc.ListEvents(ctx)).Length(1)
	})

	t.Run("entities absent from the snapshot are pruned", func(t *testing.T) {
		store := memory.New()
		gt.NoError(t, store.UpsertRepository(ctx, &model.Repository{
			ID:     "gone",
			URL:    "https://github.com/pipewatch/gone",
			Status: types.RepoStatusSuccess,
		}))

		mockBE := &mock.BackendMock{
			ListRepositoriesFunc: func(ctx context.Context) ([]*model.Repository, error) {
				return []*model.Repository{{
					ID:     "r1",
					URL:    "https://github.com/pipewatch/demo",
					Status: types.RepoStatusSuccess,
				}}, nil
			},
		}
		uc := newTestUseCase(mockBE, store)

		gt.NoError(t, uc.RefreshRepositories(ctx))
		_, err := store.GetRepository(ctx, "gone")
		gt.Error(t, err)
		gt.R1(store.GetRepository(ctx, "r1")).NoError(t)
	})

	t.Run("a failed fetch keeps the last known-good state", func(t *testing.T) {
		store := memory.New()
		gt.NoError(t, store.UpsertRepository(ctx, &model.Repository{
			ID:     "r1",
			URL:    "https://github.com/pipewatch/demo",
			Status: types.RepoStatusSuccess,
		}))

		mockBE := &mock.BackendMock{
			ListRepositoriesFunc: func(ctx context.Context) ([]*model.Repository, error) {
				return nil, errors.New("backend exploded")
			},
		}
		uc := newTestUseCase(mockBE, store)

		gt.Error(t, uc.RefreshRepositories(ctx))
		// Non-network errors are not retried.
		gt.A(t, mockBE.ListRepositoriesCalls()).Length(1)

		repo := gt.R1(store.GetRepository(ctx, "r1")).NoError(t)
		gt.V(t, repo.Status).Equal(types.RepoStatusSuccess)
	})

	t.Run("transient network errors are retried", func(t *testing.T) {
		var calls int
		mockBE := &mock.BackendMock{
			ListRepositoriesFunc: func(ctx context.Context) ([]*model.Repository, error) {
				calls++
				if calls == 1 {
					return nil, types.ErrNetwork
				}
				return nil, nil
			},
		}
		uc := newTestUseCase(mockBE, nil)

		gt.NoError(t, uc.RefreshRepositories(ctx))
		gt.V(t, calls).Equal(2)
	})
}

func TestRefreshWebhooks(t *testing.T) {
	ctx := context.Background()

	t.Run("webhook stuck in pending beyond expiry is failed locally", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		store := memory.New()
		gt.NoError(t, store.UpsertWebhook(ctx, &model.Webhook{
			RepoID:       "r1",
			Status:       types.WebhookStatusPending,
			PendingSince: clock.Now(),
		}))

		mockBE := &mock.BackendMock{
			ListWebhooksFunc: func(ctx context.Context) ([]*model.Webhook, error) {
				return []*model.Webhook{{
					RepoID: "r1",
					Status: types.WebhookStatusPending,
				}}, nil
			},
		}
		uc := newTestUseCase(mockBE, store,
			usecase.WithClock(clock),
			usecase.WithWebhookPendingExpiry(15*time.Minute),
		)

		// Within the expiry window nothing changes.
		clock.Advance(10 * time.Minute)
		gt.NoError(t, uc.RefreshWebhooks(ctx))
		hook := gt.R1(store.GetWebhook(ctx, "r1")).NoError(t)
		gt.V(t, hook.Status).Equal(types.WebhookStatusPending)
		gt.A(t, uc.ListEvents(ctx)).Length(0)

		clock.Advance(10 * time.Minute)
		gt.NoError(t, uc.RefreshWebhooks(ctx))
		hook = gt.R1(store.GetWebhook(ctx, "r1")).NoError(t)
		gt.V(t, hook.Status).Equal(types.WebhookStatusFailed)

		events := uc.ListEvents(ctx)
		gt.A(t, events).Length(1)
		gt.V(t, events[0].Kind).Equal(types.KindWebhook)
		gt.V(t, events[0].ToStatus).Equal(string(types.WebhookStatusFailed))
	})

	t.Run("expired webhook stays failed while the server keeps reporting pending", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		store := memory.New()
		gt.NoError(t, store.UpsertWebhook(ctx, &model.Webhook{
			RepoID:       "r1",
			Status:       types.WebhookStatusPending,
			PendingSince: clock.Now(),
		}))

		mockBE := &mock.BackendMock{
			ListWebhooksFunc: func(ctx context.Context) ([]*model.Webhook, error) {
				return []*model.Webhook{{
					RepoID: "r1",
					Status: types.WebhookStatusPending,
				}}, nil
			},
		}
		uc := newTestUseCase(mockBE, store,
			usecase.WithClock(clock),
			usecase.WithWebhookPendingExpiry(15*time.Minute),
		)

		clock.Advance(20 * time.Minute)
		gt.NoError(t, uc.RefreshWebhooks(ctx))
		gt.A(t, uc.ListEvents(ctx)).Length(1)

		// Later cycles see the same stale Pending snapshot. The local Failed
		// verdict must hold and the event must not repeat.
		for i := 0; i < 3; i++ {
			clock.Advance(20 * time.Minute)
			gt.NoError(t, uc.RefreshWebhooks(ctx))

			hook := gt.R1(store.GetWebhook(ctx, "r1")).NoError(t)
			gt.V(t, hook.Status).Equal(types.WebhookStatusFailed)
			gt.A(t, uc.ListEvents(ctx)).Length(1)
		}
	})

	t.Run("pending stamp survives consecutive observations", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		store := memory.New()
		stamped := clock.Now()
		gt.NoError(t, store.UpsertWebhook(ctx, &model.Webhook{
			RepoID:       "r1",
			Status:       types.WebhookStatusPending,
			PendingSince: stamped,
		}))

		mockBE := &mock.BackendMock{
			ListWebhooksFunc: func(ctx context.Context) ([]*model.Webhook, error) {
				return []*model.Webhook{{
					RepoID: "r1",
					Status: types.WebhookStatusPending,
				}}, nil
			},
		}
		uc := newTestUseCase(mockBE, store,
			usecase.WithClock(clock),
			usecase.WithWebhookPendingExpiry(time.Hour),
		)

		clock.Advance(5 * time.Minute)
		gt.NoError(t, uc.RefreshWebhooks(ctx))
		hook := gt.R1(store.GetWebhook(ctx, "r1")).NoError(t)
		gt.V(t, hook.PendingSince).Equal(stamped)
	})

	t.Run("leaving pending clears the stamp", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		store := memory.New()
		gt.NoError(t, store.UpsertWebhook(ctx, &model.Webhook{
			RepoID:       "r1",
			Status:       types.WebhookStatusPending,
			PendingSince: clock.Now(),
		}))

		mockBE := &mock.BackendMock{
			ListWebhooksFunc: func(ctx context.Context) ([]*model.Webhook, error) {
				return []*model.Webhook{{
					RepoID: "r1",
					Status: types.WebhookStatusConfigured,
				}}, nil
			},
		}
		uc := newTestUseCase(mockBE, store, usecase.WithClock(clock))

		gt.NoError(t, uc.RefreshWebhooks(ctx))
		hook := gt.R1(store.GetWebhook(ctx, "r1")).NoError(t)
		gt.V(t, hook.Status).Equal(types.WebhookStatusConfigured)
		gt.B(t, hook.PendingSince.IsZero()).True()
	})
}

func TestRefreshRuns(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	// Runs are history: an old run outside the backend window stays.
	gt.NoError(t, store.UpsertRun(ctx, &model.WorkflowRun{
		ID:     1,
		Status: types.RunStatusCompleted,
	}))

	mockBE := &mock.BackendMock{
		ListRunsFunc: func(ctx context.Context, filter *model.RunFilter) ([]*model.WorkflowRun, error) {
			return []*model.WorkflowRun{{
				ID:     2,
				Status: types.RunStatusInProgress,
			}}, nil
		},
	}
	uc := newTestUseCase(mockBE, store)

	gt.NoError(t, uc.RefreshRuns(ctx))
	gt.R1(store.GetRun(ctx, 1)).NoError(t)
	gt.R1(store.GetRun(ctx, 2)).NoError(t)
}

func TestRefreshAll(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	mockBE := &mock.BackendMock{
		ListRepositoriesFunc: func(ctx context.Context) ([]*model.Repository, error) {
			return []*model.Repository{{ID: "r1", Status: types.RepoStatusSuccess}}, nil
		},
		ListWebhooksFunc: func(ctx context.Context) ([]*model.Webhook, error) {
			return []*model.Webhook{{RepoID: "r1", Status: types.WebhookStatusConfigured}}, nil
		},
		ListRunsFunc: func(ctx context.Context, filter *model.RunFilter) ([]*model.WorkflowRun, error) {
			return []*model.WorkflowRun{{
				ID:         7,
				Status:     types.RunStatusCompleted,
				Conclusion: types.RunConclusionFailure,
			}}, nil
		},
		BatchPredictionsFunc: func(ctx context.Context, runIDs []types.RunID) ([]*model.Prediction, error) {
			gt.V(t, runIDs).Equal([]types.RunID{7})
			return []*model.Prediction{{
				RunID:     7,
				Predicted: boolPtr(true),
				Actual:    boolPtr(false),
			}}, nil
		},
	}
	uc := newTestUseCase(mockBE, store)

	gt.NoError(t, uc.RefreshAll(ctx))
	gt.R1(store.GetRepository(ctx, "r1")).NoError(t)
	gt.R1(store.GetWebhook(ctx, "r1")).NoError(t)
	gt.R1(store.GetPrediction(ctx, 7)).NoError(t)

	records := gt.R1(uc.ListMismatches(ctx)).NoError(t)
	gt.A(t, records).Length(1)
	gt.V(t, records[0].Run.ID).Equal(types.RunID(7))
}

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

func TestConfigureWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty secret", func(t *testing.T) {
		mockBE := &mock.BackendMock{}
		uc := newTestUseCase(mockBE, nil)

		_, err := uc.ConfigureWebhook(ctx, &model.ConfigureWebhookInput{RepoID: "r1"})
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrValidationFailed)).True()
		gt.A(t, mockBE.ConfigureWebhookCalls()).Length(0)
	})

	t.Run("stamps pending-since when entering pending", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		store := memory.New()
		mockBE := &mock.BackendMock{
			ConfigureWebhookFunc: func(ctx context.Context, input *model.ConfigureWebhookInput) (*model.Webhook, error) {
				return &model.Webhook{
					RepoID: input.RepoID,
					Status: types.WebhookStatusPending,
				}, nil
			},
		}
		uc := newTestUseCase(mockBE, store, usecase.WithClock(clock))

		hook := gt.R1(uc.ConfigureWebhook(ctx, &model.ConfigureWebhookInput{
			RepoID: "r1",
			Secret: "hunter2hunter2",
		})).NoError(t)
		gt.V(t, hook.Status).Equal(types.WebhookStatusPending)

		stored := gt.R1(store.GetWebhook(ctx, "r1")).NoError(t)
		gt.V(t, stored.PendingSince).Equal(clock.Now())
	})

	t.Run("a second configure while pending is denied", func(t *testing.T) {
		store := memory.New()
		gt.NoError(t, store.UpsertWebhook(ctx, &model.Webhook{
			RepoID: "r1",
			Status: types.WebhookStatusPending,
		}))

		mockBE := &mock.BackendMock{}
		uc := newTestUseCase(mockBE, store)

		_, err := uc.ConfigureWebhook(ctx, &model.ConfigureWebhookInput{
			RepoID: "r1",
			Secret: "hunter2hunter2",
		})
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrPrecondition)).True()
		gt.A(t, mockBE.ConfigureWebhookCalls()).Length(0)
	})
}

func TestUpdateWebhook(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, status types.WebhookStatus) *mock.BackendMock {
		t.Helper()
		return &mock.BackendMock{
			UpdateWebhookFunc: func(ctx context.Context, input *model.ConfigureWebhookInput) (*model.Webhook, error) {
				return &model.Webhook{RepoID: input.RepoID, Status: status}, nil
			},
		}
	}

	t.Run("requires confirmation", func(t *testing.T) {
		store := memory.New()
		gt.NoError(t, store.UpsertWebhook(ctx, &model.Webhook{
			RepoID: "r1",
			Status: types.WebhookStatusConfigured,
		}))
		mockBE := seed(t, types.WebhookStatusPending)
		uc := newTestUseCase(mockBE, store)

		_, err := uc.UpdateWebhook(ctx, &model.ConfigureWebhookInput{
			RepoID: "r1",
			Secret: "hunter2hunter2",
		})
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrConfirmationDeclined)).True()
		gt.A(t, mockBE.UpdateWebhookCalls()).Length(0)
	})

	t.Run("confirmed update goes through", func(t *testing.T) {
		store := memory.New()
		gt.NoError(t, store.UpsertWebhook(ctx, &model.Webhook{
			RepoID: "r1",
			Status: types.WebhookStatusConfigured,
		}))
		mockBE := seed(t, types.WebhookStatusPending)
		uc := newTestUseCase(mockBE, store)

		hook := gt.R1(uc.UpdateWebhook(usecase.WithConfirmation(ctx, true), &model.ConfigureWebhookInput{
			RepoID: "r1",
			Secret: "hunter2hunter2",
		})).NoError(t)
		gt.V(t, hook.Status).Equal(types.WebhookStatusPending)
		gt.A(t, mockBE.UpdateWebhookCalls()).Length(1)
	})

	t.Run("update is denied while pending", func(t *testing.T) {
		store := memory.New()
		gt.NoError(t, store.UpsertWebhook(ctx, &model.Webhook{
			RepoID: "r1",
			Status: types.WebhookStatusPending,
		}))
		mockBE := seed(t, types.WebhookStatusPending)
		uc := newTestUseCase(mockBE, store)

		_, err := uc.UpdateWebhook(usecase.WithConfirmation(ctx, true), &model.ConfigureWebhookInput{
			RepoID: "r1",
			Secret: "hunter2hunter2",
		})
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrPrecondition)).True()
	})
}

func TestDeleteWebhook(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gt.NoError(t, store.UpsertWebhook(ctx, &model.Webhook{
		RepoID: "r1",
		Status: types.WebhookStatusConfigured,
	}))

	mockBE := &mock.BackendMock{
		DeleteWebhookFunc: func(ctx context.Context, repoID types.RepoID) error {
			return nil
		},
	}
	uc := newTestUseCase(mockBE, store)

	err := uc.DeleteWebhook(ctx, "r1")
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrConfirmationDeclined)).True()
	gt.R1(store.GetWebhook(ctx, "r1")).NoError(t)

	gt.NoError(t, uc.DeleteWebhook(usecase.WithConfirmation(ctx, true), "r1"))
	_, err = store.GetWebhook(ctx, "r1")
	gt.Error(t, err)
}

func TestGetWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("store hit skips the backend", func(t *testing.T) {
		store := memory.New()
		gt.NoError(t, store.UpsertWebhook(ctx, &model.Webhook{
			RepoID: "r1",
			Status: types.WebhookStatusConfigured,
		}))

		mockBE := &mock.BackendMock{}
		uc := newTestUseCase(mockBE, store)

		hook := gt.R1(uc.GetWebhook(ctx, "r1")).NoError(t)
		gt.V(t, hook.Status).Equal(types.WebhookStatusConfigured)
		gt.A(t, mockBE.CheckWebhookCalls()).Length(0)
	})

	t.Run("store miss falls back to a backend check and caches", func(t *testing.T) {
		store := memory.New()
		mockBE := &mock.BackendMock{
			CheckWebhookFunc: func(ctx context.Context, repoID types.RepoID) (*model.Webhook, error) {
				return &model.Webhook{RepoID: repoID, Status: types.WebhookStatusUnconfigured}, nil
			},
		}
		uc := newTestUseCase(mockBE, store)

		hook := gt.R1(uc.GetWebhook(ctx, "r1")).NoError(t)
		gt.V(t, hook.Status).Equal(types.WebhookStatusUnconfigured)
		gt.R1(store.GetWebhook(ctx, "r1")).NoError(t)
	})
}

func TestTriggerSync(t *testing.T) {
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	mockBE := &mock.BackendMock{
		TriggerSyncFunc: func(ctx context.Context) error {
			close(entered)
			<-release
			return nil
		},
	}
	uc := newTestUseCase(mockBE, nil)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- uc.TriggerSync(usecase.WithConfirmation(ctx, true))
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("sync never reached the backend")
	}

	err := uc.TriggerSync(usecase.WithConfirmation(ctx, true))
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrConflict)).True()

	close(release)
	gt.NoError(t, <-firstDone)
	gt.A(t, mockBE.TriggerSyncCalls()).Length(1)
}

func TestWebhookMutationOutlivesCallerCancel(t *testing.T) {
	ctx := context.Background()

	store := memory.New()
	callerCtx, cancel := context.WithCancel(ctx)
	mockBE := &mock.BackendMock{
		ConfigureWebhookFunc: func(ctx context.Context, input *model.ConfigureWebhookInput) (*model.Webhook, error) {
			cancel()
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return &model.Webhook{
				RepoID: input.RepoID,
				Status: types.WebhookStatusPending,
			}, nil
		},
	}
	uc := newTestUseCase(mockBE, store)

	hook := gt.R1(uc.ConfigureWebhook(callerCtx, &model.ConfigureWebhookInput{
		RepoID: "r1",
		Secret: "hunter2hunter2",
	})).NoError(t)
	gt.V(t, hook.Status).Equal(types.WebhookStatusPending)

	// The store update after dispatch also completes.
	gt.R1(store.GetWebhook(ctx, "r1")).NoError(t)
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pipewatch/pipewatch/pkg/domain/mock"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository/memory"
	"github.com/pipewatch/pipewatch/pkg/usecase"
)

func TestRepositoryGuards(t *testing.T) {
	cases := []struct {
		status    types.RepoStatus
		canEdit   bool
		canDelete bool
		canRetry  bool
	}{
		{types.RepoStatusPending, false, false, false},
		{types.RepoStatusSuccess, true, true, false},
		{types.RepoStatusFailed, true, true, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			repo := &model.Repository{ID: "r1", Status: tc.status}
			gt.V(t, usecase.CanEditRepository(repo)).Equal(tc.canEdit)
			gt.V(t, usecase.CanDeleteRepository(repo)).Equal(tc.canDelete)
			gt.V(t, usecase.CanRetryRepository(repo)).Equal(tc.canRetry)
		})
	}
}

func TestWebhookGuards(t *testing.T) {
	cases := []struct {
		status    types.WebhookStatus
		canEdit   bool
		canDelete bool
	}{
		{types.WebhookStatusUnconfigured, true, true},
		{types.WebhookStatusPending, false, false},
		{types.WebhookStatusConfigured, true, true},
		{types.WebhookStatusFailed, true, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			hook := &model.Webhook{RepoID: "r1", Status: tc.status}
			gt.V(t, usecase.CanEditWebhook(hook)).Equal(tc.canEdit)
			gt.V(t, usecase.CanDeleteWebhook(hook)).Equal(tc.canDelete)
		})
	}
}

func TestDeleteRepositoryWhilePending(t *testing.T) {
	ctx := context.Background()

	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, &model.Repository{
		ID:     "r1",
		URL:    "https://github.com/pipewatch/demo",
		Status: types.RepoStatusPending,
	}))

	mockBE := &mock.BackendMock{}
	uc := newTestUseCase(mockBE, store)

	// Denied before the confirmation gate: confirming cannot override the
	// state check, and nothing reaches the backend.
	err := uc.DeleteRepository(usecase.WithConfirmation(ctx, true), "r1")
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrPrecondition)).True()
	gt.A(t, mockBE.DeleteRepositoryCalls()).Length(0)

	repo := gt.R1(store.GetRepository(ctx, "r1")).NoError(t)
	gt.V(t, repo.Status).Equal(types.RepoStatusPending)
}

func TestDeleteWebhookWhilePending(t *testing.T) {
	ctx := context.Background()

	store := memory.New()
	gt.NoError(t, store.UpsertWebhook(ctx, &model.Webhook{
		RepoID: "r1",
		Status: types.WebhookStatusPending,
	}))

	mockBE := &mock.BackendMock{}
	uc := newTestUseCase(mockBE, store)

	err := uc.DeleteWebhook(usecase.WithConfirmation(ctx, true), "r1")
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrPrecondition)).True()
	gt.A(t, mockBE.DeleteWebhookCalls()).Length(0)

	hook := gt.R1(store.GetWebhook(ctx, "r1")).NoError(t)
	gt.V(t, hook.Status).Equal(types.WebhookStatusPending)
}

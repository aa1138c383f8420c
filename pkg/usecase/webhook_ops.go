package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository"
	"github.com/pipewatch/pipewatch/pkg/utils/logging"
)

// ConfigureWebhook performs the first "configure" action for a repository.
// The webhook transitions to Pending immediately and is later reconciled to
// Configured or Failed by the poll-refresh cycle.
func (x *UseCase) ConfigureWebhook(ctx context.Context, input *model.ConfigureWebhookInput) (*model.Webhook, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// A webhook already mid-configuration must settle before another write.
	if current, err := x.clients.Store().GetWebhook(ctx, input.RepoID); err == nil {
		if err := guardWebhookEdit(current); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := x.slots.acquire(types.KindWebhook, string(input.RepoID)); err != nil {
		return nil, err
	}
	defer x.slots.release(types.KindWebhook, string(input.RepoID))
	ctx = detached(ctx)

	hook, err := x.clients.Backend().ConfigureWebhook(ctx, input)
	if err != nil {
		return nil, err
	}

	x.trackPendingSince(ctx, hook)
	if err := x.clients.Store().UpsertWebhook(ctx, hook); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("webhook configuration submitted",
		slog.String("repoID", string(hook.RepoID)),
		slog.String("status", string(hook.Status)),
	)

	return hook, nil
}

// UpdateWebhook replaces the webhook secret. It is a consequential action and
// passes the confirmation gate.
func (x *UseCase) UpdateWebhook(ctx context.Context, input *model.ConfigureWebhookInput) (*model.Webhook, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := x.clients.Store().GetWebhook(ctx, input.RepoID)
	if err != nil {
		return nil, err
	}
	if err := guardWebhookEdit(current); err != nil {
		return nil, err
	}

	if err := x.confirm(ctx, &model.Action{Kind: model.ActionUpdateWebhook, Webhook: current}); err != nil {
		return nil, err
	}

	if err := x.slots.acquire(types.KindWebhook, string(input.RepoID)); err != nil {
		return nil, err
	}
	defer x.slots.release(types.KindWebhook, string(input.RepoID))
	ctx = detached(ctx)

	hook, err := x.clients.Backend().UpdateWebhook(ctx, input)
	if err != nil {
		return nil, err
	}

	x.trackPendingSince(ctx, hook)
	if err := x.clients.Store().UpsertWebhook(ctx, hook); err != nil {
		return nil, err
	}

	return hook, nil
}

func (x *UseCase) DeleteWebhook(ctx context.Context, repoID types.RepoID) error {
	current, err := x.clients.Store().GetWebhook(ctx, repoID)
	if err != nil {
		return err
	}
	if err := guardWebhookDelete(current); err != nil {
		return err
	}

	if err := x.confirm(ctx, &model.Action{Kind: model.ActionDeleteWebhook, Webhook: current}); err != nil {
		return err
	}

	if err := x.slots.acquire(types.KindWebhook, string(repoID)); err != nil {
		return err
	}
	defer x.slots.release(types.KindWebhook, string(repoID))
	ctx = detached(ctx)

	if err := x.clients.Backend().DeleteWebhook(ctx, repoID); err != nil {
		return err
	}

	if err := x.clients.Store().RemoveWebhook(ctx, repoID); err != nil {
		return err
	}

	logging.From(ctx).Info("webhook deleted", slog.String("repoID", string(repoID)))
	return nil
}

// TriggerSync asks the backend to re-run webhook synchronization for the
// whole account. Consequential: it passes the confirmation gate.
func (x *UseCase) TriggerSync(ctx context.Context) error {
	if err := x.confirm(ctx, &model.Action{Kind: model.ActionTriggerSync}); err != nil {
		return err
	}

	if err := x.slots.acquire(types.KindWebhook, "sync"); err != nil {
		return err
	}
	defer x.slots.release(types.KindWebhook, "sync")
	ctx = detached(ctx)

	if err := x.clients.Backend().TriggerSync(ctx); err != nil {
		return err
	}

	logging.From(ctx).Info("manual webhook synchronization triggered")
	return nil
}

// GetWebhook reads the webhook state, falling back to a direct backend check
// for a repository the poll has not covered yet.
func (x *UseCase) GetWebhook(ctx context.Context, repoID types.RepoID) (*model.Webhook, error) {
	hook, err := x.clients.Store().GetWebhook(ctx, repoID)
	if err == nil {
		return hook, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hook, err = x.clients.Backend().CheckWebhook(ctx, repoID)
	if err != nil {
		return nil, err
	}

	x.trackPendingSince(ctx, hook)
	if err := x.clients.Store().UpsertWebhook(ctx, hook); err != nil {
		return nil, err
	}

	return hook, nil
}

func (x *UseCase) ListWebhooks(ctx context.Context) ([]*model.Webhook, error) {
	return x.clients.Store().ListWebhooks(ctx)
}

// trackPendingSince stamps the moment a webhook is observed entering Pending
// and clears the stamp once it leaves, preserving an earlier stamp across
// consecutive Pending observations. The stamp drives the stuck-pending
// expiry in refresh reconciliation.
func (x *UseCase) trackPendingSince(ctx context.Context, hook *model.Webhook) {
	if hook.Status != types.WebhookStatusPending {
		hook.PendingSince = time.Time{}
		return
	}

	if prev, err := x.clients.Store().GetWebhook(ctx, hook.RepoID); err == nil &&
		prev.Status == types.WebhookStatusPending && !prev.PendingSince.IsZero() {
		hook.PendingSince = prev.PendingSince
		return
	}

	hook.PendingSince = x.clock.Now()
}

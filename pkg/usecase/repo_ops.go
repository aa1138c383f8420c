package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository"
	"github.com/pipewatch/pipewatch/pkg/utils/logging"
)

// CreateRepository validates the submitted URL and token shape before any
// network call, then onboards the repository. The token travels to the
// backend once and is never stored.
func (x *UseCase) CreateRepository(ctx context.Context, input *model.CreateRepositoryInput) (*model.Repository, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Concurrent submissions of the same URL share one slot.
	if err := x.slots.acquire(types.KindRepository, "create:"+input.URL); err != nil {
		return nil, err
	}
	defer x.slots.release(types.KindRepository, "create:"+input.URL)
	ctx = detached(ctx)

	repo, err := x.clients.Backend().CreateRepository(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := x.clients.Store().UpsertRepository(ctx, repo); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("repository onboarding submitted",
		slog.String("repoID", string(repo.ID)),
		slog.String("url", repo.URL),
		slog.String("status", string(repo.Status)),
	)

	return repo, nil
}

func (x *UseCase) UpdateRepository(ctx context.Context, id types.RepoID, input *model.UpdateRepositoryInput) (*model.Repository, error) {
	current, err := x.clients.Store().GetRepository(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := guardRepositoryEdit(current); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := x.slots.acquire(types.KindRepository, string(id)); err != nil {
		return nil, err
	}
	defer x.slots.release(types.KindRepository, string(id))
	ctx = detached(ctx)

	// The authoritative server response replaces the stored entry; the store
	// is never touched on failure.
	repo, err := x.clients.Backend().UpdateRepository(ctx, id, input)
	if err != nil {
		return nil, err
	}

	if err := x.clients.Store().UpsertRepository(ctx, repo); err != nil {
		return nil, err
	}

	return repo, nil
}

func (x *UseCase) DeleteRepository(ctx context.Context, id types.RepoID) error {
	current, err := x.clients.Store().GetRepository(ctx, id)
	if err != nil {
		return err
	}
	if err := guardRepositoryDelete(current); err != nil {
		return err
	}

	if err := x.confirm(ctx, &model.Action{Kind: model.ActionDeleteRepository, Repo: current}); err != nil {
		return err
	}

	if err := x.slots.acquire(types.KindRepository, string(id)); err != nil {
		return err
	}
	defer x.slots.release(types.KindRepository, string(id))
	ctx = detached(ctx)

	if err := x.clients.Backend().DeleteRepository(ctx, id); err != nil {
		return err
	}

	if err := x.clients.Store().RemoveRepository(ctx, id); err != nil {
		return err
	}

	// The webhook is one-to-one with the repository; drop any local copy.
	if err := x.clients.Store().RemoveWebhook(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	logging.From(ctx).Info("repository deleted", slog.String("repoID", string(id)))
	return nil
}

// RetryRepository re-submits a failed onboarding. The stored remote URL is
// re-sent; the server re-runs synchronization with its stored credential.
func (x *UseCase) RetryRepository(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	current, err := x.clients.Store().GetRepository(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := guardRepositoryRetry(current); err != nil {
		return nil, err
	}

	if err := x.slots.acquire(types.KindRepository, string(id)); err != nil {
		return nil, err
	}
	defer x.slots.release(types.KindRepository, string(id))
	ctx = detached(ctx)

	repo, err := x.clients.Backend().UpdateRepository(ctx, id, &model.UpdateRepositoryInput{URL: current.URL})
	if err != nil {
		return nil, err
	}

	if err := x.clients.Store().UpsertRepository(ctx, repo); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("repository onboarding retried",
		slog.String("repoID", string(id)),
		slog.String("status", string(repo.Status)),
	)

	return repo, nil
}

func (x *UseCase) GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	return x.clients.Store().GetRepository(ctx, id)
}

func (x *UseCase) ListRepositories(ctx context.Context, filter *model.RepoFilter) ([]*model.Repository, error) {
	return x.clients.Store().ListRepositories(ctx, filter)
}

package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// Transition guard: which user actions an entity's current state permits.
// Backend-side processing moves entities through Pending asynchronously, so
// edits and deletes are held off until the state settles. A denial is always
// surfaced as ErrPrecondition, never swallowed, so the confirmation gate is
// not reached for disallowed actions.

func CanEditRepository(repo *model.Repository) bool {
	return repo.Status != types.RepoStatusPending
}

func CanDeleteRepository(repo *model.Repository) bool {
	return repo.Status != types.RepoStatusPending
}

func CanRetryRepository(repo *model.Repository) bool {
	return repo.Status == types.RepoStatusFailed
}

func CanEditWebhook(hook *model.Webhook) bool {
	return hook.Status != types.WebhookStatusPending
}

func CanDeleteWebhook(hook *model.Webhook) bool {
	return hook.Status != types.WebhookStatusPending
}

// CanRerunRun always permits rerun; the server decides feasibility.
func CanRerunRun(run *model.WorkflowRun) bool {
	return true
}

func guardRepositoryEdit(repo *model.Repository) error {
	if !CanEditRepository(repo) {
		return goerr.Wrap(types.ErrPrecondition, "repository cannot be edited while onboarding is pending",
			goerr.V("repoID", repo.ID),
			goerr.V("status", repo.Status),
		)
	}
	return nil
}

func guardRepositoryDelete(repo *model.Repository) error {
	if !CanDeleteRepository(repo) {
		return goerr.Wrap(types.ErrPrecondition, "repository cannot be deleted while onboarding is pending",
			goerr.V("repoID", repo.ID),
			goerr.V("status", repo.Status),
		)
	}
	return nil
}

func guardRepositoryRetry(repo *model.Repository) error {
	if !CanRetryRepository(repo) {
		return goerr.Wrap(types.ErrPrecondition, "retry is only permitted for a failed repository",
			goerr.V("repoID", repo.ID),
			goerr.V("status", repo.Status),
		)
	}
	return nil
}

func guardWebhookEdit(hook *model.Webhook) error {
	if !CanEditWebhook(hook) {
		return goerr.Wrap(types.ErrPrecondition, "webhook cannot be edited while configuration is pending",
			goerr.V("repoID", hook.RepoID),
			goerr.V("status", hook.Status),
		)
	}
	return nil
}

func guardWebhookDelete(hook *model.Webhook) error {
	if !CanDeleteWebhook(hook) {
		return goerr.Wrap(types.ErrPrecondition, "webhook cannot be deleted while configuration is pending",
			goerr.V("repoID", hook.RepoID),
			goerr.V("status", hook.Status),
		)
	}
	return nil
}

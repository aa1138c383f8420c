package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository"
	"github.com/pipewatch/pipewatch/pkg/utils/logging"
)

func (x *UseCase) ListRuns(ctx context.Context, filter *model.RunFilter) ([]*model.WorkflowRun, error) {
	return x.clients.Store().ListRuns(ctx, filter)
}

// GetRun serves the detail view: the store first, falling back to a direct
// backend fetch for a run the poll has not picked up yet.
func (x *UseCase) GetRun(ctx context.Context, id types.RunID) (*model.WorkflowRun, error) {
	run, err := x.clients.Store().GetRun(ctx, id)
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	run, err = x.clients.Backend().GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := x.clients.Store().UpsertRun(ctx, run); err != nil {
		return nil, err
	}

	return run, nil
}

// RerunWorkflow triggers a re-execution. Rerun is always permitted; the
// server decides feasibility. The original run row is never mutated. The new
// run appears through a later refresh.
func (x *UseCase) RerunWorkflow(ctx context.Context, id types.RunID) error {
	run, err := x.GetRun(ctx, id)
	if err != nil {
		return err
	}

	if err := x.confirm(ctx, &model.Action{Kind: model.ActionRerunWorkflow, Run: run}); err != nil {
		return err
	}

	slotID := strconv.FormatInt(int64(id), 10)
	if err := x.slots.acquire(types.KindRun, slotID); err != nil {
		return err
	}
	defer x.slots.release(types.KindRun, slotID)
	ctx = detached(ctx)

	if err := x.clients.Backend().RerunWorkflow(ctx, id); err != nil {
		return err
	}

	logging.From(ctx).Info("workflow rerun requested",
		slog.Int64("runID", int64(id)),
		slog.String("branch", string(run.Branch)),
	)

	return nil
}

package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository"
)

func (r *resourceStore) GetRun(ctx context.Context, id types.RunID) (*model.WorkflowRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, exists := r.runs[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "workflow run not found",
			goerr.V("runID", id),
		)
	}

	return copyRun(run), nil
}

func (r *resourceStore) ListRuns(ctx context.Context, filter *model.RunFilter) ([]*model.WorkflowRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runs := make([]*model.WorkflowRun, 0, len(r.runs))
	for _, run := range r.runs {
		if !filter.Match(run) {
			continue
		}
		runs = append(runs, copyRun(run))
	}

	sortKey := model.RunSortByStartedAt
	if filter != nil && filter.SortBy != "" {
		sortKey = filter.SortBy
	}
	sort.SliceStable(runs, func(i, j int) bool {
		switch sortKey {
		case model.RunSortByBranch:
			return runs[i].Branch < runs[j].Branch
		default:
			return runs[i].RunStartedAt.After(runs[j].RunStartedAt)
		}
	})

	return runs, nil
}

func (r *resourceStore) UpsertRun(ctx context.Context, run *model.WorkflowRun) error {
	if run == nil || run.ID == 0 {
		return goerr.Wrap(repository.ErrInvalidInput, "workflow run ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs[run.ID] = copyRun(run)
	return nil
}

func (r *resourceStore) RemoveRun(ctx context.Context, id types.RunID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[id]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "workflow run not found",
			goerr.V("runID", id),
		)
	}

	delete(r.runs, id)
	return nil
}

package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository"
)

func (r *resourceStore) GetPrediction(ctx context.Context, runID types.RunID) (*model.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pred, exists := r.predictions[runID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "prediction not found",
			goerr.V("runID", runID),
		)
	}

	return copyPrediction(pred), nil
}

func (r *resourceStore) ListPredictions(ctx context.Context) ([]*model.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	preds := make([]*model.Prediction, 0, len(r.predictions))
	for _, pred := range r.predictions {
		preds = append(preds, copyPrediction(pred))
	}

	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].RunID < preds[j].RunID
	})

	return preds, nil
}

func (r *resourceStore) UpsertPrediction(ctx context.Context, pred *model.Prediction) error {
	if pred == nil || pred.RunID == 0 {
		return goerr.Wrap(repository.ErrInvalidInput, "prediction run ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.predictions[pred.RunID] = copyPrediction(pred)
	return nil
}

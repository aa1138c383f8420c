package usecase

import (
	"context"
	"errors"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository"
)

// GetPrediction reads the prediction record for a run, fetching it from the
// backend when the poll has not brought it in yet.
func (x *UseCase) GetPrediction(ctx context.Context, runID types.RunID) (*model.Prediction, error) {
	pred, err := x.clients.Store().GetPrediction(ctx, runID)
	if err == nil {
		return pred, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	pred, err = x.clients.Backend().GetPrediction(ctx, runID)
	if err != nil {
		return nil, err
	}
	if err := x.clients.Store().UpsertPrediction(ctx, pred); err != nil {
		return nil, err
	}

	return pred, nil
}

// LatestPrediction fetches the most recent prediction record, for the
// headline banner. Always a live read; the record is cached for the run's
// detail view on the way through.
func (x *UseCase) LatestPrediction(ctx context.Context) (*model.Prediction, error) {
	pred, err := x.clients.Backend().LatestPrediction(ctx)
	if err != nil {
		return nil, err
	}
	if err := x.clients.Store().UpsertPrediction(ctx, pred); err != nil {
		return nil, err
	}

	return pred, nil
}

// ListMismatches derives the runs whose prediction disagrees with the
// observed conclusion. The set is recomputed from current store contents on
// every call; nothing is cached between refreshes.
func (x *UseCase) ListMismatches(ctx context.Context) ([]*model.MismatchRecord, error) {
	runs, err := x.clients.Store().ListRuns(ctx, nil)
	if err != nil {
		return nil, err
	}

	var records []*model.MismatchRecord
	for _, run := range runs {
		if !run.Concluded() {
			continue
		}

		pred, err := x.clients.Store().GetPrediction(ctx, run.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}

		if pred.Mismatch() {
			records = append(records, &model.MismatchRecord{Run: run, Prediction: pred})
		}
	}

	return records, nil
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pipewatch/pipewatch/pkg/domain/mock"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository/memory"
)

func boolPtr(v bool) *bool { return &v }

func TestGetPrediction(t *testing.T) {
	ctx := context.Background()

	t.Run("store hit skips the backend", func(t *testing.T) {
		store := memory.New()
		gt.NoError(t, store.UpsertPrediction(ctx, &model.Prediction{
			RunID:     7,
			Predicted: boolPtr(true),
		}))

		mockBE := &mock.BackendMock{}
		uc := newTestUseCase(mockBE, store)

		pred := gt.R1(uc.GetPrediction(ctx, 7)).NoError(t)
		gt.V(t, *pred.Predicted).Equal(true)
		gt.A(t, mockBE.GetPredictionCalls()).Length(0)
	})

	t.Run("store miss falls back to the backend and caches", func(t *testing.T) {
		store := memory.New()
		mockBE := &mock.BackendMock{
			GetPredictionFunc: func(ctx context.Context, runID types.RunID) (*model.Prediction, error) {
				gt.V(t, runID).Equal(types.RunID(7))
				return &model.Prediction{RunID: 7, Predicted: boolPtr(false)}, nil
			},
		}
		uc := newTestUseCase(mockBE, store)

		pred := gt.R1(uc.GetPrediction(ctx, 7)).NoError(t)
		gt.V(t, *pred.Predicted).Equal(false)

		gt.R1(store.GetPrediction(ctx, 7)).NoError(t)
	})
}

func TestLatestPrediction(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	mockBE := &mock.BackendMock{
		LatestPredictionFunc: func(ctx context.Context) (*model.Prediction, error) {
			return &model.Prediction{RunID: 9, Predicted: boolPtr(true)}, nil
		},
	}
	uc := newTestUseCase(mockBE, store)

	pred := gt.R1(uc.LatestPrediction(ctx)).NoError(t)
	gt.V(t, pred.RunID).Equal(types.RunID(9))

	// The record is cached for the run's detail view.
	gt.R1(store.GetPrediction(ctx, 9)).NoError(t)
}

func TestListMismatches(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	runs := []*model.WorkflowRun{
		// Concluded, prediction wrong: the only mismatch.
		{ID: 1, Status: types.RunStatusCompleted, Conclusion: types.RunConclusionFailure},
		// Concluded, prediction right.
		{ID: 2, Status: types.RunStatusCompleted, Conclusion: types.RunConclusionSuccess},
		// Still running: excluded even though predicted and actual differ.
		{ID: 3, Status: types.RunStatusInProgress},
		// Concluded but no prediction record at all.
		{ID: 4, Status: types.RunStatusCompleted, Conclusion: types.RunConclusionSuccess},
	}
	for _, run := range runs {
		gt.NoError(t, store.UpsertRun(ctx, run))
	}

	preds := []*model.Prediction{
		{RunID: 1, Predicted: boolPtr(true), Actual: boolPtr(false)},
		{RunID: 2, Predicted: boolPtr(true), Actual: boolPtr(true)},
		{RunID: 3, Predicted: boolPtr(true), Actual: boolPtr(false)},
	}
	for _, pred := range preds {
		gt.NoError(t, store.UpsertPrediction(ctx, pred))
	}

	uc := newTestUseCase(&mock.BackendMock{}, store)

	records := gt.R1(uc.ListMismatches(ctx)).NoError(t)
	gt.A(t, records).Length(1)
	gt.V(t, records[0].Run.ID).Equal(types.RunID(1))
	gt.B(t, records[0].Prediction.Mismatch()).True()
}

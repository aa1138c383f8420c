package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
	"github.com/pipewatch/pipewatch/pkg/domain/mock"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository/memory"
	"github.com/pipewatch/pipewatch/pkg/usecase"
)

func TestGetRun(t *testing.T) {
	ctx := context.Background()

	t.Run("store hit skips the backend", func(t *testing.T) {
		store := memory.New()
		gt.NoError(t, store.UpsertRun(ctx, &model.WorkflowRun{
			ID:     7,
			Status: types.RunStatusInProgress,
		}))

		mockBE := &mock.BackendMock{}
		uc := newTestUseCase(mockBE, store)

		run := gt.R1(uc.GetRun(ctx, 7)).NoError(t)
		gt.V(t, run.Status).Equal(types.RunStatusInProgress)
		gt.A(t, mockBE.GetRunCalls()).Length(0)
	})

	t.Run("store miss falls back to the backend and caches", func(t *testing.T) {
		store := memory.New()
		mockBE := &mock.BackendMock{
			GetRunFunc: func(ctx context.Context, id types.RunID) (*model.WorkflowRun, error) {
				return &model.WorkflowRun{ID: id, Status: types.RunStatusQueued}, nil
			},
		}
		uc := newTestUseCase(mockBE, store)

		run := gt.R1(uc.GetRun(ctx, 7)).NoError(t)
		gt.V(t, run.Status).Equal(types.RunStatusQueued)
		gt.R1(store.GetRun(ctx, 7)).NoError(t)
	})
}

func TestRerunWorkflow(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) interfaces.Store {
		store := memory.New()
		gt.NoError(t, store.UpsertRun(ctx, &model.WorkflowRun{
			ID:         7,
			Status:     types.RunStatusCompleted,
			Conclusion: types.RunConclusionFailure,
			Branch:     "main",
		}))
		return store
	}

	t.Run("requires confirmation", func(t *testing.T) {
		store := seed(t)
		mockBE := &mock.BackendMock{}
		uc := newTestUseCase(mockBE, store)

		err := uc.RerunWorkflow(ctx, 7)
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrConfirmationDeclined)).True()
		gt.A(t, mockBE.RerunWorkflowCalls()).Length(0)
	})

	t.Run("confirmed rerun never mutates the stored run", func(t *testing.T) {
		store := seed(t)
		mockBE := &mock.BackendMock{
			RerunWorkflowFunc: func(ctx context.Context, id types.RunID) error {
				return nil
			},
		}
		uc := newTestUseCase(mockBE, store)

		gt.NoError(t, uc.RerunWorkflow(usecase.WithConfirmation(ctx, true), 7))
		gt.A(t, mockBE.RerunWorkflowCalls()).Length(1)

		run := gt.R1(store.GetRun(ctx, 7)).NoError(t)
		gt.V(t, run.Status).Equal(types.RunStatusCompleted)
		gt.V(t, run.Conclusion).Equal(types.RunConclusionFailure)
	})
}

func TestReportModeration(t *testing.T) {
	ctx := context.Background()

	t.Run("declined moderation never reaches the backend", func(t *testing.T) {
		mockBE := &mock.BackendMock{}
		uc := newTestUseCase(mockBE, nil)

		err := uc.ApproveReport(ctx, "rep1")
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrConfirmationDeclined)).True()
		gt.A(t, mockBE.ReportActionCalls()).Length(0)
	})

	t.Run("approve and reject send the matching decision", func(t *testing.T) {
		var decisions []types.ReportDecision
		mockBE := &mock.BackendMock{
			ReportActionFunc: func(ctx context.Context, id types.ReportID, decision types.ReportDecision) error {
				decisions = append(decisions, decision)
				return nil
			},
		}
		uc := newTestUseCase(mockBE, nil)

		confirmedCtx := usecase.WithConfirmation(ctx, true)
		gt.NoError(t, uc.ApproveReport(confirmedCtx, "rep1"))
		gt.NoError(t, uc.RejectReport(confirmedCtx, "rep2"))
		gt.V(t, decisions).Equal([]types.ReportDecision{types.ReportApprove, types.ReportReject})
	})

	t.Run("delete report", func(t *testing.T) {
		mockBE := &mock.BackendMock{
			DeleteReportFunc: func(ctx context.Context, id types.ReportID) error {
				gt.V(t, id).Equal(types.ReportID("rep1"))
				return nil
			},
		}
		uc := newTestUseCase(mockBE, nil)

		gt.NoError(t, uc.DeleteReport(usecase.WithConfirmation(ctx, true), "rep1"))
		gt.A(t, mockBE.DeleteReportCalls()).Length(1)
	})
}

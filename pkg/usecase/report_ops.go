package usecase

import (
	"context"
	"log/slog"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/utils/logging"
)

// Moderation of mismatch reports. All three operations are consequential and
// pass the confirmation gate; each report has its own mutation slot.

func (x *UseCase) ApproveReport(ctx context.Context, id types.ReportID) error {
	return x.moderateReport(ctx, id, model.ActionApproveReport, types.ReportApprove)
}

func (x *UseCase) RejectReport(ctx context.Context, id types.ReportID) error {
	return x.moderateReport(ctx, id, model.ActionRejectReport, types.ReportReject)
}

func (x *UseCase) moderateReport(ctx context.Context, id types.ReportID, action model.ActionKind, decision types.ReportDecision) error {
	if err := x.confirm(ctx, &model.Action{Kind: action, ReportID: id}); err != nil {
		return err
	}

	if err := x.slots.acquire(types.KindReport, string(id)); err != nil {
		return err
	}
	defer x.slots.release(types.KindReport, string(id))
	ctx = detached(ctx)

	if err := x.clients.Backend().ReportAction(ctx, id, decision); err != nil {
		return err
	}

	logging.From(ctx).Info("report moderated",
		slog.String("reportID", string(id)),
		slog.String("decision", string(decision)),
	)

	return nil
}

func (x *UseCase) DeleteReport(ctx context.Context, id types.ReportID) error {
	if err := x.confirm(ctx, &model.Action{Kind: model.ActionDeleteReport, ReportID: id}); err != nil {
		return err
	}

	if err := x.slots.acquire(types.KindReport, string(id)); err != nil {
		return err
	}
	defer x.slots.release(types.KindReport, string(id))
	ctx = detached(ctx)

	if err := x.clients.Backend().DeleteReport(ctx, id); err != nil {
		return err
	}

	logging.From(ctx).Info("report deleted", slog.String("reportID", string(id)))
	return nil
}

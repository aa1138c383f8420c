package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/utils/logging"
)

type ctxConfirmKey struct{}

// WithConfirmation marks the context as carrying the user's explicit
// acknowledgment for the action it accompanies. Handlers set it from the
// request; absence means "not acknowledged".
func WithConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, ctxConfirmKey{}, confirmed)
}

// ContextConfirmer answers the confirmation gate from the per-request
// acknowledgment flag. It performs no I/O and mutates nothing.
type ContextConfirmer struct{}

var _ interfaces.Confirmer = (*ContextConfirmer)(nil)

func (x *ContextConfirmer) RequestConfirmation(ctx context.Context, action *model.Action) (bool, error) {
	confirmed, ok := ctx.Value(ctxConfirmKey{}).(bool)
	return ok && confirmed, nil
}

// confirm runs a destructive or consequential action through the gate.
// A declined confirmation returns before any mutation slot is taken or any
// request is dispatched, leaving the store untouched.
func (x *UseCase) confirm(ctx context.Context, action *model.Action) error {
	ok, err := x.confirmer.RequestConfirmation(ctx, action)
	if err != nil {
		return goerr.Wrap(err, "confirmation gate failed", goerr.V("action", action.Kind))
	}
	if !ok {
		logging.From(ctx).Debug("action declined at confirmation gate",
			slog.String("action", string(action.Kind)),
			slog.String("description", action.Describe()),
		)
		return goerr.Wrap(types.ErrConfirmationDeclined, action.Describe(),
			goerr.V("action", action.Kind),
		)
	}
	return nil
}

package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
	"github.com/pipewatch/pipewatch/pkg/utils/errutil"
	"github.com/pipewatch/pipewatch/pkg/utils/logging"
)

// Poller drives refresh cycles on a fixed interval. There is no push channel
// from the backend: polling is how asynchronous server-side transitions
// (webhook delivery, repository sync) eventually reach the store. A failed
// cycle is reported and the loop keeps going.
type Poller struct {
	uc       interfaces.UseCase
	clock    clockwork.Clock
	interval time.Duration
}

type PollerOption func(*Poller)

func WithPollerClock(clock clockwork.Clock) PollerOption {
	return func(x *Poller) {
		x.clock = clock
	}
}

func NewPoller(uc interfaces.UseCase, interval time.Duration, options ...PollerOption) *Poller {
	p := &Poller{
		uc:       uc,
		clock:    clockwork.NewRealClock(),
		interval: interval,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Run blocks until the context is cancelled. The first cycle runs
// immediately so the store is populated before the first tick.
func (x *Poller) Run(ctx context.Context) error {
	logging.From(ctx).Info("starting poll-refresh loop",
		slog.Duration("interval", x.interval),
	)

	if err := x.uc.RefreshAll(ctx); err != nil {
		errutil.HandleError(ctx, "initial refresh failed", err)
	}

	ticker := x.clock.NewTicker(x.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.From(ctx).Info("poll-refresh loop stopped")
			return ctx.Err()

		case <-ticker.Chan():
			if err := x.uc.RefreshAll(ctx); err != nil {
				errutil.HandleError(ctx, "refresh cycle failed", err)
			}
		}
	}
}

package usecase

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
	"github.com/pipewatch/pipewatch/pkg/infra"
)

const (
	defaultFeedPageSize         = 5
	defaultWebhookPendingExpiry = 15 * time.Minute
)

type UseCase struct {
	clients   *infra.Clients
	confirmer interfaces.Confirmer
	clock     clockwork.Clock

	slots  *mutationSlots
	feed   *feedState
	events *eventLog

	feedPageSize         int
	webhookPendingExpiry time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithConfirmer replaces the confirmation gate's acknowledgment source.
// The default reads the per-request confirmation flag from the context.
func WithConfirmer(confirmer interfaces.Confirmer) Option {
	return func(x *UseCase) {
		x.confirmer = confirmer
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(x *UseCase) {
		x.clock = clock
	}
}

func WithFeedPageSize(size int) Option {
	return func(x *UseCase) {
		x.feedPageSize = size
	}
}

// WithWebhookPendingExpiry sets how long a webhook may stay Pending before
// refresh reconciliation marks it Failed. Zero disables the expiry.
func WithWebhookPendingExpiry(d time.Duration) Option {
	return func(x *UseCase) {
		x.webhookPendingExpiry = d
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:   clients,
		confirmer: &ContextConfirmer{},
		clock:     clockwork.NewRealClock(),

		slots:  newMutationSlots(),
		feed:   &feedState{},
		events: newEventLog(),

		feedPageSize:         defaultFeedPageSize,
		webhookPendingExpiry: defaultWebhookPendingExpiry,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

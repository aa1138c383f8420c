package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// detached strips the caller's cancellation from a mutation context. Once a
// mutation is handed to the backend it runs to completion; closing the
// originating request must not abort it mid-flight. The transport timeout is
// the only remaining cancellation source. Context values, including the
// request-scoped logger, are kept.
func detached(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

// mutationSlots enforces at-most-one in-flight mutation per (kind, id) pair.
// A second submit for a busy slot is rejected with ErrConflict rather than
// queued; the original request continues uninterrupted and the user
// re-triggers after it resolves.
type mutationSlots struct {
	mu   sync.Mutex
	busy map[slotKey]struct{}
}

type slotKey struct {
	kind types.EntityKind
	id   string
}

func newMutationSlots() *mutationSlots {
	return &mutationSlots{
		busy: make(map[slotKey]struct{}),
	}
}

func (x *mutationSlots) acquire(kind types.EntityKind, id string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	key := slotKey{kind: kind, id: id}
	if _, exists := x.busy[key]; exists {
		return goerr.Wrap(types.ErrConflict, "a mutation for this entity is already in progress",
			goerr.V("kind", kind),
			goerr.V("id", id),
		)
	}

	x.busy[key] = struct{}{}
	return nil
}

func (x *mutationSlots) release(kind types.EntityKind, id string) {
	x.mu.Lock()
	defer x.mu.Unlock()

	delete(x.busy, slotKey{kind: kind, id: id})
}

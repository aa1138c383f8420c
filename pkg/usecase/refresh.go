package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

const (
	fetchMaxRetries = 3
	eventLogCap     = 64
)

// eventLog keeps the most recent status-transition notifications. Each
// transition into a failed state is recorded exactly once, when the refresh
// cycle that observed it runs.
type eventLog struct {
	mu    sync.Mutex
	items []*model.StatusEvent
}

func newEventLog() *eventLog {
	return &eventLog{}
}

func (x *eventLog) append(ev *model.StatusEvent) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.items = append(x.items, ev)
	if len(x.items) > eventLogCap {
		x.items = x.items[len(x.items)-eventLogCap:]
	}
}

func (x *eventLog) list() []*model.StatusEvent {
	x.mu.Lock()
	defer x.mu.Unlock()

	items := make([]*model.StatusEvent, len(x.items))
	copy(items, x.items)
	return items
}

func (x *UseCase) ListEvents(ctx context.Context) []*model.StatusEvent {
	return x.events.list()
}

// fetchSnapshot retries transient backend failures with bounded exponential
// backoff. Only Network-class errors are retried; anything else aborts
// immediately. User-initiated mutations never go through this path.
func fetchSnapshot[T any](ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	var result T

	op := func() error {
		v, err := fetch(ctx)
		if err != nil {
			if errors.Is(err, types.ErrNetwork) {
				return err
			}
			return backoff.Permanent(err)
		}
		result = v
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), fetchMaxRetries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return result, err
	}

	return result, nil
}

// RefreshAll reconciles every tracked collection with a fresh backend
// snapshot. Collections are fetched concurrently; predictions go last because
// they are keyed by the runs the cycle just brought in. A failed fetch leaves
// the affected collection at its last known-good state.
func (x *UseCase) RefreshAll(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error { return x.RefreshRepositories(egCtx) })
	eg.Go(func() error { return x.RefreshWebhooks(egCtx) })
	eg.Go(func() error { return x.RefreshRuns(egCtx) })
	if err := eg.Wait(); err != nil {
		return err
	}

	return x.RefreshPredictions(ctx)
}

func (x *UseCase) RefreshRepositories(ctx context.Context) error {
	snapshot, err := fetchSnapshot(ctx, x.clients.Backend().ListRepositories)
	if err != nil {
		return err
	}

	store := x.clients.Store()
	prev, err := store.ListRepositories(ctx, nil)
	if err != nil {
		return err
	}
	prevStatus := make(map[types.RepoID]types.RepoStatus, len(prev))
	for _, repo := range prev {
		prevStatus[repo.ID] = repo.Status
	}

	seen := make(map[types.RepoID]struct{}, len(snapshot))
	for _, repo := range snapshot {
		seen[repo.ID] = struct{}{}

		// Surface transitions into Failed that happened server-side without
		// a direct response, e.g. asynchronous onboarding that broke.
		if before, tracked := prevStatus[repo.ID]; tracked &&
			before != types.RepoStatusFailed && repo.Status == types.RepoStatusFailed {
			x.events.append(&model.StatusEvent{
				Kind:       types.KindRepository,
				EntityID:   string(repo.ID),
				FromStatus: string(before),
				ToStatus:   string(repo.Status),
				OccurredAt: x.clock.Now(),
			})
		}

		if err := store.UpsertRepository(ctx, repo); err != nil {
			return err
		}
	}

	// Entities absent from the authoritative snapshot no longer exist
	// server-side.
	for _, repo := range prev {
		if _, ok := seen[repo.ID]; ok {
			continue
		}
		if err := store.RemoveRepository(ctx, repo.ID); err != nil {
			return err
		}
		logging.From(ctx).Info("repository vanished server-side, removed from store",
			slog.String("repoID", string(repo.ID)),
		)
	}

	return nil
}

func (x *UseCase) RefreshWebhooks(ctx context.Context) error {
	snapshot, err := fetchSnapshot(ctx, x.clients.Backend().ListWebhooks)
	if err != nil {
		return err
	}

	store := x.clients.Store()
	prev, err := store.ListWebhooks(ctx)
	if err != nil {
		return err
	}
	prevHooks := make(map[types.RepoID]*model.Webhook, len(prev))
	for _, hook := range prev {
		prevHooks[hook.RepoID] = hook
	}

	seen := make(map[types.RepoID]struct{}, len(snapshot))
	for _, hook := range snapshot {
		seen[hook.RepoID] = struct{}{}

		x.reconcilePendingWebhook(hook, prevHooks[hook.RepoID])
		x.expireStuckPending(ctx, hook)

		if before, tracked := prevHooks[hook.RepoID]; tracked &&
			before.Status != types.WebhookStatusFailed && hook.Status == types.WebhookStatusFailed {
			x.events.append(&model.StatusEvent{
				Kind:       types.KindWebhook,
				EntityID:   string(hook.RepoID),
				FromStatus: string(before.Status),
				ToStatus:   string(hook.Status),
				OccurredAt: x.clock.Now(),
			})
		}

		if err := store.UpsertWebhook(ctx, hook); err != nil {
			return err
		}
	}

	for _, hook := range prev {
		if _, ok := seen[hook.RepoID]; ok {
			continue
		}
		if err := store.RemoveWebhook(ctx, hook.RepoID); err != nil {
			return err
		}
	}

	return nil
}

// reconcilePendingWebhook carries the pending stamp across refresh cycles.
// A hook the client already expired to Failed stays Failed while the server
// keeps reporting Pending; without this the snapshot would flip it back to
// Pending, restamp it, and re-emit a failure event every expiry window.
func (x *UseCase) reconcilePendingWebhook(hook, prev *model.Webhook) {
	if hook.Status != types.WebhookStatusPending {
		hook.PendingSince = time.Time{}
		return
	}

	if prev != nil && !prev.PendingSince.IsZero() {
		switch prev.Status {
		case types.WebhookStatusPending:
			hook.PendingSince = prev.PendingSince
			return
		case types.WebhookStatusFailed:
			hook.Status = types.WebhookStatusFailed
			hook.PendingSince = prev.PendingSince
			return
		}
	}

	hook.PendingSince = x.clock.Now()
}

// expireStuckPending resolves the ambiguity of a webhook that never leaves
// Pending: after the configured expiry the client stops waiting and treats it
// as Failed, instead of letting it hang indefinitely.
func (x *UseCase) expireStuckPending(ctx context.Context, hook *model.Webhook) {
	if x.webhookPendingExpiry <= 0 || hook.Status != types.WebhookStatusPending {
		return
	}
	if hook.PendingSince.IsZero() {
		return
	}
	if x.clock.Now().Sub(hook.PendingSince) < x.webhookPendingExpiry {
		return
	}

	hook.Status = types.WebhookStatusFailed
	logging.From(ctx).Warn("webhook stuck in pending beyond expiry, marking failed",
		slog.String("repoID", string(hook.RepoID)),
		slog.Time("pendingSince", hook.PendingSince),
	)
}

// RefreshRuns updates and extends the run collection. Runs are historical
// rows: the backend window may not include older runs, so absent entries are
// kept rather than pruned.
func (x *UseCase) RefreshRuns(ctx context.Context) error {
	snapshot, err := fetchSnapshot(ctx, func(ctx context.Context) ([]*model.WorkflowRun, error) {
		return x.clients.Backend().ListRuns(ctx, nil)
	})
	if err != nil {
		return err
	}

	store := x.clients.Store()
	for _, run := range snapshot {
		if err := store.UpsertRun(ctx, run); err != nil {
			return err
		}
	}

	return nil
}

// RefreshPredictions fetches prediction records for every tracked run in one
// batch. Mismatch is derived at read time from these records, never cached.
func (x *UseCase) RefreshPredictions(ctx context.Context) error {
	runs, err := x.clients.Store().ListRuns(ctx, nil)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	runIDs := make([]types.RunID, len(runs))
	for i, run := range runs {
		runIDs[i] = run.ID
	}

	preds, err := fetchSnapshot(ctx, func(ctx context.Context) ([]*model.Prediction, error) {
		return x.clients.Backend().BatchPredictions(ctx, runIDs)
	})
	if err != nil {
		return err
	}

	for _, pred := range preds {
		if err := x.clients.Store().UpsertPrediction(ctx, pred); err != nil {
			return err
		}
	}

	logging.From(ctx).Debug("predictions refreshed",
		slog.Int("runs", len(runIDs)),
		slog.Int("records", len(preds)),
	)

	return nil
}

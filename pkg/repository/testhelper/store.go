package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository"
)

// TestAll runs all test cases for Store.
// This is the main entry point for testing any Store implementation.
func TestAll(t *testing.T, store interfaces.Store) {
	t.Run("RepositoryCRUD", func(t *testing.T) {
		TestRepositoryCRUD(t, store)
	})
	t.Run("RepositoryFilterAndSort", func(t *testing.T) {
		TestRepositoryFilterAndSort(t, store)
	})
	t.Run("IdempotentUpsert", func(t *testing.T) {
		TestIdempotentUpsert(t, store)
	})
	t.Run("WebhookCRUD", func(t *testing.T) {
		TestWebhookCRUD(t, store)
	})
	t.Run("RunCRUD", func(t *testing.T) {
		TestRunCRUD(t, store)
	})
	t.Run("FeedAppendOnly", func(t *testing.T) {
		TestFeedAppendOnly(t, store)
	})
	t.Run("PredictionOps", func(t *testing.T) {
		TestPredictionOps(t, store)
	})
	t.Run("CopyIsolation", func(t *testing.T) {
		TestCopyIsolation(t, store)
	})
}

func newTestRepoID() types.RepoID {
	return types.RepoID(fmt.Sprintf("repo-%s", uuid.New().String()[:8]))
}

// TestRepositoryCRUD tests basic CRUD operations for Repository
func TestRepositoryCRUD(t *testing.T, store interfaces.Store) {
	ctx := context.Background()

	repoID := newTestRepoID()
	now := time.Now()
	testRepo := &model.Repository{
		ID:        repoID,
		URL:       fmt.Sprintf("https://github.com/acme/%s", repoID),
		Status:    types.RepoStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := store.UpsertRepository(ctx, testRepo)
	gt.NoError(t, err)

	retrieved, err := store.GetRepository(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, retrieved.ID).Equal(testRepo.ID)
	gt.V(t, retrieved.URL).Equal(testRepo.URL)
	gt.V(t, retrieved.Status).Equal(types.RepoStatusPending)

	// Update via upsert
	testRepo.Status = types.RepoStatusSuccess
	testRepo.UpdatedAt = time.Now()
	gt.NoError(t, store.UpsertRepository(ctx, testRepo))

	retrieved, err = store.GetRepository(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Status).Equal(types.RepoStatusSuccess)

	// Remove
	gt.NoError(t, store.RemoveRepository(ctx, repoID))

	_, err = store.GetRepository(ctx, repoID)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()

	// Removing again reports not found
	err = store.RemoveRepository(ctx, repoID)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
}

// TestRepositoryFilterAndSort tests predicate filtering and stable sort keys
func TestRepositoryFilterAndSort(t *testing.T, store interfaces.Store) {
	ctx := context.Background()

	prefix := uuid.New().String()[:8]
	seed := []*model.Repository{
		{ID: types.RepoID(prefix + "-a"), URL: "https://github.com/" + prefix + "/zebra", Status: types.RepoStatusFailed, UpdatedAt: time.Now().Add(-time.Hour)},
		{ID: types.RepoID(prefix + "-b"), URL: "https://github.com/" + prefix + "/alpha", Status: types.RepoStatusSuccess, UpdatedAt: time.Now()},
		{ID: types.RepoID(prefix + "-c"), URL: "https://github.com/" + prefix + "/middle", Status: types.RepoStatusFailed, UpdatedAt: time.Now().Add(-time.Minute)},
	}
	for _, repo := range seed {
		gt.NoError(t, store.UpsertRepository(ctx, repo))
	}

	// Status filter
	failed, err := store.ListRepositories(ctx, &model.RepoFilter{Query: prefix, Status: types.RepoStatusFailed})
	gt.NoError(t, err)
	gt.V(t, len(failed)).Equal(2)

	// Free-text query is case-insensitive
	byQuery, err := store.ListRepositories(ctx, &model.RepoFilter{Query: prefix + "/ZEBRA"})
	gt.NoError(t, err)
	gt.V(t, len(byQuery)).Equal(1)
	gt.V(t, byQuery[0].ID).Equal(seed[0].ID)

	// Sort by name (URL) is the default order
	byName, err := store.ListRepositories(ctx, &model.RepoFilter{Query: prefix, SortBy: model.RepoSortByName})
	gt.NoError(t, err)
	gt.V(t, len(byName)).Equal(3)
	gt.V(t, byName[0].ID).Equal(seed[1].ID)
	gt.V(t, byName[2].ID).Equal(seed[0].ID)

	// Sort by update time, newest first
	byTime, err := store.ListRepositories(ctx, &model.RepoFilter{Query: prefix, SortBy: model.RepoSortByUpdatedAt})
	gt.NoError(t, err)
	gt.V(t, byTime[0].ID).Equal(seed[1].ID)
	gt.V(t, byTime[2].ID).Equal(seed[0].ID)

	for _, repo := range seed {
		gt.NoError(t, store.RemoveRepository(ctx, repo.ID))
	}
}

// TestIdempotentUpsert verifies that applying the same entity twice produces
// no observable change beyond the first application
func TestIdempotentUpsert(t *testing.T, store interfaces.Store) {
	ctx := context.Background()

	repoID := newTestRepoID()
	repo := &model.Repository{
		ID:     repoID,
		URL:    "https://github.com/acme/idempotent",
		Status: types.RepoStatusSuccess,
	}

	gt.NoError(t, store.UpsertRepository(ctx, repo))
	first, err := store.ListRepositories(ctx, &model.RepoFilter{Query: "acme/idempotent"})
	gt.NoError(t, err)

	gt.NoError(t, store.UpsertRepository(ctx, repo))
	second, err := store.ListRepositories(ctx, &model.RepoFilter{Query: "acme/idempotent"})
	gt.NoError(t, err)

	gt.V(t, len(second)).Equal(len(first))
	gt.V(t, second[0]).Equal(first[0])

	gt.NoError(t, store.RemoveRepository(ctx, repoID))
}

// TestWebhookCRUD tests webhook operations keyed by repository ID
func TestWebhookCRUD(t *testing.T, store interfaces.Store) {
	ctx := context.Background()

	repoID := newTestRepoID()
	hook := &model.Webhook{
		RepoID:      repoID,
		Status:      types.WebhookStatusPending,
		Events:      []string{"push", "workflow_run"},
		DeliveryURL: "https://backend.example.com/hooks/" + string(repoID),
	}

	gt.NoError(t, store.UpsertWebhook(ctx, hook))

	retrieved, err := store.GetWebhook(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Status).Equal(types.WebhookStatusPending)
	gt.V(t, retrieved.Events).Equal([]string{"push", "workflow_run"})

	hook.Status = types.WebhookStatusConfigured
	gt.NoError(t, store.UpsertWebhook(ctx, hook))

	retrieved, err = store.GetWebhook(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Status).Equal(types.WebhookStatusConfigured)

	hooks, err := store.ListWebhooks(ctx)
	gt.NoError(t, err)
	gt.B(t, len(hooks) >= 1).True()

	gt.NoError(t, store.RemoveWebhook(ctx, repoID))
	_, err = store.GetWebhook(ctx, repoID)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
}

// TestRunCRUD tests workflow run operations and filters
func TestRunCRUD(t *testing.T, store interfaces.Store) {
	ctx := context.Background()

	base := time.Now()
	runs := []*model.WorkflowRun{
		{ID: 9101, WorkflowID: 42, Status: types.RunStatusCompleted, Conclusion: types.RunConclusionSuccess, Branch: "main", HeadSHA: "aaa1111", RunStartedAt: base.Add(-2 * time.Hour)},
		{ID: 9102, WorkflowID: 42, Status: types.RunStatusInProgress, Branch: "feature/x", HeadSHA: "bbb2222", RunStartedAt: base.Add(-time.Hour)},
		{ID: 9103, WorkflowID: 77, Status: types.RunStatusCompleted, Conclusion: types.RunConclusionFailure, Branch: "main", HeadSHA: "ccc3333", RunStartedAt: base},
	}
	for _, run := range runs {
		gt.NoError(t, store.UpsertRun(ctx, run))
	}

	got, err := store.GetRun(ctx, 9102)
	gt.NoError(t, err)
	gt.V(t, got.Branch).Equal(types.BranchName("feature/x"))

	byWorkflow, err := store.ListRuns(ctx, &model.RunFilter{WorkflowID: 42})
	gt.NoError(t, err)
	gt.V(t, len(byWorkflow)).Equal(2)

	byBranch, err := store.ListRuns(ctx, &model.RunFilter{Branch: "main", Status: types.RunStatusCompleted})
	gt.NoError(t, err)
	gt.V(t, len(byBranch)).Equal(2)
	// Newest first by default
	gt.V(t, byBranch[0].ID).Equal(types.RunID(9103))

	for _, run := range runs {
		gt.NoError(t, store.RemoveRun(ctx, run.ID))
	}
	_, err = store.GetRun(ctx, 9101)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
}

// TestFeedAppendOnly tests insertion order, ID-based dedupe, and reset
func TestFeedAppendOnly(t *testing.T, store interfaces.Store) {
	ctx := context.Background()
	gt.NoError(t, store.ClearFeed(ctx))

	page1 := []*model.FeedItem{
		{ID: "c1", Author: "alice", Message: "fix build"},
		{ID: "c2", Author: "bob", Message: "add tests"},
	}
	appended, err := store.AppendFeedItems(ctx, page1)
	gt.NoError(t, err)
	gt.V(t, appended).Equal(2)

	// Same page fetched twice: duplicates are dropped by ID
	appended, err = store.AppendFeedItems(ctx, page1)
	gt.NoError(t, err)
	gt.V(t, appended).Equal(0)

	page2 := []*model.FeedItem{
		{ID: "c2", Author: "bob", Message: "add tests"},
		{ID: "c3", Author: "carol", Message: "bump deps"},
	}
	appended, err = store.AppendFeedItems(ctx, page2)
	gt.NoError(t, err)
	gt.V(t, appended).Equal(1)

	items, err := store.ListFeedItems(ctx)
	gt.NoError(t, err)
	gt.V(t, len(items)).Equal(3)
	gt.V(t, items[0].ID).Equal(types.FeedItemID("c1"))
	gt.V(t, items[1].ID).Equal(types.FeedItemID("c2"))
	gt.V(t, items[2].ID).Equal(types.FeedItemID("c3"))

	gt.NoError(t, store.ClearFeed(ctx))
	items, err = store.ListFeedItems(ctx)
	gt.NoError(t, err)
	gt.V(t, len(items)).Equal(0)
}

// TestPredictionOps tests prediction upsert and retrieval
func TestPredictionOps(t *testing.T, store interfaces.Store) {
	ctx := context.Background()

	predicted := false
	actual := false
	pred := &model.Prediction{RunID: 5501, Predicted: &predicted, Actual: &actual}
	gt.NoError(t, store.UpsertPrediction(ctx, pred))

	got, err := store.GetPrediction(ctx, 5501)
	gt.NoError(t, err)
	gt.V(t, *got.Predicted).Equal(false)
	gt.B(t, got.Mismatch()).False()

	_, err = store.GetPrediction(ctx, 404404)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
}

// TestCopyIsolation verifies that mutating a value returned by the store does
// not affect stored state
func TestCopyIsolation(t *testing.T, store interfaces.Store) {
	ctx := context.Background()

	repoID := newTestRepoID()
	gt.NoError(t, store.UpsertRepository(ctx, &model.Repository{
		ID:     repoID,
		URL:    "https://github.com/acme/isolated",
		Status: types.RepoStatusSuccess,
	}))

	first, err := store.GetRepository(ctx, repoID)
	gt.NoError(t, err)
	first.Status = types.RepoStatusFailed
	first.URL = "https://github.com/acme/tampered"

	second, err := store.GetRepository(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, second.Status).Equal(types.RepoStatusSuccess)
	gt.V(t, second.URL).Equal("https://github.com/acme/isolated")

	hook := &model.Webhook{RepoID: repoID, Status: types.WebhookStatusConfigured, Events: []string{"push"}}
	gt.NoError(t, store.UpsertWebhook(ctx, hook))
	hook.Events[0] = "mutated"

	stored, err := store.GetWebhook(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, stored.Events[0]).Equal("push")

	gt.NoError(t, store.RemoveRepository(ctx, repoID))
	gt.NoError(t, store.RemoveWebhook(ctx, repoID))
}

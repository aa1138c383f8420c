package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository"
)

func (r *resourceStore) GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repo, exists := r.repos[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("repoID", id),
		)
	}

	return copyRepository(repo), nil
}

func (r *resourceStore) ListRepositories(ctx context.Context, filter *model.RepoFilter) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repos := make([]*model.Repository, 0, len(r.repos))
	for _, repo := range r.repos {
		if !filter.Match(repo) {
			continue
		}
		repos = append(repos, copyRepository(repo))
	}

	sortKey := model.RepoSortByName
	if filter != nil && filter.SortBy != "" {
		sortKey = filter.SortBy
	}
	sort.SliceStable(repos, func(i, j int) bool {
		switch sortKey {
		case model.RepoSortByUpdatedAt:
			return repos[i].UpdatedAt.After(repos[j].UpdatedAt)
		default:
			return repos[i].URL < repos[j].URL
		}
	})

	return repos, nil
}

func (r *resourceStore) UpsertRepository(ctx context.Context, repo *model.Repository) error {
	if repo == nil || repo.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repository ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.repos[repo.ID] = copyRepository(repo)
	return nil
}

func (r *resourceStore) RemoveRepository(ctx context.Context, id types.RepoID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.repos[id]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("repoID", id),
		)
	}

	delete(r.repos, id)
	return nil
}

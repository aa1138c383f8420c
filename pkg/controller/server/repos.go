package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

func handleListRepositories(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := &model.RepoFilter{
			Query:  q.Get("q"),
			Status: types.RepoStatus(q.Get("status")),
			SortBy: model.RepoSort(q.Get("sort")),
		}

		repos, err := uc.ListRepositories(r.Context(), filter)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"repositories": repos,
		})
	}
}

func handleCreateRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.CreateRepositoryInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, err)
			return
		}

		repo, err := uc.CreateRepository(r.Context(), &input)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, repo)
	}
}

func handleUpdateRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.UpdateRepositoryInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, err)
			return
		}

		repo, err := uc.UpdateRepository(r.Context(), types.RepoID(chi.URLParam(r, "repoID")), &input)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, repo)
	}
}

func handleDeleteRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r = confirmed(r)

		if err := uc.DeleteRepository(r.Context(), types.RepoID(chi.URLParam(r, "repoID"))); err != nil {
			respondError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleRetryRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo, err := uc.RetryRepository(r.Context(), types.RepoID(chi.URLParam(r, "repoID")))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, repo)
	}
}

package server

import (
	"net/http"

	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
)

func handleListFeed(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := uc.ListFeedItems(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"items": items,
		})
	}
}

func handleLoadMoreFeed(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := uc.LoadMoreFeed(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

func handleResetFeed(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := uc.ResetFeed(r.Context()); err != nil {
			respondError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

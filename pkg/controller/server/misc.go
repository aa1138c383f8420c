package server

import (
	"net/http"

	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
)

func handleLatestPrediction(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pred, err := uc.LatestPrediction(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, pred)
	}
}

func handleListMismatches(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := uc.ListMismatches(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"mismatches": records,
		})
	}
}

func handleListEvents(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{
			"events": uc.ListEvents(r.Context()),
		})
	}
}

func handleRefresh(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := uc.RefreshAll(r.Context()); err != nil {
			respondError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

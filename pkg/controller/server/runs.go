package server

import (
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

func handleListRuns(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := &model.RunFilter{
			Branch: types.BranchName(q.Get("branch")),
			Status: types.RunStatus(q.Get("status")),
			Query:  q.Get("q"),
			SortBy: model.RunSort(q.Get("sort")),
		}
		if raw := q.Get("workflow_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				respondError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid workflow ID", goerr.V("workflow_id", raw)))
				return
			}
			filter.WorkflowID = types.WorkflowID(id)
		}

		runs, err := uc.ListRuns(r.Context(), filter)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"runs": runs,
		})
	}
}

func handleGetRun(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := runIDParam(r, "runID")
		if err != nil {
			respondError(w, r, err)
			return
		}

		run, err := uc.GetRun(r.Context(), id)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, run)
	}
}

func handleRerunWorkflow(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := runIDParam(r, "runID")
		if err != nil {
			respondError(w, r, err)
			return
		}

		r = confirmed(r)

		if err := uc.RerunWorkflow(r.Context(), id); err != nil {
			respondError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}

func handleGetPrediction(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := runIDParam(r, "runID")
		if err != nil {
			respondError(w, r, err)
			return
		}

		pred, err := uc.GetPrediction(r.Context(), id)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, pred)
	}
}

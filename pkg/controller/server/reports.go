package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

func handleApproveReport(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r = confirmed(r)

		if err := uc.ApproveReport(r.Context(), types.ReportID(chi.URLParam(r, "reportID"))); err != nil {
			respondError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleRejectReport(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r = confirmed(r)

		if err := uc.RejectReport(r.Context(), types.ReportID(chi.URLParam(r, "reportID"))); err != nil {
			respondError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleDeleteReport(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r = confirmed(r)

		if err := uc.DeleteReport(r.Context(), types.ReportID(chi.URLParam(r, "reportID"))); err != nil {
			respondError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
)

// Server is the local action surface the dashboard renders against. It is a
// thin translation layer: every handler validates shape, resolves the
// confirmation flag, and delegates to the use case.
type Server struct {
	mux *chi.Mux
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/repos", func(r chi.Router) {
			r.Get("/", handleListRepositories(uc))
			r.Post("/", handleCreateRepository(uc))
			r.Put("/{repoID}", handleUpdateRepository(uc))
			r.Delete("/{repoID}", handleDeleteRepository(uc))
			r.Post("/{repoID}/retry", handleRetryRepository(uc))
		})

		r.Route("/webhooks", func(r chi.Router) {
			r.Get("/", handleListWebhooks(uc))
			r.Post("/sync", handleTriggerSync(uc))
			r.Get("/{repoID}", handleGetWebhook(uc))
			r.Post("/{repoID}/configure", handleConfigureWebhook(uc))
			r.Post("/{repoID}/update", handleUpdateWebhook(uc))
			r.Post("/{repoID}/delete", handleDeleteWebhook(uc))
		})

		r.Route("/runs", func(r chi.Router) {
			r.Get("/", handleListRuns(uc))
			r.Get("/{runID}", handleGetRun(uc))
			r.Post("/{runID}/rerun", handleRerunWorkflow(uc))
			r.Get("/{runID}/prediction", handleGetPrediction(uc))
		})

		r.Route("/feed", func(r chi.Router) {
			r.Get("/", handleListFeed(uc))
			r.Post("/more", handleLoadMoreFeed(uc))
			r.Post("/reset", handleResetFeed(uc))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/{reportID}/approve", handleApproveReport(uc))
			r.Post("/{reportID}/reject", handleRejectReport(uc))
			r.Delete("/{reportID}", handleDeleteReport(uc))
		})

		r.Get("/predictions/latest", handleLatestPrediction(uc))
		r.Get("/mismatches", handleListMismatches(uc))
		r.Get("/events", handleListEvents(uc))
		r.Post("/refresh", handleRefresh(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

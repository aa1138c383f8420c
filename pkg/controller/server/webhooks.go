package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/usecase"
)

func handleListWebhooks(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hooks, err := uc.ListWebhooks(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"webhooks": hooks,
		})
	}
}

func handleGetWebhook(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hook, err := uc.GetWebhook(r.Context(), types.RepoID(chi.URLParam(r, "repoID")))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, hook)
	}
}

type webhookBody struct {
	Secret  types.WebhookSecret `json:"secret" masq:"secret"`
	Confirm bool                `json:"confirm"`
}

func handleConfigureWebhook(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body webhookBody
		if err := decodeJSON(r, &body); err != nil {
			respondError(w, r, err)
			return
		}

		input := &model.ConfigureWebhookInput{
			RepoID: types.RepoID(chi.URLParam(r, "repoID")),
			Secret: body.Secret,
		}

		hook, err := uc.ConfigureWebhook(r.Context(), input)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, hook)
	}
}

func handleUpdateWebhook(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body webhookBody
		if err := decodeJSON(r, &body); err != nil {
			respondError(w, r, err)
			return
		}

		ctx := usecase.WithConfirmation(r.Context(), body.Confirm)
		input := &model.ConfigureWebhookInput{
			RepoID: types.RepoID(chi.URLParam(r, "repoID")),
			Secret: body.Secret,
		}

		hook, err := uc.UpdateWebhook(ctx, input)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, hook)
	}
}

func handleDeleteWebhook(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r = confirmed(r)

		if err := uc.DeleteWebhook(r.Context(), types.RepoID(chi.URLParam(r, "repoID"))); err != nil {
			respondError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleTriggerSync(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r = confirmed(r)

		if err := uc.TriggerSync(r.Context()); err != nil {
			respondError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}

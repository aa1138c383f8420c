package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/repository"
	"github.com/pipewatch/pipewatch/pkg/utils/errutil"
	"github.com/pipewatch/pipewatch/pkg/utils/logging"
)

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	raw, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

type errorBody struct {
	Error string `json:"error"`
}

// respondError maps the error taxonomy onto HTTP status codes. Every failure
// is scoped to the single action that produced it; nothing here is fatal.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, types.ErrValidationFailed), errors.Is(err, repository.ErrInvalidInput):
		code = http.StatusBadRequest
	case errors.Is(err, types.ErrPrecondition):
		code = http.StatusPreconditionFailed
	case errors.Is(err, types.ErrConfirmationDeclined):
		code = http.StatusPreconditionRequired
	case errors.Is(err, types.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, types.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, types.ErrNetwork):
		code = http.StatusBadGateway
	}

	if code >= http.StatusInternalServerError {
		errutil.HandleError(r.Context(), "request failed", err)
	}

	respondJSON(w, code, errorBody{Error: err.Error()})
}

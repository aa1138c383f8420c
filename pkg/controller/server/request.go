package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/usecase"
)

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "invalid request body", goerr.V("cause", err.Error()))
	}
	return nil
}

// confirmed reads the optional `{"confirm": bool}` acknowledgment from the
// request body and stamps it into the context. An empty or absent body means
// the action was not acknowledged, so the confirmation gate will decline it.
func confirmed(r *http.Request) *http.Request {
	var body struct {
		Confirm bool `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		return r
	}

	return r.WithContext(usecase.WithConfirmation(r.Context(), body.Confirm))
}

func runIDParam(r *http.Request, param string) (types.RunID, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(types.ErrValidationFailed, "invalid run ID", goerr.V("run_id", raw))
	}
	return types.RunID(id), nil
}

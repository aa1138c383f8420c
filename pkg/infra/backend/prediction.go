package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

func (x *Client) LatestPrediction(ctx context.Context) (*model.Prediction, error) {
	var pred model.Prediction
	if err := x.do(ctx, http.MethodGet, "/prediction/latest", nil, nil, &pred); err != nil {
		return nil, err
	}
	return &pred, nil
}

func (x *Client) BatchPredictions(ctx context.Context, runIDs []types.RunID) ([]*model.Prediction, error) {
	if len(runIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(runIDs))
	for i, id := range runIDs {
		ids[i] = strconv.FormatInt(int64(id), 10)
	}
	query := url.Values{"github_run_ids": {strings.Join(ids, ",")}}

	var preds []*model.Prediction
	if err := x.do(ctx, http.MethodGet, "/prediction/batch", query, nil, &preds); err != nil {
		return nil, err
	}
	return preds, nil
}

func (x *Client) GetPrediction(ctx context.Context, runID types.RunID) (*model.Prediction, error) {
	var pred model.Prediction
	path := "/prediction/results/" + strconv.FormatInt(int64(runID), 10)
	if err := x.do(ctx, http.MethodGet, path, nil, nil, &pred); err != nil {
		return nil, err
	}
	return &pred, nil
}

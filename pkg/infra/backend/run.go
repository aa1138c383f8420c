package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

func (x *Client) ListRuns(ctx context.Context, filter *model.RunFilter) ([]*model.WorkflowRun, error) {
	query := url.Values{}
	if filter != nil {
		if filter.WorkflowID != 0 {
			query.Set("workflow_id", strconv.FormatInt(int64(filter.WorkflowID), 10))
		}
		if filter.Branch != "" {
			query.Set("branch", string(filter.Branch))
		}
		if filter.Status != "" {
			query.Set("status", string(filter.Status))
		}
		if filter.SortBy != "" {
			query.Set("sort", string(filter.SortBy))
		}
	}

	var runs []*model.WorkflowRun
	if err := x.do(ctx, http.MethodGet, "/workflow_run/runs", query, nil, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

func (x *Client) GetRun(ctx context.Context, id types.RunID) (*model.WorkflowRun, error) {
	var run model.WorkflowRun
	path := "/workflow_run/runs/" + strconv.FormatInt(int64(id), 10)
	if err := x.do(ctx, http.MethodGet, path, nil, nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// RerunWorkflow asks the backend to re-execute a run. The response never
// mutates the original run; the resulting new run shows up on a later poll.
func (x *Client) RerunWorkflow(ctx context.Context, id types.RunID) error {
	query := url.Values{"user_id": {x.userID()}}
	path := "/workflow_run/runs/" + strconv.FormatInt(int64(id), 10) + "/rerun"
	return x.do(ctx, http.MethodPost, path, query, nil, nil)
}

package backend

import (
	"context"
	"net/http"

	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

func (x *Client) ReportAction(ctx context.Context, id types.ReportID, decision types.ReportDecision) error {
	body := map[string]string{"action": string(decision)}
	return x.do(ctx, http.MethodPost, "/report/"+string(id)+"/action", nil, body, nil)
}

func (x *Client) DeleteReport(ctx context.Context, id types.ReportID) error {
	return x.do(ctx, http.MethodDelete, "/report/"+string(id), nil, nil, nil)
}

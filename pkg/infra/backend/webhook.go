package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

func (x *Client) ListWebhooks(ctx context.Context) ([]*model.Webhook, error) {
	query := url.Values{"user_id": {x.userID()}}

	var hooks []*model.Webhook
	if err := x.do(ctx, http.MethodGet, "/webhooks/list", query, nil, &hooks); err != nil {
		return nil, err
	}
	return hooks, nil
}

func (x *Client) CheckWebhook(ctx context.Context, repoID types.RepoID) (*model.Webhook, error) {
	query := url.Values{"repo_id": {string(repoID)}}

	var hook model.Webhook
	if err := x.do(ctx, http.MethodGet, "/webhooks/check", query, nil, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

func (x *Client) ConfigureWebhook(ctx context.Context, input *model.ConfigureWebhookInput) (*model.Webhook, error) {
	var hook model.Webhook
	if err := x.do(ctx, http.MethodPost, "/webhooks/configure", nil, input, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

func (x *Client) UpdateWebhook(ctx context.Context, input *model.ConfigureWebhookInput) (*model.Webhook, error) {
	var hook model.Webhook
	if err := x.do(ctx, http.MethodPost, "/webhooks/update", nil, input, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

func (x *Client) DeleteWebhook(ctx context.Context, repoID types.RepoID) error {
	body := map[string]string{"repo_id": string(repoID)}
	return x.do(ctx, http.MethodPost, "/webhooks/delete", nil, body, nil)
}

func (x *Client) TriggerSync(ctx context.Context) error {
	body := map[string]string{"user_id": x.userID()}
	return x.do(ctx, http.MethodPost, "/webhooks/trigger-sync", nil, body, nil)
}

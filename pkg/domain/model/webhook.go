package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// Webhook is the delivery configuration of a repository, one-to-one with it.
// Events and DeliveryURL are server-defined and read-only to the client.
// PendingSince is client-side bookkeeping: set when a webhook is first
// observed in Pending, cleared when it leaves it, and used by the refresh
// reconciliation to expire webhooks stuck in Pending.
type Webhook struct {
	RepoID       types.RepoID        `json:"repo_id"`
	Status       types.WebhookStatus `json:"status"`
	Events       []string            `json:"events"`
	DeliveryURL  string              `json:"delivery_url"`
	PendingSince time.Time           `json:"-"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type ConfigureWebhookInput struct {
	RepoID types.RepoID        `json:"repo_id"`
	Secret types.WebhookSecret `json:"secret" masq:"secret"`
}

func (x *ConfigureWebhookInput) Validate() error {
	if x.RepoID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository ID is empty")
	}
	if x.Secret == "" {
		return goerr.Wrap(types.ErrValidationFailed, "webhook secret is empty")
	}
	return nil
}

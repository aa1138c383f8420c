package model

import (
	"fmt"

	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// ActionKind tags the destructive or consequential operations that must pass
// the confirmation gate before the mutation coordinator is invoked.
type ActionKind string

const (
	ActionDeleteRepository ActionKind = "delete_repository"
	ActionUpdateWebhook    ActionKind = "update_webhook"
	ActionDeleteWebhook    ActionKind = "delete_webhook"
	ActionTriggerSync      ActionKind = "trigger_sync"
	ActionRerunWorkflow    ActionKind = "rerun_workflow"
	ActionApproveReport    ActionKind = "approve_report"
	ActionRejectReport     ActionKind = "reject_report"
	ActionDeleteReport     ActionKind = "delete_report"
)

// Action is a tagged variant describing exactly one pending operation. Only
// the field matching Kind is populated, which rules out the invalid
// flag combinations a set of independent booleans would allow.
type Action struct {
	Kind     ActionKind
	Repo     *Repository
	Webhook  *Webhook
	Run      *WorkflowRun
	ReportID types.ReportID
}

func (x *Action) Describe() string {
	switch x.Kind {
	case ActionDeleteRepository:
		return fmt.Sprintf("delete repository %s", x.Repo.URL)
	case ActionUpdateWebhook:
		return fmt.Sprintf("update webhook secret for repository %s", x.Webhook.RepoID)
	case ActionDeleteWebhook:
		return fmt.Sprintf("delete webhook for repository %s", x.Webhook.RepoID)
	case ActionTriggerSync:
		return "trigger manual webhook synchronization"
	case ActionRerunWorkflow:
		return fmt.Sprintf("rerun workflow run %d", x.Run.ID)
	case ActionApproveReport:
		return fmt.Sprintf("approve report %s", x.ReportID)
	case ActionRejectReport:
		return fmt.Sprintf("reject report %s", x.ReportID)
	case ActionDeleteReport:
		return fmt.Sprintf("delete report %s", x.ReportID)
	}
	return string(x.Kind)
}

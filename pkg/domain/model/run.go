package model

import (
	"strings"
	"time"

	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// WorkflowRun is a single pipeline execution. Runs are immutable from the
// client's perspective; a rerun does not mutate the row but eventually yields
// a new one, observed on a later refresh.
type WorkflowRun struct {
	ID           types.RunID         `json:"id"`
	WorkflowID   types.WorkflowID    `json:"workflow_id"`
	Status       types.RunStatus     `json:"status"`
	Conclusion   types.RunConclusion `json:"conclusion"`
	Branch       types.BranchName    `json:"branch"`
	HeadSHA      types.CommitSHA     `json:"head_sha"`
	RunStartedAt time.Time           `json:"run_started_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// Concluded reports whether the run has a final conclusion.
func (x *WorkflowRun) Concluded() bool {
	return x.Status == types.RunStatusCompleted && x.Conclusion != types.RunConclusionNone
}

// RunSort is a stable sort key for run listings.
type RunSort string

const (
	RunSortByStartedAt RunSort = "run_started_at"
	RunSortByBranch    RunSort = "branch"
)

type RunFilter struct {
	WorkflowID types.WorkflowID
	Branch     types.BranchName
	Status     types.RunStatus
	Query      string
	SortBy     RunSort
}

func (x *RunFilter) Match(run *WorkflowRun) bool {
	if x == nil {
		return true
	}
	if x.WorkflowID != 0 && run.WorkflowID != x.WorkflowID {
		return false
	}
	if x.Branch != "" && run.Branch != x.Branch {
		return false
	}
	if x.Status != "" && run.Status != x.Status {
		return false
	}
	if x.Query != "" {
		q := strings.ToLower(x.Query)
		if !strings.Contains(strings.ToLower(string(run.Branch)), q) &&
			!strings.Contains(strings.ToLower(string(run.HeadSHA)), q) {
			return false
		}
	}
	return true
}

package model

import (
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// Prediction is the model's forecast for a workflow run, read-only to the
// client. Actual is populated server-side once the run concludes.
type Prediction struct {
	RunID     types.RunID `json:"github_run_id"`
	Predicted *bool       `json:"predicted_result"`
	Actual    *bool       `json:"actual_result"`
}

// Mismatch reports whether the forecast disagrees with the observed outcome.
// It is only meaningful once both sides are known.
func (x *Prediction) Mismatch() bool {
	if x == nil || x.Predicted == nil || x.Actual == nil {
		return false
	}
	return *x.Predicted != *x.Actual
}

// MismatchRecord pairs a concluded run with its disagreeing prediction. It is
// derived on every read, never cached.
type MismatchRecord struct {
	Run        *WorkflowRun `json:"run"`
	Prediction *Prediction  `json:"prediction"`
}

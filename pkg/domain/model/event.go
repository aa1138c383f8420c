package model

import (
	"fmt"
	"time"

	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// StatusEvent records an entity transition observed during refresh
// reconciliation, emitted once per transition into a failed state.
type StatusEvent struct {
	Kind       types.EntityKind `json:"kind"`
	EntityID   string           `json:"entity_id"`
	FromStatus string           `json:"from_status"`
	ToStatus   string           `json:"to_status"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func (x *StatusEvent) Message() string {
	return fmt.Sprintf("%s %s transitioned from %s to %s", x.Kind, x.EntityID, x.FromStatus, x.ToStatus)
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Execution records the evaluation of one ad set during a pass and the
// action taken, if any.
type Execution struct {
	ID           int64      `json:"id"`
	AutomationID uuid.UUID  `json:"automationId"`
	UnitID       int64      `json:"unitId"`
	Event        Event      `json:"event"`
	Value        *float64   `json:"value"`
	Satisfied    bool       `json:"satisfied"`
	Action       ActionKind `json:"action,omitempty"`
	Error        string     `json:"error,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

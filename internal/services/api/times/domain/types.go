// Package domain holds time interval types and the times service contract
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TodoRef is the joined todo
type TodoRef struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	Done bool      `json:"done"`
}

// Interval is a tracked stretch of time; End is nil while it runs
type Interval struct {
	ID     uuid.UUID  `json:"id"`
	TodoID uuid.UUID  `json:"todo_id"`
	Start  time.Time  `json:"start"`
	End    *time.Time `json:"end,omitempty"`
	Todo   *TodoRef   `json:"todo,omitempty"`
}

// Running reports whether the interval is open
func (i Interval) Running() bool { return i.End == nil }

// ServicePort is the times workflow surface
type ServicePort interface {
	Start(ctx context.Context, user, todo uuid.UUID) (Interval, error)
	Stop(ctx context.Context, user, todo uuid.UUID) (Interval, error)
	List(ctx context.Context, user uuid.UUID) ([]Interval, error)
}

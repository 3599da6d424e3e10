// Package domain holds stats DTOs and the service contract
package domain

import (
	"context"

	"github.com/google/uuid"
)

// DefaultDays is the window GET /stats/daily uses without ?days
const DefaultDays = 14

// MaxDays bounds the window
const MaxDays = 90

// DailyRow is one calendar day (UTC) of activity
type DailyRow struct {
	Day            string `json:"day" example:"2026-10-01"`
	TrackedSeconds int64  `json:"tracked_seconds" example:"3725"`
	Tracked        string `json:"tracked" example:"1h 2m 5s"`
	Intervals      int64  `json:"intervals" example:"3"`
	Edits          int64  `json:"edits" example:"7"`
	Completed      int64  `json:"completed" example:"2"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Daily(ctx context.Context, user uuid.UUID, days int) ([]DailyRow, error)
}

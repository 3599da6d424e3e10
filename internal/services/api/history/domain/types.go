// Package domain holds the history service contract
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"todotrack/internal/core/history"
)

// Request selects whose history to load and how to label it
type Request struct {
	User     uuid.UUID
	Location *time.Location
	Locale   language.Tag
}

// Cached wraps a view with where it came from
type Cached struct {
	history.View
	LoadedAt  time.Time `json:"loaded_at"`
	FromCache bool      `json:"from_cache"`
}

// ServicePort is the history workflow surface
type ServicePort interface {
	Load(ctx context.Context, req Request) (history.View, error)
	Cached(ctx context.Context, req Request) (Cached, error)
	Invalidate(user uuid.UUID)
}

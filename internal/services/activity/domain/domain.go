// Package domain defines activity events mirrored into ClickHouse
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind of activity
type Kind string

const (
	// KindMutation is a recorded todo edit
	KindMutation Kind = "mutation"
	// KindInterval is a closed time interval
	KindInterval Kind = "interval"
)

// Table is the ClickHouse destination
const Table = "activity_events"

// Event is one row of activity_events
type Event struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TodoID      uuid.UUID
	Kind        Kind
	At          time.Time
	DurationS   uint32
	TextChanged bool
	Done        *bool
}

// Sink records events on a best effort basis; it never fails the caller
type Sink interface {
	Record(ctx context.Context, events ...Event)
}

// Row is the column order of activity_events
func (e Event) Row() []any {
	var done *uint8
	if e.Done != nil {
		v := uint8(0)
		if *e.Done {
			v = 1
		}
		done = &v
	}
	changed := uint8(0)
	if e.TextChanged {
		changed = 1
	}
	return []any{e.ID, e.UserID, e.TodoID, string(e.Kind), e.At.UTC(), e.DurationS, changed, done}
}

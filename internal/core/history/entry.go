// Package history merges time intervals and todo mutations into one
// reverse-chronological history, groups it by local calendar day and answers
// "what was the text before this edit" per todo. Everything here is pure and
// runs to completion on materialized inputs.
package history

import (
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the two entry payloads
type Kind uint8

const (
	// KindTime is a tracked time interval
	KindTime Kind = iota + 1
	// KindMutation is a recorded todo edit
	KindMutation
)

func (k Kind) String() string {
	switch k {
	case KindTime:
		return "time"
	case KindMutation:
		return "mutation"
	default:
		return "unknown"
	}
}

// Todo is the joined todo as it looks now
type Todo struct {
	ID   uuid.UUID
	Text string
	Done bool
}

// TimeInterval is one tracked stretch. A nil End means it is still running.
type TimeInterval struct {
	ID     uuid.UUID
	TodoID uuid.UUID
	Start  time.Time
	End    *time.Time
	Todo   *Todo
}

// Running reports whether the interval is still open
func (t TimeInterval) Running() bool { return t.End == nil }

// Mutation is one edit of a todo. Text and Done are nil when the edit did not touch them.
type Mutation struct {
	ID     uuid.UUID
	TodoID uuid.UUID
	At     time.Time
	Text   *string
	Done   *bool
	Todo   *Todo
}

// Entry is a tagged history element; exactly one payload is set, matching Kind
type Entry struct {
	Kind     Kind
	Time     *TimeInterval
	Mutation *Mutation
}

// TimeEntry wraps an interval
func TimeEntry(t TimeInterval) Entry { return Entry{Kind: KindTime, Time: &t} }

// MutationEntry wraps a mutation
func MutationEntry(m Mutation) Entry { return Entry{Kind: KindMutation, Mutation: &m} }

// At is the instant the entry is ordered and grouped by
func (e Entry) At() time.Time {
	switch e.Kind {
	case KindTime:
		return e.Time.Start
	case KindMutation:
		return e.Mutation.At
	default:
		return time.Time{}
	}
}

// TodoID is the owning todo
func (e Entry) TodoID() uuid.UUID {
	switch e.Kind {
	case KindTime:
		return e.Time.TodoID
	case KindMutation:
		return e.Mutation.TodoID
	default:
		return uuid.Nil
	}
}

// Todo is the joined todo, nil when the source did not join it
func (e Entry) Todo() *Todo {
	switch e.Kind {
	case KindTime:
		return e.Time.Todo
	case KindMutation:
		return e.Mutation.Todo
	default:
		return nil
	}
}

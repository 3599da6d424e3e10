package history

import (
	"time"

	"github.com/google/uuid"
)

var (
	todoA = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	todoB = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	base  = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
)

func str(s string) *string { return &s }
func flag(b bool) *bool    { return &b }

func at(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

func interval(todo uuid.UUID, start time.Time, end *time.Time) TimeInterval {
	return TimeInterval{ID: uuid.New(), TodoID: todo, Start: start, End: end}
}

func textEdit(todo uuid.UUID, when time.Time, text string) Mutation {
	return Mutation{ID: uuid.New(), TodoID: todo, At: when, Text: str(text)}
}

func toggle(todo uuid.UUID, when time.Time, done bool) Mutation {
	return Mutation{ID: uuid.New(), TodoID: todo, At: when, Done: flag(done)}
}

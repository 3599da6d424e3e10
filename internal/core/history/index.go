package history

import (
	"bytes"
	"slices"
	"time"

	"github.com/google/uuid"
)

// IndexEntry is one text-changing mutation
type IndexEntry struct {
	ID   uuid.UUID
	At   time.Time
	Text string
}

// Index maps a todo to its text-changing mutations, oldest first
type Index map[uuid.UUID][]IndexEntry

// BuildIndex collects mutations that carry text per todo, ordered by At then ID.
// Done-only mutations are skipped.
func BuildIndex(muts []Mutation) Index {
	ix := make(Index)
	for _, m := range muts {
		if m.Text == nil {
			continue
		}
		ix[m.TodoID] = append(ix[m.TodoID], IndexEntry{ID: m.ID, At: m.At, Text: *m.Text})
	}
	for _, list := range ix {
		slices.SortStableFunc(list, func(a, b IndexEntry) int {
			if c := a.At.Compare(b.At); c != 0 {
				return c
			}
			return bytes.Compare(a.ID[:], b.ID[:])
		})
	}
	return ix
}

// For returns the todo's entries; nil when it has none
func (ix Index) For(todo uuid.UUID) []IndexEntry { return ix[todo] }

// PreviousText is the text m replaced: the entry just before m's own entry.
// m is found by ID, or by exact At when it has no ID. The first edit of a todo,
// a done-only mutation and a mutation missing from a stale index all give "".
func (ix Index) PreviousText(m Mutation) string {
	if m.Text == nil {
		return ""
	}
	list := ix[m.TodoID]
	i := slices.IndexFunc(list, func(e IndexEntry) bool {
		if m.ID != uuid.Nil {
			return e.ID == m.ID
		}
		return e.At.Equal(m.At)
	})
	if i <= 0 {
		return ""
	}
	return list[i-1].Text
}

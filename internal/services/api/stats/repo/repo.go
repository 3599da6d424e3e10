// Package repo provides clickhouse access for stats
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todotrack/internal/platform/store"
)

// Repo is the minimal read surface for stats
type Repo interface {
	Daily(ctx context.Context, user uuid.UUID, since time.Time) ([]RowDaily, error)
}

// RowDaily is a per-day rollup of activity_events
type RowDaily struct {
	Day       string
	Seconds   uint64
	Intervals uint64
	Edits     uint64
	Completed uint64
}

type queries struct{ ch store.Clickhouse }

// NewCH binds the repo to a ClickHouse seam
func NewCH(ch store.Clickhouse) Repo { return &queries{ch: ch} }

func (r *queries) Daily(ctx context.Context, user uuid.UUID, since time.Time) ([]RowDaily, error) {
	const sql = `
select
	toString(toDate(at)) as day,
	sumIf(toUInt64(duration_s), kind = 'interval') as seconds,
	countIf(kind = 'interval') as intervals,
	countIf(kind = 'mutation' and text_changed = 1) as edits,
	countIf(kind = 'mutation' and done = 1) as completed
from activity_events
where user_id = ? and at >= ?
group by day
order by day asc
`
	rows, err := r.ch.Query(ctx, sql, user, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []RowDaily{}
	for rows.Next() {
		var rr RowDaily
		if err := rows.Scan(&rr.Day, &rr.Seconds, &rr.Intervals, &rr.Edits, &rr.Completed); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

package store

import (
	"context"

	"todotrack/internal/platform/store/ch"
)

// chAdapter exposes *ch.Client as the Clickhouse seam
type chAdapter struct{ c *ch.Client }

func newCHAdapter(c *ch.Client) Clickhouse { return chAdapter{c: c} }

func (a chAdapter) Exec(ctx context.Context, sql string, args ...any) error {
	return a.c.Exec(ctx, sql, args...)
}

func (a chAdapter) Insert(ctx context.Context, table string, rows [][]any) error {
	return a.c.Insert(ctx, table, rows)
}

func (a chAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.c.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r}, nil
}

func (a chAdapter) Ping(ctx context.Context) error { return a.c.Ping(ctx) }
func (a chAdapter) Close() error                   { return a.c.Close() }

// chRows drops the error from Close to satisfy Rows
type chRows struct{ ch.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }

package repo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"todotrack/internal/platform/store"
)

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Next() bool { r.i++; return r.i <= len(r.data) }
func (r *fakeRows) Scan(dst ...any) error {
	row := r.data[r.i-1]
	*dst[0].(*string) = row[0].(string)
	for k := 1; k < len(dst); k++ {
		*dst[k].(*uint64) = row[k].(uint64)
	}
	return nil
}
func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }

type fakeCH struct {
	sql  string
	args []any
	rows *fakeRows
}

func (f *fakeCH) Exec(context.Context, string, ...any) error    { return nil }
func (f *fakeCH) Insert(context.Context, string, [][]any) error { return nil }
func (f *fakeCH) Ping(context.Context) error                    { return nil }
func (f *fakeCH) Close() error                                  { return nil }
func (f *fakeCH) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.sql, f.args = sql, args
	return f.rows, nil
}

func TestDaily_ScansRows(t *testing.T) {
	t.Parallel()

	ch := &fakeCH{rows: &fakeRows{data: [][]any{
		{"2026-10-01", uint64(60), uint64(1), uint64(2), uint64(0)},
	}}}
	user := uuid.New()
	since := time.Date(2026, 9, 18, 0, 0, 0, 0, time.FixedZone("X", 3600))

	got, err := NewCH(ch).Daily(context.Background(), user, since)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Day != "2026-10-01" || got[0].Seconds != 60 || got[0].Edits != 2 {
		t.Fatalf("rows = %+v", got)
	}
	if !strings.Contains(ch.sql, "from activity_events") || ch.args[0] != user {
		t.Fatalf("query = %q %v", ch.sql, ch.args)
	}
	if at := ch.args[1].(time.Time); at.Location() != time.UTC {
		t.Fatalf("since not normalised to UTC: %v", at)
	}
}

func TestDaily_EmptyIsNonNil(t *testing.T) {
	t.Parallel()

	got, err := NewCH(&fakeCH{rows: &fakeRows{}}).Daily(context.Background(), uuid.New(), time.Now())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("got %v, %v", got, err)
	}
}

package store

import (
	"context"
	"errors"
	"testing"

	perr "todotrack/internal/platform/errors"
)

// fakeRows serves canned int rows
type fakeRows struct {
	vals []int
	i    int
	err  error
}

func (f *fakeRows) Next() bool { f.i++; return f.i <= len(f.vals) }
func (f *fakeRows) Scan(dst ...any) error {
	*(dst[0].(*int)) = f.vals[f.i-1]
	return nil
}
func (f *fakeRows) Err() error        { return f.err }
func (f *fakeRows) Close()            {}
func (f *fakeRows) Columns() []string { return []string{"n"} }

type fakeTag int64

func (t fakeTag) String() string      { return "UPDATE" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type fakeQ struct {
	rows     *fakeRows
	queryErr error
	affected int64
}

func (f fakeQ) Exec(context.Context, string, ...any) (CommandTag, error) {
	return fakeTag(f.affected), f.queryErr
}
func (f fakeQ) Query(context.Context, string, ...any) (Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}
func (f fakeQ) QueryRow(context.Context, string, ...any) Row { return f.rows }

func scanInt(r Row) (int, error) {
	var n int
	err := r.Scan(&n)
	return n, err
}

func TestMany(t *testing.T) {
	ctx := context.Background()
	got, err := Many(ctx, fakeQ{rows: &fakeRows{vals: []int{3, 1, 2}}}, scanInt, "q")
	if err != nil || len(got) != 3 || got[0] != 3 || got[2] != 2 {
		t.Fatalf("Many = %v, %v", got, err)
	}

	empty, err := Many(ctx, fakeQ{rows: &fakeRows{}}, scanInt, "q")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("empty Many = %#v, %v", empty, err)
	}

	boom := errors.New("boom")
	if _, err := Many(ctx, fakeQ{queryErr: boom}, scanInt, "q"); !errors.Is(err, boom) {
		t.Fatalf("query error = %v", err)
	}
	if _, err := Many(ctx, fakeQ{rows: &fakeRows{vals: []int{1}, err: boom}}, scanInt, "q"); !errors.Is(err, boom) {
		t.Fatalf("rows error = %v", err)
	}
}

func TestOne(t *testing.T) {
	ctx := context.Background()
	if n, err := One(ctx, fakeQ{rows: &fakeRows{vals: []int{7, 8}}}, scanInt, "q"); err != nil || n != 7 {
		t.Fatalf("One = %d, %v", n, err)
	}
	if _, err := One(ctx, fakeQ{rows: &fakeRows{}}, scanInt, "q"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("One empty = %v", err)
	}
}

func TestScalar(t *testing.T) {
	rs := &fakeRows{vals: []int{42}, i: 1}
	n, err := Scalar[int](context.Background(), fakeQ{rows: rs}, "select 42")
	if err != nil || n != 42 {
		t.Fatalf("Scalar = %d, %v", n, err)
	}
}

func TestExecOne(t *testing.T) {
	ctx := context.Background()
	if err := ExecOne(ctx, fakeQ{affected: 1}, "u"); err != nil {
		t.Fatalf("one row: %v", err)
	}
	if err := ExecOne(ctx, fakeQ{affected: 0}, "u"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("zero rows: %v", err)
	}
	if err := ExecOne(ctx, fakeQ{affected: 2}, "u"); !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("two rows: %v", err)
	}
}

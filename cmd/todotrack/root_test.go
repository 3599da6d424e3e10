package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"todotrack/internal/core/history"
	"todotrack/internal/platform/store"
	"todotrack/internal/platform/testkit"
)

type emptyRows struct{}

func (emptyRows) Next() bool        { return false }
func (emptyRows) Scan(...any) error { return nil }
func (emptyRows) Err() error        { return nil }
func (emptyRows) Close()            {}
func (emptyRows) Columns() []string { return nil }

type fakePG struct{ execs []string }

func (f *fakePG) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return nil, nil
}
func (f *fakePG) Query(context.Context, string, ...any) (store.Rows, error) { return emptyRows{}, nil }
func (f *fakePG) QueryRow(context.Context, string, ...any) store.Row        { return nil }
func (f *fakePG) Tx(_ context.Context, fn func(store.RowQuerier) error) error {
	return fn(f)
}

func run(t *testing.T, pg *fakePG, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	opened := 0
	a := newApp(&out)
	a.open = func(context.Context) (*store.Store, error) {
		opened++
		return &store.Store{PG: pg}, nil
	}
	a.now = testkit.Clock(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	if opened > 1 {
		t.Fatalf("store opened %d times", opened)
	}
	return out.String(), err
}

func TestHistory_Empty(t *testing.T) {
	t.Parallel()

	out, err := run(t, &fakePG{}, "history", "--user", uuid.NewString(), "--tz", "UTC", "--locale", "de")
	if err != nil {
		t.Fatal(err)
	}
	testkit.MustContain(t, out, history.EmptyMessage)
}

func TestHistory_BadFlags(t *testing.T) {
	t.Parallel()

	cases := [][]string{
		{"history"},
		{"history", "--user", "nope"},
		{"history", "--user", uuid.NewString(), "--tz", "Mars/Olympus"},
	}
	for _, args := range cases {
		if _, err := run(t, &fakePG{}, args...); err == nil {
			t.Fatalf("%v: expected an error", args)
		}
	}
}

func TestUserAdd_PrintsToken(t *testing.T) {
	t.Parallel()

	pg := &fakePG{}
	out, err := run(t, pg, "user", "add", "ada")
	if err != nil {
		t.Fatal(err)
	}
	testkit.MustContain(t, out, "name  ada")
	testkit.MustContain(t, out, "token ")
	if len(pg.execs) != 1 || !strings.Contains(pg.execs[0], "insert into users") {
		t.Fatalf("execs = %v", pg.execs)
	}

	if _, err := run(t, &fakePG{}, "user", "add", "  "); err == nil {
		t.Fatalf("blank name accepted")
	}
}

package migrate

import (
	"testing"
	"testing/fstest"
)

func TestLoadEmbedded(t *testing.T) {
	ms, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"0001", "0002", "0003", "0004"}
	if len(ms) != len(want) {
		t.Fatalf("got %d migrations", len(ms))
	}
	for i, m := range ms {
		if m.Version != want[i] || m.SQL == "" {
			t.Fatalf("migration %d = %+v", i, m)
		}
	}
	if ms[3].Name != "todo_mutations" {
		t.Fatalf("name = %q", ms[3].Name)
	}
}

func TestLoadRejectsBadNames(t *testing.T) {
	fsys := fstest.MapFS{"sql/0009.sql": {Data: []byte("SELECT 1")}}
	if _, err := load(fsys); err == nil {
		t.Fatal("expected name error")
	}
}

func TestLoadSortsByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/0002_b.sql":     {Data: []byte("b")},
		"sql/0001_a.sql":     {Data: []byte("a")},
		"sql/clickhouse.sql": {Data: []byte("ignored")},
	}
	ms, err := load(fsys)
	if err != nil || len(ms) != 2 || ms[0].Name != "a" || ms[1].Name != "b" {
		t.Fatalf("load = %+v, %v", ms, err)
	}
}

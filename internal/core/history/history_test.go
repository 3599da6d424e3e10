package history

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	lab := NewLabeler(time.UTC, language.AmericanEnglish)
	v := Render(Build(nil, nil, lab), lab, base)
	if !v.Empty || v.Message != EmptyMessage || v.Groups == nil || len(v.Groups) != 0 {
		t.Fatalf("empty view = %+v", v)
	}
	if v.Locale != "en-US" || v.TimeZone != "UTC" {
		t.Fatalf("locale/tz = %s %s", v.Locale, v.TimeZone)
	}
}

func TestRender_Entries(t *testing.T) {
	t.Parallel()

	lab := NewLabeler(time.UTC, language.BritishEnglish)
	todo := &Todo{ID: todoA, Text: "buy eggs"}
	end := at(0).Add(5 * time.Second)

	closed := interval(todoA, at(0), &end)
	closed.Todo = todo
	running := interval(todoA, at(30), nil)
	running.Todo = todo
	milk := textEdit(todoA, at(1), "buy milk")
	milk.Todo = todo
	bread := textEdit(todoA, at(2), "buy bread")
	bread.Todo = todo
	done := toggle(todoA, at(3), true)
	done.Todo = todo

	now := at(31)
	v := Render(Build([]TimeInterval{closed, running}, []Mutation{milk, bread, done}, lab), lab, now)
	if v.Empty || len(v.Groups) != 1 {
		t.Fatalf("groups = %+v", v.Groups)
	}
	g := v.Groups[0]
	if g.Label != "14 Mar 2026" || len(g.Entries) != 5 {
		t.Fatalf("group = %+v", g)
	}

	run := g.Entries[0]
	if run.Kind != "time" || !run.Running || run.Duration != "1m" || run.Until != "10:31:00" || run.End != nil {
		t.Fatalf("running entry = %+v", run)
	}

	dn := g.Entries[1]
	if dn.Kind != "mutation" || dn.Done == nil || !*dn.Done || dn.Text != nil || dn.TodoText != "buy eggs" {
		t.Fatalf("done entry = %+v", dn)
	}

	br := g.Entries[2]
	if *br.Text != "buy bread" || *br.Previous != "buy milk" || br.Now == nil || *br.Now != "buy eggs" {
		t.Fatalf("bread entry = %+v", br)
	}

	mk := g.Entries[3]
	if *mk.Previous != "" || mk.Clock != "10:01:00" {
		t.Fatalf("milk entry = %+v", mk)
	}

	cl := g.Entries[4]
	if cl.Running || cl.Seconds != 5 || cl.Duration != "5s" || cl.Until != "10:00:05" || cl.End == nil {
		t.Fatalf("closed entry = %+v", cl)
	}
}

func TestRender_NoNowWhenTextIsCurrent(t *testing.T) {
	t.Parallel()

	lab := NewLabeler(time.UTC, language.Und)
	m := textEdit(todoA, at(0), "same")
	m.Todo = &Todo{ID: todoA, Text: "same"}
	v := Render(Build(nil, []Mutation{m}, lab), lab, at(1))
	if e := v.Groups[0].Entries[0]; e.Now != nil {
		t.Fatalf("now should be absent: %+v", e)
	}
}

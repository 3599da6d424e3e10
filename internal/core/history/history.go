package history

import "time"

// History is the derived state of one load: day groups plus the text index
type History struct {
	Groups []Group
	Index  Index
	Count  int
}

// Build merges, groups and indexes one fetch result
func Build(times []TimeInterval, muts []Mutation, lab Labeler) History {
	merged := Merge(times, muts)
	return History{
		Groups: GroupByDay(merged, lab),
		Index:  BuildIndex(muts),
		Count:  len(merged),
	}
}

// EmptyMessage is shown when there is no history at all
const EmptyMessage = "Nothing to show yet..."

// View is the rendered history handed to the display layer
type View struct {
	Groups      []GroupView `json:"groups"`
	Empty       bool        `json:"empty"`
	Message     string      `json:"message,omitempty"`
	Locale      string      `json:"locale"`
	TimeZone    string      `json:"tz"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// GroupView is a rendered day
type GroupView struct {
	Day     string      `json:"day"`
	Label   string      `json:"label"`
	Entries []EntryView `json:"entries"`
}

// EntryView carries the per-entry helper values. Time-only fields are empty on
// mutations and the other way around.
type EntryView struct {
	Kind     string    `json:"kind"`
	ID       string    `json:"id"`
	TodoID   string    `json:"todo_id"`
	At       time.Time `json:"at"`
	Clock    string    `json:"clock"`
	TodoText string    `json:"todo_text,omitempty"`

	End      *time.Time `json:"end,omitempty"`
	Until    string     `json:"until,omitempty"`
	Seconds  int64      `json:"seconds,omitempty"`
	Duration string     `json:"duration,omitempty"`
	Running  bool       `json:"running,omitempty"`

	Text     *string `json:"text,omitempty"`
	Previous *string `json:"previous,omitempty"`
	Now      *string `json:"now,omitempty"`
	Done     *bool   `json:"done,omitempty"`
}

// RunningMarker is appended to running durations by text renderers
const RunningMarker = "(running)"

// Render formats h for lab's locale and location. now is the end of running intervals.
func Render(h History, lab Labeler, now time.Time) View {
	v := View{
		Groups:      make([]GroupView, 0, len(h.Groups)),
		Locale:      lab.Locale().String(),
		TimeZone:    lab.Location().String(),
		GeneratedAt: now,
	}
	for _, g := range h.Groups {
		gv := GroupView{Day: g.Day, Label: g.Label, Entries: make([]EntryView, 0, len(g.Entries))}
		for _, e := range g.Entries {
			gv.Entries = append(gv.Entries, renderEntry(e, h.Index, lab, now))
		}
		v.Groups = append(v.Groups, gv)
	}
	if len(v.Groups) == 0 {
		v.Empty, v.Message = true, EmptyMessage
	}
	return v
}

func renderEntry(e Entry, ix Index, lab Labeler, now time.Time) EntryView {
	ev := EntryView{
		Kind:   e.Kind.String(),
		TodoID: e.TodoID().String(),
		At:     e.At(),
		Clock:  lab.Clock(e.At()),
	}
	todo := e.Todo()
	if todo != nil {
		ev.TodoText = todo.Text
	}

	switch e.Kind {
	case KindTime:
		t := e.Time
		ev.ID = t.ID.String()
		ev.Seconds, ev.Running = Elapsed(*t, now)
		ev.Duration = FormatDuration(ev.Seconds)
		until := now
		if t.End != nil {
			until = *t.End
			end := *t.End
			ev.End = &end
		}
		ev.Until = lab.Clock(until)
	case KindMutation:
		m := e.Mutation
		ev.ID = m.ID.String()
		ev.Done = m.Done
		if m.Text != nil {
			text, prev := *m.Text, ix.PreviousText(*m)
			ev.Text, ev.Previous = &text, &prev
			if todo != nil && todo.Text != text {
				cur := todo.Text
				ev.Now = &cur
			}
		}
	}
	return ev
}

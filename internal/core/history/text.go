package history

import (
	"fmt"
	"io"
	"strings"
)

// WriteText prints v as a plain text report: one heading per day, then one line
// per entry with the clock time, a duration or edit marker and the todo text.
func WriteText(w io.Writer, v View) error {
	if v.Empty {
		_, err := fmt.Fprintln(w, v.Message)
		return err
	}
	for i, g := range v.Groups {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, g.Label); err != nil {
			return err
		}
		for _, e := range g.Entries {
			if _, err := fmt.Fprintf(w, "  %-11s %-14s %s\n", e.Clock, marker(e), detail(e)); err != nil {
				return err
			}
		}
	}
	return nil
}

func marker(e EntryView) string {
	if e.Kind == KindTime.String() {
		if e.Running {
			return e.Duration + " " + RunningMarker
		}
		return e.Duration
	}
	var parts []string
	if e.Done != nil {
		if *e.Done {
			parts = append(parts, "[x]")
		} else {
			parts = append(parts, "[ ]")
		}
	}
	if e.Text != nil {
		parts = append(parts, "edit")
	}
	return strings.Join(parts, " ")
}

func detail(e EntryView) string {
	if e.Text == nil {
		return e.TodoText
	}
	var b strings.Builder
	if e.Previous != nil && *e.Previous != "" {
		b.WriteString(*e.Previous)
		b.WriteString(" > ")
	}
	b.WriteString(*e.Text)
	if e.Now != nil {
		b.WriteString(" (now ")
		b.WriteString(*e.Now)
		b.WriteString(")")
	}
	return b.String()
}

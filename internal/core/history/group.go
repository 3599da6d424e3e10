package history

// Group is one local calendar day of history
type Group struct {
	// Day is the ISO date (2006-01-02) in the labeler's location
	Day string
	// Label is Day formatted for the viewer's locale
	Label   string
	Entries []Entry
}

// GroupByDay partitions entries by local calendar date. Groups appear in order
// of their first member and members keep input order, so a descending input
// gives descending groups.
func GroupByDay(entries []Entry, lab Labeler) []Group {
	out := []Group{}
	if len(entries) == 0 {
		return out
	}
	pos := make(map[string]int)
	for _, e := range entries {
		day := lab.Day(e.At())
		i, ok := pos[day]
		if !ok {
			i = len(out)
			pos[day] = i
			out = append(out, Group{Day: day, Label: lab.Date(e.At())})
		}
		out[i].Entries = append(out[i].Entries, e)
	}
	return out
}

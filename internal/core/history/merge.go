package history

import (
	"slices"
)

// Merge returns every interval and mutation ordered by instant, newest first.
// Inputs may arrive in any order; each side is stably sorted, then the two are
// merged. At equal instants intervals come before mutations and each side keeps
// its input order, so identical input always gives identical output.
func Merge(times []TimeInterval, muts []Mutation) []Entry {
	if len(times) == 0 && len(muts) == 0 {
		return []Entry{}
	}

	ts := slices.Clone(times)
	slices.SortStableFunc(ts, func(a, b TimeInterval) int { return b.Start.Compare(a.Start) })
	ms := slices.Clone(muts)
	slices.SortStableFunc(ms, func(a, b Mutation) int { return b.At.Compare(a.At) })

	out := make([]Entry, 0, len(ts)+len(ms))
	i, j := 0, 0
	for i < len(ts) && j < len(ms) {
		if !ts[i].Start.Before(ms[j].At) {
			out = append(out, TimeEntry(ts[i]))
			i++
			continue
		}
		out = append(out, MutationEntry(ms[j]))
		j++
	}
	for ; i < len(ts); i++ {
		out = append(out, TimeEntry(ts[i]))
	}
	for ; j < len(ms); j++ {
		out = append(out, MutationEntry(ms[j]))
	}
	return out
}

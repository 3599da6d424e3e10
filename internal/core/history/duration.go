package history

import (
	"strconv"
	"strings"
	"time"
)

// Elapsed is the interval length in whole seconds, measured to now while it
// is running, rounded half away from zero
func Elapsed(t TimeInterval, now time.Time) (seconds int64, running bool) {
	until := now
	if t.End != nil {
		until = *t.End
	}
	d := until.Sub(t.Start).Round(time.Second)
	if d < 0 {
		d = 0
	}
	return int64(d / time.Second), t.End == nil
}

// FormatDuration renders seconds as "1h 2m 3s", leaving out zero units ("1h", "5s")
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "0s"
	}
	h, m, s := seconds/3600, seconds%3600/60, seconds%60
	parts := make([]string, 0, 3)
	if h > 0 {
		parts = append(parts, strconv.FormatInt(h, 10)+"h")
	}
	if m > 0 {
		parts = append(parts, strconv.FormatInt(m, 10)+"m")
	}
	if s > 0 {
		parts = append(parts, strconv.FormatInt(s, 10)+"s")
	}
	return strings.Join(parts, " ")
}

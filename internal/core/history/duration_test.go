package history

import (
	"testing"
	"time"
)

func TestElapsed(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(5 * time.Second)
	now := start.Add(90*time.Second + 600*time.Millisecond)

	secs, running := Elapsed(TimeInterval{Start: start, End: &end}, now)
	if secs != 5 || running {
		t.Fatalf("closed: %d %v", secs, running)
	}
	secs, running = Elapsed(TimeInterval{Start: start}, now)
	if secs != 91 || !running {
		t.Fatalf("running: %d %v", secs, running)
	}
	half := start.Add(1500 * time.Millisecond)
	if secs, _ := Elapsed(TimeInterval{Start: start, End: &half}, now); secs != 2 {
		t.Fatalf("rounding: %d", secs)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int64
		want string
	}{
		{0, "0s"},
		{-3, "0s"},
		{5, "5s"},
		{60, "1m"},
		{65, "1m 5s"},
		{3600, "1h"},
		{3605, "1h 5s"},
		{3723, "1h 2m 3s"},
		{90000, "25h"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

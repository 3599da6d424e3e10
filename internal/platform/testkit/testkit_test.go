package testkit

import (
	"testing"
	"time"
)

var seam = func() string { return "real" }

func TestSwapRestores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &seam, func() string { return "fake" })
		if seam() != "fake" {
			t.Fatal("swap not applied")
		}
	})
	if seam() != "real" {
		t.Fatal("swap not restored")
	}
}

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
}

func TestClockAndAt(t *testing.T) {
	at := At(t, "2024-03-01T10:00:00Z")
	now := Clock(at)
	if !now().Equal(at) || !now().Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("clock = %v", now())
	}
}

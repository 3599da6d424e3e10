package module

import (
	"testing"

	"todotrack/internal/modkit/httpkit"
	"todotrack/internal/platform/testkit"
)

type clockPort interface{ Now() int }

type fixedClock struct{}

func (fixedClock) Now() int { return 42 }

type bundle struct {
	Clock clockPort
	note  string
}

type fakeModule struct{ ports any }

func (fakeModule) MountRoutes(httpkit.Router) {}
func (m fakeModule) Ports() any               { return m.ports }
func (fakeModule) Name() string               { return "fake" }

func TestPortsOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		ports any
		ok    bool
	}{
		{"nil", nil, false},
		{"direct", fixedClock{}, true},
		{"struct field", bundle{Clock: fixedClock{}}, true},
		{"pointer struct", &bundle{Clock: fixedClock{}}, true},
		{"missing", bundle{note: "x"}, false},
		{"scalar", 7, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[clockPort](fakeModule{ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got.Now() != 42 {
				t.Fatalf("wrong port resolved")
			}
		})
	}
}

func TestMustPortsOf_Panics(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { MustPortsOf[clockPort](fakeModule{}) })
}

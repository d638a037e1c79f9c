package profile

import (
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	p := New(WithMode("cpu"), WithPath("/tmp/prof"), nil, WithQuiet(true))

	want := Profiler{Mode: "cpu", Path: "/tmp/prof", Quiet: true}
	if p != want {
		t.Errorf("expected %+v, got %+v", want, p)
	}
}

func TestStart_Disabled(t *testing.T) {
	for _, mode := range []string{"", "no-such-mode"} {
		s := New(WithMode(mode)).Start()
		if _, ok := s.(ignore); !ok {
			t.Errorf("mode %q: expected no-op stopper, got %T", mode, s)
		}

		s.Stop()
	}
}

func TestModes_Sorted(t *testing.T) {
	modes := Modes()
	if !slices.IsSorted(modes) {
		t.Errorf("expected sorted modes, got %v", modes)
	}

	if slices.Contains(modes, "quiet") {
		t.Error("quiet is an option, not a mode")
	}
}

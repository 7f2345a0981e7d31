package input

import (
	"strings"
	"testing"
)

func TestScriptSourceDrivesActions(t *testing.T) {
	src := []byte(`
if frame < 2 {
	left = true
	right = true
	scroll = 1.5
} else if frame == 2 {
	left = true
}
`)
	s, err := NewScriptSource("test", src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		left, right bool
		scroll      float64
	}{
		{true, true, 1.5},
		{true, true, 1.5},
		{true, false, 0},
		{false, false, 0},
	}
	for i, c := range cases {
		snap := s.Snapshot()
		if snap.Buttons[ActionLeftWheel] != c.left || snap.Buttons[ActionRightWheel] != c.right {
			t.Fatalf("frame %d: unexpected buttons %+v", i, snap.Buttons)
		}
		if got := snap.Axes[ActionScroll].Y; got != c.scroll {
			t.Fatalf("frame %d: expected scroll %v, got %v", i, c.scroll, got)
		}
	}
	if s.Frame() != len(cases) {
		t.Fatalf("expected frame counter %d, got %d", len(cases), s.Frame())
	}
	if s.Err() != nil {
		t.Fatalf("unexpected runtime error: %v", s.Err())
	}
}

func TestScriptSourceCompileError(t *testing.T) {
	if _, err := NewScriptSource("broken", []byte(`left = (`)); err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestScriptSourceRuntimeErrorGoesIdle(t *testing.T) {
	src := []byte(`
slots := [0]
left = true
scroll = 2.0
if frame == 1 {
	slots[5] = 1
}
`)
	s, err := NewScriptSource("faulty", src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		name   string
		left   bool
		scroll float64
		failed bool
	}{
		{"runs_before_fault", true, 2.0, false},
		{"fault_frame_is_idle", false, 0, true},
		{"stays_idle", false, 0, true},
		{"stays_idle_again", false, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			snap := s.Snapshot()
			if snap.Buttons[ActionLeftWheel] != c.left || snap.Buttons[ActionRightWheel] {
				t.Fatalf("unexpected buttons %+v", snap.Buttons)
			}
			if got := snap.Axes[ActionScroll].Y; got != c.scroll {
				t.Fatalf("expected scroll %v, got %v", c.scroll, got)
			}
			if (s.Err() != nil) != c.failed {
				t.Fatalf("expected failed=%v, got err=%v", c.failed, s.Err())
			}
		})
	}

	if !strings.Contains(s.Err().Error(), "index out of bounds") {
		t.Fatalf("expected the runtime error to be kept, got %v", s.Err())
	}
	if !strings.Contains(s.Err().Error(), "frame 1") {
		t.Fatalf("expected the failing frame in the error, got %v", s.Err())
	}
	if s.Frame() != 2 {
		t.Fatalf("frame counter should stop at the fault, got %d", s.Frame())
	}
}

func TestNilScriptSourceIsIdle(t *testing.T) {
	var s *ScriptSource
	snap := s.Snapshot()
	if snap.Buttons[ActionLeftWheel] || snap.Buttons[ActionRightWheel] || snap.Axes[ActionScroll].Y != 0 {
		t.Fatalf("expected idle snapshot, got %+v", snap)
	}
}

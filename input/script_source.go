package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptSource drives the wheel actions from a tengo script. Each frame the
// script sees `frame` (int) and assigns `left`, `right` (bool) and `scroll`
// (float). Anything left unassigned reads as released / zero.
type ScriptSource struct {
	name     string
	compiled *tengo.Compiled
	frame    int
	err      error
}

// NewScriptSource compiles src once; name is only used in errors.
func NewScriptSource(name string, src []byte) (*ScriptSource, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))
	for _, v := range []struct {
		name  string
		value any
	}{
		{"frame", 0},
		{"left", false},
		{"right", false},
		{"scroll", 0.0},
	} {
		if err := script.Add(v.name, v.value); err != nil {
			return nil, fmt.Errorf("input: script %s: add %s: %w", name, v.name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: script %s: compile: %w", name, err)
	}
	return &ScriptSource{name: name, compiled: compiled}, nil
}

// Err returns the first runtime error; after it the source reports idle
// snapshots.
func (s *ScriptSource) Err() error {
	return s.err
}

func (s *ScriptSource) Frame() int {
	return s.frame
}

func (s *ScriptSource) Snapshot() Snapshot {
	snap := Snapshot{
		Buttons: map[Action]bool{ActionLeftWheel: false, ActionRightWheel: false},
		Axes:    map[Action]Vec2{},
	}
	if s == nil || s.compiled == nil || s.err != nil {
		return snap
	}

	if err := s.compiled.Set("frame", s.frame); err != nil {
		s.err = fmt.Errorf("input: script %s: set frame: %w", s.name, err)
		return snap
	}
	// outputs are cleared every frame so a script only has to set what it uses
	for _, out := range []struct {
		name  string
		value any
	}{
		{"left", false},
		{"right", false},
		{"scroll", 0.0},
	} {
		if err := s.compiled.Set(out.name, out.value); err != nil {
			s.err = fmt.Errorf("input: script %s: set %s: %w", s.name, out.name, err)
			return snap
		}
	}
	s.frame++

	if err := s.compiled.Run(); err != nil {
		s.err = fmt.Errorf("input: script %s: frame %d: %w", s.name, s.frame-1, err)
		return snap
	}

	snap.Buttons[ActionLeftWheel] = s.compiled.Get("left").Bool()
	snap.Buttons[ActionRightWheel] = s.compiled.Get("right").Bool()
	snap.Axes[ActionScroll] = Vec2{Y: s.compiled.Get("scroll").Float()}
	return snap
}

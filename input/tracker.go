package input

import "sort"

// Snapshot is the raw state of every control for one frame.
type Snapshot struct {
	Buttons map[Action]bool
	Axes    map[Action]Vec2
}

// Source produces one snapshot per frame.
type Source interface {
	Snapshot() Snapshot
}

// Tracker turns level snapshots into edge events: a button going down is
// Performed, going up is Canceled. Non-zero axes are Performed every frame.
type Tracker struct {
	held map[Action]bool
}

func (t *Tracker) Events(s Snapshot) []Event {
	if t.held == nil {
		t.held = make(map[Action]bool)
	}

	var events []Event
	for _, a := range sortedActions(s.Buttons, t.held) {
		down := s.Buttons[a]
		if down == t.held[a] {
			continue
		}
		phase := Performed
		if !down {
			phase = Canceled
		}
		events = append(events, Event{Action: a, Phase: phase})
		if down {
			t.held[a] = true
		} else {
			delete(t.held, a)
		}
	}

	axes := make([]Action, 0, len(s.Axes))
	for a := range s.Axes {
		axes = append(axes, a)
	}
	sort.Slice(axes, func(i, j int) bool { return axes[i] < axes[j] })
	for _, a := range axes {
		v := s.Axes[a]
		if v.X == 0 && v.Y == 0 {
			continue
		}
		events = append(events, Event{Action: a, Phase: Performed, Value: v})
	}
	return events
}

// Held reports whether a is currently down according to the last snapshot.
func (t *Tracker) Held(a Action) bool {
	return t.held[a]
}

// Reset releases every held button, returning the Canceled events for them.
func (t *Tracker) Reset() []Event {
	var events []Event
	for _, a := range sortedActions(nil, t.held) {
		events = append(events, Event{Action: a, Phase: Canceled})
	}
	t.held = nil
	return events
}

func sortedActions(maps ...map[Action]bool) []Action {
	seen := make(map[Action]struct{})
	var out []Action
	for _, m := range maps {
		for a := range m {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

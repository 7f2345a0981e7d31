package input

import (
	"reflect"
	"testing"
)

func TestTrackerEdges(t *testing.T) {
	var tr Tracker

	frames := []struct {
		name string
		snap Snapshot
		want []Event
	}{
		{
			name: "idle",
			snap: Snapshot{Buttons: map[Action]bool{ActionLeftWheel: false}},
			want: nil,
		},
		{
			name: "press_left",
			snap: Snapshot{Buttons: map[Action]bool{ActionLeftWheel: true}},
			want: []Event{{Action: ActionLeftWheel, Phase: Performed}},
		},
		{
			name: "hold_left_scroll",
			snap: Snapshot{
				Buttons: map[Action]bool{ActionLeftWheel: true},
				Axes:    map[Action]Vec2{ActionScroll: {Y: 1}},
			},
			want: []Event{{Action: ActionScroll, Phase: Performed, Value: Vec2{Y: 1}}},
		},
		{
			name: "release_left_press_right",
			snap: Snapshot{
				Buttons: map[Action]bool{ActionLeftWheel: false, ActionRightWheel: true},
				Axes:    map[Action]Vec2{ActionScroll: {}},
			},
			want: []Event{
				{Action: ActionLeftWheel, Phase: Canceled},
				{Action: ActionRightWheel, Phase: Performed},
			},
		},
	}

	for _, f := range frames {
		t.Run(f.name, func(t *testing.T) {
			got := tr.Events(f.snap)
			if !reflect.DeepEqual(got, f.want) {
				t.Fatalf("expected %+v, got %+v", f.want, got)
			}
		})
	}

	if !tr.Held(ActionRightWheel) || tr.Held(ActionLeftWheel) {
		t.Fatal("held state should track the last snapshot")
	}
	released := tr.Reset()
	if len(released) != 1 || released[0] != (Event{Action: ActionRightWheel, Phase: Canceled}) {
		t.Fatalf("reset should cancel the right wheel, got %+v", released)
	}
	if tr.Held(ActionRightWheel) {
		t.Fatal("reset should clear held state")
	}
}

func TestTrackerMissingButtonCountsAsReleased(t *testing.T) {
	var tr Tracker
	tr.Events(Snapshot{Buttons: map[Action]bool{ActionLeftWheel: true}})
	got := tr.Events(Snapshot{})
	want := []Event{{Action: ActionLeftWheel, Phase: Canceled}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

package wheelchair

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"

	"github.com/milk9111/wheelchair/input"
)

func newTestController(t *testing.T, a Actions) (*Controller, *input.Dispatcher, *fakeBody) {
	t.Helper()
	c := NewController(DefaultTuning(), a, zerolog.Nop())
	body := &fakeBody{}
	c.SetBody(body)
	d := input.NewDispatcher()
	if err := c.Enable(d); err != nil {
		t.Fatalf("enable: %v", err)
	}
	return c, d, body
}

func press(d *input.Dispatcher, a input.Action) {
	d.Dispatch(input.Event{Action: a, Phase: input.Performed})
}

func release(d *input.Dispatcher, a input.Action) {
	d.Dispatch(input.Event{Action: a, Phase: input.Canceled})
}

func scroll(d *input.Dispatcher, y float64) {
	d.Dispatch(input.Event{Action: input.ActionScroll, Phase: input.Performed, Value: input.Vec2{X: 3, Y: y}})
}

func TestControllerEngagement(t *testing.T) {
	c, d, _ := newTestController(t, DefaultActions())

	steps := []struct {
		name string
		do   func()
		want State
	}{
		{"press_left", func() { press(d, input.ActionLeftWheel) }, State{LeftEngaged: true}},
		{"press_right", func() { press(d, input.ActionRightWheel) }, State{true, true}},
		{"release_left", func() { release(d, input.ActionLeftWheel) }, State{RightEngaged: true}},
		{"release_right", func() { release(d, input.ActionRightWheel) }, State{}},
	}
	for _, s := range steps {
		t.Run(s.name, func(t *testing.T) {
			s.do()
			if c.State() != s.want {
				t.Fatalf("expected %+v, got %+v", s.want, c.State())
			}
		})
	}
}

func TestControllerScrollUsesVerticalAxis(t *testing.T) {
	c, d, body := newTestController(t, DefaultActions())
	body.angle = math.Pi / 2

	press(d, input.ActionLeftWheel)
	press(d, input.ActionRightWheel)
	scroll(d, 2)

	if body.forces != 1 {
		t.Fatalf("expected one force, got %d", body.forces)
	}
	if !approx(body.force.X, 0) || !approx(body.force.Y, 200) {
		t.Fatalf("expected force (0, 200) along forward, got %+v", body.force)
	}
	if c.LastPush().Kind != PushDrive {
		t.Fatalf("expected drive push, got %v", c.LastPush().Kind)
	}

	scroll(d, 0.005)
	if body.forces != 1 || c.LastPush().Kind != PushNone {
		t.Fatal("dead-zone scroll must not push")
	}
}

func TestControllerTurning(t *testing.T) {
	_, d, body := newTestController(t, DefaultActions())

	press(d, input.ActionLeftWheel)
	scroll(d, 1)
	if !approx(body.torque, 50) {
		t.Fatalf("left wheel should add +50 torque, got %v", body.torque)
	}

	release(d, input.ActionLeftWheel)
	press(d, input.ActionRightWheel)
	body.torque = 0
	scroll(d, 1)
	if !approx(body.torque, -50) {
		t.Fatalf("right wheel should add -50 torque, got %v", body.torque)
	}

	body.torque = 0
	body.angVel = 2
	scroll(d, 1)
	if body.torque != 0 {
		t.Fatalf("no torque at the turn cap, got %v", body.torque)
	}
}

func TestControllerSpeedCap(t *testing.T) {
	_, d, body := newTestController(t, DefaultActions())
	press(d, input.ActionLeftWheel)
	press(d, input.ActionRightWheel)

	body.vel = cp.Vector{X: 4, Y: 3.1}
	scroll(d, 1)
	if body.forces != 0 {
		t.Fatal("no forward force above max speed")
	}

	body.vel = cp.Vector{X: 3, Y: 4}
	scroll(d, 1)
	if body.forces != 1 {
		t.Fatal("speed equal to the cap still pushes")
	}
}

func TestControllerDisableReleasesSubscriptions(t *testing.T) {
	c, d, body := newTestController(t, DefaultActions())
	if err := c.Enable(d); err != nil {
		t.Fatalf("second enable: %v", err)
	}
	if n := d.Subscribers(input.ActionLeftWheel, input.Performed); n != 1 {
		t.Fatalf("enable must be idempotent, got %d subscribers", n)
	}

	press(d, input.ActionLeftWheel)
	press(d, input.ActionRightWheel)
	c.Disable()

	if c.Enabled() || c.State() != (State{}) {
		t.Fatalf("disable should clear engagement, got %+v", c.State())
	}
	for _, k := range []struct {
		a input.Action
		p input.Phase
	}{
		{input.ActionLeftWheel, input.Performed},
		{input.ActionLeftWheel, input.Canceled},
		{input.ActionRightWheel, input.Performed},
		{input.ActionRightWheel, input.Canceled},
		{input.ActionScroll, input.Performed},
	} {
		if n := d.Subscribers(k.a, k.p); n != 0 {
			t.Fatalf("%s/%s still has %d subscribers", k.a, k.p, n)
		}
	}

	press(d, input.ActionLeftWheel)
	press(d, input.ActionRightWheel)
	scroll(d, 1)
	if body.forces != 0 || c.State() != (State{}) {
		t.Fatal("a disabled controller must ignore input")
	}
}

func TestControllerUnboundActions(t *testing.T) {
	c, d, body := newTestController(t, Actions{Left: input.ActionLeftWheel, Scroll: input.ActionScroll})
	if n := d.Subscribers(input.ActionRightWheel, input.Performed); n != 0 {
		t.Fatalf("unbound right wheel should not subscribe, got %d", n)
	}

	press(d, input.ActionLeftWheel)
	press(d, input.ActionRightWheel)
	scroll(d, 1)
	if c.State().RightEngaged {
		t.Fatal("unbound right wheel must stay released")
	}
	if !approx(body.torque, 50) {
		t.Fatalf("left-only push expected, got torque %v", body.torque)
	}
}

func TestControllerWithoutBody(t *testing.T) {
	c := NewController(DefaultTuning(), DefaultActions(), zerolog.Nop())
	var nilBody *cp.Body
	c.SetBody(nilBody)
	if c.Body() != nil {
		t.Fatal("typed nil body should be treated as missing")
	}
	d := input.NewDispatcher()
	if err := c.Enable(d); err != nil {
		t.Fatal(err)
	}
	press(d, input.ActionLeftWheel)
	press(d, input.ActionRightWheel)
	scroll(d, 1)
	if c.LastPush().Kind != PushNone {
		t.Fatal("pushes without a body are dropped")
	}
	if err := c.Enable(nil); err == nil {
		t.Fatal("enable without a dispatcher should fail")
	}
}

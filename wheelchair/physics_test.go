package wheelchair

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"

	"github.com/milk9111/wheelchair/input"
)

func TestControllerDrivesChipmunkBody(t *testing.T) {
	const dt = 1.0 / 60

	space := cp.NewSpace()
	body := space.AddBody(cp.NewBody(1, 1))

	tune := DefaultTuning()
	c := NewController(tune, DefaultActions(), zerolog.Nop())
	c.SetBody(body)
	d := input.NewDispatcher()
	if err := c.Enable(d); err != nil {
		t.Fatal(err)
	}

	press(d, input.ActionLeftWheel)
	press(d, input.ActionRightWheel)
	scroll(d, 1)
	space.Step(dt)

	want := (tune.WheelForce * dt) / (1 + dt*tune.LinearDamping)
	v := body.Velocity()
	if !approx(v.X, want) || !approx(v.Y, 0) {
		t.Fatalf("expected velocity (%v, 0), got %+v", want, v)
	}

	// no new push: force was consumed by the step, only damping acts
	space.Step(dt)
	decayed := want / (1 + dt*tune.LinearDamping)
	if v := body.Velocity(); !approx(v.X, decayed) {
		t.Fatalf("expected damped velocity %v, got %v", decayed, v.X)
	}
}

func TestControllerTurnsChipmunkBody(t *testing.T) {
	const dt = 1.0 / 60

	space := cp.NewSpace()
	body := space.AddBody(cp.NewBody(1, 1))

	tune := DefaultTuning()
	c := NewController(tune, DefaultActions(), zerolog.Nop())
	c.SetBody(body)
	d := input.NewDispatcher()
	if err := c.Enable(d); err != nil {
		t.Fatal(err)
	}

	press(d, input.ActionLeftWheel)
	scroll(d, 1)
	space.Step(dt)

	want := (tune.TurnForce * dt) / (1 + dt*tune.AngularDamping)
	if w := body.AngularVelocity(); !approx(w, want) {
		t.Fatalf("expected angular velocity %v, got %v", want, w)
	}
	if body.Angle() <= 0 {
		t.Fatalf("left wheel push should increase the angle, got %v", body.Angle())
	}

	// spin past the cap; further pushes are ignored
	body.SetAngularVelocity(tune.MaxTurnSpeed)
	scroll(d, 1)
	if body.Torque() != 0 {
		t.Fatalf("expected no torque at the cap, got %v", body.Torque())
	}
}

package wheelchair

import (
	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"

	"github.com/milk9111/wheelchair/input"
)

// Actions names the input actions a controller listens to. An empty name
// leaves that control unbound.
type Actions struct {
	Left   input.Action
	Right  input.Action
	Scroll input.Action
}

func DefaultActions() Actions {
	return Actions{
		Left:   input.ActionLeftWheel,
		Right:  input.ActionRightWheel,
		Scroll: input.ActionScroll,
	}
}

// Controller turns wheel and scroll events into pushes on a body.
type Controller struct {
	tuning  Tuning
	actions Actions
	state   State
	body    Body

	dispatcher *input.Dispatcher
	subs       []input.Subscription

	lastPush Push
	log      zerolog.Logger
}

func NewController(t Tuning, a Actions, log zerolog.Logger) *Controller {
	return &Controller{tuning: t, actions: a, log: log}
}

func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// SetTuning replaces the tuning. Damping is reinstalled on the body when the
// controller is enabled.
func (c *Controller) SetTuning(t Tuning) {
	c.tuning = t
	if c.Enabled() {
		c.installDamping()
	}
}

func (c *Controller) State() State {
	return c.state
}

// LastPush returns the most recent push decision, including PushNone.
func (c *Controller) LastPush() Push {
	return c.lastPush
}

func (c *Controller) Body() Body {
	return c.body
}

// SetBody attaches the body pushes go to. A nil body drops pushes.
func (c *Controller) SetBody(b Body) {
	if cb, ok := b.(*cp.Body); ok && cb == nil {
		b = nil
	}
	c.body = b
	if c.Enabled() {
		c.installDamping()
	}
}

func (c *Controller) Enabled() bool {
	return c.dispatcher != nil
}

// Enable subscribes the controller's handlers to d. Unbound actions are
// skipped. Calling Enable while enabled is a no-op.
func (c *Controller) Enable(d *input.Dispatcher) error {
	if d == nil {
		return input.ErrNoSource
	}
	if c.Enabled() {
		return nil
	}

	type binding struct {
		action input.Action
		phase  input.Phase
		h      input.Handler
	}
	bindings := []binding{
		{c.actions.Left, input.Performed, func(input.Event) { c.state.LeftEngaged = true }},
		{c.actions.Left, input.Canceled, func(input.Event) { c.state.LeftEngaged = false }},
		{c.actions.Right, input.Performed, func(input.Event) { c.state.RightEngaged = true }},
		{c.actions.Right, input.Canceled, func(input.Event) { c.state.RightEngaged = false }},
		{c.actions.Scroll, input.Performed, c.onScroll},
	}

	subs := make([]input.Subscription, 0, len(bindings))
	for _, b := range bindings {
		if b.action == "" {
			continue
		}
		sub, err := d.Subscribe(b.action, b.phase, b.h)
		if err != nil {
			for _, s := range subs {
				d.Unsubscribe(s)
			}
			return err
		}
		subs = append(subs, sub)
	}

	c.dispatcher = d
	c.subs = subs
	c.installDamping()
	c.log.Debug().Int("subscriptions", len(subs)).Msg("wheelchair controller enabled")
	return nil
}

// Disable releases every subscription taken by Enable. Engagement is
// cleared since release events will no longer arrive.
func (c *Controller) Disable() {
	if !c.Enabled() {
		return
	}
	for _, s := range c.subs {
		c.dispatcher.Unsubscribe(s)
	}
	c.subs = nil
	c.dispatcher = nil
	c.state = State{}
	c.log.Debug().Msg("wheelchair controller disabled")
}

func (c *Controller) onScroll(evt input.Event) {
	c.Push(evt.Value.Y)
}

// Push applies one scroll sample against the current engagement state.
func (c *Controller) Push(scroll float64) Push {
	if c.body == nil {
		c.lastPush = Push{}
		return c.lastPush
	}
	v := c.body.Velocity()
	p := Decide(c.state, c.tuning, scroll, Forward(c.body), v.Length(), c.body.AngularVelocity())
	Apply(c.body, p)
	c.lastPush = p
	return p
}

func (c *Controller) installDamping() {
	if b, ok := c.body.(*cp.Body); ok && b != nil {
		InstallDamping(b, c.tuning.LinearDamping, c.tuning.AngularDamping)
	}
}

// InstallDamping makes b lose linear and angular velocity at the given
// per-second rates on top of the space's own damping.
func InstallDamping(b *cp.Body, linear, angular float64) {
	b.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
		cp.BodyUpdateVelocity(body, gravity, damping, dt)
		body.SetVelocityVector(body.Velocity().Mult(1 / (1 + dt*linear)))
		body.SetAngularVelocity(body.AngularVelocity() / (1 + dt*angular))
	})
}

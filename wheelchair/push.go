package wheelchair

import (
	"math"

	"github.com/jakecoffman/cp"
)

// ScrollDeadZone is the smallest scroll magnitude that moves the chair.
const ScrollDeadZone = 0.01

// State is which wheels the player is holding.
type State struct {
	LeftEngaged  bool
	RightEngaged bool
}

type PushKind int

const (
	PushNone PushKind = iota
	PushDrive
	PushTurn
)

func (k PushKind) String() string {
	switch k {
	case PushDrive:
		return "drive"
	case PushTurn:
		return "turn"
	default:
		return "none"
	}
}

// Push is what one scroll sample asks of the body.
type Push struct {
	Kind   PushKind
	Force  cp.Vector
	Torque float64
}

// Decide maps one scroll sample to a push.
//
//	both wheels  -> force along forward, unless speed > MaxSpeed
//	left only    -> torque +scroll*TurnForce while |angSpeed| < MaxTurnSpeed
//	right only   -> torque -scroll*TurnForce under the same cap
//	neither      -> nothing
//
// forward must be a unit vector. Samples inside the dead-zone never push.
func Decide(s State, t Tuning, scroll float64, forward cp.Vector, speed, angSpeed float64) Push {
	if math.Abs(scroll) < ScrollDeadZone {
		return Push{}
	}
	switch {
	case s.LeftEngaged && s.RightEngaged:
		if speed > t.MaxSpeed {
			return Push{}
		}
		return Push{Kind: PushDrive, Force: forward.Mult(scroll * t.WheelForce)}
	case s.LeftEngaged:
		if math.Abs(angSpeed) >= t.MaxTurnSpeed {
			return Push{}
		}
		return Push{Kind: PushTurn, Torque: scroll * t.TurnForce}
	case s.RightEngaged:
		if math.Abs(angSpeed) >= t.MaxTurnSpeed {
			return Push{}
		}
		return Push{Kind: PushTurn, Torque: -scroll * t.TurnForce}
	default:
		return Push{}
	}
}

// Body is the part of a rigid body a controller reads and writes. *cp.Body
// satisfies it.
type Body interface {
	Position() cp.Vector
	Velocity() cp.Vector
	AngularVelocity() float64
	Rotation() cp.Vector
	ApplyForceAtWorldPoint(force, point cp.Vector)
	Torque() float64
	SetTorque(torque float64)
}

// Apply submits p to b for its next physics step.
func Apply(b Body, p Push) {
	if b == nil {
		return
	}
	switch p.Kind {
	case PushDrive:
		b.ApplyForceAtWorldPoint(p.Force, b.Position())
	case PushTurn:
		b.SetTorque(b.Torque() + p.Torque)
	}
}

// Forward is the chair's facing direction in world space.
func Forward(b Body) cp.Vector {
	return b.Rotation()
}

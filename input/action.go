package input

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAction = errors.New("input: action is not bound")
	ErrNilHandler    = errors.New("input: handler is nil")
	ErrNoSource      = errors.New("input: no source")
)

// Action names a logical control, e.g. "left_wheel".
type Action string

const (
	ActionLeftWheel  Action = "left_wheel"
	ActionRightWheel Action = "right_wheel"
	ActionScroll     Action = "scroll"
)

// Phase is the lifecycle step an event reports.
type Phase int

const (
	// Performed fires when a button goes down or an axis reports a value.
	Performed Phase = iota + 1
	// Canceled fires when a button is released.
	Canceled
)

func (p Phase) String() string {
	switch p {
	case Performed:
		return "performed"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Vec2 is a 2-D axis sample such as a scroll delta.
type Vec2 struct {
	X float64
	Y float64
}

// Event is delivered to subscribers of (Action, Phase).
type Event struct {
	Action Action
	Phase  Phase
	Value  Vec2
}

// Handler receives dispatched events.
type Handler func(Event)

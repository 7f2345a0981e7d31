package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadzone = 0.2

// gamepadScrollRate converts a fully deflected stick into scroll units per frame.
const gamepadScrollRate = 0.25

// EbitenSource polls ebiten's keyboard, mouse and first gamepad.
type EbitenSource struct {
	Bindings Bindings
}

func NewEbitenSource(b Bindings) *EbitenSource {
	return &EbitenSource{Bindings: b}
}

func (s *EbitenSource) Snapshot() Snapshot {
	snap := Snapshot{
		Buttons: make(map[Action]bool, len(s.Bindings.Buttons)),
		Axes:    make(map[Action]Vec2, len(s.Bindings.Axes)),
	}

	var gamepad ebiten.GamepadID
	hasGamepad := false
	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gamepad = ids[0]
		hasGamepad = ebiten.IsStandardGamepadLayoutAvailable(gamepad)
	}

	for action, b := range s.Bindings.Buttons {
		down := false
		for _, mb := range b.Mouse {
			down = down || ebiten.IsMouseButtonPressed(mb)
		}
		for _, k := range b.Keys {
			down = down || ebiten.IsKeyPressed(k)
		}
		if hasGamepad {
			for _, gb := range b.Gamepad {
				down = down || ebiten.IsStandardGamepadButtonPressed(gamepad, gb)
			}
		}
		snap.Buttons[action] = down
	}

	for action, a := range s.Bindings.Axes {
		var v Vec2
		if a.Wheel {
			v.X, v.Y = ebiten.Wheel()
		}
		for _, k := range a.UpKeys {
			if inpututil.IsKeyJustPressed(k) {
				v.Y++
			}
		}
		for _, k := range a.DownKeys {
			if inpututil.IsKeyJustPressed(k) {
				v.Y--
			}
		}
		if a.GamepadAxis && hasGamepad {
			ry := ebiten.StandardGamepadAxisValue(gamepad, ebiten.StandardGamepadAxisRightStickVertical)
			if math.Abs(ry) > stickDeadzone {
				// stick up is negative
				v.Y -= ry * gamepadScrollRate
			}
		}
		scale := a.Scale
		if scale == 0 {
			scale = 1
		}
		v.X *= scale
		v.Y *= scale
		snap.Axes[action] = v
	}
	return snap
}

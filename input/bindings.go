package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonBinding maps physical buttons to one logical button action.
type ButtonBinding struct {
	Mouse   []ebiten.MouseButton
	Keys    []ebiten.Key
	Gamepad []ebiten.StandardGamepadButton
}

// AxisBinding maps physical controls to one logical 2-D axis action.
type AxisBinding struct {
	Wheel       bool
	UpKeys      []ebiten.Key
	DownKeys    []ebiten.Key
	GamepadAxis bool
	Scale       float64
}

// Bindings is the full control map. Actions missing from the maps are
// unbound and never produce events.
type Bindings struct {
	Buttons map[Action]ButtonBinding
	Axes    map[Action]AxisBinding
}

// DefaultBindings returns mouse buttons for the wheels and the mouse wheel for
// pushes, with keyboard and gamepad fallbacks.
func DefaultBindings() Bindings {
	return Bindings{
		Buttons: map[Action]ButtonBinding{
			ActionLeftWheel: {
				Mouse:   []ebiten.MouseButton{ebiten.MouseButtonLeft},
				Keys:    []ebiten.Key{ebiten.KeyA},
				Gamepad: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
			},
			ActionRightWheel: {
				Mouse:   []ebiten.MouseButton{ebiten.MouseButtonRight},
				Keys:    []ebiten.Key{ebiten.KeyD},
				Gamepad: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
			},
		},
		Axes: map[Action]AxisBinding{
			ActionScroll: {
				Wheel:       true,
				UpKeys:      []ebiten.Key{ebiten.KeyW},
				DownKeys:    []ebiten.Key{ebiten.KeyS},
				GamepadAxis: true,
				Scale:       1,
			},
		},
	}
}

var mouseButtonNames = map[string]ebiten.MouseButton{
	"left":   ebiten.MouseButtonLeft,
	"right":  ebiten.MouseButtonRight,
	"middle": ebiten.MouseButtonMiddle,
	"back":   ebiten.MouseButton3,
	"fwd":    ebiten.MouseButton4,
}

var gamepadButtonNames = map[string]ebiten.StandardGamepadButton{
	"left_shoulder":  ebiten.StandardGamepadButtonFrontTopLeft,
	"right_shoulder": ebiten.StandardGamepadButtonFrontTopRight,
	"left_trigger":   ebiten.StandardGamepadButtonFrontBottomLeft,
	"right_trigger":  ebiten.StandardGamepadButtonFrontBottomRight,
	"a":              ebiten.StandardGamepadButtonRightBottom,
	"b":              ebiten.StandardGamepadButtonRightRight,
	"x":              ebiten.StandardGamepadButtonRightLeft,
	"y":              ebiten.StandardGamepadButtonRightTop,
}

// ParseButton parses "mouse:left", "key:Q" or "gamepad:left_shoulder" into b.
func (b *ButtonBinding) ParseButton(spec string) error {
	kind, name, ok := strings.Cut(strings.TrimSpace(spec), ":")
	if !ok || name == "" {
		return fmt.Errorf("input: parse binding %q: want kind:name", spec)
	}
	switch strings.ToLower(kind) {
	case "mouse":
		mb, ok := mouseButtonNames[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("input: parse binding %q: unknown mouse button", spec)
		}
		b.Mouse = append(b.Mouse, mb)
	case "key":
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return fmt.Errorf("input: parse binding %q: %w", spec, err)
		}
		b.Keys = append(b.Keys, k)
	case "gamepad":
		gb, ok := gamepadButtonNames[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("input: parse binding %q: unknown gamepad button", spec)
		}
		b.Gamepad = append(b.Gamepad, gb)
	default:
		return fmt.Errorf("input: parse binding %q: unknown kind %q", spec, kind)
	}
	return nil
}

// ParseAxis parses "wheel", "gamepad:right_stick", "key_up:W" or
// "key_down:S" into a.
func (a *AxisBinding) ParseAxis(spec string) error {
	spec = strings.TrimSpace(spec)
	if strings.EqualFold(spec, "wheel") {
		a.Wheel = true
		return nil
	}
	kind, name, ok := strings.Cut(spec, ":")
	if !ok || name == "" {
		return fmt.Errorf("input: parse axis %q: want wheel or kind:name", spec)
	}
	switch strings.ToLower(kind) {
	case "gamepad":
		if !strings.EqualFold(name, "right_stick") {
			return fmt.Errorf("input: parse axis %q: only right_stick is supported", spec)
		}
		a.GamepadAxis = true
	case "key_up", "key_down":
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return fmt.Errorf("input: parse axis %q: %w", spec, err)
		}
		if strings.EqualFold(kind, "key_up") {
			a.UpKeys = append(a.UpKeys, k)
		} else {
			a.DownKeys = append(a.DownKeys, k)
		}
	default:
		return fmt.Errorf("input: parse axis %q: unknown kind %q", spec, kind)
	}
	return nil
}

// ParseBindings builds Bindings from config strings. An action with an empty
// list stays unbound.
func ParseBindings(buttons map[Action][]string, axes map[Action][]string, scale float64) (Bindings, error) {
	out := Bindings{
		Buttons: make(map[Action]ButtonBinding),
		Axes:    make(map[Action]AxisBinding),
	}
	for action, specs := range buttons {
		if len(specs) == 0 {
			continue
		}
		var b ButtonBinding
		for _, spec := range specs {
			if err := b.ParseButton(spec); err != nil {
				return Bindings{}, err
			}
		}
		out.Buttons[action] = b
	}
	if scale == 0 {
		scale = 1
	}
	for action, specs := range axes {
		if len(specs) == 0 {
			continue
		}
		a := AxisBinding{Scale: scale}
		for _, spec := range specs {
			if err := a.ParseAxis(spec); err != nil {
				return Bindings{}, err
			}
		}
		out.Axes[action] = a
	}
	return out, nil
}

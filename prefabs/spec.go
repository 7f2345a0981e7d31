package prefabs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/wheelchair/input"
	"github.com/milk9111/wheelchair/wheelchair"
)

const (
	WheelchairFile = "wheelchair.yaml"
	CameraFile     = "camera.yaml"
	ArenaFile      = "arena.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TransformSpec positions an entity in meters; Rotation is in degrees.
type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

func (t TransformSpec) Radians() float64 {
	return t.Rotation * math.Pi / 180
}

type BodySpec struct {
	Width      float64 `yaml:"width"`
	Length     float64 `yaml:"length"`
	Mass       float64 `yaml:"mass"`
	Moment     float64 `yaml:"moment"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
}

type InputSpec struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Scroll string `yaml:"scroll"`
}

type ShapeRenderSpec struct {
	Fill    *YAMLColor `yaml:"fill"`
	Outline *YAMLColor `yaml:"outline"`
	Layer   int        `yaml:"layer"`
}

// TuningSpec holds the wheelchair tuning keys as they appear in YAML.
type TuningSpec struct {
	WheelForce         float64 `yaml:"wheel_force"`
	TurnForce          float64 `yaml:"turn_force"`
	MaxSpeed           float64 `yaml:"max_speed"`
	MaxTurnSpeed       float64 `yaml:"max_turn_speed"`
	LinearDamping      float64 `yaml:"linear_damping"`
	AngularDamping     float64 `yaml:"angular_damping"`
	CameraFollowSmooth float64 `yaml:"camera_follow_smooth"`
}

func NewTuningSpec(t wheelchair.Tuning) TuningSpec {
	return TuningSpec{
		WheelForce:         t.WheelForce,
		TurnForce:          t.TurnForce,
		MaxSpeed:           t.MaxSpeed,
		MaxTurnSpeed:       t.MaxTurnSpeed,
		LinearDamping:      t.LinearDamping,
		AngularDamping:     t.AngularDamping,
		CameraFollowSmooth: t.CameraFollowSmooth,
	}
}

func (s TuningSpec) Tuning() wheelchair.Tuning {
	return wheelchair.Tuning{
		WheelForce:         s.WheelForce,
		TurnForce:          s.TurnForce,
		MaxSpeed:           s.MaxSpeed,
		MaxTurnSpeed:       s.MaxTurnSpeed,
		LinearDamping:      s.LinearDamping,
		AngularDamping:     s.AngularDamping,
		CameraFollowSmooth: s.CameraFollowSmooth,
	}
}

// MarshalTuning renders t with the keys wheelchair.yaml uses, ready to paste
// back into the prefab.
func MarshalTuning(t wheelchair.Tuning) ([]byte, error) {
	data, err := yaml.Marshal(NewTuningSpec(t))
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal tuning: %w", err)
	}
	return data, nil
}

type WheelchairSpec struct {
	TuningSpec `yaml:",inline"`

	Name      string          `yaml:"name"`
	Input     InputSpec       `yaml:"input"`
	Transform TransformSpec   `yaml:"transform"`
	Body      BodySpec        `yaml:"body"`
	Render    ShapeRenderSpec `yaml:"render"`
}

func LoadWheelchairSpec() (*WheelchairSpec, error) {
	spec, err := LoadSpec[WheelchairSpec](WheelchairFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Tuning().Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", WheelchairFile, err)
	}
	return &spec, nil
}

// Actions maps the input names to actions. An empty name stays unbound.
func (s *WheelchairSpec) Actions() wheelchair.Actions {
	return wheelchair.Actions{
		Left:   input.Action(s.Input.Left),
		Right:  input.Action(s.Input.Right),
		Scroll: input.Action(s.Input.Scroll),
	}
}

type CameraSpec struct {
	Name   string  `yaml:"name"`
	Target string  `yaml:"target"`
	Zoom   float64 `yaml:"zoom"`
	// Smoothness overrides the target's camera_follow_smooth when set. Left
	// at zero, a chair target drives the follow rate.
	Smoothness float64 `yaml:"smoothness"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ObstacleSpec struct {
	Name      string          `yaml:"name"`
	Transform TransformSpec   `yaml:"transform"`
	Width     float64         `yaml:"width"`
	Height    float64         `yaml:"height"`
	Radius    float64         `yaml:"radius"`
	Friction  float64         `yaml:"friction"`
	Render    ShapeRenderSpec `yaml:"render"`
}

type ArenaSpec struct {
	Name          string          `yaml:"name"`
	Width         float64         `yaml:"width"`
	Height        float64         `yaml:"height"`
	WallThickness float64         `yaml:"wall_thickness"`
	Friction      float64         `yaml:"friction"`
	Elasticity    float64         `yaml:"elasticity"`
	Background    *YAMLColor      `yaml:"background"`
	Grid          float64         `yaml:"grid"`
	Walls         ShapeRenderSpec `yaml:"walls"`
	Obstacles     []ObstacleSpec  `yaml:"obstacles"`
}

func LoadArenaSpec(name string) (*ArenaSpec, error) {
	if name == "" {
		name = ArenaFile
	}
	spec, err := LoadSpec[ArenaSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: arena size must be positive, got %vx%v", name, spec.Width, spec.Height)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseColor reads "#rrggbb" or "#rrggbbaa"; the leading '#' is optional.
func ParseColor(text string) (color.NRGBA, error) {
	s := strings.TrimPrefix(text, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", text)
	}

	var channels [4]uint8
	channels[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", text, err)
		}
		channels[i] = uint8(v)
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(text string) color.NRGBA {
	c, err := ParseColor(text)
	if err != nil {
		panic(err)
	}
	return c
}

// Or returns the parsed color, or fallback when unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

package wheelchair

import "fmt"

// Tuning is fixed for the lifetime of a controller; swap the whole value to
// change it.
type Tuning struct {
	// WheelForce scales a push when both wheels are engaged.
	WheelForce float64
	// TurnForce scales a push when one wheel is engaged.
	TurnForce float64
	// MaxSpeed caps linear speed in m/s.
	MaxSpeed float64
	// MaxTurnSpeed caps angular speed in rad/s.
	MaxTurnSpeed float64

	LinearDamping  float64
	AngularDamping float64

	// CameraFollowSmooth is multiplied by the frame time to get the slerp factor.
	CameraFollowSmooth float64
}

func DefaultTuning() Tuning {
	return Tuning{
		WheelForce:         100,
		TurnForce:          50,
		MaxSpeed:           5,
		MaxTurnSpeed:       2,
		LinearDamping:      1.5,
		AngularDamping:     2,
		CameraFollowSmooth: 5,
	}
}

func (t Tuning) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"wheel_force", t.WheelForce},
		{"turn_force", t.TurnForce},
		{"max_speed", t.MaxSpeed},
		{"max_turn_speed", t.MaxTurnSpeed},
		{"linear_damping", t.LinearDamping},
		{"angular_damping", t.AngularDamping},
		{"camera_follow_smooth", t.CameraFollowSmooth},
	} {
		if f.value < 0 {
			return fmt.Errorf("wheelchair: tuning %s must not be negative, got %v", f.name, f.value)
		}
	}
	return nil
}

package component

// Camera follows a named target's position and eases its yaw toward the
// target's heading.
type Camera struct {
	TargetName string
	Zoom       float64
	// Smoothness overrides the target's follow tuning when positive.
	Smoothness float64
	Yaw        float64
	Snapped    bool
}

var CameraComponent = NewComponent[Camera]()

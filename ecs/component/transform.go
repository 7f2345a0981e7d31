package component

// Transform is a world pose in meters; Rotation is radians, 0 facing +X.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()

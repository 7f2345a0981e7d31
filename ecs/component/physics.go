package component

import "github.com/jakecoffman/cp"

type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are filled in by the physics system.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Kind       ShapeKind
	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Moment     float64
	Friction   float64
	Elasticity float64
	Static     bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

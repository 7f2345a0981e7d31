package component

import "image/color"

// ShapeRender draws an entity's collider as a filled, outlined shape.
type ShapeRender struct {
	Fill    color.Color
	Outline color.Color
	Layer   int
}

var ShapeRenderComponent = NewComponent[ShapeRender]()

package component

import "image/color"

// Name lets systems look entities up by their prefab name.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()

type ObstacleTag struct{}

var ObstacleTagComponent = NewComponent[ObstacleTag]()

// Arena is the floor the chair rolls on, drawn beneath everything else.
type Arena struct {
	Width      float64
	Height     float64
	Grid       float64
	Background color.Color
}

var ArenaComponent = NewComponent[Arena]()

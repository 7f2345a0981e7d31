package entity

import (
	"fmt"

	"github.com/milk9111/wheelchair/ecs"
	"github.com/milk9111/wheelchair/ecs/component"
	"github.com/milk9111/wheelchair/prefabs"
)

var (
	defaultChairFill    = prefabs.MustColor("#3d6fb6")
	defaultChairOutline = prefabs.MustColor("#e6ecf5")
)

func NewWheelchair(w *ecs.World) (ecs.Entity, error) {
	chairSpec, err := prefabs.LoadWheelchairSpec()
	if err != nil {
		return 0, fmt.Errorf("wheelchair: load spec: %w", err)
	}
	return NewWheelchairFromSpec(w, chairSpec)
}

// NewWheelchairFromSpec builds the chair entity. The body's long side is its
// length, laid along local +X, which is the chair's forward.
func NewWheelchairFromSpec(w *ecs.World, chairSpec *prefabs.WheelchairSpec) (ecs.Entity, error) {
	tuning := chairSpec.Tuning()
	if err := tuning.Validate(); err != nil {
		return 0, fmt.Errorf("wheelchair: %w", err)
	}

	name := chairSpec.Name
	if name == "" {
		name = "wheelchair"
	}
	x, y, rot := chairSpec.Transform.X, chairSpec.Transform.Y, chairSpec.Transform.Radians()

	chair := ecs.CreateEntity(w)
	if err := ecs.Add(w, chair, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		return 0, fmt.Errorf("wheelchair: add name: %w", err)
	}
	if err := ecs.Add(w, chair, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Rotation: rot}); err != nil {
		return 0, fmt.Errorf("wheelchair: add transform: %w", err)
	}

	length, width := chairSpec.Body.Length, chairSpec.Body.Width
	if length <= 0 || width <= 0 {
		return 0, fmt.Errorf("wheelchair: body size must be positive, got %vx%v", length, width)
	}
	if err := ecs.Add(w, chair, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:       component.ShapeBox,
		Width:      length,
		Height:     width,
		Mass:       chairSpec.Body.Mass,
		Moment:     chairSpec.Body.Moment,
		Friction:   chairSpec.Body.Friction,
		Elasticity: chairSpec.Body.Elasticity,
	}); err != nil {
		return 0, fmt.Errorf("wheelchair: add physics body: %w", err)
	}

	if err := ecs.Add(w, chair, component.ShapeRenderComponent.Kind(), &component.ShapeRender{
		Fill:    chairSpec.Render.Fill.Or(defaultChairFill),
		Outline: chairSpec.Render.Outline.Or(defaultChairOutline),
		Layer:   chairSpec.Render.Layer,
	}); err != nil {
		return 0, fmt.Errorf("wheelchair: add shape render: %w", err)
	}

	if err := ecs.Add(w, chair, component.WheelchairComponent.Kind(), &component.Wheelchair{
		Tuning:        tuning,
		Actions:       chairSpec.Actions(),
		SpawnX:        x,
		SpawnY:        y,
		SpawnRotation: rot,
	}); err != nil {
		return 0, fmt.Errorf("wheelchair: add wheelchair: %w", err)
	}

	return chair, nil
}

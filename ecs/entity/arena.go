package entity

import (
	"fmt"

	"github.com/milk9111/wheelchair/ecs"
	"github.com/milk9111/wheelchair/ecs/component"
	"github.com/milk9111/wheelchair/prefabs"
)

var (
	defaultArenaBackground = prefabs.MustColor("#1c1f24")
	defaultWallFill        = prefabs.MustColor("#6b7078")
	defaultObstacleFill    = prefabs.MustColor("#777777")
)

const defaultWallThickness = 0.5

func NewArena(w *ecs.World, name string) ([]ecs.Entity, error) {
	arenaSpec, err := prefabs.LoadArenaSpec(name)
	if err != nil {
		return nil, fmt.Errorf("arena: load spec: %w", err)
	}
	return NewArenaFromSpec(w, arenaSpec)
}

// NewArenaFromSpec builds the floor, four static walls enclosing
// [0,Width]x[0,Height], and the obstacles. All returned entities belong to
// the arena and can be destroyed together.
func NewArenaFromSpec(w *ecs.World, arenaSpec *prefabs.ArenaSpec) ([]ecs.Entity, error) {
	var built []ecs.Entity

	floor := ecs.CreateEntity(w)
	built = append(built, floor)
	if err := ecs.Add(w, floor, component.ArenaComponent.Kind(), &component.Arena{
		Width:      arenaSpec.Width,
		Height:     arenaSpec.Height,
		Grid:       arenaSpec.Grid,
		Background: arenaSpec.Background.Or(defaultArenaBackground),
	}); err != nil {
		return built, fmt.Errorf("arena: add floor: %w", err)
	}
	if arenaSpec.Name != "" {
		if err := ecs.Add(w, floor, component.NameComponent.Kind(), &component.Name{Value: arenaSpec.Name}); err != nil {
			return built, fmt.Errorf("arena: add name: %w", err)
		}
	}

	thick := arenaSpec.WallThickness
	if thick <= 0 {
		thick = defaultWallThickness
	}
	aw, ah := arenaSpec.Width, arenaSpec.Height
	walls := []struct {
		name string
		x, y float64
		w, h float64
	}{
		{"wall_north", aw / 2, -thick / 2, aw + 2*thick, thick},
		{"wall_south", aw / 2, ah + thick/2, aw + 2*thick, thick},
		{"wall_west", -thick / 2, ah / 2, thick, ah},
		{"wall_east", aw + thick/2, ah / 2, thick, ah},
	}
	wallRender := component.ShapeRender{
		Fill:    arenaSpec.Walls.Fill.Or(defaultWallFill),
		Outline: arenaSpec.Walls.Outline.Or(nil),
		Layer:   arenaSpec.Walls.Layer,
	}
	for _, wall := range walls {
		e, err := addStaticShape(w, wall.name, component.Transform{X: wall.x, Y: wall.y}, component.PhysicsBody{
			Kind:       component.ShapeBox,
			Width:      wall.w,
			Height:     wall.h,
			Friction:   arenaSpec.Friction,
			Elasticity: arenaSpec.Elasticity,
			Static:     true,
		}, wallRender)
		if e.Valid() {
			built = append(built, e)
		}
		if err != nil {
			return built, fmt.Errorf("arena: %s: %w", wall.name, err)
		}
	}

	for i, obstacle := range arenaSpec.Obstacles {
		body := component.PhysicsBody{
			Kind:       component.ShapeBox,
			Width:      obstacle.Width,
			Height:     obstacle.Height,
			Friction:   obstacle.Friction,
			Elasticity: arenaSpec.Elasticity,
			Static:     true,
		}
		if obstacle.Radius > 0 {
			body.Kind = component.ShapeCircle
			body.Radius = obstacle.Radius
		} else if obstacle.Width <= 0 || obstacle.Height <= 0 {
			return built, fmt.Errorf("arena: obstacle %d (%s) needs a radius or a positive size", i, obstacle.Name)
		}

		e, err := addStaticShape(w, obstacle.Name, component.Transform{
			X:        obstacle.Transform.X,
			Y:        obstacle.Transform.Y,
			Rotation: obstacle.Transform.Radians(),
		}, body, component.ShapeRender{
			Fill:    obstacle.Render.Fill.Or(defaultObstacleFill),
			Outline: obstacle.Render.Outline.Or(nil),
			Layer:   obstacle.Render.Layer,
		})
		if e.Valid() {
			built = append(built, e)
		}
		if err != nil {
			return built, fmt.Errorf("arena: obstacle %s: %w", obstacle.Name, err)
		}
		if err := ecs.Add(w, e, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{}); err != nil {
			return built, fmt.Errorf("arena: obstacle %s: add tag: %w", obstacle.Name, err)
		}
	}

	return built, nil
}

func addStaticShape(w *ecs.World, name string, transform component.Transform, body component.PhysicsBody, render component.ShapeRender) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if name != "" {
		if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
			return e, err
		}
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &transform); err != nil {
		return e, err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &body); err != nil {
		return e, err
	}
	if err := ecs.Add(w, e, component.ShapeRenderComponent.Kind(), &render); err != nil {
		return e, err
	}
	return e, nil
}

// DestroyAll removes entities built together, e.g. an arena before reload.
func DestroyAll(w *ecs.World, entities []ecs.Entity) {
	for _, e := range entities {
		ecs.DestroyEntity(w, e)
	}
}

package entity

import (
	"math"
	"testing"

	"github.com/milk9111/wheelchair/ecs"
	"github.com/milk9111/wheelchair/ecs/component"
	"github.com/milk9111/wheelchair/prefabs"
	"github.com/milk9111/wheelchair/wheelchair"
)

func TestNewWheelchair(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewWheelchair(w)
	if err != nil {
		t.Fatalf("NewWheelchair: %v", err)
	}

	chair, ok := ecs.Get(w, e, component.WheelchairComponent.Kind())
	if !ok {
		t.Fatal("missing wheelchair component")
	}
	if chair.Tuning != wheelchair.DefaultTuning() {
		t.Fatalf("tuning = %+v", chair.Tuning)
	}
	if chair.Controller != nil {
		t.Fatal("controller should be created by the wheelchair system")
	}

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatal("missing transform")
	}
	if tr.X != chair.SpawnX || tr.Y != chair.SpawnY || tr.Rotation != chair.SpawnRotation {
		t.Fatalf("spawn %v,%v,%v does not match transform %+v", chair.SpawnX, chair.SpawnY, chair.SpawnRotation, tr)
	}
	if math.Abs(tr.Rotation+math.Pi/2) > 1e-9 {
		t.Fatalf("rotation = %v, want -pi/2", tr.Rotation)
	}

	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		t.Fatal("missing physics body")
	}
	if pb.Width != 0.9 || pb.Height != 0.7 || pb.Static {
		t.Fatalf("body = %+v, want 0.9 long by 0.7 wide and dynamic", pb)
	}

	name, ok := ecs.Get(w, e, component.NameComponent.Kind())
	if !ok || name.Value != "wheelchair" {
		t.Fatalf("name = %+v", name)
	}
}

func TestNewWheelchairRejectsBadSpecs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*prefabs.WheelchairSpec)
	}{
		{"negative force", func(s *prefabs.WheelchairSpec) { s.WheelForce = -1 }},
		{"zero length", func(s *prefabs.WheelchairSpec) { s.Body.Length = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := prefabs.LoadWheelchairSpec()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			c.mutate(spec)
			if _, err := NewWheelchairFromSpec(ecs.NewWorld(), spec); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestNewCamera(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCamera(w)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		t.Fatal("missing camera component")
	}
	if cam.TargetName != "wheelchair" || cam.Zoom != 1 || cam.Smoothness != 0 {
		t.Fatalf("camera = %+v", cam)
	}
	if !ecs.Has(w, e, component.TransformComponent.Kind()) {
		t.Fatal("camera needs a transform")
	}
}

func TestNewCameraDefaults(t *testing.T) {
	w := ecs.NewWorld()
	cases := []struct {
		name   string
		spec   prefabs.CameraSpec
		smooth float64
	}{
		{"unset_follows_target", prefabs.CameraSpec{Target: "wheelchair"}, 0},
		{"negative_clamped", prefabs.CameraSpec{Target: "wheelchair", Smoothness: -2}, 0},
		{"explicit_override", prefabs.CameraSpec{Target: "wheelchair", Smoothness: 8}, 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := NewCameraFromSpec(w, &c.spec)
			if err != nil {
				t.Fatalf("NewCameraFromSpec: %v", err)
			}
			cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
			if cam.Zoom != 1 || cam.Smoothness != c.smooth {
				t.Fatalf("camera = %+v", cam)
			}
		})
	}
}

func TestNewArena(t *testing.T) {
	w := ecs.NewWorld()
	built, err := NewArena(w, "")
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	spec, _ := prefabs.LoadArenaSpec("")
	if want := 1 + 4 + len(spec.Obstacles); len(built) != want {
		t.Fatalf("built %d entities, want %d", len(built), want)
	}
	if n := ecs.Count(w, component.ArenaComponent.Kind()); n != 1 {
		t.Fatalf("arena floors = %d", n)
	}
	if n := ecs.Count(w, component.ObstacleTagComponent.Kind()); n != len(spec.Obstacles) {
		t.Fatalf("obstacles = %d, want %d", n, len(spec.Obstacles))
	}

	statics := 0
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody) {
		if pb.Static {
			statics++
		}
		if pb.Kind == component.ShapeCircle && pb.Radius <= 0 {
			t.Errorf("%v: circle without radius", e)
		}
	})
	if statics != 4+len(spec.Obstacles) {
		t.Fatalf("static bodies = %d", statics)
	}

	DestroyAll(w, built)
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("%d entities left after DestroyAll", n)
	}
}

func TestNewArenaRejectsShapelessObstacle(t *testing.T) {
	spec := &prefabs.ArenaSpec{
		Width:     10,
		Height:    10,
		Obstacles: []prefabs.ObstacleSpec{{Name: "ghost"}},
	}
	if _, err := NewArenaFromSpec(ecs.NewWorld(), spec); err == nil {
		t.Fatal("expected an error for an obstacle without size")
	}
}

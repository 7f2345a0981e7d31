package system

import (
	"github.com/milk9111/wheelchair/common"
	"github.com/milk9111/wheelchair/ecs"
	"github.com/milk9111/wheelchair/ecs/component"
	"github.com/milk9111/wheelchair/wheelchair"
)

// DefaultCameraSmoothness is used when neither the camera nor its target
// sets a follow rate.
const DefaultCameraSmoothness = 5

// CameraSystem keeps the camera on its target and eases its yaw toward the
// target's heading along the shortest arc.
type CameraSystem struct {
	dt           float64
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem(dt float64) *CameraSystem {
	return &CameraSystem{dt: dt}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	if !w.IsAlive(cs.camEntity) {
		e, _, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = e
		cs.targetEntity = 0
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if !w.IsAlive(cs.targetEntity) || !hasName(w, cs.targetEntity, cam.TargetName) {
		cs.targetEntity = findEntityByName(w, cam.TargetName)
		cam.Snapped = false
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	smooth := followSmoothness(w, cam, cs.targetEntity)

	camTransform.X = target.X
	camTransform.Y = target.Y
	if !cam.Snapped || w.Events().Has(ecs.EventChairReset) {
		cam.Yaw = common.WrapAngle(target.Rotation)
		cam.Snapped = true
	} else {
		cam.Yaw = wheelchair.FollowYaw(cam.Yaw, target.Rotation, cs.dt, smooth)
	}
	camTransform.Rotation = cam.Yaw
}

// followSmoothness prefers the camera's own setting, then the chair's follow
// tuning, then DefaultCameraSmoothness.
func followSmoothness(w *ecs.World, cam *component.Camera, target ecs.Entity) float64 {
	if cam.Smoothness > 0 {
		return cam.Smoothness
	}
	if chair, ok := ecs.Get(w, target, component.WheelchairComponent.Kind()); ok {
		return chair.Tuning.CameraFollowSmooth
	}
	return DefaultCameraSmoothness
}

func hasName(w *ecs.World, e ecs.Entity, name string) bool {
	n, ok := ecs.Get(w, e, component.NameComponent.Kind())
	return ok && n.Value == name
}

func findEntityByName(w *ecs.World, name string) ecs.Entity {
	var found ecs.Entity
	if name == "" {
		return found
	}
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if !found.Valid() && n.Value == name {
			found = e
		}
	})
	return found
}

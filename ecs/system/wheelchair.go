package system

import (
	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"

	"github.com/milk9111/wheelchair/ecs"
	"github.com/milk9111/wheelchair/ecs/component"
	"github.com/milk9111/wheelchair/input"
	"github.com/milk9111/wheelchair/logging"
	"github.com/milk9111/wheelchair/wheelchair"
)

// WheelchairSystem owns one controller per chair entity. Controllers are
// enabled against the dispatcher when the chair appears and disabled when it
// goes away, so handlers never outlive their entity.
type WheelchairSystem struct {
	dispatcher *input.Dispatcher
	bound      map[ecs.Entity]*wheelchair.Controller
	log        zerolog.Logger
}

func NewWheelchairSystem(dispatcher *input.Dispatcher) *WheelchairSystem {
	return &WheelchairSystem{
		dispatcher: dispatcher,
		bound:      make(map[ecs.Entity]*wheelchair.Controller),
		log:        logging.Component("wheelchair"),
	}
}

func (s *WheelchairSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.WheelchairComponent.Kind(), func(e ecs.Entity, chair *component.Wheelchair) {
		ctrl := chair.Controller
		if ctrl == nil {
			ctrl = wheelchair.NewController(chair.Tuning, chair.Actions, s.log.With().Stringer("entity", e).Logger())
			chair.Controller = ctrl
		}
		if _, ok := s.bound[e]; !ok {
			if err := ctrl.Enable(s.dispatcher); err != nil {
				s.log.Warn().Err(err).Stringer("entity", e).Msg("enable wheelchair controller")
				return
			}
			s.bound[e] = ctrl
		}

		if ctrl.Tuning() != chair.Tuning {
			ctrl.SetTuning(chair.Tuning)
		}

		var body *cp.Body
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			body = pb.Body
		}
		if current, _ := ctrl.Body().(*cp.Body); current != body {
			ctrl.SetBody(body)
		}
	})

	for e, ctrl := range s.bound {
		if chair, ok := ecs.Get(w, e, component.WheelchairComponent.Kind()); ok && chair.Controller == ctrl {
			continue
		}
		ctrl.Disable()
		delete(s.bound, e)
	}
}

// Shutdown disables every controller this system enabled.
func (s *WheelchairSystem) Shutdown() {
	if s == nil {
		return
	}
	for e, ctrl := range s.bound {
		ctrl.Disable()
		delete(s.bound, e)
	}
}

// SetTuning replaces the tuning of every chair. Controllers pick it up on
// the next Update.
func SetTuning(w *ecs.World, t wheelchair.Tuning) int {
	n := 0
	ecs.ForEach(w, component.WheelchairComponent.Kind(), func(e ecs.Entity, chair *component.Wheelchair) {
		chair.Tuning = t
		w.Events().Push(ecs.Event{Kind: ecs.EventTuningReloaded, Entity: e, Data: t})
		n++
	})
	return n
}

// ResetChairs puts every chair back at its spawn pose, at rest.
func ResetChairs(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.WheelchairComponent.Kind(), func(e ecs.Entity, chair *component.Wheelchair) {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = chair.SpawnX
			t.Y = chair.SpawnY
			t.Rotation = chair.SpawnRotation
		}
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
			pb.Body.SetPosition(cp.Vector{X: chair.SpawnX, Y: chair.SpawnY})
			pb.Body.SetAngle(chair.SpawnRotation)
			pb.Body.SetVelocity(0, 0)
			pb.Body.SetAngularVelocity(0)
			pb.Body.SetForce(cp.Vector{})
			pb.Body.SetTorque(0)
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventChairReset, Entity: e})
		n++
	})
	return n
}

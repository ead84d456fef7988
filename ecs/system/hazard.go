package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/physics"
)

// DeathSystem kills characters that fall below their DeathY or touch a
// hazard. A dead body is frozen; after RestartDelay a RespawnRequest is
// attached. Dying again while dead is a no-op.
type DeathSystem struct{}

func NewDeathSystem() *DeathSystem {
	return &DeathSystem{}
}

func (s *DeathSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.DeathComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, d *component.Death, t *component.Transform) {
		if d.Dead {
			d.Timer -= dt
			if d.Timer <= 0 && !ecs.Has(w, e, component.RespawnRequestComponent.Kind()) {
				_ = ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{})
			}
			return
		}

		cause := ""
		switch {
		case t.Y < d.DeathY:
			cause = "fell"
		case touchesHazard(w, e):
			cause = "hazard"
		default:
			return
		}

		d.Dead = true
		d.Timer = d.RestartDelay
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			pb.Frozen = true
			if pb.Body != nil {
				pb.Body.SetVelocityVector(cp.Vector{})
			}
		}
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Entity: e, Data: cause})
		log.Printf("death: entity %v %s at (%.2f, %.2f)", e, cause, t.X, t.Y)
	})
}

func touchesHazard(w *ecs.World, e ecs.Entity) bool {
	box, ok := playerBox(w, e)
	if !ok {
		return false
	}
	hit := false
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, h *component.Hazard, t *component.Transform) {
		if !hit && physics.BoxesOverlap(box, physics.Box(t.X, t.Y, h.Width, h.Height)) {
			hit = true
		}
	})
	return hit
}

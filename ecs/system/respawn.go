package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

// Update performs pending respawn requests: the character is moved to its
// safe respawn point, unfrozen, and its controller reset.
func (s *RespawnSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, _ *component.RespawnRequest) {
		defer ecs.Remove(w, e, component.RespawnRequestComponent.Kind())

		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		safe, ok := ecs.Get(w, e, component.SafeRespawnComponent.Kind())
		if !ok || !safe.Initialized {
			log.Printf("respawn: entity %v has no spawn point", e)
			return
		}

		t.X, t.Y = safe.X, safe.Y
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			pb.Frozen = false
			if pb.Body != nil {
				pb.Body.SetPosition(cp.Vector{X: safe.X, Y: safe.Y})
				pb.Body.SetVelocityVector(cp.Vector{})
			}
		}
		if d, ok := ecs.Get(w, e, component.DeathComponent.Kind()); ok {
			d.Dead = false
			d.Timer = 0
		}
		if mv, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok && mv.Controller != nil {
			mv.Controller.Reset()
		}

		w.Events().Push(ecs.Event{Type: ecs.EventRespawned, Entity: e})
		log.Printf("respawn: entity %v at (%.2f, %.2f)", e, safe.X, safe.Y)
	})
}

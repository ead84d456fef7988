package system

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/movement"
	"github.com/milk9111/hopper/physics"
)

// PlayerControllerSystem runs the per-frame half of each movement
// controller: ground sense, grace timers, jump launch and jump cut. The body
// velocity is loaded into the controller before the tick and written back
// after it.
type PlayerControllerSystem struct {
	physics *physics.World
}

func NewPlayerControllerSystem(pw *physics.World) *PlayerControllerSystem {
	return &PlayerControllerSystem{physics: pw}
}

func (s *PlayerControllerSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.MovementComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, mv *component.Movement, pb *component.PhysicsBody) {
		ctrl := mv.Controller
		if ctrl == nil || pb.Body == nil || pb.Frozen {
			return
		}

		env := movement.Env{
			Position:     pb.Body.Position(),
			Gravity:      s.physics.Gravity(),
			GravityScale: s.physics.GravityScale(pb.Body),
		}
		if s.physics != nil {
			env.Ground = s.physics
		}

		ctrl.SetVelocity(pb.Body.Velocity())
		ctrl.Frame(dt, movementInput(w, e), env)
		pb.Body.SetVelocityVector(ctrl.Velocity())
	})
}

// PlayerMovementSystem runs the fixed-rate half of each controller:
// horizontal speed and fall/low-jump shaping. It must run before the
// physics step.
type PlayerMovementSystem struct {
	physics *physics.World
}

func NewPlayerMovementSystem(pw *physics.World) *PlayerMovementSystem {
	return &PlayerMovementSystem{physics: pw}
}

func (s *PlayerMovementSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.MovementComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, mv *component.Movement, pb *component.PhysicsBody) {
		ctrl := mv.Controller
		if ctrl == nil || pb.Body == nil || pb.Frozen {
			return
		}

		ctrl.SetVelocity(pb.Body.Velocity())
		ctrl.Fixed(dt, movementInput(w, e), s.physics.Gravity())
		pb.Body.SetVelocityVector(ctrl.Velocity())
	})
}

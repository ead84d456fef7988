package system

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/physics"
)

// PhysicsSystem mirrors PhysicsBody components into the Chipmunk space,
// steps it, and copies dynamic body positions back into Transforms.
type PhysicsSystem struct {
	physics  *physics.World
	entities map[ecs.Entity]*component.PhysicsBody
}

func NewPhysicsSystem(pw *physics.World) *PhysicsSystem {
	return &PhysicsSystem{
		physics:  pw,
		entities: make(map[ecs.Entity]*component.PhysicsBody),
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if ps == nil || w == nil || ps.physics == nil {
		return
	}

	ps.syncEntities(w)
	ps.physics.Step(dt)
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for e, pb := range ps.entities {
		current, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if ok && current == pb {
			continue
		}
		ps.physics.RemoveBody(pb.Body, pb.Shape)
		pb.Body, pb.Shape = nil, nil
		delete(ps.entities, e)
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			ps.createBody(w, e, pb, t)
			return
		}
		if pb.Static {
			return
		}
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			ps.physics.SetGravityScale(pb.Body, gs.Scale)
		}
		if ps.physics.Frozen(pb.Body) != pb.Frozen {
			ps.physics.SetFrozen(pb.Body, pb.Frozen)
		}
	})
}

func (ps *PhysicsSystem) createBody(w *ecs.World, e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
	spec := physics.BodySpec{
		X:            t.X,
		Y:            t.Y,
		Width:        pb.Width,
		Height:       pb.Height,
		Radius:       pb.Radius,
		Mass:         pb.Mass,
		Friction:     pb.Friction,
		Static:       pb.Static,
		Sensor:       pb.Sensor,
		GravityScale: 1,
	}
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		spec.Category = layer.Category
		spec.Mask = layer.Mask
	}
	if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
		spec.GravityScale = gs.Scale
	}

	pb.Body, pb.Shape = ps.physics.CreateBody(spec)
	if pb.Frozen && !pb.Static {
		ps.physics.SetFrozen(pb.Body, true)
	}
	ps.entities[e] = pb
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Static || pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}

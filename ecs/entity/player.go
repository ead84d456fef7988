package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/movement"
	"github.com/milk9111/hopper/prefabs"
)

var playerColor = color.NRGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}

// NewPlayer builds the player from player.yaml at spawn.
func NewPlayer(w *ecs.World, spawn cp.Vector) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, err
	}
	return NewPlayerFromSpec(w, spec, spawn)
}

func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec, spawn cp.Vector) (ecs.Entity, error) {
	ctrl, err := movement.New(spec.Movement.Config())
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	pulse, err := spec.Rainbow.Pulse()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	e := ecs.CreateEntity(w)
	adds := []func() error{
		func() error { return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) },
		func() error {
			return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name})
		},
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spawn.X, Y: spawn.Y})
		},
		func() error { return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}) },
		func() error {
			return ecs.Add(w, e, component.MovementComponent.Kind(), &component.Movement{Controller: ctrl})
		},
		func() error {
			return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
				Width:    spec.Collider.Width,
				Height:   spec.Collider.Height,
				Mass:     spec.Collider.Mass,
				Friction: spec.Collider.Friction,
			})
		},
		func() error {
			return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
				Category: component.LayerPlayer,
				Mask:     component.LayerGround,
			})
		},
		func() error {
			return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.GravityScale})
		},
		func() error { return ecs.Add(w, e, component.AnimParamsComponent.Kind(), &component.AnimParams{}) },
		func() error {
			return ecs.Add(w, e, component.AnimBridgeComponent.Kind(), &component.AnimBridge{
				SpeedSmoothing:  spec.AnimBridge.SpeedSmoothing,
				SpeedMultiplier: spec.AnimBridge.SpeedMultiplier,
				JumpBoolHold:    spec.AnimBridge.JumpBoolHold,
			})
		},
		func() error {
			return ecs.Add(w, e, component.DeathComponent.Kind(), &component.Death{
				DeathY:       spec.Death.DeathY,
				RestartDelay: spec.Death.RestartDelay,
			})
		},
		func() error {
			return ecs.Add(w, e, component.SafeRespawnComponent.Kind(), &component.SafeRespawn{
				X: spawn.X, Y: spawn.Y, Initialized: true,
			})
		},
		func() error {
			return ecs.Add(w, e, component.RainbowComponent.Kind(), &component.Rainbow{Pulse: pulse})
		},
		func() error {
			return ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Color: spec.Color.Or(playerColor)})
		},
	}
	for _, add := range adds {
		if err := add(); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("player: add component: %w", err)
		}
	}
	return e, nil
}

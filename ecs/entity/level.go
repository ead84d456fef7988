package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/prefabs"
)

var (
	platformColor = color.NRGBA{R: 0x6d, G: 0x4c, B: 0x41, A: 0xff}
	hazardColor   = color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	coinColor     = color.NRGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff}
)

// LoadLevelToWorld creates the static geometry, pickups, camera and score
// counter described by spec.
func LoadLevelToWorld(w *ecs.World, spec *prefabs.LevelSpec) error {
	if spec == nil {
		return fmt.Errorf("level: nil spec")
	}

	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Left:   spec.Bounds.X - spec.Bounds.Width/2,
		Bottom: spec.Bounds.Y - spec.Bounds.Height/2,
		Right:  spec.Bounds.X + spec.Bounds.Width/2,
		Top:    spec.Bounds.Y + spec.Bounds.Height/2,
	}); err != nil {
		return err
	}

	score := ecs.CreateEntity(w)
	if err := ecs.Add(w, score, component.ScoreCounterComponent.Kind(), &component.ScoreCounter{}); err != nil {
		return err
	}

	for i, p := range spec.Platforms {
		if err := newPlatform(w, p); err != nil {
			return fmt.Errorf("level: platform %d: %w", i, err)
		}
	}
	for i, h := range spec.Hazards {
		if err := newHazard(w, h); err != nil {
			return fmt.Errorf("level: hazard %d: %w", i, err)
		}
	}
	for i, c := range spec.Coins {
		if _, err := NewCoin(w, c); err != nil {
			return fmt.Errorf("level: coin %d: %w", i, err)
		}
	}
	if _, err := NewCamera(w, spec.Camera); err != nil {
		return fmt.Errorf("level: camera: %w", err)
	}
	return nil
}

func newPlatform(w *ecs.World, r prefabs.RectSpec) error {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width: r.Width, Height: r.Height, Friction: 0.8, Static: true,
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.LayerGround}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Color: platformColor})
}

func newHazard(w *ecs.World, r prefabs.RectSpec) error {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Width: r.Width, Height: r.Height}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width: r.Width, Height: r.Height, Static: true, Sensor: true,
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.LayerHazard}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Color: hazardColor})
}

// NewCoin creates a collectible with a sensor shape on the pickup layer.
func NewCoin(w *ecs.World, c prefabs.CoinSpec) (ecs.Entity, error) {
	radius := c.Radius
	if radius <= 0 {
		radius = 0.3
	}
	value := c.Value
	if value <= 0 {
		value = 1
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CoinComponent.Kind(), &component.Coin{Value: value, Radius: radius}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: c.X, Y: c.Y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius: radius, Static: true, Sensor: true,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.LayerPickup}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Color: coinColor}); err != nil {
		return 0, err
	}
	return e, nil
}

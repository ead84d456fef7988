package entity

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/prefabs"
)

const defaultZoom = 32

// NewCamera creates the camera entity. Targets are resolved by name when the
// camera system first runs.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = defaultZoom
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.Target,
		LookAtName: spec.LookAt,
		Smoothness: spec.Smoothness,
		Zoom:       zoom,
	}); err != nil {
		return 0, err
	}
	return e, nil
}

package system

import (
	"log"

	"github.com/milk9111/hopper/camera"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// CameraSystem binds each camera to its named targets on first sight and
// then eases it toward the follow target. When the level has bounds the view
// is kept inside them.
type CameraSystem struct {
	viewW, viewH float64
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// WithViewport sets the screen size in pixels used to keep the whole view,
// not just its center, inside the level bounds.
func (s *CameraSystem) WithViewport(width, height float64) *CameraSystem {
	s.viewW, s.viewH = width, height
	return s
}

func (s *CameraSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	_, bounds, bounded := ecs.First(w, component.LevelBoundsComponent.Kind())

	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, cam *component.Camera) {
		binding, ok := ecs.Get(w, e, component.CameraBindingComponent.Kind())
		if !ok {
			binding = &component.CameraBinding{}
			_ = ecs.Add(w, e, component.CameraBindingComponent.Kind(), binding)
		}
		snap := false
		if !binding.Done {
			binding.Binding = bindCamera(w, e, cam)
			binding.Done = true
			snap = true
		}

		if f := cam.Follow(); f != nil {
			x, y := f.Position()
			k := common.SmoothFactor(cam.Smoothness, dt)
			if snap {
				k = 1
			}
			cam.X = common.Lerp(cam.X, x, k)
			cam.Y = common.Lerp(cam.Y, y, k)
		}
		if bounded {
			halfW, halfH := s.halfExtents(cam.Zoom)
			cam.X, cam.Y = bounds.ClampView(cam.X, cam.Y, halfW, halfH)
		}
		if l := cam.LookAt(); l != nil {
			cam.LookX, cam.LookY = l.Position()
		} else {
			cam.LookX, cam.LookY = cam.X, cam.Y
		}
	})
}

// halfExtents is the view's half size in world units.
func (s *CameraSystem) halfExtents(zoom float64) (float64, float64) {
	if zoom <= 0 {
		return 0, 0
	}
	return s.viewW / zoom / 2, s.viewH / zoom / 2
}

func bindCamera(w *ecs.World, e ecs.Entity, cam *component.Camera) camera.Binding {
	follow := findTarget(w, cam.TargetName)
	if follow == nil {
		log.Printf("camera: follow target %q not found", cam.TargetName)
	}
	lookAt := findTarget(w, cam.LookAtName)

	b, err := camera.Bind(cam, follow, lookAt)
	if err != nil {
		log.Printf("camera: entity %v: %v", e, err)
	}
	return b
}

// entityTarget follows an entity's Transform and holds its last position
// once the entity is gone.
type entityTarget struct {
	w    *ecs.World
	e    ecs.Entity
	x, y float64
}

func (t *entityTarget) Position() (float64, float64) {
	if tr, ok := ecs.Get(t.w, t.e, component.TransformComponent.Kind()); ok {
		t.x, t.y = tr.X, tr.Y
	}
	return t.x, t.y
}

func findTarget(w *ecs.World, name string) camera.Target {
	if name == "" {
		return nil
	}
	var found camera.Target
	ecs.ForEach2(w, component.NameComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, n *component.Name, tr *component.Transform) {
		if found == nil && n.Value == name {
			found = &entityTarget{w: w, e: e, x: tr.X, y: tr.Y}
		}
	})
	return found
}

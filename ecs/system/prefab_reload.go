package system

import (
	"log"
	"time"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/movement"
	"github.com/milk9111/hopper/physics"
	"github.com/milk9111/hopper/prefabs"
)

// PrefabReloadSystem applies prefab edits reported by a prefabs.Watcher.
// A changed player.yaml rebuilds every player controller, keeping its
// velocity; a changed level file updates gravity. Invalid edits are logged
// and the running values kept. Events for a file whose modification time has
// not moved since its last reload are dropped.
type PrefabReloadSystem struct {
	events  <-chan string
	physics *physics.World
	level   string
	applied map[string]time.Time
}

func NewPrefabReloadSystem(events <-chan string, pw *physics.World, level string) *PrefabReloadSystem {
	return &PrefabReloadSystem{
		events:  events,
		physics: pw,
		level:   level,
		applied: make(map[string]time.Time),
	}
}

func (s *PrefabReloadSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil || s.events == nil {
		return
	}

	for {
		select {
		case path, ok := <-s.events:
			if !ok {
				s.events = nil
				return
			}
			name := prefabs.Name(path)
			if s.unchanged(name) {
				continue
			}
			s.reload(w, name)
		default:
			return
		}
	}
}

// unchanged reports whether name's disk copy is the one last reloaded. Files
// without a disk copy are always reloaded.
func (s *PrefabReloadSystem) unchanged(name string) bool {
	mod, ok := prefabs.ModTime(name)
	if !ok {
		return false
	}
	if last, seen := s.applied[name]; seen && last.Equal(mod) {
		return true
	}
	s.applied[name] = mod
	return false
}

func (s *PrefabReloadSystem) reload(w *ecs.World, name string) {
	switch name {
	case "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			return
		}
		if err := ApplyPlayerSpec(w, spec); err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			return
		}
		log.Printf("prefabs: reloaded %s", name)
	case s.level:
		spec, err := prefabs.LoadLevelSpec(name)
		if err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			return
		}
		s.physics.SetGravity(spec.Gravity.Vector())
		log.Printf("prefabs: reloaded gravity from %s; geometry changes need a restart", name)
	}
}

// ApplyPlayerSpec pushes new tunables onto every player. Nothing is changed
// unless the whole spec is valid.
func ApplyPlayerSpec(w *ecs.World, spec *prefabs.PlayerSpec) error {
	cfg := spec.Movement.Config()
	if err := cfg.Validate(); err != nil {
		return err
	}
	pulse, err := spec.Rainbow.Pulse()
	if err != nil {
		return err
	}

	var applyErr error
	ecs.ForEach(w, component.PlayerTagComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag) {
		if applyErr != nil {
			return
		}
		if mv, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
			ctrl, err := movement.New(cfg)
			if err != nil {
				applyErr = err
				return
			}
			if mv.Controller != nil {
				ctrl.SetVelocity(mv.Controller.Velocity())
			}
			mv.Controller = ctrl
		}
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			gs.Scale = spec.GravityScale
		}
		if bridge, ok := ecs.Get(w, e, component.AnimBridgeComponent.Kind()); ok {
			bridge.SpeedSmoothing = spec.AnimBridge.SpeedSmoothing
			bridge.SpeedMultiplier = spec.AnimBridge.SpeedMultiplier
			bridge.JumpBoolHold = spec.AnimBridge.JumpBoolHold
		}
		if d, ok := ecs.Get(w, e, component.DeathComponent.Kind()); ok {
			d.DeathY = spec.Death.DeathY
			d.RestartDelay = spec.Death.RestartDelay
		}
		if rb, ok := ecs.Get(w, e, component.RainbowComponent.Kind()); ok && rb.Pulse != nil {
			rb.Pulse.Duration = pulse.Duration
			rb.Pulse.Envelope = pulse.Envelope
		}
	})
	return applyErr
}

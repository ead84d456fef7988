package system

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// RainbowSystem advances rainbow pulses and publishes their intensity.
type RainbowSystem struct{}

func NewRainbowSystem() *RainbowSystem {
	return &RainbowSystem{}
}

func (s *RainbowSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.RainbowComponent.Kind(), func(_ ecs.Entity, rb *component.Rainbow) {
		if rb.Pulse == nil {
			rb.Value = 0
			return
		}
		rb.Value = rb.Pulse.Update(dt)
	})
}

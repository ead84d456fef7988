package system

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/movement"
)

// InputSource samples the controls once per frame, edges included.
type InputSource interface {
	Poll() component.Input
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World, _ float64) {
	if i == nil || w == nil || i.source == nil {
		return
	}

	in := i.source.Poll()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, dst *component.Input) {
		*dst = in
	})
}

func movementInput(w *ecs.World, e ecs.Entity) movement.Input {
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return movement.Input{}
	}
	return movement.Input{
		JumpPressed:  in.JumpPressed,
		JumpReleased: in.JumpReleased,
		JumpHeld:     in.Jump,
		MoveX:        in.MoveX,
	}
}

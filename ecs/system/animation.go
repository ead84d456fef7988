package system

import (
	"log"

	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// freeFallSpeed is the downward speed past which an airborne character is
// reported as free falling.
const freeFallSpeed = -0.1

// AnimBridgeSystem maps controller state onto AnimParams for an animator to
// read. It is the single consumer of each controller's jump-started flag and
// republishes launches as EventJumpStarted.
type AnimBridgeSystem struct{}

func NewAnimBridgeSystem() *AnimBridgeSystem {
	return &AnimBridgeSystem{}
}

func (s *AnimBridgeSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.AnimBridgeComponent.Kind(), component.AnimParamsComponent.Kind(), func(e ecs.Entity, bridge *component.AnimBridge, params *component.AnimParams) {
		mv, ok := ecs.Get(w, e, component.MovementComponent.Kind())
		if !ok || mv.Controller == nil {
			if bridge.WarnOnce() {
				log.Printf("anim: entity %v has no movement controller; animator not driven", e)
			}
			return
		}
		ctrl := mv.Controller

		mult := bridge.SpeedMultiplier
		if mult == 0 {
			mult = 1
		}
		params.Speed = bridge.Smooth(ctrl.HorizontalSpeed()*mult, common.SmoothFactor(bridge.SpeedSmoothing, dt))
		params.MotionSpeed = 1
		params.IsGrounded = ctrl.IsGrounded()
		params.YVelocity = ctrl.VerticalVelocity()
		params.FreeFall = !params.IsGrounded && params.YVelocity < freeFallSpeed
		params.State = ctrl.State().String()

		if ctrl.ConsumeJumpStarted() {
			bridge.HoldJump()
			w.Events().Push(ecs.Event{Type: ecs.EventJumpStarted, Entity: e})
		}
		params.Jump = bridge.TickJump(dt)
	})
}

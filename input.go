package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hopper/ecs/component"
)

const stickDeadzone = 0.2

// ebitenInput samples keyboard and the first gamepad.
type ebitenInput struct{}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{}
}

func (i *ebitenInput) Poll() component.Input {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	jumpReleased := inpututil.IsKeyJustReleased(ebiten.KeySpace)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}

		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpReleased = jumpReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom)
	}

	return component.Input{
		MoveX:        moveX,
		Jump:         jump,
		JumpPressed:  jumpPressed,
		JumpReleased: jumpReleased,
	}
}

package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
)

// InputSystem maps keyboard, mouse and gamepad onto the dropper Input.
// The mouse only steers after it moves so the keyboard can take over.
type InputSystem struct {
	lastMouseX int
}

func NewInputSystem() *InputSystem {
	return &InputSystem{lastMouseX: -1}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	moveX := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}
	drop := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}
		drop = drop || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	mx, _ := ebiten.CursorPosition()
	mouseMoved := i.lastMouseX >= 0 && mx != i.lastMouseX
	i.lastMouseX = mx

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		if mouseMoved {
			input.AimX = float64(mx)
		}
		input.DropPressed = input.DropPressed || drop
	})
}

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/graveyardshift/ecs/component"
)

// lookScale converts mouse pixels into the controller's look axis units.
const lookScale = 0.1

// Input reads keyboard and mouse state once per tick.
type Input struct {
	captured bool
	lastX    int
	lastY    int
	primed   bool
}

func NewInput() *Input {
	return &Input{}
}

// SetCaptured locks the cursor for mouse look, or frees it for menus.
func (i *Input) SetCaptured(captured bool) {
	if captured == i.captured {
		return
	}
	i.captured = captured
	i.primed = false
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// Reset drops the previous cursor sample so a level load does not turn the
// camera.
func (i *Input) Reset() {
	i.primed = false
}

func (i *Input) Poll() component.Input {
	var in component.Input

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveZ += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveZ -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	in.Run = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	in.Aim = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.FlashlightPressed = inpututil.IsKeyJustPressed(ebiten.KeyF)
	in.ConfirmPressed = inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.MenuPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.ReloadPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	if i.captured {
		in.FirePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}

	x, y := ebiten.CursorPosition()
	if i.captured && i.primed {
		in.LookX = float64(x-i.lastX) * lookScale
		// Screen Y grows downward; moving the mouse up looks up.
		in.LookY = -float64(y-i.lastY) * lookScale
	}
	i.lastX, i.lastY = x, y
	i.primed = true

	return in
}

package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/zompocalypse/ecs/component"
)

const stickDeadzone = 0.2

// readIntent samples keyboard, mouse and the first gamepad.
func readIntent() component.Intent {
	in := component.Intent{
		Up:           ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:         ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:         ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:        ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Sprint:       ebiten.IsKeyPressed(ebiten.KeyShift),
		Attack:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),
		SwitchMelee:  inpututil.IsKeyJustPressed(ebiten.KeyDigit1),
		SwitchRanged: inpututil.IsKeyJustPressed(ebiten.KeyDigit2),
	}

	mx, my := ebiten.CursorPosition()
	in.Aim = cp.Vector{X: float64(mx), Y: float64(my)}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]

		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		in.Left = in.Left || lx < -stickDeadzone
		in.Right = in.Right || lx > stickDeadzone
		in.Up = in.Up || ly < -stickDeadzone
		in.Down = in.Down || ly > stickDeadzone

		in.Sprint = in.Sprint || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		in.Attack = in.Attack || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		in.SwitchMelee = in.SwitchMelee || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.SwitchRanged = in.SwitchRanged || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)

		// The right stick aims relative to the cursor when it is pushed.
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			in.Aim = in.Aim.Add(cp.Vector{X: rx, Y: ry}.Mult(200))
		}
	}

	return in
}

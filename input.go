package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mazecaster/config"
	"mazecaster/model"
)

// Input turns keyboard, mouse and gamepad state into movement snapshots.
type Input struct {
	cfg            config.PlayerConfig
	mouseX, mouseY int
	gamepads       []ebiten.GamepadID
}

func NewInput(cfg config.PlayerConfig) *Input {
	return &Input{cfg: cfg, mouseX: math.MinInt32, mouseY: math.MinInt32}
}

// Capture grabs the cursor for mouse look, or releases it for menus.
func (in *Input) Capture(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		// reset initial mouse capture position
		in.mouseX, in.mouseY = math.MinInt32, math.MinInt32
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (in *Input) Snapshot() model.InputSnapshot {
	var s model.InputSnapshot

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		s.Forward += in.cfg.MoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		s.Forward -= in.cfg.MoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		s.Strafe += in.cfg.MoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		s.Strafe -= in.cfg.MoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		s.Turn += in.cfg.TurnSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		s.Turn -= in.cfg.TurnSpeed
	}

	x, y := ebiten.CursorPosition()
	if in.mouseX == math.MinInt32 && in.mouseY == math.MinInt32 {
		// initialize first position to establish delta
		if x != 0 && y != 0 {
			in.mouseX, in.mouseY = x, y
		}
	} else {
		dx := x - in.mouseX
		in.mouseX, in.mouseY = x, y
		s.Turn += float64(dx) * in.cfg.MouseSensitivity
	}

	if id, ok := in.gamepad(); ok {
		lx, ly, rx := in.sticks(id)
		s.Forward -= model.ApplyDeadzone(ly, in.cfg.GamepadDeadzone) * in.cfg.MoveSpeed
		s.Strafe += model.ApplyDeadzone(lx, in.cfg.GamepadDeadzone) * in.cfg.MoveSpeed
		s.Turn += model.ApplyDeadzone(rx, in.cfg.GamepadDeadzone) * in.cfg.TurnSpeed
	}
	return s
}

func (in *Input) sticks(id ebiten.GamepadID) (lx, ly, rx float64) {
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	}
	return ebiten.GamepadAxisValue(id, 0), ebiten.GamepadAxisValue(id, 1), ebiten.GamepadAxisValue(id, 2)
}

func (in *Input) gamepad() (ebiten.GamepadID, bool) {
	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])
	if len(in.gamepads) == 0 {
		return 0, false
	}
	return in.gamepads[0], true
}

// Confirm reports a menu advance from Enter, Space or the gamepad.
func (in *Input) Confirm() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if id, ok := in.gamepad(); ok && ebiten.IsStandardGamepadLayoutAvailable(id) {
		return inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return false
}

func (in *Input) Restart() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR) || in.Confirm()
}

func (in *Input) ToggleMinimap() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

func (in *Input) Quit() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape)
}

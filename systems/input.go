package systems

import (
	"math"

	"github.com/automoto/runslide/components"
	cfg "github.com/automoto/runslide/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into every PlayerInputData.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		pollPlayerInput(input, gamepadIDs)
	})
}

func pollPlayerInput(input *components.PlayerInputData, gamepads []ebiten.GamepadID) {
	var pressed [cfg.ActionCount]bool
	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
				keyboardUsed = true
			}
		}
	}

	var stickX, stickY float64
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for actionID, binding := range cfg.Input.Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
					gamepadUsed = true
				}
			}
		}

		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		// Stick up is negative.
		y := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(x) > cfg.Input.AnalogDeadzone || math.Abs(y) > cfg.Input.AnalogDeadzone {
			stickX, stickY = x, y
			gamepadUsed = true
		}
		break
	}

	h := digitalAxis(pressed, cfg.ActionMoveLeft, cfg.ActionMoveRight)
	v := digitalAxis(pressed, cfg.ActionMoveBack, cfg.ActionMoveForward)
	if stickX != 0 || stickY != 0 {
		h, v = stickX, stickY
	}
	PushInput(input, pressed, h, v, digitalAxis(pressed, cfg.ActionTurnLeft, cfg.ActionTurnRight))

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.InputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.InputMethod = components.InputKeyboard
	}
}

// PushInput records one frame of input, moving the current action states to
// the previous buffer first so edges can be derived.
func PushInput(input *components.PlayerInputData, pressed [cfg.ActionCount]bool, horizontal, vertical, turn float64) {
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = pressed
	input.Horizontal = horizontal
	input.Vertical = vertical
	input.Turn = turn
}

// digitalAxis maps a pair of opposing buttons to -1, 0 or 1.
func digitalAxis(pressed [cfg.ActionCount]bool, negative, positive cfg.ActionID) float64 {
	var v float64
	if pressed[negative] {
		v--
	}
	if pressed[positive] {
		v++
	}
	return v
}

// GetPlayerAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	curr := input.CurrentInput[id]
	prev := input.PreviousInput[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

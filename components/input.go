package components

import (
	cfg "github.com/automoto/runslide/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

func (m InputMethod) String() string {
	if m == InputGamepad {
		return "gamepad"
	}
	return "keyboard"
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData stores per-player input state.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type PlayerInputData struct {
	CurrentInput  [cfg.ActionCount]bool // Current frame's Pressed state
	PreviousInput [cfg.ActionCount]bool // Previous frame's Pressed state

	// Raw movement axes in [-1, 1], unsmoothed.
	Horizontal float64
	Vertical   float64
	Turn       float64

	InputMethod InputMethod // device that produced the latest input, shown on the HUD
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

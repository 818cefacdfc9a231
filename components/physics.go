package components

import (
	"github.com/automoto/runslide/shared/motion"
	"github.com/yohamta/donburi"
)

// Body is the character's rigid body. It is owned and mutated only by the
// movement systems.
var Body = donburi.NewComponentType[motion.Body]()

// Motion is the per-character movement state (input snapshot, mode, jump).
var Motion = donburi.NewComponentType[motion.State]()

// TuningData is the character's movement tuning and the preset it came from.
type TuningData struct {
	Preset string
	motion.Tuning
}

var Tuning = donburi.NewComponentType[TuningData]()

// Clock drives fixed physics steps from frame deltas. Singleton.
var Clock = donburi.NewComponentType[motion.Clock]()

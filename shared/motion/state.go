package motion

// JumpState is the jump eligibility state machine.
type JumpState int

const (
	JumpReady JumpState = iota
	JumpCooling
)

func (s JumpState) String() string {
	switch s {
	case JumpReady:
		return "ready"
	case JumpCooling:
		return "cooling"
	default:
		return "unknown"
	}
}

// Input is one frame's snapshot of the character's controls. Axes are raw
// values in [-1, 1]; the booleans are key-down edges for this frame only.
type Input struct {
	Horizontal float64
	Vertical   float64

	JumpPressed  bool
	SlidePressed bool
	MovePressed  bool
}

// State is the per-character mutable movement state. Velocity is owned by
// the Body, not stored here.
type State struct {
	Horizontal float64
	Vertical   float64

	Sliding bool

	Jump     JumpState
	Cooldown float64 // seconds left while Jump == JumpCooling

	Grounded bool
}

// CanJump reports whether a jump may be triggered this frame.
func (s *State) CanJump() bool {
	return s.Jump == JumpReady
}

// TickCooldown advances the jump cooldown by dt seconds and returns the
// state to JumpReady once it has fully elapsed.
func (s *State) TickCooldown(dt float64) {
	if s.Jump != JumpCooling {
		return
	}
	s.Cooldown -= dt
	if s.Cooldown <= 0 {
		s.Cooldown = 0
		s.Jump = JumpReady
	}
}

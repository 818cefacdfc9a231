package motion

import "github.com/automoto/runslide/shared/gamemath"

// Sample is the per-frame input pass. It records the raw axes, applies the
// mode keys and decides whether a jump starts this frame. Only one key edge
// is acted on per frame: slide wins over move, and move wins over jump.
//
// It returns true when a jump was triggered; the caller applies the impulse
// with Jump.
func Sample(s *State, in Input, grounded bool, t Tuning) bool {
	s.Horizontal = gamemath.ClampAxis(in.Horizontal)
	s.Vertical = gamemath.ClampAxis(in.Vertical)
	s.Grounded = grounded

	switch {
	case in.SlidePressed && t.SlideEnabled:
		s.Sliding = true
	case in.MovePressed:
		s.Sliding = false
	case in.JumpPressed && s.CanJump() && grounded:
		s.Jump = JumpCooling
		s.Cooldown = t.JumpCooldown
		return true
	}
	return false
}

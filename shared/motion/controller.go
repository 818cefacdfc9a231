package motion

import (
	"github.com/automoto/runslide/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Drag returns the drag coefficient for the current movement mode.
func Drag(s *State, t Tuning) float64 {
	if s.Sliding && t.SlideEnabled {
		return t.SlideDrag
	}
	return t.GroundDrag
}

// MoveForce is the continuous force for this step: the normalized movement
// direction scaled by movement speed, and by the slide multiplier while
// sliding.
func MoveForce(s *State, forward, right mgl64.Vec3, t Tuning) mgl64.Vec3 {
	dir := gamemath.MoveDirection(forward, right, s.Vertical, s.Horizontal)
	scale := t.MovementSpeed
	if s.Sliding && t.SlideEnabled {
		scale *= t.SlideMultiplier
	}
	return dir.Mul(scale)
}

// ApplyMovement adds the movement force to b and sets its drag.
func ApplyMovement(b *Body, s *State, forward, right mgl64.Vec3, t Tuning) mgl64.Vec3 {
	f := MoveForce(s, forward, right, t)
	b.AddForce(f, ForceModeForce)
	b.Drag = Drag(s, t)
	return f
}

// Jump zeroes the vertical velocity, keeping horizontal motion, then applies
// an upward impulse of t.JumpForce.
func Jump(b *Body, t Tuning) {
	b.Velocity = mgl64.Vec3{b.Velocity.X(), 0, b.Velocity.Z()}
	b.AddForce(gamemath.WorldUp.Mul(t.JumpForce), ForceModeImpulse)
}

// Step runs the controller's part of one fixed physics step: movement force
// and drag, velocity integration, then the horizontal speed clamp. Position
// integration is left to the caller so it can resolve terrain contacts. The
// movement force applied this step is returned.
func Step(b *Body, s *State, forward, right mgl64.Vec3, t Tuning, dt float64, gravity mgl64.Vec3) mgl64.Vec3 {
	f := ApplyMovement(b, s, forward, right, t)
	b.IntegrateVelocity(dt, gravity)
	b.Velocity = gamemath.ClampHorizontal(b.Velocity, t.MovementSpeed)
	return f
}

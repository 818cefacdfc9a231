package motion

import (
	"github.com/automoto/runslide/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// ForceMode selects how AddForce affects the body.
type ForceMode int

const (
	// ForceModeForce is a continuous force, integrated over the next step.
	ForceModeForce ForceMode = iota
	// ForceModeImpulse changes velocity immediately by f/mass.
	ForceModeImpulse
)

// Body is the minimal dynamic rigid body a character drives. Rotation is
// frozen; only linear motion is simulated.
type Body struct {
	Position   mgl64.Vec3
	Velocity   mgl64.Vec3
	Mass       float64
	Drag       float64
	UseGravity bool

	force mgl64.Vec3
}

func (b *Body) invMass() float64 {
	if b.Mass <= 0 {
		return 1
	}
	return 1 / b.Mass
}

// AddForce applies f using the given mode.
func (b *Body) AddForce(f mgl64.Vec3, mode ForceMode) {
	switch mode {
	case ForceModeImpulse:
		b.Velocity = b.Velocity.Add(f.Mul(b.invMass()))
	default:
		b.force = b.force.Add(f)
	}
}

// PendingForce is the continuous force accumulated since the last step.
func (b *Body) PendingForce() mgl64.Vec3 {
	return b.force
}

// IntegrateVelocity applies accumulated forces and gravity over dt, then
// linear damping. Accumulated forces are cleared.
func (b *Body) IntegrateVelocity(dt float64, gravity mgl64.Vec3) {
	accel := b.force.Mul(b.invMass())
	if b.UseGravity {
		accel = accel.Add(gravity)
	}
	b.Velocity = b.Velocity.Add(accel.Mul(dt)).Mul(gamemath.DampingFactor(b.Drag, dt))
	b.force = mgl64.Vec3{}
}

// IntegratePosition moves the body by its velocity over dt.
func (b *Body) IntegratePosition(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
}

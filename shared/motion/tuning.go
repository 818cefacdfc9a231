package motion

import (
	"errors"
	"fmt"

	"github.com/automoto/runslide/shared/terrain"
)

// GroundCheckMargin is added below the character's half height when probing
// for ground.
const GroundCheckMargin = 0.2

// Tuning holds the designer-facing movement parameters of one character.
// Values are read-only while the character is alive.
type Tuning struct {
	MovementSpeed float64
	JumpForce     float64
	JumpCooldown  float64 // seconds

	Height     float64
	GroundMask terrain.LayerMask
	GroundDrag float64

	SlideEnabled    bool
	SlideMultiplier float64
	SlideDrag       float64

	Mass float64
}

// DefaultTuning is a reasonable starting point for a 2m tall character.
func DefaultTuning() Tuning {
	return Tuning{
		MovementSpeed:   7,
		JumpForce:       6,
		JumpCooldown:    0.25,
		Height:          2,
		GroundMask:      terrain.LayerMask(terrain.LayerGround | terrain.LayerPlatform),
		GroundDrag:      0.8,
		SlideEnabled:    true,
		SlideMultiplier: 2,
		SlideDrag:       0.2,
		Mass:            1,
	}
}

// GroundCheckDistance is the length of the downward grounded ray.
func (t Tuning) GroundCheckDistance() float64 {
	return t.Height*0.5 + GroundCheckMargin
}

// Validate reports every out-of-range parameter.
func (t Tuning) Validate() error {
	var errs []error
	if t.MovementSpeed <= 0 {
		errs = append(errs, fmt.Errorf("movement speed must be positive, got %v", t.MovementSpeed))
	}
	if t.Mass <= 0 {
		errs = append(errs, fmt.Errorf("mass must be positive, got %v", t.Mass))
	}
	if t.Height <= 0 {
		errs = append(errs, fmt.Errorf("height must be positive, got %v", t.Height))
	}
	if t.JumpForce < 0 {
		errs = append(errs, fmt.Errorf("jump force must not be negative, got %v", t.JumpForce))
	}
	if t.JumpCooldown < 0 {
		errs = append(errs, fmt.Errorf("jump cooldown must not be negative, got %v", t.JumpCooldown))
	}
	if t.GroundDrag < 0 || t.SlideDrag < 0 {
		errs = append(errs, fmt.Errorf("drag must not be negative, got ground=%v slide=%v", t.GroundDrag, t.SlideDrag))
	}
	if t.SlideEnabled && t.SlideMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("slide multiplier must be positive, got %v", t.SlideMultiplier))
	}
	return errors.Join(errs...)
}

package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DampingFactor returns the per-step velocity multiplier for a linear drag
// coefficient. Matches the implicit form v *= 1/(1 + dt*drag), which never
// reverses direction even for large drag values.
func DampingFactor(drag, dt float64) float64 {
	if drag <= 0 || dt <= 0 {
		return 1
	}
	return 1 / (1 + dt*drag)
}

// HorizontalSpeed returns the magnitude of the XZ component of v.
func HorizontalSpeed(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}

// ClampHorizontal rescales the XZ component of v so its magnitude does not
// exceed max. The Y component is returned unchanged.
func ClampHorizontal(v mgl64.Vec3, max float64) mgl64.Vec3 {
	speed := HorizontalSpeed(v)
	if speed <= max || speed == 0 {
		return v
	}
	scale := max / speed
	return mgl64.Vec3{v.X() * scale, v.Y(), v.Z() * scale}
}

// ClampAxis clamps a raw input axis to [-1, 1]. NaN reads as no input.
func ClampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

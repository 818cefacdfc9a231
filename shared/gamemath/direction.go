package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	WorldForward = mgl64.Vec3{0, 0, 1}
	WorldRight   = mgl64.Vec3{1, 0, 0}
	WorldUp      = mgl64.Vec3{0, 1, 0}
)

// OrientationAxes returns the forward and right axes of a reference rotated
// by yaw radians around the world up axis. Yaw 0 faces +Z with +X to the right.
func OrientationAxes(yaw float64) (forward, right mgl64.Vec3) {
	rot := mgl64.Rotate3DY(yaw)
	return rot.Mul3x1(WorldForward), rot.Mul3x1(WorldRight)
}

// RawMoveDirection is forward*vertical + right*horizontal, before normalization.
func RawMoveDirection(forward, right mgl64.Vec3, vertical, horizontal float64) mgl64.Vec3 {
	return forward.Mul(vertical).Add(right.Mul(horizontal))
}

// MoveDirection returns the normalized movement direction, or the zero vector
// when there is no input.
func MoveDirection(forward, right mgl64.Vec3, vertical, horizontal float64) mgl64.Vec3 {
	dir := RawMoveDirection(forward, right, vertical, horizontal)
	if dir.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	return dir.Normalize()
}

// WrapAngle maps radians into [-pi, pi].
func WrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

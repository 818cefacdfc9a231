package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Hit describes the nearest surface struck by a downward ray.
type Hit struct {
	Object   *resolv.Object
	Surface  *Surface
	Point    mgl64.Vec3
	Distance float64
}

// RaycastDown casts a ray straight down from origin for maxDist meters and
// returns the first surface on a layer selected by mask. Surfaces above the
// origin are not hit.
func RaycastDown(space *resolv.Space, origin mgl64.Vec3, maxDist float64, mask LayerMask) (Hit, bool) {
	if maxDist < 0 {
		return Hit{}, false
	}
	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, obj := range surfacesAt(space, origin.X(), origin.Z()) {
		s := SurfaceOf(obj)
		if s == nil || !mask.Contains(s.Layer) {
			continue
		}
		dist := origin.Y() - s.Top
		if dist < 0 || dist > maxDist || dist >= best.Distance {
			continue
		}
		best = Hit{
			Object:   obj,
			Surface:  s,
			Point:    mgl64.Vec3{origin.X(), s.Top, origin.Z()},
			Distance: dist,
		}
		found = true
	}
	if !found {
		return Hit{}, false
	}
	return best, true
}

// HighestBelow returns the top of the highest surface under (x, z) that is not
// above y. Used to land falling bodies.
func HighestBelow(space *resolv.Space, x, z, y float64, mask LayerMask) (float64, bool) {
	top, found := math.Inf(-1), false
	for _, obj := range surfacesAt(space, x, z) {
		s := SurfaceOf(obj)
		if s == nil || !mask.Contains(s.Layer) || s.Top > y {
			continue
		}
		if s.Top > top {
			top, found = s.Top, true
		}
	}
	return top, found
}

// Blocked reports whether a surface under (x, z) rises more than step above
// feet, so a body at that height cannot walk onto it.
func Blocked(space *resolv.Space, x, z, feet, step float64, mask LayerMask) bool {
	for _, obj := range surfacesAt(space, x, z) {
		s := SurfaceOf(obj)
		if s != nil && mask.Contains(s.Layer) && s.Top > feet+step {
			return true
		}
	}
	return false
}

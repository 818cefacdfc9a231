// Package terrain indexes walkable surfaces in a resolv spatial hash and
// answers the vertical queries a character controller needs: downward
// raycasts and the highest surface under a point.
//
// The resolv space is laid out top-down: resolv X is world X and resolv Y is
// world Z. Heights live on the Surface stored in each object's Data.
package terrain

import (
	"github.com/solarlune/resolv"
)

// SurfaceTag marks resolv objects that carry a *Surface.
const SurfaceTag = "surface"

// Surface is the walkable top of a collider.
type Surface struct {
	Top   float64
	Layer Layer
}

// NewSpace creates a space covering width x depth meters.
func NewSpace(width, depth float64, cellSize int) *resolv.Space {
	if cellSize < 1 {
		cellSize = 1
	}
	return resolv.NewSpace(int(width+0.5), int(depth+0.5), cellSize, cellSize)
}

// AddSurface registers a rectangular footprint at (x, z) of size w x d whose
// top sits at height top.
func AddSurface(space *resolv.Space, x, z, w, d, top float64, layer Layer) *resolv.Object {
	obj := resolv.NewObject(x, z, w, d, SurfaceTag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, d))
	obj.Data = &Surface{Top: top, Layer: layer}
	space.Add(obj)
	return obj
}

// SurfaceOf returns the surface attached to obj, or nil.
func SurfaceOf(obj *resolv.Object) *Surface {
	if obj == nil {
		return nil
	}
	s, _ := obj.Data.(*Surface)
	return s
}

// covers reports whether the footprint of obj contains the point (x, z).
func covers(obj *resolv.Object, x, z float64) bool {
	return x >= obj.X && x <= obj.X+obj.W && z >= obj.Y && z <= obj.Y+obj.H
}

const probeSize = 0.02

// surfacesAt returns all surfaces whose footprint contains (x, z).
func surfacesAt(space *resolv.Space, x, z float64) []*resolv.Object {
	if space == nil {
		return nil
	}
	probe := resolv.NewObject(x-probeSize/2, z-probeSize/2, probeSize, probeSize)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, SurfaceTag)
	if check == nil {
		return nil
	}

	var out []*resolv.Object
	for _, obj := range check.ObjectsByTags(SurfaceTag) {
		if covers(obj, x, z) {
			out = append(out, obj)
		}
	}
	return out
}

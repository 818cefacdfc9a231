package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floor 0..20 at height 0, a platform at 5..10 raised to 2, and a water
// patch at 15..20 slightly above the floor.
func newTestSpace() *resolv.Space {
	space := NewSpace(20, 20, 2)
	AddSurface(space, 0, 0, 20, 20, 0, LayerGround)
	AddSurface(space, 5, 5, 5, 5, 2, LayerPlatform)
	AddSurface(space, 15, 15, 5, 5, 0.5, LayerWater)
	return space
}

func TestRaycastDown_HitsFloorWithinDistance(t *testing.T) {
	space := newTestSpace()

	hit, ok := RaycastDown(space, mgl64.Vec3{2, 1, 2}, 1.2, MaskAll)
	require.True(t, ok)
	assert.InDelta(t, 1.0, hit.Distance, 1e-12)
	assert.Equal(t, LayerGround, hit.Surface.Layer)
	assert.InDeltaSlice(t, []float64{2, 0, 2}, hit.Point[:], 1e-12)
}

func TestRaycastDown_TooShort(t *testing.T) {
	space := newTestSpace()

	_, ok := RaycastDown(space, mgl64.Vec3{2, 1.5, 2}, 1.2, MaskAll)
	assert.False(t, ok)
}

func TestRaycastDown_NearestSurfaceWins(t *testing.T) {
	space := newTestSpace()

	hit, ok := RaycastDown(space, mgl64.Vec3{7, 3, 7}, 10, MaskAll)
	require.True(t, ok)
	assert.Equal(t, LayerPlatform, hit.Surface.Layer)
	assert.InDelta(t, 1.0, hit.Distance, 1e-12)
}

func TestRaycastDown_RespectsMask(t *testing.T) {
	space := newTestSpace()

	// Platform filtered out: the ray continues to the floor.
	hit, ok := RaycastDown(space, mgl64.Vec3{7, 3, 7}, 10, LayerMask(LayerGround))
	require.True(t, ok)
	assert.Equal(t, LayerGround, hit.Surface.Layer)
	assert.InDelta(t, 3.0, hit.Distance, 1e-12)

	_, ok = RaycastDown(space, mgl64.Vec3{17, 1, 17}, 0.6, LayerMask(LayerPlatform))
	assert.False(t, ok)

	_, ok = RaycastDown(space, mgl64.Vec3{2, 1, 2}, 5, MaskNone)
	assert.False(t, ok)
}

func TestRaycastDown_IgnoresSurfacesAboveOrigin(t *testing.T) {
	space := newTestSpace()

	hit, ok := RaycastDown(space, mgl64.Vec3{7, 1, 7}, 5, MaskAll)
	require.True(t, ok)
	assert.Equal(t, LayerGround, hit.Surface.Layer)
}

func TestRaycastDown_OutsideFootprint(t *testing.T) {
	space := NewSpace(20, 20, 2)
	AddSurface(space, 5, 5, 5, 5, 0, LayerGround)

	_, ok := RaycastDown(space, mgl64.Vec3{12, 0.5, 12}, 5, MaskAll)
	assert.False(t, ok)

	_, ok = RaycastDown(nil, mgl64.Vec3{6, 0.5, 6}, 5, MaskAll)
	assert.False(t, ok)
}

func TestRaycastDown_DoesNotLeaveProbeInSpace(t *testing.T) {
	space := newTestSpace()
	before := len(space.Objects())

	RaycastDown(space, mgl64.Vec3{2, 1, 2}, 5, MaskAll)

	assert.Len(t, space.Objects(), before)
}

func TestHighestBelow(t *testing.T) {
	space := newTestSpace()

	top, ok := HighestBelow(space, 7, 7, 2.5, MaskAll)
	require.True(t, ok)
	assert.Equal(t, 2.0, top)

	top, ok = HighestBelow(space, 7, 7, 1.9, MaskAll)
	require.True(t, ok)
	assert.Equal(t, 0.0, top)

	_, ok = HighestBelow(space, 7, 7, -1, MaskAll)
	assert.False(t, ok)
}

func TestParseMask(t *testing.T) {
	m, err := ParseMask([]string{"ground", "Platform"})
	require.NoError(t, err)
	assert.True(t, m.Contains(LayerGround))
	assert.True(t, m.Contains(LayerPlatform))
	assert.False(t, m.Contains(LayerWater))

	_, err = ParseMask([]string{"lava"})
	assert.ErrorContains(t, err, "lava")

	l, err := ParseLayer("")
	require.NoError(t, err)
	assert.Equal(t, LayerGround, l)
}

func TestBlocked(t *testing.T) {
	space := newTestSpace()

	assert.True(t, Blocked(space, 7, 7, 0, 0.3, MaskAll), "platform is 2m above the floor")
	assert.False(t, Blocked(space, 7, 7, 1.8, 0.3, MaskAll), "within step height")
	assert.False(t, Blocked(space, 2, 2, 0, 0.3, MaskAll))
	assert.False(t, Blocked(space, 7, 7, 0, 0.3, LayerMask(LayerGround)), "masked out")
}

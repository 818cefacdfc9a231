package systems

import (
	"github.com/automoto/runslide/components"
	"github.com/automoto/runslide/shared/terrain"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovingGround advances every moving surface's tween and carries
// characters standing on it along with the footprint.
func UpdateMovingGround(ecs *ecs.ECS) {
	dt := float32(frameDelta())
	components.MovingGround.Each(ecs.World, func(e *donburi.Entry) {
		mover := components.MovingGround.Get(e)
		obj := components.Object.Get(e).Object
		offset, _, _ := components.Tween.Get(e).Update(dt)

		delta := float64(offset) - mover.Offset
		mover.Offset = float64(offset)

		var carry mgl64.Vec3
		switch mover.Axis {
		case "y":
			if s := terrain.SurfaceOf(obj); s != nil {
				s.Top = mover.BaseTop + mover.Offset
			}
		case "z":
			obj.Y = mover.BaseZ + mover.Offset
			carry = mgl64.Vec3{0, 0, delta}
		default:
			obj.X = mover.BaseX + mover.Offset
			carry = mgl64.Vec3{delta, 0, 0}
		}

		if carry != (mgl64.Vec3{}) {
			components.Player.Each(ecs.World, func(p *donburi.Entry) {
				if components.Player.Get(p).GroundHit.Object == obj {
					body := components.Body.Get(p)
					body.Position = body.Position.Add(carry)
				}
			})
		}
	})
}

// UpdateObjects refreshes every collider's cells in the space after it moved.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

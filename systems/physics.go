package systems

import (
	"github.com/automoto/runslide/components"
	cfg "github.com/automoto/runslide/config"
	"github.com/automoto/runslide/shared/gamemath"
	"github.com/automoto/runslide/shared/motion"
	"github.com/automoto/runslide/shared/terrain"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the clock by one frame and runs the resulting fixed
// steps for every character.
func UpdatePhysics(ecs *ecs.ECS) {
	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	steps := components.Clock.Get(clockEntry).Advance(frameDelta())
	if steps == 0 {
		return
	}

	space := surfaceSpace(ecs)
	var width, depth float64
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			width, depth = level.Width, level.Depth
		}
	}

	dt := cfg.Physics.FixedStep
	for i := 0; i < steps; i++ {
		components.Player.Each(ecs.World, func(e *donburi.Entry) {
			stepPlayer(space, e, dt, width, depth)
		})
	}
}

func stepPlayer(space *resolv.Space, e *donburi.Entry, dt, width, depth float64) {
	player := components.Player.Get(e)
	body := components.Body.Get(e)
	state := components.Motion.Get(e)
	tuning := components.Tuning.Get(e).Tuning
	yaw := components.Orientation.Get(e).Yaw

	forward, right := gamemath.OrientationAxes(yaw)
	player.LastForce = motion.Step(body, state, forward, right, tuning, dt, cfg.Physics.Gravity)

	prev := body.Position
	prevFeet := prev.Y() - tuning.Height/2
	body.IntegratePosition(dt)
	blockRises(space, body, prev, prevFeet)
	land(space, body, prevFeet, tuning.Height)
	keepInArena(body, width, depth)

	if body.Position.Y() < cfg.Physics.KillPlaneY {
		respawn(e)
	}
}

// blockRises undoes horizontal movement onto surfaces taller than a step,
// one axis at a time so the body slides along the edge.
func blockRises(space *resolv.Space, body *motion.Body, prev mgl64.Vec3, feet float64) {
	p, v := body.Position, body.Velocity
	step := cfg.Physics.StepHeight
	if terrain.Blocked(space, p.X(), prev.Z(), feet, step, terrain.MaskAll) {
		p[0], v[0] = prev.X(), 0
	}
	if terrain.Blocked(space, p.X(), p.Z(), feet, step, terrain.MaskAll) {
		p[2], v[2] = prev.Z(), 0
	}
	body.Position, body.Velocity = p, v
}

// land stops a falling body on the highest surface its feet passed through
// this step, or one low enough to step onto. Surfaces are one-way: a body
// below a top passes up through it.
func land(space *resolv.Space, body *motion.Body, prevFeet, height float64) {
	if body.Velocity.Y() > 0 {
		return
	}
	feet := body.Position.Y() - height/2
	top, ok := terrain.HighestBelow(space, body.Position.X(), body.Position.Z(),
		prevFeet+cfg.Physics.StepHeight, terrain.MaskAll)
	if !ok || feet >= top {
		return
	}
	body.Position = mgl64.Vec3{body.Position.X(), top + height/2, body.Position.Z()}
	body.Velocity = mgl64.Vec3{body.Velocity.X(), 0, body.Velocity.Z()}
}

// keepInArena clamps the footprint inside the level and stops motion into
// the edge. A zero size disables the check.
func keepInArena(body *motion.Body, width, depth float64) {
	if width <= 0 || depth <= 0 {
		return
	}
	r := cfg.Player.Radius
	p, v := body.Position, body.Velocity
	if x := mgl64.Clamp(p.X(), r, width-r); x != p.X() {
		p[0], v[0] = x, 0
	}
	if z := mgl64.Clamp(p.Z(), r, depth-r); z != p.Z() {
		p[2], v[2] = z, 0
	}
	body.Position, body.Velocity = p, v
}

// respawn returns a character to its spawn point at rest.
func respawn(e *donburi.Entry) {
	player := components.Player.Get(e)
	body := components.Body.Get(e)
	state := components.Motion.Get(e)

	body.Position = player.SpawnPosition
	body.Velocity = mgl64.Vec3{}
	components.Orientation.Get(e).Yaw = player.SpawnYaw
	*state = motion.State{Sliding: state.Sliding, Jump: motion.JumpReady}
	player.GroundHit = terrain.Hit{}
	player.Respawns++

	log.Info().Int("respawns", player.Respawns).Msg("fell below the kill plane, respawned")
}

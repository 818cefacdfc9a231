package systems

import (
	"github.com/automoto/runslide/components"
	cfg "github.com/automoto/runslide/config"
	"github.com/automoto/runslide/shared/gamemath"
	"github.com/automoto/runslide/shared/motion"
	"github.com/automoto/runslide/shared/terrain"
	"github.com/rs/zerolog/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDelta is the time covered by one update.
func frameDelta() float64 {
	if cfg.C.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(cfg.C.TPS)
}

func surfaceSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// UpdatePlayer is the per-frame input pass: turning, the jump cooldown, the
// grounded check and mode/jump handling.
func UpdatePlayer(ecs *ecs.ECS) {
	space := surfaceSpace(ecs)
	dt := frameDelta()
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(space, playerEntry, dt)
	})
}

func updateSinglePlayer(space *resolv.Space, playerEntry *donburi.Entry, dt float64) {
	input := components.PlayerInput.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	orientation := components.Orientation.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	state := components.Motion.Get(playerEntry)
	tuning := components.Tuning.Get(playerEntry).Tuning

	orientation.Yaw = gamemath.WrapAngle(orientation.Yaw + input.Turn*cfg.Player.TurnRate*dt)

	state.TickCooldown(dt)

	hit, grounded := terrain.RaycastDown(space, body.Position, tuning.GroundCheckDistance(), tuning.GroundMask)
	player.GroundHit = hit

	wasSliding := state.Sliding
	jumped := motion.Sample(state, snapshotInput(input), grounded, tuning)
	if jumped {
		motion.Jump(body, tuning)
		log.Debug().
			Float64("y", body.Position.Y()).
			Float64("vy", body.Velocity.Y()).
			Msg("jump")
	}
	if state.Sliding != wasSliding {
		log.Debug().Bool("sliding", state.Sliding).Msg("movement mode changed")
	}
}

// snapshotInput builds the controller's per-frame input from the action
// buffers. Key edges come from the previous frame comparison.
func snapshotInput(input *components.PlayerInputData) motion.Input {
	return motion.Input{
		Horizontal:   input.Horizontal,
		Vertical:     input.Vertical,
		JumpPressed:  GetPlayerAction(input, cfg.ActionJump).JustPressed,
		SlidePressed: GetPlayerAction(input, cfg.ActionSlide).JustPressed,
		MovePressed:  GetPlayerAction(input, cfg.ActionRun).JustPressed,
	}
}

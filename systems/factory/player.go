package factory

import (
	"github.com/automoto/runslide/archetypes"
	"github.com/automoto/runslide/components"
	"github.com/automoto/runslide/shared/motion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a character whose body center is at pos, facing yaw
// radians.
func CreatePlayer(ecs *ecs.ECS, pos mgl64.Vec3, yaw float64, preset string, tuning motion.Tuning) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		SpawnPosition: pos,
		SpawnYaw:      yaw,
	})
	components.Orientation.SetValue(player, components.OrientationData{Yaw: yaw})
	components.Body.SetValue(player, motion.Body{
		Position:   pos,
		Mass:       tuning.Mass,
		Drag:       tuning.GroundDrag,
		UseGravity: true,
	})
	components.Motion.SetValue(player, motion.State{Jump: motion.JumpReady})
	components.Tuning.SetValue(player, components.TuningData{
		Preset: preset,
		Tuning: tuning,
	})

	return player
}

// ApplyTuning swaps a character's tuning in place. Mode and jump state are
// kept; the slide mode is dropped when the new tuning disables it.
func ApplyTuning(player *donburi.Entry, preset string, tuning motion.Tuning) {
	components.Tuning.SetValue(player, components.TuningData{
		Preset: preset,
		Tuning: tuning,
	})
	body := components.Body.Get(player)
	body.Mass = tuning.Mass
	if !tuning.SlideEnabled {
		components.Motion.Get(player).Sliding = false
	}
}

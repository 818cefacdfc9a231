package factory

import (
	"fmt"
	"math"

	"github.com/automoto/runslide/assets"
	cfg "github.com/automoto/runslide/config"
	"github.com/automoto/runslide/shared/terrain"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldOptions selects what PopulateWorld builds.
type WorldOptions struct {
	Level   assets.Level
	Presets *cfg.Presets
	Preset  string // overrides the spawn's preset when set
	Debug   bool
}

// PopulateWorld creates the level, clock and settings singletons and one
// player at the level's first spawn. It returns the player entry.
func PopulateWorld(ecs *ecs.ECS, opts WorldOptions) (*donburi.Entry, error) {
	if opts.Presets == nil {
		return nil, fmt.Errorf("no presets loaded")
	}
	if len(opts.Level.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("level %s: no player spawn points", opts.Level.Name)
	}

	if _, err := CreateLevel(ecs, opts.Level); err != nil {
		return nil, err
	}
	CreateClock(ecs)
	CreateSettings(ecs, opts.Presets, opts.Debug)

	spawn := opts.Level.PlayerSpawns[0]
	preset := spawn.Preset
	if opts.Preset != "" {
		preset = opts.Preset
	}
	tuning, err := opts.Presets.Get(preset)
	if err != nil {
		return nil, err
	}
	if preset == "" {
		preset = opts.Presets.Default
	}

	space, err := spaceOf(ecs)
	if err != nil {
		return nil, err
	}
	y := spawn.Y
	if y == 0 {
		// Stand on whatever is under the spawn point.
		if top, ok := terrain.HighestBelow(space, spawn.X, spawn.Z, math.Inf(1), terrain.MaskAll); ok {
			y = top
		}
	}
	pos := mgl64.Vec3{spawn.X, y + tuning.Height/2, spawn.Z}

	return CreatePlayer(ecs, pos, mgl64.DegToRad(spawn.Yaw), preset, tuning), nil
}

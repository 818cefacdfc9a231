package factory

import (
	"github.com/automoto/runslide/archetypes"
	"github.com/automoto/runslide/components"
	cfg "github.com/automoto/runslide/config"
	"github.com/automoto/runslide/shared/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.Set(clock, motion.NewClock(cfg.Physics.FixedStep, cfg.Physics.MaxStepsPerFrame))
	return clock
}

func CreateSettings(ecs *ecs.ECS, presets *cfg.Presets, debug bool) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		Debug:   debug,
		Presets: presets,
	})
	return settings
}

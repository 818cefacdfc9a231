package systems

import (
	"github.com/automoto/runslide/components"
	cfg "github.com/automoto/runslide/config"
	"github.com/automoto/runslide/systems/factory"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the runtime toggles: debug drawing, cycling the
// tuning preset and saving the current choice.
func UpdateSettings(ecs *ecs.ECS) {
	settingsEntry, ok := components.Settings.First(ecs.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(settingsEntry)

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	input := components.PlayerInput.Get(playerEntry)

	if GetPlayerAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}

	if GetPlayerAction(input, cfg.ActionNextPreset).JustPressed && settings.Presets != nil {
		current := components.Tuning.Get(playerEntry).Preset
		next := settings.Presets.Next(current)
		tuning, err := settings.Presets.Get(next)
		if err != nil {
			log.Warn().Err(err).Str("preset", next).Msg("could not switch preset")
		} else {
			factory.ApplyTuning(playerEntry, next, tuning)
			log.Info().Str("from", current).Str("to", next).Msg("preset changed")
		}
	}

	if GetPlayerAction(input, cfg.ActionSavePreset).JustPressed {
		SaveCurrentSettings(settings, components.Tuning.Get(playerEntry).Preset)
	}
}

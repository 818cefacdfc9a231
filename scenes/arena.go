package scenes

import (
	"github.com/automoto/runslide/assets"
	"github.com/automoto/runslide/components"
	cfg "github.com/automoto/runslide/config"
	"github.com/automoto/runslide/systems"
	"github.com/automoto/runslide/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaOptions selects the level and tuning the arena starts with.
type ArenaOptions struct {
	LevelPath string // empty selects the built-in arena
	Presets   *cfg.Presets
	Preset    string
	Debug     bool
}

type ArenaScene struct {
	ecs *ecs.ECS
}

// NewArenaScene loads the level and builds the world.
func NewArenaScene(opts ArenaOptions) (*ArenaScene, error) {
	level, err := assets.LoadLevelFile(opts.LevelPath)
	if err != nil {
		return nil, err
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	systems.AddSimulationSystems(ecs)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawGroundGizmo)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	player, err := factory.PopulateWorld(ecs, factory.WorldOptions{
		Level:   level,
		Presets: opts.Presets,
		Preset:  opts.Preset,
		Debug:   opts.Debug,
	})
	if err != nil {
		return nil, err
	}

	spawn := components.Body.Get(player).Position
	log.Info().
		Str("level", level.Name).
		Str("preset", components.Tuning.Get(player).Preset).
		Floats64("spawn", spawn[:]).
		Msg("arena ready")

	return &ArenaScene{ecs: ecs}, nil
}

func (s *ArenaScene) Update() {
	s.ecs.Update()
}

func (s *ArenaScene) Draw(screen *ebiten.Image) {
	s.ecs.Draw(screen)
}

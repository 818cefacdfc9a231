package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/runslide/config"
	"github.com/automoto/runslide/fonts"
	"github.com/automoto/runslide/logging"
	"github.com/automoto/runslide/scenes"
	"github.com/automoto/runslide/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(opts scenes.ArenaOptions) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		return nil, err
	}

	scene, err := scenes.NewArenaScene(opts)
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "runslide:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	v := viper.New()
	fs := pflag.NewFlagSet("runslide", pflag.ContinueOnError)
	if err := config.BindFlags(fs, v); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	configFile, _ := fs.GetString("config")

	settings, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	settings.Apply()

	if err := logging.Setup(os.Stderr, settings.LogLevel, false); err != nil {
		return err
	}

	presets, err := config.LoadPresetFile(settings.PresetFile)
	if err != nil {
		return err
	}

	// Saved choices apply unless a flag or config picked something else.
	if err := systems.InitPersistence("runslide"); err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Warn().Err(err).Msg("could not load saved settings")
	}
	if saved != nil {
		if settings.Preset == "" {
			settings.Preset = saved.Preset
		}
		if !fs.Changed("debug") && !v.InConfig("debug") && os.Getenv("RUNSLIDE_DEBUG") == "" {
			settings.Debug = saved.Debug
		}
	}
	if settings.Preset != "" {
		if _, err := presets.Get(settings.Preset); err != nil {
			log.Warn().Err(err).Msg("ignoring preset, using default")
			settings.Preset = ""
		}
	}

	game, err := NewGame(scenes.ArenaOptions{
		LevelPath: settings.Level,
		Presets:   presets,
		Preset:    settings.Preset,
		Debug:     settings.Debug,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("runslide")
	ebiten.SetTPS(config.C.TPS)

	return ebiten.RunGame(game)
}

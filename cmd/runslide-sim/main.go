package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/runslide/config"
	"github.com/automoto/runslide/logging"
	"github.com/automoto/runslide/sim"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "runslide-sim:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	v := viper.New()
	fs := pflag.NewFlagSet("runslide-sim", pflag.ContinueOnError)
	if err := config.BindFlags(fs, v); err != nil {
		return err
	}
	scriptPath := fs.String("script", "", "YAML input script (empty = built-in demo)")
	realtime := fs.Bool("realtime", false, "Pace frames at the script's tick rate instead of running flat out")
	jsonLogs := fs.Bool("json", false, "Write logs as JSON lines")
	if err := fs.Parse(args); err != nil {
		return err
	}
	configFile, _ := fs.GetString("config")

	settings, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	settings.Apply()

	if err := logging.Setup(os.Stderr, settings.LogLevel, *jsonLogs); err != nil {
		return err
	}

	presets, err := config.LoadPresetFile(settings.PresetFile)
	if err != nil {
		return err
	}
	script, err := sim.LoadScriptFile(*scriptPath)
	if err != nil {
		return err
	}

	// The level flag only wins when set explicitly; otherwise the script picks.
	levelPath := ""
	if fs.Changed("level") {
		levelPath = settings.Level
	}
	if script.TPS == 0 {
		script.TPS = settings.TPS
	}

	runner, err := sim.NewRunner(script, sim.Options{
		LevelPath: levelPath,
		Preset:    settings.Preset,
		Presets:   presets,
		Logger:    log.Logger,
	})
	if err != nil {
		return err
	}

	if !*realtime {
		final := runner.RunAll()
		fmt.Printf("frames=%d pos=(%.2f, %.2f, %.2f) speed=%.2f grounded=%t sliding=%t respawns=%d\n",
			final.Frame, final.Position.X(), final.Position.Y(), final.Position.Z(),
			final.Speed, final.Grounded, final.Sliding, final.Respawns)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

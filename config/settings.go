package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings are the process-level options, merged from defaults, an optional
// runslide.yaml, RUNSLIDE_* environment variables and command-line flags.
type Settings struct {
	Level      string `mapstructure:"level"`
	Preset     string `mapstructure:"preset"`
	PresetFile string `mapstructure:"preset-file"`
	Debug      bool   `mapstructure:"debug"`
	LogLevel   string `mapstructure:"log-level"`
	TPS        int    `mapstructure:"tps"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
}

const envPrefix = "RUNSLIDE"

func setDefaults(v *viper.Viper) {
	v.SetDefault("level", "")
	v.SetDefault("preset", "")
	v.SetDefault("preset-file", "")
	v.SetDefault("debug", Debug.ShowGizmo)
	v.SetDefault("log-level", "info")
	v.SetDefault("tps", C.TPS)
	v.SetDefault("width", C.Width)
	v.SetDefault("height", C.Height)
}

// BindFlags registers the shared command-line flags on fs and binds them to v.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String("config", "", "Path to a runslide.yaml config file")
	fs.String("level", "", "Level .tmx file or built-in level path (empty = built-in arena)")
	fs.String("preset", "", "Tuning preset name (empty = preset file default)")
	fs.String("preset-file", "", "YAML file with tuning presets (empty = built-in presets)")
	fs.Bool("debug", Debug.ShowGizmo, "Draw the ground-check gizmo and collider outlines")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
	fs.Int("tps", C.TPS, "Frames (input passes) per second")

	for _, name := range []string{"level", "preset", "preset-file", "debug", "log-level", "tps"} {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads settings into v. configFile may be empty, in which case a
// runslide.yaml in the working directory is used when present.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("runslide")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding settings: %w", err)
	}
	if s.TPS <= 0 {
		return nil, fmt.Errorf("tps must be positive, got %d", s.TPS)
	}
	return &s, nil
}

// Apply copies settings into the global configuration.
func (s *Settings) Apply() {
	C.TPS = s.TPS
	if s.Width > 0 {
		C.Width = s.Width
	}
	if s.Height > 0 {
		C.Height = s.Height
	}
	Debug.ShowGizmo = s.Debug
}

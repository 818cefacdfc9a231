package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/runslide/shared/terrain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "", s.Level, "empty selects the built-in arena")
	assert.Equal(t, "", s.Preset)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, C.TPS, s.TPS)
	assert.Equal(t, Debug.ShowGizmo, s.Debug)
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runslide.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preset: classic\ntps: 30\nlog-level: debug\n"), 0o644))

	s, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "classic", s.Preset)
	assert.Equal(t, 30, s.TPS)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runslide.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preset: classic\n"), 0o644))
	t.Setenv("RUNSLIDE_PRESET", "floaty")
	t.Setenv("RUNSLIDE_PRESET_FILE", "/tmp/presets.yaml")

	s, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "floaty", s.Preset)
	assert.Equal(t, "/tmp/presets.yaml", s.PresetFile)
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Chdir(t.TempDir())
	v := viper.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, BindFlags(fs, v))
	require.NoError(t, fs.Parse([]string{"--preset=classic", "--debug=false", "--tps=120"}))

	s, err := Load(v, "")
	require.NoError(t, err)

	assert.Equal(t, "classic", s.Preset)
	assert.False(t, s.Debug)
	assert.Equal(t, 120, s.TPS)
}

func TestLoad_RejectsBadTPS(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RUNSLIDE_TPS", "0")

	_, err := Load(viper.New(), "")
	assert.ErrorContains(t, err, "tps")
}

func TestBuiltinPresets(t *testing.T) {
	p, err := LoadPresetFile("")
	require.NoError(t, err)

	assert.Equal(t, "runner", p.Default)
	assert.Equal(t, []string{"runner", "classic", "floaty"}, p.Names())

	runner, err := p.Get("")
	require.NoError(t, err)
	assert.Equal(t, 7.0, runner.MovementSpeed)
	assert.True(t, runner.SlideEnabled)
	assert.True(t, runner.GroundMask.Contains(terrain.LayerPlatform))
	assert.False(t, runner.GroundMask.Contains(terrain.LayerWater))

	classic, err := p.Get("classic")
	require.NoError(t, err)
	assert.False(t, classic.SlideEnabled)
	assert.Equal(t, Player.Tuning.Height, classic.Height, "unset fields fall back to defaults")

	_, err = p.Get("nope")
	assert.ErrorContains(t, err, "unknown preset")
}

func TestPresets_Next(t *testing.T) {
	p, err := LoadPresetFile("")
	require.NoError(t, err)

	assert.Equal(t, "classic", p.Next("runner"))
	assert.Equal(t, "runner", p.Next("floaty"))
	assert.Equal(t, "runner", p.Next("missing"))
}

func TestLoadPresets_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown field", "presets:\n  - name: a\n    speed: 3\n", "speed"},
		{"empty", "default: a\n", "no presets"},
		{"missing name", "presets:\n  - movementSpeed: 3\n", "no name"},
		{"duplicate", "presets:\n  - name: a\n  - name: a\n", "duplicate"},
		{"bad default", "default: b\npresets:\n  - name: a\n", "default preset"},
		{"invalid tuning", "presets:\n  - name: a\n    movementSpeed: -1\n", "movement speed"},
		{"bad layer", "presets:\n  - name: a\n    groundLayers: [lava]\n", "lava"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPresets(strings.NewReader(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadPresetFile_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  - name: only\n    jumpForce: 9\n"), 0o644))

	p, err := LoadPresetFile(path)
	require.NoError(t, err)
	assert.Equal(t, "only", p.Default)

	tune, err := p.Get("only")
	require.NoError(t, err)
	assert.Equal(t, 9.0, tune.JumpForce)
}

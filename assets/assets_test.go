package assets

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelPaths(t *testing.T) {
	paths, err := NewLevelLoader().LevelPaths()
	require.NoError(t, err)
	assert.Contains(t, paths, "levels/arena.tmx")
}

func TestLoadLevel_Arena(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel("levels/arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, "Training Arena", level.Name)
	assert.Equal(t, 40.0, level.Width)
	assert.Equal(t, 30.0, level.Depth)

	require.NotEmpty(t, level.Surfaces)
	floor := level.Surfaces[0]
	assert.Equal(t, "floor", floor.Name)
	assert.Equal(t, 30.0, floor.W)
	assert.Equal(t, 30.0, floor.D)
	assert.Equal(t, "ground", floor.Layer)

	var step SurfaceSpawn
	for _, s := range level.Surfaces {
		if s.Name == "step-2" {
			step = s
		}
	}
	assert.Equal(t, 14.0, step.X)
	assert.Equal(t, 6.0, step.Z)
	assert.Equal(t, 1.0, step.Top)
	assert.Equal(t, "platform", step.Layer)

	require.Len(t, level.MovingSurfaces, 2)
	lift := level.MovingSurfaces[0]
	assert.Equal(t, "y", lift.Axis)
	assert.Equal(t, 2.5, lift.Distance)
	assert.Equal(t, 3.0, lift.Duration)

	require.Len(t, level.PlayerSpawns, 1)
	spawn := level.PlayerSpawns[0]
	assert.Equal(t, 20.0, spawn.X)
	assert.Equal(t, 25.0, spawn.Z)
	assert.Equal(t, 180.0, spawn.Yaw)
}

func TestLoadLevel_Missing(t *testing.T) {
	_, err := NewLevelLoader().LoadLevel("levels/missing.tmx")
	assert.Error(t, err)
	assert.Panics(t, func() { NewLevelLoader().MustLoadLevel("levels/missing.tmx") })
}

const mapHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="32" tileheight="32" infinite="0">
`

func loadFromMap(t *testing.T, body string) (Level, error) {
	t.Helper()
	fsys := fstest.MapFS{
		"levels/test.tmx": {Data: []byte(mapHeader + body + "</map>\n")},
	}
	return NewLevelLoaderFS(fsys).LoadLevel("levels/test.tmx")
}

func TestLoadLevel_ScalesByTileSize(t *testing.T) {
	level, err := loadFromMap(t, `
 <objectgroup id="1" name="Ground">
  <object id="1" x="64" y="32" width="96" height="64"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="16" y="48"><point/></object>
 </objectgroup>
`)
	require.NoError(t, err)

	assert.Equal(t, "test", level.Name, "falls back to the file name")
	require.Len(t, level.Surfaces, 1)
	s := level.Surfaces[0]
	assert.Equal(t, SurfaceSpawn{X: 2, Z: 1, W: 3, D: 2}, s)
	assert.Equal(t, 0.5, level.PlayerSpawns[0].X)
	assert.Equal(t, 1.5, level.PlayerSpawns[0].Z)
}

func TestLoadLevel_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no spawn", ``, "no PlayerSpawn"},
		{"flat ground", `
 <objectgroup id="1" name="Ground">
  <object id="1" name="line" x="0" y="0" width="0" height="32"/>
 </objectgroup>`, "has no area"},
		{"bad axis", `
 <objectgroup id="1" name="MovingGround">
  <object id="1" name="mover" x="0" y="0" width="32" height="32">
   <properties><property name="axis" value="w"/></properties>
  </object>
 </objectgroup>`, "unknown axis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadFromMap(t, tt.body)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadLevel_MovingDefaults(t *testing.T) {
	level, err := loadFromMap(t, `
 <objectgroup id="1" name="MovingGround">
  <object id="1" x="0" y="0" width="32" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="0" y="0"><point/></object>
 </objectgroup>
`)
	require.NoError(t, err)
	require.Len(t, level.MovingSurfaces, 1)
	assert.Equal(t, "x", level.MovingSurfaces[0].Axis)
	assert.Equal(t, 2.0, level.MovingSurfaces[0].Duration)
}

func TestLoadLevelFile_FromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "disk.tmx")
	data, err := assetFS.ReadFile("levels/arena.tmx")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	level, err := LoadLevelFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Training Arena", level.Name)

	level, err = LoadLevelFile("levels/arena.tmx")
	require.NoError(t, err, "embedded fallback")
	assert.Equal(t, 40.0, level.Width)
}

func TestLoadLevelFile_EmptyIsDefault(t *testing.T) {
	level, err := LoadLevelFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLevel, level.Path)
	assert.Equal(t, "Training Arena", level.Name)
}

func TestLoadLevelFile_UnknownListsBuiltins(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadLevelFile("levels/nowhere.tmx")
	require.Error(t, err)
	assert.ErrorContains(t, err, "levels/nowhere.tmx")
	assert.ErrorContains(t, err, DefaultLevel)
}

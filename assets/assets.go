package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// DefaultLevel is the built-in arena loaded when no level is configured.
const DefaultLevel = "levels/arena.tmx"

// Level is a Tiled map converted to world units. One tile is one meter; the
// map's Y axis is world Z.
type Level struct {
	Name  string
	Path  string
	Width float64
	Depth float64

	Surfaces       []SurfaceSpawn
	MovingSurfaces []MovingSurfaceSpawn
	PlayerSpawns   []PlayerSpawn
}

// SurfaceSpawn is a static walkable footprint.
type SurfaceSpawn struct {
	Name       string
	X, Z, W, D float64
	Top        float64
	Layer      string
}

// MovingSurfaceSpawn is a surface that ping-pongs along Axis.
type MovingSurfaceSpawn struct {
	SurfaceSpawn
	Axis     string // "x", "y" (vertical) or "z"
	Distance float64
	Duration float64
}

type PlayerSpawn struct {
	X, Y, Z float64
	Yaw     float64 // degrees, 0 faces +Z
	Preset  string
}

// LevelLoader reads levels from an fs.FS so callers can pass the embedded
// levels or os.DirFS for maps on disk.
type LevelLoader struct {
	fs fs.FS
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fs: assetFS}
}

func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fs: fsys}
}

// LoadLevelFile loads a map from disk when levelPath names an existing file,
// and from the embedded levels otherwise. An empty path is the built-in
// arena, which must always load.
func LoadLevelFile(levelPath string) (Level, error) {
	if levelPath == "" {
		return NewLevelLoader().MustLoadLevel(DefaultLevel), nil
	}
	if info, err := os.Stat(levelPath); err == nil && !info.IsDir() {
		dir, name := filepath.Split(levelPath)
		if dir == "" {
			dir = "."
		}
		return NewLevelLoaderFS(os.DirFS(dir)).LoadLevel(name)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Level{}, fmt.Errorf("stat level %s: %w", levelPath, err)
	}

	loader := NewLevelLoader()
	if _, err := fs.Stat(loader.fs, levelPath); err != nil {
		builtin, _ := loader.LevelPaths()
		return Level{}, fmt.Errorf("level %s is neither a file nor built in (built-in: %s)",
			levelPath, strings.Join(builtin, ", "))
	}
	return loader.LoadLevel(levelPath)
}

// LevelPaths lists the embedded .tmx files in name order.
func (l *LevelLoader) LevelPaths() ([]string, error) {
	entries, err := fs.ReadDir(l.fs, "levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			paths = append(paths, path.Join("levels", entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses an embedded Tiled map. Object groups other than Ground,
// MovingGround and PlayerSpawn are ignored.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fs))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return Level{}, fmt.Errorf("level %s: tile size must be positive", levelPath)
	}

	sx := 1 / float64(levelMap.TileWidth)
	sz := 1 / float64(levelMap.TileHeight)

	name := levelMap.Properties.GetString("name")
	if name == "" {
		name = strings.TrimSuffix(path.Base(levelPath), path.Ext(levelPath))
	}

	level := Level{
		Name:  name,
		Path:  levelPath,
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	surface := func(o *tiled.Object) SurfaceSpawn {
		return SurfaceSpawn{
			Name:  o.Name,
			X:     o.X * sx,
			Z:     o.Y * sz,
			W:     o.Width * sx,
			D:     o.Height * sz,
			Top:   o.Properties.GetFloat("top"),
			Layer: o.Properties.GetString("layer"),
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return Level{}, fmt.Errorf("level %s: ground %q has no area", levelPath, o.Name)
				}
				level.Surfaces = append(level.Surfaces, surface(o))
			}
		case "MovingGround":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return Level{}, fmt.Errorf("level %s: moving ground %q has no area", levelPath, o.Name)
				}
				axis := strings.ToLower(o.Properties.GetString("axis"))
				switch axis {
				case "":
					axis = "x"
				case "x", "y", "z":
				default:
					return Level{}, fmt.Errorf("level %s: moving ground %q: unknown axis %q", levelPath, o.Name, axis)
				}
				duration := o.Properties.GetFloat("duration")
				if duration <= 0 {
					duration = 2
				}
				level.MovingSurfaces = append(level.MovingSurfaces, MovingSurfaceSpawn{
					SurfaceSpawn: surface(o),
					Axis:         axis,
					Distance:     o.Properties.GetFloat("distance"),
					Duration:     duration,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{
					X:      o.X * sx,
					Y:      o.Properties.GetFloat("y"),
					Z:      o.Y * sz,
					Yaw:    o.Properties.GetFloat("yaw"),
					Preset: o.Properties.GetString("preset"),
				})
			}
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return Level{}, fmt.Errorf("level %s: no PlayerSpawn objects", levelPath)
	}

	return level, nil
}

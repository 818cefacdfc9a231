package factory

import (
	"fmt"

	"github.com/automoto/runslide/archetypes"
	"github.com/automoto/runslide/assets"
	"github.com/automoto/runslide/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the level's surface space with every static and
// moving surface.
func CreateLevel(ecs *ecs.ECS, level assets.Level) (*donburi.Entry, error) {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: &level})

	CreateSpace(ecs, level.Width, level.Depth)

	for _, s := range level.Surfaces {
		if _, err := CreateGround(ecs, s); err != nil {
			return nil, fmt.Errorf("level %s: %w", level.Name, err)
		}
	}
	for _, s := range level.MovingSurfaces {
		if _, err := CreateMovingGround(ecs, s); err != nil {
			return nil, fmt.Errorf("level %s: %w", level.Name, err)
		}
	}

	return entry, nil
}

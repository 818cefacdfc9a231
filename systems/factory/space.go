package factory

import (
	"github.com/automoto/runslide/archetypes"
	"github.com/automoto/runslide/components"
	cfg "github.com/automoto/runslide/config"
	"github.com/automoto/runslide/shared/terrain"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the surface index covering width x depth meters.
func CreateSpace(ecs *ecs.ECS, width, depth float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, terrain.NewSpace(width, depth, cfg.Physics.ArenaCellSize))
	return space
}

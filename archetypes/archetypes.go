package archetypes

import (
	"github.com/automoto/runslide/components"
	cfg "github.com/automoto/runslide/config"
	"github.com/automoto/runslide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	MovingGround = newArchetype(
		tags.Ground,
		tags.MovingGround,
		components.Object,
		components.Tween,
		components.MovingGround,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Orientation,
		components.Body,
		components.Motion,
		components.Tuning,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

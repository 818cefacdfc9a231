package factory

import (
	"fmt"

	"github.com/automoto/runslide/archetypes"
	"github.com/automoto/runslide/assets"
	"github.com/automoto/runslide/components"
	"github.com/automoto/runslide/shared/terrain"
	"github.com/automoto/runslide/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func spaceOf(ecs *ecs.ECS) (*resolv.Space, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("no surface space in world")
	}
	return components.Space.Get(spaceEntry), nil
}

// CreateGround registers a static walkable surface.
func CreateGround(ecs *ecs.ECS, s assets.SurfaceSpawn) (*donburi.Entry, error) {
	layer, err := terrain.ParseLayer(s.Layer)
	if err != nil {
		return nil, fmt.Errorf("ground %q: %w", s.Name, err)
	}
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, err
	}

	ground := archetypes.Ground.Spawn(ecs)
	obj := terrain.AddSurface(space, s.X, s.Z, s.W, s.D, s.Top, layer)
	components.Object.SetValue(ground, components.ObjectData{Object: obj})

	return ground, nil
}

// CreateMovingGround registers a surface that ping-pongs Distance meters
// along its axis, taking Duration seconds each way.
func CreateMovingGround(ecs *ecs.ECS, s assets.MovingSurfaceSpawn) (*donburi.Entry, error) {
	layer, err := terrain.ParseLayer(s.Layer)
	if err != nil {
		return nil, fmt.Errorf("moving ground %q: %w", s.Name, err)
	}
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, err
	}

	ground := archetypes.MovingGround.Spawn(ecs)
	obj := terrain.AddSurface(space, s.X, s.Z, s.W, s.D, s.Top, layer)
	obj.AddTags(tags.ResolvMoving)
	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	components.MovingGround.SetValue(ground, components.MovingGroundData{
		Axis:    s.Axis,
		BaseX:   s.X,
		BaseZ:   s.Z,
		BaseTop: s.Top,
	})

	// Offsets from the base placement, there and back again.
	dist := float32(s.Distance)
	dur := float32(s.Duration)
	tw := gween.NewSequence(
		gween.New(0, dist, dur, ease.InOutSine),
		gween.New(dist, 0, dur, ease.InOutSine),
	)
	tw.SetLoop(-1)
	components.Tween.Set(ground, tw)

	return ground, nil
}

package systems

import (
	"image/color"
	"math"

	"github.com/automoto/runslide/components"
	cfg "github.com/automoto/runslide/config"
	"github.com/automoto/runslide/shared/terrain"
	"github.com/automoto/runslide/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func debugEnabled(ecs *ecs.ECS) bool {
	entry, ok := components.Settings.First(ecs.World)
	return ok && components.Settings.Get(entry).Debug
}

// DrawDebug outlines every collider in the surface space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !debugEnabled(ecs) {
		return
	}
	space := surfaceSpace(ecs)
	if space == nil {
		return
	}

	ppm := float32(cfg.UI.PixelsPerMeter)
	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvMoving) {
			c = cfg.Orange
		}
		x, y := toScreen(obj.X, obj.Y)
		vector.StrokeRect(screen, x, y, float32(obj.W)*ppm, float32(obj.H)*ppm, 1, c, false)
	}
}

// DrawGroundGizmo draws a side view of the first character with its
// ground-check ray: red while it misses, green when grounded.
func DrawGroundGizmo(ecs *ecs.ECS, screen *ebiten.Image) {
	if !debugEnabled(ecs) {
		return
	}
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	state := components.Motion.Get(playerEntry)
	tuning := components.Tuning.Get(playerEntry).Tuning

	w, h := float32(cfg.UI.GizmoWidth), float32(cfg.UI.GizmoHeight)
	left := float32(screen.Bounds().Dx()) - w - float32(cfg.UI.ArenaMargin)
	top := float32(cfg.UI.ArenaMargin)
	vector.FillRect(screen, left, top, w, h, cfg.UI.GizmoBackground, false)

	scale := float32(cfg.UI.GizmoScale)
	cx := left + w/2
	// Body center sits at 40% of the inset height.
	cy := top + h*0.4
	toY := func(worldY float64) float32 {
		return cy - float32(worldY-body.Position.Y())*scale
	}

	// Nearest surface under the character on any layer, for context.
	if floor, ok := terrain.HighestBelow(surfaceSpace(ecs), body.Position.X(), body.Position.Z(), body.Position.Y(), terrain.MaskAll); ok {
		y := float32(math.Max(float64(toY(floor)), float64(top)))
		if y < top+h {
			vector.FillRect(screen, left, y, w, top+h-y, cfg.UI.GizmoGroundColor, false)
		}
	}

	halfW := float32(cfg.Player.Radius) * scale
	c := cfg.UI.PlayerColor
	if state.Sliding {
		c = cfg.UI.SlidingColor
	}
	vector.StrokeRect(screen, cx-halfW, toY(body.Position.Y()+tuning.Height/2), halfW*2, float32(tuning.Height)*scale, 1, c, false)

	rayColor := cfg.UI.RayMissColor
	if state.Grounded {
		rayColor = cfg.UI.RayHitColor
	}
	vector.StrokeLine(screen, cx, cy, cx, toY(body.Position.Y()-tuning.GroundCheckDistance()), 2, rayColor, false)
}

package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/runslide/components"
	cfg "github.com/automoto/runslide/config"
	"github.com/automoto/runslide/shared/gamemath"
	"github.com/automoto/runslide/shared/terrain"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reused between frames to avoid allocations
var drawSurfaces []*resolv.Object

// toScreen projects world X/Z onto the top-down arena view.
func toScreen(x, z float64) (float32, float32) {
	return float32(cfg.UI.ArenaMargin + x*cfg.UI.PixelsPerMeter),
		float32(cfg.UI.ArenaMargin + z*cfg.UI.PixelsPerMeter)
}

// DrawArena renders surfaces from lowest to highest so raised ground
// overlaps the floor.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	space := surfaceSpace(ecs)
	if space == nil {
		return
	}

	drawSurfaces = drawSurfaces[:0]
	for _, obj := range space.Objects() {
		if terrain.SurfaceOf(obj) != nil {
			drawSurfaces = append(drawSurfaces, obj)
		}
	}
	sort.SliceStable(drawSurfaces, func(i, j int) bool {
		return terrain.SurfaceOf(drawSurfaces[i]).Top < terrain.SurfaceOf(drawSurfaces[j]).Top
	})

	ppm := float32(cfg.UI.PixelsPerMeter)
	for _, obj := range drawSurfaces {
		x, y := toScreen(obj.X, obj.Y)
		vector.FillRect(screen, x, y, float32(obj.W)*ppm, float32(obj.H)*ppm, surfaceColor(terrain.SurfaceOf(obj)), false)
	}
}

// surfaceColor shades a surface by its height. Water is always blue.
func surfaceColor(s *terrain.Surface) color.RGBA {
	if s.Layer == terrain.LayerWater {
		return cfg.DarkBlue
	}
	span := cfg.UI.MaxShadeHeight - cfg.UI.MinShadeHeight
	t := 0.0
	if span > 0 {
		t = (s.Top - cfg.UI.MinShadeHeight) / span
	}
	return lerpColor(cfg.UI.SurfaceLow, cfg.UI.SurfaceHigh, t)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// DrawPlayers renders each character as a circle with its facing and
// velocity.
func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		state := components.Motion.Get(e)
		yaw := components.Orientation.Get(e).Yaw

		cx, cy := toScreen(body.Position.X(), body.Position.Z())
		r := float32(cfg.Player.Radius * cfg.UI.PixelsPerMeter)

		c := cfg.UI.PlayerColor
		if state.Sliding {
			c = cfg.UI.SlidingColor
		}
		vector.FillCircle(screen, cx, cy, r, c, true)

		forward, _ := gamemath.OrientationAxes(yaw)
		fx, fy := toScreen(body.Position.X()+forward.X()*cfg.Player.Radius*2, body.Position.Z()+forward.Z()*cfg.Player.Radius*2)
		vector.StrokeLine(screen, cx, cy, fx, fy, 2, cfg.UI.ForwardColor, true)

		// Horizontal velocity, a quarter second ahead.
		vx, vy := toScreen(body.Position.X()+body.Velocity.X()*0.25, body.Position.Z()+body.Velocity.Z()*0.25)
		vector.StrokeLine(screen, cx, cy, vx, vy, 1, cfg.UI.VelocityColor, true)
	})
}

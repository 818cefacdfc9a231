// Package sim replays scripted input through the movement systems without a
// window.
package sim

import (
	"context"
	"time"

	"github.com/automoto/runslide/assets"
	"github.com/automoto/runslide/components"
	cfg "github.com/automoto/runslide/config"
	"github.com/automoto/runslide/shared/gamemath"
	"github.com/automoto/runslide/shared/motion"
	"github.com/automoto/runslide/systems"
	"github.com/automoto/runslide/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options override what the script asks for.
type Options struct {
	LevelPath string
	Preset    string
	Presets   *cfg.Presets
	Logger    zerolog.Logger
}

// Runner steps a world one frame per script frame.
type Runner struct {
	ecs      *ecs.ECS
	player   *donburi.Entry
	frames   []FrameInput
	frame    int
	tickRate int
	logEvery int
	logger   zerolog.Logger
}

// Snapshot is the observable character state after a frame.
type Snapshot struct {
	Frame    int
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Speed    float64
	Yaw      float64
	Sliding  bool
	Grounded bool
	Jump     motion.JumpState
	Cooldown float64
	Respawns int
	Preset   string
}

// NewRunner builds a headless world for script. The script's tps becomes the
// global frame rate.
func NewRunner(script *Script, opts Options) (*Runner, error) {
	levelPath := opts.LevelPath
	if levelPath == "" {
		levelPath = script.Level
	}
	preset := opts.Preset
	if preset == "" {
		preset = script.Preset
	}
	presets := opts.Presets
	if presets == nil {
		var err error
		if presets, err = cfg.LoadPresetFile(""); err != nil {
			return nil, err
		}
	}
	if script.TPS > 0 {
		cfg.C.TPS = script.TPS
	}

	level, err := assets.LoadLevelFile(levelPath)
	if err != nil {
		return nil, err
	}

	world := ecs.NewECS(donburi.NewWorld())
	systems.AddSimulationSystems(world)

	player, err := factory.PopulateWorld(world, factory.WorldOptions{
		Level:   level,
		Presets: presets,
		Preset:  preset,
	})
	if err != nil {
		return nil, err
	}

	return &Runner{
		ecs:      world,
		player:   player,
		frames:   script.Frames(),
		tickRate: cfg.C.TPS,
		logEvery: script.LogEvery,
		logger:   opts.Logger,
	}, nil
}

// Done reports whether every scripted frame has run.
func (r *Runner) Done() bool {
	return r.frame >= len(r.frames)
}

// Step runs one frame. It returns false once the script is exhausted.
func (r *Runner) Step() bool {
	if r.Done() {
		return false
	}
	in := r.frames[r.frame]
	systems.PushInput(components.PlayerInput.Get(r.player), in.Pressed, in.Horizontal, in.Vertical, in.Turn)
	r.ecs.Update()
	r.frame++

	if r.logEvery > 0 && r.frame%r.logEvery == 0 {
		r.logSnapshot(zerolog.InfoLevel, "state")
	}
	return true
}

// RunFrames runs up to n frames and returns how many ran.
func (r *Runner) RunFrames(n int) int {
	ran := 0
	for ran < n && r.Step() {
		ran++
	}
	return ran
}

// RunAll runs the rest of the script as fast as possible.
func (r *Runner) RunAll() Snapshot {
	for r.Step() {
	}
	r.logSnapshot(zerolog.InfoLevel, "script finished")
	return r.Snapshot()
}

// Run paces frames at the script's tick rate until the script ends or ctx is
// cancelled.
func (r *Runner) Run(ctx context.Context) error {
	tps := r.tickRate
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	r.logger.Info().Int("tps", tps).Int("frames", len(r.frames)).Msg("simulation started")

	for {
		select {
		case <-ctx.Done():
			r.logSnapshot(zerolog.InfoLevel, "simulation stopped")
			return ctx.Err()
		case <-ticker.C:
			if !r.Step() {
				r.logSnapshot(zerolog.InfoLevel, "script finished")
				return nil
			}
		}
	}
}

func (r *Runner) Snapshot() Snapshot {
	body := components.Body.Get(r.player)
	state := components.Motion.Get(r.player)
	return Snapshot{
		Frame:    r.frame,
		Position: body.Position,
		Velocity: body.Velocity,
		Speed:    gamemath.HorizontalSpeed(body.Velocity),
		Yaw:      components.Orientation.Get(r.player).Yaw,
		Sliding:  state.Sliding,
		Grounded: state.Grounded,
		Jump:     state.Jump,
		Cooldown: state.Cooldown,
		Respawns: components.Player.Get(r.player).Respawns,
		Preset:   components.Tuning.Get(r.player).Preset,
	}
}

func (r *Runner) logSnapshot(level zerolog.Level, msg string) {
	s := r.Snapshot()
	r.logger.WithLevel(level).
		Int("frame", s.Frame).
		Floats64("pos", s.Position[:]).
		Float64("speed", s.Speed).
		Float64("vy", s.Velocity.Y()).
		Bool("sliding", s.Sliding).
		Bool("grounded", s.Grounded).
		Stringer("jump", s.Jump).
		Int("respawns", s.Respawns).
		Msg(msg)
}

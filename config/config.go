package config

import (
	"image/color"

	"github.com/automoto/runslide/shared/motion"
	"github.com/go-gl/mathgl/mgl64"
)

// Config holds general window and loop configuration
type Config struct {
	Width  int
	Height int
	TPS    int // ebiten updates per second; one input pass per update
}

// PhysicsConfig contains fixed-step physics configuration values
type PhysicsConfig struct {
	Gravity          mgl64.Vec3
	FixedStep        float64 // seconds per physics step
	MaxStepsPerFrame int     // steps beyond this are dropped after a stall

	KillPlaneY    float64 // respawn below this height
	ArenaCellSize int     // resolv cell size in meters
	StepHeight    float64 // tallest rise a body walks onto without jumping
}

// PlayerConfig contains per-character values that are not movement tuning
type PlayerConfig struct {
	Radius   float64 // footprint radius, used for drawing and arena bounds
	TurnRate float64 // radians per second for the turn actions

	// Tuning is the built-in preset, used when no preset file overrides it.
	Tuning motion.Tuning
}

// UIConfig contains rendering values for the arena view, gizmo and HUD
type UIConfig struct {
	PixelsPerMeter float64
	ArenaMargin    float64

	BackgroundColor color.RGBA
	SurfaceLow      color.RGBA // color at MinShadeHeight
	SurfaceHigh     color.RGBA // color at MaxShadeHeight
	MinShadeHeight  float64
	MaxShadeHeight  float64

	PlayerColor   color.RGBA
	SlidingColor  color.RGBA
	ForwardColor  color.RGBA
	VelocityColor color.RGBA

	// Ground-check gizmo (side view inset)
	GizmoWidth       float64
	GizmoHeight      float64
	GizmoScale       float64 // pixels per meter inside the inset
	GizmoBackground  color.RGBA
	RayMissColor     color.RGBA
	RayHitColor      color.RGBA
	GizmoGroundColor color.RGBA

	HUDTextColor  color.RGBA
	HUDFontSize   float64
	HUDLineHeight int
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	ShowGizmo bool // draw the ground-check ray and collider outlines on start
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
		TPS:    60,
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:          mgl64.Vec3{0, -9.81, 0},
		FixedStep:        0.02, // 50 Hz
		MaxStepsPerFrame: 8,

		KillPlaneY:    -20,
		ArenaCellSize: 2,
		StepHeight:    0.3,
	}

	// Player Config
	Player = PlayerConfig{
		Radius:   0.5,
		TurnRate: 2.5,
		Tuning:   motion.DefaultTuning(),
	}

	UI = UIConfig{
		PixelsPerMeter: 14,
		ArenaMargin:    20,

		BackgroundColor: color.RGBA{R: 18, G: 18, B: 24, A: 255},
		SurfaceLow:      color.RGBA{R: 40, G: 60, B: 50, A: 255},
		SurfaceHigh:     color.RGBA{R: 150, G: 190, B: 120, A: 255},
		MinShadeHeight:  -1,
		MaxShadeHeight:  4,

		PlayerColor:   LightBlue,
		SlidingColor:  Orange,
		ForwardColor:  White,
		VelocityColor: BrightYellow,

		GizmoWidth:       200,
		GizmoHeight:      160,
		GizmoScale:       28,
		GizmoBackground:  BlackOverlay,
		RayMissColor:     Red,
		RayHitColor:      Green,
		GizmoGroundColor: color.RGBA{R: 120, G: 120, B: 120, A: 255},

		HUDTextColor:  White,
		HUDFontSize:   12,
		HUDLineHeight: 16,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowGizmo: true,
	}
}

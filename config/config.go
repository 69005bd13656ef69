package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// VerletConfig contains solver tuning and the bounds the tuning panel may move it within
type VerletConfig struct {
	Damping float64
	Gravity float64

	DampingStep float64
	GravityStep float64
	MinDamping  float64
	MaxDamping  float64
	MinGravity  float64
	MaxGravity  float64
}

// ChainConfig mirrors the classic two-chain scene used when no layout file loads
type ChainConfig struct {
	Links      int
	Separation float64
	Chaos      float64
	StartY     float64
}

// RenderConfig contains drawing sizes and colors
type RenderConfig struct {
	PointRadius     float64
	AnchorRadius    float64
	LineWidth       float64
	BackgroundColor color.RGBA
	PointColor      color.RGBA
	AnchorColor     color.RGBA
	LinkColor       color.RGBA
	GrabColor       color.RGBA

	// Debug link colors by stretch
	StretchedColor  color.RGBA
	CompressedColor color.RGBA
	StretchWarn     float64 // fraction of rest length before a link is colored
}

// AnchorConfig contains the sway applied to pinned anchors
type AnchorConfig struct {
	SwayAmplitude float32 // pixels either side of the start position
	SwayDuration  float32 // seconds for one leg of the sway
}

// GrabConfig contains mouse drag configuration
type GrabConfig struct {
	PickRadius float64 // half size of the probe used to pick joints
	CellSize   int     // resolv space cell size
}

// HUDConfig contains overlay text placement
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	TextColor  color.RGBA
	PausedText string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowDebug bool
	Layout    string // layout name to start with, empty for the first bundled one
	Seed      int64  // jitter seed, 0 picks one from the clock
}

// Global configuration instances
var C *Config
var Verlet VerletConfig
var Chain ChainConfig
var Render RenderConfig
var Anchor AnchorConfig
var Grab GrabConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "Verlet Chains",
	}

	Verlet = VerletConfig{
		Damping: 0.96, // air resistance
		Gravity: 0.6,

		DampingStep: 0.01,
		GravityStep: 0.1,
		MinDamping:  0.80,
		MaxDamping:  1.00,
		MinGravity:  -2.0,
		MaxGravity:  2.0,
	}

	Chain = ChainConfig{
		Links:      10,
		Separation: 75,
		Chaos:      40,
		StartY:     -10,
	}

	Render = RenderConfig{
		PointRadius:     5,
		AnchorRadius:    7,
		LineWidth:       5,
		BackgroundColor: Black,
		PointColor:      White,
		AnchorColor:     LightBlue,
		LinkColor:       White,
		GrabColor:       Yellow,

		StretchedColor:  LightRed,
		CompressedColor: LightBlue,
		StretchWarn:     0.05,
	}

	Anchor = AnchorConfig{
		SwayAmplitude: 60,
		SwayDuration:  2.5,
	}

	Grab = GrabConfig{
		PickRadius: 12,
		CellSize:   32,
	}

	HUD = HUDConfig{
		Margin:     10,
		LineHeight: 16,
		TextColor:  White,
		PausedText: "PAUSED - press N to step",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowDebug: false,
		Layout:    "",
		Seed:      0,
	}
}

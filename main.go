package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/verlet-chains/config"
	"github.com/automoto/verlet-chains/fonts"
	"github.com/automoto/verlet-chains/scenes"
	"github.com/automoto/verlet-chains/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gomono"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadFontWithSize(fonts.HUD, gomono.TTF, 12); err != nil {
		log.Fatalf("Failed to load HUD font: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.HUDLarge, gomono.TTF, 16); err != nil {
		log.Fatalf("Failed to load HUD font: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewRopeScene(g, config.Debug.Layout)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", config.Debug.ShowDebug, "Show pick boxes, stretch colors and frame timing")
	layoutName := flag.String("layout", config.Debug.Layout, "Bundled layout to start with (twin, curtain, pendulum)")
	seed := flag.Int64("seed", config.Debug.Seed, "Jitter seed, 0 picks one from the clock")
	flag.Parse()

	config.Debug.ShowDebug = *debug
	config.Debug.Layout = *layoutName
	config.Debug.Seed = *seed

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

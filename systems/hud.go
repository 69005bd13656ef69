package systems

import (
	"fmt"

	cfg "github.com/automoto/verlet-chains/config"
	"github.com/automoto/verlet-chains/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Reusable line buffer for the HUD
var hudLines []string

// DrawHUD renders the solver readout in the top-left corner and the pause banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	rope, ok := GetRope(ecs)
	if !ok {
		return
	}
	settings := GetOrCreateSettings(ecs)
	pause := GetOrCreatePause(ecs)
	face := fonts.HUD.Get()

	sway := "off"
	if settings.Sway {
		sway = "on"
	}
	hudLines = append(hudLines[:0],
		fmt.Sprintf("layout  %s", rope.LayoutName),
		fmt.Sprintf("tick    %d", rope.Ticks),
		fmt.Sprintf("damping %.2f", settings.Damping),
		fmt.Sprintf("gravity %.2f", settings.Gravity),
		fmt.Sprintf("points  %d  links %d", rope.System.PointCount(), rope.System.ConstraintCount()),
		fmt.Sprintf("max dev %.3f", rope.System.MaxDeviation()),
		fmt.Sprintf("sway    %s", sway),
	)

	x := int(cfg.HUD.Margin)
	for i, line := range hudLines {
		y := int(cfg.HUD.Margin + float64(i+1)*cfg.HUD.LineHeight)
		text.Draw(screen, line, face, x, y, cfg.HUD.TextColor)
	}

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	bannerH := cfg.HUD.LineHeight * 2
	bannerY := height - bannerH - cfg.HUD.Margin
	vector.DrawFilledRect(screen, 0, float32(bannerY), float32(width), float32(bannerH), cfg.BlackOverlay, false)

	// Approximate width for the small HUD font
	textWidth := len(cfg.HUD.PausedText) * 7
	text.Draw(screen, cfg.HUD.PausedText, fonts.HUDLarge.Get(),
		int((width-float64(textWidth))/2), int(bannerY+bannerH*0.7), cfg.Yellow)
}

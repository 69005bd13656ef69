package ui

import (
	"bytes"
	"fmt"
	stdimage "image"
	"image/color"

	"github.com/automoto/verlet-chains/components"
	"github.com/automoto/verlet-chains/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TuningUI is the on-screen panel for adjusting damping and gravity while the
// rope runs. It edits the scene's Settings component in place.
type TuningUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData
	Pause    *components.PauseData

	// Callbacks
	OnReset      func()
	OnNextLayout func()

	// Widget references for updates
	panel        *widget.Container
	dampingLabel *widget.Label
	gravityLabel *widget.Label
	pauseButton  *widget.Button
	swayButton   *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
}

// NewTuningUI creates the tuning panel bound to settings and pause.
func NewTuningUI(settings *components.SettingsData, pause *components.PauseData, onReset, onNextLayout func()) *TuningUI {
	tui := &TuningUI{
		Settings:     settings,
		Pause:        pause,
		OnReset:      onReset,
		OnNextLayout: onNextLayout,
	}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

func (tui *TuningUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (tui *TuningUI) buildUI() {
	// Root has no background so the rope stays visible around the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	tui.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	tui.panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("TUNING", &tui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	tui.dampingLabel = tui.newValueLabel()
	tui.panel.AddChild(tui.stepperRow(tui.dampingLabel,
		func() { systems.AdjustDamping(tui.Settings, -1) },
		func() { systems.AdjustDamping(tui.Settings, 1) },
	))

	tui.gravityLabel = tui.newValueLabel()
	tui.panel.AddChild(tui.stepperRow(tui.gravityLabel,
		func() { systems.AdjustGravity(tui.Settings, -1) },
		func() { systems.AdjustGravity(tui.Settings, 1) },
	))

	tui.pauseButton = tui.newButton("Pause", 120, func() {
		tui.Pause.IsPaused = !tui.Pause.IsPaused
	})
	tui.panel.AddChild(tui.pauseButton)

	tui.swayButton = tui.newButton("Sway", 120, func() {
		tui.Settings.Sway = !tui.Settings.Sway
	})
	tui.panel.AddChild(tui.swayButton)

	tui.panel.AddChild(tui.newButton("Reset", 120, func() {
		if tui.OnReset != nil {
			tui.OnReset()
		}
	}))
	tui.panel.AddChild(tui.newButton("Next layout", 120, func() {
		if tui.OnNextLayout != nil {
			tui.OnNextLayout()
		}
	}))

	rootContainer.AddChild(tui.panel)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	tui.UpdateUI()
}

func (tui *TuningUI) newValueLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{220, 220, 220, 255},
		}),
	)
}

// stepperRow lays out [-] value [+] for one tunable.
func (tui *TuningUI) stepperRow(label *widget.Label, dec, inc func()) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	row.AddChild(tui.newButton("-", 24, dec))
	row.AddChild(label)
	row.AddChild(tui.newButton("+", 24, inc))
	return row
}

func (tui *TuningUI) newButton(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 20),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			tui.UpdateUI()
		}),
	)
}

func (tui *TuningUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes labels from the current settings. Keyboard tuning changes
// the same values, so this runs every frame the panel is shown.
func (tui *TuningUI) UpdateUI() {
	tui.dampingLabel.Label = fmt.Sprintf("damping %.2f", tui.Settings.Damping)
	tui.gravityLabel.Label = fmt.Sprintf("gravity %.2f", tui.Settings.Gravity)

	if textWidget := tui.pauseButton.Text(); textWidget != nil {
		if tui.Pause.IsPaused {
			textWidget.Label = "Resume"
		} else {
			textWidget.Label = "Pause"
		}
	}
	if textWidget := tui.swayButton.Text(); textWidget != nil {
		if tui.Settings.Sway {
			textWidget.Label = "Sway: on"
		} else {
			textWidget.Label = "Sway: off"
		}
	}
}

// Update runs ebitenui and refreshes the panel.
func (tui *TuningUI) Update() {
	tui.UI.Update()
	tui.UpdateUI()
}

// Contains reports whether (x, y) is over the panel.
func (tui *TuningUI) Contains(x, y int) bool {
	return stdimage.Pt(x, y).In(tui.panel.GetWidget().Rect)
}

package scenes

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/verlet-chains/assets"
	cfg "github.com/automoto/verlet-chains/config"
	"github.com/automoto/verlet-chains/layout"
	"github.com/automoto/verlet-chains/systems"
	"github.com/automoto/verlet-chains/systems/factory"
	"github.com/automoto/verlet-chains/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RopeScene runs one layout. Reset and layout changes build a fresh scene.
type RopeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	layoutName   string
	tuningUI     *ui.TuningUI
	once         sync.Once

	// next is the layout to switch to after this frame, nil when staying
	next *string
}

// NewRopeScene creates a scene for the named layout. An empty name picks the
// first bundled layout.
func NewRopeScene(sc SceneChanger, layoutName string) *RopeScene {
	return &RopeScene{sceneChanger: sc, layoutName: layoutName}
}

func (rs *RopeScene) Update() {
	rs.once.Do(rs.configure)

	settings := systems.GetOrCreateSettings(rs.ecs)
	overPanel := false
	if settings.ShowPanel {
		rs.tuningUI.Update()
		cursor := systems.CursorPosition(rs.ecs)
		overPanel = rs.tuningUI.Contains(int(cursor.X), int(cursor.Y))
	}
	systems.SetPointerBlocked(rs.ecs, overPanel)

	rs.ecs.Update()

	if rs.next != nil {
		rs.sceneChanger.ChangeScene(NewRopeScene(rs.sceneChanger, *rs.next))
	}
}

func (rs *RopeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.BackgroundColor)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)

	if systems.GetOrCreateSettings(rs.ecs).ShowPanel {
		rs.tuningUI.UI.Draw(screen)
	}
}

func (rs *RopeScene) reset() {
	name := rs.layoutName
	rs.next = &name
}

func (rs *RopeScene) nextLayout() {
	name := assets.NextLayoutName(rs.layoutName)
	rs.next = &name
}

func (rs *RopeScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.NewUpdateSettings(systems.SceneActions{
		Reset:      rs.reset,
		NextLayout: rs.nextLayout,
	}))
	ecs.AddSystem(systems.UpdateGrab)

	// Simulation systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnchors))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateVerlet))
	ecs.AddSystem(systems.UpdateJointObjects)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawRope)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	rs.ecs = ecs

	l := rs.loadLayout()
	rs.layoutName = l.Name

	factory.CreateSpace(rs.ecs,
		max(l.Width, cfg.C.Width),
		max(l.Height, cfg.C.Height),
		cfg.Grab.CellSize, cfg.Grab.CellSize,
	)

	settings := systems.GetOrCreateSettings(rs.ecs)
	if _, err := factory.CreateRope(rs.ecs, l, *settings, newRand()); err != nil {
		panic("failed to build rope: " + err.Error())
	}

	rs.tuningUI = ui.NewTuningUI(settings, systems.GetOrCreatePause(rs.ecs), rs.reset, rs.nextLayout)
}

// loadLayout returns the requested bundled layout, falling back to the classic
// two-chain scene when bundled layouts cannot be read.
func (rs *RopeScene) loadLayout() *layout.Layout {
	l, err := assets.GetLayout(rs.layoutName)
	if err != nil {
		log.Printf("Warning: Could not load layout %q: %v", rs.layoutName, err)
		return factory.FallbackLayout()
	}
	return l
}

func newRand() *rand.Rand {
	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

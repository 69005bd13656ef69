// Command ropeterm runs a bundled layout in the terminal.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/verlet-chains/assets"
	"github.com/automoto/verlet-chains/layout"
	"github.com/automoto/verlet-chains/termview"
	"github.com/automoto/verlet-chains/verlet"
	"github.com/gdamore/tcell/v2"
)

type app struct {
	screen tcell.Screen
	sound  *sound
	seed   int64

	layoutName string
	sys        *verlet.System
	view       termview.View
	ticks      int
	paused     bool
	step       bool
}

func main() {
	layoutName := flag.String("layout", "", "Bundled layout to run (twin, curtain, pendulum)")
	seed := flag.Int64("seed", 0, "Jitter seed, 0 picks one from the clock")
	tps := flag.Int("tps", 30, "Simulation ticks per second")
	withSound := flag.Bool("sound", false, "Play a chime on reset")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	a := &app{screen: screen, seed: *seed}
	if *withSound {
		a.sound, err = newSound()
		if err != nil {
			// Non-fatal, the viewer runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	if err := a.load(*layoutName); err != nil {
		screen.Fini()
		log.Fatalf("Failed to load layout: %v", err)
	}

	a.run(time.Second / time.Duration(max(*tps, 1)))
	screen.Fini()
	os.Exit(0)
}

// load builds a fresh solver for the named layout.
func (a *app) load(name string) error {
	l, err := assets.GetLayout(name)
	if err != nil {
		return err
	}

	seed := a.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sys := verlet.New()
	if _, err := layout.Build(sys, l, rand.New(rand.NewSource(seed))); err != nil {
		return err
	}

	a.layoutName = l.Name
	a.sys = sys
	a.view = termview.View{WorldWidth: float64(l.Width), WorldHeight: float64(l.Height)}
	a.ticks = 0
	return nil
}

func (a *app) run(tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if !a.paused || a.step {
				a.sys.Update()
				a.ticks++
				a.step = false
			}
			a.draw()
		}
	}
}

// handleInput applies a key press. It returns false when the viewer should exit.
func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			a.paused = !a.paused
		case 'n':
			a.step = true
		case 'g':
			if a.sys.Gravity != 0 {
				a.sys.Gravity = 0
			} else {
				a.sys.Gravity = verlet.DefaultGravity
			}
		case 'r':
			a.reload(a.layoutName)
		case 'l':
			a.reload(assets.NextLayoutName(a.layoutName))
		}
	case *tcell.EventResize:
		a.screen.Sync()
	case nil:
		return false
	}
	return true
}

func (a *app) reload(name string) {
	gravity := a.sys.Gravity
	if err := a.load(name); err != nil {
		log.Printf("Failed to load layout %q: %v", name, err)
		return
	}
	a.sys.Gravity = gravity
	a.sound.chime()
}

func (a *app) draw() {
	a.screen.Clear()
	a.view.Draw(a.screen, a.sys, termview.Status{
		Layout: a.layoutName,
		Ticks:  a.ticks,
		Paused: a.paused,
		Sound:  a.sound != nil,
	})
	a.screen.Show()
}

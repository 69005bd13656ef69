package systems

import (
	"log"

	"github.com/automoto/verlet-chains/components"
	cfg "github.com/automoto/verlet-chains/config"
	"github.com/automoto/verlet-chains/shared/ropemath"
	"github.com/yohamta/donburi/ecs"
)

// sessionSettings carries tuning across scene rebuilds (reset, layout change)
var sessionSettings *components.SettingsData

// SceneActions are the callbacks a scene gives the settings system for the
// actions that need a new world.
type SceneActions struct {
	Reset      func()
	NextLayout func()
}

// NewUpdateSettings returns the system that handles tuning and toggle actions.
func NewUpdateSettings(actions SceneActions) ecs.System {
	return func(ecs *ecs.ECS) {
		settings := GetOrCreateSettings(ecs)
		input := getOrCreateInput(ecs)

		if GetAction(input, cfg.ActionToggleDebug).JustPressed {
			settings.Debug = !settings.Debug
		}
		if GetAction(input, cfg.ActionToggleSway).JustPressed {
			settings.Sway = !settings.Sway
		}
		if GetAction(input, cfg.ActionTogglePanel).JustPressed {
			settings.ShowPanel = !settings.ShowPanel
		}

		if GetAction(input, cfg.ActionGravityUp).JustPressed {
			AdjustGravity(settings, 1)
		}
		if GetAction(input, cfg.ActionGravityDown).JustPressed {
			AdjustGravity(settings, -1)
		}
		if GetAction(input, cfg.ActionDampingUp).JustPressed {
			AdjustDamping(settings, 1)
		}
		if GetAction(input, cfg.ActionDampingDown).JustPressed {
			AdjustDamping(settings, -1)
		}

		rememberSettings(settings)

		if GetAction(input, cfg.ActionSave).JustPressed {
			layoutName := ""
			if rope, ok := GetRope(ecs); ok {
				layoutName = rope.LayoutName
			}
			SaveCurrentSettings(settings, layoutName)
			log.Printf("Settings saved (damping %.2f, gravity %.2f)", settings.Damping, settings.Gravity)
		}

		if GetAction(input, cfg.ActionReset).JustPressed && actions.Reset != nil {
			actions.Reset()
			return
		}
		if GetAction(input, cfg.ActionNextLayout).JustPressed && actions.NextLayout != nil {
			actions.NextLayout()
		}
	}
}

// AdjustGravity steps gravity by one increment in direction dir within the configured bounds.
func AdjustGravity(s *components.SettingsData, dir int) {
	s.Gravity = ropemath.Step(s.Gravity, cfg.Verlet.GravityStep, dir, cfg.Verlet.MinGravity, cfg.Verlet.MaxGravity)
}

// AdjustDamping steps damping by one increment in direction dir within the configured bounds.
func AdjustDamping(s *components.SettingsData, dir int) {
	s.Damping = ropemath.Step(s.Damping, cfg.Verlet.DampingStep, dir, cfg.Verlet.MinDamping, cfg.Verlet.MaxDamping)
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
// New worlds start from the last session values, then saved values, then config defaults.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, initialSettings())
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

func initialSettings() components.SettingsData {
	if sessionSettings != nil {
		return *sessionSettings
	}
	return components.SettingsData{
		Damping: cfg.Verlet.Damping,
		Gravity: cfg.Verlet.Gravity,
		Debug:   cfg.Debug.ShowDebug,
	}
}

func rememberSettings(s *components.SettingsData) {
	if sessionSettings == nil {
		sessionSettings = &components.SettingsData{}
	}
	*sessionSettings = *s
}

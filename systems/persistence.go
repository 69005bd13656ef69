package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/verlet-chains/components"
	cfg "github.com/automoto/verlet-chains/config"
	"github.com/automoto/verlet-chains/shared/ropemath"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Damping   float64 `json:"damping"`
	Gravity   float64 `json:"gravity"`
	Debug     bool    `json:"debug"`
	Sway      bool    `json:"sway"`
	ShowPanel bool    `json:"showPanel"`
	Layout    string  `json:"layout,omitempty"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "verlet-chains",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings and the layout being shown
func SaveCurrentSettings(s *components.SettingsData, layoutName string) {
	saved := &SavedSettings{
		Damping:   s.Damping,
		Gravity:   s.Gravity,
		Debug:     s.Debug,
		Sway:      s.Sway,
		ShowPanel: s.ShowPanel,
		Layout:    layoutName,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before the first scene is created. Values outside the
// tuning bounds are clamped.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	sessionSettings = &components.SettingsData{
		Damping:   ropemath.Clamp(saved.Damping, cfg.Verlet.MinDamping, cfg.Verlet.MaxDamping),
		Gravity:   ropemath.Clamp(saved.Gravity, cfg.Verlet.MinGravity, cfg.Verlet.MaxGravity),
		Debug:     saved.Debug || cfg.Debug.ShowDebug,
		Sway:      saved.Sway,
		ShowPanel: saved.ShowPanel,
	}

	if cfg.Debug.Layout == "" {
		cfg.Debug.Layout = saved.Layout
	}
}

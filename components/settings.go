package components

import "github.com/yohamta/donburi"

// SettingsData holds the user-adjustable options that survive restarts
type SettingsData struct {
	Damping   float64
	Gravity   float64
	Debug     bool
	Sway      bool
	ShowPanel bool
}

var Settings = donburi.NewComponentType[SettingsData]()

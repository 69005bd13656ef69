package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. StepRequested advances one tick while paused.
type PauseData struct {
	IsPaused      bool
	StepRequested bool
}

var Pause = donburi.NewComponentType[PauseData]()

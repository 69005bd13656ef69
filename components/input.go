package components

import (
	cfg "github.com/automoto/verlet-chains/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	Cursor        math.Vec2
	MouseDown     bool
	PrevMouseDown bool

	// BlockPointer is set by the scene while the cursor is over the tuning panel
	BlockPointer bool
}

var Input = donburi.NewComponentType[InputData]()

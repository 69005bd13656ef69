package components

import (
	"github.com/automoto/verlet-chains/layout"
	"github.com/automoto/verlet-chains/verlet"
	"github.com/yohamta/donburi"
)

// RopeData owns the solver for the scene. There is one rope entity per world.
type RopeData struct {
	System     *verlet.System
	Built      *layout.Built
	LayoutName string
	Ticks      int
}

var Rope = donburi.NewComponentType[RopeData]()

package systems

import (
	"github.com/automoto/verlet-chains/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVerlet advances the solver one tick with the current tuning.
func UpdateVerlet(ecs *ecs.ECS) {
	rope, ok := GetRope(ecs)
	if !ok {
		return
	}
	settings := GetOrCreateSettings(ecs)

	rope.System.Damping = settings.Damping
	rope.System.Gravity = settings.Gravity
	rope.System.Update()
	rope.Ticks++
}

// GetRope returns the scene's rope, if one has been created.
func GetRope(ecs *ecs.ECS) (*components.RopeData, bool) {
	entry, ok := components.Rope.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Rope.Get(entry), true
}

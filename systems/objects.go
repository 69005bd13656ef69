package systems

import (
	"github.com/automoto/verlet-chains/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJointObjects moves each joint's pick box onto its solver point and
// refreshes its cell membership in the space.
func UpdateJointObjects(ecs *ecs.ECS) {
	rope, ok := GetRope(ecs)
	if !ok {
		return
	}

	components.Joint.Each(ecs.World, func(e *donburi.Entry) {
		joint := components.Joint.Get(e)
		p, err := rope.System.Point(joint.Index)
		if err != nil {
			return
		}
		obj := components.Object.Get(e)
		obj.X = p.Position.X - obj.W/2
		obj.Y = p.Position.Y - obj.H/2
		obj.Update()
	})
}

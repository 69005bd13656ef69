package factory

import (
	"github.com/automoto/verlet-chains/archetypes"
	"github.com/automoto/verlet-chains/components"
	cfg "github.com/automoto/verlet-chains/config"
	"github.com/automoto/verlet-chains/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the collision space used for mouse picking. The space
// entry also carries the cursor probe that is moved to the mouse each frame.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)

	size := cfg.Grab.PickRadius * 2
	probe := resolv.NewObject(0, 0, size, size, tags.ResolvCursor)
	probe.Data = space
	spaceData.Add(probe)
	components.Object.SetValue(space, components.ObjectData{Object: probe})

	return space
}

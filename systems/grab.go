package systems

import (
	"github.com/automoto/verlet-chains/components"
	cfg "github.com/automoto/verlet-chains/config"
	"github.com/automoto/verlet-chains/shared/ropemath"
	"github.com/automoto/verlet-chains/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable candidate buffer for picking
var pickCandidates []ropemath.Candidate

// UpdateGrab lets the mouse pick up a joint and drag it. A held joint is pinned
// and moved to the cursor each frame. Its previous position trails one frame
// behind, so releasing it keeps the throw velocity.
func UpdateGrab(ecs *ecs.ECS) {
	rope, ok := GetRope(ecs)
	if !ok {
		return
	}
	grab := getGrab(ecs)
	if grab == nil {
		return
	}
	input := getOrCreateInput(ecs)
	cursor := input.Cursor

	if grab.Active {
		p, err := rope.System.Point(grab.Index)
		if err != nil {
			grab.Active = false
			return
		}
		if !input.MouseDown {
			p.IsStatic = grab.WasStatic
			grab.Active = false
			if grab.WasStatic {
				MoveAnchorBase(ecs, grab.Index, p.Position.X, p.Position.Y)
			}
			return
		}
		p.PreviousPosition = p.Position
		p.Position.X, p.Position.Y = cursor.X, cursor.Y
		return
	}

	if input.BlockPointer || !input.MouseDown || input.PrevMouseDown {
		return
	}

	index, ok := pickJoint(ecs, cursor.X, cursor.Y)
	if !ok {
		return
	}
	p, err := rope.System.Point(index)
	if err != nil {
		return
	}
	grab.Active = true
	grab.Index = index
	grab.WasStatic = p.IsStatic
	p.IsStatic = true
}

// pickJoint moves the cursor probe to (x, y) and returns the nearest joint in reach.
func pickJoint(ecs *ecs.ECS, x, y float64) (int, bool) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return 0, false
	}
	probe := components.Object.Get(spaceEntry)
	probe.X = x - probe.W/2
	probe.Y = y - probe.H/2
	probe.Update()

	check := probe.Check(0, 0, tags.ResolvJoint)
	if check == nil {
		return 0, false
	}

	pickCandidates = pickCandidates[:0]
	for _, obj := range check.ObjectsByTags(tags.ResolvJoint) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		joint := components.Joint.Get(entry)
		pickCandidates = append(pickCandidates, ropemath.Candidate{
			Index: joint.Index,
			X:     obj.X + obj.W/2,
			Y:     obj.Y + obj.H/2,
		})
	}

	c, ok := ropemath.PickNearest(pickCandidates, x, y, cfg.Grab.PickRadius+cfg.Render.PointRadius)
	return c.Index, ok
}

// IsGrabbing reports whether the mouse currently holds joint index.
func IsGrabbing(ecs *ecs.ECS, index int) bool {
	grab := getGrab(ecs)
	return grab != nil && grab.Active && grab.Index == index
}

func getGrab(ecs *ecs.ECS) *components.GrabData {
	entry, ok := components.Grab.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Grab.Get(entry)
}

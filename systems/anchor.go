package systems

import (
	"github.com/automoto/verlet-chains/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnchors drives pinned chain tops along their sway tween. Anchors that
// have been unpinned or are held by the mouse are left alone.
func UpdateAnchors(ecs *ecs.ECS) {
	rope, ok := GetRope(ecs)
	if !ok {
		return
	}
	settings := GetOrCreateSettings(ecs)
	grab := getGrab(ecs)
	dt := float32(1.0 / float64(ebiten.TPS()))

	components.Anchor.Each(ecs.World, func(e *donburi.Entry) {
		anchor := components.Anchor.Get(e)
		if grab != nil && grab.Active && grab.Index == anchor.Index {
			return
		}
		p, err := rope.System.Point(anchor.Index)
		if err != nil || !p.IsStatic {
			return
		}

		if !settings.Sway {
			anchor.Sway.Reset()
			_ = rope.System.SetPosition(anchor.Index, anchor.BaseX, anchor.BaseY)
			return
		}

		offset, _, done := anchor.Sway.Update(dt)
		if done {
			anchor.Sway.Reset()
		}
		_ = rope.System.SetPosition(anchor.Index, anchor.BaseX+float64(offset), anchor.BaseY)
	})
}

// MoveAnchorBase re-centres the sway of the anchor driving index, if there is one.
func MoveAnchorBase(ecs *ecs.ECS, index int, x, y float64) {
	components.Anchor.Each(ecs.World, func(e *donburi.Entry) {
		anchor := components.Anchor.Get(e)
		if anchor.Index != index {
			return
		}
		anchor.BaseX, anchor.BaseY = x, y
		anchor.Sway.Reset()
	})
}

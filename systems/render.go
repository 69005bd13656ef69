package systems

import (
	"image/color"

	"github.com/automoto/verlet-chains/components"
	cfg "github.com/automoto/verlet-chains/config"
	"github.com/automoto/verlet-chains/shared/ropemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawRope draws every link as a line and every joint as a circle. Links go
// first so joints sit on top of them.
func DrawRope(ecs *ecs.ECS, screen *ebiten.Image) {
	rope, ok := GetRope(ecs)
	if !ok {
		return
	}
	sys := rope.System
	settings := GetOrCreateSettings(ecs)

	components.Link.Each(ecs.World, func(e *donburi.Entry) {
		link := components.Link.Get(e)
		a, errA := sys.Point(link.A)
		b, errB := sys.Point(link.B)
		if errA != nil || errB != nil {
			return
		}

		var clr color.Color = cfg.Render.LinkColor
		if settings.Debug {
			clr = linkColor(rope, link.Constraint)
		}
		vector.StrokeLine(screen,
			float32(a.Position.X), float32(a.Position.Y),
			float32(b.Position.X), float32(b.Position.Y),
			float32(link.Width), clr, true)
	})

	components.Joint.Each(ecs.World, func(e *donburi.Entry) {
		joint := components.Joint.Get(e)
		p, err := sys.Point(joint.Index)
		if err != nil {
			return
		}

		r, clr := joint.Radius, cfg.Render.PointColor
		switch {
		case IsGrabbing(ecs, joint.Index):
			r, clr = cfg.Render.AnchorRadius, cfg.Render.GrabColor
		case p.IsStatic:
			r, clr = cfg.Render.AnchorRadius, cfg.Render.AnchorColor
		}
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(r), clr, true)
	})
}

// linkColor tints a link by how far it is from its rest length.
func linkColor(rope *components.RopeData, constraint int) color.Color {
	c, err := rope.System.Constraint(constraint)
	if err != nil {
		return cfg.Render.LinkColor
	}
	current, err := rope.System.CurrentLength(constraint)
	if err != nil {
		return cfg.Render.LinkColor
	}

	stretch := ropemath.Stretch(current, c.RestLength())
	switch {
	case stretch > cfg.Render.StretchWarn:
		return cfg.Render.StretchedColor
	case stretch < -cfg.Render.StretchWarn:
		return cfg.Render.CompressedColor
	}
	return cfg.Render.LinkColor
}

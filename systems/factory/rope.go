package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/verlet-chains/archetypes"
	"github.com/automoto/verlet-chains/components"
	cfg "github.com/automoto/verlet-chains/config"
	"github.com/automoto/verlet-chains/layout"
	"github.com/automoto/verlet-chains/tags"
	"github.com/automoto/verlet-chains/verlet"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRope builds a solver from the layout and spawns the entities that draw it.
// Joint and link entities are spawned from the solver's hooks, so every point and
// constraint the layout adds gets a drawable without a second pass.
func CreateRope(ecs *ecs.ECS, l *layout.Layout, settings components.SettingsData, rng *rand.Rand) (*donburi.Entry, error) {
	rope := archetypes.Rope.Spawn(ecs)

	var space *resolv.Space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space = components.Space.Get(spaceEntry)
	}

	var sys *verlet.System
	sys = verlet.New(
		verlet.WithDamping(settings.Damping),
		verlet.WithGravity(settings.Gravity),
		verlet.WithHooks(verlet.Hooks{
			OnAddPoint: func(index int, x, y float64) {
				CreateJoint(ecs, space, index, x, y)
			},
			OnAddConstraint: func(a, b int) {
				CreateLink(ecs, sys.ConstraintCount()-1, a, b)
			},
		}),
	)

	built, err := layout.Build(sys, l, rng)
	if err != nil {
		return nil, fmt.Errorf("building layout %q: %w", l.Name, err)
	}

	for _, idx := range built.Anchors() {
		p, err := sys.Point(idx)
		if err != nil {
			return nil, err
		}
		if !p.IsStatic {
			continue
		}
		CreateAnchor(ecs, idx, p.Position.X, p.Position.Y)
	}

	components.Rope.SetValue(rope, components.RopeData{
		System:     sys,
		Built:      built,
		LayoutName: l.Name,
	})

	return rope, nil
}

// CreateJoint spawns the drawable for a solver point and registers it for picking.
func CreateJoint(ecs *ecs.ECS, space *resolv.Space, index int, x, y float64) *donburi.Entry {
	joint := archetypes.Joint.Spawn(ecs)
	r := cfg.Render.PointRadius

	obj := resolv.NewObject(x-r, y-r, r*2, r*2, tags.ResolvJoint)
	obj.Data = joint
	if space != nil {
		space.Add(obj)
	}

	components.Joint.SetValue(joint, components.JointData{Index: index, Radius: r})
	components.Object.SetValue(joint, components.ObjectData{Object: obj})

	return joint
}

// CreateLink spawns the drawable for a solver constraint.
func CreateLink(ecs *ecs.ECS, constraint, a, b int) *donburi.Entry {
	link := archetypes.Link.Spawn(ecs)
	components.Link.SetValue(link, components.LinkData{
		Constraint: constraint,
		A:          a,
		B:          b,
		Width:      cfg.Render.LineWidth,
	})
	return link
}

// FallbackLayout is the classic two-chain scene sized to the window, used when
// no bundled layout can be loaded.
func FallbackLayout() *layout.Layout {
	l := layout.Default(cfg.C.Width, cfg.C.Height)
	for i := range l.Chains {
		l.Chains[i].Points = cfg.Chain.Links
		l.Chains[i].Separation = cfg.Chain.Separation
		l.Chains[i].Chaos = cfg.Chain.Chaos
		l.Chains[i].Y = cfg.Chain.StartY
	}
	return l
}

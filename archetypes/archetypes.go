package archetypes

import (
	"github.com/automoto/verlet-chains/components"
	cfg "github.com/automoto/verlet-chains/config"
	"github.com/automoto/verlet-chains/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Rope = newArchetype(
		tags.Rope,
		components.Rope,
		components.Grab,
	)
	Joint = newArchetype(
		tags.Joint,
		components.Joint,
		components.Object,
	)
	Link = newArchetype(
		tags.Link,
		components.Link,
	)
	Anchor = newArchetype(
		tags.Anchor,
		components.Anchor,
	)
	Space = newArchetype(
		components.Space,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

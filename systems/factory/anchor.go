package factory

import (
	"github.com/automoto/verlet-chains/archetypes"
	"github.com/automoto/verlet-chains/components"
	cfg "github.com/automoto/verlet-chains/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAnchor spawns the driver for a pinned chain top. The sway is a
// sequence of offsets from the base position: out right, across, and back.
func CreateAnchor(ecs *ecs.ECS, index int, x, y float64) *donburi.Entry {
	anchor := archetypes.Anchor.Spawn(ecs)

	amp := cfg.Anchor.SwayAmplitude
	half := cfg.Anchor.SwayDuration / 2
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, amp, half, ease.InOutSine),
		gween.New(amp, -amp, cfg.Anchor.SwayDuration, ease.InOutSine),
		gween.New(-amp, 0, half, ease.InOutSine),
	)

	components.Anchor.SetValue(anchor, components.AnchorData{
		Index: index,
		BaseX: x,
		BaseY: y,
		Sway:  tw,
	})

	return anchor
}

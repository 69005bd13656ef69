package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AnchorData drives a pinned point back and forth around BaseX
type AnchorData struct {
	Index int
	BaseX float64
	BaseY float64
	Sway  *gween.Sequence
}

var Anchor = donburi.NewComponentType[AnchorData]()

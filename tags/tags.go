package tags

import "github.com/yohamta/donburi"

var (
	Rope   = donburi.NewTag().SetName("Rope")
	Joint  = donburi.NewTag().SetName("Joint")
	Link   = donburi.NewTag().SetName("Link")
	Anchor = donburi.NewTag().SetName("Anchor")
)

// Resolv tags for picking
const (
	ResolvJoint  = "joint"
	ResolvCursor = "cursor"
)

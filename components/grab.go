package components

import "github.com/yohamta/donburi"

// GrabData tracks the joint held by the mouse. WasStatic restores the pin on release.
type GrabData struct {
	Active    bool
	Index     int
	WasStatic bool
}

var Grab = donburi.NewComponentType[GrabData]()

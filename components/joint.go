package components

import "github.com/yohamta/donburi"

// JointData mirrors one solver point as a drawable circle
type JointData struct {
	Index  int
	Radius float64
}

var Joint = donburi.NewComponentType[JointData]()

// LinkData mirrors one solver constraint as a drawable line
type LinkData struct {
	Constraint int
	A, B       int
	Width      float64
}

var Link = donburi.NewComponentType[LinkData]()

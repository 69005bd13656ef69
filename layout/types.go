// Package layout describes how chains of points are arranged in a scene and
// builds them onto a verlet.System. It has no dependency on ebitengine or donburi,
// so the window client and the terminal viewer share it.
package layout

// Layout is a named arrangement of chains plus the ties joining their free ends.
type Layout struct {
	Name   string
	Width  int
	Height int
	Chains []Chain
	Ties   []Tie
}

// Chain is a vertical run of points starting at (X, Y). Each point sits
// Separation/2 below the previous one and is linked to it with rest length
// Separation, so a fresh chain starts slack and unfolds under gravity.
type Chain struct {
	Name       string
	X, Y       float64
	Points     int
	Separation float64
	Chaos      float64 // horizontal jitter range, centred on X
	Loose      bool    // first point is free instead of pinned
}

// Tie links the last point of From to the last point of To.
// A zero Length uses the horizontal distance between the two chain anchors.
type Tie struct {
	From   string
	To     string
	Length float64
}

const (
	DefaultPoints     = 10
	DefaultSeparation = 75.0
)

// Default reproduces the classic two-chain scene: chains at 1/5 and 4/5 of the
// width, ten points each, with their ends tied together.
func Default(width, height int) *Layout {
	const chainDistance = 5.0
	left := float64(width) / chainDistance
	right := float64(width) * (chainDistance - 1) / chainDistance

	return &Layout{
		Name:   "default",
		Width:  width,
		Height: height,
		Chains: []Chain{
			{Name: "left", X: left, Y: -10, Points: DefaultPoints, Separation: DefaultSeparation, Chaos: 40},
			{Name: "right", X: right, Y: -10, Points: DefaultPoints, Separation: DefaultSeparation, Chaos: 40},
		},
		Ties: []Tie{{From: "left", To: "right"}},
	}
}

// Chain returns the chain with the given name.
func (l *Layout) Chain(name string) (Chain, bool) {
	for _, c := range l.Chains {
		if c.Name == name {
			return c, true
		}
	}
	return Chain{}, false
}

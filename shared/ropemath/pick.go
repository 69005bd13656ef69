package ropemath

import "math"

// Candidate is a pickable joint: its solver index and centre.
type Candidate struct {
	Index int
	X, Y  float64
}

// PickNearest returns the candidate closest to (x, y) within radius.
// Ties go to the earlier candidate so picking is stable frame to frame.
func PickNearest(candidates []Candidate, x, y, radius float64) (Candidate, bool) {
	best := Candidate{}
	bestDist := math.Inf(1)
	found := false
	for _, c := range candidates {
		d := math.Hypot(c.X-x, c.Y-y)
		if d > radius || d >= bestDist {
			continue
		}
		best, bestDist, found = c, d, true
	}
	return best, found
}

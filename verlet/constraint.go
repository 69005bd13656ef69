package verlet

import "math"

// Constraint keeps two points at a fixed distance. Points are referenced by index.
type Constraint struct {
	A, B       int
	restLength float64
}

// RestLength is fixed when the constraint is created.
func (c Constraint) RestLength() float64 {
	return c.restLength
}

// relax applies one correction toward the rest length, writing straight into points.
// Coincident points have no direction to push along, so they are left untouched.
func (c Constraint) relax(points []Point) {
	p1 := &points[c.A]
	p2 := &points[c.B]

	dx := p2.Position.X - p1.Position.X
	dy := p2.Position.Y - p1.Position.Y

	currentLength := math.Sqrt(dx*dx + dy*dy)
	if currentLength == 0 {
		return
	}
	deviation := (currentLength - c.restLength) / currentLength * 0.5
	offsetX := deviation * dx
	offsetY := deviation * dy

	if !p1.IsStatic {
		p1.Position.X += offsetX
		p1.Position.Y += offsetY
	}
	if !p2.IsStatic {
		p2.Position.X -= offsetX
		p2.Position.Y -= offsetY
	}
}

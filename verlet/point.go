package verlet

// Point is a particle. Velocity is implied by Position - PreviousPosition.
type Point struct {
	Position         Vector2
	PreviousPosition Vector2
	IsStatic         bool
}

// Velocity returns the undamped displacement of the last tick.
func (p *Point) Velocity() Vector2 {
	return p.Position.Sub(p.PreviousPosition)
}

func (p *Point) integrate(damping, gravity float64) {
	velocity := p.Position.Sub(p.PreviousPosition).Scale(damping)
	p.PreviousPosition = p.Position
	p.Position = p.Position.Add(velocity)
	p.Position.Y += gravity
}

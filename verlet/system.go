package verlet

import (
	"fmt"
	"iter"
	"math"
)

const (
	DefaultDamping = 0.96
	DefaultGravity = 0.6

	// Iterations is the number of relaxation sweeps per Update.
	Iterations = 3
)

// Hooks are fired after the system is mutated. Nil fields are skipped.
type Hooks struct {
	OnAddPoint      func(index int, x, y float64)
	OnAddConstraint func(a, b int)
}

type Option func(*System)

func WithDamping(damping float64) Option {
	return func(s *System) { s.Damping = damping }
}

func WithGravity(gravity float64) Option {
	return func(s *System) { s.Gravity = gravity }
}

func WithHooks(hooks Hooks) Option {
	return func(s *System) { s.hooks = hooks }
}

// System owns the particles and constraints and advances them one tick per Update.
type System struct {
	// Damping is the fraction of last tick's displacement kept as velocity.
	Damping float64
	// Gravity is added to Y after the velocity step.
	Gravity float64

	points      []Point
	constraints []Constraint
	hooks       Hooks
}

func New(opts ...Option) *System {
	s := &System{
		Damping: DefaultDamping,
		Gravity: DefaultGravity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddPoint appends a free point at rest and returns its index.
func (s *System) AddPoint(x, y float64) int {
	pos := NewVector2(x, y)
	s.points = append(s.points, Point{Position: pos, PreviousPosition: pos})
	index := len(s.points) - 1
	if s.hooks.OnAddPoint != nil {
		s.hooks.OnAddPoint(index, x, y)
	}
	return index
}

// Point returns a mutable reference to the point at index.
// The pointer must not be held across AddPoint, which may grow the arena.
func (s *System) Point(index int) (*Point, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return &s.points[index], nil
}

func (s *System) SetStatic(index int, static bool) error {
	p, err := s.Point(index)
	if err != nil {
		return err
	}
	p.IsStatic = static
	return nil
}

// SetPosition moves a point without giving it velocity.
func (s *System) SetPosition(index int, x, y float64) error {
	p, err := s.Point(index)
	if err != nil {
		return err
	}
	p.Position = NewVector2(x, y)
	p.PreviousPosition = p.Position
	return nil
}

// AddConstraint links a and b at their current distance.
func (s *System) AddConstraint(a, b int) error {
	if err := s.checkPair(a, b); err != nil {
		return err
	}
	s.addConstraint(a, b, Distance(s.points[a].Position, s.points[b].Position))
	return nil
}

// AddConstraintLength links a and b with an explicit rest length.
func (s *System) AddConstraintLength(a, b int, length float64) error {
	if err := s.checkPair(a, b); err != nil {
		return err
	}
	s.addConstraint(a, b, length)
	return nil
}

func (s *System) addConstraint(a, b int, length float64) {
	s.constraints = append(s.constraints, Constraint{A: a, B: b, restLength: length})
	if s.hooks.OnAddConstraint != nil {
		s.hooks.OnAddConstraint(a, b)
	}
}

func (s *System) Constraint(index int) (Constraint, error) {
	if index < 0 || index >= len(s.constraints) {
		return Constraint{}, fmt.Errorf("verlet: constraint index %d out of range [0,%d)", index, len(s.constraints))
	}
	return s.constraints[index], nil
}

// CurrentLength returns the present distance between the ends of constraint index.
func (s *System) CurrentLength(index int) (float64, error) {
	c, err := s.Constraint(index)
	if err != nil {
		return 0, err
	}
	return Distance(s.points[c.A].Position, s.points[c.B].Position), nil
}

// MaxDeviation returns the largest |current - rest| over all constraints.
func (s *System) MaxDeviation() float64 {
	var worst float64
	for _, c := range s.constraints {
		d := math.Abs(Distance(s.points[c.A].Position, s.points[c.B].Position) - c.restLength)
		if d > worst {
			worst = d
		}
	}
	return worst
}

func (s *System) PointCount() int {
	return len(s.points)
}

func (s *System) ConstraintCount() int {
	return len(s.constraints)
}

// Points yields a copy of every point in index order.
func (s *System) Points() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, p := range s.points {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Constraints yields every constraint in the order it is relaxed.
func (s *System) Constraints() iter.Seq2[int, Constraint] {
	return func(yield func(int, Constraint) bool) {
		for i, c := range s.constraints {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Update advances the simulation by one tick: integrate every free point once,
// then run Iterations relaxation sweeps.
func (s *System) Update() {
	s.updatePoints()
	for i := 0; i < Iterations; i++ {
		s.constrain()
	}
}

func (s *System) updatePoints() {
	for i := range s.points {
		p := &s.points[i]
		if p.IsStatic {
			continue
		}
		p.integrate(s.Damping, s.Gravity)
	}
}

// constrain is one Gauss-Seidel sweep. Later constraints see corrections made by
// earlier ones in the same sweep, so list order matters.
func (s *System) constrain() {
	for _, c := range s.constraints {
		c.relax(s.points)
	}
}

func (s *System) checkIndex(index int) error {
	if index < 0 || index >= len(s.points) {
		return fmt.Errorf("%w: %d (have %d points)", ErrIndexOutOfRange, index, len(s.points))
	}
	return nil
}

func (s *System) checkPair(a, b int) error {
	if err := s.checkIndex(a); err != nil {
		return err
	}
	if err := s.checkIndex(b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("%w: %d", ErrSamePoint, a)
	}
	return nil
}

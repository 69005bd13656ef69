package layout

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/automoto/verlet-chains/verlet"
)

var (
	ErrUnknownChain = errors.New("layout: unknown chain")
	ErrEmptyChain   = errors.New("layout: chain needs at least one point")
)

// BuiltChain records the point indices a chain was given.
type BuiltChain struct {
	Name    string
	Anchor  int
	End     int
	Indices []int
}

type Built struct {
	Chains []BuiltChain
}

// Anchors returns the index of every chain's first point.
func (b *Built) Anchors() []int {
	anchors := make([]int, 0, len(b.Chains))
	for _, c := range b.Chains {
		anchors = append(anchors, c.Anchor)
	}
	return anchors
}

// Build adds the layout's points and constraints to sys. rng supplies the
// horizontal jitter; a nil rng places every point exactly on its chain's X.
func Build(sys *verlet.System, l *Layout, rng *rand.Rand) (*Built, error) {
	built := &Built{Chains: make([]BuiltChain, 0, len(l.Chains))}
	byName := make(map[string]BuiltChain, len(l.Chains))

	for _, c := range l.Chains {
		if c.Points < 1 {
			return nil, fmt.Errorf("chain %q: %w", c.Name, ErrEmptyChain)
		}

		bc := BuiltChain{Name: c.Name, Indices: make([]int, 0, c.Points)}
		for i := 0; i < c.Points; i++ {
			x := c.X
			if rng != nil {
				x += c.Chaos * (rng.Float64() - 0.5)
			}
			p := sys.AddPoint(x, c.Y+float64(i)*c.Separation/2)
			if i > 0 {
				if err := sys.AddConstraintLength(p, p-1, c.Separation); err != nil {
					return nil, fmt.Errorf("chain %q link %d: %w", c.Name, i, err)
				}
			} else if !c.Loose {
				if err := sys.SetStatic(p, true); err != nil {
					return nil, fmt.Errorf("chain %q anchor: %w", c.Name, err)
				}
			}
			bc.Indices = append(bc.Indices, p)
		}
		bc.Anchor = bc.Indices[0]
		bc.End = bc.Indices[len(bc.Indices)-1]

		built.Chains = append(built.Chains, bc)
		byName[c.Name] = bc
	}

	for _, tie := range l.Ties {
		from, ok := byName[tie.From]
		if !ok {
			return nil, fmt.Errorf("tie %s-%s: %w %q", tie.From, tie.To, ErrUnknownChain, tie.From)
		}
		to, ok := byName[tie.To]
		if !ok {
			return nil, fmt.Errorf("tie %s-%s: %w %q", tie.From, tie.To, ErrUnknownChain, tie.To)
		}

		length := tie.Length
		if length == 0 {
			a, _ := l.Chain(tie.From)
			b, _ := l.Chain(tie.To)
			length = math.Abs(b.X - a.X)
		}
		if err := sys.AddConstraintLength(from.End, to.End, length); err != nil {
			return nil, fmt.Errorf("tie %s-%s: %w", tie.From, tie.To, err)
		}
	}

	return built, nil
}

package layout

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/verlet-chains/verlet"
)

func TestDefaultMatchesClassicScene(t *testing.T) {
	l := Default(1000, 600)
	if len(l.Chains) != 2 || len(l.Ties) != 1 {
		t.Fatalf("default layout has %d chains and %d ties, want 2 and 1", len(l.Chains), len(l.Ties))
	}
	if l.Chains[0].X != 200 || l.Chains[1].X != 800 {
		t.Fatalf("chain x = %f, %f, want 200, 800", l.Chains[0].X, l.Chains[1].X)
	}
	for _, c := range l.Chains {
		if c.Points != 10 || c.Separation != 75 || c.Y != -10 || c.Loose {
			t.Fatalf("unexpected chain %+v", c)
		}
	}
}

func TestBuildWithoutJitter(t *testing.T) {
	sys := verlet.New()
	l := Default(1000, 600)

	built, err := Build(sys, l, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if sys.PointCount() != 20 {
		t.Fatalf("point count = %d, want 20", sys.PointCount())
	}
	// 9 links per chain plus the tie.
	if sys.ConstraintCount() != 19 {
		t.Fatalf("constraint count = %d, want 19", sys.ConstraintCount())
	}

	left := built.Chains[0]
	if left.Anchor != 0 || left.End != 9 || len(left.Indices) != 10 {
		t.Fatalf("left chain indices = %+v", left)
	}
	for i, idx := range left.Indices {
		p, _ := sys.Point(idx)
		want := verlet.NewVector2(200, -10+float64(i)*37.5)
		if p.Position != want {
			t.Fatalf("point %d at %v, want %v", i, p.Position, want)
		}
		if p.IsStatic != (i == 0) {
			t.Fatalf("point %d static = %v", i, p.IsStatic)
		}
	}

	c, _ := sys.Constraint(0)
	if c.A != 1 || c.B != 0 || c.RestLength() != 75 {
		t.Fatalf("first link = %+v rest %f, want 1->0 rest 75", c, c.RestLength())
	}
	tie, _ := sys.Constraint(sys.ConstraintCount() - 1)
	if tie.A != 9 || tie.B != 19 || tie.RestLength() != 600 {
		t.Fatalf("tie = %+v rest %f, want 9->19 rest 600", tie, tie.RestLength())
	}

	if got := built.Anchors(); len(got) != 2 || got[0] != 0 || got[1] != 10 {
		t.Fatalf("anchors = %v, want [0 10]", got)
	}
}

func TestBuildJitterIsBoundedAndSeeded(t *testing.T) {
	l := &Layout{Chains: []Chain{{Name: "a", X: 100, Points: 50, Separation: 10, Chaos: 40}}}

	positions := func(seed int64) []verlet.Vector2 {
		sys := verlet.New()
		if _, err := Build(sys, l, rand.New(rand.NewSource(seed))); err != nil {
			t.Fatalf("Build: %v", err)
		}
		var out []verlet.Vector2
		for _, p := range sys.Points() {
			out = append(out, p.Position)
		}
		return out
	}

	first := positions(7)
	for i, p := range first {
		if math.Abs(p.X-100) > 20 {
			t.Fatalf("point %d x = %f, outside jitter range", i, p.X)
		}
	}
	second := positions(7)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different point %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestBuildExplicitTieLengthAndLooseChain(t *testing.T) {
	sys := verlet.New()
	l := &Layout{
		Chains: []Chain{
			{Name: "a", X: 0, Points: 3, Separation: 10},
			{Name: "b", X: 50, Points: 2, Separation: 10, Loose: true},
		},
		Ties: []Tie{{From: "a", To: "b", Length: 12}},
	}
	built, err := Build(sys, l, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	p, _ := sys.Point(built.Chains[1].Anchor)
	if p.IsStatic {
		t.Fatalf("loose chain anchor should be free")
	}
	tie, _ := sys.Constraint(sys.ConstraintCount() - 1)
	if tie.RestLength() != 12 {
		t.Fatalf("tie rest length = %f, want 12", tie.RestLength())
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout *Layout
		want   error
	}{
		{
			name:   "empty chain",
			layout: &Layout{Chains: []Chain{{Name: "a", Points: 0}}},
			want:   ErrEmptyChain,
		},
		{
			name: "unknown tie target",
			layout: &Layout{
				Chains: []Chain{{Name: "a", Points: 2, Separation: 5}},
				Ties:   []Tie{{From: "a", To: "missing"}},
			},
			want: ErrUnknownChain,
		},
		{
			name: "tie to itself",
			layout: &Layout{
				Chains: []Chain{{Name: "a", Points: 2, Separation: 5}},
				Ties:   []Tie{{From: "a", To: "a", Length: 3}},
			},
			want: verlet.ErrSamePoint,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(verlet.New(), tt.layout, nil); !errors.Is(err, tt.want) {
				t.Fatalf("Build err = %v, want %v", err, tt.want)
			}
		})
	}
}

package verlet

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector2
		want float64
	}{
		{"same point", NewVector2(4, 4), NewVector2(4, 4), 0},
		{"horizontal", NewVector2(10, 100), NewVector2(100, 100), 90},
		{"3-4-5", NewVector2(0, 0), NewVector2(3, 4), 5},
		{"negative quadrant", NewVector2(-1, -1), NewVector2(-4, -5), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Fatalf("Distance(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
			if got := Distance(tt.b, tt.a); got != tt.want {
				t.Fatalf("Distance is not symmetric: got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestDistancePropagatesNaN(t *testing.T) {
	if d := Distance(NewVector2(math.NaN(), 0), NewVector2(0, 0)); !math.IsNaN(d) {
		t.Fatalf("expected NaN, got %f", d)
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := NewVector2(1.5, -2)
	b := NewVector2(0.5, 4)

	if got := a.Add(b); got != (Vector2{X: 2, Y: 2}) {
		t.Errorf("Add = %v, want {2 2}", got)
	}
	if got := a.Sub(b); got != (Vector2{X: 1, Y: -6}) {
		t.Errorf("Sub = %v, want {1 -6}", got)
	}
	if got := a.Scale(2); got != (Vector2{X: 3, Y: -4}) {
		t.Errorf("Scale = %v, want {3 -4}", got)
	}
	if a != NewVector2(1.5, -2) {
		t.Errorf("operands must not be modified, got %v", a)
	}
}

package ropemath

import (
	"math"
	"testing"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name           string
		value, step    float64
		dir            int
		min, max, want float64
	}{
		{"increase", 0.96, 0.01, 1, 0.8, 1.0, 0.97},
		{"decrease", 0.6, 0.1, -1, -2, 2, 0.5},
		{"no direction", 0.6, 0.1, 0, -2, 2, 0.6},
		{"clamp high", 0.995, 0.01, 1, 0.8, 1.0, 1.0},
		{"clamp low", -1.95, 0.1, -1, -2, 2, -2},
		{"zero step", 0.3, 0, 1, 0, 1, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Step(tt.value, tt.step, tt.dir, tt.min, tt.max)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Step = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestStepDoesNotDrift(t *testing.T) {
	v := 0.6
	for i := 0; i < 30; i++ {
		v = Step(v, 0.1, 1, -10, 10)
	}
	for i := 0; i < 30; i++ {
		v = Step(v, 0.1, -1, -10, 10)
	}
	if math.Abs(v-0.6) > 1e-9 {
		t.Fatalf("after 30 steps up and down got %.17f, want 0.6", v)
	}
}

func TestStretch(t *testing.T) {
	if got := Stretch(110, 100); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("Stretch(110, 100) = %f, want 0.1", got)
	}
	if got := Stretch(50, 100); got != -0.5 {
		t.Errorf("Stretch(50, 100) = %f, want -0.5", got)
	}
	if got := Stretch(5, 0); got != 0 {
		t.Errorf("Stretch with zero rest = %f, want 0", got)
	}
}

package ropemath

import "testing"

func TestPickNearest(t *testing.T) {
	candidates := []Candidate{
		{Index: 4, X: 100, Y: 100},
		{Index: 7, X: 110, Y: 100},
		{Index: 9, X: 300, Y: 300},
	}

	tests := []struct {
		name      string
		x, y      float64
		radius    float64
		wantIndex int
		wantFound bool
	}{
		{"closest of two in range", 108, 101, 20, 7, true},
		{"exact hit", 300, 300, 1, 9, true},
		{"nothing in range", 200, 200, 10, 0, false},
		{"tie keeps first", 105, 100, 10, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PickNearest(candidates, tt.x, tt.y, tt.radius)
			if ok != tt.wantFound {
				t.Fatalf("found = %v, want %v", ok, tt.wantFound)
			}
			if ok && got.Index != tt.wantIndex {
				t.Fatalf("picked %d, want %d", got.Index, tt.wantIndex)
			}
		})
	}

	if _, ok := PickNearest(nil, 0, 0, 100); ok {
		t.Fatalf("empty candidate list should pick nothing")
	}
}

package termview

import (
	"strings"
	"testing"

	"github.com/automoto/verlet-chains/verlet"
	"github.com/gdamore/tcell/v2"
)

// gridCanvas records the last rune written to each cell
type gridCanvas struct {
	cols, rows int
	cells      map[[2]int]rune
}

func newGridCanvas(cols, rows int) *gridCanvas {
	return &gridCanvas{cols: cols, rows: rows, cells: map[[2]int]rune{}}
}

func (g *gridCanvas) Size() (int, int) { return g.cols, g.rows }

func (g *gridCanvas) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	g.cells[[2]int{x, y}] = mainc
}

func (g *gridCanvas) at(x, y int) rune { return g.cells[[2]int{x, y}] }

func (g *gridCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < g.cols; x++ {
		r := g.at(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewCell(t *testing.T) {
	v := View{WorldWidth: 100, WorldHeight: 100}
	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"origin", 0, 0, 0, 0},
		{"middle", 55, 55, 5, 5},
		{"right edge", 99.9, 0, 9, 0},
		{"above the world", 10, -5, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := v.Cell(tt.x, tt.y, 10, 11)
			if cx != tt.cx || cy != tt.cy {
				t.Fatalf("Cell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, cx, cy, tt.cx, tt.cy)
			}
		})
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"single cell", 2, 2, 2, 2, [][2]int{{2, 2}}},
		{"horizontal", 0, 0, 3, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"reversed", 3, 0, 0, 0, [][2]int{{3, 0}, {2, 0}, {1, 0}, {0, 0}}},
		{"diagonal", 0, 0, 2, 2, [][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{"vertical up", 1, 2, 1, 0, [][2]int{{1, 2}, {1, 1}, {1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][2]int
			Line(tt.x0, tt.y0, tt.x1, tt.y1, func(x, y int) { got = append(got, [2]int{x, y}) })
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestDraw(t *testing.T) {
	sys := verlet.New()
	a := sys.AddPoint(0, 0)
	b := sys.AddPoint(90, 0)
	if err := sys.SetStatic(a, true); err != nil {
		t.Fatal(err)
	}
	if err := sys.AddConstraint(a, b); err != nil {
		t.Fatal(err)
	}

	canvas := newGridCanvas(10, 11)
	View{WorldWidth: 100, WorldHeight: 100}.Draw(canvas, sys, Status{Layout: "twin", Ticks: 7, Paused: true})

	if got := canvas.row(0); got != "#........o" {
		t.Fatalf("row 0 = %q, want %q", got, "#........o")
	}
	for y := 1; y < 10; y++ {
		if got := strings.TrimSpace(canvas.row(y)); got != "" {
			t.Fatalf("row %d = %q, want empty", y, got)
		}
	}
	if status := canvas.row(10); !strings.HasPrefix(status, "twin  tick") {
		t.Fatalf("status row = %q, want the layout readout", status)
	}
}

func TestDrawClipsOutsideWorld(t *testing.T) {
	sys := verlet.New()
	sys.AddPoint(-50, -50)
	sys.AddPoint(500, 500)

	canvas := newGridCanvas(10, 11)
	View{WorldWidth: 100, WorldHeight: 100}.Draw(canvas, sys, Status{})

	for cell := range canvas.cells {
		x, y := cell[0], cell[1]
		if x < 0 || y < 0 || x >= 10 || y >= 11 {
			t.Fatalf("wrote outside the canvas at (%d, %d)", x, y)
		}
		if y < 10 {
			t.Fatalf("unexpected scene cell at (%d, %d)", x, y)
		}
	}
}

func TestStatusLine(t *testing.T) {
	sys := verlet.New()
	line := StatusLine(sys, Status{Layout: "curtain", Ticks: 3, Paused: true, Sound: true})
	for _, want := range []string{"curtain", "tick 3", "damping 0.96", "gravity 0.60", "[paused]", "[sound]"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q missing %q", line, want)
		}
	}
	if strings.Contains(StatusLine(sys, Status{}), "[paused]") {
		t.Error("running status should not say paused")
	}
}

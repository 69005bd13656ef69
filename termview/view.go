// Package termview draws a verlet.System onto a character grid. The grid is
// anything that can report its size and set a cell, which a tcell.Screen does.
package termview

import (
	"fmt"
	"math"

	"github.com/automoto/verlet-chains/verlet"
	"github.com/gdamore/tcell/v2"
)

const (
	LinkRune   = '.'
	JointRune  = 'o'
	AnchorRune = '#'
)

var (
	LinkStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	JointStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	AnchorStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	StatusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Canvas is the subset of tcell.Screen the view draws on.
type Canvas interface {
	Size() (int, int)
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// Status is the one-line readout under the scene.
type Status struct {
	Layout string
	Ticks  int
	Paused bool
	Sound  bool
}

// View maps a world rectangle onto the canvas. The bottom row is kept for
// the status line.
type View struct {
	WorldWidth  float64
	WorldHeight float64
}

// Cell converts a world position to a grid cell for a canvas of cols x rows.
// Positions outside the world map outside the grid.
func (v View) Cell(x, y float64, cols, rows int) (int, int) {
	sceneRows := max(rows-1, 1)
	cx := int(math.Floor(x / v.WorldWidth * float64(cols)))
	cy := int(math.Floor(y / v.WorldHeight * float64(sceneRows)))
	return cx, cy
}

// Draw renders links, then joints, then the status line. It does not clear
// the canvas or show it.
func (v View) Draw(c Canvas, sys *verlet.System, status Status) {
	cols, rows := c.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	sceneRows := rows - 1

	put := func(x, y int, r rune, style tcell.Style) {
		if x < 0 || y < 0 || x >= cols || y >= sceneRows {
			return
		}
		c.SetContent(x, y, r, nil, style)
	}

	for _, con := range sys.Constraints() {
		a, errA := sys.Point(con.A)
		b, errB := sys.Point(con.B)
		if errA != nil || errB != nil {
			continue
		}
		x0, y0 := v.Cell(a.Position.X, a.Position.Y, cols, rows)
		x1, y1 := v.Cell(b.Position.X, b.Position.Y, cols, rows)
		Line(x0, y0, x1, y1, func(x, y int) { put(x, y, LinkRune, LinkStyle) })
	}

	for _, p := range sys.Points() {
		x, y := v.Cell(p.Position.X, p.Position.Y, cols, rows)
		if p.IsStatic {
			put(x, y, AnchorRune, AnchorStyle)
		} else {
			put(x, y, JointRune, JointStyle)
		}
	}

	drawText(c, 0, rows-1, cols, StatusLine(sys, status), StatusStyle)
}

// StatusLine formats the readout for the bottom row.
func StatusLine(sys *verlet.System, s Status) string {
	line := fmt.Sprintf("%s  tick %d  damping %.2f  gravity %.2f  dev %.2f",
		s.Layout, s.Ticks, sys.Damping, sys.Gravity, sys.MaxDeviation())
	if s.Paused {
		line += "  [paused]"
	}
	if s.Sound {
		line += "  [sound]"
	}
	return line + "  q quit  space pause  n step  r reset  g gravity  l layout"
}

func drawText(c Canvas, x, y, maxWidth int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= maxWidth {
			return
		}
		c.SetContent(x, y, r, nil, style)
		x++
	}
}

// Line calls plot for every cell on the segment from (x0, y0) to (x1, y1),
// both ends included.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

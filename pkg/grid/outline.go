package grid

import (
	"fmt"
	"strings"
	"time"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Outline is the closed rectilinear polygon tracing the boundary of one
// month's cells. It always has exactly eight vertices; consecutive
// vertices share either an X or a Y coordinate, and the last vertex
// closes back to the first. When the month starts and ends in the same
// week column the shape degenerates to a simple rectangle.
type Outline [8]Point

// MonthOutline computes the outline around every cell of the given month,
// scaled by cellSize.
//
// The path starts just right of the month's first day, steps around the
// partial week at the month start down to the grid bottom, runs right to
// the column of the month's last day, and steps back around the partial
// week at the month end up to the grid top.
//
// Vertices 1/2 sit at the first day's row, vertices 5/6 just below the
// last day's row. The last day is taken as the day before the first of
// the following month.
func MonthOutline(year int, month time.Month, cellSize float64) Outline {
	first := CellOf(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	// Day zero of the next month normalizes to the last day of this one.
	last := CellOf(time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC))

	cs := cellSize
	tw, td := float64(first.Week), float64(first.Day)
	nw, nd := float64(last.Week), float64(last.Day)

	return Outline{
		{(tw + 1) * cs, td * cs},
		{tw * cs, td * cs},
		{tw * cs, DaysPerWeek * cs},
		{nw * cs, DaysPerWeek * cs},
		{nw * cs, (nd + 1) * cs},
		{(nw + 1) * cs, (nd + 1) * cs},
		{(nw + 1) * cs, 0},
		{(tw + 1) * cs, 0},
	}
}

// Path renders the outline as SVG path data ("M x,y L x,y ... Z").
func (o Outline) Path() string {
	var b strings.Builder
	for i, p := range o {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s%s,%s", cmd, fmtCoord(p.X), fmtCoord(p.Y))
	}
	b.WriteString("Z")
	return b.String()
}

// fmtCoord trims trailing zeros so integral coordinates print compactly.
func fmtCoord(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

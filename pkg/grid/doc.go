// Package grid maps calendar dates onto a year's week/day grid.
//
// A year is laid out as one column per week and one row per weekday, the
// layout used by calendar heatmaps: column 0 is the week containing
// January 1, rows run Sunday (top) through Saturday (bottom). The
// package provides the cell coordinates and pixel offsets for any date,
// enumeration of a year's dates, and the eight-vertex rectilinear
// outline separating one month's cells from its neighbors.
//
// Everything here is a pure function of its inputs; there is no state
// and no error path. Typical use:
//
//	c := grid.CellOf(date)          // (week, day) indices
//	x, y := c.Pos(17)               // pixel offsets at 17px cells
//	o := grid.MonthOutline(2016, time.January, 17)
//	path := o.Path()                // SVG path data
package grid

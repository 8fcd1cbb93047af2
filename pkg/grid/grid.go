package grid

import "time"

// DaysPerWeek is the number of rows in a year grid (one per weekday).
const DaysPerWeek = 7

// Cell is a position in a year's week/day grid.
// Week is the 0-based week column; Day is the weekday row with
// 0=Sunday through 6=Saturday.
type Cell struct {
	Week int
	Day  int
}

// CellOf maps a date to its grid cell within the date's own year.
//
// Weeks are Sunday-aligned: the week containing January 1 is week 0
// regardless of which weekday January 1 falls on, and each Sunday starts
// the next column. The weekday row uses time's convention directly
// (Sunday is 0).
func CellOf(date time.Time) Cell {
	jan1 := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	return Cell{
		Week: (date.YearDay() - 1 + int(jan1.Weekday())) / DaysPerWeek,
		Day:  int(date.Weekday()),
	}
}

// Pos returns the cell's pixel offset for the given cell size.
// All coordinates scale linearly with cellSize.
func (c Cell) Pos(cellSize float64) (x, y float64) {
	return float64(c.Week) * cellSize, float64(c.Day) * cellSize
}

// Weeks returns the number of week columns needed to hold every day of
// year. This is 53 for most years and 54 for leap years that start on a
// Saturday (the last day lands in week index 53).
func Weeks(year int) int {
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return CellOf(dec31).Week + 1
}

// Dates returns every date of year from January 1 through December 31 in
// ascending order, at midnight UTC. The slice has 365 entries, or 366 in
// leap years.
func Dates(year int) []time.Time {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	next := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	dates := make([]time.Time, 0, 366)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

package grid

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCellOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Cell
	}{
		{"FirstDayMidweek", date(2016, time.January, 1), Cell{Week: 0, Day: 5}},
		{"FirstSundayStartsWeekOne", date(2016, time.January, 3), Cell{Week: 1, Day: 0}},
		{"LastDayOfJanuary", date(2016, time.January, 31), Cell{Week: 5, Day: 0}},
		{"LeapDay", date(2016, time.February, 29), Cell{Week: 9, Day: 1}},
		{"LastDayOfLeapYear", date(2016, time.December, 31), Cell{Week: 52, Day: 6}},
		{"YearStartingSunday", date(2017, time.January, 1), Cell{Week: 0, Day: 0}},
		{"YearEndingSunday", date(2017, time.December, 31), Cell{Week: 52, Day: 0}},
		{"MidYear", date(2015, time.July, 4), Cell{Week: 26, Day: 6}},
		{"SaturdayStartLeapYearOverflow", date(2000, time.December, 31), Cell{Week: 53, Day: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellOf(tt.date); got != tt.want {
				t.Errorf("CellOf(%s) = %+v, want %+v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestCellOfBounds(t *testing.T) {
	for year := 1999; year <= 2030; year++ {
		for _, d := range Dates(year) {
			c := CellOf(d)
			if c.Week < 0 || c.Week > 53 {
				t.Fatalf("CellOf(%s).Week = %d, want 0..53", d.Format("2006-01-02"), c.Week)
			}
			if c.Day < 0 || c.Day > 6 {
				t.Fatalf("CellOf(%s).Day = %d, want 0..6", d.Format("2006-01-02"), c.Day)
			}
		}
	}
}

func TestCellOfNoCollisions(t *testing.T) {
	// Every day of a year must land on its own cell.
	for _, year := range []int{2000, 2015, 2016, 2017, 2024} {
		seen := make(map[Cell]time.Time)
		for _, d := range Dates(year) {
			c := CellOf(d)
			if prev, ok := seen[c]; ok {
				t.Fatalf("year %d: %s and %s share cell %+v",
					year, prev.Format("2006-01-02"), d.Format("2006-01-02"), c)
			}
			seen[c] = d
		}
	}
}

func TestPos(t *testing.T) {
	c := CellOf(date(2016, time.January, 31))
	x, y := c.Pos(17)
	if x != 85 || y != 0 {
		t.Errorf("Pos(17) = (%v, %v), want (85, 0)", x, y)
	}

	// Offsets scale linearly with the cell size.
	x2, y2 := c.Pos(34)
	if x2 != 2*x || y2 != 2*y {
		t.Errorf("Pos(34) = (%v, %v), want (%v, %v)", x2, y2, 2*x, 2*y)
	}
}

func TestDates(t *testing.T) {
	tests := []struct {
		year string
		y    int
		want int
	}{
		{"CommonYear", 2015, 365},
		{"LeapYear", 2016, 366},
		{"CenturyLeapYear", 2000, 366},
		{"CenturyCommonYear", 1900, 365},
	}

	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			dates := Dates(tt.y)
			if len(dates) != tt.want {
				t.Fatalf("len(Dates(%d)) = %d, want %d", tt.y, len(dates), tt.want)
			}
			if first := dates[0]; !first.Equal(date(tt.y, time.January, 1)) {
				t.Errorf("first date = %s, want %d-01-01", first.Format("2006-01-02"), tt.y)
			}
			if last := dates[len(dates)-1]; !last.Equal(date(tt.y, time.December, 31)) {
				t.Errorf("last date = %s, want %d-12-31", last.Format("2006-01-02"), tt.y)
			}
			for i := 1; i < len(dates); i++ {
				if !dates[i].After(dates[i-1]) {
					t.Fatalf("dates not strictly ascending at index %d", i)
				}
			}
		})
	}
}

func TestDatesRestartable(t *testing.T) {
	a, b := Dates(2016), Dates(2016)
	if len(a) != len(b) {
		t.Fatalf("enumeration not repeatable: %d vs %d dates", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("enumeration differs at index %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestWeeks(t *testing.T) {
	tests := []struct {
		name string
		year int
		want int
	}{
		{"CommonYear", 2015, 53},
		{"LeapYearStartingFriday", 2016, 53},
		{"YearStartingSunday", 2017, 53},
		{"LeapYearStartingSaturday", 2000, 54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Weeks(tt.year); got != tt.want {
				t.Errorf("Weeks(%d) = %d, want %d", tt.year, got, tt.want)
			}
		})
	}
}

package series

import (
	"slices"
	"time"
)

// DateKeyFormat is the ISO date layout used to key entries.
const DateKeyFormat = "2006-01-02"

// Entry is one observation: a date, its numeric value, and an optional
// display label used for cell tooltips.
type Entry struct {
	Date  time.Time
	Value float64
	Label string
}

// Key returns the entry's ISO date key.
func (e Entry) Key() string { return e.Date.Format(DateKeyFormat) }

// Series holds a set of daily observations keyed by ISO date string.
// At most one entry exists per date; when an input contains duplicate
// dates, the first row wins.
type Series struct {
	entries map[string]Entry
	min     float64
	max     float64
}

// New creates an empty series.
func New() *Series {
	return &Series{entries: make(map[string]Entry)}
}

// Add inserts an entry unless its date is already present. It reports
// whether the entry was inserted.
func (s *Series) Add(e Entry) bool {
	key := e.Key()
	if _, ok := s.entries[key]; ok {
		return false
	}
	if len(s.entries) == 0 {
		s.min, s.max = e.Value, e.Value
	} else {
		s.min = min(s.min, e.Value)
		s.max = max(s.max, e.Value)
	}
	s.entries[key] = e
	return true
}

// Lookup returns the entry for a date, if one exists.
func (s *Series) Lookup(date time.Time) (Entry, bool) {
	e, ok := s.entries[date.Format(DateKeyFormat)]
	return e, ok
}

// Len returns the number of dated entries.
func (s *Series) Len() int { return len(s.entries) }

// Min returns the smallest value in the series (0 when empty).
func (s *Series) Min() float64 { return s.min }

// Max returns the largest value in the series (0 when empty).
func (s *Series) Max() float64 { return s.max }

// Years returns the distinct years covered by the series, ascending.
func (s *Series) Years() []int {
	seen := make(map[int]bool)
	for _, e := range s.entries {
		seen[e.Date.Year()] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	slices.Sort(years)
	return years
}

// Scale returns a ten-bucket quantize scale over the series' value
// extent.
func (s *Series) Scale() Quantize {
	return NewQuantize(s.min, s.max)
}

package heatmap

import (
	"encoding/json"
	"time"

	"github.com/calheat/calheat/pkg/grid"
	"github.com/calheat/calheat/pkg/series"
)

// Layout is the JSON export of a computed heatmap: per-year cell
// positions and month outline paths, plus the scale and cell size
// needed to reproduce the visual externally.
type Layout struct {
	CellSize float64      `json:"cell_size"`
	Scale    ScaleJSON    `json:"scale"`
	Years    []YearLayout `json:"years"`
}

// ScaleJSON describes the quantize scale used for bucket assignment.
type ScaleJSON struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Buckets int     `json:"buckets"`
}

// YearLayout holds one year's grid.
type YearLayout struct {
	Year   int         `json:"year"`
	Weeks  int         `json:"weeks"`
	Cells  []CellJSON  `json:"cells"`
	Months []MonthJSON `json:"months"`
}

// CellJSON is a single day cell. Value, Label and Bucket are only set
// for dates backed by a data row.
type CellJSON struct {
	Date   string   `json:"date"`
	Week   int      `json:"week"`
	Day    int      `json:"day"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Value  *float64 `json:"value,omitempty"`
	Label  string   `json:"label,omitempty"`
	Bucket *int     `json:"bucket,omitempty"`
}

// MonthJSON is one month's outline.
type MonthJSON struct {
	Month    int          `json:"month"`
	Path     string       `json:"path"`
	Vertices [][2]float64 `json:"vertices"`
}

// RenderJSON exports the layout for the same inputs RenderSVG draws.
func RenderJSON(s *series.Series, opts ...Option) ([]byte, error) {
	r := newRenderer(s, opts...)
	cs := r.theme.CellSize

	layout := Layout{
		CellSize: cs,
		Scale:    ScaleJSON{Min: r.scale.Min, Max: r.scale.Max, Buckets: r.scale.Buckets},
	}

	for _, year := range r.years {
		yl := YearLayout{Year: year, Weeks: grid.Weeks(year)}

		for _, date := range grid.Dates(year) {
			c := grid.CellOf(date)
			x, y := c.Pos(cs)
			cell := CellJSON{
				Date: date.Format(series.DateKeyFormat),
				Week: c.Week,
				Day:  c.Day,
				X:    x,
				Y:    y,
			}
			if e, ok := s.Lookup(date); ok {
				v := e.Value
				b := r.scale.Bucket(v)
				cell.Value = &v
				cell.Label = e.Label
				cell.Bucket = &b
			}
			yl.Cells = append(yl.Cells, cell)
		}

		for m := time.January; m <= time.December; m++ {
			o := grid.MonthOutline(year, m, cs)
			mj := MonthJSON{Month: int(m), Path: o.Path()}
			for _, p := range o {
				mj.Vertices = append(mj.Vertices, [2]float64{p.X, p.Y})
			}
			yl.Months = append(yl.Months, mj)
		}

		layout.Years = append(layout.Years, yl)
	}

	return json.MarshalIndent(layout, "", "  ")
}

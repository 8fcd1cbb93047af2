package heatmap

import (
	"bytes"
	"fmt"
	"time"

	"github.com/calheat/calheat/pkg/grid"
	"github.com/calheat/calheat/pkg/series"
	"github.com/calheat/calheat/pkg/theme"
)

// Option configures heatmap rendering.
type Option func(*renderer)

type renderer struct {
	theme    theme.Theme
	years    []int
	scale    series.Quantize
	scaleSet bool
}

// WithTheme overrides the default theme.
func WithTheme(t theme.Theme) Option { return func(r *renderer) { r.theme = t } }

// WithYears restricts rendering to the given years. Without this
// option, every year present in the series is rendered.
func WithYears(years ...int) Option { return func(r *renderer) { r.years = years } }

// WithScale overrides the bucket scale. Without this option the scale
// is derived from the series' value extent.
func WithScale(q series.Quantize) Option {
	return func(r *renderer) { r.scale = q; r.scaleSet = true }
}

// weekdayLabels are the row captions, Sunday first.
var weekdayLabels = [grid.DaysPerWeek]string{"S", "M", "T", "W", "T", "F", "S"}

// RenderSVG renders one grid per year: a rect per day (neutral fill
// when the series has no row for that date, bucket color otherwise,
// with the row's label as tooltip), month outline paths, and year,
// month and weekday captions. The optional legend shows the ten bucket
// swatches with the scale's extent.
func RenderSVG(s *series.Series, opts ...Option) []byte {
	r := newRenderer(s, opts...)
	g := r.geometry()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		fmtNum(g.width), fmtNum(g.height), g.width, g.height, r.theme.FontFamily)

	for i, year := range r.years {
		r.renderYear(&buf, g, i, year, s)
	}
	if r.theme.Legend {
		r.renderLegend(&buf, g)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newRenderer(s *series.Series, opts ...Option) renderer {
	r := renderer{theme: theme.Default()}
	for _, opt := range opts {
		opt(&r)
	}
	if len(r.years) == 0 {
		r.years = s.Years()
	}
	if !r.scaleSet {
		r.scale = s.Scale()
	}
	return r
}

// geom collects the derived pixel dimensions shared by all years.
type geom struct {
	cs      float64 // cell size
	gutter  float64 // left gutter for weekday captions
	header  float64 // per-year caption band above the grid
	gap     float64 // vertical gap between year blocks
	block   float64 // header + grid + gap
	width   float64
	height  float64
	legendY float64
}

func (r renderer) geometry() geom {
	cs := r.theme.CellSize
	g := geom{
		cs:     cs,
		gutter: 2 * cs,
		header: 2 * cs,
		gap:    cs,
	}
	g.block = g.header + grid.DaysPerWeek*cs + g.gap

	maxWeeks := 0
	for _, year := range r.years {
		maxWeeks = max(maxWeeks, grid.Weeks(year))
	}
	g.width = g.gutter + float64(maxWeeks)*cs + cs
	g.legendY = float64(len(r.years)) * g.block
	g.height = g.legendY
	if r.theme.Legend {
		g.height += 2 * cs
	}
	return g
}

func (r renderer) renderYear(buf *bytes.Buffer, g geom, index, year int, s *series.Series) {
	top := float64(index)*g.block + g.header
	fmt.Fprintf(buf, `  <g transform="translate(%s,%s)">`+"\n", fmtNum(g.gutter), fmtNum(top))

	// Captions sit above the grid, inside the translated group.
	fmt.Fprintf(buf, `    <text class="year" x="%s" y="%s" font-size="%s" font-weight="bold">%d</text>`+"\n",
		fmtNum(-g.gutter), fmtNum(-0.5*g.cs), fmtNum(0.9*g.cs), year)
	for m := time.January; m <= time.December; m++ {
		first := grid.CellOf(time.Date(year, m, 1, 0, 0, 0, 0, time.UTC))
		x := float64(first.Week+1) * g.cs
		fmt.Fprintf(buf, `    <text class="month-label" x="%s" y="%s" font-size="%s">%s</text>`+"\n",
			fmtNum(x), fmtNum(-0.5*g.cs), fmtNum(0.6*g.cs), m.String()[:3])
	}
	for day, label := range weekdayLabels {
		fmt.Fprintf(buf, `    <text class="weekday" x="%s" y="%s" font-size="%s" text-anchor="end">%s</text>`+"\n",
			fmtNum(-0.4*g.cs), fmtNum(float64(day)*g.cs+0.7*g.cs), fmtNum(0.6*g.cs), label)
	}

	for _, date := range grid.Dates(year) {
		r.renderDay(buf, g, date, s)
	}

	for m := time.January; m <= time.December; m++ {
		path := grid.MonthOutline(year, m, g.cs).Path()
		fmt.Fprintf(buf, `    <path class="month" d="%s" fill="none" stroke="%s"/>`+"\n", path, r.theme.Outline)
	}

	buf.WriteString("  </g>\n")
}

func (r renderer) renderDay(buf *bytes.Buffer, g geom, date time.Time, s *series.Series) {
	x, y := grid.CellOf(date).Pos(g.cs)
	key := date.Format(series.DateKeyFormat)

	e, ok := s.Lookup(date)
	if !ok {
		fmt.Fprintf(buf, `    <rect class="day" width="%s" height="%s" x="%s" y="%s" fill="%s"><title>%s</title></rect>`+"\n",
			fmtNum(g.cs), fmtNum(g.cs), fmtNum(x), fmtNum(y), r.theme.Neutral, key)
		return
	}

	bucket := r.scale.Bucket(e.Value)
	title := key
	if e.Label != "" {
		title = fmt.Sprintf("%s: %s", key, escapeText(e.Label))
	}
	fmt.Fprintf(buf, `    <rect class="day q%d" width="%s" height="%s" x="%s" y="%s" fill="%s"><title>%s</title></rect>`+"\n",
		bucket, fmtNum(g.cs), fmtNum(g.cs), fmtNum(x), fmtNum(y), r.theme.Palette[bucket], title)
}

func (r renderer) renderLegend(buf *bytes.Buffer, g geom) {
	y := g.legendY
	fmt.Fprintf(buf, `  <g class="legend" transform="translate(%s,%s)">`+"\n", fmtNum(g.gutter), fmtNum(y))
	fmt.Fprintf(buf, `    <text x="%s" y="%s" font-size="%s" text-anchor="end">%s</text>`+"\n",
		fmtNum(-0.4*g.cs), fmtNum(0.7*g.cs), fmtNum(0.6*g.cs), fmtNum(r.scale.Min))
	for i, color := range r.theme.Palette {
		fmt.Fprintf(buf, `    <rect width="%s" height="%s" x="%s" y="0" fill="%s"/>`+"\n",
			fmtNum(g.cs), fmtNum(g.cs), fmtNum(float64(i)*g.cs), color)
	}
	fmt.Fprintf(buf, `    <text x="%s" y="%s" font-size="%s">%s</text>`+"\n",
		fmtNum(float64(len(r.theme.Palette))*g.cs+0.4*g.cs), fmtNum(0.7*g.cs), fmtNum(0.6*g.cs), fmtNum(r.scale.Max))
	buf.WriteString("  </g>\n")
}

// fmtNum prints a coordinate or value without trailing zeros.
func fmtNum(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// escapeText replaces the XML-significant characters in tooltip text.
func escapeText(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

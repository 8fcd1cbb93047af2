// Package heatmap renders calendar heatmaps from a daily time series.
//
// # Overview
//
// A heatmap is one [grid] per year: a colored square per day, month
// boundary outlines, and captions. Days backed by a data row are
// filled with their quantize-bucket color; days without data get the
// theme's neutral fill. Output formats:
//
//   - SVG: the native format, generated directly
//   - JSON: layout export (cell positions, buckets, outline paths)
//   - PNG, PDF: converted from SVG via rsvg-convert (requires librsvg)
//
// # Usage
//
//	s, _ := series.ImportCSV("deploys.csv", series.Columns{})
//	svg := heatmap.RenderSVG(s,
//	    heatmap.WithTheme(th),
//	    heatmap.WithYears(2016, 2017),
//	)
//
// Options default sensibly: all years present in the series, the
// stock theme, and a scale spanning the series' value extent.
//
// [grid]: github.com/calheat/calheat/pkg/grid
package heatmap

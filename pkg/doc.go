// Package pkg provides the core libraries for calheat calendar heatmap
// rendering.
//
// # Overview
//
// calheat turns a CSV time series into calendar heatmaps: one grid per
// year with a week per column and a weekday per row, one colored cell
// per day, and an outline around each month. The pkg directory is
// organized as:
//
//  1. [grid] - Pure date-to-cell geometry and month outlines
//  2. [series] - CSV loading, date-keyed aggregation, bucket scale
//  3. [theme] - Palette, cell size, and TOML theme files
//  4. [heatmap] - SVG, JSON, PNG, and PDF sinks
//  5. [cache] - Content-hash keyed artifact cache (file, redis, null)
//  6. [pipeline] - Load → render orchestration shared by CLI and server
//
// # Architecture
//
// The typical data flow:
//
//	CSV time series
//	         ↓
//	    [series] package (parse, aggregate, quantize)
//	         ↓
//	    [grid] package (date → week/day cell, month outlines)
//	         ↓
//	    [heatmap] package (SVG/JSON/PNG/PDF)
//
// # Quick Start
//
// Load a series and render one SVG per year:
//
//	import (
//	    "os"
//
//	    "github.com/calheat/calheat/pkg/heatmap"
//	    "github.com/calheat/calheat/pkg/series"
//	)
//
//	s, _ := series.ImportCSV("commits.csv", series.Columns{})
//	svg := heatmap.RenderSVG(s)
//	os.WriteFile("commits.svg", svg, 0o644)
//
// The [pipeline] package wraps the same flow with format validation and
// artifact caching, and is what the CLI and the HTTP server use.
//
// [grid]: https://pkg.go.dev/github.com/calheat/calheat/pkg/grid
// [series]: https://pkg.go.dev/github.com/calheat/calheat/pkg/series
// [theme]: https://pkg.go.dev/github.com/calheat/calheat/pkg/theme
// [heatmap]: https://pkg.go.dev/github.com/calheat/calheat/pkg/heatmap
// [cache]: https://pkg.go.dev/github.com/calheat/calheat/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/calheat/calheat/pkg/pipeline
package pkg

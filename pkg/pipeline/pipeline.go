// Package pipeline orchestrates the load → aggregate → render flow
// shared by the CLI and the HTTP server. Centralizing it keeps both
// entry points rendering identically and gives them a common artifact
// cache.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/calheat/calheat/pkg/cache"
	"github.com/calheat/calheat/pkg/errors"
	"github.com/calheat/calheat/pkg/heatmap"
	"github.com/calheat/calheat/pkg/series"
	"github.com/calheat/calheat/pkg/theme"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// DefaultPNGScale is the raster scale factor used when none is given.
const DefaultPNGScale = 2.0

// Options selects what the pipeline loads and renders.
type Options struct {
	// Input is the CSV file path.
	Input string
	// Columns maps CSV header names; zero value uses the defaults.
	Columns series.Columns
	// Years restricts rendering; empty renders every year present.
	Years []int
	// Formats lists the outputs to produce (svg, png, pdf, json).
	Formats []string
	// Theme configures the visual appearance.
	Theme theme.Theme
	// PNGScale is the raster scale factor (0 uses DefaultPNGScale).
	PNGScale float64
	// TTL bounds the cache lifetime of produced artifacts.
	TTL time.Duration
}

// Result carries the loaded series and the rendered artifacts by
// format.
type Result struct {
	Series    *series.Series
	Artifacts map[string][]byte
	CacheHits int
	Elapsed   time.Duration
}

// Runner executes pipelines against a shared artifact cache.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil cache disables caching; a
// nil logger discards output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cache: c, logger: logger}
}

// Load reads and aggregates the CSV at path. The returned hash
// identifies the raw input bytes and keys cached artifacts.
func (r *Runner) Load(path string, cols series.Columns) (*series.Series, string, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	s, err := series.ReadCSV(bytes.NewReader(raw), cols)
	if err != nil {
		return nil, "", err
	}

	r.logger.Debug("loaded series", "path", path, "rows", s.Len(), "years", s.Years())
	return s, cache.Hash(raw), nil
}

// Execute runs the complete pipeline: load the input, then render each
// requested format, consulting the artifact cache first.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	for _, f := range opts.Formats {
		if !ValidFormats[f] {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", f)
		}
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []string{FormatSVG}
	}

	s, datasetHash, err := r.Load(opts.Input, opts.Columns)
	if err != nil {
		return nil, err
	}

	years := opts.Years
	if len(years) == 0 {
		years = s.Years()
	}

	result := &Result{
		Series:    s,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, hit, err := r.render(ctx, s, datasetHash, years, format, opts)
		if err != nil {
			return nil, err
		}
		if hit {
			result.CacheHits++
		}
		result.Artifacts[format] = data
	}

	result.Elapsed = time.Since(start)
	r.logger.Debug("pipeline complete",
		"formats", opts.Formats, "cache_hits", result.CacheHits, "elapsed", result.Elapsed)
	return result, nil
}

// RenderYear renders a single year in one format, for per-year serving.
func (r *Runner) RenderYear(ctx context.Context, s *series.Series, datasetHash string, year int, format string, opts Options) ([]byte, bool, error) {
	found := false
	for _, y := range s.Years() {
		if y == year {
			found = true
			break
		}
	}
	if !found {
		return nil, false, errors.New(errors.ErrCodeYearNotFound, "no data for year %d", year)
	}
	scoped := opts
	scoped.Years = []int{year}
	return r.render(ctx, s, datasetHash, scoped.Years, format, scoped)
}

// render produces one artifact, going through the cache.
func (r *Runner) render(ctx context.Context, s *series.Series, datasetHash string, years []int, format string, opts Options) ([]byte, bool, error) {
	if opts.Theme.CellSize == 0 {
		opts.Theme = theme.Default()
	}
	key := cache.ArtifactKey(datasetHash, yearsKey(years), format, themeHash(opts.Theme))

	if data, ok, err := r.cache.Get(ctx, key); err != nil {
		r.logger.Warn("cache get failed", "err", err)
	} else if ok {
		r.logger.Debug("cache hit", "format", format, "years", years)
		return data, true, nil
	}

	renderOpts := []heatmap.Option{
		heatmap.WithTheme(opts.Theme),
		heatmap.WithYears(years...),
		heatmap.WithScale(s.Scale()),
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data = heatmap.RenderSVG(s, renderOpts...)
	case FormatJSON:
		data, err = heatmap.RenderJSON(s, renderOpts...)
	case FormatPNG:
		scale := opts.PNGScale
		if scale <= 0 {
			scale = DefaultPNGScale
		}
		data, err = heatmap.RenderPNG(s, scale, renderOpts...)
	case FormatPDF:
		data, err = heatmap.RenderPDF(s, renderOpts...)
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
	if err != nil {
		return nil, false, err
	}

	if err := r.cache.Set(ctx, key, data, opts.TTL); err != nil {
		r.logger.Warn("cache set failed", "err", err)
	}
	return data, false, nil
}

// yearsKey folds the year selection into the cache key.
func yearsKey(years []int) int {
	k := 0
	for _, y := range years {
		k = k*10007 + y
	}
	return k
}

// themeHash fingerprints everything about the theme that changes the
// output.
func themeHash(t theme.Theme) string {
	data, _ := json.Marshal(t)
	return cache.Hash(data)
}

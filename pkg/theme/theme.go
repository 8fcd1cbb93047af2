// Package theme holds the visual configuration for heatmap rendering:
// the ten-bucket color palette, the neutral color for days without
// data, cell sizing and fonts. Themes are loaded from TOML files and
// validated before use.
package theme

import (
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/calheat/calheat/pkg/errors"
	"github.com/calheat/calheat/pkg/series"
)

// Theme configures how a heatmap is drawn.
type Theme struct {
	// CellSize is the edge length of one day cell in pixels.
	CellSize float64 `toml:"cell_size"`

	// Palette is the bucket-indexed fill color list. It must have
	// exactly as many entries as the quantize scale has buckets.
	Palette []string `toml:"palette"`

	// Neutral fills cells whose date has no data row.
	Neutral string `toml:"neutral"`

	// Outline strokes the month boundary paths.
	Outline string `toml:"outline"`

	// FontFamily is used for year, month and weekday labels.
	FontFamily string `toml:"font_family"`

	// Legend toggles the bucket swatch legend under the grids.
	Legend bool `toml:"legend"`
}

// Default returns the stock theme: 17px cells and a red-to-green
// diverging palette over a light neutral.
func Default() Theme {
	return Theme{
		CellSize: 17,
		Palette: []string{
			"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee08b",
			"#d9ef8b", "#a6d96a", "#66bd63", "#1a9850", "#006837",
		},
		Neutral:    "#eeeeee",
		Outline:    "#000000",
		FontFamily: "sans-serif",
		Legend:     true,
	}
}

// Load reads a TOML theme file. Fields missing from the file keep
// their default values; the merged result is validated.
func Load(path string) (Theme, error) {
	t := Default()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decode %s", path)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks the theme is renderable: positive cell size, a full
// palette, and well-formed hex colors.
func (t Theme) Validate() error {
	if t.CellSize <= 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "cell_size must be positive, got %v", t.CellSize)
	}
	if len(t.Palette) != series.DefaultBuckets {
		return errors.New(errors.ErrCodeInvalidTheme, "palette needs %d colors, got %d", series.DefaultBuckets, len(t.Palette))
	}
	for i, c := range t.Palette {
		if !colorPattern.MatchString(c) {
			return errors.New(errors.ErrCodeInvalidTheme, "palette[%d]: %q is not a #rrggbb color", i, c)
		}
	}
	for name, c := range map[string]string{"neutral": t.Neutral, "outline": t.Outline} {
		if !colorPattern.MatchString(c) {
			return errors.New(errors.ErrCodeInvalidTheme, "%s: %q is not a #rrggbb color", name, c)
		}
	}
	return nil
}

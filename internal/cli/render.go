package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calheat/calheat/pkg/pipeline"
	"github.com/calheat/calheat/pkg/series"
	"github.com/calheat/calheat/pkg/theme"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string  // output file path (or base path for multiple formats)
	themePath string  // TOML theme file
	cellSize  float64 // cell size override in pixels
	noLegend  bool    // suppress the bucket legend
	pngScale  float64 // raster scale factor for PNG output
	dateCol   string  // CSV date column name
	valueCol  string  // CSV value column name
	labelCol  string  // CSV label column name
}

// newRenderCmd creates the render command for generating heatmap files.
// It supports multiple output formats (SVG, PNG, PDF, JSON) and writes
// one file per format.
func newRenderCmd() *cobra.Command {
	var formatsStr, yearsStr string
	opts := renderOpts{pngScale: pipeline.DefaultPNGScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a CSV time series to heatmap file(s)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			years, err := parseYears(yearsStr)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], formats, years, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&yearsStr, "years", "", "restrict to specific years (comma-separated)")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "TOML theme file")
	cmd.Flags().Float64Var(&opts.cellSize, "cell-size", 0, "cell size in pixels (overrides theme)")
	cmd.Flags().BoolVar(&opts.noLegend, "no-legend", false, "omit the bucket legend")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", opts.pngScale, "raster scale factor for PNG output")
	cmd.Flags().StringVar(&opts.dateCol, "date-col", "", "CSV date column name (default \"date\")")
	cmd.Flags().StringVar(&opts.valueCol, "value-col", "", "CSV value column name (default \"value\")")
	cmd.Flags().StringVar(&opts.labelCol, "label-col", "", "CSV label column name (default \"label\")")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !pipeline.ValidFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'png', 'pdf', or 'json')", f)
		}
	}
	return nil
}

// parseYears parses the --years flag into a sorted slice of years.
func parseYears(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	years := make([]int, 0, len(parts))
	for _, p := range parts {
		y, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid year: %s", p)
		}
		years = append(years, y)
	}
	return years, nil
}

// loadTheme resolves the effective theme from flags: the TOML file if
// given, the stock theme otherwise, with flag overrides applied last.
func loadTheme(opts *renderOpts) (theme.Theme, error) {
	t := theme.Default()
	if opts.themePath != "" {
		loaded, err := theme.Load(opts.themePath)
		if err != nil {
			return theme.Theme{}, err
		}
		t = loaded
	}
	if opts.cellSize > 0 {
		t.CellSize = opts.cellSize
	}
	if opts.noLegend {
		t.Legend = false
	}
	return t, nil
}

// basePath derives the base output path from the output and input file
// paths. If output is empty, it strips the extension from input. If
// output has a format extension (.svg, .png, etc.), it strips that
// extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the CSV, renders every requested format, and writes
// one file per format.
func runRender(ctx context.Context, input string, formats []string, years []int, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)
	prog := newProgress(logger)

	t, err := loadTheme(opts)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:    input,
		Columns:  series.Columns{Date: opts.dateCol, Value: opts.valueCol, Label: opts.labelCol},
		Years:    years,
		Formats:  formats,
		Theme:    t,
		PNGScale: opts.pngScale,
	})
	if err != nil {
		return err
	}
	logger.Infof("Loaded series: %d rows, years %v", result.Series.Len(), result.Series.Years())

	base := basePath(opts.output, input)
	for _, format := range formats {
		path := base + "." + format
		if len(formats) == 1 && opts.output != "" {
			path = opts.output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	prog.done(fmt.Sprintf("Rendered %d format(s)", len(formats)))
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/calheat/calheat/pkg/grid"
	"github.com/calheat/calheat/pkg/series"
	"github.com/calheat/calheat/pkg/theme"
)

// newPreviewCmd creates the preview command, which draws the heatmap
// directly in the terminal using background-colored cells.
func newPreviewCmd() *cobra.Command {
	var year int
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Preview a heatmap in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), args[0], year, &opts)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year to preview (default: latest year in the data)")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "TOML theme file")
	cmd.Flags().StringVar(&opts.dateCol, "date-col", "", "CSV date column name (default \"date\")")
	cmd.Flags().StringVar(&opts.valueCol, "value-col", "", "CSV value column name (default \"value\")")
	cmd.Flags().StringVar(&opts.labelCol, "label-col", "", "CSV label column name (default \"label\")")

	return cmd
}

func runPreview(ctx context.Context, input string, year int, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	s, err := series.ImportCSV(input, series.Columns{Date: opts.dateCol, Value: opts.valueCol, Label: opts.labelCol})
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d rows across years %v", s.Len(), s.Years())

	t, err := loadTheme(opts)
	if err != nil {
		return err
	}

	if year == 0 {
		years := s.Years()
		year = years[len(years)-1]
	} else if !hasYear(s, year) {
		return fmt.Errorf("no data for year %d (have %v)", year, s.Years())
	}

	fmt.Println(previewYear(s, t, year))
	return nil
}

// hasYear reports whether the series has any row in the given year.
func hasYear(s *series.Series, year int) bool {
	for _, y := range s.Years() {
		if y == year {
			return true
		}
	}
	return false
}

// previewYear draws one year as a block of background-colored cells,
// one terminal row per weekday.
func previewYear(s *series.Series, t theme.Theme, year int) string {
	scale := s.Scale()
	weeks := grid.Weeks(year)

	// cells[day][week] holds the rendered two-column block per date.
	var cells [grid.DaysPerWeek][]string
	for day := range cells {
		row := make([]string, weeks+1)
		for i := range row {
			row[i] = "  "
		}
		cells[day] = row
	}

	neutral := lipgloss.NewStyle().Background(lipgloss.Color(t.Neutral))
	for _, date := range grid.Dates(year) {
		c := grid.CellOf(date)
		style := neutral
		if e, ok := s.Lookup(date); ok {
			style = lipgloss.NewStyle().Background(lipgloss.Color(t.Palette[scale.Bucket(e.Value)]))
		}
		cells[c.Day][c.Week] = style.Render("  ")
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%d", year)))
	b.WriteString("\n")
	b.WriteString(monthHeader(year, weeks))
	b.WriteString("\n")
	for day := range cells {
		b.WriteString(StyleDim.Render(weekdayInitial(day) + " "))
		b.WriteString(strings.Join(cells[day], ""))
		b.WriteString("\n")
	}
	if t.Legend {
		b.WriteString(legendLine(t, scale))
	}
	return b.String()
}

// monthHeader places each month's three-letter abbreviation above the
// week column of its first day.
func monthHeader(year, weeks int) string {
	cols := make([]byte, (weeks+1)*2)
	for i := range cols {
		cols[i] = ' '
	}
	for m := time.January; m <= time.December; m++ {
		first := grid.CellOf(time.Date(year, m, 1, 0, 0, 0, 0, time.UTC))
		name := m.String()[:3]
		copy(cols[first.Week*2:], name)
	}
	return StyleDim.Render("  " + string(cols))
}

// weekdayInitial returns the single-letter row caption, Sunday first.
func weekdayInitial(day int) string {
	return [grid.DaysPerWeek]string{"S", "M", "T", "W", "T", "F", "S"}[day]
}

// legendLine draws the bucket swatches with the scale extent.
func legendLine(t theme.Theme, scale series.Quantize) string {
	var b strings.Builder
	b.WriteString(StyleDim.Render(fmt.Sprintf("\n  %g ", scale.Min)))
	for _, color := range t.Palette {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  "))
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf(" %g\n", scale.Max)))
	return b.String()
}

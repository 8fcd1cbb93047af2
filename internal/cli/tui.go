package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/calheat/calheat/pkg/series"
	"github.com/calheat/calheat/pkg/theme"
)

// newTUICmd creates the tui command, an interactive year browser for a
// dataset.
func newTUICmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "tui [file]",
		Short: "Browse the dataset's years interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := series.ImportCSV(args[0], series.Columns{Date: opts.dateCol, Value: opts.valueCol, Label: opts.labelCol})
			if err != nil {
				return err
			}
			t, err := loadTheme(&opts)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newYearBrowserModel(s, t))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&opts.themePath, "theme", "", "TOML theme file")
	cmd.Flags().StringVar(&opts.dateCol, "date-col", "", "CSV date column name (default \"date\")")
	cmd.Flags().StringVar(&opts.valueCol, "value-col", "", "CSV value column name (default \"value\")")
	cmd.Flags().StringVar(&opts.labelCol, "label-col", "", "CSV label column name (default \"label\")")

	return cmd
}

// yearBrowserModel is the bubbletea model for stepping through a
// dataset one year at a time.
type yearBrowserModel struct {
	series *series.Series
	theme  theme.Theme
	years  []int
	cursor int
}

func newYearBrowserModel(s *series.Series, t theme.Theme) yearBrowserModel {
	return yearBrowserModel{
		series: s,
		theme:  t,
		years:  s.Years(),
	}
}

func (m yearBrowserModel) Init() tea.Cmd {
	return nil
}

func (m yearBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < len(m.years)-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			m.cursor = len(m.years) - 1
		}
	}
	return m, nil
}

func (m yearBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(previewYear(m.series, m.theme, m.years[m.cursor]))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ switch year  q quit"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.years))))
	b.WriteString("\n")

	return b.String()
}

package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single", "png", []string{"png"}},
		{"multiple", "svg,json", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"svg", "png", "pdf", "json"}); err != nil {
		t.Errorf("all valid formats rejected: %v", err)
	}
	if err := validateFormats([]string{"svg", "gif"}); err == nil {
		t.Error("invalid format accepted")
	}
}

func TestParseYears(t *testing.T) {
	years, err := parseYears("2016, 2017")
	if err != nil {
		t.Fatalf("parseYears: %v", err)
	}
	if len(years) != 2 || years[0] != 2016 || years[1] != 2017 {
		t.Errorf("years = %v", years)
	}

	if years, err := parseYears(""); err != nil || years != nil {
		t.Errorf("empty input = %v, %v", years, err)
	}

	if _, err := parseYears("twenty16"); err == nil {
		t.Error("non-numeric year accepted")
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "data.csv", "data"},
		{"strip format extension", "out.svg", "data.csv", "out"},
		{"keep other extensions", "out.backup", "data.csv", "out.backup"},
		{"plain base", "heat", "data.csv", "heat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadThemeOverrides(t *testing.T) {
	got, err := loadTheme(&renderOpts{cellSize: 20, noLegend: true})
	if err != nil {
		t.Fatal(err)
	}
	if got.CellSize != 20 {
		t.Errorf("cell size = %v, want 20", got.CellSize)
	}
	if got.Legend {
		t.Error("legend should be disabled")
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("cell_size = 12\nneutral = \"#ffffff\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := loadTheme(&renderOpts{themePath: path})
	if err != nil {
		t.Fatal(err)
	}
	if got.CellSize != 12 {
		t.Errorf("cell size = %v, want 12", got.CellSize)
	}
	if got.Neutral != "#ffffff" {
		t.Errorf("neutral = %q", got.Neutral)
	}
}

func TestRunRenderWritesFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.csv")
	csv := "date,value\n2016-01-01,1\n2016-06-15,5\n"
	if err := os.WriteFile(input, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := renderOpts{output: filepath.Join(dir, "out.svg")}
	if err := runRender(context.Background(), input, []string{"svg"}, nil, &opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	data, err := os.ReadFile(opts.output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output is not SVG")
	}
}

func TestRunRenderMultipleFormats(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.csv")
	csv := "date,value\n2016-01-01,1\n"
	if err := os.WriteFile(input, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := renderOpts{}
	if err := runRender(context.Background(), input, []string{"svg", "json"}, nil, &opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	for _, ext := range []string{".svg", ".json"} {
		path := filepath.Join(dir, "data"+ext)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing output %s: %v", path, err)
		}
	}
}

package heatmap

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/calheat/calheat/pkg/series"
)

// RenderPNG renders the heatmap as PNG at the given scale factor
// (2.0 doubles the pixel density). Conversion goes through
// rsvg-convert, so librsvg must be installed.
func RenderPNG(s *series.Series, scale float64, opts ...Option) ([]byte, error) {
	return rsvgConvert(RenderSVG(s, opts...), "png", "-z", fmt.Sprintf("%.2f", scale))
}

// RenderPDF renders the heatmap as a print-ready PDF via rsvg-convert.
func RenderPDF(s *series.Series, opts ...Option) ([]byte, error) {
	return rsvgConvert(RenderSVG(s, opts...), "pdf")
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}

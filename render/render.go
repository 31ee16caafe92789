// Package render draws chart configurations server-side with go-chart, for
// places where no browser runs Chart.js (exports, previews, e-mail).
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"chartkit/axis"
	"chartkit/chartjs"
)

var (
	ErrUnsupported = errors.New("unsupported chart type")
	// ErrNoSlices is returned for pie and doughnut charts without a single
	// non-zero value, which have nothing to draw.
	ErrNoSlices = errors.New("chart has no non-zero slice")
)

type Format int

const (
	PNG Format = iota
	SVG
)

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

// ContentType is the MIME type of images in format f.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// ParseFormat accepts "png" and "svg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	default:
		return PNG, fmt.Errorf("unknown image format %q", s)
	}
}

type Size struct {
	Width  int
	Height int
}

var DefaultSize = Size{Width: 1024, Height: 512}

func (s Size) orDefault() Size {
	if s.Width <= 0 {
		s.Width = DefaultSize.Width
	}
	if s.Height <= 0 {
		s.Height = DefaultSize.Height
	}
	return s
}

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Render draws cfg to w.
func Render(w io.Writer, cfg chartjs.Config, format Format, size Size) error {
	size = size.orDefault()

	if cfg.IsRadial() && !hasSlice(cfg) {
		return fmt.Errorf("%w: %s", ErrNoSlices, cfg.Type)
	}

	var r renderable
	switch cfg.Type {
	case chartjs.TypeBar:
		r = barChart(cfg, size)
	case chartjs.TypeLine:
		r = lineChart(cfg, size)
	case chartjs.TypePie:
		r = pieChart(cfg, size)
	case chartjs.TypeDoughnut:
		r = donutChart(cfg, size)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupported, cfg.Type)
	}

	if err := r.Render(format.provider(), w); err != nil {
		return fmt.Errorf("render %s chart: %w", cfg.Type, err)
	}
	return nil
}

func PNGTo(w io.Writer, cfg chartjs.Config, size Size) error {
	return Render(w, cfg, PNG, size)
}

func SVGTo(w io.Writer, cfg chartjs.Config, size Size) error {
	return Render(w, cfg, SVG, size)
}

// valueAxis is the y axis for bar and line charts. It reuses the bounds in
// the configuration and falls back to computing them from the data.
func valueAxis(cfg chartjs.Config) chart.YAxis {
	r, step := axis.Scale(cfg.Series())
	var title string
	if _, s, ok := cfg.ValueScale(); ok {
		if s.Min != nil {
			r.Min = *s.Min
		}
		if s.Max != nil {
			r.Max = *s.Max
		}
		if s.Ticks != nil && s.Ticks.StepSize > 0 {
			step = s.Ticks.StepSize
		}
		if s.Title != nil && s.Title.Display {
			title = s.Title.Text
		}
	}

	var ticks []chart.Tick
	for _, v := range axis.Ticks(r, step) {
		label, _ := axis.TickLabel(v)
		ticks = append(ticks, chart.Tick{Value: v, Label: label})
	}

	return chart.YAxis{
		Name:  title,
		Range: &chart.ContinuousRange{Min: r.Min, Max: r.Max},
		Ticks: ticks,
	}
}

// hasSlice reports whether the dataset drawn by pieChart and donutChart
// holds a value other than zero.
func hasSlice(cfg chartjs.Config) bool {
	if len(cfg.Data.Datasets) == 0 {
		return false
	}
	for _, v := range cfg.Data.Datasets[0].Data {
		if v != 0 {
			return true
		}
	}
	return false
}

func title(cfg chartjs.Config) string {
	if t := cfg.Options.Plugins.Title; t != nil && t.Display {
		return t.Text
	}
	return ""
}

// color converts a "#rrggbb" string. Anything else yields fallback.
func color(s string, fallback drawing.Color) drawing.Color {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 4) {
		return fallback
	}
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

// colorAt picks the i-th entry of a dataset color field, which holds either
// a single string or one string per point.
func colorAt(v any, i int) string {
	switch c := v.(type) {
	case string:
		return c
	case []string:
		if i < len(c) {
			return c[i]
		}
	}
	return ""
}

func paletteColor(i int) drawing.Color {
	return color(chartjs.PaletteColor(i), drawing.ColorBlue)
}

// Package echarts renders chart configurations as standalone ECharts pages,
// an alternative to Chart.js for the same presets.
package echarts

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"chartkit/axis"
	"chartkit/chartjs"
)

var ErrUnsupported = errors.New("unsupported chart type")

// doughnutRadius is the inner/outer radius pair that turns a pie into a ring.
var doughnutRadius = []string{"40%", "75%"}

// Render writes an HTML page showing cfg to w.
func Render(w io.Writer, cfg chartjs.Config) error {
	var r interface{ Render(io.Writer) error }
	switch cfg.Type {
	case chartjs.TypeBar:
		r = barChart(cfg)
	case chartjs.TypeLine:
		r = lineChart(cfg)
	case chartjs.TypePie, chartjs.TypeDoughnut:
		r = pieChart(cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupported, cfg.Type)
	}

	if err := r.Render(w); err != nil {
		return fmt.Errorf("render %s echart: %w", cfg.Type, err)
	}
	return nil
}

// bounds returns min, max and the number of splits of the value axis.
func bounds(cfg chartjs.Config) (float64, float64, int) {
	r, step := axis.Scale(cfg.Series())
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
	}
	return r.Min, r.Max, len(axis.Ticks(r, step)) - 1
}

func globalOpts(cfg chartjs.Config) []charts.GlobalOpts {
	legend := cfg.Options.Plugins.Legend
	out := []charts.GlobalOpts{
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(legend.Display),
			TextStyle: textStyle(cfg),
		}),
	}
	if t := cfg.Options.Plugins.Title; t != nil && t.Display {
		out = append(out, charts.WithTitleOpts(opts.Title{
			Title:      t.Text,
			TitleStyle: textStyle(cfg),
		}))
	}
	return out
}

// textStyle carries the theme font and color over to ECharts.
func textStyle(cfg chartjs.Config) *opts.TextStyle {
	style := &opts.TextStyle{Color: cfg.Options.Color}
	if f := cfg.Options.Font; f != nil {
		style.FontFamily = f.Family
		style.FontSize = f.Size
	}
	return style
}

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

func barChart(cfg chartjs.Config) *charts.Bar {
	lo, hi, splits := bounds(cfg)
	horizontal := cfg.Options.IndexAxis == "y"

	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(cfg)...)
	if horizontal {
		bar.SetGlobalOptions(charts.WithXAxisOpts(opts.XAxis{Min: lo, Max: hi, SplitNumber: splits}))
	} else {
		bar.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Min: lo, Max: hi, SplitNumber: splits}))
	}

	bar.SetXAxis(cfg.Data.Labels)
	for di, ds := range cfg.Data.Datasets {
		items := make([]opts.BarData, len(ds.Data))
		for i, v := range ds.Data {
			items[i] = opts.BarData{Value: v}
			if c := colorAt(ds.BackgroundColor, i); c != "" {
				items[i].ItemStyle = &opts.ItemStyle{Color: c}
			}
		}
		bar.AddSeries(seriesName(ds, di), items)
	}

	if horizontal {
		bar.XYReversal()
	}
	return bar
}

func lineChart(cfg chartjs.Config) *charts.Line {
	lo, hi, splits := bounds(cfg)

	line := charts.NewLine()
	line.SetGlobalOptions(globalOpts(cfg)...)
	line.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Min: lo, Max: hi, SplitNumber: splits}))

	line.SetXAxis(cfg.Data.Labels)
	for di, ds := range cfg.Data.Datasets {
		items := make([]opts.LineData, len(ds.Data))
		for i, v := range ds.Data {
			items[i] = opts.LineData{Value: v}
		}
		line.AddSeries(seriesName(ds, di), items,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(ds.Tension > 0)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorAt(ds.BorderColor, 0)}),
		)
	}
	return line
}

func pieChart(cfg chartjs.Config) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOpts(cfg)...)
	pie.SetGlobalOptions(charts.WithTooltipOpts(opts.Tooltip{
		Show:      opts.Bool(true),
		Trigger:   "item",
		Formatter: "{b}: {c} ({d}%)",
	}))

	if len(cfg.Data.Datasets) == 0 {
		return pie
	}
	ds := cfg.Data.Datasets[0]

	items := make([]opts.PieData, len(ds.Data))
	for i, v := range ds.Data {
		name := ""
		if i < len(cfg.Data.Labels) {
			name = cfg.Data.Labels[i]
		}
		items[i] = opts.PieData{Name: name, Value: v}
		if c := colorAt(ds.BackgroundColor, i); c != "" {
			items[i].ItemStyle = &opts.ItemStyle{Color: c}
		}
	}

	pieOpts := opts.PieChart{}
	if cfg.Type == chartjs.TypeDoughnut {
		pieOpts.Radius = doughnutRadius
	}
	pie.AddSeries(seriesName(ds, 0), items, charts.WithPieChartOpts(pieOpts))
	return pie
}

func seriesName(ds chartjs.Dataset, i int) string {
	if ds.Label != "" {
		return ds.Label
	}
	return fmt.Sprintf("Series %d", i+1)
}

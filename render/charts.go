package render

import (
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"chartkit/chartjs"
)

// barChart draws one bar per value. Grouped charts are laid out category
// by category with one bar per dataset, labelled once per group. Bars are
// always vertical; go-chart has no horizontal bar chart.
func barChart(cfg chartjs.Config, size Size) chart.BarChart {
	var bars []chart.Value
	for li, label := range cfg.Data.Labels {
		for di, ds := range cfg.Data.Datasets {
			if li >= len(ds.Data) {
				continue
			}
			barLabel := label
			if di > 0 {
				barLabel = ""
			}
			fill := color(colorAt(ds.BackgroundColor, li), paletteColor(di))
			bars = append(bars, chart.Value{
				Label: barLabel,
				Value: ds.Data[li],
				Style: chart.Style{FillColor: fill, StrokeColor: fill},
			})
		}
	}

	barWidth := 0
	if n := len(bars); n > 0 {
		barWidth = size.Width / (n * 2)
		if barWidth > 60 {
			barWidth = 60
		}
	}

	return chart.BarChart{
		Title:    title(cfg),
		Width:    size.Width,
		Height:   size.Height,
		BarWidth: barWidth,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: valueAxis(cfg),
		Bars:  bars,
	}
}

// lineChart plots every dataset against the label positions 0..n-1.
func lineChart(cfg chartjs.Config, size Size) *chart.Chart {
	n := len(cfg.Data.Labels)
	xTicks := make([]chart.Tick, n)
	for i, label := range cfg.Data.Labels {
		xTicks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	xMax := float64(n - 1)
	if xMax < 1 {
		xMax = 1
	}

	var xName string
	if x, ok := cfg.Options.Scales["x"]; ok && x.Title != nil && x.Title.Display {
		xName = x.Title.Text
	}

	graph := &chart.Chart{
		Title:  title(cfg),
		Width:  size.Width,
		Height: size.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20},
		},
		XAxis: chart.XAxis{
			Name:  xName,
			Range: &chart.ContinuousRange{Min: 0, Max: xMax},
			Ticks: xTicks,
		},
		YAxis: valueAxis(cfg),
	}

	for di, ds := range cfg.Data.Datasets {
		xs := make([]float64, len(ds.Data))
		for i := range xs {
			xs[i] = float64(i)
		}
		stroke := color(colorAt(ds.BorderColor, 0), paletteColor(di))
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ds.Data,
			Style: chart.Style{
				StrokeColor: stroke,
				StrokeWidth: 2,
				DotColor:    stroke,
				DotWidth:    4,
			},
		})
	}

	if cfg.Options.Plugins.Legend.Display {
		graph.Elements = []chart.Renderable{chart.Legend(graph)}
	}
	return graph
}

// sliceValues labels each slice with its value and share, since a static
// image has no tooltip to hover.
func sliceValues(cfg chartjs.Config) []chart.Value {
	if len(cfg.Data.Datasets) == 0 {
		return nil
	}
	ds := cfg.Data.Datasets[0]

	values := make([]chart.Value, 0, len(ds.Data))
	for i, v := range ds.Data {
		label := strconv.Itoa(i + 1)
		if i < len(cfg.Data.Labels) {
			label = cfg.Data.Labels[i]
		}
		fill := color(colorAt(ds.BackgroundColor, i), paletteColor(i))
		values = append(values, chart.Value{
			Label: chartjs.SliceTooltip(label, v, ds.Data),
			Value: v,
			Style: chart.Style{FillColor: fill},
		})
	}
	return values
}

func pieChart(cfg chartjs.Config, size Size) chart.PieChart {
	return chart.PieChart{
		Title:  title(cfg),
		Width:  size.Width,
		Height: size.Height,
		Values: sliceValues(cfg),
	}
}

func donutChart(cfg chartjs.Config, size Size) chart.DonutChart {
	return chart.DonutChart{
		Title:  title(cfg),
		Width:  size.Width,
		Height: size.Height,
		Values: sliceValues(cfg),
	}
}

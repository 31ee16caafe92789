package chartjs

import "chartkit/axis"

// DefaultBarLabel names the dataset of a horizontal bar chart when the
// caller gives none.
const DefaultBarLabel = "Score"

type BarOptions struct {
	Title     string
	DataLabel string
	// Color is used for every bar unless Colors is set.
	Color string
	// Colors gives one color per bar and wins over Color.
	Colors []string
}

// HorizontalBarConfig returns a horizontal bar chart of a single series.
// The value axis (x) starts at zero and ends at the computed range maximum.
func HorizontalBarConfig(theme Theme, labels []string, data []float64, opts BarOptions) Config {
	dataLabel := opts.DataLabel
	if dataLabel == "" {
		dataLabel = DefaultBarLabel
	}

	colors := opts.Colors
	if len(colors) == 0 {
		colors = []string{opts.Color}
	}
	background := FillColors(len(data), colors...)

	r, step := axis.Scale(axis.Single(data))

	x := valueScale(r, step)
	x.BeginAtZero = boolPtr(true)
	x.Title = &ScaleTitle{Display: true, Text: dataLabel}
	x.Grid = hiddenGrid()

	cfg := Config{
		Type: TypeBar,
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:              dataLabel,
				Data:               data,
				BackgroundColor:    background,
				BorderRadius:       4,
				BorderSkipped:      boolPtr(false),
				BarPercentage:      0.8,
				CategoryPercentage: 0.8,
			}},
		},
		Options: Options{
			Responsive: true,
			IndexAxis:  "y",
			Scales: map[string]Scale{
				"x": x,
				"y": {
					Title: &ScaleTitle{Display: false},
					Grid:  hiddenGrid(),
				},
			},
			Plugins: Plugins{
				Title:  titleFor(opts.Title),
				Legend: Legend{Display: false},
			},
		},
	}
	theme.apply(&cfg.Options)
	return cfg
}

package chartjs

import "chartkit/axis"

const (
	DefaultLineYTitle = "Score"
	DefaultLineXTitle = "Year"
)

// Series is one named sequence of values with an optional color.
type Series struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
	Color string    `json:"color,omitempty"`
}

type LineOptions struct {
	Title  string
	XTitle string
	YTitle string
}

// seriesInput turns datasets into the axis input: all series together.
func seriesInput(datasets []Series) axis.Series {
	data := make([][]float64, len(datasets))
	for i, ds := range datasets {
		data[i] = ds.Data
	}
	return axis.Multi(data...)
}

// LineConfig returns a line chart, typically an evolution over time.
// Series without a color are drawn in Primary.
func LineConfig(theme Theme, labels []string, datasets []Series, opts LineOptions) Config {
	yTitle := opts.YTitle
	if yTitle == "" {
		yTitle = DefaultLineYTitle
	}
	xTitle := opts.XTitle
	if xTitle == "" {
		xTitle = DefaultLineXTitle
	}

	r, step := axis.Scale(seriesInput(datasets))

	chartDatasets := make([]Dataset, len(datasets))
	for i, ds := range datasets {
		color := seriesColor(ds.Color, Primary)
		chartDatasets[i] = Dataset{
			Label:            ds.Label,
			Data:             ds.Data,
			BorderColor:      color,
			BackgroundColor:  color,
			Tension:          0.4,
			Fill:             boolPtr(false),
			PointRadius:      4,
			PointHoverRadius: 6,
		}
	}

	y := valueScale(r, step)
	y.BeginAtZero = boolPtr(false)
	y.Title = &ScaleTitle{Display: true, Text: yTitle}
	y.Grid = hiddenGrid()

	cfg := Config{
		Type: TypeLine,
		Data: Data{
			Labels:   labels,
			Datasets: chartDatasets,
		},
		Options: Options{
			Responsive: true,
			Scales: map[string]Scale{
				"y": y,
				"x": {
					Title: &ScaleTitle{Display: true, Text: xTitle},
					Grid:  hiddenGrid(),
					Ticks: &Ticks{
						Callback:  CallbackIntegerTicks,
						Precision: intPtr(0),
					},
				},
			},
			Plugins: Plugins{
				Title:  titleFor(opts.Title),
				Legend: Legend{Display: true, Position: "top"},
			},
		},
	}
	theme.apply(&cfg.Options)
	return cfg
}

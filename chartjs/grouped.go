package chartjs

import "chartkit/axis"

type GroupedBarOptions struct {
	Title string
}

// GroupedBarConfig returns a vertical bar chart with one bar group per
// label and one bar per series inside each group. Series without a color
// take the palette entry for their position.
func GroupedBarConfig(theme Theme, labels []string, datasets []Series, opts GroupedBarOptions) Config {
	r, step := axis.Scale(seriesInput(datasets))

	chartDatasets := make([]Dataset, len(datasets))
	for i, ds := range datasets {
		color := seriesColor(ds.Color, PaletteColor(i))
		chartDatasets[i] = Dataset{
			Label:              ds.Label,
			Data:               ds.Data,
			BackgroundColor:    color,
			BorderColor:        color,
			BorderWidth:        1,
			BorderRadius:       4,
			BarPercentage:      0.9,
			CategoryPercentage: 0.8,
		}
	}

	y := valueScale(r, step)
	y.BeginAtZero = boolPtr(true)
	y.Grid = &Grid{Color: "rgba(0,0,0,0.05)"}

	cfg := Config{
		Type: TypeBar,
		Data: Data{
			Labels:   labels,
			Datasets: chartDatasets,
		},
		Options: Options{
			Responsive:          true,
			MaintainAspectRatio: boolPtr(true),
			Scales: map[string]Scale{
				"x": {
					Grid: hiddenGrid(),
					Ticks: &Ticks{
						AutoSkip:    boolPtr(false),
						MaxRotation: intPtr(0),
						MinRotation: intPtr(0),
						Font:        &Font{Size: 11},
					},
				},
				"y": y,
			},
			Plugins: Plugins{
				Title: titleFor(opts.Title),
				Legend: Legend{
					Display:  true,
					Position: "top",
					Labels:   &LegendLabels{UsePointStyle: true},
				},
			},
		},
	}
	theme.apply(&cfg.Options)
	return cfg
}

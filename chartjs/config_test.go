package chartjs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizontalBarConfig(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name     string
		labels   []string
		data     []float64
		opts     BarOptions
		validate func(t *testing.T, cfg Config)
	}{
		{
			name:   "defaults",
			labels: []string{"Oxford", "MIT", "ETH"},
			data:   []float64{95, 90, 80},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, TypeBar, cfg.Type)
				assert.Equal(t, "y", cfg.Options.IndexAxis)
				assert.False(t, cfg.Options.Plugins.Legend.Display)

				require.Len(t, cfg.Data.Datasets, 1)
				ds := cfg.Data.Datasets[0]
				assert.Equal(t, DefaultBarLabel, ds.Label)
				assert.Equal(t, []string{Primary, Primary, Primary}, ds.BackgroundColor)
				assert.Equal(t, 4, ds.BorderRadius)
				assert.Equal(t, 0.8, ds.BarPercentage)

				x := cfg.Options.Scales["x"]
				assert.Equal(t, 0.0, *x.Min)
				assert.Equal(t, 100.0, *x.Max)
				assert.Equal(t, 20.0, x.Ticks.StepSize)
				assert.Equal(t, CallbackIntegerTicks, x.Ticks.Callback)
				assert.Equal(t, 0, *x.Ticks.Precision)
				assert.True(t, *x.BeginAtZero)
				assert.Equal(t, DefaultBarLabel, x.Title.Text)
				assert.False(t, *x.Grid.Display)
			},
		},
		{
			name:   "single color repeated",
			labels: []string{"A", "B"},
			data:   []float64{1, 2},
			opts:   BarOptions{Color: Success, DataLabel: "Teaching"},
			validate: func(t *testing.T, cfg Config) {
				ds := cfg.Data.Datasets[0]
				assert.Equal(t, []string{Success, Success}, ds.BackgroundColor)
				assert.Equal(t, "Teaching", ds.Label)
				assert.Equal(t, "Teaching", cfg.Options.Scales["x"].Title.Text)
			},
		},
		{
			name:   "per bar colors win",
			labels: []string{"A", "B"},
			data:   []float64{1, 2},
			opts:   BarOptions{Color: Success, Colors: []string{Danger, Info}},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, []string{Danger, Info}, cfg.Data.Datasets[0].BackgroundColor)
			},
		},
		{
			name:   "large values",
			labels: []string{"A"},
			data:   []float64{120},
			validate: func(t *testing.T, cfg Config) {
				x := cfg.Options.Scales["x"]
				assert.Equal(t, 120.0, *x.Max)
				assert.Equal(t, 20.0, x.Ticks.StepSize)
			},
		},
		{
			name: "empty data",
			validate: func(t *testing.T, cfg Config) {
				x := cfg.Options.Scales["x"]
				assert.Equal(t, 10.0, *x.Max)
				assert.Equal(t, 1.0, x.Ticks.StepSize)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := HorizontalBarConfig(theme, tt.labels, tt.data, tt.opts)
			tt.validate(t, cfg)

			assert.Equal(t, theme.Color, cfg.Options.Color)
			require.NotNil(t, cfg.Options.Font)
			assert.Equal(t, theme.Font, *cfg.Options.Font)

			_, err := json.Marshal(cfg)
			require.NoError(t, err)
		})
	}
}

func TestLineConfig(t *testing.T) {
	datasets := []Series{
		{Label: "Teaching", Data: []float64{40, 42, 47}},
		{Label: "Research", Data: []float64{55, 61, 66}, Color: Danger},
	}
	cfg := LineConfig(DefaultTheme(), []string{"2021", "2022", "2023"}, datasets, LineOptions{})

	assert.Equal(t, TypeLine, cfg.Type)
	require.Len(t, cfg.Data.Datasets, 2)
	assert.Equal(t, Primary, cfg.Data.Datasets[0].BorderColor)
	assert.Equal(t, Primary, cfg.Data.Datasets[0].BackgroundColor)
	assert.Equal(t, Danger, cfg.Data.Datasets[1].BorderColor)
	assert.Equal(t, 0.4, cfg.Data.Datasets[0].Tension)
	assert.False(t, *cfg.Data.Datasets[0].Fill)
	assert.Equal(t, 4, cfg.Data.Datasets[0].PointRadius)
	assert.Equal(t, 6, cfg.Data.Datasets[0].PointHoverRadius)

	// max 66: padding 4.3, 70.3 rounds to 80 with step 10
	y := cfg.Options.Scales["y"]
	assert.False(t, *y.BeginAtZero)
	assert.Equal(t, 0.0, *y.Min)
	assert.Equal(t, 80.0, *y.Max)
	assert.Equal(t, 10.0, y.Ticks.StepSize)
	assert.Equal(t, DefaultLineYTitle, y.Title.Text)

	x := cfg.Options.Scales["x"]
	assert.Equal(t, DefaultLineXTitle, x.Title.Text)
	assert.Equal(t, CallbackIntegerTicks, x.Ticks.Callback)

	assert.True(t, cfg.Options.Plugins.Legend.Display)
	assert.Equal(t, "top", cfg.Options.Plugins.Legend.Position)
	assert.False(t, cfg.Options.Plugins.Title.Display)
}

func TestGroupedBarConfig(t *testing.T) {
	datasets := []Series{
		{Label: "2023", Data: []float64{10, 20}},
		{Label: "2024", Data: []float64{5, 90}},
		{Label: "2025", Data: []float64{7, 8}, Color: Dark},
	}
	cfg := GroupedBarConfig(DefaultTheme(), []string{"FR", "DE"}, datasets, GroupedBarOptions{Title: "Scores"})

	assert.Equal(t, TypeBar, cfg.Type)
	assert.Empty(t, cfg.Options.IndexAxis)
	assert.Equal(t, Palette[0], cfg.Data.Datasets[0].BackgroundColor)
	assert.Equal(t, Palette[1], cfg.Data.Datasets[1].BackgroundColor)
	assert.Equal(t, Dark, cfg.Data.Datasets[2].BackgroundColor)
	assert.Equal(t, 1, cfg.Data.Datasets[0].BorderWidth)
	assert.Equal(t, 0.9, cfg.Data.Datasets[0].BarPercentage)

	y := cfg.Options.Scales["y"]
	assert.Equal(t, 100.0, *y.Max)
	assert.Equal(t, 20.0, y.Ticks.StepSize)
	assert.Equal(t, "rgba(0,0,0,0.05)", y.Grid.Color)

	x := cfg.Options.Scales["x"]
	assert.False(t, *x.Ticks.AutoSkip)
	assert.Equal(t, 11, x.Ticks.Font.Size)

	assert.True(t, cfg.Options.Plugins.Legend.Labels.UsePointStyle)
	assert.True(t, *cfg.Options.MaintainAspectRatio)
	assert.Equal(t, "Scores", cfg.Options.Plugins.Title.Text)
	assert.True(t, cfg.Options.Plugins.Title.Display)
}

func TestGroupedBarConfig_PaletteWraps(t *testing.T) {
	datasets := make([]Series, len(Palette)+2)
	for i := range datasets {
		datasets[i] = Series{Label: "s", Data: []float64{1}}
	}
	cfg := GroupedBarConfig(DefaultTheme(), []string{"A"}, datasets, GroupedBarOptions{})
	assert.Equal(t, Palette[0], cfg.Data.Datasets[len(Palette)].BackgroundColor)
	assert.Equal(t, Palette[1], cfg.Data.Datasets[len(Palette)+1].BackgroundColor)
}

func TestConfigJSON(t *testing.T) {
	cfg := HorizontalBarConfig(DefaultTheme(), []string{"A"}, []float64{0}, BarOptions{})
	b, err := json.Marshal(cfg)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	options := got["options"].(map[string]any)
	scales := options["scales"].(map[string]any)
	x := scales["x"].(map[string]any)
	assert.Equal(t, 0.0, x["min"])
	assert.Equal(t, 1.0, x["max"])

	ticks := x["ticks"].(map[string]any)
	assert.Equal(t, "integerTicks", ticks["callback"])
	assert.Equal(t, 0.0, ticks["precision"])

	ds := got["data"].(map[string]any)["datasets"].([]any)[0].(map[string]any)
	assert.Equal(t, false, ds["borderSkipped"])
}

func TestValueScaleAndSeries(t *testing.T) {
	bar := HorizontalBarConfig(DefaultTheme(), []string{"A"}, []float64{3}, BarOptions{})
	key, s, ok := bar.ValueScale()
	assert.True(t, ok)
	assert.Equal(t, "x", key)
	assert.Equal(t, 5.0, *s.Max)

	line := LineConfig(DefaultTheme(), []string{"A"}, []Series{{Data: []float64{1}}, {Data: []float64{2}}}, LineOptions{})
	key, _, ok = line.ValueScale()
	assert.True(t, ok)
	assert.Equal(t, "y", key)
	assert.Equal(t, []float64{1, 2}, line.Series().Values())

	pie := PieConfig(DefaultTheme(), []string{"A"}, []float64{1}, PieOptions{})
	_, _, ok = pie.ValueScale()
	assert.False(t, ok)
	assert.True(t, pie.IsRadial())
}

func TestFillColors(t *testing.T) {
	assert.Equal(t, []string{Primary, Primary}, FillColors(2))
	assert.Equal(t, []string{Primary}, FillColors(1, ""))
	assert.Equal(t, []string{Teal, Teal, Teal}, FillColors(3, Teal))
	assert.Equal(t, []string{Teal, Info}, FillColors(5, Teal, Info))
	assert.Equal(t, Indigo, PaletteColor(8))
	assert.Equal(t, Primary, PaletteColor(9))
}

func TestTheme(t *testing.T) {
	th := DefaultTheme()
	assert.Equal(t, DefaultFontFamily, th.Font.Family)
	assert.Equal(t, 12, th.Font.Size)
	assert.Equal(t, "#6c757d", th.Color)

	custom := th.WithFont("Inter", 0).WithColor("#000")
	assert.Equal(t, "Inter", custom.Font.Family)
	assert.Equal(t, 12, custom.Font.Size)
	assert.Equal(t, "#000", custom.Color)
	// the receiver is untouched
	assert.Equal(t, DefaultFontFamily, th.Font.Family)
}

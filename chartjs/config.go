// Package chartjs builds Chart.js configurations for the dashboard charts
// and mounts them on named rendering surfaces.
package chartjs

import "chartkit/axis"

// Chart types understood by Chart.js.
const (
	TypeBar      = "bar"
	TypeLine     = "line"
	TypePie      = "pie"
	TypeDoughnut = "doughnut"
)

// Callbacks are serialized by name. Whoever hands the configuration to
// Chart.js swaps the name for the matching function.
const (
	// CallbackIntegerTicks labels integral ticks and hides the others.
	CallbackIntegerTicks = "integerTicks"
	// CallbackPercentTooltip shows a slice value with its share of the total.
	CallbackPercentTooltip = "percentTooltip"
)

// Config is a complete Chart.js configuration object.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one Chart.js dataset. BackgroundColor and BorderColor hold
// either a string or a []string.
type Dataset struct {
	Label              string    `json:"label"`
	Data               []float64 `json:"data"`
	BackgroundColor    any       `json:"backgroundColor,omitempty"`
	BorderColor        any       `json:"borderColor,omitempty"`
	BorderWidth        int       `json:"borderWidth,omitempty"`
	BorderRadius       int       `json:"borderRadius,omitempty"`
	BorderSkipped      *bool     `json:"borderSkipped,omitempty"`
	BarPercentage      float64   `json:"barPercentage,omitempty"`
	CategoryPercentage float64   `json:"categoryPercentage,omitempty"`
	Tension            float64   `json:"tension,omitempty"`
	Fill               *bool     `json:"fill,omitempty"`
	PointRadius        int       `json:"pointRadius,omitempty"`
	PointHoverRadius   int       `json:"pointHoverRadius,omitempty"`
	HoverOffset        int       `json:"hoverOffset,omitempty"`
}

type Options struct {
	Responsive          bool             `json:"responsive"`
	MaintainAspectRatio *bool            `json:"maintainAspectRatio,omitempty"`
	IndexAxis           string           `json:"indexAxis,omitempty"`
	Font                *Font            `json:"font,omitempty"`
	Color               string           `json:"color,omitempty"`
	Scales              map[string]Scale `json:"scales,omitempty"`
	Plugins             Plugins          `json:"plugins"`
}

type Scale struct {
	BeginAtZero *bool       `json:"beginAtZero,omitempty"`
	Min         *float64    `json:"min,omitempty"`
	Max         *float64    `json:"max,omitempty"`
	Title       *ScaleTitle `json:"title,omitempty"`
	Grid        *Grid       `json:"grid,omitempty"`
	Ticks       *Ticks      `json:"ticks,omitempty"`
}

type ScaleTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text,omitempty"`
}

type Grid struct {
	Display *bool  `json:"display,omitempty"`
	Color   string `json:"color,omitempty"`
}

type Ticks struct {
	StepSize    float64 `json:"stepSize,omitempty"`
	Callback    string  `json:"callback,omitempty"`
	Precision   *int    `json:"precision,omitempty"`
	AutoSkip    *bool   `json:"autoSkip,omitempty"`
	MaxRotation *int    `json:"maxRotation,omitempty"`
	MinRotation *int    `json:"minRotation,omitempty"`
	Font        *Font   `json:"font,omitempty"`
}

type Plugins struct {
	Title   *Title   `json:"title,omitempty"`
	Legend  Legend   `json:"legend"`
	Tooltip *Tooltip `json:"tooltip,omitempty"`
}

type Title struct {
	Display bool   `json:"display"`
	Text    string `json:"text,omitempty"`
}

type Legend struct {
	Display  bool          `json:"display"`
	Position string        `json:"position,omitempty"`
	Labels   *LegendLabels `json:"labels,omitempty"`
}

type LegendLabels struct {
	UsePointStyle bool `json:"usePointStyle"`
}

type Tooltip struct {
	Callbacks TooltipCallbacks `json:"callbacks"`
}

type TooltipCallbacks struct {
	Label string `json:"label,omitempty"`
}

// ValueScale returns the numeric axis of a bar or line chart: x for
// horizontal bars, y otherwise. ok is false for charts without one.
func (c Config) ValueScale() (key string, s Scale, ok bool) {
	key = "y"
	if c.Options.IndexAxis == "y" {
		key = "x"
	}
	s, ok = c.Options.Scales[key]
	return key, s, ok
}

// Series returns every dataset's values as one axis input.
func (c Config) Series() axis.Series {
	data := make([][]float64, len(c.Data.Datasets))
	for i, ds := range c.Data.Datasets {
		data[i] = ds.Data
	}
	return axis.Multi(data...)
}

// IsRadial reports whether c is a pie or doughnut chart.
func (c Config) IsRadial() bool {
	return c.Type == TypePie || c.Type == TypeDoughnut
}

// valueScale is the numeric axis shared by the bar and line presets.
func valueScale(r axis.Range, step float64) Scale {
	return Scale{
		Min: floatPtr(r.Min),
		Max: floatPtr(r.Max),
		Ticks: &Ticks{
			StepSize:  step,
			Callback:  CallbackIntegerTicks,
			Precision: intPtr(0),
		},
	}
}

func titleFor(text string) *Title {
	return &Title{Display: text != "", Text: text}
}

func hiddenGrid() *Grid {
	return &Grid{Display: boolPtr(false)}
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

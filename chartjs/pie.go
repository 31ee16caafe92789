package chartjs

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// DefaultPieLabel names the dataset of a pie or doughnut chart when the
// caller gives none.
const DefaultPieLabel = "Distribution"

type PieOptions struct {
	Title     string
	DataLabel string
	Doughnut  bool
}

// PieKind maps a chart type name to the doughnut flag: "doughnut" draws a
// doughnut, anything else a pie.
func PieKind(kind string) bool {
	return kind == TypeDoughnut
}

// PieConfig returns a pie or doughnut chart. Slices are colored from the
// palette by position and the tooltip shows each slice's share of the total.
func PieConfig(theme Theme, labels []string, data []float64, opts PieOptions) Config {
	dataLabel := opts.DataLabel
	if dataLabel == "" {
		dataLabel = DefaultPieLabel
	}

	typ := TypePie
	if opts.Doughnut {
		typ = TypeDoughnut
	}

	cfg := Config{
		Type: typ,
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:           dataLabel,
				Data:            data,
				BackgroundColor: paletteColors(len(labels)),
				HoverOffset:     8,
			}},
		},
		Options: Options{
			Responsive: true,
			Plugins: Plugins{
				Title:  titleFor(opts.Title),
				Legend: Legend{Display: true, Position: "right"},
				Tooltip: &Tooltip{
					Callbacks: TooltipCallbacks{Label: CallbackPercentTooltip},
				},
			},
		},
	}
	theme.apply(&cfg.Options)
	return cfg
}

// SlicePercent is value's share of the sum of data, in percent. A zero
// total yields NaN.
func SlicePercent(value float64, data []float64) float64 {
	return value / floats.Sum(data) * 100
}

// SliceTooltip is the tooltip text of one slice: "label: value (p%)" with p
// rounded to one decimal the way the browser tooltip rounds it. The
// "label: " prefix is dropped for empty labels.
func SliceTooltip(label string, value float64, data []float64) string {
	if label != "" {
		label += ": "
	}
	pct := fixed1(SlicePercent(value, data))
	return fmt.Sprintf("%s%s (%s%%)", label, strconv.FormatFloat(value, 'f', -1, 64), pct)
}

// fixed1 formats v with one decimal like JavaScript's toFixed(1): the exact
// binary value is rounded, and a tie goes away from zero.
func fixed1(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.1f", v)
	}

	x := new(big.Float).SetPrec(256).SetFloat64(math.Abs(v))
	x.Mul(x, big.NewFloat(10))
	n, _ := x.Int(nil)
	frac := new(big.Float).Sub(x, new(big.Float).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	q, r := new(big.Int).QuoRem(n, big.NewInt(10), new(big.Int))
	sign := ""
	if v < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%s", sign, q.String(), r.String())
}

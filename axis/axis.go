// Package axis picks value-axis bounds and tick spacing for charts.
//
// The heuristic is deliberately simple: pad the largest observed value,
// round it up to a multiple of a threshold-based step, and keep data that
// lives on a 0..100 scale capped at exactly 100.
package axis

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Range is the (min, max) pair used to scale a value axis.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EmptyRange is returned when there is no data to scale.
var EmptyRange = Range{Min: 0, Max: 10}

// StepSize returns the tick spacing for an axis ending at max.
// It aims for roughly 5 to 10 ticks between 0 and max.
func StepSize(max float64) float64 {
	switch {
	case max <= 10:
		return 1
	case max <= 20:
		return 2
	case max <= 50:
		return 5
	case max <= 80:
		return 10
	case max <= 100:
		return 20
	case max <= 200:
		return 20
	case max <= 500:
		return 50
	default:
		return 100
	}
}

// Compute returns the axis range covering every value of s.
//
// The minimum is always 0. Data on a percentage-like scale never gets an
// axis above 100; data above 100 drops the padding and uses its own step.
func Compute(s Series) Range {
	values := s.Values()
	if len(values) == 0 {
		return EmptyRange
	}

	maxVal := floats.Max(values)
	padding := maxVal*0.05 + 1
	finalMax := maxVal + padding

	step := StepSize(finalMax)
	roundedMax := math.Ceil(finalMax/step) * step

	if roundedMax > 100 {
		if maxVal > 100 {
			newStep := StepSize(maxVal)
			roundedMax = math.Ceil(maxVal/newStep) * newStep
		} else {
			roundedMax = 100
		}
	} else if roundedMax < maxVal {
		roundedMax += step
	}

	return Range{Min: 0, Max: roundedMax}
}

// Scale computes the range of s and the step size for its upper bound,
// the pair every axis-scaled chart needs.
func Scale(s Series) (Range, float64) {
	r := Compute(s)
	return r, StepSize(r.Max)
}

// MaxTicks bounds the number of positions Ticks returns, the same limit
// Chart.js applies to generated ticks.
const MaxTicks = 1000

// Ticks lists tick positions from r.Min to r.Max inclusive. When step would
// produce more than MaxTicks positions it is widened to a whole number that
// keeps the count within the limit.
func Ticks(r Range, step float64) []float64 {
	span := r.Max - r.Min
	if step <= 0 || span < 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return []float64{r.Min, r.Max}
	}
	if span/step >= MaxTicks {
		step = math.Ceil(span / (MaxTicks - 1))
	}
	n := int(math.Floor(span/step+1e-9)) + 1
	ticks := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		ticks = append(ticks, r.Min+float64(i)*step)
	}
	return ticks
}

// TickLabel formats v for display on an axis. Fractional values get no
// label and ok is false.
func TickLabel(v float64) (label string, ok bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return "", false
	}
	return strconv.FormatFloat(v, 'f', -1, 64), true
}

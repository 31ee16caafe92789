package chartjs

import (
	"errors"
	"fmt"
)

// Chart kinds accepted by Request.
const (
	KindHorizontalBar = "horizontal-bar"
	KindLine          = "line"
	KindGroupedBar    = "grouped-bar"
	KindPie           = "pie"
	KindDoughnut      = "doughnut"
)

var (
	ErrUnknownKind = errors.New("unknown chart kind")
	ErrInvalid     = errors.New("invalid chart request")
)

// Request describes any chart in one JSON-friendly shape.
// Single-series kinds (horizontal-bar, pie, doughnut) read Data; the others
// read Datasets.
type Request struct {
	Kind      string    `json:"kind"`
	Title     string    `json:"title,omitempty"`
	Labels    []string  `json:"labels"`
	Data      []float64 `json:"data,omitempty"`
	Datasets  []Series  `json:"datasets,omitempty"`
	Color     string    `json:"color,omitempty"`
	Colors    []string  `json:"colors,omitempty"`
	DataLabel string    `json:"dataLabel,omitempty"`
	XTitle    string    `json:"xTitle,omitempty"`
	YTitle    string    `json:"yTitle,omitempty"`
}

// Config builds the configuration for r.
func (r Request) Config(theme Theme) (Config, error) {
	switch r.Kind {
	case KindHorizontalBar:
		return HorizontalBarConfig(theme, r.Labels, r.Data, BarOptions{
			Title:     r.Title,
			DataLabel: r.DataLabel,
			Color:     r.Color,
			Colors:    r.Colors,
		}), nil
	case KindLine:
		return LineConfig(theme, r.Labels, r.Datasets, LineOptions{
			Title:  r.Title,
			XTitle: r.XTitle,
			YTitle: r.YTitle,
		}), nil
	case KindGroupedBar:
		return GroupedBarConfig(theme, r.Labels, r.Datasets, GroupedBarOptions{Title: r.Title}), nil
	case KindPie, KindDoughnut:
		return PieConfig(theme, r.Labels, r.Data, PieOptions{
			Title:     r.Title,
			DataLabel: r.DataLabel,
			Doughnut:  PieKind(r.Kind),
		}), nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
}

// Validate checks the shape of r. The constructors themselves accept
// anything; Validate is for callers that take requests from outside.
func (r Request) Validate() error {
	if len(r.Labels) == 0 {
		return fmt.Errorf("%w: labels must contain at least one item", ErrInvalid)
	}

	switch r.Kind {
	case KindHorizontalBar, KindPie, KindDoughnut:
		if len(r.Data) != len(r.Labels) {
			return fmt.Errorf("%w: data has %d values for %d labels", ErrInvalid, len(r.Data), len(r.Labels))
		}
	case KindLine, KindGroupedBar:
		if len(r.Datasets) == 0 {
			return fmt.Errorf("%w: datasets must contain at least one item", ErrInvalid)
		}
		for i, ds := range r.Datasets {
			if len(ds.Data) != len(r.Labels) {
				return fmt.Errorf("%w: dataset %d has %d values for %d labels", ErrInvalid, i, len(ds.Data), len(r.Labels))
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
	return nil
}

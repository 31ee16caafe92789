package mcptools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"chartkit/chartjs"
)

type BarPoint struct {
	Label string  `json:"label" jsonschema:"description=Category label for the bar (e.g. 'Oxford', 'Product A')"`
	Value float64 `json:"value" jsonschema:"description=Numeric value for the bar (e.g. a score)"`
	Color string  `json:"color,omitempty" jsonschema:"description=Optional color for this bar only"`
}

type HorizontalBarChartArgs struct {
	Title        string     `json:"title,omitempty" jsonschema:"description=Chart title"`
	DatasetLabel string     `json:"datasetLabel,omitempty" jsonschema:"description=Label for the data series and the value axis (default 'Score')"`
	Color        string     `json:"color,omitempty" jsonschema:"description=Optional color for every bar (e.g. '#10B981'). If not provided, uses the primary color."`
	Points       []BarPoint `json:"points" jsonschema:"description=Array of data points with category labels and numeric values,minItems=1"`
}

func generateHorizontalBarChart(theme chartjs.Theme) func(HorizontalBarChartArgs) any {
	return func(args HorizontalBarChartArgs) any {
		labels := make([]string, len(args.Points))
		data := make([]float64, len(args.Points))

		// per-bar colors only apply when every bar has one
		colors := make([]string, 0, len(args.Points))
		for i, point := range args.Points {
			labels[i] = point.Label
			data[i] = point.Value
			if point.Color != "" {
				colors = append(colors, point.Color)
			}
		}
		if len(colors) != len(args.Points) {
			colors = nil
		}

		return chartjs.HorizontalBarConfig(theme, labels, data, chartjs.BarOptions{
			Title:     args.Title,
			DataLabel: args.DatasetLabel,
			Color:     args.Color,
			Colors:    colors,
		})
	}
}

func validateHorizontalBarChartArgs(args HorizontalBarChartArgs) error {
	if len(args.Points) == 0 {
		return fmt.Errorf("points must contain at least one item")
	}
	return nil
}

func registerHorizontalBarChartTool(srv *server.MCPServer, theme chartjs.Theme) {
	registerChartTool(srv, chartToolConfig{
		name: "horizontal-bar-chart",
		description: `Generates a Chart.js horizontal bar chart configuration.
		              Bars grow from a value axis that starts at zero and ends at a rounded maximum covering all values;
		              scores on a 0-100 scale keep an axis capped at 100.
		              Use this to rank categories by a single score (e.g. universities by teaching score).`,
	},
		generateHorizontalBarChart(theme),
		validateHorizontalBarChartArgs,
	)
}

type GroupedBarChartArgs struct {
	Title    string      `json:"title,omitempty" jsonschema:"description=Chart title"`
	Labels   []string    `json:"labels" jsonschema:"description=Category labels on the x-axis,minItems=1"`
	Datasets []SeriesArg `json:"datasets" jsonschema:"description=One series per bar in each group,minItems=1"`
}

func generateGroupedBarChart(theme chartjs.Theme) func(GroupedBarChartArgs) any {
	return func(args GroupedBarChartArgs) any {
		return chartjs.GroupedBarConfig(theme, args.Labels, toSeries(args.Datasets), chartjs.GroupedBarOptions{
			Title: args.Title,
		})
	}
}

func validateGroupedBarChartArgs(args GroupedBarChartArgs) error {
	return validateMultiSeries(args.Labels, args.Datasets)
}

func registerGroupedBarChartTool(srv *server.MCPServer, theme chartjs.Theme) {
	registerChartTool(srv, chartToolConfig{
		name: "grouped-bar-chart",
		description: `Generates a Chart.js grouped bar chart configuration.
		              Each label gets a group of bars, one per series, side by side.
		              Use this to compare several series per category (e.g. scores per country across years).
		              Series without a color cycle through a 9-color palette.`,
	},
		generateGroupedBarChart(theme),
		validateGroupedBarChartArgs,
	)
}

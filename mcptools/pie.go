package mcptools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"chartkit/chartjs"
)

type PiePoint struct {
	Label string  `json:"label" jsonschema:"description=Label for the segment (e.g. 'Europe', 'Asia')"`
	Value float64 `json:"value" jsonschema:"description=Numeric value for the segment"`
}

type PieChartArgs struct {
	Title        string     `json:"title,omitempty" jsonschema:"description=Chart title"`
	DatasetLabel string     `json:"datasetLabel,omitempty" jsonschema:"description=Label for the data series (default 'Distribution')"`
	Points       []PiePoint `json:"points" jsonschema:"description=Array of data points with labels and values,minItems=1"`
}

func generatePieChart(theme chartjs.Theme, doughnut bool) func(PieChartArgs) any {
	return func(args PieChartArgs) any {
		labels := make([]string, len(args.Points))
		data := make([]float64, len(args.Points))

		for i, point := range args.Points {
			labels[i] = point.Label
			data[i] = point.Value
		}

		return chartjs.PieConfig(theme, labels, data, chartjs.PieOptions{
			Title:     args.Title,
			DataLabel: args.DatasetLabel,
			Doughnut:  doughnut,
		})
	}
}

func validatePieChartArgs(args PieChartArgs) error {
	if len(args.Points) == 0 {
		return fmt.Errorf("points must contain at least one item")
	}
	return nil
}

func registerPieChartTool(srv *server.MCPServer, theme chartjs.Theme) {
	registerChartTool(srv, chartToolConfig{
		name: "pie-chart",
		description: `Generates a Chart.js pie chart configuration.
		              Each segment shows the proportional value of one category; the tooltip shows the value and its percentage of the total.
		              Use this for part-to-whole relationships.`,
	},
		generatePieChart(theme, false),
		validatePieChartArgs,
	)
}

func registerDoughnutChartTool(srv *server.MCPServer, theme chartjs.Theme) {
	registerChartTool(srv, chartToolConfig{
		name: "doughnut-chart",
		description: `Generates a Chart.js doughnut chart configuration.
		              Same as a pie chart with a hole in the center; the tooltip shows the value and its percentage of the total.`,
	},
		generatePieChart(theme, true),
		validatePieChartArgs,
	)
}

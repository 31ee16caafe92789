package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	"chartkit/chartjs"
)

type LineChartArgs struct {
	Title    string      `json:"title,omitempty" jsonschema:"description=Chart title"`
	XTitle   string      `json:"xTitle,omitempty" jsonschema:"description=X-axis title (default 'Year')"`
	YTitle   string      `json:"yTitle,omitempty" jsonschema:"description=Y-axis title (default 'Score')"`
	Labels   []string    `json:"labels" jsonschema:"description=X-axis labels (e.g. years),minItems=1"`
	Datasets []SeriesArg `json:"datasets" jsonschema:"description=One line per series,minItems=1"`
}

func generateLineChart(theme chartjs.Theme) func(LineChartArgs) any {
	return func(args LineChartArgs) any {
		return chartjs.LineConfig(theme, args.Labels, toSeries(args.Datasets), chartjs.LineOptions{
			Title:  args.Title,
			XTitle: args.XTitle,
			YTitle: args.YTitle,
		})
	}
}

func validateLineChartArgs(args LineChartArgs) error {
	return validateMultiSeries(args.Labels, args.Datasets)
}

func registerLineChartTool(srv *server.MCPServer, theme chartjs.Theme) {
	registerChartTool(srv, chartToolConfig{
		name: "line-chart",
		description: `Generates a Chart.js line chart configuration.
		              Line charts show the evolution of one or more series over time.
		              The y-axis range is shared by all series and rounded to a readable step.`,
	},
		generateLineChart(theme),
		validateLineChartArgs,
	)
}

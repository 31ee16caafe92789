package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	"chartkit/axis"
)

type AxisRangeArgs struct {
	Values   []float64   `json:"values,omitempty" jsonschema:"description=A single series of values"`
	Datasets [][]float64 `json:"datasets,omitempty" jsonschema:"description=Several series of values; the range covers all of them"`
}

type AxisRangeResult struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	StepSize float64 `json:"stepSize"`
}

func generateAxisRange(args AxisRangeArgs) any {
	r, step := axis.Scale(axis.Combine(args.Values, args.Datasets))
	return AxisRangeResult{Min: r.Min, Max: r.Max, StepSize: step}
}

func registerAxisRangeTool(srv *server.MCPServer) {
	registerChartTool(srv, chartToolConfig{
		name: "axis-range",
		description: `Computes the value-axis range and tick step used by the chart tools.
		              The minimum is always 0; the maximum is the largest value plus 5% and 1, rounded up to the step.
		              Returns {min, max, stepSize}. With no values the range is 0-10.`,
	},
		generateAxisRange,
		nil,
	)
}

// Package mcptools exposes the chart presets as MCP tools. Every tool
// returns a Chart.js configuration ready to pass to `new Chart(ctx, cfg)`.
package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"chartkit/chartjs"
)

const (
	serverName    = "chartkit"
	serverVersion = "1.0.0"
)

// New returns an MCP server with every chart tool registered. Charts use
// theme for fonts and text color.
func New(theme chartjs.Theme) *server.MCPServer {
	srv := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	registerHorizontalBarChartTool(srv, theme)
	registerLineChartTool(srv, theme)
	registerGroupedBarChartTool(srv, theme)
	registerPieChartTool(srv, theme)
	registerDoughnutChartTool(srv, theme)
	registerAxisRangeTool(srv)

	return srv
}

type chartToolConfig struct {
	name        string
	description string
}

func registerChartTool[T any](
	srv *server.MCPServer,
	cfg chartToolConfig,
	generator func(T) any,
	validator func(T) error,
) {
	tool := mcp.NewTool(
		cfg.name,
		mcp.WithDescription(cfg.description),
		mcp.WithInputSchema[T](),
	)

	srv.AddTool(tool, chartToolHandler(generator, validator))
}

func chartToolHandler[T any](generator func(T) any, validator func(T) error) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args T
		if err := req.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("bind arguments: %v", err)), nil
		}

		// validate if validator provided
		if validator != nil {
			if err := validator(args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}

		return mcp.NewToolResultJSON(generator(args))
	}
}

// SeriesArg is one named series of a multi-series chart.
type SeriesArg struct {
	Label string    `json:"label" jsonschema:"description=Series name shown in the legend (e.g. 'Teaching', '2024')"`
	Data  []float64 `json:"data" jsonschema:"description=One value per label, in label order"`
	Color string    `json:"color,omitempty" jsonschema:"description=Optional series color (e.g. '#3B82F6'). If not provided, uses the default color."`
}

func toSeries(args []SeriesArg) []chartjs.Series {
	out := make([]chartjs.Series, len(args))
	for i, a := range args {
		out[i] = chartjs.Series{Label: a.Label, Data: a.Data, Color: a.Color}
	}
	return out
}

func validateMultiSeries(labels []string, datasets []SeriesArg) error {
	if len(labels) == 0 {
		return fmt.Errorf("labels must contain at least one item")
	}
	if len(datasets) == 0 {
		return fmt.Errorf("datasets must contain at least one item")
	}
	for i, ds := range datasets {
		if len(ds.Data) != len(labels) {
			return fmt.Errorf("dataset %d has %d values for %d labels", i, len(ds.Data), len(labels))
		}
	}
	return nil
}

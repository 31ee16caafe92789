// Package main provides the chartkit command line: an MCP server, an HTTP
// preview server and one-shot chart rendering.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"chartkit/axis"
	"chartkit/chartjs"
	"chartkit/config"
	"chartkit/echarts"
	"chartkit/mcptools"
	"chartkit/page"
	"chartkit/preview"
	"chartkit/render"
)

var (
	envFile    string
	outputPath string
	format     string
	width      int
	height     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartkit",
		Short: "Build Chart.js configurations and render charts",
		Long: `chartkit builds themed Chart.js configurations with readable value axes
and serves them over MCP, HTTP, or as static files.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading CHARTKIT_* variables")

	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the chart tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE:  runMCP,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP preview server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	renderCmd := &cobra.Command{
		Use:   "render [request.json]",
		Short: "Render a chart request to html, echarts, png or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().StringVarP(&format, "format", "f", "html", "Output format: html, echarts, png, svg")
	renderCmd.Flags().IntVar(&width, "width", render.DefaultSize.Width, "Image width in pixels")
	renderCmd.Flags().IntVar(&height, "height", render.DefaultSize.Height, "Image height in pixels")

	rangeCmd := &cobra.Command{
		Use:   "range [values...]",
		Short: "Print the value-axis range and step for a series",
		RunE:  runRange,
	}

	rootCmd.AddCommand(mcpCmd, serveCmd, renderCmd, rangeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSettings() (config.Settings, error) {
	settings, err := config.Load(envFile)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}

	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		return settings, fmt.Errorf("invalid log level: %s", settings.LogLevel)
	}
	logrus.SetLevel(level)
	return settings, nil
}

func runMCP(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	// stdout carries the protocol
	logrus.SetOutput(os.Stderr)
	logrus.Debug("serving chart tools on stdio")

	return server.ServeStdio(mcptools.New(settings.Theme()))
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	svc := preview.NewService(preview.Options{
		Theme:       settings.Theme(),
		ChartJSURL:  settings.ChartJSURL,
		CORSOrigins: settings.CORSOrigins,
	}, logrus.StandardLogger())
	return svc.Run(settings.Addr)
}

func runRender(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	var req chartjs.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parse request: %w", err)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := renderRequest(&buf, req, settings, format, render.Size{Width: width, Height: height}); err != nil {
		return err
	}

	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logrus.WithField("path", outputPath).Info("chart written")
	return nil
}

func renderRequest(w io.Writer, req chartjs.Request, settings config.Settings, format string, size render.Size) error {
	theme := settings.Theme()

	switch strings.ToLower(format) {
	case "html":
		p := page.New(req.Title, theme, page.WithChartJSURL(settings.ChartJSURL), page.WithScrollButton())
		p.AddCanvas(preview.CanvasID)
		if _, err := p.Builder().Build(preview.CanvasID, req, nil); err != nil {
			return err
		}
		return p.Render(w)
	case "echarts":
		cfg, err := req.Config(theme)
		if err != nil {
			return err
		}
		return echarts.Render(w, cfg)
	default:
		imageFormat, err := render.ParseFormat(format)
		if err != nil {
			return fmt.Errorf("invalid format: %s (must be html, echarts, png, or svg)", format)
		}
		cfg, err := req.Config(theme)
		if err != nil {
			return err
		}
		return render.Render(w, cfg, imageFormat, size)
	}
}

func runRange(cmd *cobra.Command, args []string) error {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values[i] = v
	}

	r, step := axis.Scale(axis.Single(values))
	out, err := json.Marshal(map[string]float64{"min": r.Min, "max": r.Max, "stepSize": step})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

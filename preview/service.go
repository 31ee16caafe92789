// Package preview serves charts over HTTP so they can be looked at in a
// browser or fetched as images.
package preview

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"chartkit/axis"
	"chartkit/chartjs"
	"chartkit/echarts"
	"chartkit/page"
	"chartkit/render"
)

// CanvasID is the canvas every preview page draws on.
const CanvasID = "chart"

type Options struct {
	Theme       chartjs.Theme
	ChartJSURL  string
	CORSOrigins []string
}

// Service renders chart requests as pages and images.
type Service struct {
	opts Options
	log  logrus.FieldLogger
	echo *echo.Echo
}

// NewService creates a Service and registers its routes.
func NewService(opts Options, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Service{opts: opts, log: log, echo: echo.New()}
	s.echo.HideBanner = true
	s.echo.Use(middleware.Recover())

	// chart.js page
	s.echo.POST("/charts/html", s.handleHTML)
	// static images
	s.echo.POST("/charts/png", s.handleImage(render.PNG))
	s.echo.POST("/charts/svg", s.handleImage(render.SVG))
	// echarts page
	s.echo.POST("/charts/echarts", s.handleECharts)
	s.echo.POST("/axis/range", s.handleAxisRange)
	s.echo.GET("/healthz", s.handleHealth)

	return s
}

// Handler returns the routes wrapped in CORS handling.
func (s *Service) Handler() http.Handler {
	origins := s.opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
	})
	return c.Handler(s.echo)
}

// Run listens on addr until the server fails.
func (s *Service) Run(addr string) error {
	s.log.WithField("addr", addr).Info("starting preview server")
	return http.ListenAndServe(addr, s.Handler())
}

// --- Handlers ---

// ChartRequest is a chart description plus the image size for static
// renders.
type ChartRequest struct {
	chartjs.Request
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

func errorJSON(c echo.Context, code int, err error) error {
	return c.JSON(code, map[string]string{"error": err.Error()})
}

func (s *Service) bindChart(c echo.Context) (ChartRequest, chartjs.Config, error) {
	var req ChartRequest
	if err := c.Bind(&req); err != nil {
		return req, chartjs.Config{}, errors.New("invalid request")
	}
	if err := req.Validate(); err != nil {
		return req, chartjs.Config{}, err
	}
	cfg, err := req.Config(s.opts.Theme)
	return req, cfg, err
}

func (s *Service) handleHTML(c echo.Context) error {
	var req ChartRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, errors.New("invalid request"))
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}

	title := req.Title
	if title == "" {
		title = "Chart preview"
	}
	p := page.New(title, s.opts.Theme, page.WithChartJSURL(s.opts.ChartJSURL), page.WithScrollButton())
	p.AddCanvas(CanvasID)
	if _, err := p.Builder().Build(CanvasID, req.Request, nil); err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}

	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		s.log.WithError(err).Error("render page")
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (s *Service) handleImage(format render.Format) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, cfg, err := s.bindChart(c)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, err)
		}

		var buf bytes.Buffer
		size := render.Size{Width: req.Width, Height: req.Height}
		if err := render.Render(&buf, cfg, format, size); err != nil {
			if errors.Is(err, render.ErrNoSlices) {
				return errorJSON(c, http.StatusBadRequest, err)
			}
			s.log.WithError(err).WithField("kind", req.Kind).Error("render image")
			return errorJSON(c, http.StatusInternalServerError, err)
		}
		return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
	}
}

func (s *Service) handleECharts(c echo.Context) error {
	req, cfg, err := s.bindChart(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}

	var buf bytes.Buffer
	if err := echarts.Render(&buf, cfg); err != nil {
		s.log.WithError(err).WithField("kind", req.Kind).Error("render echarts page")
		return errorJSON(c, http.StatusInternalServerError, err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

type AxisRangeRequest struct {
	Values   []float64   `json:"values"`
	Datasets [][]float64 `json:"datasets"`
}

type AxisRangeResponse struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	StepSize float64 `json:"stepSize"`
}

func (s *Service) handleAxisRange(c echo.Context) error {
	var req AxisRangeRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, errors.New("invalid request"))
	}

	r, step := axis.Scale(axis.Combine(req.Values, req.Datasets))
	return c.JSON(http.StatusOK, AxisRangeResponse{Min: r.Min, Max: r.Max, StepSize: step})
}

func (s *Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

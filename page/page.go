// Package page renders an HTML document hosting Chart.js canvases.
//
// A Page is the set of rendering surfaces chart builders draw on: each
// canvas holds at most one chart, and Render writes the document with one
// Chart.js instance per mounted canvas.
package page

import (
	"fmt"
	"html/template"
	"io"

	"chartkit/chartjs"
)

// DefaultChartJSURL is the Chart.js build loaded by rendered pages.
const DefaultChartJSURL = "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"

// Canvas is one rendering surface of a page.
type Canvas struct {
	id    string
	chart *chartjs.Chart
}

func (c *Canvas) ID() string { return c.id }

// Mount replaces whatever chart the canvas was showing.
func (c *Canvas) Mount(ch *chartjs.Chart) { c.chart = ch }

// Unmount clears the canvas if ch is the chart it shows.
func (c *Canvas) Unmount(ch *chartjs.Chart) {
	if c.chart == ch {
		c.chart = nil
	}
}

// Chart returns the mounted chart, or nil.
func (c *Canvas) Chart() *chartjs.Chart { return c.chart }

type Page struct {
	Title string

	theme      chartjs.Theme
	chartJSURL string
	canvases   []*Canvas
	byID       map[string]*Canvas
	scroll     *ScrollToTop
}

type Option func(*Page)

// WithChartJSURL loads Chart.js from url instead of DefaultChartJSURL.
func WithChartJSURL(url string) Option {
	return func(p *Page) {
		if url != "" {
			p.chartJSURL = url
		}
	}
}

// WithScrollButton adds the scroll-to-top button.
func WithScrollButton() Option {
	return func(p *Page) {
		p.scroll = NewScrollToTop()
	}
}

func New(title string, theme chartjs.Theme, opts ...Option) *Page {
	p := &Page{
		Title:      title,
		theme:      theme,
		chartJSURL: DefaultChartJSURL,
		byID:       map[string]*Canvas{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddCanvas registers a canvas with the given id and returns it. Adding an
// existing id returns the existing canvas.
func (p *Page) AddCanvas(id string) *Canvas {
	if c, ok := p.byID[id]; ok {
		return c
	}
	c := &Canvas{id: id}
	p.canvases = append(p.canvases, c)
	p.byID[id] = c
	return c
}

// Surface implements chartjs.Surfaces.
func (p *Page) Surface(id string) (chartjs.Surface, bool) {
	c, ok := p.byID[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// Canvases lists the canvases in the order they were added.
func (p *Page) Canvases() []*Canvas {
	return p.canvases
}

// ScrollButton returns the scroll-to-top widget, or nil when the page has
// none.
func (p *Page) ScrollButton() *ScrollToTop {
	return p.scroll
}

// Builder returns a chart builder drawing on p with the page theme.
func (p *Page) Builder() *chartjs.Builder {
	return chartjs.NewBuilder(p, p.theme)
}

type canvasView struct {
	ID     string
	Config *chartjs.Config
}

type pageView struct {
	Title        string
	ChartJSURL   string
	Theme        chartjs.Theme
	Canvases     []canvasView
	ScrollButton string
	ScrollScript template.JS
}

// Render writes the HTML document to w.
func (p *Page) Render(w io.Writer) error {
	view := pageView{
		Title:      p.Title,
		ChartJSURL: p.chartJSURL,
		Theme:      p.theme,
	}
	for _, c := range p.canvases {
		cv := canvasView{ID: c.id}
		if c.chart != nil {
			cfg := c.chart.Config
			cv.Config = &cfg
		}
		view.Canvases = append(view.Canvases, cv)
	}
	if p.scroll != nil {
		view.ScrollButton = p.scroll.ID
		view.ScrollScript = p.scroll.Script()
	}

	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

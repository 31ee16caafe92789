package chartjs

// Surface is a drawable area a chart can be attached to, typically a canvas.
type Surface interface {
	ID() string
	Mount(c *Chart)
	Unmount(c *Chart)
}

// Surfaces resolves surface identifiers.
type Surfaces interface {
	Surface(id string) (Surface, bool)
}

// Chart is a configuration mounted on a surface.
//
// The caller owns a Chart. Before drawing on the same surface again it must
// either Destroy the chart or hand it to the next Builder call as prev.
type Chart struct {
	Config Config

	surface   Surface
	destroyed bool
}

// SurfaceID is the identifier of the surface c is mounted on.
func (c *Chart) SurfaceID() string {
	if c == nil || c.surface == nil {
		return ""
	}
	return c.surface.ID()
}

// Destroy detaches c from its surface. It is safe on nil and on charts
// that are already destroyed.
func (c *Chart) Destroy() {
	if c == nil || c.destroyed {
		return
	}
	c.destroyed = true
	if c.surface != nil {
		c.surface.Unmount(c)
	}
}

// Destroyed reports whether Destroy was called.
func (c *Chart) Destroyed() bool {
	return c != nil && c.destroyed
}

// Builder constructs charts on surfaces with a fixed theme.
type Builder struct {
	surfaces Surfaces
	theme    Theme
}

func NewBuilder(surfaces Surfaces, theme Theme) *Builder {
	return &Builder{surfaces: surfaces, theme: theme}
}

// Theme returns the theme b was built with.
func (b *Builder) Theme() Theme {
	return b.theme
}

// HorizontalBar mounts a horizontal bar chart on surface id.
// It returns nil when the surface does not exist; prev is then left as is.
func (b *Builder) HorizontalBar(id string, labels []string, data []float64, opts BarOptions, prev *Chart) *Chart {
	s, ok := b.lookup(id)
	if !ok {
		return nil
	}
	return mount(s, HorizontalBarConfig(b.theme, labels, data, opts), prev)
}

// Line mounts a line chart on surface id. See HorizontalBar for the
// lifecycle rules.
func (b *Builder) Line(id string, labels []string, datasets []Series, opts LineOptions, prev *Chart) *Chart {
	s, ok := b.lookup(id)
	if !ok {
		return nil
	}
	return mount(s, LineConfig(b.theme, labels, datasets, opts), prev)
}

// GroupedBar mounts a grouped bar chart on surface id.
func (b *Builder) GroupedBar(id string, labels []string, datasets []Series, opts GroupedBarOptions, prev *Chart) *Chart {
	s, ok := b.lookup(id)
	if !ok {
		return nil
	}
	return mount(s, GroupedBarConfig(b.theme, labels, datasets, opts), prev)
}

// PieOrDoughnut mounts a pie or doughnut chart on surface id.
func (b *Builder) PieOrDoughnut(id string, labels []string, data []float64, opts PieOptions, prev *Chart) *Chart {
	s, ok := b.lookup(id)
	if !ok {
		return nil
	}
	return mount(s, PieConfig(b.theme, labels, data, opts), prev)
}

// Pie is PieOrDoughnut with the chart type given by name ("pie" or
// "doughnut").
func (b *Builder) Pie(id string, labels []string, data []float64, kind, dataLabel string, prev *Chart) *Chart {
	return b.PieOrDoughnut(id, labels, data, PieOptions{DataLabel: dataLabel, Doughnut: PieKind(kind)}, prev)
}

// Build mounts the chart described by req. A missing surface yields a nil
// chart and a nil error; only an invalid request is an error.
func (b *Builder) Build(id string, req Request, prev *Chart) (*Chart, error) {
	cfg, err := req.Config(b.theme)
	if err != nil {
		return nil, err
	}
	s, ok := b.lookup(id)
	if !ok {
		return nil, nil
	}
	return mount(s, cfg, prev), nil
}

func (b *Builder) lookup(id string) (Surface, bool) {
	if b.surfaces == nil {
		return nil, false
	}
	s, ok := b.surfaces.Surface(id)
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}

func mount(s Surface, cfg Config, prev *Chart) *Chart {
	prev.Destroy()
	c := &Chart{Config: cfg, surface: s}
	s.Mount(c)
	return c
}

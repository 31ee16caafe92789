package chartjs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	id      string
	current *Chart
	mounts  int
}

func (s *fakeSurface) ID() string { return s.id }

func (s *fakeSurface) Mount(c *Chart) {
	s.current = c
	s.mounts++
}

func (s *fakeSurface) Unmount(c *Chart) {
	if s.current == c {
		s.current = nil
	}
}

type fakeSurfaces map[string]*fakeSurface

func (f fakeSurfaces) Surface(id string) (Surface, bool) {
	s, ok := f[id]
	if !ok {
		return nil, false
	}
	return s, true
}

func TestBuilder_MissingSurface(t *testing.T) {
	b := NewBuilder(fakeSurfaces{}, DefaultTheme())

	assert.Nil(t, b.HorizontalBar("nope", []string{"A"}, []float64{1}, BarOptions{}, nil))
	assert.Nil(t, b.Line("nope", []string{"A"}, []Series{{Data: []float64{1}}}, LineOptions{}, nil))
	assert.Nil(t, b.GroupedBar("nope", []string{"A"}, []Series{{Data: []float64{1}}}, GroupedBarOptions{}, nil))
	assert.Nil(t, b.PieOrDoughnut("nope", []string{"A"}, []float64{1}, PieOptions{}, nil))
	assert.Nil(t, b.Pie("nope", []string{"A"}, []float64{1}, "pie", "", nil))

	c, err := b.Build("nope", Request{Kind: KindPie, Labels: []string{"A"}, Data: []float64{1}}, nil)
	assert.NoError(t, err)
	assert.Nil(t, c)

	assert.Nil(t, NewBuilder(nil, DefaultTheme()).HorizontalBar("x", nil, nil, BarOptions{}, nil))
}

func TestBuilder_MissingSurfaceKeepsPrevious(t *testing.T) {
	canvas := &fakeSurface{id: "scores"}
	b := NewBuilder(fakeSurfaces{"scores": canvas}, DefaultTheme())

	prev := b.HorizontalBar("scores", []string{"A"}, []float64{1}, BarOptions{}, nil)
	require.NotNil(t, prev)

	assert.Nil(t, b.HorizontalBar("other", []string{"A"}, []float64{1}, BarOptions{}, prev))
	assert.False(t, prev.Destroyed())
	assert.Same(t, prev, canvas.current)
}

func TestBuilder_ReplacesPrevious(t *testing.T) {
	canvas := &fakeSurface{id: "trend"}
	b := NewBuilder(fakeSurfaces{"trend": canvas}, DefaultTheme())

	first := b.Line("trend", []string{"2024"}, []Series{{Label: "a", Data: []float64{1}}}, LineOptions{}, nil)
	require.NotNil(t, first)
	assert.Equal(t, "trend", first.SurfaceID())
	assert.Same(t, first, canvas.current)

	second := b.Line("trend", []string{"2025"}, []Series{{Label: "a", Data: []float64{2}}}, LineOptions{}, first)
	require.NotNil(t, second)
	assert.True(t, first.Destroyed())
	assert.False(t, second.Destroyed())
	assert.Same(t, second, canvas.current)
	assert.Equal(t, 2, canvas.mounts)
}

func TestBuilder_IndependentInstances(t *testing.T) {
	canvas := &fakeSurface{id: "pie"}
	b := NewBuilder(fakeSurfaces{"pie": canvas}, DefaultTheme())

	first := b.Pie("pie", []string{"A"}, []float64{1}, "doughnut", "", nil)
	second := b.Pie("pie", []string{"A"}, []float64{1}, "pie", "", nil)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, TypeDoughnut, first.Config.Type)
	assert.Equal(t, TypePie, second.Config.Type)
	// without prev the first chart is never destroyed by the builder
	assert.False(t, first.Destroyed())
}

func TestChart_Destroy(t *testing.T) {
	canvas := &fakeSurface{id: "c"}
	b := NewBuilder(fakeSurfaces{"c": canvas}, DefaultTheme())

	c := b.GroupedBar("c", []string{"A"}, []Series{{Data: []float64{1}}}, GroupedBarOptions{}, nil)
	require.NotNil(t, c)

	c.Destroy()
	c.Destroy()
	assert.True(t, c.Destroyed())
	assert.Nil(t, canvas.current)

	var nilChart *Chart
	nilChart.Destroy()
	assert.False(t, nilChart.Destroyed())
	assert.Equal(t, "", nilChart.SurfaceID())
}

func TestBuilder_Build(t *testing.T) {
	canvas := &fakeSurface{id: "c"}
	b := NewBuilder(fakeSurfaces{"c": canvas}, DefaultTheme())

	c, err := b.Build("c", Request{
		Kind:   KindGroupedBar,
		Labels: []string{"A", "B"},
		Datasets: []Series{
			{Label: "x", Data: []float64{1, 2}},
		},
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, TypeBar, c.Config.Type)

	_, err = b.Build("c", Request{Kind: "radar"}, c)
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.False(t, c.Destroyed())
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name: "valid bar",
			req:  Request{Kind: KindHorizontalBar, Labels: []string{"A"}, Data: []float64{1}},
		},
		{
			name: "valid line",
			req:  Request{Kind: KindLine, Labels: []string{"A", "B"}, Datasets: []Series{{Data: []float64{1, 2}}}},
		},
		{
			name:    "no labels",
			req:     Request{Kind: KindPie},
			wantErr: ErrInvalid,
		},
		{
			name:    "length mismatch",
			req:     Request{Kind: KindDoughnut, Labels: []string{"A", "B"}, Data: []float64{1}},
			wantErr: ErrInvalid,
		},
		{
			name:    "no datasets",
			req:     Request{Kind: KindGroupedBar, Labels: []string{"A"}},
			wantErr: ErrInvalid,
		},
		{
			name:    "dataset length mismatch",
			req:     Request{Kind: KindLine, Labels: []string{"A"}, Datasets: []Series{{Data: []float64{1, 2}}}},
			wantErr: ErrInvalid,
		},
		{
			name:    "unknown kind",
			req:     Request{Kind: "radar", Labels: []string{"A"}},
			wantErr: ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequest_Config(t *testing.T) {
	kinds := map[string]string{
		KindHorizontalBar: TypeBar,
		KindLine:          TypeLine,
		KindGroupedBar:    TypeBar,
		KindPie:           TypePie,
		KindDoughnut:      TypeDoughnut,
	}
	for kind, want := range kinds {
		cfg, err := Request{Kind: kind, Labels: []string{"A"}, Data: []float64{1}, Datasets: []Series{{Data: []float64{1}}}}.Config(DefaultTheme())
		require.NoError(t, err, kind)
		assert.Equal(t, want, cfg.Type, kind)
	}
}

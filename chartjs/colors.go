package chartjs

// color helpers for chart.js configurations
//
// explicit colors always win:
//   - single-series charts take one color (repeated per bar) or one color per bar
//   - multi-series charts take one color per series
//
// if colors are omitted, single-series charts use Primary and everything
// else cycles through Palette by position

// named colors used across the dashboards
const (
	Primary = "#3B82F6"
	Success = "#10B981"
	Danger  = "#EF4444"
	Warning = "#F59E0B"
	Info    = "#0EA5E9"
	Light   = "#F3F4F6"
	Dark    = "#111827"
	Line    = "#8ACC16"
	Orange  = "#FFA500"
	Purple  = "#800080"
	Teal    = "#008080"
	Indigo  = "#6366F1"
)

// Palette is cycled for series and slices without an explicit color.
var Palette = []string{
	Primary,
	Success,
	Danger,
	Warning,
	Info,
	Orange,
	Purple,
	Teal,
	Indigo,
}

// PaletteColor returns the palette entry for position i.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// FillColors returns the background colors for n data points.
// More than one color is used as given; a single color is repeated n times;
// no color repeats Primary.
func FillColors(n int, colors ...string) []string {
	if len(colors) > 1 {
		return colors
	}

	color := Primary
	if len(colors) == 1 && colors[0] != "" {
		color = colors[0]
	}

	out := make([]string, n)
	for i := range out {
		out[i] = color
	}
	return out
}

// paletteColors returns n colors taken from the palette in order.
func paletteColors(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = PaletteColor(i)
	}
	return out
}

// seriesColor returns explicit if set, fallback otherwise.
func seriesColor(explicit, fallback string) string {
	if explicit != "" {
		return explicit
	}
	return fallback
}

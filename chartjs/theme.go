package chartjs

// Font is a Chart.js font setting.
type Font struct {
	Family string `json:"family,omitempty"`
	Size   int    `json:"size,omitempty"`
}

// Theme holds the styling every chart starts from. It is a plain value:
// build it once and pass it to every constructor instead of mutating
// Chart.defaults.
type Theme struct {
	Font  Font   `json:"font"`
	Color string `json:"color"`
}

const (
	DefaultFontFamily = "Segoe UI, Tahoma, Geneva, Verdana, sans-serif"
	DefaultFontSize   = 12
	DefaultTextColor  = "#6c757d"
)

// DefaultTheme returns the stock font and text color.
func DefaultTheme() Theme {
	return Theme{
		Font:  Font{Family: DefaultFontFamily, Size: DefaultFontSize},
		Color: DefaultTextColor,
	}
}

// WithFont returns a copy of t using the given font family and size.
// Empty family or non-positive size keep the current value.
func (t Theme) WithFont(family string, size int) Theme {
	if family != "" {
		t.Font.Family = family
	}
	if size > 0 {
		t.Font.Size = size
	}
	return t
}

// WithColor returns a copy of t using color for text.
func (t Theme) WithColor(color string) Theme {
	if color != "" {
		t.Color = color
	}
	return t
}

// apply copies the theme onto chart-level options.
func (t Theme) apply(o *Options) {
	font := t.Font
	o.Font = &font
	o.Color = t.Color
}

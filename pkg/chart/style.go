package chart

import "github.com/Shokesu/chartify/pkg/errors"

// Layout is a preset chart size for fitting into slides.
type Layout string

// Layout presets. All are 16:9; the percentage is the share of a slide the
// chart is meant to occupy.
const (
	LayoutSlide100 Layout = "slide_100%"
	LayoutSlide75  Layout = "slide_75%"
	LayoutSlide50  Layout = "slide_50%"
	LayoutSlide25  Layout = "slide_25%"
)

var validLayouts = []Layout{LayoutSlide100, LayoutSlide75, LayoutSlide50, LayoutSlide25}

// layoutSizes maps each preset to pixel dimensions.
var layoutSizes = map[Layout][2]int{
	LayoutSlide100: {960, 540},
	LayoutSlide75:  {720, 405},
	LayoutSlide50:  {480, 270},
	LayoutSlide25:  {240, 135},
}

// TextSettings holds the type settings for one chart text component.
type TextSettings struct {
	Color    string
	FontSize int
}

// Style controls a chart's pixel dimensions, color palette, and per-component
// text settings. Settings are applied to the figure when it is rendered.
type Style struct {
	layout     Layout
	plotWidth  int
	plotHeight int

	// Text settings per component.
	Title    TextSettings
	Subtitle TextSettings
	Source   TextSettings

	palette []string
}

// defaultPalette is the series color cycle applied to new charts.
var defaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// newStyle creates the style for a layout preset.
func newStyle(layout Layout) (*Style, error) {
	size, ok := layoutSizes[layout]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidLayout,
			"layout must be one of %v", validLayouts)
	}
	return &Style{
		layout:     layout,
		plotWidth:  size[0],
		plotHeight: size[1],
		Title:      TextSettings{Color: "#333333", FontSize: 18},
		Subtitle:   TextSettings{Color: "#666666", FontSize: 12},
		Source:     TextSettings{Color: "#898989", FontSize: 10},
		palette:    defaultPalette,
	}, nil
}

// Layout returns the layout preset name.
func (s *Style) Layout() Layout { return s.layout }

// PlotWidth returns the chart width in pixels.
func (s *Style) PlotWidth() int { return s.plotWidth }

// PlotHeight returns the chart height in pixels.
func (s *Style) PlotHeight() int { return s.plotHeight }

// ColorPalette returns the active series color cycle.
func (s *Style) ColorPalette() []string { return s.palette }

// SetColorPalette replaces the series color cycle. Empty input restores the
// default palette.
func (s *Style) SetColorPalette(colors []string) *Style {
	if len(colors) == 0 {
		s.palette = defaultPalette
		return s
	}
	s.palette = colors
	return s
}

// Package chart provides a thin convenience layer over the go-echarts
// plotting engine: preset layouts and styling, label and legend helpers, and
// an export path that rasterizes the interactive chart to a static PNG.
//
// A Chart wraps a single figure. Styling lives on .Style, plotting methods on
// .Plot, axis helpers on .Axes, and annotations on .Callout. The plotting
// methods available depend on the axis-type pair chosen at construction.
//
//	ch, err := chart.New(chart.WithAxisTypes(chart.AxisCategorical, chart.AxisLinear))
//	ch.SetTitle("Quarterly revenue")
//	ch.Plot.Bar("revenue", []string{"Q1", "Q2", "Q3"}, []float64{1.2, 1.9, 2.4})
//	err = ch.Save(ctx, "revenue.png", chart.FormatPNG)
package chart

import (
	charmlog "github.com/charmbracelet/log"

	"github.com/Shokesu/chartify/pkg/errors"
	"github.com/Shokesu/chartify/pkg/options"
)

// AxisType describes the kind of data plotted on an axis.
type AxisType string

// Supported axis types. The x axis additionally supports datetime.
const (
	AxisLinear      AxisType = "linear"
	AxisLog         AxisType = "log"
	AxisDatetime    AxisType = "datetime"
	AxisCategorical AxisType = "categorical"
	AxisDensity     AxisType = "density"
)

var (
	validXAxisTypes = []AxisType{AxisLinear, AxisLog, AxisDatetime, AxisCategorical, AxisDensity}
	validYAxisTypes = []AxisType{AxisLinear, AxisLog, AxisCategorical, AxisDensity}
)

// Default placeholder labels. They nudge users toward the setter they need.
const (
	defaultTitle    = `ch.SetTitle("Takeaway")`
	defaultSubtitle = `ch.SetSubtitle("Data Description")`
	defaultSource   = `ch.SetSourceLabel("Source")`
)

// Chart wraps a single figure together with its styling, plotting, axis, and
// callout helpers. Charts are not safe for concurrent mutation.
type Chart struct {
	fig *figure

	// Style controls layout dimensions, palette, and text settings.
	Style *Style

	// Plot exposes the plotting methods valid for the chart's axis types.
	Plot *Plot

	// Axes exposes axis label and range helpers.
	Axes *Axes

	// Callout adds text annotations and reference lines.
	Callout *Callout

	logo *Logo

	xType, yType AxisType
	blankLabels  bool
	logger       *charmlog.Logger
}

// config collects constructor options before validation.
type config struct {
	blankLabels bool
	layout      Layout
	xType       AxisType
	yType       AxisType
	opts        options.Options
	logger      *charmlog.Logger
}

// Option configures chart construction.
type Option func(*config)

// WithBlankLabels removes the default placeholder title, subtitle, and
// source-label text from the new chart.
func WithBlankLabels(blank bool) Option {
	return func(c *config) { c.blankLabels = blank }
}

// WithLayout selects a layout preset controlling the chart's pixel size.
func WithLayout(layout Layout) Option {
	return func(c *config) { c.layout = layout }
}

// WithAxisTypes sets the x and y axis types. The pair determines which
// plotting methods are available on Chart.Plot.
func WithAxisTypes(x, y AxisType) Option {
	return func(c *config) {
		c.xType = x
		c.yType = y
	}
}

// WithOptions seeds chart defaults (blank labels, layout, logo registry)
// from a loaded options set.
func WithOptions(opts options.Options) Option {
	return func(c *config) {
		c.opts = opts
		c.blankLabels = opts.BlankLabels
		if opts.Layout != "" {
			c.layout = Layout(opts.Layout)
		}
	}
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(logger *charmlog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New creates a chart.
//
// The axis-type pair is validated against the supported sets and selects the
// plot and axes helper variants. Defaults: linear×linear axes, slide_100%
// layout, placeholder labels.
func New(optFns ...Option) (*Chart, error) {
	cfg := config{
		layout: LayoutSlide100,
		xType:  AxisLinear,
		yType:  AxisLinear,
		opts:   options.Default(),
		logger: charmlog.Default(),
	}
	for _, fn := range optFns {
		fn(&cfg)
	}

	if !containsAxisType(validXAxisTypes, cfg.xType) {
		return nil, errors.New(errors.ErrCodeInvalidAxisType,
			"x_axis_type must be one of %v", validXAxisTypes)
	}
	if !containsAxisType(validYAxisTypes, cfg.yType) {
		return nil, errors.New(errors.ErrCodeInvalidAxisType,
			"y_axis_type must be one of %v", validYAxisTypes)
	}

	style, err := newStyle(cfg.layout)
	if err != nil {
		return nil, err
	}

	c := &Chart{
		Style:       style,
		xType:       cfg.xType,
		yType:       cfg.yType,
		blankLabels: cfg.blankLabels,
		logger:      cfg.logger,
	}
	c.fig = newFigure(c, cfg.opts.PageTitle)
	c.Plot = newPlot(c)
	c.Axes = newAxes(c)
	c.Callout = newCallout(c)
	c.logo = newLogo(c, cfg.opts.Logos)

	if !cfg.blankLabels {
		c.fig.title = defaultTitle
		c.fig.subtitle = defaultSubtitle
		c.fig.source = defaultSource
	}
	return c, nil
}

// XAxisType returns the chart's x axis type.
func (c *Chart) XAxisType() AxisType { return c.xType }

// YAxisType returns the chart's y axis type.
func (c *Chart) YAxisType() AxisType { return c.yType }

// Title returns the chart title text.
func (c *Chart) Title() string { return c.fig.title }

// SetTitle sets the chart title. It returns the chart for chaining.
func (c *Chart) SetTitle(title string) *Chart {
	c.fig.title = title
	return c
}

// Subtitle returns the chart subtitle text.
func (c *Chart) Subtitle() string { return c.fig.subtitle }

// SetSubtitle sets the chart subtitle. Set "" to remove it.
func (c *Chart) SetSubtitle(subtitle string) *Chart {
	c.fig.subtitle = subtitle
	return c
}

// SourceText returns the data-source label text.
func (c *Chart) SourceText() string { return c.fig.source }

// SetSourceLabel sets the data-source label shown in the chart's corner.
func (c *Chart) SetSourceLabel(source string) *Chart {
	c.fig.source = source
	return c
}

// Logo returns the chart's logo helper.
func (c *Chart) Logo() *Logo { return c.logo }

// SetLogo selects a registered logo to composite onto PNG exports.
// Unknown names fail with an error listing the registered names.
func (c *Chart) SetLogo(name string) error {
	return c.logo.Set(name)
}

func containsAxisType(set []AxisType, t AxisType) bool {
	for _, v := range set {
		if v == t {
			return true
		}
	}
	return false
}

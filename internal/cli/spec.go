package cli

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	charmlog "github.com/charmbracelet/log"

	"github.com/Shokesu/chartify/pkg/chart"
	"github.com/Shokesu/chartify/pkg/errors"
	"github.com/Shokesu/chartify/pkg/options"
)

// ChartSpec is the TOML description of a chart consumed by the render and
// serve commands.
//
// Example:
//
//	title = "Quarterly revenue"
//	subtitle = "EMEA, 2025"
//	source = "Finance DB"
//	layout = "slide_75%"
//	x_axis_type = "categorical"
//
//	[legend]
//	location = "outside_top"
//
//	[[series]]
//	kind = "bar"
//	name = "revenue"
//	categories = ["Q1", "Q2", "Q3"]
//	y = [1.2, 1.9, 2.4]
type ChartSpec struct {
	Title       string `toml:"title"`
	Subtitle    string `toml:"subtitle"`
	Source      string `toml:"source"`
	BlankLabels bool   `toml:"blank_labels"`
	Layout      string `toml:"layout"`

	XAxisType string `toml:"x_axis_type"`
	YAxisType string `toml:"y_axis_type"`
	XLabel    string `toml:"x_label"`
	YLabel    string `toml:"y_label"`

	// Optional tick label templates, e.g. "{value} %".
	XTickFormat string `toml:"x_tick_format"`
	YTickFormat string `toml:"y_tick_format"`

	// Optional fixed axis ranges as [min, max] pairs.
	XRange []float64 `toml:"x_range"`
	YRange []float64 `toml:"y_range"`

	Logo   string       `toml:"logo"`
	Legend LegendSpec   `toml:"legend"`
	Series []SeriesSpec `toml:"series"`

	Callouts []CalloutSpec `toml:"callouts"`
}

// LegendSpec configures legend placement.
type LegendSpec struct {
	Location    string `toml:"location"`
	Orientation string `toml:"orientation"`
}

// SeriesSpec is one plotted series. Which data fields apply depends on kind:
// line/scatter/area use x+y, timeline uses times+y, bar uses categories+y,
// histogram uses y (the raw values) and bins.
type SeriesSpec struct {
	Kind       string    `toml:"kind"`
	Name       string    `toml:"name"`
	X          []float64 `toml:"x"`
	Y          []float64 `toml:"y"`
	Times      []string  `toml:"times"`
	Categories []string  `toml:"categories"`
	Bins       int       `toml:"bins"`
}

// CalloutSpec is one annotation: kind "text" (uses text, x, y),
// "vertical_line" (x), or "horizontal_line" (y).
type CalloutSpec struct {
	Kind string  `toml:"kind"`
	Text string  `toml:"text"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
}

// timeLayouts are the accepted formats for timeline series timestamps.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadSpec reads and parses a chart spec file.
func LoadSpec(path string) (*ChartSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read spec %s", path)
	}

	var spec ChartSpec
	if err := toml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "parse spec %s", path)
	}
	return &spec, nil
}

// BuildChart constructs a chart from a parsed spec on top of the global
// options. Spec fields override option defaults where both apply.
func BuildChart(spec *ChartSpec, opts options.Options, logger *charmlog.Logger) (*chart.Chart, error) {
	chartOpts := []chart.Option{
		chart.WithOptions(opts),
		chart.WithLogger(logger),
	}
	if spec.BlankLabels {
		chartOpts = append(chartOpts, chart.WithBlankLabels(true))
	}
	if spec.Layout != "" {
		chartOpts = append(chartOpts, chart.WithLayout(chart.Layout(spec.Layout)))
	}
	if spec.XAxisType != "" || spec.YAxisType != "" {
		x, y := chart.AxisType(spec.XAxisType), chart.AxisType(spec.YAxisType)
		if spec.XAxisType == "" {
			x = chart.AxisLinear
		}
		if spec.YAxisType == "" {
			y = chart.AxisLinear
		}
		chartOpts = append(chartOpts, chart.WithAxisTypes(x, y))
	}

	ch, err := chart.New(chartOpts...)
	if err != nil {
		return nil, err
	}

	if spec.Title != "" {
		ch.SetTitle(spec.Title)
	}
	if spec.Subtitle != "" {
		ch.SetSubtitle(spec.Subtitle)
	}
	if spec.Source != "" {
		ch.SetSourceLabel(spec.Source)
	}
	if spec.XLabel != "" {
		ch.Axes.SetXAxisLabel(spec.XLabel)
	}
	if spec.YLabel != "" {
		ch.Axes.SetYAxisLabel(spec.YLabel)
	}
	if spec.XTickFormat != "" {
		ch.Axes.SetXAxisTickFormat(spec.XTickFormat)
	}
	if spec.YTickFormat != "" {
		ch.Axes.SetYAxisTickFormat(spec.YTickFormat)
	}

	if err := applyRange(spec.XRange, "x_range", ch.Axes.SetXAxisRange); err != nil {
		return nil, err
	}
	if err := applyRange(spec.YRange, "y_range", ch.Axes.SetYAxisRange); err != nil {
		return nil, err
	}

	for i := range spec.Series {
		if err := addSeries(ch, &spec.Series[i]); err != nil {
			return nil, err
		}
	}

	for _, co := range spec.Callouts {
		switch co.Kind {
		case "text":
			ch.Callout.Text(co.Text, co.X, co.Y)
		case "vertical_line":
			ch.Callout.VerticalLine(co.X)
		case "horizontal_line":
			ch.Callout.HorizontalLine(co.Y)
		default:
			return nil, errors.New(errors.ErrCodeInvalidSpec,
				"callout kind must be %q, %q, or %q", "text", "vertical_line", "horizontal_line")
		}
	}

	if spec.Legend.Location != "" {
		orientation := spec.Legend.Orientation
		if orientation == "" {
			orientation = chart.OrientationHorizontal
		}
		if err := ch.SetLegendLocation(spec.Legend.Location, orientation); err != nil {
			return nil, err
		}
	}

	if spec.Logo != "" {
		if err := ch.SetLogo(spec.Logo); err != nil {
			return nil, err
		}
	}
	return ch, nil
}

// applyRange validates and applies a [min, max] range pair.
func applyRange(r []float64, field string, set func(min, max float64) error) error {
	switch len(r) {
	case 0:
		return nil
	case 2:
		return set(r[0], r[1])
	default:
		return errors.New(errors.ErrCodeInvalidSpec, "%s must be a [min, max] pair", field)
	}
}

// addSeries dispatches one series spec onto the chart's plot methods.
func addSeries(ch *chart.Chart, s *SeriesSpec) error {
	switch s.Kind {
	case "line":
		return ch.Plot.Line(s.Name, s.X, s.Y)
	case "scatter":
		return ch.Plot.Scatter(s.Name, s.X, s.Y)
	case "area":
		return ch.Plot.Area(s.Name, s.X, s.Y)
	case "timeline":
		times, err := parseTimes(s.Times)
		if err != nil {
			return err
		}
		return ch.Plot.TimeLine(s.Name, times, s.Y)
	case "bar":
		return ch.Plot.Bar(s.Name, s.Categories, s.Y)
	case "histogram":
		return ch.Plot.Histogram(s.Name, s.Y, s.Bins)
	default:
		return errors.New(errors.ErrCodeInvalidSpec,
			"series kind must be one of %v",
			[]string{"line", "scatter", "area", "timeline", "bar", "histogram"})
	}
}

// parseTimes parses timeline timestamps, trying each accepted layout.
func parseTimes(values []string) ([]time.Time, error) {
	times := make([]time.Time, len(values))
	for i, v := range values {
		var parsed bool
		for _, layout := range timeLayouts {
			t, err := time.Parse(layout, v)
			if err == nil {
				times[i] = t
				parsed = true
				break
			}
		}
		if !parsed {
			return nil, errors.New(errors.ErrCodeInvalidSpec,
				"cannot parse time %q: use RFC3339, %q, or %q",
				v, "2006-01-02 15:04:05", "2006-01-02")
		}
	}
	return times, nil
}

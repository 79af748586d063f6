package chart

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/Shokesu/chartify/pkg/errors"
)

// seriesKind identifies how a recorded series is drawn.
type seriesKind int

const (
	kindLine seriesKind = iota
	kindArea
	kindScatter
	kindBar
)

// series is one recorded data series. Numeric and datetime series store
// (x, y) pairs in xs/ys; categorical series store category labels in cats.
type series struct {
	kind seriesKind
	name string
	xs   []interface{}
	ys   []float64
	cats []string
}

// markLine is a vertical ("x") or horizontal ("y") reference line.
type markLine struct {
	name  string
	axis  string
	value float64
}

// markPoint is a text annotation anchored at data coordinates.
type markPoint struct {
	name string
	x, y float64
}

// legendState records the requested legend placement. The zero value is the
// engine default (horizontal, top center).
type legendState struct {
	hidden   bool
	location string
	left     string
	top      string
	orient   string

	// Plot-area padding overrides for outside_* placements.
	gridTop    string
	gridBottom string
	gridRight  string
}

// figure is the deferred build state for the underlying plotting engine.
// Sub-objects record configuration and series here; html() materializes the
// engine chart and renders the document.
type figure struct {
	chart *Chart

	pageTitle string
	title     string
	subtitle  string
	source    string

	xLabel, yLabel           string
	xTickFormat, yTickFormat string
	xMin, xMax, yMin, yMax   *float64

	toolbox bool
	legend  legendState

	series []series
	marks  []markLine
	points []markPoint
}

func newFigure(c *Chart, pageTitle string) *figure {
	return &figure{
		chart:     c,
		pageTitle: pageTitle,
		toolbox:   true,
	}
}

// hasSeries reports whether any data has been plotted yet.
func (f *figure) hasSeries() bool { return len(f.series) > 0 }

// categorical reports whether either declared axis is categorical, or a
// categorical series (bar, histogram bins) has been plotted.
func (f *figure) categoricalX() bool {
	if f.chart.xType == AxisCategorical {
		return true
	}
	for _, s := range f.series {
		if s.cats != nil && !f.horizontal() {
			return true
		}
	}
	return false
}

// horizontal reports whether bars run horizontally (categorical y axis).
func (f *figure) horizontal() bool { return f.chart.yType == AxisCategorical }

// echartsAxisType maps a chartify axis type onto the engine's axis types.
// Categorical becomes an auto-range category axis; density plots on linear.
func echartsAxisType(t AxisType) string {
	switch t {
	case AxisCategorical:
		return "category"
	case AxisDatetime:
		return "time"
	case AxisLog:
		return "log"
	default: // linear, density
		return "value"
	}
}

// html renders the figure to a single self-contained HTML document.
func (f *figure) html() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.render(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render figure")
	}
	doc := buf.Bytes()
	if f.source != "" {
		doc = injectSourceLabel(doc, f.source, f.chart.Style.Source)
	}
	return doc, nil
}

// render materializes the engine chart and writes the HTML document.
func (f *figure) render(w io.Writer) error {
	global := f.globalOpts()

	var line *charts.Line
	var scatter *charts.Scatter
	var bar *charts.Bar

	// First series on the base chart carries the callout marks.
	firstOpts := f.markOpts()

	for _, s := range f.series {
		switch s.kind {
		case kindLine, kindArea:
			if line == nil {
				line = charts.NewLine()
			}
			extra := []charts.SeriesOpts{}
			if s.kind == kindArea {
				extra = append(extra, charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.3}))
			}
			line.AddSeries(s.name, lineData(s), extra...)
		case kindScatter:
			if scatter == nil {
				scatter = charts.NewScatter()
			}
			scatter.AddSeries(s.name, scatterData(s))
		case kindBar:
			if bar == nil {
				bar = charts.NewBar()
				bar.SetXAxis(s.cats)
				if f.horizontal() {
					bar.XYReversal()
				}
			}
			bar.AddSeries(s.name, barData(s))
		}
	}

	// Pick a base chart and overlap the rest on its axes.
	switch {
	case line != nil:
		line.SetGlobalOptions(global...)
		applySeriesOpts(line, firstOpts)
		if scatter != nil {
			line.Overlap(scatter)
		}
		if bar != nil {
			line.Overlap(bar)
		}
		return line.Render(w)
	case scatter != nil:
		scatter.SetGlobalOptions(global...)
		applySeriesOpts(scatter, firstOpts)
		if bar != nil {
			scatter.Overlap(bar)
		}
		return scatter.Render(w)
	case bar != nil:
		bar.SetGlobalOptions(global...)
		applySeriesOpts(bar, firstOpts)
		return bar.Render(w)
	default:
		empty := charts.NewLine()
		empty.SetGlobalOptions(global...)
		return empty.Render(w)
	}
}

// globalOpts assembles the engine-level options from the figure state.
func (f *figure) globalOpts() []charts.GlobalOpts {
	style := f.chart.Style

	xType := echartsAxisType(f.chart.xType)
	yType := echartsAxisType(f.chart.yType)
	// Histogram bins force a category x axis even on density charts.
	if xType == "value" && f.categoricalX() {
		xType = "category"
	}

	xAxis := opts.XAxis{Type: xType, Name: f.xLabel}
	if f.xMin != nil {
		xAxis.Min = *f.xMin
	}
	if f.xMax != nil {
		xAxis.Max = *f.xMax
	}
	if f.xTickFormat != "" {
		xAxis.AxisLabel = &opts.AxisLabel{Formatter: types.FuncStr(f.xTickFormat)}
	}
	yAxis := opts.YAxis{Type: yType, Name: f.yLabel}
	if f.yMin != nil {
		yAxis.Min = *f.yMin
	}
	if f.yMax != nil {
		yAxis.Max = *f.yMax
	}
	if f.yTickFormat != "" {
		yAxis.AxisLabel = &opts.AxisLabel{Formatter: types.FuncStr(f.yTickFormat)}
	}

	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:     fmt.Sprintf("%dpx", style.PlotWidth()),
			Height:    fmt.Sprintf("%dpx", style.PlotHeight()),
			PageTitle: f.pageTitle,
			ChartID:   "chartify",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:         f.title,
			Subtitle:      f.subtitle,
			Left:          "left",
			TitleStyle:    &opts.TextStyle{Color: style.Title.Color, FontSize: style.Title.FontSize},
			SubtitleStyle: &opts.TextStyle{Color: style.Subtitle.Color, FontSize: style.Subtitle.FontSize},
		}),
		charts.WithLegendOpts(f.legendOpts()),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(yAxis),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(f.toolbox),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true), Title: "save"},
			},
		}),
		charts.WithColorsOpts(opts.Colors(style.ColorPalette())),
	}

	if grid := f.gridOpts(); grid != nil {
		global = append(global, charts.WithGridOpts(*grid))
	}
	return global
}

// legendOpts converts the recorded legend state to engine options.
func (f *figure) legendOpts() opts.Legend {
	leg := opts.Legend{
		Show:   opts.Bool(!f.legend.hidden),
		Orient: f.legend.orient,
		Left:   f.legend.left,
		Top:    f.legend.top,
	}
	if leg.Orient == "" {
		leg.Orient = "horizontal"
	}
	if leg.Left == "" {
		leg.Left = "center"
	}
	if leg.Top == "" {
		leg.Top = "top"
	}
	return leg
}

// gridOpts returns plot-area padding overrides, or nil when none are set.
func (f *figure) gridOpts() *opts.Grid {
	l := f.legend
	if l.gridTop == "" && l.gridBottom == "" && l.gridRight == "" {
		return nil
	}
	return &opts.Grid{Top: l.gridTop, Bottom: l.gridBottom, Right: l.gridRight}
}

// markOpts converts recorded callouts to series options for the base series.
func (f *figure) markOpts() []charts.SeriesOpts {
	var so []charts.SeriesOpts
	for _, m := range f.marks {
		switch m.axis {
		case "x":
			so = append(so, charts.WithMarkLineNameXAxisItemOpts(
				opts.MarkLineNameXAxisItem{Name: m.name, XAxis: m.value}))
		case "y":
			so = append(so, charts.WithMarkLineNameYAxisItemOpts(
				opts.MarkLineNameYAxisItem{Name: m.name, YAxis: m.value}))
		}
	}
	for _, p := range f.points {
		so = append(so, charts.WithMarkPointNameCoordItemOpts(
			opts.MarkPointNameCoordItem{Name: p.name, Coordinate: []interface{}{p.x, p.y}}))
	}
	return so
}

// seriesOptioner is implemented by engine charts that accept per-series
// options after construction.
type seriesOptioner interface {
	SetSeriesOptions(so ...charts.SeriesOpts)
}

// applySeriesOpts attaches callout marks to the base chart's series.
func applySeriesOpts(c seriesOptioner, so []charts.SeriesOpts) {
	if len(so) == 0 {
		return
	}
	c.SetSeriesOptions(so...)
}

func lineData(s series) []opts.LineData {
	data := make([]opts.LineData, len(s.ys))
	for i, y := range s.ys {
		data[i] = opts.LineData{Value: []interface{}{s.xs[i], y}}
	}
	return data
}

func scatterData(s series) []opts.ScatterData {
	data := make([]opts.ScatterData, len(s.ys))
	for i, y := range s.ys {
		data[i] = opts.ScatterData{Value: []interface{}{s.xs[i], y}}
	}
	return data
}

func barData(s series) []opts.BarData {
	data := make([]opts.BarData, len(s.ys))
	for i, y := range s.ys {
		data[i] = opts.BarData{Value: y}
	}
	return data
}

// injectSourceLabel appends the source-label glyph to the rendered document
// as an absolutely positioned element in the chart's corner.
func injectSourceLabel(doc []byte, text string, settings TextSettings) []byte {
	label := fmt.Sprintf(
		`<div style="position:absolute;right:10px;bottom:8px;font-size:%dpx;color:%s;font-family:Helvetica,Arial,sans-serif;">%s</div>`,
		settings.FontSize, settings.Color, html.EscapeString(text))
	closing := []byte("</body>")
	if !bytes.Contains(doc, closing) {
		return append(doc, []byte(label)...)
	}
	return bytes.Replace(doc, closing, append([]byte(label), closing...), 1)
}

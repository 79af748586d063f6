package chart

import (
	"strconv"
	"time"

	"github.com/Shokesu/chartify/pkg/errors"
)

// plotOp names a plotting capability.
type plotOp string

const (
	opLine      plotOp = "line"
	opScatter   plotOp = "scatter"
	opArea      plotOp = "area"
	opTimeLine  plotOp = "timeline"
	opBar       plotOp = "bar"
	opHistogram plotOp = "histogram"
)

// Plot exposes the plotting methods valid for the chart's axis-type pair.
// Calling a method the pair does not support fails with an invalid-argument
// error naming the axis types.
type Plot struct {
	c       *Chart
	variant string
	caps    map[plotOp]bool
}

// newPlot selects the plot variant for the chart's axis-type pair.
func newPlot(c *Chart) *Plot {
	p := &Plot{c: c, caps: map[plotOp]bool{}}

	xNumeric := c.xType == AxisLinear || c.xType == AxisLog
	yNumeric := c.yType == AxisLinear || c.yType == AxisLog

	switch {
	case c.xType == AxisDensity || c.yType == AxisDensity:
		p.variant = "density"
		p.caps[opHistogram] = true
	case c.xType == AxisCategorical || c.yType == AxisCategorical:
		p.variant = "categorical"
		p.caps[opBar] = true
	case c.xType == AxisDatetime && yNumeric:
		p.variant = "datetime"
		p.caps[opTimeLine] = true
	case xNumeric && yNumeric:
		p.variant = "numeric"
		p.caps[opLine] = true
		p.caps[opScatter] = true
		p.caps[opArea] = true
	}
	return p
}

// Variant returns the plot variant selected by the axis-type pair.
func (p *Plot) Variant() string { return p.variant }

// Supports reports whether the named operation is valid for this chart.
func (p *Plot) Supports(op string) bool { return p.caps[plotOp(op)] }

// require returns an invalid-argument error when op is unavailable.
func (p *Plot) require(op plotOp) error {
	if p.caps[op] {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidPlot,
		"%s is not available for %s x %s axes (plot variant %q)",
		op, p.c.xType, p.c.yType, p.variant)
}

// checkLengths validates matching series lengths.
func checkLengths(op plotOp, nx, ny int) error {
	if nx != ny {
		return errors.New(errors.ErrCodeInvalidPlot,
			"%s: x and y must have the same length (%d != %d)", op, nx, ny)
	}
	return nil
}

// Line plots a line series. Requires numeric x and y axes.
func (p *Plot) Line(name string, x, y []float64) error {
	if err := p.require(opLine); err != nil {
		return err
	}
	if err := checkLengths(opLine, len(x), len(y)); err != nil {
		return err
	}
	p.c.fig.series = append(p.c.fig.series, series{
		kind: kindLine, name: name, xs: toInterfaces(x), ys: y,
	})
	return nil
}

// Scatter plots a scatter series. Requires numeric x and y axes.
func (p *Plot) Scatter(name string, x, y []float64) error {
	if err := p.require(opScatter); err != nil {
		return err
	}
	if err := checkLengths(opScatter, len(x), len(y)); err != nil {
		return err
	}
	p.c.fig.series = append(p.c.fig.series, series{
		kind: kindScatter, name: name, xs: toInterfaces(x), ys: y,
	})
	return nil
}

// Area plots a filled line series. Requires numeric x and y axes.
func (p *Plot) Area(name string, x, y []float64) error {
	if err := p.require(opArea); err != nil {
		return err
	}
	if err := checkLengths(opArea, len(x), len(y)); err != nil {
		return err
	}
	p.c.fig.series = append(p.c.fig.series, series{
		kind: kindArea, name: name, xs: toInterfaces(x), ys: y,
	})
	return nil
}

// TimeLine plots a line series over time. Requires a datetime x axis.
func (p *Plot) TimeLine(name string, times []time.Time, y []float64) error {
	if err := p.require(opTimeLine); err != nil {
		return err
	}
	if err := checkLengths(opTimeLine, len(times), len(y)); err != nil {
		return err
	}
	xs := make([]interface{}, len(times))
	for i, t := range times {
		xs[i] = t.Format("2006-01-02 15:04:05")
	}
	p.c.fig.series = append(p.c.fig.series, series{
		kind: kindLine, name: name, xs: xs, ys: y,
	})
	return nil
}

// Bar plots a bar series over categories. Requires a categorical axis; bars
// run horizontally when the y axis is the categorical one.
func (p *Plot) Bar(name string, categories []string, values []float64) error {
	if err := p.require(opBar); err != nil {
		return err
	}
	if err := checkLengths(opBar, len(categories), len(values)); err != nil {
		return err
	}
	p.c.fig.series = append(p.c.fig.series, series{
		kind: kindBar, name: name, cats: categories, ys: values,
	})
	return nil
}

// Histogram bins values and plots the counts. Requires a density axis.
// bins <= 0 selects the default of 10 bins.
func (p *Plot) Histogram(name string, values []float64, bins int) error {
	if err := p.require(opHistogram); err != nil {
		return err
	}
	if len(values) == 0 {
		return errors.New(errors.ErrCodeInvalidPlot, "histogram: values must not be empty")
	}
	if bins <= 0 {
		bins = 10
	}
	cats, counts := binValues(values, bins)
	p.c.fig.series = append(p.c.fig.series, series{
		kind: kindBar, name: name, cats: cats, ys: counts,
	})
	return nil
}

// binValues computes equal-width histogram bins and their counts.
// Bin labels are the formatted lower edges.
func binValues(values []float64, bins int) ([]string, []float64) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / float64(bins)
	counts := make([]float64, bins)
	if width == 0 {
		// All values identical: single occupied bin.
		counts[0] = float64(len(values))
	} else {
		for _, v := range values {
			i := int((v - min) / width)
			if i >= bins {
				i = bins - 1 // max value lands in the last bin
			}
			counts[i]++
		}
	}

	cats := make([]string, bins)
	for i := range cats {
		cats[i] = formatFloat(min + float64(i)*width)
	}
	return cats, counts
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func toInterfaces(values []float64) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

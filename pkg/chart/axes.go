package chart

import "github.com/Shokesu/chartify/pkg/errors"

// Axes exposes axis label and range helpers for the chart's axis-type pair.
type Axes struct {
	c *Chart
}

func newAxes(c *Chart) *Axes {
	return &Axes{c: c}
}

// SetXAxisLabel sets the x axis label.
func (a *Axes) SetXAxisLabel(label string) *Axes {
	a.c.fig.xLabel = label
	return a
}

// XAxisLabel returns the x axis label.
func (a *Axes) XAxisLabel() string { return a.c.fig.xLabel }

// SetYAxisLabel sets the y axis label.
func (a *Axes) SetYAxisLabel(label string) *Axes {
	a.c.fig.yLabel = label
	return a
}

// SetXAxisTickFormat sets the x axis tick label template, e.g. "{value} km".
func (a *Axes) SetXAxisTickFormat(format string) *Axes {
	a.c.fig.xTickFormat = format
	return a
}

// SetYAxisTickFormat sets the y axis tick label template, e.g. "{value} %".
func (a *Axes) SetYAxisTickFormat(format string) *Axes {
	a.c.fig.yTickFormat = format
	return a
}

// YAxisLabel returns the y axis label.
func (a *Axes) YAxisLabel() string { return a.c.fig.yLabel }

// SetXAxisRange fixes the x axis range. Categorical axes auto-range and
// reject explicit ranges.
func (a *Axes) SetXAxisRange(min, max float64) error {
	if a.c.xType == AxisCategorical {
		return errors.New(errors.ErrCodeInvalidAxisType,
			"cannot set an explicit range on a categorical x axis")
	}
	a.c.fig.xMin, a.c.fig.xMax = &min, &max
	return nil
}

// SetYAxisRange fixes the y axis range. Categorical axes auto-range and
// reject explicit ranges.
func (a *Axes) SetYAxisRange(min, max float64) error {
	if a.c.yType == AxisCategorical {
		return errors.New(errors.ErrCodeInvalidAxisType,
			"cannot set an explicit range on a categorical y axis")
	}
	a.c.fig.yMin, a.c.fig.yMax = &min, &max
	return nil
}

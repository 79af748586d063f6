package chart

// Callout adds annotations to the chart: text anchored at data coordinates
// and horizontal or vertical reference lines. Annotations are attached to the
// figure's base series when it is rendered.
type Callout struct {
	c *Chart
}

func newCallout(c *Chart) *Callout {
	return &Callout{c: c}
}

// Text adds a text annotation at the given data coordinates.
func (co *Callout) Text(text string, x, y float64) *Callout {
	co.c.fig.points = append(co.c.fig.points, markPoint{name: text, x: x, y: y})
	return co
}

// VerticalLine adds a vertical reference line at the given x value.
func (co *Callout) VerticalLine(x float64) *Callout {
	co.c.fig.marks = append(co.c.fig.marks, markLine{axis: "x", value: x})
	return co
}

// HorizontalLine adds a horizontal reference line at the given y value.
func (co *Callout) HorizontalLine(y float64) *Callout {
	co.c.fig.marks = append(co.c.fig.marks, markLine{axis: "y", value: y})
	return co
}

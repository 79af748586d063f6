package chart

import (
	"fmt"

	"github.com/Shokesu/chartify/pkg/errors"
)

// Legend locations for SetLegendLocation.
//
// Inside placements position the legend within the plot area. Outside
// placements relocate it above, below, or beside the plot area by padding the
// plot grid, without deleting the legend. LegendHidden removes it from view.
const (
	LegendTopLeft       = "top_left"
	LegendTopCenter     = "top_center"
	LegendTopRight      = "top_right"
	LegendCenterLeft    = "center_left"
	LegendCenter        = "center"
	LegendCenterRight   = "center_right"
	LegendBottomLeft    = "bottom_left"
	LegendBottomCenter  = "bottom_center"
	LegendBottomRight   = "bottom_right"
	LegendOutsideTop    = "outside_top"
	LegendOutsideBottom = "outside_bottom"
	LegendOutsideRight  = "outside_right"
	LegendHidden        = "none"
)

// Legend orientations.
const (
	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"
)

var validLegendLocations = []string{
	LegendTopLeft, LegendTopCenter, LegendTopRight,
	LegendCenterLeft, LegendCenter, LegendCenterRight,
	LegendBottomLeft, LegendBottomCenter, LegendBottomRight,
	LegendOutsideTop, LegendOutsideBottom, LegendOutsideRight,
	LegendHidden,
}

// insideLegendPositions maps named inside placements to engine coordinates.
var insideLegendPositions = map[string][2]string{
	LegendTopLeft:      {"left", "top"},
	LegendTopCenter:    {"center", "top"},
	LegendTopRight:     {"right", "top"},
	LegendCenterLeft:   {"left", "middle"},
	LegendCenter:       {"center", "middle"},
	LegendCenterRight:  {"right", "middle"},
	LegendBottomLeft:   {"left", "bottom"},
	LegendBottomCenter: {"center", "bottom"},
	LegendBottomRight:  {"right", "bottom"},
}

// LegendLocation returns the most recently requested legend location,
// or "" if none was set.
func (c *Chart) LegendLocation() string { return c.fig.legend.location }

// SetLegendLocation places the chart legend.
//
// location is one of the Legend* constants; orientation is horizontal or
// vertical. LegendHidden hides the legend without discarding it. Placement
// requested before any data is plotted cannot apply yet; a warning is logged
// and the placement is recorded for the eventual render.
func (c *Chart) SetLegendLocation(location, orientation string) error {
	if err := c.checkOrientation(orientation); err != nil {
		return err
	}

	// Validate before touching legend state, so a rejected location leaves
	// the current placement and visibility intact.
	var inside [2]string
	switch location {
	case LegendHidden, LegendOutsideTop, LegendOutsideBottom, LegendOutsideRight:
	default:
		pos, ok := insideLegendPositions[location]
		if !ok {
			return errors.New(errors.ErrCodeInvalidLegend,
				"legend location must be one of %v", validLegendLocations)
		}
		inside = pos
	}

	if !c.fig.hasSeries() && location != LegendHidden {
		c.logger.Warn("Legend location will not apply. Set the legend after plotting data.")
	}

	leg := &c.fig.legend
	leg.orient = orientation
	leg.location = location
	leg.hidden = false
	leg.gridTop, leg.gridBottom, leg.gridRight = "", "", ""

	switch location {
	case LegendHidden:
		leg.hidden = true
	case LegendOutsideTop:
		// Legend above the plot area, below the title block. The title and
		// subtitle keep rendering above the relocated legend.
		leg.left, leg.top = "left", "top"
		leg.gridTop = "110"
	case LegendOutsideBottom:
		leg.left, leg.top = "center", "bottom"
		leg.gridBottom = "90"
	case LegendOutsideRight:
		leg.left, leg.top = "right", "middle"
		leg.gridRight = "160"
	default:
		leg.left, leg.top = inside[0], inside[1]
	}
	return nil
}

// SetLegendCoordinates places the legend at explicit pixel coordinates
// measured from the top-left corner of the chart.
func (c *Chart) SetLegendCoordinates(x, y float64, orientation string) error {
	if err := c.checkOrientation(orientation); err != nil {
		return err
	}
	if !c.fig.hasSeries() {
		c.logger.Warn("Legend location will not apply. Set the legend after plotting data.")
	}

	leg := &c.fig.legend
	leg.hidden = false
	leg.orient = orientation
	leg.location = fmt.Sprintf("%g,%g", x, y)
	leg.left = fmt.Sprintf("%d", int(x))
	leg.top = fmt.Sprintf("%d", int(y))
	leg.gridTop, leg.gridBottom, leg.gridRight = "", "", ""
	return nil
}

// LegendHiddenState reports whether the legend is currently hidden.
func (c *Chart) LegendHiddenState() bool { return c.fig.legend.hidden }

func (c *Chart) checkOrientation(orientation string) error {
	if orientation != OrientationHorizontal && orientation != OrientationVertical {
		return errors.New(errors.ErrCodeInvalidLegend,
			"legend orientation must be %q or %q", OrientationHorizontal, OrientationVertical)
	}
	return nil
}

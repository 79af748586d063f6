package cli

import (
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/Shokesu/chartify/pkg/chart"
	"github.com/Shokesu/chartify/pkg/errors"
	"github.com/Shokesu/chartify/pkg/options"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSpec(t *testing.T) {
	path := writeSpec(t, `
title = "Quarterly revenue"
subtitle = "EMEA, 2025"
source = "Finance DB"
layout = "slide_50%"
x_axis_type = "categorical"
x_label = "Quarter"
y_label = "Revenue"
logo = "acme"

[legend]
location = "outside_top"

[[series]]
kind = "bar"
name = "revenue"
categories = ["Q1", "Q2", "Q3"]
y = [1.2, 1.9, 2.4]

[[callouts]]
kind = "horizontal_line"
y = 2.0
`)

	spec, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}

	if spec.Title != "Quarterly revenue" {
		t.Errorf("Title = %q", spec.Title)
	}
	if spec.Layout != "slide_50%" {
		t.Errorf("Layout = %q", spec.Layout)
	}
	if spec.XAxisType != "categorical" {
		t.Errorf("XAxisType = %q", spec.XAxisType)
	}
	if spec.Legend.Location != "outside_top" {
		t.Errorf("Legend.Location = %q", spec.Legend.Location)
	}
	if len(spec.Series) != 1 || spec.Series[0].Kind != "bar" {
		t.Fatalf("Series = %+v", spec.Series)
	}
	if len(spec.Series[0].Categories) != 3 {
		t.Errorf("Categories = %v", spec.Series[0].Categories)
	}
	if len(spec.Callouts) != 1 || spec.Callouts[0].Kind != "horizontal_line" {
		t.Errorf("Callouts = %+v", spec.Callouts)
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadSpecBadTOML(t *testing.T) {
	path := writeSpec(t, `title = [broken`)
	_, err := LoadSpec(path)
	if !errors.Is(err, errors.ErrCodeInvalidSpec) {
		t.Fatalf("error = %v, want INVALID_SPEC", err)
	}
}

func TestBuildChart(t *testing.T) {
	spec := &ChartSpec{
		Title:     "Build test",
		Subtitle:  "sub",
		Source:    "src",
		Layout:    "slide_25%",
		XAxisType: "linear",
		YAxisType: "log",
		XLabel:    "x",
		YLabel:    "y",
		YRange:    []float64{1, 100},
		Legend:    LegendSpec{Location: "bottom_right"},
		Series: []SeriesSpec{
			{Kind: "line", Name: "a", X: []float64{1, 2}, Y: []float64{10, 20}},
			{Kind: "scatter", Name: "b", X: []float64{1, 2}, Y: []float64{30, 40}},
		},
		Callouts: []CalloutSpec{
			{Kind: "text", Text: "peak", X: 2, Y: 20},
			{Kind: "vertical_line", X: 1.5},
		},
	}

	ch, err := BuildChart(spec, options.Default(), charmlog.Default())
	if err != nil {
		t.Fatalf("BuildChart: %v", err)
	}

	if ch.Title() != "Build test" {
		t.Errorf("Title = %q", ch.Title())
	}
	if ch.Style.Layout() != chart.LayoutSlide25 {
		t.Errorf("Layout = %q", ch.Style.Layout())
	}
	if ch.YAxisType() != chart.AxisLog {
		t.Errorf("YAxisType = %q", ch.YAxisType())
	}
	if ch.Axes.XAxisLabel() != "x" || ch.Axes.YAxisLabel() != "y" {
		t.Errorf("axis labels = %q, %q", ch.Axes.XAxisLabel(), ch.Axes.YAxisLabel())
	}
	if ch.LegendLocation() != chart.LegendBottomRight {
		t.Errorf("LegendLocation = %q", ch.LegendLocation())
	}
}

func TestBuildChartTimeline(t *testing.T) {
	spec := &ChartSpec{
		XAxisType: "datetime",
		Series: []SeriesSpec{
			{
				Kind:  "timeline",
				Name:  "visits",
				Times: []string{"2025-01-02", "2025-01-03 10:30:00", "2025-01-04T00:00:00Z"},
				Y:     []float64{1, 2, 3},
			},
		},
	}

	if _, err := BuildChart(spec, options.Default(), charmlog.Default()); err != nil {
		t.Fatalf("BuildChart: %v", err)
	}
}

func TestBuildChartErrors(t *testing.T) {
	tests := []struct {
		name string
		spec *ChartSpec
		code errors.Code
	}{
		{
			name: "unknown series kind",
			spec: &ChartSpec{Series: []SeriesSpec{{Kind: "pie"}}},
			code: errors.ErrCodeInvalidSpec,
		},
		{
			name: "unknown callout kind",
			spec: &ChartSpec{Callouts: []CalloutSpec{{Kind: "arrow"}}},
			code: errors.ErrCodeInvalidSpec,
		},
		{
			name: "bad time format",
			spec: &ChartSpec{
				XAxisType: "datetime",
				Series:    []SeriesSpec{{Kind: "timeline", Times: []string{"01/02/2025"}, Y: []float64{1}}},
			},
			code: errors.ErrCodeInvalidSpec,
		},
		{
			name: "bad axis type",
			spec: &ChartSpec{XAxisType: "polar"},
			code: errors.ErrCodeInvalidAxisType,
		},
		{
			name: "bad layout",
			spec: &ChartSpec{Layout: "billboard"},
			code: errors.ErrCodeInvalidLayout,
		},
		{
			name: "range not a pair",
			spec: &ChartSpec{XRange: []float64{1, 2, 3}},
			code: errors.ErrCodeInvalidSpec,
		},
		{
			name: "series kind unavailable for axes",
			spec: &ChartSpec{
				XAxisType: "categorical",
				Series:    []SeriesSpec{{Kind: "line", X: []float64{1}, Y: []float64{2}}},
			},
			code: errors.ErrCodeInvalidPlot,
		},
		{
			name: "unknown logo",
			spec: &ChartSpec{Logo: "nothere"},
			code: errors.ErrCodeInvalidLogo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildChart(tt.spec, options.Default(), charmlog.Default())
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

// Package pkg provides the core libraries for chartify chart rendering.
//
// # Overview
//
// Chartify is a thin convenience layer over a charting engine: preset slide
// layouts, label and legend helpers, and a PNG export path driven by a
// headless browser. The pkg directory is organized into:
//
//  1. [chart] - Chart construction, styling, plotting, and export
//  2. [export] - Headless-browser rasterization and image helpers
//  3. [serve] - HTTP server exposing a chart as HTML and PNG
//  4. [cache] - Render-result cache (file, Redis, null backends)
//  5. [options] - Global defaults loaded from a TOML config file
//  6. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Quick Start
//
// Build a chart and export it:
//
//	ch, _ := chart.New(chart.WithAxisTypes(chart.AxisCategorical, chart.AxisLinear))
//	ch.SetTitle("Quarterly revenue").SetSourceLabel("Finance DB")
//	ch.Plot.Bar("revenue", []string{"Q1", "Q2", "Q3"}, []float64{1.2, 1.9, 2.4})
//	err := ch.Save(ctx, "revenue.png", chart.FormatPNG)
//
// The typical data flow:
//
//	chart spec / API calls
//	         ↓
//	    [chart] package (deferred figure state)
//	         ↓
//	    HTML document
//	         ↓
//	    [export] package (headless browser screenshot, Lanczos resize)
//	         ↓
//	    PNG output (with optional logo overlay)
//
// [chart]: https://pkg.go.dev/github.com/Shokesu/chartify/pkg/chart
// [export]: https://pkg.go.dev/github.com/Shokesu/chartify/pkg/export
// [serve]: https://pkg.go.dev/github.com/Shokesu/chartify/pkg/serve
// [cache]: https://pkg.go.dev/github.com/Shokesu/chartify/pkg/cache
// [options]: https://pkg.go.dev/github.com/Shokesu/chartify/pkg/options
// [errors]: https://pkg.go.dev/github.com/Shokesu/chartify/pkg/errors
// [observability]: https://pkg.go.dev/github.com/Shokesu/chartify/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/Shokesu/chartify/pkg/buildinfo
package pkg

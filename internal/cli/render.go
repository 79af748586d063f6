package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shokesu/chartify/pkg/cache"
	"github.com/Shokesu/chartify/pkg/chart"
	"github.com/Shokesu/chartify/pkg/export"
	"github.com/Shokesu/chartify/pkg/observability"
)

// renderCacheTTL bounds how long rasterized PNGs are kept.
const renderCacheTTL = 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path
	format    string // output format: "png" or "html"
	noCache   bool   // disable the render cache
	cacheDir  string // override the file cache directory
	redisAddr string // use a Redis render cache at this address
}

// renderCommand creates the render command for exporting chart specs.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [spec.toml]",
		Short: "Render a chart spec to PNG or HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if opts.format == "" {
				opts.format = formatFromPath(opts.output)
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
			}
			return c.runRender(cmd, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: spec path with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), html")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "override the render cache directory")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "use a Redis render cache at this address")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{chart.FormatPNG: true, chart.FormatHTML: true}

// validateFormat checks that the requested format is valid.
func validateFormat(format string) error {
	if !validFormats[format] {
		return fmt.Errorf("invalid format: %s (must be 'png' or 'html')", format)
	}
	return nil
}

// formatFromPath derives the output format from the output file extension,
// defaulting to PNG.
func formatFromPath(output string) string {
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if validFormats[ext] {
		return ext
	}
	return chart.FormatPNG
}

// runRender loads the spec, builds the chart, and writes the export.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	logger.Debugf("Rendering %s as %s", input, opts.format)

	globalOpts, err := c.loadOptions()
	if err != nil {
		return err
	}
	spec, err := LoadSpec(input)
	if err != nil {
		return err
	}
	ch, err := BuildChart(spec, globalOpts, logger)
	if err != nil {
		return err
	}

	prog := newProgress(logger)

	var cached bool
	switch opts.format {
	case chart.FormatHTML:
		doc, err := ch.HTML(chart.FormatHTML)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.output, doc, 0o644); err != nil {
			return err
		}
	case chart.FormatPNG:
		cached, err = c.renderPNG(cmd, ch, spec.Logo, opts)
		if err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("Rendered %s", opts.output))
	printSuccess("Chart rendered")
	printFile(opts.output)
	printRenderStats(len(spec.Series), opts.format, cached)
	return nil
}

// renderPNG rasterizes the chart, consulting the render cache first. It
// reports whether the result came from the cache.
func (c *CLI) renderPNG(cmd *cobra.Command, ch *chart.Chart, logoName string, opts *renderOpts) (bool, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	store, err := newCache(opts.noCache, opts.redisAddr, opts.cacheDir, cmd)
	if err != nil {
		return false, err
	}
	defer store.Close()

	doc, err := ch.HTML(chart.FormatPNG)
	if err != nil {
		return false, err
	}
	key := cache.RenderKey(cache.Hash(doc), cache.RenderKeyOpts{
		Width:  ch.Style.PlotWidth(),
		Height: ch.Style.PlotHeight(),
		Format: chart.FormatPNG,
		Logo:   logoName,
	})

	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, key)
		logger.Debugf("Render cache hit: %s", key)
		return true, os.WriteFile(opts.output, data, 0o644)
	}
	observability.Cache().OnCacheMiss(ctx, key)

	spinner := newSpinnerWithContext(ctx, "Rasterizing chart...")
	spinner.Start()
	img, err := ch.PNG(ctx)
	spinner.Stop()
	if err != nil {
		return false, err
	}

	data, err := export.EncodePNG(img)
	if err != nil {
		return false, err
	}
	if err := store.Set(ctx, key, data, renderCacheTTL); err != nil {
		logger.Debugf("Render cache write failed: %v", err)
	} else {
		observability.Cache().OnCacheSet(ctx, key, len(data))
	}
	return false, os.WriteFile(opts.output, data, 0o644)
}

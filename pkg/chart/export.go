package chart

import (
	"context"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/Shokesu/chartify/pkg/errors"
	"github.com/Shokesu/chartify/pkg/export"
)

// Export formats. HTML keeps the chart interactive; PNG rasterizes it via a
// headless browser at the chart's configured pixel size.
const (
	FormatHTML = "html"
	FormatPNG  = "png"
)

// setToolbarForFormat toggles the interactive toolbar per output format.
// An empty format leaves the toolbar untouched.
func (c *Chart) setToolbarForFormat(format string) error {
	switch format {
	case FormatHTML:
		c.fig.toolbox = true
	case FormatPNG:
		c.fig.toolbox = false
	case "":
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q: valid options are %q or %q", format, FormatHTML, FormatPNG)
	}
	return nil
}

// HTML renders the chart to a single HTML document configured for the given
// export format ("html" shows the toolbar, "png" hides it; "" leaves the
// current toolbar state).
func (c *Chart) HTML(format string) ([]byte, error) {
	if err := c.setToolbarForFormat(format); err != nil {
		return nil, err
	}
	return c.fig.html()
}

// PNG rasterizes the chart via a headless browser and returns an image with
// the chart's configured pixel dimensions. A selected logo is composited
// into the result.
func (c *Chart) PNG(ctx context.Context) (image.Image, error) {
	doc, err := c.HTML(FormatPNG)
	if err != nil {
		return nil, err
	}
	img, err := export.PNG(ctx, doc, c.Style.PlotWidth(), c.Style.PlotHeight())
	if err != nil {
		return nil, err
	}
	return c.logo.apply(img), nil
}

// Save writes the chart to filename in the given format.
//
// "html" writes the interactive document; "png" writes an image whose pixel
// dimensions exactly equal the chart's configured width and height. Any
// other format fails with an invalid-argument error.
func (c *Chart) Save(ctx context.Context, filename, format string) error {
	switch format {
	case FormatHTML:
		doc, err := c.HTML(format)
		if err != nil {
			return err
		}
		return os.WriteFile(filename, doc, 0o644)
	case FormatPNG:
		img, err := c.PNG(ctx)
		if err != nil {
			return err
		}
		return saveImage(img, filename)
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q: valid options are %q or %q", format, FormatHTML, FormatPNG)
	}
}

// Show renders the chart to a temporary file and opens it with the system
// viewer. Format semantics match Save.
func (c *Chart) Show(ctx context.Context, format string) error {
	switch format {
	case FormatHTML, FormatPNG:
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q: valid options are %q or %q", format, FormatHTML, FormatPNG)
	}

	path := filepath.Join(os.TempDir(), "chartify-"+uuid.NewString()+"."+format)
	if err := c.Save(ctx, path, format); err != nil {
		return err
	}
	return openFile(ctx, path)
}

// saveImage writes an image, inferring the encoding from the file extension
// and falling back to PNG for unknown extensions.
func saveImage(img image.Image, filename string) error {
	err := imaging.Save(img, filename)
	if err == imaging.ErrUnsupportedFormat {
		f, createErr := os.Create(filename)
		if createErr != nil {
			return createErr
		}
		defer f.Close()
		return imaging.Encode(f, img, imaging.PNG)
	}
	return err
}

// openFile opens path with the platform's default viewer.
func openFile(ctx context.Context, path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", path)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	// Reap the viewer without blocking on it.
	go func() { _ = cmd.Wait() }()
	return nil
}

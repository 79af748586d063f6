// Package export rasterizes rendered chart HTML to static images.
//
// The plotting engine can only produce HTML. To get a PNG, the document is
// written to a temporary file and opened in a headless Chromium instance
// sized to the chart's pixel dimensions; a full-page screenshot is captured,
// decoded, and resampled to the exact target size when the browser's output
// differs (e.g. on high-DPI displays).
//
// The browser process and temporary file live for the duration of one call.
// There is no retry or timeout logic here: the caller's context propagates,
// and browser failures surface directly.
package export

import (
	"bytes"
	"context"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/Shokesu/chartify/pkg/errors"
	"github.com/Shokesu/chartify/pkg/observability"
)

// settleDelay gives the chart runtime time to finish its initial draw before
// the screenshot is captured.
const settleDelay = 500 * time.Millisecond

// PNG renders an HTML document in a headless browser window of width×height
// pixels and returns the screenshot resampled to exactly those dimensions.
func PNG(ctx context.Context, doc []byte, width, height int) (img image.Image, err error) {
	start := time.Now()
	observability.Export().OnExportStart(ctx, "png", width, height)
	defer func() {
		observability.Export().OnExportComplete(ctx, "png", time.Since(start), err)
	}()

	path := filepath.Join(os.TempDir(), "chartify-"+uuid.NewString()+".html")
	if err = os.WriteFile(path, doc, 0o600); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "write temp document")
	}
	defer os.Remove(path)

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(width, height),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("hide-scrollbars", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	shotStart := time.Now()
	var shot []byte
	if runErr := chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+path),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(`document.body.style.margin = '0px';`, nil),
		chromedp.Sleep(settleDelay),
		chromedp.FullScreenshot(&shot, 100),
	); runErr != nil {
		err = errors.Wrap(errors.ErrCodeBrowserFailed, runErr, "capture screenshot")
		return nil, err
	}

	img, err = imaging.Decode(bytes.NewReader(shot))
	if err != nil {
		err = errors.Wrap(errors.ErrCodeBrowserFailed, err, "decode screenshot")
		return nil, err
	}
	raw := img.Bounds()
	observability.Export().OnScreenshotComplete(ctx, raw.Dx(), raw.Dy(), time.Since(shotStart))

	return FitToSize(img, width, height), nil
}

// FitToSize resamples img to width×height with a Lanczos filter when its
// dimensions differ from the target; otherwise it returns img unchanged.
func FitToSize(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// EncodePNG encodes an image as PNG bytes, e.g. for caching or HTTP serving.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodePNG decodes image bytes produced by EncodePNG.
func DecodePNG(data []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(data))
}

package chart

import (
	"image"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/Shokesu/chartify/pkg/errors"
	"github.com/Shokesu/chartify/pkg/options"
)

// logoPadding is the pixel gap between the logo and the chart edge.
const logoPadding = 10

// Logo maintains the registry of selectable logo images and the resized
// image composited onto PNG exports. Logos do not appear on HTML output.
type Logo struct {
	c     *Chart
	img   image.Image
	dir   string
	files map[string]string
}

func newLogo(c *Chart, cfg options.LogoOptions) *Logo {
	files := make(map[string]string, len(cfg.Files))
	for name, filename := range cfg.Files {
		files[name] = filename
	}
	return &Logo{c: c, dir: cfg.Path, files: files}
}

// Register adds a logo to the registry. The filename is resolved against the
// configured logo directory.
func (l *Logo) Register(name, filename string) {
	l.files[name] = filename
}

// Names returns the registered logo names in sorted order.
func (l *Logo) Names() []string {
	names := make([]string, 0, len(l.files))
	for name := range l.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Image returns the resized logo image, or nil when no logo is set.
func (l *Logo) Image() image.Image { return l.img }

// Set selects a registered logo by name, loading and resizing its image.
// Unknown names fail with an error listing the valid registered names.
func (l *Logo) Set(name string) error {
	filename, ok := l.files[name]
	if !ok {
		return errors.New(errors.ErrCodeInvalidLogo,
			"must supply a valid logo name: %v", l.Names())
	}

	img, err := imaging.Open(filepath.Join(l.dir, filename))
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "open logo %q", name)
	}

	l.img = resizeLogo(img, l.c.Style.PlotHeight()/10)
	return nil
}

// resizeLogo scales a logo to the target height: square logos become
// target×target, others keep their aspect ratio.
func resizeLogo(img image.Image, targetHeight int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == h {
		return imaging.Resize(img, targetHeight, targetHeight, imaging.Lanczos)
	}
	ratio := float64(w) / float64(h)
	return imaging.Resize(img, int(ratio*float64(targetHeight)), targetHeight, imaging.Lanczos)
}

// apply composites the selected logo into the bottom-right corner of a
// rendered chart image. Without a selected logo the image passes through.
func (l *Logo) apply(base image.Image) image.Image {
	if l.img == nil {
		return base
	}
	bb := base.Bounds()
	lb := l.img.Bounds()
	pos := image.Pt(bb.Dx()-lb.Dx()-logoPadding, bb.Dy()-lb.Dy()-logoPadding)
	return imaging.Overlay(base, l.img, pos, 1.0)
}

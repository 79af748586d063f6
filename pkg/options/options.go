// Package options holds global chartify defaults.
//
// Options control chart construction defaults (blank labels, layout) and
// export behavior (logo directory, page title). They can be overridden from
// a TOML config file, typically ~/.config/chartify/config.toml:
//
//	blank_labels = true
//	layout = "slide_75%"
//
//	[logos]
//	path = "/usr/share/chartify/logos"
//	files = { acme = "acme.png" }
package options

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Shokesu/chartify/pkg/errors"
)

// Options holds the global chartify settings.
type Options struct {
	// BlankLabels removes the default title, subtitle, and source-label
	// placeholder text from new charts.
	BlankLabels bool `toml:"blank_labels"`

	// Layout is the default layout preset for new charts.
	Layout string `toml:"layout"`

	// PageTitle is the <title> used for saved HTML documents.
	PageTitle string `toml:"page_title"`

	// Logos configures the logo registry consumed by Chart.SetLogo.
	Logos LogoOptions `toml:"logos"`
}

// LogoOptions configures where logo images are loaded from.
type LogoOptions struct {
	// Path is the directory containing logo image files.
	Path string `toml:"path"`

	// Files maps logo names to filenames inside Path.
	Files map[string]string `toml:"files"`
}

// Default returns the built-in option values.
func Default() Options {
	return Options{
		BlankLabels: false,
		Layout:      "slide_100%",
		PageTitle:   "Chartify chart.",
		Logos: LogoOptions{
			Path:  defaultLogosPath(),
			Files: map[string]string{},
		},
	}
}

// Load reads options from a TOML file, overlaying the defaults.
// A missing file is not an error; the defaults are returned unchanged.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return opts, nil
	}
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &opts); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidSpec, err, "parse config %s", path)
	}
	if opts.Logos.Files == nil {
		opts.Logos.Files = map[string]string{}
	}
	return opts, nil
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "chartify", "config.toml")
}

// defaultLogosPath returns the conventional logo directory.
func defaultLogosPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "chartify", "logos")
}

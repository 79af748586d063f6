package chart

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Shokesu/chartify/pkg/errors"
)

func TestNewDefaults(t *testing.T) {
	ch, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if ch.XAxisType() != AxisLinear || ch.YAxisType() != AxisLinear {
		t.Errorf("default axes = %s x %s, want linear x linear", ch.XAxisType(), ch.YAxisType())
	}
	if ch.Style.Layout() != LayoutSlide100 {
		t.Errorf("default layout = %s", ch.Style.Layout())
	}
	if ch.Style.PlotWidth() != 960 || ch.Style.PlotHeight() != 540 {
		t.Errorf("default size = %dx%d, want 960x540", ch.Style.PlotWidth(), ch.Style.PlotHeight())
	}

	// Placeholder labels nudge users toward the setters.
	if ch.Title() != defaultTitle {
		t.Errorf("default title = %q", ch.Title())
	}
	if ch.Subtitle() != defaultSubtitle {
		t.Errorf("default subtitle = %q", ch.Subtitle())
	}
	if ch.SourceText() != defaultSource {
		t.Errorf("default source = %q", ch.SourceText())
	}
}

func TestNewValidatesAxisTypes(t *testing.T) {
	tests := []struct {
		name string
		x, y AxisType
		ok   bool
	}{
		{"linear x linear", AxisLinear, AxisLinear, true},
		{"datetime x log", AxisDatetime, AxisLog, true},
		{"categorical x categorical", AxisCategorical, AxisCategorical, true},
		{"density x linear", AxisDensity, AxisLinear, true},
		{"invalid x", AxisType("polar"), AxisLinear, false},
		{"invalid y", AxisLinear, AxisType("radial"), false},
		{"datetime y is invalid", AxisLinear, AxisDatetime, false},
		{"empty x", AxisType(""), AxisLinear, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(WithAxisTypes(tt.x, tt.y))
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok {
				if !errors.Is(err, errors.ErrCodeInvalidAxisType) {
					t.Fatalf("error = %v, want INVALID_AXIS_TYPE", err)
				}
				// The error must enumerate the valid set.
				if !bytes.Contains([]byte(err.Error()), []byte("linear")) {
					t.Errorf("error should list valid axis types: %v", err)
				}
			}
		})
	}
}

func TestNewValidatesLayout(t *testing.T) {
	_, err := New(WithLayout(Layout("slide_33%")))
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Fatalf("error = %v, want INVALID_LAYOUT", err)
	}
}

func TestLabelRoundTrips(t *testing.T) {
	ch, err := New()
	if err != nil {
		t.Fatal(err)
	}

	ch.SetTitle("Quarterly revenue")
	if ch.Title() != "Quarterly revenue" {
		t.Errorf("Title = %q", ch.Title())
	}

	ch.SetSubtitle("EMEA, 2025")
	if ch.Subtitle() != "EMEA, 2025" {
		t.Errorf("Subtitle = %q", ch.Subtitle())
	}

	ch.SetSourceLabel("Finance DB")
	if ch.SourceText() != "Finance DB" {
		t.Errorf("SourceText = %q", ch.SourceText())
	}

	// Empty string removes a label.
	ch.SetSubtitle("")
	if ch.Subtitle() != "" {
		t.Errorf("Subtitle after clearing = %q", ch.Subtitle())
	}
}

func TestBlankLabels(t *testing.T) {
	ch, err := New(WithBlankLabels(true))
	if err != nil {
		t.Fatal(err)
	}

	if ch.Title() != "" || ch.Subtitle() != "" || ch.SourceText() != "" {
		t.Errorf("blank labels chart has title=%q subtitle=%q source=%q",
			ch.Title(), ch.Subtitle(), ch.SourceText())
	}
}

func TestHTMLContainsLabels(t *testing.T) {
	ch, err := New()
	if err != nil {
		t.Fatal(err)
	}
	ch.SetTitle("Quarterly revenue")
	ch.SetSourceLabel("Finance DB")
	if err := ch.Plot.Line("revenue", []float64{1, 2, 3}, []float64{4, 5, 6}); err != nil {
		t.Fatal(err)
	}

	doc, err := ch.HTML(FormatHTML)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !bytes.Contains(doc, []byte("Quarterly revenue")) {
		t.Error("document should contain the title")
	}
	if !bytes.Contains(doc, []byte("Finance DB")) {
		t.Error("document should contain the source label")
	}
}

func TestHTMLEscapesSourceLabel(t *testing.T) {
	ch, err := New(WithBlankLabels(true))
	if err != nil {
		t.Fatal(err)
	}
	ch.SetSourceLabel(`<script>alert("x")</script>`)

	doc, err := ch.HTML(FormatHTML)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(doc, []byte(`<script>alert`)) {
		t.Error("source label must be HTML-escaped")
	}
}

func TestToolbarPerFormat(t *testing.T) {
	ch, err := New()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ch.HTML(FormatPNG); err != nil {
		t.Fatal(err)
	}
	if ch.fig.toolbox {
		t.Error("png format should hide the toolbar")
	}

	if _, err := ch.HTML(FormatHTML); err != nil {
		t.Fatal(err)
	}
	if !ch.fig.toolbox {
		t.Error("html format should show the toolbar")
	}

	// Empty format leaves the toolbar untouched.
	ch.fig.toolbox = false
	if _, err := ch.HTML(""); err != nil {
		t.Fatal(err)
	}
	if ch.fig.toolbox {
		t.Error("empty format should not change the toolbar")
	}
}

func TestInvalidFormat(t *testing.T) {
	ch, err := New()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	for _, op := range []func() error{
		func() error { _, err := ch.HTML("svg"); return err },
		func() error { return ch.Save(ctx, "out.svg", "svg") },
		func() error { return ch.Show(ctx, "svg") },
	} {
		err := op()
		if !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("error = %v, want INVALID_FORMAT", err)
		}
		if !bytes.Contains([]byte(err.Error()), []byte("html")) ||
			!bytes.Contains([]byte(err.Error()), []byte("png")) {
			t.Errorf("error should name the valid formats: %v", err)
		}
	}
}

func TestSaveHTML(t *testing.T) {
	ch, err := New()
	if err != nil {
		t.Fatal(err)
	}
	ch.SetTitle("Saved chart")

	path := filepath.Join(t.TempDir(), "chart.html")
	if err := ch.Save(context.Background(), path, FormatHTML); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("Saved chart")) {
		t.Error("saved document should contain the title")
	}
	if !bytes.Contains(data, []byte("Chartify chart.")) {
		t.Error("saved document should carry the fixed page title")
	}
}

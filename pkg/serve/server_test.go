package serve

import (
	"context"
	"image"
	"image/color"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/Shokesu/chartify/pkg/chart"
	"github.com/Shokesu/chartify/pkg/errors"
	"github.com/Shokesu/chartify/pkg/export"
)

// Compile-time check that the real chart type satisfies Renderer.
var _ Renderer = (*chart.Chart)(nil)

// fakeRenderer serves a fixed document and image without a browser.
type fakeRenderer struct {
	doc []byte
	img image.Image
	err error
}

func (f *fakeRenderer) HTML(format string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func (f *fakeRenderer) PNG(ctx context.Context) (image.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.img, nil
}

func newTestServer(t *testing.T, r Renderer) *Server {
	t.Helper()
	return New(r, nil)
}

func TestServeHTML(t *testing.T) {
	fake := &fakeRenderer{doc: []byte("<html><body>quarterly revenue</body></html>")}
	srv := newTestServer(t, fake)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %s", ct)
	}
	if !strings.Contains(rec.Body.String(), "quarterly revenue") {
		t.Error("body should contain the chart document")
	}
}

func TestServePNG(t *testing.T) {
	fake := &fakeRenderer{img: imaging.New(240, 135, color.White)}
	srv := newTestServer(t, fake)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest("GET", "/png", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %s", ct)
	}

	img, err := export.DecodePNG(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("response is not a decodable PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 240 || b.Dy() != 135 {
		t.Errorf("image %dx%d, want 240x135", b.Dx(), b.Dy())
	}
}

func TestServeConcurrentRequests(t *testing.T) {
	// Handlers run on concurrent goroutines while rendering mutates chart
	// state, so renders must be serialized. Run with -race.
	ch, err := chart.New()
	if err != nil {
		t.Fatal(err)
	}
	if err := ch.Plot.Line("revenue", []float64{1, 2, 3}, []float64{10, 20, 15}); err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, ch)
	handler := srv.Routes()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
			if rec.Code != 200 {
				t.Errorf("status = %d, want 200", rec.Code)
			}
		}()
	}
	wg.Wait()
}

func TestServeRenderError(t *testing.T) {
	fake := &fakeRenderer{err: errors.New(errors.ErrCodeRenderFailed, "render figure")}
	srv := newTestServer(t, fake)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != 500 {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "render figure") {
		t.Error("error body should carry the user message")
	}
}

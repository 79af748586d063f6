// Package serve exposes a chart over HTTP.
//
// The interactive HTML document is served at /, and a rasterized PNG at
// /png. This is the "show" path for environments without a local browser
// viewer (remote sessions, dashboards embedding the chart in an iframe).
package serve

import (
	"context"
	"image"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/Shokesu/chartify/pkg/errors"
	"github.com/Shokesu/chartify/pkg/export"
)

// Renderer is the chart surface the server needs. *chart.Chart implements it.
type Renderer interface {
	// HTML renders the chart document for the given export format.
	HTML(format string) ([]byte, error)

	// PNG rasterizes the chart at its configured pixel size.
	PNG(ctx context.Context) (image.Image, error)
}

// Server serves a single chart over HTTP.
type Server struct {
	chart  Renderer
	logger *log.Logger

	// mu serializes renders. Rendering mutates figure state on the chart,
	// which is not safe for concurrent use, while HTTP handlers run on
	// concurrent goroutines.
	mu sync.Mutex
}

// New creates a server for the given chart.
func New(chart Renderer, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{chart: chart, logger: logger}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Get("/", s.handleHTML)
	r.Get("/png", s.handlePNG)
	return r
}

// ListenAndServe serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:        addr,
		Handler:     s.Routes(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHTML(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	doc, err := s.chart.HTML("html")
	s.mu.Unlock()
	if err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(doc)
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	img, err := s.chart.PNG(r.Context())
	s.mu.Unlock()
	if err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
		return
	}
	data, err := export.EncodePNG(img)
	if err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

// logRequests logs each request with its duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

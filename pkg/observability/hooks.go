// Package observability provides hooks for metrics, tracing, and logging.
//
// Chartify's export pipeline and render cache emit events through a simple
// hooks pattern: interfaces with no-op defaults that consumers can replace at
// startup. The core library stays free of observability framework
// dependencies; main can register an OpenTelemetry or Prometheus
// implementation without any changes here.
//
// # Usage
//
//	func main() {
//	    observability.SetExportHooks(&myExportHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Export().OnExportStart(ctx, "png", width, height)
//	// ... rasterize ...
//	observability.Export().OnExportComplete(ctx, "png", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// ExportHooks receives events from the chart export pipeline.
type ExportHooks interface {
	// OnExportStart is called when an export begins.
	OnExportStart(ctx context.Context, format string, width, height int)

	// OnScreenshotComplete is called after the headless browser screenshot,
	// with the raw (pre-resample) image dimensions.
	OnScreenshotComplete(ctx context.Context, rawWidth, rawHeight int, duration time.Duration)

	// OnExportComplete is called when the export finishes.
	OnExportComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// CacheHooks receives events from render cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, key string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, key string, size int)
}

// noopExportHooks is the default no-op implementation.
type noopExportHooks struct{}

func (noopExportHooks) OnExportStart(context.Context, string, int, int)              {}
func (noopExportHooks) OnScreenshotComplete(context.Context, int, int, time.Duration) {}
func (noopExportHooks) OnExportComplete(context.Context, string, time.Duration, error) {}

// noopCacheHooks is the default no-op implementation.
type noopCacheHooks struct{}

func (noopCacheHooks) OnCacheHit(context.Context, string)       {}
func (noopCacheHooks) OnCacheMiss(context.Context, string)      {}
func (noopCacheHooks) OnCacheSet(context.Context, string, int)  {}

var (
	mu          sync.RWMutex
	exportHooks ExportHooks = noopExportHooks{}
	cacheHooks  CacheHooks  = noopCacheHooks{}
)

// SetExportHooks registers export hooks. Pass nil to restore the no-op default.
func SetExportHooks(h ExportHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		exportHooks = noopExportHooks{}
		return
	}
	exportHooks = h
}

// SetCacheHooks registers cache hooks. Pass nil to restore the no-op default.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		cacheHooks = noopCacheHooks{}
		return
	}
	cacheHooks = h
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	mu.RLock()
	defer mu.RUnlock()
	return exportHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}

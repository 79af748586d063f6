// Package cache provides a render-result cache for chartify.
//
// Rasterizing a chart means launching a headless browser, which is by far
// the slowest step of a PNG export. Caching the encoded PNG keyed by the
// rendered HTML and target dimensions lets repeated exports of an unchanged
// chart skip the browser entirely.
//
// Backends: FileCache (default for CLI usage), RedisCache (shared cache),
// NullCache (caching disabled).
package cache

import (
	"context"
	"time"
)

// Cache is the interface implemented by all cache backends.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// RenderKeyOpts identifies a rasterization request beyond its HTML content.
// Logo names the composited logo, since the logo overlay happens after the
// browser screenshot and is not part of the HTML.
type RenderKeyOpts struct {
	Width  int
	Height int
	Format string
	Logo   string
}

// RenderKey builds a cache key for a rasterized chart.
// htmlHash should be Hash() of the rendered HTML document, so any change to
// the chart content or styling produces a different key.
func RenderKey(htmlHash string, opts RenderKeyOpts) string {
	return hashKey("render:"+htmlHash, opts)
}

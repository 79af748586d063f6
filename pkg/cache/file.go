package cache

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores render results on disk, rooted at the user's cache
// directory. This is the default backend for CLI exports.
//
// Entries are binary payloads (an encoded PNG can run to several megabytes),
// so each entry is written raw behind a fixed-size expiry header rather than
// wrapped in a JSON envelope.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-backed cache rooted at dir, creating the
// directory if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// entryHeaderLen is the size of the entry header: the expiration time as
// big-endian unix nanoseconds, zero for entries that never expire.
const entryHeaderLen = 8

// Get retrieves a render result. Absent, truncated, and expired entries all
// report a miss; truncated and expired entry files are removed.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(raw) < entryHeaderLen {
		_ = os.Remove(path)
		return nil, false, nil
	}

	expiresAt := int64(binary.BigEndian.Uint64(raw[:entryHeaderLen]))
	if expiresAt != 0 && time.Now().UnixNano() > expiresAt {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return raw[entryHeaderLen:], true, nil
}

// Set stores a render result. A zero TTL stores it without expiration.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UnixNano()
	}

	entry := make([]byte, entryHeaderLen+len(data))
	binary.BigEndian.PutUint64(entry[:entryHeaderLen], uint64(expiresAt))
	copy(entry[entryHeaderLen:], data)

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, entry, 0644)
}

// Delete removes an entry. Deleting a missing entry is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; entries persist across runs.
func (c *FileCache) Close() error {
	return nil
}

// path maps a cache key to its entry file, fanning entries out over
// two-character subdirectories so a long-lived cache does not pile every
// render into one directory.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".bin")
}

var _ Cache = (*FileCache)(nil)

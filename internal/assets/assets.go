// Package assets reads asset files from a set of root directories, with
// caching and background loading.
package assets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/h2non/filetype"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when no root holds the requested file.
var ErrNotFound = errors.New("asset not found")

// Manager resolves asset paths against its roots.
type Manager struct {
	roots []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a manager searching the given root directories.
func NewManager(roots ...string) *Manager {
	return &Manager{
		roots: roots,
		cache: NewCache(),
	}
}

// AddRoot adds a root directory.
// Roots are searched in reverse order (last added = highest priority).
func (m *Manager) AddRoot(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding asset root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset root %s is not a directory", dir)
	}

	m.mu.Lock()
	m.roots = append(m.roots, dir)
	m.mu.Unlock()

	return nil
}

// Load reads an asset. Paths are relative to the roots; a leading slash is
// ignored so web-style paths ("/assets/x.png") resolve the same way.
func (m *Manager) Load(path string) ([]byte, error) {
	if data, ok := m.cache.Get(path); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rel := filepath.FromSlash(strings.TrimPrefix(path, "/"))
	for i := len(m.roots) - 1; i >= 0; i-- {
		data, err := os.ReadFile(filepath.Join(m.roots[i], rel))
		if err == nil {
			m.cache.Set(path, data)
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
}

// Result is the outcome of one background load.
type Result struct {
	Path string
	Data []byte
	Err  error
}

// LoadAsync reads paths in the background, at most limit at a time
// (limit <= 0 means no limit). Exactly one Result per path is delivered on
// the returned channel, in completion order; the channel is closed after
// the last one.
func (m *Manager) LoadAsync(ctx context.Context, limit int, paths ...string) <-chan Result {
	out := make(chan Result, len(paths))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	go func() {
		for _, p := range paths {
			p := p // per-iteration copy; go directive is 1.21
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					out <- Result{Path: p, Err: err}
					return nil
				}
				data, err := m.Load(p)
				out <- Result{Path: p, Data: data, Err: err}
				return nil
			})
		}
		g.Wait()
		close(out)
	}()

	return out
}

// Close drops every cached asset.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Stats returns cache hits and misses.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Sniff returns the MIME type detected from the file header, or "" when
// the type is unknown. Binary glTF models are recognized by their magic.
func Sniff(data []byte) string {
	if IsModel(data) {
		return "model/gltf-binary"
	}
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}

// IsImage reports whether data starts with a known image header.
func IsImage(data []byte) bool {
	return filetype.IsImage(data)
}

// IsModel reports whether data is a binary glTF container.
func IsModel(data []byte) bool {
	return len(data) >= 12 && string(data[:4]) == "glTF"
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

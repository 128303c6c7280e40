package cache

import (
	"os"
	"path/filepath"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity bounds the memory tier entry count.
const DefaultCapacity = 100

// ImageCache is a two-tier cache for decoded document thumbnails:
// a count-bounded LRU memory tier over an unbounded disk tier. Keys are
// caller-supplied opaque strings (document record ids); collisions are
// last-write-wins. Construct one explicitly per consumer; there is no
// shared singleton.
type ImageCache struct {
	mu  sync.Mutex
	mem *lru.Cache[string, []byte]
	dir string
}

// New creates a cache backed by the given directory. A non-positive
// capacity falls back to DefaultCapacity.
func New(dir string, capacity int) (*ImageCache, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	mem, err := lru.New[string, []byte](capacity)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &ImageCache{mem: mem, dir: dir}, nil
}

// Get looks the key up in memory first, then on disk. A disk hit is
// promoted back into the memory tier.
func (c *ImageCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if img, ok := c.mem.Get(key); ok {
		return img, true
	}
	img, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}
	c.mem.Add(key, img)
	return img, true
}

// Set writes through to both tiers. The disk write is best-effort.
func (c *ImageCache) Set(key string, img []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mem.Add(key, img)
	_ = os.WriteFile(c.path(key), img, 0o600)
}

// Clear drops every memory entry and resets the disk directory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mem.Purge()
	_ = os.RemoveAll(c.dir)
	_ = os.MkdirAll(c.dir, 0o700)
}

// EvictMemory drops the memory tier only, leaving the disk tier in
// place. Used to relieve memory pressure; the next Get re-promotes.
func (c *ImageCache) EvictMemory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mem.Purge()
}

func (c *ImageCache) path(key string) string {
	return filepath.Join(c.dir, key)
}

package textblock

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DocumentCache caches parsed layout documents for long-running programs
// that render the same layouts repeatedly. Documents are immutable, so a
// cached document can be rendered from many goroutines at once.
//
// Keys are either the absolute file path together with its modification
// time and size, so an edited file is parsed again, or "sha256:" followed by
// the hash of in-memory document bytes.
type DocumentCache struct {
	docs      *lru.Cache[string, *Document]
	maxSize   int
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// Global default cache for convenience
var defaultCache = NewDocumentCache(64)

// NewDocumentCache creates a cache holding at most maxSize documents, evicting
// the least recently used one when full. A maxSize of 0 or less means no
// limit.
func NewDocumentCache(maxSize int) *DocumentCache {
	c := &DocumentCache{maxSize: maxSize}

	size := maxSize
	if size <= 0 {
		size = math.MaxInt32
	}
	// lru.NewWithEvict only fails for a non-positive size.
	docs, _ := lru.NewWithEvict[string, *Document](size, func(string, *Document) {
		c.evictions.Add(1)
	})
	c.docs = docs
	return c
}

// LoadDocumentCached loads a document from the local filesystem through the
// default cache.
func LoadDocumentCached(filePath string) (*Document, error) {
	return defaultCache.LoadDocument(filePath)
}

// ParseDocumentCached parses document bytes through the default cache.
func ParseDocumentCached(data []byte) (*Document, error) {
	return defaultCache.ParseDocument(data)
}

// LoadDocument loads a document from the local filesystem, reusing the
// cached tree while the file is unchanged.
func (c *DocumentCache) LoadDocument(filePath string) (*Document, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	key := fmt.Sprintf("path:%s@%d:%d", abs, info.ModTime().UnixNano(), info.Size())

	if doc := c.get(key); doc != nil {
		return doc, nil
	}

	doc, err := LoadDocument(abs)
	if err != nil {
		return nil, err
	}
	c.docs.Add(key, doc)
	return doc, nil
}

// ParseDocument parses document bytes, keyed by their SHA-256 hash so that
// identical content is parsed once regardless of where it came from.
func (c *DocumentCache) ParseDocument(data []byte) (*Document, error) {
	hash := sha256.Sum256(data)
	key := "sha256:" + hex.EncodeToString(hash[:])

	if doc := c.get(key); doc != nil {
		return doc, nil
	}

	doc, err := ParseDocumentBytes(data)
	if err != nil {
		return nil, err
	}
	c.docs.Add(key, doc)
	return doc, nil
}

func (c *DocumentCache) get(key string) *Document {
	doc, ok := c.docs.Get(key)
	if !ok {
		c.misses.Add(1)
		return nil
	}
	c.hits.Add(1)
	return doc
}

// Clear removes all documents from the cache. Hit and miss counters are
// kept; cleared entries count as evictions.
func (c *DocumentCache) Clear() {
	c.docs.Purge()
}

// Stats returns cache statistics.
func (c *DocumentCache) Stats() CacheStats {
	return CacheStats{
		Size:      c.docs.Len(),
		MaxSize:   c.maxSize,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// CacheStats contains cache performance statistics
type CacheStats struct {
	Size      int    // Current number of cached documents
	MaxSize   int    // Maximum cache size, 0 or less for unlimited
	Hits      uint64 // Number of cache hits
	Misses    uint64 // Number of cache misses
	Evictions uint64 // Number of evictions
}

// HitRate returns the cache hit rate as a percentage (0-100)
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) * 100 / float64(total)
}

// SetDefaultCacheSize replaces the default cache with one of maxSize entries.
// This should be called once at application startup.
func SetDefaultCacheSize(maxSize int) {
	defaultCache = NewDocumentCache(maxSize)
}

// ClearDefaultCache clears the default document cache.
func ClearDefaultCache() {
	defaultCache.Clear()
}

// DefaultCacheStats returns statistics for the default cache.
func DefaultCacheStats() CacheStats {
	return defaultCache.Stats()
}

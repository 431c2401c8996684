// Package cache stores rendered post HTML between builds so the dev
// server only re-renders markdown that actually changed.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Cache is an on-disk store of rendered pages keyed by source hash
type Cache struct {
	mu      sync.RWMutex
	dir     string
	index   *Index
	maxSize int64
	stats   Stats
}

// Index tracks all cached entries
type Index struct {
	Version string            `json:"version"`
	Entries map[string]*Entry `json:"entries"`
	Updated time.Time         `json:"updated"`
}

// Entry is a single cached render
type Entry struct {
	Key        string    `json:"key"`
	Hash       string    `json:"hash"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	Created    time.Time `json:"created"`
	LastAccess time.Time `json:"last_access"`

	// Dependencies are files beyond the source whose change
	// invalidates the entry, e.g. theme.yml
	Dependencies []string `json:"dependencies,omitempty"`
}

// Stats tracks cache performance
type Stats struct {
	Hits       int64 `json:"hits"`
	Misses     int64 `json:"misses"`
	Evictions  int64 `json:"evictions"`
	TotalSize  int64 `json:"total_size"`
	EntryCount int   `json:"entry_count"`
}

// Config holds cache configuration
type Config struct {
	// Dir is the cache directory, typically <project>/.folio-cache
	Dir string

	// MaxSize caps the cache in bytes; 0 means unlimited
	MaxSize int64
}

// Open creates or reopens a cache in config.Dir.
func Open(config Config) (*Cache, error) {
	if config.Dir == "" {
		return nil, fmt.Errorf("cache directory not set")
	}
	if err := os.MkdirAll(filepath.Join(config.Dir, "pages"), 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	c := &Cache{
		dir:     config.Dir,
		maxSize: config.MaxSize,
		index:   newIndex(),
	}

	// A missing or corrupted index just means a cold cache
	if err := c.loadIndex(); err != nil {
		c.index = newIndex()
	}

	return c, nil
}

func newIndex() *Index {
	return &Index{
		Version: "1",
		Entries: make(map[string]*Entry),
		Updated: time.Now(),
	}
}

// Get returns the cached render for key if its hash still matches
// the current source hash.
func (c *Cache) Get(key, sourceHash string) ([]byte, bool) {
	c.mu.RLock()
	entry, exists := c.index.Entries[key]
	c.mu.RUnlock()

	if !exists || entry.Hash != sourceHash {
		c.recordMiss()
		return nil, false
	}

	data, err := os.ReadFile(entry.Path)
	if err != nil {
		c.Delete(key)
		c.recordMiss()
		return nil, false
	}

	c.mu.Lock()
	entry.LastAccess = time.Now()
	c.stats.Hits++
	c.mu.Unlock()

	return data, true
}

// Put stores a rendered page under key with its source hash and
// dependency list.
func (c *Cache) Put(key, sourceHash string, data []byte, deps []string) error {
	c.mu.RLock()
	if existing, ok := c.index.Entries[key]; ok && existing.Hash == sourceHash {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	size := int64(len(data))
	if err := c.ensureSpace(size); err != nil {
		return err
	}

	filename := fmt.Sprintf("%s_%s.html", sanitizeKey(key), sourceHash[:8])
	path := filepath.Join(c.dir, "pages", filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}

	entry := &Entry{
		Key:          key,
		Hash:         sourceHash,
		Path:         path,
		Size:         size,
		Created:      time.Now(),
		LastAccess:   time.Now(),
		Dependencies: deps,
	}

	c.mu.Lock()
	if old, ok := c.index.Entries[key]; ok {
		c.removeFile(old.Path)
		c.stats.TotalSize -= old.Size
	}
	c.index.Entries[key] = entry
	c.index.Updated = time.Now()
	c.stats.TotalSize += size
	c.stats.EntryCount = len(c.index.Entries)
	err := c.saveIndexLocked()
	c.mu.Unlock()

	return err
}

// Delete removes an entry
func (c *Cache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.index.Entries[key]
	if !ok {
		return nil
	}

	c.removeFile(entry.Path)
	delete(c.index.Entries, key)
	c.stats.TotalSize -= entry.Size
	c.stats.EntryCount = len(c.index.Entries)
	c.index.Updated = time.Now()

	return c.saveIndexLocked()
}

// InvalidateByDependency removes every entry depending on dep and
// returns how many were dropped. Used when theme.yml or folio.yml
// changes.
func (c *Cache) InvalidateByDependency(dep string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for key, entry := range c.index.Entries {
		for _, d := range entry.Dependencies {
			if d == dep {
				c.removeFile(entry.Path)
				delete(c.index.Entries, key)
				c.stats.TotalSize -= entry.Size
				count++
				break
			}
		}
	}

	c.stats.EntryCount = len(c.index.Entries)
	c.index.Updated = time.Now()
	c.saveIndexLocked()

	return count
}

// Clear removes all cached pages
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.RemoveAll(filepath.Join(c.dir, "pages")); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(c.dir, "pages"), 0755); err != nil {
		return err
	}

	c.index = newIndex()
	c.stats = Stats{}

	return c.saveIndexLocked()
}

// GetStats returns a snapshot of cache statistics
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HashBytes returns the content hash used as a cache validity check
func HashBytes(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// HashFile hashes a file's contents
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return HashBytes(data), nil
}

func (c *Cache) loadIndex() error {
	data, err := os.ReadFile(filepath.Join(c.dir, "index.json"))
	if err != nil {
		return err
	}

	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		return err
	}
	if index.Entries == nil {
		index.Entries = make(map[string]*Entry)
	}
	c.index = &index

	var totalSize int64
	for _, entry := range c.index.Entries {
		totalSize += entry.Size
	}
	c.stats.TotalSize = totalSize
	c.stats.EntryCount = len(c.index.Entries)

	return nil
}

// saveIndexLocked writes the index; caller must hold the lock
func (c *Cache) saveIndexLocked() error {
	data, err := json.MarshalIndent(c.index, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, "index.json"), data, 0644)
}

// ensureSpace evicts least recently used entries until needed bytes fit
func (c *Cache) ensureSpace(needed int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize <= 0 {
		return nil
	}

	for c.stats.TotalSize+needed > c.maxSize && len(c.index.Entries) > 0 {
		var evictKey string
		var evictEntry *Entry
		for key, entry := range c.index.Entries {
			if evictEntry == nil || entry.LastAccess.Before(evictEntry.LastAccess) {
				evictKey = key
				evictEntry = entry
			}
		}

		c.removeFile(evictEntry.Path)
		delete(c.index.Entries, evictKey)
		c.stats.TotalSize -= evictEntry.Size
		c.stats.Evictions++
	}

	c.stats.EntryCount = len(c.index.Entries)
	return nil
}

func (c *Cache) removeFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: failed to remove cache file %s: %v\n", path, err)
	}
}

func (c *Cache) recordMiss() {
	c.mu.Lock()
	c.stats.Misses++
	c.mu.Unlock()
}

func sanitizeKey(key string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		" ", "_",
	)
	sanitized := replacer.Replace(key)
	if len(sanitized) > 100 {
		sanitized = sanitized[:100]
	}
	return sanitized
}

package jlandxml

import (
	"container/list"
	"fmt"
	"sync"
	"time"
)

// IndexCache manages built spatial indexes with LRU eviction, adapted from
// the teacher's chart cache: building an Index over a large surface is
// expensive (spec section 4.4's bucket grid construction is O(n)), so a
// batch converter processing the same surface repeatedly benefits from
// keeping the most recently used indexes in memory instead of rebuilding
// them on every rasterize call.
type IndexCache struct {
	maxMemory  int64
	usedMemory int64
	entries    map[string]*cacheEntry
	lru        *list.List
	mu         sync.RWMutex
}

type cacheEntry struct {
	key          string
	index        *Index
	memorySize   int64
	element      *list.Element
	lastAccessed time.Time
	accessCount  int
}

// NewIndexCache creates a cache with the given memory limit in bytes. A
// limit of 0 means unlimited.
func NewIndexCache(maxMemoryBytes int64) *IndexCache {
	return &IndexCache{
		maxMemory: maxMemoryBytes,
		entries:   make(map[string]*cacheEntry),
		lru:       list.New(),
	}
}

// Get retrieves an index from cache or builds it using loader on a miss.
func (c *IndexCache) Get(key string, loader func() (*Index, error)) (*Index, error) {
	c.mu.RLock()
	if entry, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		c.mu.Lock()
		entry.lastAccessed = time.Now()
		entry.accessCount++
		c.lru.MoveToFront(entry.element)
		c.mu.Unlock()
		return entry.index, nil
	}
	c.mu.RUnlock()

	idx, err := loader()
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	if err := c.Add(key, idx); err != nil {
		return idx, nil
	}
	return idx, nil
}

// Add inserts idx into the cache under key, evicting least-recently-used
// entries until it fits within the memory limit.
func (c *IndexCache) Add(key string, idx *Index) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		entry.index = idx
		entry.lastAccessed = time.Now()
		entry.accessCount++
		c.lru.MoveToFront(entry.element)
		return nil
	}

	memSize := estimateIndexMemory(idx)
	if c.maxMemory > 0 && memSize > c.maxMemory {
		return fmt.Errorf("index too large for cache (%d bytes > %d bytes max)", memSize, c.maxMemory)
	}

	if c.maxMemory > 0 {
		for c.usedMemory+memSize > c.maxMemory && c.lru.Len() > 0 {
			c.evictLRU()
		}
	}

	entry := &cacheEntry{
		key:          key,
		index:        idx,
		memorySize:   memSize,
		lastAccessed: time.Now(),
		accessCount:  1,
	}
	entry.element = c.lru.PushFront(entry)
	c.entries[key] = entry
	c.usedMemory += memSize
	return nil
}

func (c *IndexCache) evictLRU() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}
	entry := elem.Value.(*cacheEntry)
	c.lru.Remove(elem)
	delete(c.entries, entry.key)
	c.usedMemory -= entry.memorySize
}

// Remove explicitly evicts key from the cache.
func (c *IndexCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[key]; ok {
		c.lru.Remove(entry.element)
		delete(c.entries, key)
		c.usedMemory -= entry.memorySize
	}
}

// Clear empties the cache.
func (c *IndexCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
	c.lru.Init()
	c.usedMemory = 0
}

// CacheStats reports cache occupancy and hit behavior.
type CacheStats struct {
	EntryCount  int
	UsedMemory  int64
	MaxMemory   int64
	TotalAccess int
}

// Stats returns current cache statistics.
func (c *IndexCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, e := range c.entries {
		total += e.accessCount
	}
	return CacheStats{
		EntryCount:  len(c.entries),
		UsedMemory:  c.usedMemory,
		MaxMemory:   c.maxMemory,
		TotalAccess: total,
	}
}

// estimateIndexMemory approximates an index's memory footprint: a fixed
// 1024 bytes, plus 24 bytes per point, plus 64 bytes per face (face record
// and bucket bookkeeping).
func estimateIndexMemory(idx *Index) int64 {
	if idx == nil || idx.internal == nil {
		return 0
	}
	faces := idx.internal.Surface().Faces
	points := idx.internal.Surface().Points
	size := int64(1024)
	size += int64(len(points)) * 24
	size += int64(len(faces)) * 64
	return size
}

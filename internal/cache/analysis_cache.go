package cache

import (
	"time"

	"fileanalyzer/internal/stats"
)

// DefaultCapacity is used when the caller does not size the cache
// explicitly.
const DefaultCapacity = 128

// Key identifies a cached analysis by the on-disk identity that
// invalidates it: a file whose size or modification time has changed
// since it was last analyzed is a cache miss, not a stale hit.
type Key struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// AnalysisCache memoizes file analyses so that re-running the analyzer
// over an unchanged tree (for instance immediately after a download
// pass adds a handful of new files) does not re-read every file that
// was already processed.
type AnalysisCache struct {
	cache *Cache[Key, stats.Analysis]
}

// NewAnalysisCache constructs an AnalysisCache with the given
// capacity. A non-positive capacity is replaced with DefaultCapacity.
func NewAnalysisCache(capacity int) *AnalysisCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &AnalysisCache{cache: New[Key, stats.Analysis](capacity)}
}

// Lookup returns a memoized Analysis for path, qualified by size and
// modTime, and true if found.
func (a *AnalysisCache) Lookup(path string, size int64, modTime time.Time) (stats.Analysis, bool) {
	return a.cache.Get(Key{Path: path, Size: size, ModTime: modTime})
}

// Store records analysis under the (path, size, modTime) triple, so a
// later Lookup with the same triple returns it without re-reading the
// file.
func (a *AnalysisCache) Store(path string, size int64, modTime time.Time, analysis stats.Analysis) {
	a.cache.Put(Key{Path: path, Size: size, ModTime: modTime}, analysis)
}

// Size returns the number of analyses currently memoized.
func (a *AnalysisCache) Size() int { return a.cache.Size() }

// Capacity returns the cache's fixed capacity.
func (a *AnalysisCache) Capacity() int { return a.cache.Capacity() }

// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"log/slog"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// SearchCache memoizes filter results per registry version.
//
// Keys embed the version the result was computed from, so a stale entry can
// never be served even if the flush observer has not run yet.
type SearchCache struct {
	cache  *gocache.Cache
	logger *slog.Logger
}

// NewSearchCache creates a cache whose entries expire after ttl.
func NewSearchCache(ttl time.Duration, logger *slog.Logger) *SearchCache {
	return &SearchCache{
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

func searchKey(version uint64, criteria Criteria) string {
	return strconv.FormatUint(version, 10) + "\x1e" + criteria.Key()
}

// Get returns a private copy of the cached result.
func (c *SearchCache) Get(version uint64, criteria Criteria) ([]Artist, bool) {
	key := searchKey(version, criteria)

	value, found := c.cache.Get(key)
	if !found {
		return nil, false
	}

	artists, ok := value.([]Artist)
	if !ok {
		c.logger.Error("search_cache_type_mismatch", slog.String("key", key))
		return nil, false
	}

	return cloneAll(artists), true
}

// Set stores a copy of result for the given version and criteria.
func (c *SearchCache) Set(version uint64, criteria Criteria, result []Artist) {
	c.cache.SetDefault(searchKey(version, criteria), cloneAll(result))
}

// Len returns the number of live entries.
func (c *SearchCache) Len() int {
	return c.cache.ItemCount()
}

// Flush drops every entry.
func (c *SearchCache) Flush() {
	c.cache.Flush()
}

// Observe is a registry [Observer] that flushes the cache on every mutation.
func (c *SearchCache) Observe(snapshot Snapshot) {
	c.Flush()
	c.logger.Debug("search_cache_flushed",
		slog.Uint64("version", snapshot.Version),
		slog.String("change", string(snapshot.Change.Kind)),
	)
}

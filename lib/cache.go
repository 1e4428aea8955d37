package rss2maildir

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// cacheDateLayout is the format item dates are stored in, calendar-day
// granularity only.
const cacheDateLayout = "2006-01-02"

// ItemsCache maps canonical item identifiers to the date they were first
// seen. A nil cache means nothing was ever cached for the feed; it is kept
// distinct from an empty cache so that feeds which never delivered anything
// never get a cache file written.
type ItemsCache map[string]string

func cacheFilePath(dir, feedName string) string {
	return filepath.Join(dir, feedName+".json")
}

// LoadCache reads the persisted cache of the given feed. A missing file
// yields a nil cache, a file that cannot be parsed is a CacheLoadError.
func LoadCache(dir, feedName string) (ItemsCache, error) {
	fname := cacheFilePath(dir, feedName)

	bytes, err := os.ReadFile(fname)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &CacheLoadError{Feed: feedName, Err: err}
	}

	var cache ItemsCache
	if err := json.Unmarshal(bytes, &cache); err != nil {
		return nil, &CacheLoadError{Feed: feedName, Err: err}
	}

	return cache, nil
}

// Contains reports whether the identifier was seen before.
func (c ItemsCache) Contains(id string) bool {
	_, ok := c[id]
	return ok
}

// Insert records an identifier as first seen on the given day. Overwrites
// silently if the identifier is already present.
func (c ItemsCache) Insert(id string, day time.Time) {
	c[id] = day.UTC().Format(cacheDateLayout)
}

// Prune returns a copy of the cache holding only entries strictly younger
// than retentionDays relative to today. Entries whose date cannot be parsed
// are treated as expired.
func (c ItemsCache) Prune(retentionDays int, today time.Time) ItemsCache {
	res := make(ItemsCache, len(c))

	for id, d := range c {
		day, err := time.Parse(cacheDateLayout, d)
		if err != nil {
			continue
		}

		if daysBetween(day, today) < retentionDays {
			res[id] = d
		}
	}

	return res
}

// SaveCache prunes the cache and persists it for the given feed, creating
// the cache directory if needed. The file is written to a temp name and
// renamed so a crash mid-write cannot corrupt an existing cache. A nil cache
// is not persisted at all.
func SaveCache(dir, feedName string, cache ItemsCache, retentionDays int) error {
	if cache == nil {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	pruned := cache.Prune(retentionDays, time.Now().UTC())

	bytes, err := json.Marshal(pruned)
	if err != nil {
		return err
	}

	fname := cacheFilePath(dir, feedName)
	tmp := fname + ".tmp"

	if err := os.WriteFile(tmp, bytes, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, fname)
}

// dayOf truncates a timestamp to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(dayOf(b).Sub(dayOf(a)) / (24 * time.Hour))
}

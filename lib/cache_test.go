package rss2maildir

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadCacheMissingFile(t *testing.T) {
	cache, err := LoadCache(t.TempDir(), "nope")
	require.Nil(t, err)
	require.Nil(t, cache)
}

func TestLoadCacheMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{{{"), 0o644))

	_, err := LoadCache(dir, "bad")

	var lerr *CacheLoadError
	require.ErrorAs(t, err, &lerr)
}

func TestCacheSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	today := time.Now().UTC()

	cache := make(ItemsCache)
	cache.Insert("//example.com/1", today)
	cache.Insert("//example.com/2", today.AddDate(0, 0, -2))

	require.Nil(t, SaveCache(dir, "blog", cache, 14))

	loaded, err := LoadCache(dir, "blog")
	require.Nil(t, err)
	require.Equal(t, cache, loaded)
	require.True(t, loaded.Contains("//example.com/1"))
	require.False(t, loaded.Contains("//example.com/3"))
}

func TestInsertOverwrites(t *testing.T) {
	cache := make(ItemsCache)
	cache.Insert("id", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	cache.Insert("id", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))

	require.Len(t, cache, 1)
	require.Equal(t, "2024-01-05", cache["id"])
}

func TestPruneKeepsOnlyEntriesInsideWindow(t *testing.T) {
	today := time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

	cache := ItemsCache{
		"fresh": "2024-05-20",
		"aging": "2024-05-07", // 13 days, still inside a 14 day window
		"stale": "2024-05-06", // exactly 14 days, out
		"bogus": "not-a-date",
	}

	pruned := cache.Prune(14, today)
	require.True(t, pruned.Contains("fresh"))
	require.True(t, pruned.Contains("aging"))
	require.False(t, pruned.Contains("stale"))
	require.False(t, pruned.Contains("bogus"))
}

func TestPruneIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 5, 20, 0, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 5, 20, 23, 30, 0, 0, time.UTC)

	cache := ItemsCache{"id": "2024-05-19"}

	require.True(t, cache.Prune(2, morning).Contains("id"))
	require.True(t, cache.Prune(2, evening).Contains("id"))
	require.False(t, cache.Prune(1, morning).Contains("id"))
	require.False(t, cache.Prune(1, evening).Contains("id"))
}

func TestSaveCachePrunesBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	today := time.Now().UTC()

	cache := make(ItemsCache)
	cache.Insert("fresh", today.AddDate(0, 0, -13))
	cache.Insert("stale", today.AddDate(0, 0, -14))

	require.Nil(t, SaveCache(dir, "blog", cache, 14))

	loaded, err := LoadCache(dir, "blog")
	require.Nil(t, err)
	require.True(t, loaded.Contains("fresh"))
	require.False(t, loaded.Contains("stale"))
}

func TestSaveCacheNilIsSkipped(t *testing.T) {
	dir := t.TempDir()

	require.Nil(t, SaveCache(dir, "quiet", nil, 14))

	_, err := os.Stat(filepath.Join(dir, "quiet.json"))
	require.True(t, os.IsNotExist(err))
}

func TestSaveCacheLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()

	cache := make(ItemsCache)
	cache.Insert("id", time.Now().UTC())
	require.Nil(t, SaveCache(dir, "blog", cache, 14))

	entries, err := os.ReadDir(dir)
	require.Nil(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "blog.json", entries[0].Name())
}

package rss2maildir

import (
	"log"
	"time"

	"github.com/mmcdole/gofeed"
)

// SelectNew partitions freshly fetched items, returning the ones that should
// be delivered: not present in the cache and not older than the retention
// window. Items new to the cache but published before the window are dropped,
// they are too stale to deliver even though never seen (typical on a first
// run against a feed with old archived entries). Input order is preserved.
func SelectNew(items []*gofeed.Item, cache ItemsCache, retentionDays int, today time.Time) ([]*gofeed.Item, error) {
	if len(items) == 0 {
		log.Println("Empty item list, nothing to do")
		return nil, nil
	}

	var selected []*gofeed.Item

	for _, item := range items {
		id, err := ItemID(item)
		if err != nil {
			return nil, err
		}

		if cache.Contains(id) {
			continue
		}

		if daysBetween(itemDatetime(item), today) >= retentionDays {
			continue
		}

		selected = append(selected, item)
	}

	return selected, nil
}

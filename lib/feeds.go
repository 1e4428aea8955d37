package rss2maildir

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// buildMessage is swapped out in tests to exercise build failures.
var buildMessage = BuildMessage

// ProcessFeed runs one ingestion pass for a single feed: load its seen
// cache, fetch, select the new items, deliver them in input order and
// persist the updated cache. A delivery failure aborts the remaining
// deliveries for this feed; items delivered before the failure are still
// cached, the rest will be retried on the next run.
func ProcessFeed(feed FeedConfig, fetcher Fetcher, delivery Delivery) error {
	cacheDir := viper.GetString("cache")

	cache, err := LoadCache(cacheDir, feed.Name)
	if err != nil {
		return err
	}

	if viper.GetBool("debug") {
		log.Printf("Fetching: %s", feed.URL)
	}

	parsed, err := fetcher.Fetch(feed.URL)
	if err != nil {
		return err
	}

	today := time.Now().UTC()

	newItems, err := SelectNew(parsed.Items, cache, feed.DaysToRemember, today)
	if err != nil {
		return err
	}

	var delErr error

	for _, item := range newItems {
		msg, err := buildMessage(item, parsed.Title, feed.Links)
		if err != nil {
			delErr = fmt.Errorf("building message for item %q: %w", item.Title, err)
			break
		}

		if err := delivery.Deliver(feed.Maildir, msg); err != nil {
			delErr = err
			break
		}

		// SelectNew already derived this id successfully
		id, _ := ItemID(item)

		if cache == nil {
			cache = make(ItemsCache)
		}

		cache.Insert(id, dayOf(itemDatetime(item)))
	}

	if err := SaveCache(cacheDir, feed.Name, cache, feed.DaysToRemember); err != nil {
		return err
	}

	return delErr
}

// ProcessAllFeeds runs one pass over every feed, up to "parallelism" feeds
// at a time. Feeds are independent units of work, an error in one never
// stops the others.
func ProcessAllFeeds(feeds []FeedConfig, fetcher Fetcher, delivery Delivery) {
	limit := viper.GetInt("parallelism")
	if limit < 1 {
		limit = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, limit)

	for _, feed := range feeds {
		wg.Add(1)

		go func(feed FeedConfig) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if err := ProcessFeed(feed, fetcher, delivery); err != nil {
				log.Printf("Error processing feed %s: %s", feed.Name, err)
			}
		}(feed)
	}

	wg.Wait()
}

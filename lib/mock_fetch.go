package rss2maildir

import (
	"fmt"

	"github.com/mmcdole/gofeed"
)

type mockFetcher struct {
	feeds map[string]*gofeed.Feed
}

func newMockFetcher() *mockFetcher {
	return &mockFetcher{feeds: make(map[string]*gofeed.Feed)}
}

func (m *mockFetcher) Fetch(url string) (*gofeed.Feed, error) {
	feed, ok := m.feeds[url]
	if !ok {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("no such feed")}
	}

	return feed, nil
}

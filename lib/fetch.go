package rss2maildir

import (
	"context"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/spf13/viper"
)

// userAgent mimics a browser, some feed servers block obvious bots.
const userAgent = "Mozilla/5.0 (Windows; U; Windows NT 5.1; en-US; rv:1.9.0.7) Gecko/2009021910 Firefox/3.0.7"

// Fetcher downloads and parses a single feed document.
type Fetcher interface {
	Fetch(url string) (*gofeed.Feed, error)
}

type feedFetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

// NewFetcher returns a Fetcher with a browser-like client identity and the
// configured per-fetch timeout.
func NewFetcher() Fetcher {
	timeout := viper.GetDuration("timeout")
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: timeout}

	return &feedFetcher{parser: parser, timeout: timeout}
}

func (f *feedFetcher) Fetch(url string) (*gofeed.Feed, error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	return feed, nil
}

package rss2maildir

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/spf13/viper"
)

func initViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	SetDefaults()
	viper.Set("cache", t.TempDir())
}

func testItem(link string, published time.Time) *gofeed.Item {
	p := published

	return &gofeed.Item{
		Link:            link,
		Title:           link,
		Description:     "post at " + link,
		PublishedParsed: &p,
	}
}

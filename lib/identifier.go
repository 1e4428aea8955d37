package rss2maildir

import (
	"strings"

	"github.com/mmcdole/gofeed"
)

// ItemID derives the canonical identifier for an item: its GUID if present,
// its link otherwise. Some websites flip http/https in feeds, so the scheme
// prefix is cut out of the identifier.
func ItemID(item *gofeed.Item) (string, error) {
	id := item.GUID
	if id == "" {
		id = item.Link
	}

	if id == "" {
		return "", &IdentifierError{Title: item.Title}
	}

	id = strings.TrimPrefix(id, "https:")
	id = strings.TrimPrefix(id, "http:")

	return id, nil
}

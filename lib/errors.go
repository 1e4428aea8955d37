package rss2maildir

import "fmt"

// ConfigError means the configuration file is unusable. It aborts the whole
// run before any feed is processed.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Reason)
}

// CacheLoadError means an existing cache file could not be parsed. The feed it
// belongs to is skipped for the run, other feeds are unaffected.
type CacheLoadError struct {
	Feed string
	Err  error
}

func (e *CacheLoadError) Error() string {
	return fmt.Sprintf("cache load for feed %q: %s", e.Feed, e.Err)
}

func (e *CacheLoadError) Unwrap() error {
	return e.Err
}

// FetchError means downloading or parsing a feed failed. The feed is skipped
// for this pass and retried on the next run, its cache untouched.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IdentifierError means an item carries neither an id nor a link, so dedup
// cannot work for it. Processing of the enclosing feed is aborted.
type IdentifierError struct {
	Title string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("item %q has no id and no link", e.Title)
}

// DeliveryError means writing a message to the maildir failed. Remaining
// deliveries for the feed are aborted; already-delivered items stay cached and
// the rest are retried next run.
type DeliveryError struct {
	Maildir string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s: %s", e.Maildir, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

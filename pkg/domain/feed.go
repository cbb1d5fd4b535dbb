package domain

import "time"

// Feed represents a subscribed RSS/Atom feed source
type Feed struct {
	ID            int64
	UserID        string
	URL           string
	Title         string
	Active        bool
	FetchInterval int // seconds
	LastFetched   *time.Time
	NextFetch     *time.Time
	LastItemSeen  *time.Time
	ETag          string
	LastModified  string
	ErrorCount    int
	LastError     string
	CreatedAt     time.Time
}

// FeedEntry is a single parsed entry from a fetched feed
type FeedEntry struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Content     string
	Author      string
	Published   time.Time
}

// ParsedFeed is the result of fetching and parsing a feed URL
type ParsedFeed struct {
	Title        string
	Description  string
	Link         string
	ETag         string
	LastModified string
	NotModified  bool // server answered 304, entries empty
	Entries      []FeedEntry
}

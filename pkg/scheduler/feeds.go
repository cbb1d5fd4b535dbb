package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/pensive-app/pensive/pkg/domain"
	"github.com/pensive-app/pensive/pkg/feed"
)

// feedBatchSize caps how many due feeds one poll cycle claims
const feedBatchSize = 50

// FeedResult summarizes one feed's poll outcome
type FeedResult struct {
	FeedID   int64  `json:"feedId"`
	URL      string `json:"url"`
	NewItems int    `json:"newItems"`
	Skipped  bool   `json:"skipped,omitempty"` // not modified since last fetch
	Error    string `json:"error,omitempty"`
}

// pollFeeds is the periodic loop body
func (s *Scheduler) pollFeeds(ctx context.Context) {
	if _, err := s.PollFeeds(ctx); err != nil {
		lgr.Printf("[ERROR] feed poll: %v", err)
	}
}

// PollFeeds fetches every due feed and enqueues analyze jobs for unseen
// entries. Also serves the cron endpoint, returning per-feed results.
func (s *Scheduler) PollFeeds(ctx context.Context) ([]FeedResult, error) {
	feeds, err := s.feeds.GetFeedsToFetch(ctx, feedBatchSize)
	if err != nil {
		return nil, fmt.Errorf("get due feeds: %w", err)
	}
	if len(feeds) == 0 {
		return []FeedResult{}, nil
	}

	lgr.Printf("[INFO] polling %d due feeds", len(feeds))

	results := make([]FeedResult, len(feeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxWorkers)
	for i, f := range feeds {
		g.Go(func() error {
			results[i] = s.processFeed(ctx, f)
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}

// processFeed fetches one feed, enqueues analyze jobs for entries newer than
// what we've seen, and records the outcome on the feed row
func (s *Scheduler) processFeed(ctx context.Context, f domain.Feed) FeedResult {
	result := FeedResult{FeedID: f.ID, URL: f.URL}

	parsed, err := s.parser.Parse(ctx, f.URL, feed.Conditional{ETag: f.ETag, LastModified: f.LastModified})
	if err != nil {
		lgr.Printf("[WARN] fetch feed %s: %v", f.URL, err)
		result.Error = err.Error()
		if updErr := s.feeds.UpdateFeedError(ctx, f.ID, err.Error(), s.cfg.MaxFeedErrors); updErr != nil {
			lgr.Printf("[ERROR] record feed error for %d: %v", f.ID, updErr)
		}
		return result
	}

	if parsed.NotModified {
		result.Skipped = true
		if updErr := s.feeds.UpdateFeedFetched(ctx, f.ID, parsed.ETag, parsed.LastModified, f.LastItemSeen); updErr != nil {
			lgr.Printf("[ERROR] touch feed %d: %v", f.ID, updErr)
		}
		return result
	}

	lastSeen := f.LastItemSeen
	for _, entry := range parsed.Entries {
		// entries at or before the high-water mark were enqueued on a
		// previous poll; the fingerprint dedup in the pipeline backstops
		// feeds with unreliable timestamps
		if f.LastItemSeen != nil && !entry.Published.IsZero() && !entry.Published.After(*f.LastItemSeen) {
			continue
		}

		payload := domain.AnalyzePayload{
			UserID: f.UserID,
			URL:    entry.Link,
			Title:  entry.Title,
			Text:   entryText(entry),
			Source: domain.SourceRSS,
		}
		if _, err := s.queue.Enqueue(ctx, domain.JobAnalyzeContent, payload, time.Now(), s.cfg.MaxAttempts); err != nil {
			lgr.Printf("[ERROR] enqueue analyze for %s: %v", entry.Link, err)
			continue
		}
		result.NewItems++

		if !entry.Published.IsZero() && (lastSeen == nil || entry.Published.After(*lastSeen)) {
			published := entry.Published
			lastSeen = &published
		}
	}

	if err := s.feeds.UpdateFeedFetched(ctx, f.ID, parsed.ETag, parsed.LastModified, lastSeen); err != nil {
		lgr.Printf("[ERROR] update feed %d after fetch: %v", f.ID, err)
	}

	if result.NewItems > 0 {
		lgr.Printf("[INFO] feed %s: %d new entries enqueued", f.URL, result.NewItems)
	}
	return result
}

// entryText picks the fallback text carried in the analyze payload
func entryText(entry domain.FeedEntry) string {
	if entry.Content != "" {
		return entry.Content
	}
	return entry.Description
}

func (s *Scheduler) handleFetchFeed(ctx context.Context, payload json.RawMessage) error {
	var p domain.FetchFeedPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decode fetch feed payload: %w", err)
	}

	f, err := s.feeds.GetFeed(ctx, p.FeedID)
	if err != nil {
		return fmt.Errorf("get feed %d: %w", p.FeedID, err)
	}
	if result := s.processFeed(ctx, *f); result.Error != "" {
		return fmt.Errorf("fetch feed %d: %s", p.FeedID, result.Error)
	}
	return nil
}

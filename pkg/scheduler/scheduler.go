// Package scheduler runs the background machinery: the feed poller, the job
// queue workers, the digest scheduler and the lease sweeper.
package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/pensive-app/pensive/pkg/db"
	"github.com/pensive-app/pensive/pkg/domain"
	"github.com/pensive-app/pensive/pkg/feed"
	"github.com/pensive-app/pensive/pkg/service"
)

//go:generate moq -out mocks/deps.go -pkg mocks -skip-ensure -fmt goimports . Queue FeedStore DigestStore Parser Pipeline DigestGenerator

// Queue is the lease-based job queue
type Queue interface {
	Enqueue(ctx context.Context, jobType domain.JobType, payload interface{}, scheduledAt time.Time, maxAttempts int) (int64, error)
	Dequeue(ctx context.Context, visibility time.Duration) (*domain.Job, error)
	Ack(ctx context.Context, jobID int64) error
	Nack(ctx context.Context, jobID int64, jobErr error, retryDelay time.Duration) error
	RequeueExpired(ctx context.Context) (int64, error)
}

// FeedStore provides feed persistence for the poller
type FeedStore interface {
	GetFeed(ctx context.Context, id int64) (*domain.Feed, error)
	GetFeedsToFetch(ctx context.Context, limit int) ([]domain.Feed, error)
	UpdateFeedFetched(ctx context.Context, feedID int64, etag, lastModified string, lastItemSeen *time.Time) error
	UpdateFeedError(ctx context.Context, feedID int64, errMsg string, maxErrors int) error
}

// DigestStore provides digest persistence for the digest scheduler
type DigestStore interface {
	GetDigestUsers(ctx context.Context) ([]string, error)
	GetUserDigests(ctx context.Context, userID string, limit int) ([]domain.Digest, error)
	MarkDigestSent(ctx context.Context, digestID int64) error
}

// Parser fetches and parses feeds
type Parser interface {
	Parse(ctx context.Context, url string, cond feed.Conditional) (*domain.ParsedFeed, error)
}

// Pipeline ingests content
type Pipeline interface {
	Submit(ctx context.Context, userID, rawURL string, source domain.Source) (*service.Result, error)
	IngestText(ctx context.Context, userID, title, text, rawURL string, source domain.Source) (*service.Result, error)
	IngestFeedItem(ctx context.Context, userID string, entry domain.FeedEntry) (*service.Result, error)
}

// DigestGenerator builds digests
type DigestGenerator interface {
	Generate(ctx context.Context, userID string, timeframe domain.Timeframe) (*domain.Digest, error)
}

// Config holds scheduler configuration
type Config struct {
	FeedPollInterval    time.Duration
	JobPollInterval     time.Duration
	VisibilityTimeout   time.Duration
	RetryDelay          time.Duration
	DigestCheckInterval time.Duration
	MaxWorkers          int
	MaxFeedErrors       int
	MaxAttempts         int
}

// Scheduler coordinates the background loops
type Scheduler struct {
	queue   Queue
	feeds   FeedStore
	digests DigestStore
	parser  Parser
	pipe    Pipeline
	gen     DigestGenerator
	cfg     Config

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// New creates the scheduler with sensible defaults for zero config values
func New(queue Queue, feeds FeedStore, digests DigestStore, parser Parser, pipe Pipeline, gen DigestGenerator, cfg Config) *Scheduler {
	if cfg.FeedPollInterval == 0 {
		cfg.FeedPollInterval = time.Hour
	}
	if cfg.JobPollInterval == 0 {
		cfg.JobPollInterval = 5 * time.Second
	}
	if cfg.VisibilityTimeout == 0 {
		cfg.VisibilityTimeout = 5 * time.Minute
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 5 * time.Minute
	}
	if cfg.DigestCheckInterval == 0 {
		cfg.DigestCheckInterval = time.Hour
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 5
	}
	if cfg.MaxFeedErrors == 0 {
		cfg.MaxFeedErrors = 10
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	return &Scheduler{queue: queue, feeds: feeds, digests: digests, parser: parser, pipe: pipe, gen: gen, cfg: cfg}
}

// Start launches the background loops
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	loops := []struct {
		name     string
		interval time.Duration
		fn       func(context.Context)
	}{
		{"feed poller", s.cfg.FeedPollInterval, s.pollFeeds},
		{"job worker", s.cfg.JobPollInterval, s.processJobs},
		{"digest scheduler", s.cfg.DigestCheckInterval, s.scheduleDigests},
		{"lease sweeper", s.cfg.VisibilityTimeout, s.sweepLeases},
	}

	for _, loop := range loops {
		s.wg.Add(1)
		go func(name string, interval time.Duration, fn func(context.Context)) {
			defer s.wg.Done()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					fn(ctx)
				}
			}
		}(loop.name, loop.interval, loop.fn)
	}

	lgr.Printf("[INFO] scheduler started: feed poll %v, job poll %v, visibility %v, %d workers",
		s.cfg.FeedPollInterval, s.cfg.JobPollInterval, s.cfg.VisibilityTimeout, s.cfg.MaxWorkers)
}

// Stop cancels the loops and waits for in-flight work
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// processJobs drains the queue, running up to MaxWorkers jobs concurrently.
// Each worker dequeues its own jobs so a slow job never blocks the rest.
func (s *Scheduler) processJobs(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxWorkers)

	for i := 0; i < s.cfg.MaxWorkers; i++ {
		g.Go(func() error {
			for {
				if ctx.Err() != nil {
					return nil
				}
				job, err := s.queue.Dequeue(ctx, s.cfg.VisibilityTimeout)
				if err != nil {
					if !errors.Is(err, db.ErrNotFound) {
						lgr.Printf("[ERROR] dequeue failed: %v", err)
					}
					return nil
				}
				s.runJob(ctx, job)
			}
		})
	}
	_ = g.Wait()
}

// runJob dispatches one leased job and settles it with Ack or Nack
func (s *Scheduler) runJob(ctx context.Context, job *domain.Job) {
	lgr.Printf("[DEBUG] running job %d type %s attempt %d", job.ID, job.Type, job.Attempts)

	err := s.dispatch(ctx, job)
	if err != nil {
		lgr.Printf("[WARN] job %d (%s) failed: %v", job.ID, job.Type, err)
		if nackErr := s.queue.Nack(ctx, job.ID, err, s.cfg.RetryDelay); nackErr != nil {
			lgr.Printf("[ERROR] nack job %d: %v", job.ID, nackErr)
		}
		return
	}
	if ackErr := s.queue.Ack(ctx, job.ID); ackErr != nil {
		lgr.Printf("[ERROR] ack job %d: %v", job.ID, ackErr)
	}
}

func (s *Scheduler) dispatch(ctx context.Context, job *domain.Job) error {
	switch job.Type {
	case domain.JobAnalyzeContent:
		return s.handleAnalyze(ctx, job.Payload)
	case domain.JobGenerateDigest:
		return s.handleGenerateDigest(ctx, job.Payload)
	case domain.JobSendEmail:
		return s.handleSendDigest(ctx, job.Payload)
	case domain.JobFetchFeed:
		return s.handleFetchFeed(ctx, job.Payload)
	default:
		return fmt.Errorf("unknown job type %q", job.Type)
	}
}

func (s *Scheduler) handleAnalyze(ctx context.Context, payload json.RawMessage) error {
	var p domain.AnalyzePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decode analyze payload: %w", err)
	}

	var err error
	switch {
	case p.Source == domain.SourceRSS:
		// feed entries soft-degrade to the carried text when the page is dead
		_, err = s.pipe.IngestFeedItem(ctx, p.UserID, domain.FeedEntry{
			Title:       p.Title,
			Link:        p.URL,
			Description: p.Text,
		})
	case p.Text != "":
		_, err = s.pipe.IngestText(ctx, p.UserID, p.Title, p.Text, p.URL, p.Source)
	default:
		_, err = s.pipe.Submit(ctx, p.UserID, p.URL, p.Source)
	}
	return err
}

// sweepLeases returns expired running jobs to the queue so work lost to a
// crashed or stuck worker gets retried
func (s *Scheduler) sweepLeases(ctx context.Context) {
	requeued, err := s.queue.RequeueExpired(ctx)
	if err != nil {
		lgr.Printf("[ERROR] requeue expired leases: %v", err)
		return
	}
	if requeued > 0 {
		lgr.Printf("[INFO] requeued %d jobs with expired leases", requeued)
	}
}

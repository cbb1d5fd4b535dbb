package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/pensive-app/pensive/pkg/digest"
	"github.com/pensive-app/pensive/pkg/domain"
)

// DigestResult summarizes digest scheduling for one user
type DigestResult struct {
	UserID   string   `json:"userId"`
	Enqueued []string `json:"enqueued,omitempty"` // timeframes queued for generation
	Error    string   `json:"error,omitempty"`
}

// scheduleDigests is the periodic loop body
func (s *Scheduler) scheduleDigests(ctx context.Context) {
	if _, err := s.ScheduleDigests(ctx); err != nil {
		lgr.Printf("[ERROR] digest scheduling: %v", err)
	}
}

// ScheduleDigests enqueues generate_digest jobs for every user whose latest
// digest per timeframe is older than that timeframe's window. Also serves the
// cron endpoint, returning per-user results.
func (s *Scheduler) ScheduleDigests(ctx context.Context) ([]DigestResult, error) {
	users, err := s.digests.GetDigestUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get digest users: %w", err)
	}

	timeframes := []domain.Timeframe{domain.TimeframeWeekly, domain.TimeframeMonthly, domain.TimeframeQuarterly}
	now := time.Now()

	results := make([]DigestResult, 0, len(users))
	for _, userID := range users {
		result := DigestResult{UserID: userID}

		recent, err := s.digests.GetUserDigests(ctx, userID, 50)
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		latest := make(map[domain.Timeframe]time.Time)
		for _, d := range recent {
			if d.ScheduledAt.After(latest[d.Timeframe]) {
				latest[d.Timeframe] = d.ScheduledAt
			}
		}

		for _, tf := range timeframes {
			if last, ok := latest[tf]; ok && last.After(tf.Cutoff(now)) {
				continue // current digest still covers the window
			}
			payload := domain.DigestPayload{UserID: userID, Timeframe: string(tf)}
			if _, err := s.queue.Enqueue(ctx, domain.JobGenerateDigest, payload, now, s.cfg.MaxAttempts); err != nil {
				lgr.Printf("[ERROR] enqueue digest for %s/%s: %v", userID, tf, err)
				continue
			}
			result.Enqueued = append(result.Enqueued, string(tf))
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *Scheduler) handleGenerateDigest(ctx context.Context, payload json.RawMessage) error {
	var p domain.DigestPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decode digest payload: %w", err)
	}

	d, err := s.gen.Generate(ctx, p.UserID, domain.Timeframe(p.Timeframe))
	if err != nil {
		if errors.Is(err, digest.ErrNoContent) {
			// nothing in the window is a normal outcome, not a retryable failure
			lgr.Printf("[DEBUG] no content for %s %s digest", p.UserID, p.Timeframe)
			return nil
		}
		return fmt.Errorf("generate %s digest for %s: %w", p.Timeframe, p.UserID, err)
	}

	send := domain.DigestPayload{UserID: p.UserID, Timeframe: p.Timeframe, DigestID: d.ID}
	if _, err := s.queue.Enqueue(ctx, domain.JobSendEmail, send, time.Now(), s.cfg.MaxAttempts); err != nil {
		return fmt.Errorf("enqueue send for digest %d: %w", d.ID, err)
	}
	return nil
}

// handleSendDigest marks the digest delivered. Actual email transport is out
// of scope; this is the delivery seam.
func (s *Scheduler) handleSendDigest(ctx context.Context, payload json.RawMessage) error {
	var p domain.DigestPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decode send payload: %w", err)
	}
	if p.DigestID == 0 {
		return fmt.Errorf("send payload missing digest id")
	}
	if err := s.digests.MarkDigestSent(ctx, p.DigestID); err != nil {
		return fmt.Errorf("mark digest %d sent: %w", p.DigestID, err)
	}
	lgr.Printf("[INFO] digest %d delivered to %s", p.DigestID, p.UserID)
	return nil
}

package domain

import (
	"encoding/json"
	"time"
)

// JobType identifies what a queued job does
type JobType string

// recognized job types
const (
	JobAnalyzeContent JobType = "analyze_content"
	JobFetchFeed      JobType = "fetch_feed"
	JobGenerateDigest JobType = "generate_digest"
	JobSendEmail      JobType = "send_email"
)

// JobStatus is the job state machine:
// pending -> running (on lease) -> completed, or back to pending on nack
// while attempts remain, or failed once attempts are exhausted.
type JobStatus string

// job states
const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job is a unit of background work with lease-based delivery
type Job struct {
	ID          int64
	Type        JobType
	Payload     json.RawMessage
	Status      JobStatus
	ScheduledAt time.Time
	LeasedUntil *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	Attempts    int
	MaxAttempts int
	Error       string
}

// AnalyzePayload is the payload for analyze_content jobs
type AnalyzePayload struct {
	UserID string `json:"user_id"`
	URL    string `json:"url"`
	Title  string `json:"title,omitempty"`
	Text   string `json:"text,omitempty"` // pre-extracted text, skips fetching when set
	Source Source `json:"source"`
}

// FetchFeedPayload is the payload for fetch_feed jobs
type FetchFeedPayload struct {
	FeedID int64 `json:"feed_id"`
}

// DigestPayload is the payload for generate_digest and send_email jobs
type DigestPayload struct {
	UserID    string `json:"user_id"`
	Timeframe string `json:"timeframe"`
	DigestID  int64  `json:"digest_id,omitempty"`
}

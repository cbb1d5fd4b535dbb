package domain

import "time"

// Timeframe is a digest aggregation window
type Timeframe string

// digest timeframes
const (
	TimeframeWeekly    Timeframe = "weekly"
	TimeframeMonthly   Timeframe = "monthly"
	TimeframeQuarterly Timeframe = "quarterly"
)

// Valid reports whether the timeframe is one of the recognized values
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeWeekly, TimeframeMonthly, TimeframeQuarterly:
		return true
	}
	return false
}

// Cutoff returns the inclusion cutoff for the timeframe relative to now
func (t Timeframe) Cutoff(now time.Time) time.Time {
	switch t {
	case TimeframeMonthly:
		return now.AddDate(0, -1, 0)
	case TimeframeQuarterly:
		return now.AddDate(0, -3, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// DigestStatus tracks digest delivery
type DigestStatus string

// digest states
const (
	DigestPending DigestStatus = "pending"
	DigestSent    DigestStatus = "sent"
)

// Digest is a periodically generated HTML summary of recent content.
// Immutable once sent.
type Digest struct {
	ID          int64
	UserID      string
	Timeframe   Timeframe
	Title       string
	HTML        string
	ContentIDs  []int64
	Status      DigestStatus
	ScheduledAt time.Time
	SentAt      *time.Time
}

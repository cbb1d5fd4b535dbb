package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pensive-app/pensive/pkg/domain"
)

// contentItemSQL maps a content_items row
type contentItemSQL struct {
	ID                int64         `db:"id"`
	UserID            string        `db:"user_id"`
	Title             string        `db:"title"`
	URL               string        `db:"url"`
	RawText           string        `db:"raw_text"`
	ContentHash       string        `db:"content_hash"`
	Source            string        `db:"source"`
	CurrentAnalysisID sql.NullInt64 `db:"current_analysis_id"`
	CreatedAt         time.Time     `db:"created_at"`
}

func (c *contentItemSQL) toDomain() domain.ContentItem {
	item := domain.ContentItem{
		ID:          c.ID,
		UserID:      c.UserID,
		Title:       c.Title,
		URL:         c.URL,
		RawText:     c.RawText,
		ContentHash: c.ContentHash,
		Source:      domain.Source(c.Source),
		CreatedAt:   c.CreatedAt,
	}
	if c.CurrentAnalysisID.Valid {
		id := c.CurrentAnalysisID.Int64
		item.CurrentAnalysisID = &id
	}
	return item
}

// analysisSQL maps an analyses row, entities and tags are JSON columns
type analysisSQL struct {
	ID               int64     `db:"id"`
	ContentItemID    int64     `db:"content_item_id"`
	Version          int       `db:"version"`
	SummarySentence  string    `db:"summary_sentence"`
	SummaryParagraph string    `db:"summary_paragraph"`
	IsFullRead       bool      `db:"is_full_read"`
	Entities         string    `db:"entities"`
	Tags             string    `db:"tags"`
	Priority         string    `db:"priority"`
	Confidence       float64   `db:"confidence"`
	Model            string    `db:"model"`
	CreatedAt        time.Time `db:"created_at"`
}

func (a *analysisSQL) toDomain() (*domain.Analysis, error) {
	res := &domain.Analysis{
		ID:               a.ID,
		ContentItemID:    a.ContentItemID,
		Version:          a.Version,
		SummarySentence:  a.SummarySentence,
		SummaryParagraph: a.SummaryParagraph,
		IsFullRead:       a.IsFullRead,
		Priority:         domain.Priority(a.Priority),
		Confidence:       a.Confidence,
		Model:            a.Model,
		CreatedAt:        a.CreatedAt,
	}
	if err := json.Unmarshal([]byte(a.Entities), &res.Entities); err != nil {
		return nil, fmt.Errorf("unmarshal entities: %w", err)
	}
	if err := json.Unmarshal([]byte(a.Tags), &res.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	return res, nil
}

// feedSQL maps a feeds row
type feedSQL struct {
	ID            int64        `db:"id"`
	UserID        string       `db:"user_id"`
	URL           string       `db:"url"`
	Title         string       `db:"title"`
	Active        bool         `db:"active"`
	FetchInterval int          `db:"fetch_interval"`
	LastFetched   sql.NullTime `db:"last_fetched"`
	NextFetch     sql.NullTime `db:"next_fetch"`
	LastItemSeen  sql.NullTime `db:"last_item_seen"`
	ETag          string       `db:"etag"`
	LastModified  string       `db:"last_modified"`
	ErrorCount    int          `db:"error_count"`
	LastError     string       `db:"last_error"`
	CreatedAt     time.Time    `db:"created_at"`
}

func (f *feedSQL) toDomain() domain.Feed {
	feed := domain.Feed{
		ID:            f.ID,
		UserID:        f.UserID,
		URL:           f.URL,
		Title:         f.Title,
		Active:        f.Active,
		FetchInterval: f.FetchInterval,
		ETag:          f.ETag,
		LastModified:  f.LastModified,
		ErrorCount:    f.ErrorCount,
		LastError:     f.LastError,
		CreatedAt:     f.CreatedAt,
	}
	if f.LastFetched.Valid {
		t := f.LastFetched.Time
		feed.LastFetched = &t
	}
	if f.NextFetch.Valid {
		t := f.NextFetch.Time
		feed.NextFetch = &t
	}
	if f.LastItemSeen.Valid {
		t := f.LastItemSeen.Time
		feed.LastItemSeen = &t
	}
	return feed
}

// jobSQL maps a jobs row
type jobSQL struct {
	ID          int64        `db:"id"`
	Type        string       `db:"type"`
	Payload     string       `db:"payload"`
	Status      string       `db:"status"`
	ScheduledAt time.Time    `db:"scheduled_at"`
	LeasedUntil sql.NullTime `db:"leased_until"`
	StartedAt   sql.NullTime `db:"started_at"`
	CompletedAt sql.NullTime `db:"completed_at"`
	Attempts    int          `db:"attempts"`
	MaxAttempts int          `db:"max_attempts"`
	Error       string       `db:"error"`
}

func (j *jobSQL) toDomain() domain.Job {
	job := domain.Job{
		ID:          j.ID,
		Type:        domain.JobType(j.Type),
		Payload:     json.RawMessage(j.Payload),
		Status:      domain.JobStatus(j.Status),
		ScheduledAt: j.ScheduledAt,
		Attempts:    j.Attempts,
		MaxAttempts: j.MaxAttempts,
		Error:       j.Error,
	}
	if j.LeasedUntil.Valid {
		t := j.LeasedUntil.Time
		job.LeasedUntil = &t
	}
	if j.StartedAt.Valid {
		t := j.StartedAt.Time
		job.StartedAt = &t
	}
	if j.CompletedAt.Valid {
		t := j.CompletedAt.Time
		job.CompletedAt = &t
	}
	return job
}

// digestSQL maps a digests row, content_ids is a JSON column
type digestSQL struct {
	ID          int64        `db:"id"`
	UserID      string       `db:"user_id"`
	Timeframe   string       `db:"timeframe"`
	Title       string       `db:"title"`
	HTML        string       `db:"html"`
	ContentIDs  string       `db:"content_ids"`
	Status      string       `db:"status"`
	ScheduledAt time.Time    `db:"scheduled_at"`
	SentAt      sql.NullTime `db:"sent_at"`
}

func (d *digestSQL) toDomain() (domain.Digest, error) {
	digest := domain.Digest{
		ID:          d.ID,
		UserID:      d.UserID,
		Timeframe:   domain.Timeframe(d.Timeframe),
		Title:       d.Title,
		HTML:        d.HTML,
		Status:      domain.DigestStatus(d.Status),
		ScheduledAt: d.ScheduledAt,
	}
	if err := json.Unmarshal([]byte(d.ContentIDs), &digest.ContentIDs); err != nil {
		return digest, fmt.Errorf("unmarshal content ids: %w", err)
	}
	if d.SentAt.Valid {
		t := d.SentAt.Time
		digest.SentAt = &t
	}
	return digest, nil
}

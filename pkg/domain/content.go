package domain

import "time"

// Source identifies where a content item came from
type Source string

// recognized content sources
const (
	SourceWeb     Source = "web"
	SourceRSS     Source = "rss"
	SourcePodcast Source = "podcast"
	SourceManual  Source = "manual"
)

// Valid reports whether the source is one of the recognized values
func (s Source) Valid() bool {
	switch s {
	case SourceWeb, SourceRSS, SourcePodcast, SourceManual:
		return true
	}
	return false
}

// Priority is the analyzer's recommendation for how to consume an item
type Priority string

// analysis priorities, ordered skim < read < deep-dive
const (
	PrioritySkim     Priority = "skim"
	PriorityRead     Priority = "read"
	PriorityDeepDive Priority = "deep-dive"
)

// Rank returns a numeric rank for ordering, higher means more attention
func (p Priority) Rank() int {
	switch p {
	case PriorityDeepDive:
		return 3
	case PriorityRead:
		return 2
	case PrioritySkim:
		return 1
	}
	return 0
}

// Valid reports whether the priority is one of the recognized values
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// ContentItem represents one fetched or submitted piece of source material.
// Immutable after creation except for the current analysis pointer.
type ContentItem struct {
	ID                int64
	UserID            string
	Title             string
	URL               string
	RawText           string
	ContentHash       string
	Source            Source
	CurrentAnalysisID *int64
	CreatedAt         time.Time
}

// Entity is a named thing the analyzer extracted from content
type Entity struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Analysis holds the analyzer's structured output for a content item.
// Analyses are versioned; the content item points at the current one.
type Analysis struct {
	ID               int64
	ContentItemID    int64
	Version          int
	SummarySentence  string
	SummaryParagraph string
	IsFullRead       bool
	Entities         []Entity
	Tags             []string
	Priority         Priority
	Confidence       float64 // 0..1
	Model            string  // model that produced it, "fallback" or "demo" for synthetic results
	CreatedAt        time.Time
}

// ContentWithAnalysis pairs a content item with its current analysis, if any
type ContentWithAnalysis struct {
	ContentItem
	Analysis *Analysis
}

// ContentFilter narrows content listing queries
type ContentFilter struct {
	Page      int
	Limit     int
	Source    Source   // empty matches all
	Priority  Priority // empty matches all
	Timeframe string   // weekly, monthly or quarterly; empty matches all
}

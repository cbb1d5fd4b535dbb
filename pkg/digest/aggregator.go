// Package digest aggregates a user's recently ingested content into a ranked
// HTML digest.
package digest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"sort"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/pensive-app/pensive/pkg/config"
	"github.com/pensive-app/pensive/pkg/db"
	"github.com/pensive-app/pensive/pkg/domain"
)

// ErrNoContent is returned when the timeframe holds nothing to digest
var ErrNoContent = errors.New("no content in timeframe")

// rankPageSize is the per-request fetch size when collecting a timeframe window
const rankPageSize = 500

//go:generate moq -out mocks/content_store.go -pkg mocks -skip-ensure -fmt goimports . ContentStore

// ContentStore provides the content and digest persistence the aggregator needs
type ContentStore interface {
	GetUserContent(ctx context.Context, userID string, filter domain.ContentFilter) (*db.ContentPage, error)
	CreateDigest(ctx context.Context, digest *domain.Digest) error
}

// ListingCache invalidates cached digest listings after generation
type ListingCache interface {
	DeletePrefix(prefix string)
}

// Aggregator generates digests
type Aggregator struct {
	store     ContentStore
	cache     ListingCache
	topN      int
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// NewAggregator creates a digest aggregator. cache may be nil.
func NewAggregator(store ContentStore, cache ListingCache, cfg config.DigestConfig) *Aggregator {
	topN := cfg.TopN
	if topN < 1 {
		topN = 10
	}
	return &Aggregator{
		store:     store,
		cache:     cache,
		topN:      topN,
		sanitizer: bluemonday.UGCPolicy(),
		now:       time.Now,
	}
}

// Generate builds, renders and persists a digest of the user's content within
// the timeframe. Items are ranked by analysis priority (deep-dive first) then
// recency, and the top N are rendered. Returns ErrNoContent when the window
// is empty.
func (a *Aggregator) Generate(ctx context.Context, userID string, timeframe domain.Timeframe) (*domain.Digest, error) {
	if !timeframe.Valid() {
		return nil, fmt.Errorf("invalid timeframe %q", timeframe)
	}

	// collect the whole window page by page, ranking needs every item in it
	var window []domain.ContentWithAnalysis
	for pageNum := 1; ; pageNum++ {
		page, err := a.store.GetUserContent(ctx, userID, domain.ContentFilter{
			Page:      pageNum,
			Limit:     rankPageSize,
			Timeframe: string(timeframe),
		})
		if err != nil {
			return nil, fmt.Errorf("load content: %w", err)
		}
		window = append(window, page.Items...)
		if !page.HasMore {
			break
		}
	}
	if len(window) == 0 {
		return nil, ErrNoContent
	}

	items := rank(window)
	if len(items) > a.topN {
		items = items[:a.topN]
	}

	now := a.now()
	title := fmt.Sprintf("Your %s digest — %s", timeframe, now.Format("Jan 2, 2006"))

	html, err := a.render(title, timeframe, items)
	if err != nil {
		return nil, fmt.Errorf("render digest: %w", err)
	}

	contentIDs := make([]int64, 0, len(items))
	for _, item := range items {
		contentIDs = append(contentIDs, item.ID)
	}

	digest := &domain.Digest{
		UserID:      userID,
		Timeframe:   timeframe,
		Title:       title,
		HTML:        html,
		ContentIDs:  contentIDs,
		Status:      domain.DigestPending,
		ScheduledAt: now,
	}
	if err := a.store.CreateDigest(ctx, digest); err != nil {
		return nil, fmt.Errorf("persist digest: %w", err)
	}

	if a.cache != nil {
		a.cache.DeletePrefix(userID + ":digests")
	}
	return digest, nil
}

// RenderItem is a caller-supplied entry for stateless digest rendering
type RenderItem struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Priority string `json:"priority,omitempty"`
	Sentence string `json:"sentence,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Render builds digest HTML from caller-supplied items without touching the
// store. Nothing is persisted and no cache is invalidated.
func (a *Aggregator) Render(timeframe domain.Timeframe, items []RenderItem) (string, error) {
	if !timeframe.Valid() {
		return "", fmt.Errorf("invalid timeframe %q", timeframe)
	}
	if len(items) == 0 {
		return "", ErrNoContent
	}

	title := fmt.Sprintf("Your %s digest — %s", timeframe, a.now().Format("Jan 2, 2006"))
	view := struct {
		Title  string
		Count  int
		Period string
		Items  []digestItem
	}{Title: title, Count: len(items), Period: periodName(timeframe)}

	for _, item := range items {
		view.Items = append(view.Items, digestItem{
			Title:    item.Title,
			URL:      item.URL,
			Priority: item.Priority,
			Sentence: item.Sentence,
			Summary:  template.HTML(a.sanitizer.Sanitize(item.Summary)), //nolint:gosec // sanitized right above
		})
	}

	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}

// rank orders items by priority rank descending, then created_at descending.
// Items without an analysis rank below everything analyzed.
func rank(items []domain.ContentWithAnalysis) []domain.ContentWithAnalysis {
	ranked := make([]domain.ContentWithAnalysis, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := 0, 0
		if ranked[i].Analysis != nil {
			ri = ranked[i].Analysis.Priority.Rank()
		}
		if ranked[j].Analysis != nil {
			rj = ranked[j].Analysis.Priority.Rank()
		}
		if ri != rj {
			return ri > rj
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})
	return ranked
}

var digestTmpl = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Count}} items worth your attention this {{.Period}}.</p>
{{range .Items}}
<div class="item">
  <h2><a href="{{.URL}}">{{.Title}}</a></h2>
  {{if .Priority}}<span class="priority">{{.Priority}}</span>{{end}}
  {{if .Sentence}}<p><strong>{{.Sentence}}</strong></p>{{end}}
  {{if .Summary}}<p>{{.Summary}}</p>{{end}}
</div>
{{end}}
</body>
</html>
`))

type digestItem struct {
	Title    string
	URL      string
	Priority string
	Sentence string
	Summary  template.HTML
}

// periodName maps a timeframe to the word used in digest copy
func periodName(timeframe domain.Timeframe) string {
	return map[domain.Timeframe]string{
		domain.TimeframeWeekly:    "week",
		domain.TimeframeMonthly:   "month",
		domain.TimeframeQuarterly: "quarter",
	}[timeframe]
}

func (a *Aggregator) render(title string, timeframe domain.Timeframe, items []domain.ContentWithAnalysis) (string, error) {
	period := periodName(timeframe)

	view := struct {
		Title  string
		Count  int
		Period string
		Items  []digestItem
	}{Title: title, Count: len(items), Period: period}

	for _, item := range items {
		di := digestItem{Title: item.Title, URL: item.URL}
		if item.Analysis != nil {
			di.Priority = string(item.Analysis.Priority)
			di.Sentence = item.Analysis.SummarySentence
			// summaries may echo markup from the source page, sanitize before
			// marking them safe for the template
			di.Summary = template.HTML(a.sanitizer.Sanitize(item.Analysis.SummaryParagraph)) //nolint:gosec // sanitized right above
		}
		view.Items = append(view.Items, di)
	}

	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package digest

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensive-app/pensive/pkg/config"
	"github.com/pensive-app/pensive/pkg/db"
	"github.com/pensive-app/pensive/pkg/digest/mocks"
	"github.com/pensive-app/pensive/pkg/domain"
)

func contentItem(id int64, title string, priority domain.Priority, age time.Duration) domain.ContentWithAnalysis {
	item := domain.ContentWithAnalysis{
		ContentItem: domain.ContentItem{
			ID:        id,
			UserID:    "u1",
			Title:     title,
			URL:       "https://example.com/" + title,
			CreatedAt: time.Now().Add(-age),
		},
	}
	if priority != "" {
		item.Analysis = &domain.Analysis{
			Priority:         priority,
			SummarySentence:  title + " in one sentence",
			SummaryParagraph: title + " in more detail",
		}
	}
	return item
}

func storeWith(items []domain.ContentWithAnalysis) *mocks.ContentStoreMock {
	return &mocks.ContentStoreMock{
		GetUserContentFunc: func(_ context.Context, _ string, _ domain.ContentFilter) (*db.ContentPage, error) {
			return &db.ContentPage{Items: items, Total: len(items)}, nil
		},
		CreateDigestFunc: func(_ context.Context, digest *domain.Digest) error {
			digest.ID = 1
			return nil
		},
	}
}

func TestAggregator_Generate(t *testing.T) {
	items := []domain.ContentWithAnalysis{
		contentItem(1, "skim-item", domain.PrioritySkim, time.Hour),
		contentItem(2, "old-deep-dive", domain.PriorityDeepDive, 48*time.Hour),
		contentItem(3, "read-item", domain.PriorityRead, 2*time.Hour),
		contentItem(4, "fresh-deep-dive", domain.PriorityDeepDive, time.Hour),
		contentItem(5, "unanalyzed", "", time.Minute),
	}
	store := storeWith(items)
	agg := NewAggregator(store, nil, config.DigestConfig{TopN: 10})

	digest, err := agg.Generate(context.Background(), "u1", domain.TimeframeWeekly)
	require.NoError(t, err)

	// priority outranks recency, recency breaks ties, unanalyzed sinks
	assert.Equal(t, []int64{4, 2, 3, 1, 5}, digest.ContentIDs)
	assert.Equal(t, "u1", digest.UserID)
	assert.Equal(t, domain.TimeframeWeekly, digest.Timeframe)
	assert.Equal(t, domain.DigestPending, digest.Status)
	assert.Contains(t, digest.Title, "weekly digest")

	assert.Contains(t, digest.HTML, "fresh-deep-dive")
	assert.Contains(t, digest.HTML, "https://example.com/read-item")
	assert.Contains(t, digest.HTML, "in one sentence")
	assert.Contains(t, digest.HTML, "5 items worth your attention this week")

	// the store got the timeframe filter, the db applies the cutoff
	calls := store.GetUserContentCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "weekly", calls[0].Filter.Timeframe)

	require.Len(t, store.CreateDigestCalls(), 1)
}

func TestAggregator_Generate_TopN(t *testing.T) {
	items := []domain.ContentWithAnalysis{
		contentItem(1, "a", domain.PriorityRead, time.Hour),
		contentItem(2, "b", domain.PriorityDeepDive, time.Hour),
		contentItem(3, "c", domain.PrioritySkim, time.Hour),
	}
	agg := NewAggregator(storeWith(items), nil, config.DigestConfig{TopN: 2})

	digest, err := agg.Generate(context.Background(), "u1", domain.TimeframeMonthly)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, digest.ContentIDs, "only the top ranked items survive")
	assert.NotContains(t, digest.HTML, `example.com/c`)
}

func TestAggregator_Generate_PagesThroughWindow(t *testing.T) {
	pages := map[int][]domain.ContentWithAnalysis{
		1: {
			contentItem(1, "newer-skim", domain.PrioritySkim, time.Hour),
			contentItem(2, "newer-read", domain.PriorityRead, 2*time.Hour),
		},
		2: {
			contentItem(3, "buried-deep-dive", domain.PriorityDeepDive, 48*time.Hour),
		},
	}
	store := &mocks.ContentStoreMock{
		GetUserContentFunc: func(_ context.Context, _ string, filter domain.ContentFilter) (*db.ContentPage, error) {
			return &db.ContentPage{Items: pages[filter.Page], HasMore: filter.Page == 1}, nil
		},
		CreateDigestFunc: func(_ context.Context, _ *domain.Digest) error { return nil },
	}
	agg := NewAggregator(store, nil, config.DigestConfig{TopN: 10})

	digest, err := agg.Generate(context.Background(), "u1", domain.TimeframeWeekly)
	require.NoError(t, err)
	require.Len(t, store.GetUserContentCalls(), 2, "must fetch until the window is exhausted")
	assert.Equal(t, []int64{3, 2, 1}, digest.ContentIDs, "an old deep-dive beyond the first page still ranks first")
}

// exercises the cutoff end to end: the aggregator passes the timeframe through
// and the store's created_at window decides what gets ranked
func TestAggregator_Generate_WindowAgainstStore(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "digest-*.db")
	require.NoError(t, err)
	tmpFile.Close()
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	database, err := db.New(db.Config{DSN: "file:" + tmpFile.Name() + "?mode=rwc"})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	ctx := context.Background()
	store := func(url, hash string) int64 {
		res, err := database.CreateContent(ctx, &domain.ContentItem{
			UserID: "u1", Title: url, URL: url, RawText: "text",
			ContentHash: hash, Source: domain.SourceWeb,
		})
		require.NoError(t, err)
		return res.ID
	}
	fresh := store("https://example.com/fresh", "h-fresh")
	stale := store("https://example.com/stale", "h-stale")

	raw, err := sql.Open("sqlite", "file:"+tmpFile.Name()+"?mode=rw")
	require.NoError(t, err)
	defer raw.Close()
	_, err = raw.ExecContext(ctx, `UPDATE content_items SET created_at = ? WHERE id = ?`,
		time.Now().AddDate(0, 0, -9), stale)
	require.NoError(t, err)

	agg := NewAggregator(database, nil, config.DigestConfig{TopN: 10})

	weekly, err := agg.Generate(ctx, "u1", domain.TimeframeWeekly)
	require.NoError(t, err)
	assert.Equal(t, []int64{fresh}, weekly.ContentIDs, "a nine day old item is outside the weekly window")

	monthly, err := agg.Generate(ctx, "u1", domain.TimeframeMonthly)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{fresh, stale}, monthly.ContentIDs)
}

func TestAggregator_Generate_NoContent(t *testing.T) {
	agg := NewAggregator(storeWith(nil), nil, config.DigestConfig{})

	_, err := agg.Generate(context.Background(), "u1", domain.TimeframeWeekly)
	require.ErrorIs(t, err, ErrNoContent)
}

func TestAggregator_Generate_InvalidTimeframe(t *testing.T) {
	agg := NewAggregator(storeWith(nil), nil, config.DigestConfig{})

	_, err := agg.Generate(context.Background(), "u1", "daily")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeframe")
}

func TestAggregator_Generate_StoreError(t *testing.T) {
	store := &mocks.ContentStoreMock{
		GetUserContentFunc: func(context.Context, string, domain.ContentFilter) (*db.ContentPage, error) {
			return nil, errors.New("db down")
		},
	}
	agg := NewAggregator(store, nil, config.DigestConfig{})

	_, err := agg.Generate(context.Background(), "u1", domain.TimeframeWeekly)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestAggregator_Generate_SanitizesSummaries(t *testing.T) {
	item := contentItem(1, "article", domain.PriorityRead, time.Hour)
	item.Analysis.SummaryParagraph = `Useful text <script>alert("x")</script><b>bold stays</b>`

	agg := NewAggregator(storeWith([]domain.ContentWithAnalysis{item}), nil, config.DigestConfig{})

	digest, err := agg.Generate(context.Background(), "u1", domain.TimeframeWeekly)
	require.NoError(t, err)
	assert.NotContains(t, digest.HTML, "<script>")
	assert.Contains(t, digest.HTML, "<b>bold stays</b>")
}

type prefixRecorder struct{ prefixes []string }

func (p *prefixRecorder) DeletePrefix(prefix string) { p.prefixes = append(p.prefixes, prefix) }

func TestAggregator_Generate_InvalidatesListing(t *testing.T) {
	rec := &prefixRecorder{}
	agg := NewAggregator(storeWith([]domain.ContentWithAnalysis{
		contentItem(1, "a", domain.PriorityRead, time.Hour),
	}), rec, config.DigestConfig{})

	_, err := agg.Generate(context.Background(), "u1", domain.TimeframeWeekly)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1:digests"}, rec.prefixes)
}

func TestAggregator_Render(t *testing.T) {
	agg := NewAggregator(nil, nil, config.DigestConfig{})

	html, err := agg.Render(domain.TimeframeMonthly, []RenderItem{
		{Title: "First", URL: "https://example.com/1", Priority: "deep-dive", Sentence: "worth a close read",
			Summary: "<script>alert(1)</script>solid <em>analysis</em>"},
		{Title: "Second", URL: "https://example.com/2"},
	})
	require.NoError(t, err)
	assert.Contains(t, html, "2 items worth your attention this month.")
	assert.Contains(t, html, "https://example.com/1")
	assert.Contains(t, html, "worth a close read")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "<em>analysis</em>")
}

func TestAggregator_Render_Validation(t *testing.T) {
	agg := NewAggregator(nil, nil, config.DigestConfig{})

	_, err := agg.Render("fortnightly", []RenderItem{{Title: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeframe")

	_, err = agg.Render(domain.TimeframeWeekly, nil)
	require.ErrorIs(t, err, ErrNoContent)
}

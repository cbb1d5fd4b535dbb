package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensive-app/pensive/pkg/content"
	"github.com/pensive-app/pensive/pkg/db"
	"github.com/pensive-app/pensive/pkg/domain"
	"github.com/pensive-app/pensive/pkg/service/mocks"
)

func testAnalysis() *domain.Analysis {
	return &domain.Analysis{
		SummarySentence:  "one sentence",
		SummaryParagraph: "a paragraph",
		Entities: []domain.Entity{
			{Name: "Go", Type: "technology"},
			{Name: "SQLite", Type: "technology"},
		},
		Tags:       []string{"databases", "golang"},
		Priority:   domain.PriorityRead,
		Confidence: 0.8,
		Model:      "gpt-4o-mini",
	}
}

func pipelineMocks() (*mocks.StoreMock, *mocks.ExtractorMock, *mocks.AnalyzerMock) {
	nextConceptID := int64(0)
	store := &mocks.StoreMock{
		CreateContentFunc: func(_ context.Context, _ *domain.ContentItem) (db.CreateResult, error) {
			return db.CreateResult{ID: 1, IsNew: true}, nil
		},
		CreateAnalysisFunc: func(_ context.Context, analysis *domain.Analysis) error {
			analysis.ID = 10
			analysis.Version = 1
			return nil
		},
		UpsertConceptFunc: func(_ context.Context, _ *domain.Concept) (int64, error) {
			nextConceptID++
			return nextConceptID, nil
		},
		CreateRelationshipFunc: func(_ context.Context, _ *domain.ConceptRelationship) error {
			return nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, _ string) (*content.Result, error) {
			return &content.Result{Title: "Extracted Title", Text: "extracted body text"}, nil
		},
	}
	analyzer := &mocks.AnalyzerMock{
		AnalyzeFunc: func(_ context.Context, _, _, _ string) (*domain.Analysis, bool) {
			return testAnalysis(), false
		},
	}
	return store, extractor, analyzer
}

type invalidatorRecorder struct{ users []string }

func (r *invalidatorRecorder) Invalidate(userID string) { r.users = append(r.users, userID) }

func TestPipeline_Submit(t *testing.T) {
	store, extractor, analyzer := pipelineMocks()
	graphs := &invalidatorRecorder{}
	pipeline := NewPipeline(store, extractor, analyzer, graphs)

	result, err := pipeline.Submit(context.Background(), "u1", "https://example.com/article", domain.SourceWeb)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.ContentID)
	assert.True(t, result.IsNew)
	assert.False(t, result.Cached)
	require.NotNil(t, result.Analysis)
	assert.Equal(t, int64(1), result.Analysis.ContentItemID)

	// stored item carries the extracted fields and the fingerprint
	created := store.CreateContentCalls()
	require.Len(t, created, 1)
	assert.Equal(t, "u1", created[0].Item.UserID)
	assert.Equal(t, "Extracted Title", created[0].Item.Title)
	assert.Equal(t, "extracted body text", created[0].Item.RawText)
	assert.Equal(t, domain.SourceWeb, created[0].Item.Source)
	assert.NotEmpty(t, created[0].Item.ContentHash)

	// analyzer keyed by the content hash
	analyzed := analyzer.AnalyzeCalls()
	require.Len(t, analyzed, 1)
	assert.Equal(t, created[0].Item.ContentHash, analyzed[0].CacheKey)

	// 2 entities + 2 tags upserted, one pairwise relationship
	assert.Len(t, store.UpsertConceptCalls(), 4)
	rels := store.CreateRelationshipCalls()
	require.Len(t, rels, 1)
	assert.Equal(t, domain.RelationRelated, rels[0].Rel.Type)
	assert.Equal(t, 0.8, rels[0].Rel.Strength)
	assert.Equal(t, int64(1), rels[0].Rel.OriginatingContentID)
	assert.NotEqual(t, rels[0].Rel.FromConceptID, rels[0].Rel.ToConceptID)

	assert.Equal(t, []string{"u1"}, graphs.users)
}

func TestPipeline_Submit_Duplicate(t *testing.T) {
	store, extractor, analyzer := pipelineMocks()
	existing := testAnalysis()
	existing.ID = 42
	store.CreateContentFunc = func(context.Context, *domain.ContentItem) (db.CreateResult, error) {
		return db.CreateResult{ID: 7, IsNew: false}, nil
	}
	store.GetCurrentAnalysisFunc = func(_ context.Context, contentItemID int64) (*domain.Analysis, error) {
		assert.Equal(t, int64(7), contentItemID)
		return existing, nil
	}
	pipeline := NewPipeline(store, extractor, analyzer, nil)

	result, err := pipeline.Submit(context.Background(), "u1", "https://example.com/article", domain.SourceWeb)
	require.NoError(t, err)

	assert.False(t, result.IsNew)
	assert.Equal(t, int64(7), result.ContentID)
	assert.Equal(t, existing, result.Analysis)

	// dedup short-circuit: no analysis, no concept writes
	assert.Empty(t, analyzer.AnalyzeCalls())
	assert.Empty(t, store.CreateAnalysisCalls())
	assert.Empty(t, store.UpsertConceptCalls())
}

func TestPipeline_Submit_DuplicateWithoutAnalysis(t *testing.T) {
	store, extractor, analyzer := pipelineMocks()
	store.CreateContentFunc = func(context.Context, *domain.ContentItem) (db.CreateResult, error) {
		return db.CreateResult{ID: 7, IsNew: false}, nil
	}
	store.GetCurrentAnalysisFunc = func(context.Context, int64) (*domain.Analysis, error) {
		return nil, db.ErrNotFound
	}
	pipeline := NewPipeline(store, extractor, analyzer, nil)

	result, err := pipeline.Submit(context.Background(), "u1", "https://example.com/article", domain.SourceWeb)
	require.NoError(t, err)
	assert.False(t, result.IsNew)
	assert.Nil(t, result.Analysis)
}

func TestPipeline_Submit_Validation(t *testing.T) {
	store, extractor, analyzer := pipelineMocks()
	pipeline := NewPipeline(store, extractor, analyzer, nil)

	_, err := pipeline.Submit(context.Background(), "u1", "  ", domain.SourceWeb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url is required")

	_, err = pipeline.Submit(context.Background(), "u1", "https://example.com", "carrier-pigeon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid source")

	assert.Empty(t, extractor.ExtractCalls())
}

func TestPipeline_Submit_DefaultSource(t *testing.T) {
	store, extractor, analyzer := pipelineMocks()
	pipeline := NewPipeline(store, extractor, analyzer, nil)

	_, err := pipeline.Submit(context.Background(), "u1", "https://example.com", "")
	require.NoError(t, err)
	created := store.CreateContentCalls()
	require.Len(t, created, 1)
	assert.Equal(t, domain.SourceWeb, created[0].Item.Source)
}

func TestPipeline_Submit_ExtractionError(t *testing.T) {
	store, extractor, analyzer := pipelineMocks()
	extractor.ExtractFunc = func(context.Context, string) (*content.Result, error) {
		return nil, errors.New("page unreachable")
	}
	pipeline := NewPipeline(store, extractor, analyzer, nil)

	// direct submits have nothing to fall back to, the error surfaces
	_, err := pipeline.Submit(context.Background(), "u1", "https://example.com", domain.SourceWeb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page unreachable")
	assert.Empty(t, store.CreateContentCalls())
}

func TestPipeline_Submit_StorageError(t *testing.T) {
	store, extractor, analyzer := pipelineMocks()
	store.CreateContentFunc = func(context.Context, *domain.ContentItem) (db.CreateResult, error) {
		return db.CreateResult{}, errors.New("disk full")
	}
	pipeline := NewPipeline(store, extractor, analyzer, nil)

	_, err := pipeline.Submit(context.Background(), "u1", "https://example.com", domain.SourceWeb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestPipeline_IngestFeedItem(t *testing.T) {
	t.Run("extraction succeeds", func(t *testing.T) {
		store, extractor, analyzer := pipelineMocks()
		pipeline := NewPipeline(store, extractor, analyzer, nil)

		result, err := pipeline.IngestFeedItem(context.Background(), "u1", domain.FeedEntry{
			GUID:  "guid1",
			Title: "Entry Title",
			Link:  "https://example.com/entry",
		})
		require.NoError(t, err)
		assert.True(t, result.IsNew)

		created := store.CreateContentCalls()
		require.Len(t, created, 1)
		assert.Equal(t, "Entry Title", created[0].Item.Title, "entry title wins over extracted title")
		assert.Equal(t, "extracted body text", created[0].Item.RawText)
		assert.Equal(t, domain.SourceRSS, created[0].Item.Source)
	})

	t.Run("extraction fails, entry text used", func(t *testing.T) {
		store, extractor, analyzer := pipelineMocks()
		extractor.ExtractFunc = func(context.Context, string) (*content.Result, error) {
			return nil, errors.New("blocked")
		}
		pipeline := NewPipeline(store, extractor, analyzer, nil)

		result, err := pipeline.IngestFeedItem(context.Background(), "u1", domain.FeedEntry{
			GUID:        "guid1",
			Title:       "Entry Title",
			Link:        "https://example.com/entry",
			Description: "the entry description",
		})
		require.NoError(t, err)
		assert.True(t, result.IsNew)

		created := store.CreateContentCalls()
		require.Len(t, created, 1)
		assert.Equal(t, "the entry description", created[0].Item.RawText)
	})

	t.Run("entry content preferred over description", func(t *testing.T) {
		store, extractor, analyzer := pipelineMocks()
		extractor.ExtractFunc = func(context.Context, string) (*content.Result, error) {
			return nil, errors.New("blocked")
		}
		pipeline := NewPipeline(store, extractor, analyzer, nil)

		_, err := pipeline.IngestFeedItem(context.Background(), "u1", domain.FeedEntry{
			GUID:        "guid1",
			Title:       "Entry Title",
			Link:        "https://example.com/entry",
			Content:     "full entry content",
			Description: "short description",
		})
		require.NoError(t, err)
		assert.Equal(t, "full entry content", store.CreateContentCalls()[0].Item.RawText)
	})

	t.Run("no usable text", func(t *testing.T) {
		store, extractor, analyzer := pipelineMocks()
		extractor.ExtractFunc = func(context.Context, string) (*content.Result, error) {
			return nil, errors.New("blocked")
		}
		pipeline := NewPipeline(store, extractor, analyzer, nil)

		_, err := pipeline.IngestFeedItem(context.Background(), "u1", domain.FeedEntry{
			GUID: "guid1", Title: "Entry", Link: "https://example.com/entry",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no usable text")
		assert.Empty(t, store.CreateContentCalls())
	})
}

// end to end against a real database: the second submit of the same page must
// not charge another analysis
func TestPipeline_DoubleSubmitEndToEnd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pipeline_test.db")
	database, err := db.New(db.Config{DSN: fmt.Sprintf("file:%s?mode=rwc", dbPath)})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, _ string) (*content.Result, error) {
			return &content.Result{Title: "Stable Title", Text: "stable body"}, nil
		},
	}
	analyzer := &mocks.AnalyzerMock{
		AnalyzeFunc: func(_ context.Context, _, _, _ string) (*domain.Analysis, bool) {
			return testAnalysis(), false
		},
	}
	pipeline := NewPipeline(database, extractor, analyzer, nil)

	first, err := pipeline.Submit(context.Background(), "u1", "https://example.com/article", domain.SourceWeb)
	require.NoError(t, err)
	assert.True(t, first.IsNew)
	require.NotNil(t, first.Analysis)
	assert.Equal(t, 1, first.Analysis.Version)

	second, err := pipeline.Submit(context.Background(), "u1", "https://example.com/article?utm_source=x", domain.SourceWeb)
	require.NoError(t, err)
	assert.False(t, second.IsNew, "tracking params don't defeat dedup")
	assert.Equal(t, first.ContentID, second.ContentID)
	require.NotNil(t, second.Analysis)
	assert.Equal(t, first.Analysis.ID, second.Analysis.ID)

	assert.Len(t, analyzer.AnalyzeCalls(), 1, "duplicate never reaches the analyzer")

	// concepts recorded once: 2 entities + 2 tags
	concepts, err := database.GetConcepts(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.Len(t, concepts, 4)
	for _, c := range concepts {
		assert.Equal(t, 1, c.Frequency)
	}
}

// Package service orchestrates the content pipeline: extraction,
// deduplication, analysis and concept graph maintenance.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/pensive-app/pensive/pkg/content"
	"github.com/pensive-app/pensive/pkg/db"
	"github.com/pensive-app/pensive/pkg/domain"
	"github.com/pensive-app/pensive/pkg/fingerprint"
)

//go:generate moq -out mocks/pipeline.go -pkg mocks -skip-ensure -fmt goimports . Store Extractor Analyzer

// Store is the persistence surface the pipeline needs
type Store interface {
	CreateContent(ctx context.Context, item *domain.ContentItem) (db.CreateResult, error)
	GetCurrentAnalysis(ctx context.Context, contentItemID int64) (*domain.Analysis, error)
	CreateAnalysis(ctx context.Context, analysis *domain.Analysis) error
	UpsertConcept(ctx context.Context, c *domain.Concept) (int64, error)
	CreateRelationship(ctx context.Context, rel *domain.ConceptRelationship) error
}

// Extractor fetches a URL and extracts title and text
type Extractor interface {
	Extract(ctx context.Context, urlStr string) (*content.Result, error)
}

// Analyzer produces an analysis for content, reporting cache hits
type Analyzer interface {
	Analyze(ctx context.Context, title, text, cacheKey string) (*domain.Analysis, bool)
}

// GraphInvalidator drops cached concept maps after concepts change
type GraphInvalidator interface {
	Invalidate(userID string)
}

// Pipeline runs submissions through extract → dedup → analyze → concepts
type Pipeline struct {
	store     Store
	extractor Extractor
	analyzer  Analyzer
	graphs    GraphInvalidator
}

// NewPipeline creates the pipeline. graphs may be nil when no concept map
// caching is in play.
func NewPipeline(store Store, extractor Extractor, analyzer Analyzer, graphs GraphInvalidator) *Pipeline {
	return &Pipeline{store: store, extractor: extractor, analyzer: analyzer, graphs: graphs}
}

// Result is the outcome of a submission
type Result struct {
	ContentID int64
	Analysis  *domain.Analysis
	IsNew     bool // false when the dedup short-circuit fired
	Cached    bool // analysis came from the analyzer cache
}

// Submit ingests a directly submitted URL. Extraction failures are returned
// to the caller: for a direct submit there is nothing to fall back to.
//
// Resubmitting a URL whose content hash already exists returns the stored
// item with its current analysis and never touches the LLM.
func (p *Pipeline) Submit(ctx context.Context, userID, rawURL string, source domain.Source) (*Result, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("url is required")
	}
	if source == "" {
		source = domain.SourceWeb
	}
	if !source.Valid() {
		return nil, fmt.Errorf("invalid source %q", source)
	}

	extracted, err := p.extractor.Extract(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", rawURL, err)
	}

	return p.ingest(ctx, userID, extracted.Title, extracted.Text, rawURL, source)
}

// IngestFeedItem ingests one feed entry. When extraction of the entry link
// fails the entry's own content or description is used instead, so a broken
// page never loses the item.
func (p *Pipeline) IngestFeedItem(ctx context.Context, userID string, entry domain.FeedEntry) (*Result, error) {
	title := entry.Title
	text := ""

	if entry.Link != "" {
		if extracted, err := p.extractor.Extract(ctx, entry.Link); err == nil {
			if title == "" {
				title = extracted.Title
			}
			text = extracted.Text
		} else {
			log.Printf("[WARN] extraction failed for feed entry %s, using entry text: %v", entry.Link, err)
		}
	}
	if text == "" {
		text = entry.Content
	}
	if text == "" {
		text = entry.Description
	}
	if text == "" {
		return nil, fmt.Errorf("feed entry %q has no usable text", entry.GUID)
	}

	return p.ingest(ctx, userID, title, text, entry.Link, domain.SourceRSS)
}

// IngestText ingests pre-extracted text directly, skipping the fetch. Used by
// job workers replaying queued submissions that already carry their text.
func (p *Pipeline) IngestText(ctx context.Context, userID, title, text, rawURL string, source domain.Source) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text is required")
	}
	if source == "" {
		source = domain.SourceWeb
	}
	if !source.Valid() {
		return nil, fmt.Errorf("invalid source %q", source)
	}
	return p.ingest(ctx, userID, title, text, rawURL, source)
}

func (p *Pipeline) ingest(ctx context.Context, userID, title, text, rawURL string, source domain.Source) (*Result, error) {
	hash := fingerprint.Hash(rawURL, text)

	created, err := p.store.CreateContent(ctx, &domain.ContentItem{
		UserID:      userID,
		Title:       title,
		URL:         rawURL,
		RawText:     text,
		ContentHash: hash,
		Source:      source,
	})
	if err != nil {
		return nil, fmt.Errorf("store content: %w", err)
	}

	if !created.IsNew {
		analysis, err := p.store.GetCurrentAnalysis(ctx, created.ID)
		if err != nil && !errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("load existing analysis: %w", err)
		}
		log.Printf("[INFO] duplicate content %s for user %s, content id %d", hash, userID, created.ID)
		return &Result{ContentID: created.ID, Analysis: analysis, IsNew: false}, nil
	}

	analysis, cached := p.analyzer.Analyze(ctx, title, text, hash)
	analysis.ContentItemID = created.ID
	if err := p.store.CreateAnalysis(ctx, analysis); err != nil {
		return nil, fmt.Errorf("store analysis: %w", err)
	}

	if err := p.recordConcepts(ctx, userID, created.ID, analysis); err != nil {
		return nil, fmt.Errorf("record concepts: %w", err)
	}
	if p.graphs != nil {
		p.graphs.Invalidate(userID)
	}

	log.Printf("[INFO] ingested %q for user %s, content id %d, priority %s", title, userID, created.ID, analysis.Priority)
	return &Result{ContentID: created.ID, Analysis: analysis, IsNew: true, Cached: cached}, nil
}

// recordConcepts upserts one concept per extracted entity and tag, then
// records pairwise relationships between the analysis' entities
func (p *Pipeline) recordConcepts(ctx context.Context, userID string, contentID int64, analysis *domain.Analysis) error {
	entityIDs := make([]int64, 0, len(analysis.Entities))
	for _, entity := range analysis.Entities {
		if entity.Name == "" {
			continue
		}
		id, err := p.store.UpsertConcept(ctx, &domain.Concept{
			UserID: userID,
			Name:   entity.Name,
			Type:   entity.Type,
		})
		if err != nil {
			return fmt.Errorf("upsert concept %q: %w", entity.Name, err)
		}
		entityIDs = append(entityIDs, id)
	}

	for _, tag := range analysis.Tags {
		if tag == "" {
			continue
		}
		if _, err := p.store.UpsertConcept(ctx, &domain.Concept{
			UserID: userID,
			Name:   tag,
			Type:   "topic",
		}); err != nil {
			return fmt.Errorf("upsert tag concept %q: %w", tag, err)
		}
	}

	strength := analysis.Confidence
	if strength <= 0 {
		strength = 0.1
	}
	for i := 0; i < len(entityIDs); i++ {
		for j := i + 1; j < len(entityIDs); j++ {
			if entityIDs[i] == entityIDs[j] {
				continue
			}
			err := p.store.CreateRelationship(ctx, &domain.ConceptRelationship{
				UserID:               userID,
				FromConceptID:        entityIDs[i],
				ToConceptID:          entityIDs[j],
				Type:                 domain.RelationRelated,
				Strength:             strength,
				OriginatingContentID: contentID,
			})
			if err != nil {
				return fmt.Errorf("create relationship: %w", err)
			}
		}
	}
	return nil
}

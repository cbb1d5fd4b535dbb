// Package graph renders a user's accumulated concepts and relationships into
// a concept map at a requested abstraction level.
package graph

import (
	"context"
	"fmt"
	"math"

	"github.com/pensive-app/pensive/pkg/domain"
)

//go:generate moq -out mocks/concept_store.go -pkg mocks -skip-ensure -fmt goimports . ConceptStore

// ConceptStore provides concepts and relationships for graph building
type ConceptStore interface {
	GetConcepts(ctx context.Context, userID, search string) ([]domain.Concept, error)
	GetRelationships(ctx context.Context, userID string) ([]domain.ConceptRelationship, error)
}

// MapCache caches rendered concept maps
type MapCache interface {
	Get(key string) (*domain.ConceptMap, bool)
	Set(key string, value *domain.ConceptMap)
	DeletePrefix(prefix string)
}

// Builder builds concept maps from stored concepts
type Builder struct {
	store ConceptStore
	cache MapCache
}

// NewBuilder creates a concept map builder. cache may be nil to disable
// result caching.
func NewBuilder(store ConceptStore, cache MapCache) *Builder {
	return &Builder{store: store, cache: cache}
}

// Build renders the concept map for userID at the given abstraction level.
//
// abstractionLevel ranges 0..100: at 0 every concept appears, at 100 only the
// most frequent ones survive. A concept survives when its frequency is at
// least floor(level/100 * maxFreq), never below 1. Edges are kept only when
// both endpoints survive, so the map has no dangling references.
//
// search narrows concepts by name substring. Results for empty searches are
// cached per user and level; searches always hit the store.
func (b *Builder) Build(ctx context.Context, userID string, abstractionLevel int, search string) (*domain.ConceptMap, error) {
	if abstractionLevel < 0 {
		abstractionLevel = 0
	}
	if abstractionLevel > 100 {
		abstractionLevel = 100
	}

	cacheKey := fmt.Sprintf("%s:map:%d", userID, abstractionLevel)
	if b.cache != nil && search == "" {
		if cached, ok := b.cache.Get(cacheKey); ok {
			return cached, nil
		}
	}

	concepts, err := b.store.GetConcepts(ctx, userID, search)
	if err != nil {
		return nil, fmt.Errorf("load concepts: %w", err)
	}

	maxFreq := 1
	for _, c := range concepts {
		if c.Frequency > maxFreq {
			maxFreq = c.Frequency
		}
	}

	minFreq := int(math.Floor(float64(abstractionLevel) / 100 * float64(maxFreq)))
	if minFreq < 1 {
		minFreq = 1
	}

	result := &domain.ConceptMap{Nodes: []domain.ConceptNode{}, Edges: []domain.ConceptEdge{}}
	surviving := make(map[int64]bool, len(concepts))
	for _, c := range concepts {
		if c.Frequency < minFreq {
			continue
		}
		surviving[c.ID] = true
		result.Nodes = append(result.Nodes, domain.ConceptNode{
			ID:          c.ID,
			Label:       c.Name,
			Type:        c.Type,
			Frequency:   c.Frequency,
			Density:     density(c.Frequency, maxFreq),
			Description: c.Description,
		})
	}

	if len(surviving) > 0 {
		relationships, err := b.store.GetRelationships(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load relationships: %w", err)
		}
		for _, rel := range relationships {
			if !surviving[rel.FromConceptID] || !surviving[rel.ToConceptID] {
				continue
			}
			result.Edges = append(result.Edges, domain.ConceptEdge{
				ID:     rel.ID,
				Source: rel.FromConceptID,
				Target: rel.ToConceptID,
				Type:   rel.Type,
				Weight: rel.Strength,
			})
		}
	}

	if b.cache != nil && search == "" {
		b.cache.Set(cacheKey, result)
	}
	return result, nil
}

// Invalidate drops all cached maps for a user, called after new analyses land
func (b *Builder) Invalidate(userID string) {
	if b.cache != nil {
		b.cache.DeletePrefix(userID + ":map:")
	}
}

// density renders a node's visual weight on a 10..100 scale relative to the
// most frequent concept. With a single-mention corpus every node sits at 50.
func density(freq, maxFreq int) float64 {
	if maxFreq <= 1 {
		return 50
	}
	d := float64(freq) / float64(maxFreq) * 100
	if d < 10 {
		return 10
	}
	if d > 100 {
		return 100
	}
	return d
}

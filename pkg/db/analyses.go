package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pensive-app/pensive/pkg/domain"
)

// CreateAnalysis inserts a new analysis version for a content item and points
// the item's current_analysis_id at it. Versions are append-only: re-analysis
// gets version n+1, history stays queryable.
func (db *DB) CreateAnalysis(ctx context.Context, analysis *domain.Analysis) error {
	entities, err := json.Marshal(analysis.Entities)
	if err != nil {
		return fmt.Errorf("marshal entities: %w", err)
	}
	tags, err := json.Marshal(analysis.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	if analysis.Entities == nil {
		entities = []byte("[]")
	}
	if analysis.Tags == nil {
		tags = []byte("[]")
	}

	return db.withRetry(ctx, func() error {
		return db.InTransaction(ctx, func(tx *sqlx.Tx) error {
			var version int
			err := tx.GetContext(ctx, &version,
				`SELECT COALESCE(MAX(version), 0) + 1 FROM analyses WHERE content_item_id = ?`,
				analysis.ContentItemID)
			if err != nil {
				return fmt.Errorf("next analysis version: %w", err)
			}

			result, err := tx.ExecContext(ctx, `
				INSERT INTO analyses (content_item_id, version, summary_sentence, summary_paragraph,
					is_full_read, entities, tags, priority, confidence, model)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				analysis.ContentItemID, version, analysis.SummarySentence, analysis.SummaryParagraph,
				analysis.IsFullRead, string(entities), string(tags),
				string(analysis.Priority), analysis.Confidence, analysis.Model)
			if err != nil {
				return fmt.Errorf("insert analysis: %w", err)
			}

			id, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("get last insert id: %w", err)
			}
			analysis.ID = id
			analysis.Version = version

			if _, err := tx.ExecContext(ctx,
				`UPDATE content_items SET current_analysis_id = ? WHERE id = ?`,
				id, analysis.ContentItemID); err != nil {
				return fmt.Errorf("update current analysis: %w", err)
			}
			return nil
		})
	})
}

// GetAnalysis retrieves an analysis by ID
func (db *DB) GetAnalysis(ctx context.Context, id int64) (*domain.Analysis, error) {
	var row analysisSQL
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM analyses WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return row.toDomain()
}

// GetCurrentAnalysis retrieves the current analysis for a content item
func (db *DB) GetCurrentAnalysis(ctx context.Context, contentItemID int64) (*domain.Analysis, error) {
	var row analysisSQL
	err := db.conn.GetContext(ctx, &row, `
		SELECT a.* FROM analyses a
		JOIN content_items c ON c.current_analysis_id = a.id
		WHERE c.id = ?`, contentItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get current analysis: %w", err)
	}
	return row.toDomain()
}

// GetAnalysisVersions lists all analysis versions for a content item, newest first
func (db *DB) GetAnalysisVersions(ctx context.Context, contentItemID int64) ([]domain.Analysis, error) {
	var rows []analysisSQL
	err := db.conn.SelectContext(ctx, &rows,
		`SELECT * FROM analyses WHERE content_item_id = ? ORDER BY version DESC`, contentItemID)
	if err != nil {
		return nil, fmt.Errorf("get analysis versions: %w", err)
	}

	analyses := make([]domain.Analysis, 0, len(rows))
	for _, row := range rows {
		a, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *a)
	}
	return analyses, nil
}

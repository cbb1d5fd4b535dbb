package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pensive-app/pensive/pkg/domain"
)

// CreateResult is the outcome of a content store attempt
type CreateResult struct {
	ID    int64
	IsNew bool
}

// CreateContent stores a content item if no row exists for (userID, contentHash).
// The insert-if-absent is atomic: the unique index plus ON CONFLICT DO NOTHING
// makes concurrent duplicate submissions converge on a single row. The returned
// IsNew tells the caller whether analysis is still owed for this content.
func (db *DB) CreateContent(ctx context.Context, item *domain.ContentItem) (CreateResult, error) {
	var res CreateResult

	err := db.withRetry(ctx, func() error {
		query := `
			INSERT INTO content_items (user_id, title, url, raw_text, content_hash, source)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(user_id, content_hash) DO NOTHING
		`
		result, err := db.conn.ExecContext(ctx, query,
			item.UserID, item.Title, item.URL, item.RawText, item.ContentHash, string(item.Source))
		if err != nil {
			return fmt.Errorf("insert content: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}

		if rowsAffected > 0 {
			id, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("get last insert id: %w", err)
			}
			res = CreateResult{ID: id, IsNew: true}
			item.ID = id
			return nil
		}

		// conflict: fetch the existing row for this dedup key
		var existingID int64
		err = db.conn.GetContext(ctx, &existingID,
			`SELECT id FROM content_items WHERE user_id = ? AND content_hash = ?`,
			item.UserID, item.ContentHash)
		if err != nil {
			return fmt.Errorf("get existing content: %w", err)
		}
		res = CreateResult{ID: existingID, IsNew: false}
		return nil
	})

	return res, err
}

// GetContent retrieves a content item by ID
func (db *DB) GetContent(ctx context.Context, id int64) (*domain.ContentItem, error) {
	var row contentItemSQL
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM content_items WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get content: %w", err)
	}
	item := row.toDomain()
	return &item, nil
}

// GetContentByHash retrieves a content item by its dedup key
func (db *DB) GetContentByHash(ctx context.Context, userID, hash string) (*domain.ContentItem, error) {
	var row contentItemSQL
	err := db.conn.GetContext(ctx, &row,
		`SELECT * FROM content_items WHERE user_id = ? AND content_hash = ?`, userID, hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get content by hash: %w", err)
	}
	item := row.toDomain()
	return &item, nil
}

// ContentExists reports whether a content item exists for the dedup key
func (db *DB) ContentExists(ctx context.Context, userID, hash string) (bool, error) {
	var count int
	err := db.conn.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM content_items WHERE user_id = ? AND content_hash = ?`, userID, hash)
	if err != nil {
		return false, fmt.Errorf("check content exists: %w", err)
	}
	return count > 0, nil
}

// ContentPage is a paginated content listing
type ContentPage struct {
	Items      []domain.ContentWithAnalysis `json:"items"`
	Total      int                          `json:"total"`
	Page       int                          `json:"page"`
	TotalPages int                          `json:"totalPages"`
	HasMore    bool                         `json:"hasMore"`
}

// GetUserContent lists a user's content with optional filters, newest first
func (db *DB) GetUserContent(ctx context.Context, userID string, filter domain.ContentFilter) (*ContentPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	where := []string{"c.user_id = ?"}
	args := []interface{}{userID}

	if filter.Source != "" {
		where = append(where, "c.source = ?")
		args = append(args, string(filter.Source))
	}
	if filter.Priority != "" {
		where = append(where, "a.priority = ?")
		args = append(args, string(filter.Priority))
	}
	if filter.Timeframe != "" {
		tf := domain.Timeframe(filter.Timeframe)
		if !tf.Valid() {
			return nil, fmt.Errorf("invalid timeframe %q", filter.Timeframe)
		}
		where = append(where, "c.created_at >= ?")
		args = append(args, tf.Cutoff(time.Now()))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM content_items c
		LEFT JOIN analyses a ON a.id = c.current_analysis_id
		WHERE %s`, whereClause)
	if err := db.conn.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("count content: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT c.*
		FROM content_items c
		LEFT JOIN analyses a ON a.id = c.current_analysis_id
		WHERE %s
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT ? OFFSET ?`, whereClause)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	var rows []contentItemSQL
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get user content: %w", err)
	}

	items := make([]domain.ContentWithAnalysis, 0, len(rows))
	for _, row := range rows {
		item := domain.ContentWithAnalysis{ContentItem: row.toDomain()}
		if row.CurrentAnalysisID.Valid {
			analysis, err := db.GetAnalysis(ctx, row.CurrentAnalysisID.Int64)
			if err != nil && !errors.Is(err, ErrNotFound) {
				return nil, err
			}
			item.Analysis = analysis
		}
		items = append(items, item)
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit
	return &ContentPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages,
		HasMore:    filter.Page < totalPages,
	}, nil
}

// SearchContent performs a substring match over title and raw text.
// Best effort, not full-text-indexed.
func (db *DB) SearchContent(ctx context.Context, userID, query string, limit int) ([]domain.ContentItem, error) {
	if limit < 1 {
		limit = 20
	}
	pattern := "%" + escapeLike(query) + "%"

	var rows []contentItemSQL
	err := db.conn.SelectContext(ctx, &rows, `
		SELECT * FROM content_items
		WHERE user_id = ? AND (title LIKE ? ESCAPE '\' OR raw_text LIKE ? ESCAPE '\')
		ORDER BY created_at DESC
		LIMIT ?`, userID, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search content: %w", err)
	}

	items := make([]domain.ContentItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items, nil
}

// DeleteContent removes a content item, explicit user action only
func (db *DB) DeleteContent(ctx context.Context, userID string, id int64) error {
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM content_items WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// escapeLike escapes LIKE wildcards in user-supplied search input
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

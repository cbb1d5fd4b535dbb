package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pensive-app/pensive/pkg/domain"
)

// CreateFeed subscribes a user to a feed URL.
// Duplicate (user, url) subscriptions return the existing feed id.
func (db *DB) CreateFeed(ctx context.Context, feed *domain.Feed) error {
	if feed.FetchInterval <= 0 {
		feed.FetchInterval = 3600
	}

	return db.withRetry(ctx, func() error {
		result, err := db.conn.ExecContext(ctx, `
			INSERT INTO feeds (user_id, url, title, active, fetch_interval, next_fetch)
			VALUES (?, ?, ?, 1, ?, ?)
			ON CONFLICT(user_id, url) DO NOTHING`,
			feed.UserID, feed.URL, feed.Title, feed.FetchInterval, time.Now())
		if err != nil {
			return fmt.Errorf("insert feed: %w", err)
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
			feed.ID = id
			feed.Active = true
			return nil
		}

		// already subscribed
		var existingID int64
		if err := db.conn.GetContext(ctx, &existingID,
			`SELECT id FROM feeds WHERE user_id = ? AND url = ?`, feed.UserID, feed.URL); err != nil {
			return fmt.Errorf("get existing feed: %w", err)
		}
		feed.ID = existingID
		return nil
	})
}

// GetFeed retrieves a feed by ID
func (db *DB) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	var row feedSQL
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM feeds WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get feed: %w", err)
	}
	feed := row.toDomain()
	return &feed, nil
}

// GetUserFeeds lists all feeds for a user
func (db *DB) GetUserFeeds(ctx context.Context, userID string) ([]domain.Feed, error) {
	var rows []feedSQL
	err := db.conn.SelectContext(ctx, &rows,
		`SELECT * FROM feeds WHERE user_id = ? ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("get user feeds: %w", err)
	}

	feeds := make([]domain.Feed, 0, len(rows))
	for _, row := range rows {
		feeds = append(feeds, row.toDomain())
	}
	return feeds, nil
}

// GetFeedsToFetch returns active feeds whose next fetch time has passed
func (db *DB) GetFeedsToFetch(ctx context.Context, limit int) ([]domain.Feed, error) {
	if limit < 1 {
		limit = 50
	}
	var rows []feedSQL
	err := db.conn.SelectContext(ctx, &rows, `
		SELECT * FROM feeds
		WHERE active = 1 AND (next_fetch IS NULL OR next_fetch <= ?)
		ORDER BY next_fetch
		LIMIT ?`, time.Now(), limit)
	if err != nil {
		return nil, fmt.Errorf("get feeds to fetch: %w", err)
	}

	feeds := make([]domain.Feed, 0, len(rows))
	for _, row := range rows {
		feeds = append(feeds, row.toDomain())
	}
	return feeds, nil
}

// UpdateFeedFetched records a successful fetch: clears the error state,
// stores conditional request validators and advances next_fetch.
func (db *DB) UpdateFeedFetched(ctx context.Context, feedID int64, etag, lastModified string, lastItemSeen *time.Time) error {
	return db.withRetry(ctx, func() error {
		nextFetch := `datetime('now', '+' || fetch_interval || ' seconds')`
		query := fmt.Sprintf(`
			UPDATE feeds
			SET last_fetched = ?,
			    next_fetch = %s,
			    etag = ?,
			    last_modified = ?,
			    last_item_seen = COALESCE(?, last_item_seen),
			    error_count = 0,
			    last_error = ''
			WHERE id = ?`, nextFetch)
		_, err := db.conn.ExecContext(ctx, query, time.Now(), etag, lastModified, lastItemSeen, feedID)
		if err != nil {
			return fmt.Errorf("update feed fetched: %w", err)
		}
		return nil
	})
}

// UpdateFeedError records a failed fetch attempt and deactivates the feed once
// the error count reaches maxErrors. Deactivated, never deleted.
func (db *DB) UpdateFeedError(ctx context.Context, feedID int64, errMsg string, maxErrors int) error {
	return db.withRetry(ctx, func() error {
		query := `
			UPDATE feeds
			SET error_count = error_count + 1,
			    last_error = ?,
			    last_fetched = ?,
			    next_fetch = datetime('now', '+' || fetch_interval || ' seconds'),
			    active = CASE WHEN error_count + 1 >= ? THEN 0 ELSE active END
			WHERE id = ?`
		_, err := db.conn.ExecContext(ctx, query, errMsg, time.Now(), maxErrors, feedID)
		if err != nil {
			return fmt.Errorf("update feed error: %w", err)
		}
		return nil
	})
}

// SetFeedActive enables or disables a feed
func (db *DB) SetFeedActive(ctx context.Context, feedID int64, active bool) error {
	return db.withRetry(ctx, func() error {
		result, err := db.conn.ExecContext(ctx,
			`UPDATE feeds SET active = ?, error_count = 0, last_error = '' WHERE id = ?`, active, feedID)
		if err != nil {
			return fmt.Errorf("set feed active: %w", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pensive-app/pensive/pkg/domain"
)

// CreateDigest persists a generated digest
func (db *DB) CreateDigest(ctx context.Context, digest *domain.Digest) error {
	ids, err := json.Marshal(digest.ContentIDs)
	if err != nil {
		return fmt.Errorf("marshal content ids: %w", err)
	}
	if digest.ContentIDs == nil {
		ids = []byte("[]")
	}
	if digest.Status == "" {
		digest.Status = domain.DigestPending
	}
	if digest.ScheduledAt.IsZero() {
		digest.ScheduledAt = time.Now()
	}

	return db.withRetry(ctx, func() error {
		result, err := db.conn.ExecContext(ctx, `
			INSERT INTO digests (user_id, timeframe, title, html, content_ids, status, scheduled_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			digest.UserID, string(digest.Timeframe), digest.Title, digest.HTML,
			string(ids), string(digest.Status), digest.ScheduledAt)
		if err != nil {
			return fmt.Errorf("insert digest: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get last insert id: %w", err)
		}
		digest.ID = id
		return nil
	})
}

// GetDigest retrieves a digest by ID
func (db *DB) GetDigest(ctx context.Context, id int64) (*domain.Digest, error) {
	var row digestSQL
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM digests WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get digest: %w", err)
	}
	digest, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &digest, nil
}

// GetUserDigests lists a user's digests, newest first
func (db *DB) GetUserDigests(ctx context.Context, userID string, limit int) ([]domain.Digest, error) {
	if limit < 1 {
		limit = 20
	}
	var rows []digestSQL
	err := db.conn.SelectContext(ctx, &rows,
		`SELECT * FROM digests WHERE user_id = ? ORDER BY scheduled_at DESC, id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get user digests: %w", err)
	}

	digests := make([]domain.Digest, 0, len(rows))
	for _, row := range rows {
		digest, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		digests = append(digests, digest)
	}
	return digests, nil
}

// MarkDigestSent marks a digest delivered, after which it is immutable
func (db *DB) MarkDigestSent(ctx context.Context, digestID int64) error {
	return db.withRetry(ctx, func() error {
		result, err := db.conn.ExecContext(ctx,
			`UPDATE digests SET status = 'sent', sent_at = ? WHERE id = ? AND status != 'sent'`,
			time.Now(), digestID)
		if err != nil {
			return fmt.Errorf("mark digest sent: %w", err)
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

// GetDigestUsers returns distinct user ids that have any content, used by the
// digest scheduler to decide who gets periodic digests
func (db *DB) GetDigestUsers(ctx context.Context) ([]string, error) {
	var users []string
	err := db.conn.SelectContext(ctx, &users, `SELECT DISTINCT user_id FROM content_items ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("get digest users: %w", err)
	}
	return users, nil
}

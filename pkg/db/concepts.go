package db

import (
	"context"
	"fmt"

	"github.com/pensive-app/pensive/pkg/domain"
)

// UpsertConcept inserts a concept or bumps its frequency when the user already
// has one with the same name. Returns the concept id either way.
func (db *DB) UpsertConcept(ctx context.Context, c *domain.Concept) (int64, error) {
	var id int64
	err := db.withRetry(ctx, func() error {
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO concepts (user_id, name, type, frequency, description)
			VALUES (?, ?, ?, 1, ?)
			ON CONFLICT(user_id, name) DO UPDATE SET
				frequency = frequency + 1,
				type = CASE WHEN excluded.type != '' THEN excluded.type ELSE type END,
				description = CASE WHEN excluded.description != '' THEN excluded.description ELSE description END`,
			c.UserID, c.Name, c.Type, c.Description)
		if err != nil {
			return fmt.Errorf("upsert concept: %w", err)
		}

		if err := db.conn.GetContext(ctx, &id,
			`SELECT id FROM concepts WHERE user_id = ? AND name = ?`, c.UserID, c.Name); err != nil {
			return fmt.Errorf("get concept id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

// CreateRelationship records a directed relationship between two concepts.
// Self-edges and non-positive strength are rejected before touching the db.
func (db *DB) CreateRelationship(ctx context.Context, rel *domain.ConceptRelationship) error {
	if rel.FromConceptID == rel.ToConceptID {
		return fmt.Errorf("relationship endpoints must differ")
	}
	if rel.Strength <= 0 {
		return fmt.Errorf("relationship strength must be positive")
	}

	return db.withRetry(ctx, func() error {
		result, err := db.conn.ExecContext(ctx, `
			INSERT INTO concept_relationships (user_id, from_concept_id, to_concept_id, type, strength, originating_content_id)
			VALUES (?, ?, ?, ?, ?, ?)`,
			rel.UserID, rel.FromConceptID, rel.ToConceptID, rel.Type, rel.Strength, rel.OriginatingContentID)
		if err != nil {
			return fmt.Errorf("insert relationship: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get last insert id: %w", err)
		}
		rel.ID = id
		return nil
	})
}

// GetConcepts lists a user's concepts, optionally filtered by a name substring
func (db *DB) GetConcepts(ctx context.Context, userID, search string) ([]domain.Concept, error) {
	var concepts []domain.Concept

	query := `SELECT id, user_id, name, type, frequency, description FROM concepts WHERE user_id = ?`
	args := []interface{}{userID}
	if search != "" {
		query += ` AND name LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += ` ORDER BY frequency DESC, name`

	rows, err := db.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get concepts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Concept
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Frequency, &c.Description); err != nil {
			return nil, fmt.Errorf("scan concept: %w", err)
		}
		concepts = append(concepts, c)
	}
	return concepts, rows.Err()
}

// GetRelationships lists all concept relationships for a user
func (db *DB) GetRelationships(ctx context.Context, userID string) ([]domain.ConceptRelationship, error) {
	var rels []domain.ConceptRelationship

	rows, err := db.conn.QueryxContext(ctx, `
		SELECT id, user_id, from_concept_id, to_concept_id, type, strength, originating_content_id
		FROM concept_relationships WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("get relationships: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r domain.ConceptRelationship
		if err := rows.Scan(&r.ID, &r.UserID, &r.FromConceptID, &r.ToConceptID,
			&r.Type, &r.Strength, &r.OriginatingContentID); err != nil {
			return nil, fmt.Errorf("scan relationship: %w", err)
		}
		rels = append(rels, r)
	}
	return rels, rows.Err()
}

package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensive-app/pensive/pkg/domain"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// create temp file for test database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	cfg := Config{
		DSN: "file:" + tmpFile.Name() + "?mode=rwc",
	}

	database, err := New(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		database.Close()
		os.Remove(tmpFile.Name())
	})

	return database
}

func TestDB_InitSchema(t *testing.T) {
	database := setupTestDB(t)

	// schema should already be initialized by New()
	var count int
	err := database.conn.Get(&count, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name IN ('content_items', 'analyses', 'concepts', 'concept_relationships', 'feeds', 'jobs', 'digests')
	`)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestDB_Ping(t *testing.T) {
	database := setupTestDB(t)
	assert.NoError(t, database.Ping(context.Background()))
}

// storeTestContent inserts a content item and returns it, shared fixture helper
func storeTestContent(t *testing.T, database *DB, userID, url, text string) *domain.ContentItem {
	t.Helper()
	item := &domain.ContentItem{
		UserID:      userID,
		Title:       "Test " + url,
		URL:         url,
		RawText:     text,
		ContentHash: userID + "-" + url + "-" + text, // tests supply the hash directly
		Source:      domain.SourceWeb,
	}
	res, err := database.CreateContent(context.Background(), item)
	require.NoError(t, err)
	require.True(t, res.IsNew)
	item.ID = res.ID
	return item
}

package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensive-app/pensive/pkg/domain"
)

func TestFeedLifecycle(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	feed := &domain.Feed{
		UserID:        "u1",
		URL:           "https://example.com/feed.xml",
		Title:         "Example Feed",
		FetchInterval: 1800,
	}
	require.NoError(t, database.CreateFeed(ctx, feed))
	assert.NotZero(t, feed.ID)
	assert.True(t, feed.Active)

	t.Run("duplicate subscription returns existing", func(t *testing.T) {
		dup := &domain.Feed{UserID: "u1", URL: "https://example.com/feed.xml"}
		require.NoError(t, database.CreateFeed(ctx, dup))
		assert.Equal(t, feed.ID, dup.ID)

		feeds, err := database.GetUserFeeds(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, feeds, 1)
	})

	t.Run("due for fetch immediately after subscribe", func(t *testing.T) {
		due, err := database.GetFeedsToFetch(ctx, 10)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, feed.ID, due[0].ID)
	})

	t.Run("successful fetch clears errors and stores validators", func(t *testing.T) {
		seen := time.Now().Add(-time.Hour)
		require.NoError(t, database.UpdateFeedFetched(ctx, feed.ID, `"etag-1"`, "Mon, 02 Jan 2006", &seen))

		got, err := database.GetFeed(ctx, feed.ID)
		require.NoError(t, err)
		assert.Equal(t, `"etag-1"`, got.ETag)
		assert.Equal(t, "Mon, 02 Jan 2006", got.LastModified)
		assert.Zero(t, got.ErrorCount)
		require.NotNil(t, got.NextFetch)
		require.NotNil(t, got.LastItemSeen)

		// next_fetch advanced, feed no longer due
		due, err := database.GetFeedsToFetch(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, due)
	})
}

func TestUpdateFeedError_Deactivation(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	feed := &domain.Feed{UserID: "u1", URL: "https://example.com/bad.xml"}
	require.NoError(t, database.CreateFeed(ctx, feed))

	maxErrors := 3
	for i := 1; i < maxErrors; i++ {
		require.NoError(t, database.UpdateFeedError(ctx, feed.ID, "timeout", maxErrors))
		got, err := database.GetFeed(ctx, feed.ID)
		require.NoError(t, err)
		assert.Equal(t, i, got.ErrorCount)
		assert.True(t, got.Active, "still active after %d errors", i)
	}

	// the final failure deactivates, does not delete
	require.NoError(t, database.UpdateFeedError(ctx, feed.ID, "timeout", maxErrors))
	got, err := database.GetFeed(ctx, feed.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.Equal(t, maxErrors, got.ErrorCount)
	assert.Equal(t, "timeout", got.LastError)

	// deactivated feeds are not fetched
	due, errDue := database.GetFeedsToFetch(ctx, 10)
	require.NoError(t, errDue)
	assert.Empty(t, due)

	// manual reactivation resets the error state
	require.NoError(t, database.SetFeedActive(ctx, feed.ID, true))
	got, err = database.GetFeed(ctx, feed.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)
	assert.Zero(t, got.ErrorCount)
}

func TestSetFeedActive_NotFound(t *testing.T) {
	database := setupTestDB(t)
	err := database.SetFeedActive(context.Background(), 404, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensive-app/pensive/pkg/digest"
	"github.com/pensive-app/pensive/pkg/domain"
	"github.com/pensive-app/pensive/pkg/scheduler/mocks"
)

func TestScheduler_ScheduleDigests(t *testing.T) {
	now := time.Now()
	digests := &mocks.DigestStoreMock{
		GetDigestUsersFunc: func(ctx context.Context) ([]string, error) {
			return []string{"fresh", "stale"}, nil
		},
		GetUserDigestsFunc: func(ctx context.Context, userID string, limit int) ([]domain.Digest, error) {
			if userID == "fresh" {
				// all three timeframes generated moments ago
				return []domain.Digest{
					{UserID: userID, Timeframe: domain.TimeframeWeekly, ScheduledAt: now.Add(-time.Hour)},
					{UserID: userID, Timeframe: domain.TimeframeMonthly, ScheduledAt: now.Add(-time.Hour)},
					{UserID: userID, Timeframe: domain.TimeframeQuarterly, ScheduledAt: now.Add(-time.Hour)},
				}, nil
			}
			// weekly aged out of its window, the others still current
			return []domain.Digest{
				{UserID: userID, Timeframe: domain.TimeframeWeekly, ScheduledAt: now.Add(-8 * 24 * time.Hour)},
				{UserID: userID, Timeframe: domain.TimeframeMonthly, ScheduledAt: now.Add(-time.Hour)},
				{UserID: userID, Timeframe: domain.TimeframeQuarterly, ScheduledAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	queue := &mocks.QueueMock{
		EnqueueFunc: func(ctx context.Context, jobType domain.JobType, payload interface{}, scheduledAt time.Time, maxAttempts int) (int64, error) {
			return 1, nil
		},
	}
	s := New(queue, &mocks.FeedStoreMock{}, digests, &mocks.ParserMock{}, &mocks.PipelineMock{},
		&mocks.DigestGeneratorMock{}, Config{})

	results, err := s.ScheduleDigests(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "fresh", results[0].UserID)
	assert.Empty(t, results[0].Enqueued, "current digests not regenerated")

	assert.Equal(t, "stale", results[1].UserID)
	assert.Equal(t, []string{"weekly"}, results[1].Enqueued)

	require.Len(t, queue.EnqueueCalls(), 1)
	assert.Equal(t, domain.JobGenerateDigest, queue.EnqueueCalls()[0].JobType)
	payload, ok := queue.EnqueueCalls()[0].Payload.(domain.DigestPayload)
	require.True(t, ok)
	assert.Equal(t, "stale", payload.UserID)
	assert.Equal(t, "weekly", payload.Timeframe)
}

func TestScheduler_ScheduleDigests_NewUser(t *testing.T) {
	digests := &mocks.DigestStoreMock{
		GetDigestUsersFunc: func(ctx context.Context) ([]string, error) { return []string{"u1"}, nil },
		GetUserDigestsFunc: func(ctx context.Context, userID string, limit int) ([]domain.Digest, error) {
			return nil, nil
		},
	}
	queue := &mocks.QueueMock{
		EnqueueFunc: func(ctx context.Context, jobType domain.JobType, payload interface{}, scheduledAt time.Time, maxAttempts int) (int64, error) {
			return 1, nil
		},
	}
	s := New(queue, &mocks.FeedStoreMock{}, digests, &mocks.ParserMock{}, &mocks.PipelineMock{},
		&mocks.DigestGeneratorMock{}, Config{})

	results, err := s.ScheduleDigests(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"weekly", "monthly", "quarterly"}, results[0].Enqueued,
		"user with no digests gets all timeframes queued")
	assert.Len(t, queue.EnqueueCalls(), 3)
}

func TestScheduler_ScheduleDigests_UserError(t *testing.T) {
	digests := &mocks.DigestStoreMock{
		GetDigestUsersFunc: func(ctx context.Context) ([]string, error) { return []string{"broken"}, nil },
		GetUserDigestsFunc: func(ctx context.Context, userID string, limit int) ([]domain.Digest, error) {
			return nil, errors.New("db gone")
		},
	}
	s := New(&mocks.QueueMock{}, &mocks.FeedStoreMock{}, digests, &mocks.ParserMock{}, &mocks.PipelineMock{},
		&mocks.DigestGeneratorMock{}, Config{})

	results, err := s.ScheduleDigests(context.Background())
	require.NoError(t, err, "one broken user doesn't fail the sweep")
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Error, "db gone")
}

func TestScheduler_HandleGenerateDigest(t *testing.T) {
	gen := &mocks.DigestGeneratorMock{
		GenerateFunc: func(ctx context.Context, userID string, timeframe domain.Timeframe) (*domain.Digest, error) {
			return &domain.Digest{ID: 33, UserID: userID, Timeframe: timeframe}, nil
		},
	}
	queue := &mocks.QueueMock{
		EnqueueFunc: func(ctx context.Context, jobType domain.JobType, payload interface{}, scheduledAt time.Time, maxAttempts int) (int64, error) {
			return 1, nil
		},
	}
	s := New(queue, &mocks.FeedStoreMock{}, &mocks.DigestStoreMock{}, &mocks.ParserMock{}, &mocks.PipelineMock{}, gen, Config{})

	payload, err := json.Marshal(domain.DigestPayload{UserID: "u1", Timeframe: "weekly"})
	require.NoError(t, err)
	require.NoError(t, s.handleGenerateDigest(context.Background(), payload))

	require.Len(t, gen.GenerateCalls(), 1)
	assert.Equal(t, domain.TimeframeWeekly, gen.GenerateCalls()[0].Timeframe)

	// generation chains into delivery
	require.Len(t, queue.EnqueueCalls(), 1)
	assert.Equal(t, domain.JobSendEmail, queue.EnqueueCalls()[0].JobType)
	send, ok := queue.EnqueueCalls()[0].Payload.(domain.DigestPayload)
	require.True(t, ok)
	assert.Equal(t, int64(33), send.DigestID)
}

func TestScheduler_HandleGenerateDigest_NoContent(t *testing.T) {
	gen := &mocks.DigestGeneratorMock{
		GenerateFunc: func(ctx context.Context, userID string, timeframe domain.Timeframe) (*domain.Digest, error) {
			return nil, digest.ErrNoContent
		},
	}
	queue := &mocks.QueueMock{}
	s := New(queue, &mocks.FeedStoreMock{}, &mocks.DigestStoreMock{}, &mocks.ParserMock{}, &mocks.PipelineMock{}, gen, Config{})

	payload, err := json.Marshal(domain.DigestPayload{UserID: "u1", Timeframe: "weekly"})
	require.NoError(t, err)
	require.NoError(t, s.handleGenerateDigest(context.Background(), payload), "empty window is not a failure")
	assert.Empty(t, queue.EnqueueCalls())
}

func TestScheduler_HandleGenerateDigest_Error(t *testing.T) {
	gen := &mocks.DigestGeneratorMock{
		GenerateFunc: func(ctx context.Context, userID string, timeframe domain.Timeframe) (*domain.Digest, error) {
			return nil, errors.New("store down")
		},
	}
	s := New(&mocks.QueueMock{}, &mocks.FeedStoreMock{}, &mocks.DigestStoreMock{}, &mocks.ParserMock{}, &mocks.PipelineMock{}, gen, Config{})

	payload, err := json.Marshal(domain.DigestPayload{UserID: "u1", Timeframe: "weekly"})
	require.NoError(t, err)
	err = s.handleGenerateDigest(context.Background(), payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store down")
}

func TestScheduler_HandleSendDigest(t *testing.T) {
	digests := &mocks.DigestStoreMock{
		MarkDigestSentFunc: func(ctx context.Context, digestID int64) error { return nil },
	}
	s := New(&mocks.QueueMock{}, &mocks.FeedStoreMock{}, digests, &mocks.ParserMock{}, &mocks.PipelineMock{},
		&mocks.DigestGeneratorMock{}, Config{})

	payload, err := json.Marshal(domain.DigestPayload{UserID: "u1", Timeframe: "weekly", DigestID: 33})
	require.NoError(t, err)
	require.NoError(t, s.handleSendDigest(context.Background(), payload))

	require.Len(t, digests.MarkDigestSentCalls(), 1)
	assert.Equal(t, int64(33), digests.MarkDigestSentCalls()[0].DigestID)
}

func TestScheduler_HandleSendDigest_MissingID(t *testing.T) {
	s := New(&mocks.QueueMock{}, &mocks.FeedStoreMock{}, &mocks.DigestStoreMock{}, &mocks.ParserMock{},
		&mocks.PipelineMock{}, &mocks.DigestGeneratorMock{}, Config{})

	payload, err := json.Marshal(domain.DigestPayload{UserID: "u1", Timeframe: "weekly"})
	require.NoError(t, err)
	err = s.handleSendDigest(context.Background(), payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing digest id")
}

package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensive-app/pensive/pkg/db"
	"github.com/pensive-app/pensive/pkg/domain"
	"github.com/pensive-app/pensive/pkg/scheduler/mocks"
	"github.com/pensive-app/pensive/pkg/service"
)

func TestNew_Defaults(t *testing.T) {
	s := New(&mocks.QueueMock{}, &mocks.FeedStoreMock{}, &mocks.DigestStoreMock{},
		&mocks.ParserMock{}, &mocks.PipelineMock{}, &mocks.DigestGeneratorMock{}, Config{})

	assert.Equal(t, time.Hour, s.cfg.FeedPollInterval)
	assert.Equal(t, 5*time.Second, s.cfg.JobPollInterval)
	assert.Equal(t, 5*time.Minute, s.cfg.VisibilityTimeout)
	assert.Equal(t, 5*time.Minute, s.cfg.RetryDelay)
	assert.Equal(t, 5, s.cfg.MaxWorkers)
	assert.Equal(t, 10, s.cfg.MaxFeedErrors)
	assert.Equal(t, 3, s.cfg.MaxAttempts)
}

func TestScheduler_RunJob_AckOnSuccess(t *testing.T) {
	queue := &mocks.QueueMock{
		AckFunc: func(ctx context.Context, jobID int64) error { return nil },
	}
	pipe := &mocks.PipelineMock{
		SubmitFunc: func(ctx context.Context, userID, rawURL string, source domain.Source) (*service.Result, error) {
			return &service.Result{ContentID: 1}, nil
		},
	}
	s := New(queue, &mocks.FeedStoreMock{}, &mocks.DigestStoreMock{},
		&mocks.ParserMock{}, pipe, &mocks.DigestGeneratorMock{}, Config{})

	payload, err := json.Marshal(domain.AnalyzePayload{UserID: "u1", URL: "https://example.com/a", Source: domain.SourceWeb})
	require.NoError(t, err)
	s.runJob(context.Background(), &domain.Job{ID: 42, Type: domain.JobAnalyzeContent, Payload: payload})

	require.Len(t, queue.AckCalls(), 1)
	assert.Equal(t, int64(42), queue.AckCalls()[0].JobID)
	assert.Empty(t, queue.NackCalls())
	require.Len(t, pipe.SubmitCalls(), 1)
	assert.Equal(t, "u1", pipe.SubmitCalls()[0].UserID)
}

func TestScheduler_RunJob_NackOnFailure(t *testing.T) {
	queue := &mocks.QueueMock{
		NackFunc: func(ctx context.Context, jobID int64, jobErr error, retryDelay time.Duration) error { return nil },
	}
	pipe := &mocks.PipelineMock{
		SubmitFunc: func(ctx context.Context, userID, rawURL string, source domain.Source) (*service.Result, error) {
			return nil, errors.New("extraction blew up")
		},
	}
	s := New(queue, &mocks.FeedStoreMock{}, &mocks.DigestStoreMock{},
		&mocks.ParserMock{}, pipe, &mocks.DigestGeneratorMock{}, Config{RetryDelay: time.Minute})

	payload, err := json.Marshal(domain.AnalyzePayload{UserID: "u1", URL: "https://example.com/a", Source: domain.SourceWeb})
	require.NoError(t, err)
	s.runJob(context.Background(), &domain.Job{ID: 7, Type: domain.JobAnalyzeContent, Payload: payload})

	require.Len(t, queue.NackCalls(), 1)
	assert.Equal(t, int64(7), queue.NackCalls()[0].JobID)
	assert.Equal(t, time.Minute, queue.NackCalls()[0].RetryDelay)
	assert.Contains(t, queue.NackCalls()[0].JobErr.Error(), "extraction blew up")
	assert.Empty(t, queue.AckCalls())
}

func TestScheduler_Dispatch_UnknownType(t *testing.T) {
	s := New(&mocks.QueueMock{}, &mocks.FeedStoreMock{}, &mocks.DigestStoreMock{},
		&mocks.ParserMock{}, &mocks.PipelineMock{}, &mocks.DigestGeneratorMock{}, Config{})

	err := s.dispatch(context.Background(), &domain.Job{ID: 1, Type: "mine_bitcoin", Payload: json.RawMessage(`{}`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown job type")
}

func TestScheduler_HandleAnalyze_Routing(t *testing.T) {
	tests := []struct {
		name       string
		payload    domain.AnalyzePayload
		wantSubmit int
		wantText   int
		wantFeed   int
	}{
		{
			name:     "rss entries go through the feed path",
			payload:  domain.AnalyzePayload{UserID: "u1", URL: "https://example.com/post", Title: "Post", Text: "carried text", Source: domain.SourceRSS},
			wantFeed: 1,
		},
		{
			name:     "pre-extracted text skips fetching",
			payload:  domain.AnalyzePayload{UserID: "u1", URL: "https://example.com/doc", Title: "Doc", Text: "pasted body", Source: domain.SourceManual},
			wantText: 1,
		},
		{
			name:       "bare url is submitted for extraction",
			payload:    domain.AnalyzePayload{UserID: "u1", URL: "https://example.com/page", Source: domain.SourceWeb},
			wantSubmit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipe := &mocks.PipelineMock{
				SubmitFunc: func(ctx context.Context, userID, rawURL string, source domain.Source) (*service.Result, error) {
					return &service.Result{}, nil
				},
				IngestTextFunc: func(ctx context.Context, userID, title, text, rawURL string, source domain.Source) (*service.Result, error) {
					return &service.Result{}, nil
				},
				IngestFeedItemFunc: func(ctx context.Context, userID string, entry domain.FeedEntry) (*service.Result, error) {
					return &service.Result{}, nil
				},
			}
			s := New(&mocks.QueueMock{}, &mocks.FeedStoreMock{}, &mocks.DigestStoreMock{},
				&mocks.ParserMock{}, pipe, &mocks.DigestGeneratorMock{}, Config{})

			raw, err := json.Marshal(tt.payload)
			require.NoError(t, err)
			require.NoError(t, s.handleAnalyze(context.Background(), raw))

			assert.Len(t, pipe.SubmitCalls(), tt.wantSubmit)
			assert.Len(t, pipe.IngestTextCalls(), tt.wantText)
			assert.Len(t, pipe.IngestFeedItemCalls(), tt.wantFeed)

			if tt.wantFeed == 1 {
				entry := pipe.IngestFeedItemCalls()[0].Entry
				assert.Equal(t, tt.payload.URL, entry.Link)
				assert.Equal(t, tt.payload.Title, entry.Title)
				assert.Equal(t, tt.payload.Text, entry.Description, "carried text must survive as the fallback body")
			}
		})
	}
}

func TestScheduler_HandleAnalyze_BadPayload(t *testing.T) {
	s := New(&mocks.QueueMock{}, &mocks.FeedStoreMock{}, &mocks.DigestStoreMock{},
		&mocks.ParserMock{}, &mocks.PipelineMock{}, &mocks.DigestGeneratorMock{}, Config{})

	err := s.handleAnalyze(context.Background(), json.RawMessage(`not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode analyze payload")
}

func TestScheduler_ProcessJobs_DrainsQueue(t *testing.T) {
	jobs := make(chan *domain.Job, 3)
	for i := int64(1); i <= 3; i++ {
		payload, err := json.Marshal(domain.AnalyzePayload{UserID: "u1", URL: "https://example.com/a", Source: domain.SourceWeb})
		require.NoError(t, err)
		jobs <- &domain.Job{ID: i, Type: domain.JobAnalyzeContent, Payload: payload}
	}

	queue := &mocks.QueueMock{
		DequeueFunc: func(ctx context.Context, visibility time.Duration) (*domain.Job, error) {
			select {
			case job := <-jobs:
				return job, nil
			default:
				return nil, db.ErrNotFound
			}
		},
		AckFunc: func(ctx context.Context, jobID int64) error { return nil },
	}
	pipe := &mocks.PipelineMock{
		SubmitFunc: func(ctx context.Context, userID, rawURL string, source domain.Source) (*service.Result, error) {
			return &service.Result{}, nil
		},
	}
	s := New(queue, &mocks.FeedStoreMock{}, &mocks.DigestStoreMock{},
		&mocks.ParserMock{}, pipe, &mocks.DigestGeneratorMock{}, Config{MaxWorkers: 2})

	s.processJobs(context.Background())

	assert.Len(t, queue.AckCalls(), 3, "every job acked")
	assert.Len(t, pipe.SubmitCalls(), 3)
}

func TestScheduler_SweepLeases(t *testing.T) {
	queue := &mocks.QueueMock{
		RequeueExpiredFunc: func(ctx context.Context) (int64, error) { return 2, nil },
	}
	s := New(queue, &mocks.FeedStoreMock{}, &mocks.DigestStoreMock{},
		&mocks.ParserMock{}, &mocks.PipelineMock{}, &mocks.DigestGeneratorMock{}, Config{})

	s.sweepLeases(context.Background())
	assert.Len(t, queue.RequeueExpiredCalls(), 1)
}

func TestScheduler_StartStop(t *testing.T) {
	queue := &mocks.QueueMock{
		DequeueFunc: func(ctx context.Context, visibility time.Duration) (*domain.Job, error) {
			return nil, db.ErrNotFound
		},
		RequeueExpiredFunc: func(ctx context.Context) (int64, error) { return 0, nil },
	}
	feeds := &mocks.FeedStoreMock{
		GetFeedsToFetchFunc: func(ctx context.Context, limit int) ([]domain.Feed, error) { return nil, nil },
	}
	digests := &mocks.DigestStoreMock{
		GetDigestUsersFunc: func(ctx context.Context) ([]string, error) { return nil, nil },
	}
	s := New(queue, feeds, digests, &mocks.ParserMock{}, &mocks.PipelineMock{}, &mocks.DigestGeneratorMock{},
		Config{FeedPollInterval: 10 * time.Millisecond, JobPollInterval: 10 * time.Millisecond,
			DigestCheckInterval: 10 * time.Millisecond, VisibilityTimeout: 10 * time.Millisecond})

	s.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	assert.NotEmpty(t, queue.DequeueCalls(), "job worker ticked")
	assert.NotEmpty(t, feeds.GetFeedsToFetchCalls(), "feed poller ticked")
	assert.NotEmpty(t, digests.GetDigestUsersCalls(), "digest scheduler ticked")
	assert.NotEmpty(t, queue.RequeueExpiredCalls(), "lease sweeper ticked")
}

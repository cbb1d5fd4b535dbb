package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensive-app/pensive/pkg/config"
	"github.com/pensive-app/pensive/pkg/domain"
)

// mapCache is a minimal AnalysisCache for tests
type mapCache struct {
	entries map[string]*domain.Analysis
}

func newMapCache() *mapCache { return &mapCache{entries: make(map[string]*domain.Analysis)} }

func (c *mapCache) Get(key string) (*domain.Analysis, bool) {
	a, ok := c.entries[key]
	return a, ok
}
func (c *mapCache) Set(key string, value *domain.Analysis) { c.entries[key] = value }

func llmServer(t *testing.T, calls *int32, content string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck // test server
	}))
	t.Cleanup(server.Close)
	return server
}

const goodResponse = `Here is the analysis:

{
  "summary": {
    "sentence": "Go 1.22 introduces range-over-function iterators and faster compilation.",
    "paragraph": "Go 1.22 brings range-over-function iterators enabling cleaner iteration over custom types. Compilation speeds increase for large projects. Runtime optimizations reduce memory usage in typical web applications.",
    "is_full_read": true
  },
  "entities": [
    {"name": "Go", "type": "technology"},
    {"name": "Go Team", "type": "organization"}
  ],
  "tags": ["golang", "programming", "compilers"],
  "priority": "deep-dive",
  "confidence": 0.9
}`

func TestAnalyzer_Analyze(t *testing.T) {
	server := llmServer(t, nil, goodResponse)

	analyzer := NewAnalyzer(config.LLMConfig{
		Endpoint:    server.URL + "/v1",
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
		MaxTokens:   800,
	}, nil)

	analysis, cached := analyzer.Analyze(context.Background(), "Go 1.22 Released", "Go 1.22 brings...", "hash1")
	require.NotNil(t, analysis)
	assert.False(t, cached)
	assert.Equal(t, "Go 1.22 introduces range-over-function iterators and faster compilation.", analysis.SummarySentence)
	assert.True(t, analysis.IsFullRead)
	assert.Equal(t, domain.PriorityDeepDive, analysis.Priority)
	assert.InDelta(t, 0.9, analysis.Confidence, 0.001)
	assert.Equal(t, "gpt-4o-mini", analysis.Model)
	require.Len(t, analysis.Entities, 2)
	assert.Equal(t, "technology", analysis.Entities[0].Type)
	assert.Equal(t, []string{"golang", "programming", "compilers"}, analysis.Tags)
}

func TestAnalyzer_CacheWriteThrough(t *testing.T) {
	var calls int32
	server := llmServer(t, &calls, goodResponse)

	c := newMapCache()
	analyzer := NewAnalyzer(config.LLMConfig{
		Endpoint: server.URL + "/v1",
		APIKey:   "test-key",
		Model:    "gpt-4o-mini",
	}, c)

	first, cached := analyzer.Analyze(context.Background(), "Go 1.22 Released", "text", "hash1")
	require.NotNil(t, first)
	assert.False(t, cached)

	second, cached := analyzer.Analyze(context.Background(), "Go 1.22 Released", "text", "hash1")
	require.NotNil(t, second)
	assert.True(t, cached, "second call should hit the cache")
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "only one upstream call expected")
}

func TestAnalyzer_CacheHitsAreIsolated(t *testing.T) {
	server := llmServer(t, nil, goodResponse)

	c := newMapCache()
	analyzer := NewAnalyzer(config.LLMConfig{
		Endpoint: server.URL + "/v1",
		APIKey:   "test-key",
		Model:    "gpt-4o-mini",
	}, c)

	first, _ := analyzer.Analyze(context.Background(), "Go 1.22 Released", "text", "hash1")
	require.NotNil(t, first)

	// callers attach the analysis to their own content row
	first.ContentItemID = 101
	first.ID = 7
	first.Tags[0] = "clobbered"

	second, cached := analyzer.Analyze(context.Background(), "Go 1.22 Released", "text", "hash1")
	require.NotNil(t, second)
	assert.True(t, cached)
	assert.NotSame(t, first, second, "cache hit must not alias a previously returned analysis")
	assert.Zero(t, second.ContentItemID, "row ids from one caller must not leak into another")
	assert.Zero(t, second.ID)
	assert.Equal(t, "golang", second.Tags[0])

	third, _ := analyzer.Analyze(context.Background(), "Go 1.22 Released", "text", "hash1")
	assert.NotSame(t, second, third)
	second.ContentItemID = 202
	assert.Zero(t, third.ContentItemID)
}

func TestAnalyzer_FallbackOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newMapCache()
	analyzer := NewAnalyzer(config.LLMConfig{
		Endpoint: server.URL + "/v1",
		APIKey:   "test-key",
		Model:    "gpt-4o-mini",
	}, c)

	analysis, cached := analyzer.Analyze(context.Background(), "Broken Article", "text", "hash1")
	require.NotNil(t, analysis)
	assert.False(t, cached)
	assert.Equal(t, "fallback", analysis.Model)
	assert.Equal(t, domain.PriorityRead, analysis.Priority)
	assert.InDelta(t, 0.5, analysis.Confidence, 0.001)
	assert.NotEmpty(t, analysis.Entities)
	assert.Empty(t, c.entries, "fallback results must not be cached")
}

func TestAnalyzer_FallbackOnGarbageResponse(t *testing.T) {
	server := llmServer(t, nil, "I could not analyze this, sorry!")

	analyzer := NewAnalyzer(config.LLMConfig{
		Endpoint: server.URL + "/v1",
		APIKey:   "test-key",
		Model:    "gpt-4o-mini",
	}, nil)

	analysis, _ := analyzer.Analyze(context.Background(), "Some Title", "text", "hash1")
	require.NotNil(t, analysis)
	assert.Equal(t, "fallback", analysis.Model)
}

func TestAnalyzer_DemoMode(t *testing.T) {
	// no API key, must not make any network calls
	c := newMapCache()
	analyzer := NewAnalyzer(config.LLMConfig{Model: "gpt-4o-mini"}, c)

	analysis, cached := analyzer.Analyze(context.Background(), "Anything", "text", "hash1")
	require.NotNil(t, analysis)
	assert.False(t, cached)
	assert.Equal(t, "demo", analysis.Model)
	assert.Equal(t, []string{"demo"}, analysis.Tags)
	assert.Empty(t, c.entries, "demo results must not be cached")
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, a *domain.Analysis, err error)
	}{
		{
			name:    "json wrapped in markdown fence",
			content: "```json\n{\"summary\":{\"sentence\":\"s\",\"paragraph\":\"p\"},\"entities\":[],\"tags\":[\"a\"],\"priority\":\"skim\",\"confidence\":0.7}\n```",
			check: func(t *testing.T, a *domain.Analysis, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.PrioritySkim, a.Priority)
			},
		},
		{
			name:    "invalid priority defaults to read",
			content: `{"summary":{"sentence":"s","paragraph":"p"},"priority":"urgent","confidence":0.7}`,
			check: func(t *testing.T, a *domain.Analysis, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.PriorityRead, a.Priority)
			},
		},
		{
			name:    "confidence clamped high",
			content: `{"summary":{"sentence":"s","paragraph":"p"},"priority":"read","confidence":3.5}`,
			check: func(t *testing.T, a *domain.Analysis, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1.0, a.Confidence)
			},
		},
		{
			name:    "confidence clamped low",
			content: `{"summary":{"sentence":"s","paragraph":"p"},"priority":"read","confidence":-1}`,
			check: func(t *testing.T, a *domain.Analysis, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0.0, a.Confidence)
			},
		},
		{
			name:    "no json object",
			content: "plain prose answer",
			check: func(t *testing.T, _ *domain.Analysis, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "no json object")
			},
		},
		{
			name:    "malformed json",
			content: `{"summary": {`,
			check: func(t *testing.T, _ *domain.Analysis, err error) {
				require.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseResponse(tt.content)
			tt.check(t, a, err)
		})
	}
}

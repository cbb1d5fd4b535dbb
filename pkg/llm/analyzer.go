// Package llm provides the content analyzer backed by an OpenAI-compatible
// chat completion API. Upstream failures never surface to callers: the
// analyzer degrades to a deterministic fallback so ingestion keeps moving.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/pensive-app/pensive/pkg/config"
	"github.com/pensive-app/pensive/pkg/domain"
)

// AnalysisCache caches analyses keyed by content hash
type AnalysisCache interface {
	Get(key string) (*domain.Analysis, bool)
	Set(key string, value *domain.Analysis)
}

// Analyzer produces structured analyses of content via LLM
type Analyzer struct {
	client    *openai.Client
	config    config.LLMConfig
	cache     AnalysisCache
	systemMsg string
}

// NewAnalyzer creates an analyzer. An empty APIKey in cfg enables demo mode:
// no network calls are made and every item gets a fixed demo analysis.
func NewAnalyzer(cfg config.LLMConfig, analysisCache AnalysisCache) *Analyzer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Analyzer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		cache:     analysisCache,
		systemMsg: systemPrompt,
	}
}

const systemPrompt = `You are a content analysis assistant. Analyze the provided content and respond with a single JSON object, no prose, in exactly this shape:
{
  "summary": {
    "sentence": "one sentence capturing the core point",
    "paragraph": "3-5 sentence summary of the key arguments and findings",
    "is_full_read": false
  },
  "entities": [{"name": "entity name", "type": "person|organization|technology|concept|place"}],
  "tags": ["3-7 short lowercase topic tags"],
  "priority": "skim|read|deep-dive",
  "confidence": 0.0
}

Rules:
- summary.sentence and summary.paragraph describe the content directly. NEVER open with "The article discusses", "This piece covers" or similar. Start with the subject matter itself.
- is_full_read is true only when the summary cannot do the content justice and the reader should read the original in full.
- entities lists the 3-10 most significant named things. Every entity needs a type.
- tags are the key concepts a knowledge graph would link this content by. Always provide at least 3, even for shallow content.
- priority reflects how much attention the content deserves: "skim" for news and announcements, "read" for substantive articles, "deep-dive" for dense technical or foundational material.
- confidence is your certainty in the analysis, between 0 and 1.`

// Analyze returns a structured analysis for the given content. The cacheKey is
// the content hash; cache hits skip the LLM entirely. The second return value
// reports whether the result came from cache. The returned analysis is owned
// by the caller: cache entries are copied on the way in and out, so filling in
// row ids after persisting never leaks into another request.
//
// Analyze never fails on upstream or parse errors: it logs and returns a
// deterministic fallback analysis instead. Fallback and demo results are not
// cached so a later re-analysis can produce the real thing.
func (a *Analyzer) Analyze(ctx context.Context, title, text, cacheKey string) (*domain.Analysis, bool) {
	if a.cache != nil && cacheKey != "" {
		if cached, ok := a.cache.Get("analysis:" + cacheKey); ok {
			return cloneAnalysis(cached), true
		}
	}

	if a.config.APIKey == "" {
		return a.demoAnalysis(title), false
	}

	analysis, err := a.analyzeRemote(ctx, title, text)
	if err != nil {
		log.Printf("[WARN] llm analysis failed for %q, using fallback: %v", title, err)
		return a.fallbackAnalysis(title), false
	}

	if a.cache != nil && cacheKey != "" {
		a.cache.Set("analysis:"+cacheKey, cloneAnalysis(analysis))
	}
	return analysis, false
}

// cloneAnalysis copies an analysis with its own entity and tag slices.
// Callers fill in row ids on the result before persisting it, so the cache
// must never share a pointer with them.
func cloneAnalysis(a *domain.Analysis) *domain.Analysis {
	c := *a
	c.Entities = append([]domain.Entity(nil), a.Entities...)
	c.Tags = append([]string(nil), a.Tags...)
	return &c
}

func (a *Analyzer) analyzeRemote(ctx context.Context, title, text string) (*domain.Analysis, error) {
	req := openai.ChatCompletionRequest{
		Model:       a.config.Model,
		Temperature: float32(a.config.Temperature),
		MaxTokens:   a.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: a.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(title, text)},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from llm")
	}

	analysis, err := parseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	analysis.Model = a.config.Model
	return analysis, nil
}

// maxContentChars limits how much raw text goes into the prompt
const maxContentChars = 8000

func buildPrompt(title, text string) string {
	var sb strings.Builder
	sb.WriteString("Analyze this content:\n\n")
	sb.WriteString("Title: ")
	sb.WriteString(title)
	sb.WriteString("\n\n")

	if len(text) > maxContentChars {
		text = text[:maxContentChars] + "..."
	}
	sb.WriteString(text)
	return sb.String()
}

// analysisResponse mirrors the JSON contract the system prompt demands
type analysisResponse struct {
	Summary struct {
		Sentence   string `json:"sentence"`
		Paragraph  string `json:"paragraph"`
		IsFullRead bool   `json:"is_full_read"`
	} `json:"summary"`
	Entities   []domain.Entity `json:"entities"`
	Tags       []string        `json:"tags"`
	Priority   string          `json:"priority"`
	Confidence float64         `json:"confidence"`
}

// parseResponse extracts the JSON object from the LLM response. Models
// sometimes wrap JSON in markdown fences or prose, so scan for the outermost
// braces instead of unmarshalling the raw content.
func parseResponse(content string) (*domain.Analysis, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("no json object found in response")
	}

	var resp analysisResponse
	if err := json.Unmarshal([]byte(content[start:end+1]), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse json response: %w", err)
	}

	priority := domain.Priority(resp.Priority)
	if !priority.Valid() {
		priority = domain.PriorityRead
	}

	confidence := resp.Confidence
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	return &domain.Analysis{
		SummarySentence:  resp.Summary.Sentence,
		SummaryParagraph: resp.Summary.Paragraph,
		IsFullRead:       resp.Summary.IsFullRead,
		Entities:         resp.Entities,
		Tags:             resp.Tags,
		Priority:         priority,
		Confidence:       confidence,
	}, nil
}

// fallbackAnalysis is the deterministic result used when the LLM is
// unreachable or returns garbage
func (a *Analyzer) fallbackAnalysis(title string) *domain.Analysis {
	return &domain.Analysis{
		SummarySentence:  fmt.Sprintf("Analysis of %q", title),
		SummaryParagraph: fmt.Sprintf("Automatic analysis was unavailable for %q. The content has been saved and can be re-analyzed later.", title),
		Entities:         []domain.Entity{{Name: title, Type: "concept"}},
		Tags:             []string{"unprocessed"},
		Priority:         domain.PriorityRead,
		Confidence:       0.5,
		Model:            "fallback",
	}
}

// demoAnalysis is returned when no API key is configured
func (a *Analyzer) demoAnalysis(title string) *domain.Analysis {
	return &domain.Analysis{
		SummarySentence:  fmt.Sprintf("Demo analysis of %q", title),
		SummaryParagraph: "Running without an LLM API key. Configure llm.api_key to get real analyses; until then every item receives this placeholder.",
		Entities:         []domain.Entity{{Name: title, Type: "concept"}},
		Tags:             []string{"demo"},
		Priority:         domain.PriorityRead,
		Confidence:       0.5,
		Model:            "demo",
	}
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen     string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL    string        `yaml:"base_url" json:"base_url" jsonschema:"description=Base application URL used in generated links"`
		CronSecret string        `yaml:"cron_secret" json:"cron_secret" jsonschema:"description=Shared secret gating the cron endpoints"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:pensive.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Cache struct {
		AnalysisTTL   time.Duration `yaml:"analysis_ttl" json:"analysis_ttl" jsonschema:"default=24h,description=How long analysis results are cached by content hash"`
		ConceptMapTTL time.Duration `yaml:"concept_map_ttl" json:"concept_map_ttl" jsonschema:"default=10m,description=How long concept maps are cached per user"`
	} `yaml:"cache" json:"cache" jsonschema:"description=Cache configuration"`

	Schedule struct {
		FeedPollInterval  time.Duration `yaml:"feed_poll_interval" json:"feed_poll_interval" jsonschema:"default=1h,description=How often due feeds are polled"`
		JobPollInterval   time.Duration `yaml:"job_poll_interval" json:"job_poll_interval" jsonschema:"default=5s,description=How often the job worker polls the queue"`
		VisibilityTimeout time.Duration `yaml:"visibility_timeout" json:"visibility_timeout" jsonschema:"default=5m,description=Job lease duration before redelivery"`
		RetryDelay        time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=5m,description=Delay before a failed job becomes eligible again"`
		MaxWorkers        int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent workers"`
		MaxFeedErrors     int           `yaml:"max_feed_errors" json:"max_feed_errors" jsonschema:"default=10,description=Consecutive failures before a feed is deactivated"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for content analysis"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Content extraction configuration"`

	Digest DigestConfig `yaml:"digest" json:"digest" jsonschema:"description=Digest generation configuration"`
}

// LLMConfig holds LLM configuration for content analysis.
// An empty APIKey switches the analyzer to demo mode: no network calls,
// a fixed synthetic analysis is returned instead.
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable); empty enables demo mode"`
	Model       string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=800,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// ExtractionConfig holds article text extraction settings
type ExtractionConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per URL"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Pensive/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
}

// DigestConfig holds digest generation settings
type DigestConfig struct {
	TopN          int           `yaml:"top_n" json:"top_n" jsonschema:"default=10,description=Maximum items rendered per digest"`
	CheckInterval time.Duration `yaml:"check_interval" json:"check_interval" jsonschema:"default=1h,description=How often due digests are scheduled"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema, supplementary only
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills in zero values after parsing
func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:pensive.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Cache.AnalysisTTL == 0 {
		c.Cache.AnalysisTTL = 24 * time.Hour
	}
	if c.Cache.ConceptMapTTL == 0 {
		c.Cache.ConceptMapTTL = 10 * time.Minute
	}

	if c.Schedule.FeedPollInterval == 0 {
		c.Schedule.FeedPollInterval = time.Hour
	}
	if c.Schedule.JobPollInterval == 0 {
		c.Schedule.JobPollInterval = 5 * time.Second
	}
	if c.Schedule.VisibilityTimeout == 0 {
		c.Schedule.VisibilityTimeout = 5 * time.Minute
	}
	if c.Schedule.RetryDelay == 0 {
		c.Schedule.RetryDelay = 5 * time.Minute
	}
	if c.Schedule.MaxWorkers == 0 {
		c.Schedule.MaxWorkers = 5
	}
	if c.Schedule.MaxFeedErrors == 0 {
		c.Schedule.MaxFeedErrors = 10
	}

	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 800
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}

	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 30 * time.Second
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "Pensive/1.0"
	}
	if c.Extraction.MinTextLength == 0 {
		c.Extraction.MinTextLength = 100
	}

	if c.Digest.TopN == 0 {
		c.Digest.TopN = 10
	}
	if c.Digest.CheckInterval == 0 {
		c.Digest.CheckInterval = time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.APIKey != "" && cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required when an api key is set")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}
	if cfg.Extraction.MinTextLength < 0 {
		return fmt.Errorf("extraction min_text_length must be non-negative")
	}

	if cfg.Schedule.VisibilityTimeout < time.Second {
		return fmt.Errorf("schedule.visibility_timeout must be at least 1 second")
	}
	if cfg.Digest.TopN < 1 {
		return fmt.Errorf("digest.top_n must be at least 1")
	}

	return nil
}

// GetServerConfig returns server listen address and timeout
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetCronSecret returns the shared secret for cron endpoints
func (c *Config) GetCronSecret() string {
	return c.Server.CronSecret
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

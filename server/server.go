// Package server exposes the JSON HTTP API: content submission and listing,
// concept maps, digests, feed subscriptions and the cron endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/pensive-app/pensive/pkg/db"
	"github.com/pensive-app/pensive/pkg/digest"
	"github.com/pensive-app/pensive/pkg/domain"
	"github.com/pensive-app/pensive/pkg/scheduler"
	"github.com/pensive-app/pensive/pkg/service"
)

//go:generate moq -out mocks/deps.go -pkg mocks -skip-ensure -fmt goimports . Store Pipeline GraphBuilder DigestService Cron

// Store provides the persistence operations the API reads from
type Store interface {
	GetUserContent(ctx context.Context, userID string, filter domain.ContentFilter) (*db.ContentPage, error)
	SearchContent(ctx context.Context, userID, query string, limit int) ([]domain.ContentItem, error)
	GetUserDigests(ctx context.Context, userID string, limit int) ([]domain.Digest, error)
	GetUserFeeds(ctx context.Context, userID string) ([]domain.Feed, error)
	CreateFeed(ctx context.Context, feed *domain.Feed) error
	CountJobs(ctx context.Context) (map[string]int, error)
}

// Pipeline ingests directly submitted URLs
type Pipeline interface {
	Submit(ctx context.Context, userID, rawURL string, source domain.Source) (*service.Result, error)
}

// GraphBuilder renders concept maps
type GraphBuilder interface {
	Build(ctx context.Context, userID string, abstractionLevel int, search string) (*domain.ConceptMap, error)
}

// DigestService generates and renders digests
type DigestService interface {
	Generate(ctx context.Context, userID string, timeframe domain.Timeframe) (*domain.Digest, error)
	Render(timeframe domain.Timeframe, items []digest.RenderItem) (string, error)
}

// Cron runs the scheduled sweeps on demand
type Cron interface {
	PollFeeds(ctx context.Context) ([]scheduler.FeedResult, error)
	ScheduleDigests(ctx context.Context) ([]scheduler.DigestResult, error)
}

// Config holds the http server settings
type Config struct {
	Listen     string
	Timeout    time.Duration
	CronSecret string
	Version    string
	Debug      bool
}

// Server is the HTTP server instance
type Server struct {
	store    Store
	pipeline Pipeline
	graphs   GraphBuilder
	digests  DigestService
	cron     Cron
	cfg      Config

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a server instance with routes and middleware wired
func New(store Store, pipeline Pipeline, graphs GraphBuilder, digests DigestService, cron Cron, cfg Config) *Server {
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	s := &Server{
		store:    store,
		pipeline: pipeline,
		graphs:   graphs,
		digests:  digests,
		cron:     cron,
		cfg:      cfg,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Run starts the HTTP server and handles graceful shutdown on ctx cancel
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.cfg.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Timeout,
		WriteTimeout: s.cfg.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("pensive", "pensive-app", s.cfg.Version))
	s.router.Use(rest.Ping)

	if s.cfg.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /content/analyze", s.analyzeHandler)
		r.HandleFunc("GET /content", s.listContentHandler)
		r.HandleFunc("GET /content/search", s.searchHandler)

		r.HandleFunc("GET /concepts/map", s.conceptMapHandler)

		r.HandleFunc("GET /digests", s.listDigestsHandler)
		r.HandleFunc("POST /digests/{timeframe}", s.generateDigestHandler)
		r.HandleFunc("POST /digest/render", s.renderDigestHandler)

		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("GET /feeds", s.listFeedsHandler)

		r.With(s.cronAuth).HandleFunc("GET /cron/process-feeds", s.processFeedsHandler)
		r.With(s.cronAuth).HandleFunc("POST /cron/send-digests", s.sendDigestsHandler)
	})
}

// userID extracts the caller's user from the X-User-ID header. Auth proper is
// handled upstream, the header stands in for the authenticated principal.
func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return "default"
}

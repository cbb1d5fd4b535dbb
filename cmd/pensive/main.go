package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/pensive-app/pensive/pkg/cache"
	"github.com/pensive-app/pensive/pkg/config"
	"github.com/pensive-app/pensive/pkg/content"
	"github.com/pensive-app/pensive/pkg/db"
	"github.com/pensive-app/pensive/pkg/digest"
	"github.com/pensive-app/pensive/pkg/domain"
	"github.com/pensive-app/pensive/pkg/feed"
	"github.com/pensive-app/pensive/pkg/graph"
	"github.com/pensive-app/pensive/pkg/llm"
	"github.com/pensive-app/pensive/pkg/scheduler"
	"github.com/pensive-app/pensive/pkg/service"
	"github.com/pensive-app/pensive/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"pensive.yml" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	setupLog(opts.Debug, opts.NoColor, cfg.LLM.APIKey, cfg.Server.CronSecret)
	lgr.Printf("[INFO] starting pensive version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	lgr.Printf("[INFO] shutdown complete")
}

// run wires the application together and blocks until ctx is canceled
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	database, err := db.New(db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: connLifetime(cfg.Database.ConnMaxLifetime),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()

	analysisCache := cache.NewTTL[*domain.Analysis](cfg.Cache.AnalysisTTL)
	defer analysisCache.Close()
	mapCache := cache.NewTTL[*domain.ConceptMap](cfg.Cache.ConceptMapTTL)
	defer mapCache.Close()

	analyzer := llm.NewAnalyzer(cfg.LLM, analysisCache)
	extractor := content.NewHTTPExtractor(cfg.Extraction)
	feedParser := feed.NewParser(cfg.Extraction.Timeout, cfg.Extraction.UserAgent)

	graphs := graph.NewBuilder(database, mapCache)
	pipeline := service.NewPipeline(database, extractor, analyzer, graphs)
	aggregator := digest.NewAggregator(database, nil, cfg.Digest)

	sched := scheduler.New(database, database, database, feedParser, pipeline, aggregator, scheduler.Config{
		FeedPollInterval:    cfg.Schedule.FeedPollInterval,
		JobPollInterval:     cfg.Schedule.JobPollInterval,
		VisibilityTimeout:   cfg.Schedule.VisibilityTimeout,
		RetryDelay:          cfg.Schedule.RetryDelay,
		DigestCheckInterval: cfg.Digest.CheckInterval,
		MaxWorkers:          cfg.Schedule.MaxWorkers,
		MaxFeedErrors:       cfg.Schedule.MaxFeedErrors,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(database, pipeline, graphs, aggregator, sched, server.Config{
		Listen:     cfg.Server.Listen,
		Timeout:    cfg.Server.Timeout,
		CronSecret: cfg.Server.CronSecret,
		Version:    revision,
		Debug:      debug,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// connLifetime converts the configured seconds to a duration
func connLifetime(secs int) time.Duration {
	return time.Duration(secs) * time.Second
}

func setupLog(dbg, noColor bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	filtered := make([]string, 0, len(secrets))
	for _, s := range secrets {
		if s != "" {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) > 0 {
		logOpts = append(logOpts, lgr.Secret(filtered...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

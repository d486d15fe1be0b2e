package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JustJay7/court-viewer/internal/api"
	"github.com/JustJay7/court-viewer/internal/cache"
	"github.com/JustJay7/court-viewer/internal/config"
	"github.com/JustJay7/court-viewer/internal/database"
	"github.com/JustJay7/court-viewer/internal/files"
	"github.com/JustJay7/court-viewer/internal/location"
	"github.com/JustJay7/court-viewer/internal/lookup"
	"github.com/JustJay7/court-viewer/internal/metrics"
	"github.com/JustJay7/court-viewer/internal/server"
	"github.com/JustJay7/court-viewer/internal/upstream"
	"github.com/JustJay7/court-viewer/pkg/logger"
)

func main() {
	var migrate bool
	flag.BoolVar(&migrate, "migrate", false, "Run database migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}

	if migrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("Failed to run migrations", "error", err)
		}
		log.Info("Database migrations completed successfully")
		return
	}

	m := metrics.New()

	breaker := upstream.NewBreaker(upstream.BreakerConfig{
		Enabled:      cfg.BreakerEnabled,
		MinRequests:  cfg.BreakerMinRequests,
		FailureRatio: cfg.BreakerFailureRatio,
		OpenTimeout:  cfg.BreakerOpenTimeout,
	}, log)
	clientOpts := upstream.Options{
		Timeout:  cfg.UpstreamTimeout,
		Breaker:  breaker,
		Recorder: m,
		Logger:   log,
	}

	fileStore := cache.NewStore(cfg.CacheSize, cfg.CacheTTL, cache.WithName("files"), cache.WithRecorder(m))
	lookupStore := cache.NewStore(cfg.CacheSize, cfg.LookupCacheTTL, cache.WithName("lookups"), cache.WithRecorder(m))

	lookupOpts := []lookup.Option{lookup.WithRecorder(m)}
	if cfg.DocumentCategoriesFile != "" {
		categories, err := lookup.LoadDocumentCategories(cfg.DocumentCategoriesFile)
		if err != nil {
			log.Fatal("Failed to load document categories", "path", cfg.DocumentCategoriesFile, "error", err)
		}
		lookupOpts = append(lookupOpts, lookup.WithDocumentCategories(categories))
	}

	lookups := lookup.NewService(upstream.NewLookupClient(cfg.LookupServices, clientOpts), lookupStore, log, lookupOpts...)
	locations := location.NewService(upstream.NewLocationClient(cfg.LocationServices, clientOpts), lookupStore, log)

	restrictions := files.HearingRestrictionPolicy{AllowedTypes: cfg.HearingRestrictionTypes}
	fileService := files.NewService(upstream.NewFileClient(cfg.FileServices, clientOpts), fileStore, lookups, locations, log, files.Options{
		ApplicationCd:       cfg.RequestApplicationCode,
		SearchApplicationCd: cfg.RequestSearchApplicationCode,
		HearingRestrictions: &restrictions,
	})

	requests := database.NewRequestLogStore(db)
	handlers := api.NewHandlers(fileService, requests, map[string]api.StatsSource{
		"files":   fileStore,
		"lookups": lookupStore,
	}, log, cfg)

	srv := server.New(cfg, handlers, requests, m, log)

	log.Info("Starting Court Viewer",
		"host", cfg.Host,
		"port", cfg.Port,
		"file_services", cfg.FileServices.URL,
	)

	if err := srv.Run(); err != nil {
		log.Fatal("Server failed to start", "error", err)
	}
}

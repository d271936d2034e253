package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/pediasafe-screening-server/internal/api"
	"github.com/pediasafe-screening-server/internal/cache"
	"github.com/pediasafe-screening-server/internal/config"
	"github.com/pediasafe-screening-server/internal/domain"
	"github.com/pediasafe-screening-server/internal/history"
	"github.com/pediasafe-screening-server/internal/knowledge"
	"github.com/pediasafe-screening-server/internal/service"
	"github.com/pediasafe-screening-server/pkg/openfda"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	cfg := configManager.GetConfig()

	logger := newLogger(cfg.Logging.Level, cfg.Logging.Format)
	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Starting PediaSafe screening server")

	base := knowledge.NewBase(logger)

	fdaClient := openfda.NewClient(openfda.Config{
		BaseURL:                 cfg.OpenFDA.BaseURL,
		APIKey:                  cfg.OpenFDA.APIKey,
		Timeout:                 cfg.OpenFDA.Timeout,
		RateLimit:               float64(cfg.OpenFDA.RateLimit),
		ResultLimit:             cfg.OpenFDA.ResultLimit,
		BreakerMaxRequests:      cfg.OpenFDA.CircuitBreaker.MaxRequests,
		BreakerInterval:         cfg.OpenFDA.CircuitBreaker.Interval,
		BreakerTimeout:          cfg.OpenFDA.CircuitBreaker.Timeout,
		BreakerFailureThreshold: cfg.OpenFDA.CircuitBreaker.FailureThreshold,
	}, logger)

	// The Redis evidence tier is optional; screening runs without it
	var evidence service.EvidenceTier
	if cfg.Cache.RedisURL != "" {
		evidenceCache, err := cache.NewEvidenceCache(cfg.Cache, logger)
		if err != nil {
			logger.WithError(err).Warn("Redis evidence cache unavailable, continuing without it")
		} else {
			defer evidenceCache.Close()
			evidence = evidenceCache
		}
	}

	resolver, err := service.NewInteractionResolver(base, fdaClient, evidence, cfg.Resolver, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create interaction resolver")
	}
	engine := service.NewScreeningEngine(base, resolver, logger)

	store, err := newHistoryStore(cfg.History)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open screening history store")
	}
	if store != nil {
		defer store.Close()
	}

	server := api.NewServer(cfg, engine, base, store, fdaClient, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}

	logger.Info("Server stopped")
}

func newLogger(level, format string) *logrus.Logger {
	logger := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// newHistoryStore opens the configured history backend; the "none" driver
// returns a nil store and disables persistence.
func newHistoryStore(cfg domain.HistoryConfig) (history.Store, error) {
	switch cfg.Driver {
	case "sqlite":
		return history.NewSQLiteStore(cfg.SQLitePath)
	case "postgres":
		return history.NewPostgresStoreFromURL(cfg.DatabaseURL)
	default:
		return nil, nil
	}
}

// Package main provides the PlateWise recommendation API server
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	apprecommendation "github.com/platewise/backend/internal/application/recommendation"
	appsuggestion "github.com/platewise/backend/internal/application/suggestion"
	appvoice "github.com/platewise/backend/internal/application/voice"
	"github.com/platewise/backend/internal/infrastructure/ai/openai"
	"github.com/platewise/backend/internal/infrastructure/config"
	"github.com/platewise/backend/internal/infrastructure/http/server"
	gormrepo "github.com/platewise/backend/internal/infrastructure/persistence/gorm"
	"github.com/platewise/backend/internal/infrastructure/persistence/postgres"
	redisrepo "github.com/platewise/backend/internal/infrastructure/persistence/redis"
	"github.com/platewise/backend/internal/infrastructure/persistence/sqlite"
	"github.com/platewise/backend/internal/ports/outbound"
	"github.com/platewise/backend/pkg/healthcheck"
	"github.com/platewise/backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	// Database
	db, cleanup, err := openDatabase(cfg, zapLogger)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(gormrepo.AllModels()...); err != nil {
			return err
		}
	}

	// Health checks
	health := healthcheck.New(cfg.App.Version, zapLogger)
	if sqlDB, err := db.DB(); err == nil {
		health.Register("database", healthcheck.NewDatabaseChecker(sqlDB))
	}

	// Redis-backed completion cache, optional
	var cache outbound.CacheRepository
	if cfg.Redis.Enable {
		redisClient, err := redisrepo.NewClient(cfg)
		if err != nil {
			zapLogger.Warn("Redis unavailable, completion caching disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			cache = redisrepo.NewCacheRepository(redisClient, zapLogger)
			health.Register("redis", healthcheck.NewRedisChecker(redisClient))
		}
	}

	// AI collaborators
	aiClient := openai.NewClient(cfg, cache, zapLogger)

	// Repositories
	preferences := gormrepo.NewPreferenceRepository(db)
	history := gormrepo.NewHistoryRepository(db)
	recipes := gormrepo.NewRecipeRepository(db)
	recommendations := gormrepo.NewRecommendationRepository(db)
	suggestions := gormrepo.NewSuggestionRepository(db)

	// Application services
	aggregator := apprecommendation.NewContextAggregator(preferences, history, zapLogger)

	recommendationService := apprecommendation.NewService(
		aggregator, recipes, recommendations, aiClient, zapLogger,
	)
	suggestionService := appsuggestion.NewService(
		aggregator, recipes, suggestions, aiClient, aiClient,
		cfg.Features.SuggestionImages, zapLogger,
	)
	voiceService := appvoice.NewService(
		aggregator, recipes, aiClient, aiClient, aiClient,
		cfg.Features.SuggestionImages, zapLogger,
	)

	// HTTP server
	srv := server.NewServer(cfg, zapLogger, recommendationService, suggestionService, voiceService, health)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		zapLogger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(ctx)
}

// openDatabase opens the configured database. SQLite is intended for
// local development and seeds a starter corpus.
func openDatabase(cfg *config.Config, zapLogger *zap.Logger) (db *gorm.DB, cleanup func(), err error) {
	switch cfg.Database.Driver {
	case "sqlite":
		db, err = sqlite.SetupDatabase(cfg.Database.Database, gormlogger.Warn)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.SeedDatabase(db); err != nil {
			zapLogger.Warn("Failed to seed development database", zap.Error(err))
		}
		return db, func() {}, nil
	default:
		conn, err := postgres.NewConnection(cfg, zapLogger)
		if err != nil {
			return nil, nil, err
		}
		return conn.DB(), func() { conn.Close() }, nil
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/user-hobbies-api/internal/config"
	"github.com/yukikurage/user-hobbies-api/internal/database"
	"github.com/yukikurage/user-hobbies-api/internal/logger"
	"github.com/yukikurage/user-hobbies-api/internal/metrics"
	"github.com/yukikurage/user-hobbies-api/internal/ratelimit"
	"github.com/yukikurage/user-hobbies-api/internal/repository"
	"github.com/yukikurage/user-hobbies-api/internal/server"
	"github.com/yukikurage/user-hobbies-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)

	log, err := logger.New(logger.Config{
		Production:  cfg.IsProduction(),
		LogLevel:    cfg.LogLevel,
		ServiceName: "user-hobbies-api",
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("Failed to close database", zap.Error(err))
			return
		}
		log.Info("Database connection closed")
	}()

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db, cfg.DBSchema, log); err != nil {
			return err
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}

	limiter, closeLimiter, err := ratelimit.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeLimiter() }()

	var httpMetrics *metrics.HTTP
	if cfg.MetricsEnabled {
		httpMetrics = metrics.NewHTTP()
	}

	userRepo := repository.NewUserRepository(db)
	hobbyRepo := repository.NewHobbyRepository(db)

	srv, err := server.New(server.Dependencies{
		Config:  cfg,
		Log:     log,
		DB:      sqlDB,
		Users:   services.NewUserService(userRepo, log),
		Hobbies: services.NewHobbyService(hobbyRepo, userRepo, log),
		Limiter: limiter,
		Metrics: httpMetrics,
	})
	if err != nil {
		return err
	}

	log.Info("Configuration loaded",
		zap.String("port", cfg.Port),
		zap.String("gin_mode", cfg.GinMode),
		zap.String("rate_limit_store", cfg.RateLimitStore),
		zap.Strings("cors_origins", cfg.CORSOrigins),
	)
	return srv.Run(ctx)
}
